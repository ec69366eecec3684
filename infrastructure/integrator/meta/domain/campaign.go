package metadomain

import "encoding/json"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Page é o envelope de todas as respostas paginadas da Graph API
type Page struct {
	Data   []json.RawMessage `json:"data"`
	Paging *Paging           `json:"paging,omitempty"`
	Error  *ErrorDetails     `json:"error,omitempty"`
}

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
}

type AdSet struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal"`
	BillingEvent     string `json:"billing_event"`
	DailyBudget      string `json:"daily_budget"`
}

type Ad struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	AdSetID  string    `json:"adset_id"`
	Creative *Creative `json:"creative,omitempty"`
}

type Creative struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

type ObjectStorySpec struct {
	LinkData     *LinkData     `json:"link_data,omitempty"`
	VideoData    *VideoData    `json:"video_data,omitempty"`
	TemplateData *TemplateData `json:"template_data,omitempty"`
}

type LinkData struct {
	Link string `json:"link"`
}

type VideoData struct {
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type CallToAction struct {
	Type  string             `json:"type"`
	Value *CallToActionValue `json:"value,omitempty"`
}

type CallToActionValue struct {
	Link string `json:"link"`
}

type TemplateData struct {
	Link string `json:"link"`
}

// DestinationURL extrai a URL de destino do criativo.
// Ordem: link_data.link, video_data.call_to_action.value.link, template_data.link.
func (c *Creative) DestinationURL() string {
	if c == nil || c.ObjectStorySpec == nil {
		return ""
	}

	spec := c.ObjectStorySpec
	if spec.LinkData != nil && spec.LinkData.Link != "" {
		return spec.LinkData.Link
	}

	if spec.VideoData != nil && spec.VideoData.CallToAction != nil &&
		spec.VideoData.CallToAction.Value != nil && spec.VideoData.CallToAction.Value.Link != "" {
		return spec.VideoData.CallToAction.Value.Link
	}

	if spec.TemplateData != nil && spec.TemplateData.Link != "" {
		return spec.TemplateData.Link
	}

	return ""
}
