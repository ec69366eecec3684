package domain

import "time"

// Campaign é o espelho local de uma campanha da plataforma
type Campaign struct {
	ID                 string    `json:"id"`
	AdAccountID        string    `json:"ad_account_id"`
	PlatformCampaignID string    `json:"platform_campaign_id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	Objective          string    `json:"objective"`
	DailyBudget        *float64  `json:"daily_budget"`
	LifetimeBudget     *float64  `json:"lifetime_budget"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// AdSet sempre referencia uma Campaign local existente
type AdSet struct {
	ID               string    `json:"id"`
	AdCampaignID     string    `json:"ad_campaign_id"`
	PlatformAdSetID  string    `json:"platform_adset_id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	OptimizationGoal string    `json:"optimization_goal"`
	BillingEvent     string    `json:"billing_event"`
	DailyBudget      *float64  `json:"daily_budget"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Ad sempre referencia um AdSet local existente
type Ad struct {
	ID             string    `json:"id"`
	AdSetID        string    `json:"ad_set_id"`
	PlatformAdID   string    `json:"platform_ad_id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	CreativeID     string    `json:"creative_id"`
	CreativeName   string    `json:"creative_name"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	DestinationURL string    `json:"destination_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MirrorEntity é a projeção mínima usada pelos chunks de métricas
type MirrorEntity struct {
	ID         string
	PlatformID string
}
