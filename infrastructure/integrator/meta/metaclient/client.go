package metaclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-sync-api/internal/domain"
)

const (
	campaignFields = "id,name,status,objective,daily_budget,lifetime_budget"
	adSetFields    = "id,name,status,campaign_id,optimization_goal,billing_event,daily_budget"
	adFields       = "id,name,status,adset_id,creative{id,name,thumbnail_url,object_story_spec}"
	insightFields  = "date_start,date_stop,impressions,clicks,spend,reach,cpc,cpm,ctr,actions"
)

// URLBuilder monta as URLs da Graph API usadas pela sincronização
type URLBuilder struct {
	apiURL   string
	pageSize int
}

// NewURLBuilder recebe a URL já versionada, ex: https://graph.facebook.com/v22.0
func NewURLBuilder(apiURL string, pageSize int) *URLBuilder {
	return &URLBuilder{
		apiURL:   strings.TrimRight(apiURL, "/"),
		pageSize: pageSize,
	}
}

func (b *URLBuilder) Campaigns(platformAccountID, accessToken string) string {
	return b.build(AccountNode(platformAccountID)+"/campaigns", campaignFields, accessToken, nil)
}

func (b *URLBuilder) AdSets(platformCampaignID, accessToken string) string {
	return b.build(platformCampaignID+"/adsets", adSetFields, accessToken, nil)
}

func (b *URLBuilder) Ads(platformAdSetID, accessToken string) string {
	return b.build(platformAdSetID+"/ads", adFields, accessToken, nil)
}

// Insights monta a consulta diária (time_increment=1) de uma entidade
func (b *URLBuilder) Insights(platformID string, level domain.EntityType, dateRange domain.DateRange, accessToken string) string {
	timeRange, _ := jsoniter.MarshalToString(map[string]string{
		"since": dateRange.Since.Format(time.DateOnly),
		"until": dateRange.Until.Format(time.DateOnly),
	})

	extra := url.Values{}
	extra.Set("time_range", timeRange)
	extra.Set("time_increment", "1")
	extra.Set("level", string(level))

	return b.build(platformID+"/insights", insightFields, accessToken, extra)
}

func (b *URLBuilder) build(path, fields, accessToken string, extra url.Values) string {
	params := url.Values{}
	for k, v := range extra {
		params[k] = v
	}
	params.Set("fields", fields)
	params.Set("limit", strconv.Itoa(b.pageSize))
	params.Set("access_token", accessToken)

	return fmt.Sprintf("%s/%s?%s", b.apiURL, path, params.Encode())
}

// AccountNode garante o prefixo act_ exigido pela Graph API
func AccountNode(platformAccountID string) string {
	if strings.HasPrefix(platformAccountID, "act_") {
		return platformAccountID
	}
	return "act_" + platformAccountID
}
