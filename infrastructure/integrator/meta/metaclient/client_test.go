package metaclient

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-sync-api/internal/domain"
)

func TestURLBuilder_Campaigns(t *testing.T) {
	builder := NewURLBuilder("https://graph.facebook.com/v22.0/", 500)

	u, err := url.Parse(builder.Campaigns("123", "tok"))
	require.NoError(t, err)

	assert.Equal(t, "/v22.0/act_123/campaigns", u.Path)
	assert.Equal(t, "500", u.Query().Get("limit"))
	assert.Equal(t, "tok", u.Query().Get("access_token"))
	assert.Equal(t, campaignFields, u.Query().Get("fields"))
}

func TestURLBuilder_Ads(t *testing.T) {
	builder := NewURLBuilder("https://graph.facebook.com/v22.0", 500)

	u, err := url.Parse(builder.Ads("as1", "tok"))
	require.NoError(t, err)

	assert.Equal(t, "/v22.0/as1/ads", u.Path)
	assert.Contains(t, u.Query().Get("fields"), "object_story_spec")
}

func TestURLBuilder_Insights(t *testing.T) {
	builder := NewURLBuilder("https://graph.facebook.com/v22.0", 500)

	raw := builder.Insights("c1", domain.EntityTypeCampaign, domain.DateRange{Since: day(2024, 1, 1), Until: day(2024, 1, 3)}, "tok")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "/v22.0/c1/insights", u.Path)
	assert.JSONEq(t, `{"since":"2024-01-01","until":"2024-01-03"}`, q.Get("time_range"))
	assert.Equal(t, "1", q.Get("time_increment"))
	assert.Equal(t, "campaign", q.Get("level"))
}

func TestAccountNode(t *testing.T) {
	assert.Equal(t, "act_1", AccountNode("1"))
	assert.Equal(t, "act_1", AccountNode("act_1"))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
