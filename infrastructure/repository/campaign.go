package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

const campaignsTable = "ad_campaigns"

var campaignUpsert = upsertStatement{
	table:    campaignsTable,
	columns:  []string{"id", "ad_account_id", "platform_campaign_id", "name", "status", "objective", "daily_budget", "lifetime_budget"},
	conflict: []string{"ad_account_id", "platform_campaign_id"},
	update:   []string{"name", "status", "objective", "daily_budget", "lifetime_budget"},
	key:      "ad_account_id || ':' || platform_campaign_id",
}

var campaignMirror = mirrorSelect{
	from:           "ad_campaigns c",
	idColumn:       "c.id",
	platformColumn: "c.platform_campaign_id",
}

type CampaignRepository interface {
	EntityLister
	UpsertCampaigns(ctx context.Context, campaigns []domain.Campaign) []domain.Campaign
}

type campaignRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewCampaignRepository(conn *postgres.Connection, batchSize int) CampaignRepository {
	return &campaignRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func campaignKey(c domain.Campaign) string {
	return c.AdAccountID + ":" + c.PlatformCampaignID
}

// UpsertCampaigns devolve apenas as campanhas confirmadas, já com o id local
func (r *campaignRepository) UpsertCampaigns(ctx context.Context, campaigns []domain.Campaign) []domain.Campaign {
	return BatchUpsert(ctx, campaignsTable, uniqueBy(campaigns, campaignKey), r.batchSize,
		func(ctx context.Context, batch []domain.Campaign) ([]domain.Campaign, error) {
			rows := make([][]interface{}, 0, len(batch))
			for _, c := range batch {
				rows = append(rows, []interface{}{
					utils.GenerateID(), c.AdAccountID, c.PlatformCampaignID, c.Name, c.Status, c.Objective,
					nullFloat(c.DailyBudget), nullFloat(c.LifetimeBudget),
				})
			}

			saved, err := campaignUpsert.exec(ctx, r.conn, rows)
			if err != nil {
				return nil, err
			}

			return confirmed(batch, saved, campaignKey, func(c *domain.Campaign, row upsertedRow) {
				c.ID, c.CreatedAt, c.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
			}), nil
		})
}

func (r *campaignRepository) ListEntities(ctx context.Context, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	return campaignMirror.list(ctx, r.conn, adAccountID, window)
}

func (r *campaignRepository) CountEntities(ctx context.Context, adAccountID string) (int, error) {
	return campaignMirror.count(ctx, r.conn, adAccountID)
}

// confirmed filtra o lote pelos registros que o banco devolveu e preenche id e timestamps
func confirmed[T any](batch []T, saved map[string]upsertedRow, key func(T) string, apply func(*T, upsertedRow)) []T {
	out := make([]T, 0, len(saved))
	for _, record := range batch {
		row, ok := saved[key(record)]
		if !ok {
			continue
		}
		apply(&record, row)
		out = append(out, record)
	}
	return out
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
