package repository

import (
	"context"

	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

const adSetsTable = "ad_sets"

var adSetUpsert = upsertStatement{
	table:    adSetsTable,
	columns:  []string{"id", "ad_campaign_id", "platform_adset_id", "name", "status", "optimization_goal", "billing_event", "daily_budget"},
	conflict: []string{"ad_campaign_id", "platform_adset_id"},
	update:   []string{"name", "status", "optimization_goal", "billing_event", "daily_budget"},
	key:      "ad_campaign_id || ':' || platform_adset_id",
}

var adSetMirror = mirrorSelect{
	from:           "ad_sets s",
	idColumn:       "s.id",
	platformColumn: "s.platform_adset_id",
	joins:          []string{"ad_campaigns c ON c.id = s.ad_campaign_id"},
}

type AdSetRepository interface {
	EntityLister
	UpsertAdSets(ctx context.Context, adSets []domain.AdSet) []domain.AdSet
}

type adSetRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewAdSetRepository(conn *postgres.Connection, batchSize int) AdSetRepository {
	return &adSetRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func adSetKey(s domain.AdSet) string {
	return s.AdCampaignID + ":" + s.PlatformAdSetID
}

func (r *adSetRepository) UpsertAdSets(ctx context.Context, adSets []domain.AdSet) []domain.AdSet {
	return BatchUpsert(ctx, adSetsTable, uniqueBy(adSets, adSetKey), r.batchSize,
		func(ctx context.Context, batch []domain.AdSet) ([]domain.AdSet, error) {
			rows := make([][]interface{}, 0, len(batch))
			for _, s := range batch {
				rows = append(rows, []interface{}{
					utils.GenerateID(), s.AdCampaignID, s.PlatformAdSetID, s.Name, s.Status,
					s.OptimizationGoal, s.BillingEvent, nullFloat(s.DailyBudget),
				})
			}

			saved, err := adSetUpsert.exec(ctx, r.conn, rows)
			if err != nil {
				return nil, err
			}

			return confirmed(batch, saved, adSetKey, func(s *domain.AdSet, row upsertedRow) {
				s.ID, s.CreatedAt, s.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
			}), nil
		})
}

func (r *adSetRepository) ListEntities(ctx context.Context, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	return adSetMirror.list(ctx, r.conn, adAccountID, window)
}

func (r *adSetRepository) CountEntities(ctx context.Context, adAccountID string) (int, error) {
	return adSetMirror.count(ctx, r.conn, adAccountID)
}
