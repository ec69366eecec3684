package repository

import (
	"context"
	"time"

	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

const metricsTable = "ad_metrics"

var metricUpsert = upsertStatement{
	table: metricsTable,
	columns: []string{
		"id", "entity_type", "entity_id", "date", "impressions", "clicks", "spend", "reach",
		"conversions", "conversion_value", "cpc", "cpm", "ctr", "roas",
	},
	conflict: []string{"entity_type", "entity_id", "date"},
	update: []string{
		"impressions", "clicks", "spend", "reach", "conversions", "conversion_value", "cpc", "cpm", "ctr", "roas",
	},
	key: "entity_type || ':' || entity_id || ':' || to_char(date, 'YYYY-MM-DD')",
}

type MetricRepository interface {
	UpsertMetrics(ctx context.Context, records []domain.MetricRecord) []domain.MetricRecord
}

type metricRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewMetricRepository(conn *postgres.Connection, batchSize int) MetricRepository {
	return &metricRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func metricKey(m domain.MetricRecord) string {
	return m.Key()
}

func (r *metricRepository) UpsertMetrics(ctx context.Context, records []domain.MetricRecord) []domain.MetricRecord {
	return BatchUpsert(ctx, metricsTable, uniqueBy(records, metricKey), r.batchSize,
		func(ctx context.Context, batch []domain.MetricRecord) ([]domain.MetricRecord, error) {
			rows := make([][]interface{}, 0, len(batch))
			for _, m := range batch {
				rows = append(rows, []interface{}{
					utils.GenerateID(), string(m.EntityType), m.EntityID, m.Date.Format(time.DateOnly),
					m.Impressions, m.Clicks, m.Spend, m.Reach,
					m.Conversions, m.ConversionValue, m.CPC, m.CPM, m.CTR, m.ROAS,
				})
			}

			saved, err := metricUpsert.exec(ctx, r.conn, rows)
			if err != nil {
				return nil, err
			}

			return confirmed(batch, saved, metricKey, func(m *domain.MetricRecord, row upsertedRow) {
				m.ID, m.CreatedAt, m.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
			}), nil
		})
}
