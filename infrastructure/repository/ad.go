package repository

import (
	"context"

	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

const adsTable = "ads"

var adUpsert = upsertStatement{
	table:    adsTable,
	columns:  []string{"id", "ad_set_id", "platform_ad_id", "name", "status", "creative_id", "creative_name", "thumbnail_url", "destination_url"},
	conflict: []string{"ad_set_id", "platform_ad_id"},
	update:   []string{"name", "status", "creative_id", "creative_name", "thumbnail_url", "destination_url"},
	key:      "ad_set_id || ':' || platform_ad_id",
}

var adMirror = mirrorSelect{
	from:           "ads a",
	idColumn:       "a.id",
	platformColumn: "a.platform_ad_id",
	joins: []string{
		"ad_sets s ON s.id = a.ad_set_id",
		"ad_campaigns c ON c.id = s.ad_campaign_id",
	},
}

type AdRepository interface {
	EntityLister
	UpsertAds(ctx context.Context, ads []domain.Ad) []domain.Ad
}

type adRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewAdRepository(conn *postgres.Connection, batchSize int) AdRepository {
	return &adRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func adKey(a domain.Ad) string {
	return a.AdSetID + ":" + a.PlatformAdID
}

func (r *adRepository) UpsertAds(ctx context.Context, ads []domain.Ad) []domain.Ad {
	return BatchUpsert(ctx, adsTable, uniqueBy(ads, adKey), r.batchSize,
		func(ctx context.Context, batch []domain.Ad) ([]domain.Ad, error) {
			rows := make([][]interface{}, 0, len(batch))
			for _, a := range batch {
				rows = append(rows, []interface{}{
					utils.GenerateID(), a.AdSetID, a.PlatformAdID, a.Name, a.Status,
					a.CreativeID, a.CreativeName, a.ThumbnailURL, a.DestinationURL,
				})
			}

			saved, err := adUpsert.exec(ctx, r.conn, rows)
			if err != nil {
				return nil, err
			}

			return confirmed(batch, saved, adKey, func(a *domain.Ad, row upsertedRow) {
				a.ID, a.CreatedAt, a.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt
			}), nil
		})
}

func (r *adRepository) ListEntities(ctx context.Context, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	return adMirror.list(ctx, r.conn, adAccountID, window)
}

func (r *adRepository) CountEntities(ctx context.Context, adAccountID string) (int, error) {
	return adMirror.count(ctx, r.conn, adAccountID)
}
