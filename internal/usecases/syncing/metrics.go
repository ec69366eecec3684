package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

// DefaultConversionValueMultiplier é a escala aplicada ao valor bruto da ação "purchase".
// O valor informado pela plataforma vem numa unidade diferente da receita gravada;
// a escala é configurável por SYNC_CONVERSION_VALUE_MULTIPLIER.
const DefaultConversionValueMultiplier = 10.0

// MetricsAggregator grava uma linha de métrica por entidade e dia
type MetricsAggregator struct {
	integrator meta.Integrator
	listers    map[domain.EntityType]repository.EntityLister
	metrics    repository.MetricRepository
	multiplier float64
}

func NewMetricsAggregator(
	integrator meta.Integrator,
	campaigns repository.CampaignRepository,
	adSets repository.AdSetRepository,
	ads repository.AdRepository,
	metrics repository.MetricRepository,
	conversionValueMultiplier float64,
) *MetricsAggregator {
	return &MetricsAggregator{
		integrator: integrator,
		listers: map[domain.EntityType]repository.EntityLister{
			domain.EntityTypeCampaign: campaigns,
			domain.EntityTypeAdSet:    adSets,
			domain.EntityTypeAd:       ads,
		},
		metrics:    metrics,
		multiplier: conversionValueMultiplier,
	}
}

func (a *MetricsAggregator) SyncMetrics(
	ctx context.Context,
	account *domain.AdAccount,
	entityType domain.EntityType,
	window domain.EntityWindow,
	dateRange domain.DateRange,
) (*domain.MetricsSyncResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":  account.ID,
		"entity_type": entityType,
	})

	lister, ok := a.listers[entityType]
	if !ok {
		return nil, fmt.Errorf("tipo de entidade desconhecido: %s", entityType)
	}

	entities, err := lister.ListEntities(ctx, account.ID, window)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entidades do espelho: %w", err)
	}

	records := make([]domain.MetricRecord, 0, len(entities))
	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, status := a.integrator.GetDailyInsights(ctx, account, entityType, entity.PlatformID, dateRange)
		if !status.Succeeded() {
			logger.Warnf("metrics: insights de %s indisponíveis (status %s)", entity.PlatformID, status)
		}

		for _, row := range rows {
			record, err := newMetricRecord(entityType, entity.ID, row, a.multiplier)
			if err != nil {
				logger.WithError(err).Warnf("metrics: linha de insight de %s ignorada", entity.PlatformID)
				continue
			}
			records = append(records, record)
		}
	}

	saved := a.metrics.UpsertMetrics(ctx, records)

	var totalSpend float64
	for _, r := range saved {
		totalSpend += r.Spend
	}

	logger.WithFields(log.Fields{
		"entities":    len(entities),
		"metrics":     len(saved),
		"total_spend": utils.RoundWithTwoDecimalPlace(totalSpend),
	}).Info("metrics: sincronização concluída")

	return &domain.MetricsSyncResult{
		EntitiesProcessed: len(entities),
		MetricsSynced:     len(saved),
	}, nil
}

// newMetricRecord converte uma linha diária de insights.
// A primeira ação "purchase" define conversões (bruto) e valor de conversão (bruto * multiplier).
func newMetricRecord(entityType domain.EntityType, entityID string, row metadomain.InsightRow, multiplier float64) (domain.MetricRecord, error) {
	date, err := time.Parse(time.DateOnly, row.DateStart)
	if err != nil {
		return domain.MetricRecord{}, fmt.Errorf("date_start inválido %q: %w", row.DateStart, err)
	}

	record := domain.MetricRecord{
		EntityType:  entityType,
		EntityID:    entityID,
		Date:        date,
		Impressions: utils.ParseIntOrZero(row.Impressions),
		Clicks:      utils.ParseIntOrZero(row.Clicks),
		Spend:       utils.ParseFloatOrZero(row.Spend),
		Reach:       utils.ParseIntOrZero(row.Reach),
		CPC:         utils.ParseFloatOrZero(row.CPC),
		CPM:         utils.ParseFloatOrZero(row.CPM),
		CTR:         utils.ParseFloatOrZero(row.CTR),
	}

	if raw, ok := row.PurchaseValue(); ok {
		record.Conversions = utils.ParseFloatOrZero(raw)
		record.ConversionValue = record.Conversions * multiplier
	}

	if record.Spend > 0 {
		record.ROAS = record.ConversionValue / record.Spend
	}

	return record, nil
}
