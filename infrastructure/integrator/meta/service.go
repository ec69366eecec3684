package meta

import (
	"context"
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/log"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Integrator expõe a hierarquia e os insights de uma conta da Meta.
// Os métodos devolvem o que foi lido mesmo quando a paginação falha;
// o status informa se a leitura foi completa.
type Integrator interface {
	ListCampaigns(ctx context.Context, account *domain.AdAccount) ([]metadomain.Campaign, metaclient.PageStatus)
	ListAdSets(ctx context.Context, account *domain.AdAccount, platformCampaignID string) ([]metadomain.AdSet, metaclient.PageStatus)
	ListAds(ctx context.Context, account *domain.AdAccount, platformAdSetID string) ([]metadomain.Ad, metaclient.PageStatus)
	GetDailyInsights(ctx context.Context, account *domain.AdAccount, level domain.EntityType, platformID string, dateRange domain.DateRange) ([]metadomain.InsightRow, metaclient.PageStatus)
}

type MetaIntegrator struct {
	pager *metaclient.Pager
	urls  *metaclient.URLBuilder
}

func New(pager *metaclient.Pager, urls *metaclient.URLBuilder) Integrator {
	return &MetaIntegrator{
		pager: pager,
		urls:  urls,
	}
}

func (s *MetaIntegrator) ListCampaigns(ctx context.Context, account *domain.AdAccount) ([]metadomain.Campaign, metaclient.PageStatus) {
	raw, status := s.pager.FetchAll(ctx, s.urls.Campaigns(account.PlatformAccountID, account.AccessToken))

	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": account.ID,
		"records":    len(raw),
		"status":     status,
	}).Debug("meta: campanhas obtidas")

	return decodeAll[metadomain.Campaign](ctx, raw), status
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, account *domain.AdAccount, platformCampaignID string) ([]metadomain.AdSet, metaclient.PageStatus) {
	raw, status := s.pager.FetchAll(ctx, s.urls.AdSets(platformCampaignID, account.AccessToken))
	return decodeAll[metadomain.AdSet](ctx, raw), status
}

func (s *MetaIntegrator) ListAds(ctx context.Context, account *domain.AdAccount, platformAdSetID string) ([]metadomain.Ad, metaclient.PageStatus) {
	raw, status := s.pager.FetchAll(ctx, s.urls.Ads(platformAdSetID, account.AccessToken))
	return decodeAll[metadomain.Ad](ctx, raw), status
}

// GetDailyInsights lê uma única página de insights diários da entidade
func (s *MetaIntegrator) GetDailyInsights(ctx context.Context, account *domain.AdAccount, level domain.EntityType, platformID string, dateRange domain.DateRange) ([]metadomain.InsightRow, metaclient.PageStatus) {
	result := s.pager.FetchOne(ctx, s.urls.Insights(platformID, level, dateRange, account.AccessToken))
	if result.Status != metaclient.PageOK {
		return []metadomain.InsightRow{}, result.Status
	}

	return decodeAll[metadomain.InsightRow](ctx, result.Data), result.Status
}

// decodeAll descarta registros que não puderam ser decodificados
func decodeAll[T any](ctx context.Context, raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := jsonAPI.Unmarshal(r, &item); err != nil {
			log.ForContext(ctx).WithError(fmt.Errorf("erro ao decodificar registro: %w", err)).Warn("meta: registro ignorado")
			continue
		}
		out = append(out, item)
	}
	return out
}
