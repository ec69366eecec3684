package syncing

import (
	"context"

	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

// StructureReconciler espelha a hierarquia Campanha > Conjunto > Anúncio de uma conta.
// Pais são gravados antes dos filhos; filhos cujo pai não foi confirmado no banco são descartados.
type StructureReconciler struct {
	integrator meta.Integrator
	campaigns  repository.CampaignRepository
	adSets     repository.AdSetRepository
	ads        repository.AdRepository
}

func NewStructureReconciler(
	integrator meta.Integrator,
	campaigns repository.CampaignRepository,
	adSets repository.AdSetRepository,
	ads repository.AdRepository,
) *StructureReconciler {
	return &StructureReconciler{
		integrator: integrator,
		campaigns:  campaigns,
		adSets:     adSets,
		ads:        ads,
	}
}

func (s *StructureReconciler) SyncStructure(ctx context.Context, account *domain.AdAccount) (*domain.StructureSyncResult, error) {
	logger := log.ForContext(ctx).WithField("account_id", account.ID)

	// Mapas locais à chamada: id da plataforma -> linha local
	platformCampaigns, status := s.integrator.ListCampaigns(ctx, account)
	if !status.Succeeded() {
		logger.Warnf("structure: campanhas lidas parcialmente (status %s)", status)
	}

	campaignRecords := make([]domain.Campaign, 0, len(platformCampaigns))
	for _, c := range platformCampaigns {
		campaignRecords = append(campaignRecords, domain.Campaign{
			AdAccountID:        account.ID,
			PlatformCampaignID: c.ID,
			Name:               c.Name,
			Status:             c.Status,
			Objective:          c.Objective,
			DailyBudget:        parseBudget(c.DailyBudget),
			LifetimeBudget:     parseBudget(c.LifetimeBudget),
		})
	}

	savedCampaigns := s.campaigns.UpsertCampaigns(ctx, campaignRecords)
	campaignMap := make(map[string]domain.Campaign, len(savedCampaigns))
	for _, c := range savedCampaigns {
		campaignMap[c.PlatformCampaignID] = c
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adSetRecords := make([]domain.AdSet, 0)
	fetchedAdSets := make([]string, 0)
	for _, c := range platformCampaigns {
		platformAdSets, status := s.integrator.ListAdSets(ctx, account, c.ID)
		if !status.Succeeded() {
			logger.Warnf("structure: conjuntos da campanha %s lidos parcialmente (status %s)", c.ID, status)
		}

		for _, as := range platformAdSets {
			fetchedAdSets = append(fetchedAdSets, as.ID)

			parentID := as.CampaignID
			if parentID == "" {
				parentID = c.ID
			}

			parent, ok := campaignMap[parentID]
			if !ok {
				logger.Debugf("structure: conjunto %s descartado, campanha %s não gravada", as.ID, parentID)
				continue
			}

			adSetRecords = append(adSetRecords, domain.AdSet{
				AdCampaignID:     parent.ID,
				PlatformAdSetID:  as.ID,
				Name:             as.Name,
				Status:           as.Status,
				OptimizationGoal: as.OptimizationGoal,
				BillingEvent:     as.BillingEvent,
				DailyBudget:      parseBudget(as.DailyBudget),
			})
		}
	}

	savedAdSets := s.adSets.UpsertAdSets(ctx, adSetRecords)
	adSetMap := make(map[string]domain.AdSet, len(savedAdSets))
	for _, as := range savedAdSets {
		adSetMap[as.PlatformAdSetID] = as
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	adRecords := make([]domain.Ad, 0)
	for _, parentPlatformID := range uniqueIDs(fetchedAdSets) {
		platformAds, status := s.integrator.ListAds(ctx, account, parentPlatformID)
		if !status.Succeeded() {
			logger.Warnf("structure: anúncios do conjunto %s lidos parcialmente (status %s)", parentPlatformID, status)
		}

		for _, ad := range platformAds {
			adSetID := ad.AdSetID
			if adSetID == "" {
				adSetID = parentPlatformID
			}

			parent, ok := adSetMap[adSetID]
			if !ok {
				logger.Debugf("structure: anúncio %s descartado, conjunto %s não gravado", ad.ID, adSetID)
				continue
			}

			adRecords = append(adRecords, newAdRecord(parent.ID, ad))
		}
	}

	savedAds := s.ads.UpsertAds(ctx, adRecords)

	result := &domain.StructureSyncResult{
		Campaigns: len(savedCampaigns),
		AdSets:    len(savedAdSets),
		Ads:       len(savedAds),
	}

	logger.WithFields(log.Fields{
		"campaigns": result.Campaigns,
		"adsets":    result.AdSets,
		"ads":       result.Ads,
	}).Info("structure: sincronização concluída")

	return result, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func newAdRecord(adSetID string, ad metadomain.Ad) domain.Ad {
	record := domain.Ad{
		AdSetID:      adSetID,
		PlatformAdID: ad.ID,
		Name:         ad.Name,
		Status:       ad.Status,
	}

	if ad.Creative != nil {
		record.CreativeID = ad.Creative.ID
		record.CreativeName = ad.Creative.Name
		record.ThumbnailURL = ad.Creative.ThumbnailURL
		record.DestinationURL = ad.Creative.DestinationURL()
	}

	return record
}

// parseBudget devolve nil para orçamentos ausentes
func parseBudget(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v := utils.ParseFloatOrZero(raw)
	return &v
}
