package syncing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	metamocks "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testAccount = &domain.AdAccount{
	ID:                "acc-1",
	UserID:            "user-1",
	Platform:          domain.PlatformFacebook,
	PlatformAccountID: "123",
	AccessToken:       "tok",
	Status:            domain.AdAccountStatusActive,
}

func assignCampaignIDs(_ context.Context, campaigns []domain.Campaign) []domain.Campaign {
	for i := range campaigns {
		campaigns[i].ID = "loc-" + campaigns[i].PlatformCampaignID
	}
	return campaigns
}

func assignAdSetIDs(_ context.Context, adSets []domain.AdSet) []domain.AdSet {
	for i := range adSets {
		adSets[i].ID = "loc-" + adSets[i].PlatformAdSetID
	}
	return adSets
}

func assignAdIDs(_ context.Context, ads []domain.Ad) []domain.Ad {
	for i := range ads {
		ads[i].ID = "loc-" + ads[i].PlatformAdID
	}
	return ads
}

func TestStructureReconciler_SyncStructure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := metamocks.NewMockIntegrator(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	adSetRepo := mocks.NewMockAdSetRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)

	// 2 campanhas; a primeira com 2 conjuntos e a segunda sem nenhum; o primeiro conjunto com 3 anúncios
	integrator.EXPECT().ListCampaigns(gomock.Any(), testAccount).
		Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha 1", DailyBudget: "5000"}, {ID: "c2", Name: "Campanha 2"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, "c1").
		Return([]metadomain.AdSet{{ID: "s1", CampaignID: "c1"}, {ID: "s2", CampaignID: "c1"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, "c2").
		Return([]metadomain.AdSet{}, metaclient.PageExhausted)
	integrator.EXPECT().ListAds(gomock.Any(), testAccount, "s1").
		Return([]metadomain.Ad{{ID: "a1", AdSetID: "s1"}, {ID: "a2", AdSetID: "s1"}, {ID: "a3", AdSetID: "s1"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAds(gomock.Any(), testAccount, "s2").
		Return([]metadomain.Ad{}, metaclient.PageExhausted)

	campaignRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).DoAndReturn(assignCampaignIDs)
	adSetRepo.EXPECT().UpsertAdSets(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, adSets []domain.AdSet) []domain.AdSet {
		for _, as := range adSets {
			assert.Equal(t, "loc-c1", as.AdCampaignID)
		}
		return assignAdSetIDs(ctx, adSets)
	})
	adRepo.EXPECT().UpsertAds(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ads []domain.Ad) []domain.Ad {
		for _, ad := range ads {
			assert.Equal(t, "loc-s1", ad.AdSetID)
		}
		return assignAdIDs(ctx, ads)
	})

	reconciler := NewStructureReconciler(integrator, campaignRepo, adSetRepo, adRepo)
	result, err := reconciler.SyncStructure(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Campaigns)
	assert.Equal(t, 2, result.AdSets)
	assert.Equal(t, 3, result.Ads)
	assert.Equal(t, 7, result.EntitiesProcessed())
}

func TestStructureReconciler_DropsOrphansWhenParentUpsertFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := metamocks.NewMockIntegrator(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	adSetRepo := mocks.NewMockAdSetRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)

	integrator.EXPECT().ListCampaigns(gomock.Any(), testAccount).
		Return([]metadomain.Campaign{{ID: "c1"}, {ID: "c2"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, "c1").
		Return([]metadomain.AdSet{{ID: "s1", CampaignID: "c1"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, "c2").
		Return([]metadomain.AdSet{{ID: "s2", CampaignID: "c2"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAds(gomock.Any(), testAccount, "s1").
		Return([]metadomain.Ad{{ID: "a1", AdSetID: "s1"}}, metaclient.PageExhausted)
	integrator.EXPECT().ListAds(gomock.Any(), testAccount, "s2").
		Return([]metadomain.Ad{{ID: "a2", AdSetID: "s2"}}, metaclient.PageExhausted)

	// O lote da campanha c2 falhou: apenas c1 é confirmada
	campaignRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, campaigns []domain.Campaign) []domain.Campaign {
			require.Len(t, campaigns, 2)
			return assignCampaignIDs(ctx, campaigns[:1])
		})

	var writtenAdSets []domain.AdSet
	adSetRepo.EXPECT().UpsertAdSets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, adSets []domain.AdSet) []domain.AdSet {
			writtenAdSets = assignAdSetIDs(ctx, adSets)
			return writtenAdSets
		})

	var writtenAds []domain.Ad
	adRepo.EXPECT().UpsertAds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ads []domain.Ad) []domain.Ad {
			writtenAds = assignAdIDs(ctx, ads)
			return writtenAds
		})

	reconciler := NewStructureReconciler(integrator, campaignRepo, adSetRepo, adRepo)
	result, err := reconciler.SyncStructure(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Campaigns)
	require.Len(t, writtenAdSets, 1)
	assert.Equal(t, "s1", writtenAdSets[0].PlatformAdSetID)
	assert.Equal(t, "loc-c1", writtenAdSets[0].AdCampaignID)
	require.Len(t, writtenAds, 1)
	assert.Equal(t, "a1", writtenAds[0].PlatformAdID)
	assert.Equal(t, 3, result.EntitiesProcessed())
}

func TestStructureReconciler_KeepsPartialPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := metamocks.NewMockIntegrator(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	adSetRepo := mocks.NewMockAdSetRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)

	integrator.EXPECT().ListCampaigns(gomock.Any(), testAccount).
		Return([]metadomain.Campaign{{ID: "c1"}}, metaclient.PageRateLimited)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, "c1").
		Return([]metadomain.AdSet{}, metaclient.PageUpstreamError)

	campaignRepo.EXPECT().UpsertCampaigns(gomock.Any(), gomock.Any()).DoAndReturn(assignCampaignIDs)
	adSetRepo.EXPECT().UpsertAdSets(gomock.Any(), gomock.Len(0)).Return([]domain.AdSet{})
	adRepo.EXPECT().UpsertAds(gomock.Any(), gomock.Len(0)).Return([]domain.Ad{})

	reconciler := NewStructureReconciler(integrator, campaignRepo, adSetRepo, adRepo)
	result, err := reconciler.SyncStructure(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, 1, result.EntitiesProcessed())
}

func TestNewAdRecord_DestinationURLPriority(t *testing.T) {
	ad := metadomain.Ad{
		ID: "a1",
		Creative: &metadomain.Creative{
			ID:           "cr1",
			Name:         "Criativo",
			ThumbnailURL: "https://img",
			ObjectStorySpec: &metadomain.ObjectStorySpec{
				LinkData: &metadomain.LinkData{Link: "https://loja.com/link"},
				VideoData: &metadomain.VideoData{CallToAction: &metadomain.CallToAction{
					Value: &metadomain.CallToActionValue{Link: "https://loja.com/video"},
				}},
			},
		},
	}

	record := newAdRecord("loc-s1", ad)

	assert.Equal(t, "https://loja.com/link", record.DestinationURL)
	assert.Equal(t, "cr1", record.CreativeID)
	assert.Equal(t, "loc-s1", record.AdSetID)
	assert.Empty(t, newAdRecord("loc-s1", metadomain.Ad{ID: "a2"}).DestinationURL)
}

func TestParseBudget(t *testing.T) {
	assert.Nil(t, parseBudget(""))
	require.NotNil(t, parseBudget("5000"))
	assert.Equal(t, 5000.0, *parseBudget("5000"))
}

func TestStructureReconciler_SyncStructureIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := metamocks.NewMockIntegrator(ctrl)
	integrator.EXPECT().ListCampaigns(gomock.Any(), testAccount).
		Return([]metadomain.Campaign{{ID: "c1", Name: "Campanha 1"}, {ID: "c2", Name: "Campanha 2"}}, metaclient.PageExhausted).
		Times(2)
	integrator.EXPECT().ListAdSets(gomock.Any(), testAccount, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.AdAccount, campaignID string) ([]metadomain.AdSet, metaclient.PageStatus) {
			return []metadomain.AdSet{{ID: campaignID + "-s1", CampaignID: campaignID}}, metaclient.PageExhausted
		}).
		Times(4)
	integrator.EXPECT().ListAds(gomock.Any(), testAccount, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.AdAccount, adSetID string) ([]metadomain.Ad, metaclient.PageStatus) {
			return []metadomain.Ad{
				{ID: adSetID + "-a1", AdSetID: adSetID},
				{ID: adSetID + "-a2", AdSetID: adSetID},
			}, metaclient.PageExhausted
		}).
		Times(4)

	mirror := newMemoryMirror()
	reconciler := NewStructureReconciler(integrator, memoryCampaigns{mirror}, memoryAdSets{mirror}, memoryAds{mirror})

	first, err := reconciler.SyncStructure(context.Background(), testAccount)
	require.NoError(t, err)

	snapshot := func() map[string]string {
		ids := map[string]string{}
		for k, c := range mirror.campaigns {
			ids["campaign:"+k] = c.ID
		}
		for k, s := range mirror.adSets {
			ids["adset:"+k] = s.ID
		}
		for k, a := range mirror.ads {
			ids["ad:"+k] = a.ID
		}
		return ids
	}
	before := snapshot()

	second, err := reconciler.SyncStructure(context.Background(), testAccount)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2+2+4, second.EntitiesProcessed())
	assert.Len(t, mirror.campaigns, 2)
	assert.Len(t, mirror.adSets, 2)
	assert.Len(t, mirror.ads, 4)
	assert.Equal(t, before, snapshot())
}
