package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// recordingRunner guarda as requisições recebidas em vez de executar os chunks
type recordingRunner struct {
	mu       sync.Mutex
	requests []domain.ChunkRequest
	users    []string
	failOn   domain.ChunkType
}

func (r *recordingRunner) Run(_ context.Context, userID string, req domain.ChunkRequest) (*domain.ChunkResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
	r.users = append(r.users, userID)

	if req.ChunkType == r.failOn {
		return nil, errors.New("falha simulada")
	}
	return &domain.ChunkResult{Success: true, ChunkType: req.ChunkType}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{DefaultEntityLimit: 50},
		ChunkDispatch: config.ChunkDispatch{
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 2,
		},
	}
}

func TestChunkDispatchService_dispatchAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)
	runner := &recordingRunner{}

	mockAccountRepo.EXPECT().ListActiveAccounts(gomock.Any()).Return([]*domain.AdAccount{
		{ID: "acc-1", UserID: "user-1", Platform: domain.PlatformFacebook},
		{ID: "acc-2", UserID: "user-2", Platform: domain.PlatformGoogle},
	}, nil)
	mockCampaignRepo.EXPECT().CountEntities(gomock.Any(), "acc-1").Return(50, nil)
	mockAdSetRepo.EXPECT().CountEntities(gomock.Any(), "acc-1").Return(0, nil)
	mockAdRepo.EXPECT().CountEntities(gomock.Any(), "acc-1").Return(120, nil)

	service := NewChunkDispatchService(mockAccountRepo, mockCampaignRepo, mockAdSetRepo, mockAdRepo, runner, testConfig())
	service.dispatchAll(context.Background())

	require.Len(t, runner.requests, 5)

	structure := runner.requests[0]
	assert.Equal(t, domain.ChunkTypeStructure, structure.ChunkType)
	assert.Equal(t, "structure", structure.ChunkID)
	assert.NotEmpty(t, structure.JobID)

	expected := []struct {
		chunkType domain.ChunkType
		offset    int
		chunkID   string
	}{
		{domain.ChunkTypeCampaignMetrics, 0, "campaign_metrics_0"},
		{domain.ChunkTypeAdMetrics, 0, "ad_metrics_0"},
		{domain.ChunkTypeAdMetrics, 50, "ad_metrics_50"},
		{domain.ChunkTypeAdMetrics, 100, "ad_metrics_100"},
	}
	for i, exp := range expected {
		req := runner.requests[i+1]
		assert.Equal(t, exp.chunkType, req.ChunkType)
		assert.Equal(t, exp.chunkID, req.ChunkID)
		require.NotNil(t, req.EntityOffset)
		assert.Equal(t, exp.offset, *req.EntityOffset)
		assert.Equal(t, 50, *req.EntityLimit)
		assert.Equal(t, structure.JobID, req.JobID)
	}

	for _, user := range runner.users {
		assert.Equal(t, "user-1", user)
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["dispatch_running"])
	assert.Equal(t, structure.JobID, status["last_job_id"])
}

func TestChunkDispatchService_SkipsMetricsWhenStructureFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	runner := &recordingRunner{failOn: domain.ChunkTypeStructure}

	mockAccountRepo.EXPECT().ListActiveAccounts(gomock.Any()).Return([]*domain.AdAccount{
		{ID: "acc-1", UserID: "user-1", Platform: domain.PlatformFacebook},
	}, nil)

	service := NewChunkDispatchService(
		mockAccountRepo,
		mocks.NewMockCampaignRepository(ctrl),
		mocks.NewMockAdSetRepository(ctrl),
		mocks.NewMockAdRepository(ctrl),
		runner,
		testConfig(),
	)
	service.dispatchAll(context.Background())

	require.Len(t, runner.requests, 1)
	assert.Equal(t, domain.ChunkTypeStructure, runner.requests[0].ChunkType)
}

func TestChunkDispatchService_IgnoresOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAccountRepo.EXPECT().ListActiveAccounts(gomock.Any()).Times(0)

	service := NewChunkDispatchService(
		mockAccountRepo,
		mocks.NewMockCampaignRepository(ctrl),
		mocks.NewMockAdSetRepository(ctrl),
		mocks.NewMockAdRepository(ctrl),
		&recordingRunner{},
		testConfig(),
	)

	require.True(t, service.acquire())
	service.dispatchAll(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))

	service.release()
	assert.Equal(t, false, service.GetStatus()["dispatch_running"])
}

func TestChunkDispatchService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewChunkDispatchService(
		mocks.NewMockAccountRepository(ctrl),
		mocks.NewMockCampaignRepository(ctrl),
		mocks.NewMockAdSetRepository(ctrl),
		mocks.NewMockAdRepository(ctrl),
		&recordingRunner{},
		testConfig(),
	)

	assert.NoError(t, service.Start(context.Background()))
}

func TestChunkDispatchService_TriggerManualSyncIsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unblock := make(chan struct{})
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAccountRepo.EXPECT().ListActiveAccounts(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*domain.AdAccount, error) {
			<-unblock
			return nil, nil
		}).
		Times(1)

	service := NewChunkDispatchService(
		mockAccountRepo,
		mocks.NewMockCampaignRepository(ctrl),
		mocks.NewMockAdSetRepository(ctrl),
		mocks.NewMockAdRepository(ctrl),
		&recordingRunner{},
		testConfig(),
	)

	assert.True(t, service.TriggerManualSync(context.Background()))
	assert.False(t, service.TriggerManualSync(context.Background()))
	assert.Equal(t, true, service.GetStatus()["dispatch_running"])

	close(unblock)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["dispatch_running"] == false
	}, time.Second, 10*time.Millisecond)
}
