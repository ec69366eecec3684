package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

// ChunkDispatchConfig representa a configuração do despachante de chunks
type ChunkDispatchConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	EntityLimit       int
	SyncEnabled       bool
}

// ChunkDispatchService divide a sincronização de cada conta ativa em chunks e os executa
type ChunkDispatchService struct {
	scheduler           *gocron.Scheduler
	config              ChunkDispatchConfig
	accountRepo         repository.AccountRepository
	counters            map[domain.EntityType]repository.EntityLister
	runner              syncing.Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastJobID           string
}

// NewChunkDispatchService cria uma nova instância do despachante de chunks
func NewChunkDispatchService(
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	runner syncing.Runner,
	appConfig *config.Config,
) *ChunkDispatchService {
	dispatchConfig := ChunkDispatchConfig{
		CronSchedule:      appConfig.ChunkDispatch.CronSchedule,
		MaxConcurrentJobs: appConfig.ChunkDispatch.MaxConcurrentJobs,
		EntityLimit:       appConfig.Sync.DefaultEntityLimit,
		SyncEnabled:       appConfig.ChunkDispatch.Enabled,
	}
	if dispatchConfig.MaxConcurrentJobs <= 0 {
		dispatchConfig.MaxConcurrentJobs = 1
	}
	if dispatchConfig.EntityLimit <= 0 {
		dispatchConfig.EntityLimit = 50
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       dispatchConfig.CronSchedule,
		"max_concurrent_jobs": dispatchConfig.MaxConcurrentJobs,
		"entity_limit":        dispatchConfig.EntityLimit,
		"sync_enabled":        dispatchConfig.SyncEnabled,
	}).Info("Configuração do despachante de chunks carregada")

	return &ChunkDispatchService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      dispatchConfig,
		accountRepo: accountRepo,
		counters: map[domain.EntityType]repository.EntityLister{
			domain.EntityTypeCampaign: campaignRepo,
			domain.EntityTypeAdSet:    adSetRepo,
			domain.EntityTypeAd:       adRepo,
		},
		runner: runner,
	}
}

// Start inicia o agendador
func (s *ChunkDispatchService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Despacho automático de chunks desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de despacho de chunks")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatchAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar despacho de chunks: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de despacho de chunks")
		s.scheduler.Stop()
	}()

	return nil
}

// dispatchAll executa os chunks de todas as contas ativas; execuções sobrepostas são ignoradas
func (s *ChunkDispatchService) dispatchAll(ctx context.Context) {
	if !s.acquire() {
		logrus.Info("Despacho de chunks já em andamento, ignorando")
		return
	}
	defer s.release()

	s.runDispatch(ctx)
}

// runDispatch exige que o chamador já tenha obtido a vez via acquire
func (s *ChunkDispatchService) runDispatch(ctx context.Context) {
	ctx, correlationID := log.WithCorrelationID(ctx)
	jobID := utils.GenerateJobID()
	startTime := time.Now()

	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.lastJobID = jobID
	s.syncMutex.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":         jobID,
		"correlation_id": correlationID,
	})
	logger.Info("Iniciando despacho de chunks para todas as contas ativas")

	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar contas para despacho de chunks")
		return
	}

	if len(accounts) == 0 {
		logger.Info("Nenhuma conta ativa encontrada para despacho de chunks")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.Platform != domain.PlatformFacebook {
			logger.WithField("account_id", account.ID).Debugf("Plataforma %s sem sincronização, pulando", account.Platform)
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.dispatchAccount(ctx, jobID, acc)
		}(account)
	}

	wg.Wait()

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logger.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
	}).Info("Despacho de chunks concluído")
}

// dispatchAccount roda a estrutura e depois janelas disjuntas de cada tipo de métrica, em sequência
func (s *ChunkDispatchService) dispatchAccount(ctx context.Context, jobID string, acc *domain.AdAccount) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":     jobID,
		"account_id": acc.ID,
	})

	structureReq := domain.ChunkRequest{
		AdAccountID: acc.ID,
		ChunkType:   domain.ChunkTypeStructure,
		JobID:       jobID,
		ChunkID:     string(domain.ChunkTypeStructure),
	}
	if _, err := s.runner.Run(ctx, acc.UserID, structureReq); err != nil {
		logger.WithError(err).Error("Chunk de estrutura falhou, métricas da conta não serão despachadas")
		return
	}

	for _, chunkType := range domain.MetricsChunkTypes {
		entityType, _ := chunkType.EntityType()

		total, err := s.counters[entityType].CountEntities(ctx, acc.ID)
		if err != nil {
			logger.WithError(err).Errorf("Erro ao contar entidades %s", entityType)
			continue
		}

		for offset := 0; offset < total; offset += s.config.EntityLimit {
			if ctx.Err() != nil {
				logger.Warn("Despacho interrompido por cancelamento")
				return
			}

			offset := offset // cópia por iteração (semântica de loop do Go 1.22 sob go 1.21)
			limit := s.config.EntityLimit
			req := domain.ChunkRequest{
				AdAccountID:  acc.ID,
				ChunkType:    chunkType,
				EntityOffset: &offset,
				EntityLimit:  &limit,
				JobID:        jobID,
				ChunkID:      fmt.Sprintf("%s_%d", chunkType, offset),
			}

			if _, err := s.runner.Run(ctx, acc.UserID, req); err != nil {
				logger.WithError(err).Warnf("Chunk %s falhou", req.ChunkID)
			}
		}
	}
}

func (s *ChunkDispatchService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *ChunkDispatchService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um despacho; retorna false se já houver um em andamento
func (s *ChunkDispatchService) TriggerManualSync(ctx context.Context) bool {
	if !s.acquire() {
		logrus.Info("Despacho de chunks já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando despacho manual de chunks")
	go func() {
		defer s.release()
		s.runDispatch(context.WithoutCancel(ctx))
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ChunkDispatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"dispatch_enabled":        s.config.SyncEnabled,
		"dispatch_cron":           s.config.CronSchedule,
		"dispatch_max_concurrent": s.config.MaxConcurrentJobs,
		"dispatch_entity_limit":   s.config.EntityLimit,
		"dispatch_running":        s.syncRunning,
		"last_job_id":             s.lastJobID,
		"last_sync_started_at":    s.lastSyncStartedAt,
		"last_sync_completed_at":  s.lastSyncCompletedAt,
	}
}
