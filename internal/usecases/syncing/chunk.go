package syncing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/metrics"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

// DefaultMaxEntityLimit é a maior janela aceita quando a configuração não define outra
const DefaultMaxEntityLimit = 500

// ChunkRunner valida a invocação, resolve a conta e delega ao reconciliador ou ao agregador.
// Erros devolvidos são sempre *ChunkError.
type ChunkRunner struct {
	accounts  repository.AccountRepository
	chunks    repository.SyncJobChunkRepository
	structure StructureSyncer
	metrics   MetricsSyncer
	tokens    TokenRefresher
	cfg       config.Sync
	now       func() time.Time
}

func NewChunkRunner(
	accounts repository.AccountRepository,
	chunks repository.SyncJobChunkRepository,
	structure StructureSyncer,
	metrics MetricsSyncer,
	tokens TokenRefresher,
	cfg config.Sync,
) *ChunkRunner {
	if cfg.MaxEntityLimit <= 0 {
		cfg.MaxEntityLimit = DefaultMaxEntityLimit
	}

	return &ChunkRunner{
		accounts:  accounts,
		chunks:    chunks,
		structure: structure,
		metrics:   metrics,
		tokens:    tokens,
		cfg:       cfg,
		now:       time.Now,
	}
}

// chunkPlan é a requisição já validada e com defaults aplicados
type chunkPlan struct {
	chunkType  domain.ChunkType
	entityType domain.EntityType
	window     domain.EntityWindow
	dateRange  domain.DateRange
}

func (r *ChunkRunner) Run(ctx context.Context, userID string, req domain.ChunkRequest) (result *domain.ChunkResult, err error) {
	startedAt := r.now()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": req.AdAccountID,
		"chunk_type": req.ChunkType,
		"job_id":     req.JobID,
		"chunk_id":   req.ChunkID,
	})

	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		label := chunkTypeLabel(req.ChunkType)
		metrics.Chunks.WithLabelValues(label, status).Inc()
		metrics.ChunkDuration.WithLabelValues(label).Observe(time.Since(startedAt).Seconds())
	}()

	plan, err := r.plan(req)
	if err != nil {
		logger.WithError(err).Warn("chunk: requisição inválida")
		return nil, err
	}

	account, err := r.resolveAccount(ctx, userID, req.AdAccountID)
	if err != nil {
		logger.WithError(err).Warn("chunk: conta rejeitada")
		return nil, err
	}

	r.refreshTokenIfNeeded(ctx, account)

	tracked := req.JobID != "" && req.ChunkID != ""
	if tracked {
		r.track(ctx, &domain.SyncJobChunk{
			JobID:       req.JobID,
			ChunkID:     req.ChunkID,
			AdAccountID: account.ID,
			ChunkType:   plan.chunkType,
			Status:      domain.ChunkStatusRunning,
			StartedAt:   startedAt,
		})
	}

	result, execErr := r.execute(ctx, account, plan)
	if execErr != nil {
		logger.WithError(execErr).Error("chunk: falha na execução")
		if tracked {
			msg := execErr.Error()
			r.finish(ctx, req, account.ID, plan.chunkType, startedAt, domain.ChunkStatusFailed, 0, &msg)
		}
		return nil, NewChunkError(ErrChunkFailed, apiErrors.ErrInternalServer, execErr.Error())
	}

	result.JobID = req.JobID
	result.ChunkID = req.ChunkID

	if err := r.accounts.TouchLastSynced(ctx, account.ID, r.now()); err != nil {
		logger.WithError(err).Warn("chunk: falha ao atualizar last_synced_at")
	}

	if tracked {
		r.finish(ctx, req, account.ID, plan.chunkType, startedAt, domain.ChunkStatusCompleted, result.EntitiesProcessed, nil)
	}

	logger.Infof("chunk: concluído com %d entidades processadas", result.EntitiesProcessed)

	return result, nil
}

func (r *ChunkRunner) plan(req domain.ChunkRequest) (*chunkPlan, error) {
	if req.AdAccountID == "" {
		return nil, NewChunkError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, "adAccountId")
	}
	if req.ChunkType == "" {
		return nil, NewChunkError(ErrMissingRequiredField, apiErrors.ErrMissingRequiredData, "chunkType")
	}
	if !req.ChunkType.IsValid() {
		return nil, NewChunkError(ErrUnknownChunkType, apiErrors.ErrUnknownChunkType, string(req.ChunkType))
	}

	plan := &chunkPlan{
		chunkType: req.ChunkType,
		window:    domain.EntityWindow{Offset: 0, Limit: r.cfg.DefaultEntityLimit},
	}
	plan.entityType, _ = req.ChunkType.EntityType()

	if req.EntityOffset != nil {
		plan.window.Offset = *req.EntityOffset
	}
	if req.EntityLimit != nil {
		plan.window.Limit = *req.EntityLimit
	}
	if plan.window.Offset < 0 || plan.window.Limit <= 0 {
		return nil, NewChunkError(ErrInvalidWindow, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("entityOffset=%d entityLimit=%d", plan.window.Offset, plan.window.Limit))
	}
	if plan.window.Limit > r.cfg.MaxEntityLimit {
		return nil, NewChunkError(ErrInvalidWindow, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("entityLimit=%d excede o máximo de %d", plan.window.Limit, r.cfg.MaxEntityLimit))
	}

	today := utils.TruncateDay(r.now())
	plan.dateRange = domain.DateRange{
		Since: today.AddDate(0, 0, -r.cfg.DefaultLookbackDays),
		Until: today,
	}

	if req.StartDate != "" {
		since, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return nil, NewChunkError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "startDate deve estar no formato YYYY-MM-DD")
		}
		plan.dateRange.Since = *since
	}
	if req.EndDate != "" {
		until, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, NewChunkError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "endDate deve estar no formato YYYY-MM-DD")
		}
		plan.dateRange.Until = *until
	}
	if plan.dateRange.Since.After(plan.dateRange.Until) {
		return nil, NewChunkError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "startDate posterior a endDate")
	}

	return plan, nil
}

func (r *ChunkRunner) resolveAccount(ctx context.Context, userID, accountID string) (*domain.AdAccount, error) {
	account, err := r.accounts.GetAccountByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, NewChunkError(ErrChunkFailed, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if account == nil {
		return nil, NewChunkError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID)
	}
	if account.Platform != domain.PlatformFacebook {
		return nil, NewChunkError(ErrUnsupportedPlatform, apiErrors.ErrUnsupportedPlatform, string(account.Platform))
	}
	if account.IsTokenExpired(r.now()) {
		return nil, NewChunkError(ErrTokenExpired, apiErrors.ErrExpiredToken, "reconecte a conta de anúncios")
	}

	return account, nil
}

// refreshTokenIfNeeded troca o token perto da expiração; falhas são apenas logadas
func (r *ChunkRunner) refreshTokenIfNeeded(ctx context.Context, account *domain.AdAccount) {
	if r.tokens == nil || !account.NeedsTokenRefresh(r.now(), r.cfg.TokenRefreshWindow) || !r.tokens.Enabled() {
		return
	}

	logger := log.ForContext(ctx).WithField("account_id", account.ID)
	logger.Info("chunk: token expira em breve, renovando")

	resp, err := r.tokens.GetLongLivedToken(ctx, account.AccessToken)
	if err != nil {
		logger.WithError(err).Warn("chunk: falha ao renovar token da conta")
		return
	}

	expiresAt := metaclient.CalculateTokenExpiration(r.now(), resp.ExpiresIn)
	if err := r.accounts.UpdateToken(ctx, account.ID, resp.AccessToken, expiresAt); err != nil {
		logger.WithError(err).Warn("chunk: falha ao gravar token renovado")
		return
	}

	account.AccessToken = resp.AccessToken
	account.TokenExpiresAt = &expiresAt
}

func (r *ChunkRunner) execute(ctx context.Context, account *domain.AdAccount, plan *chunkPlan) (*domain.ChunkResult, error) {
	if plan.chunkType == domain.ChunkTypeStructure {
		res, err := r.structure.SyncStructure(ctx, account)
		if err != nil {
			return nil, err
		}

		return &domain.ChunkResult{
			Success:           true,
			ChunkType:         plan.chunkType,
			EntitiesProcessed: res.EntitiesProcessed(),
			Campaigns:         intPtr(res.Campaigns),
			AdSets:            intPtr(res.AdSets),
			Ads:               intPtr(res.Ads),
		}, nil
	}

	res, err := r.metrics.SyncMetrics(ctx, account, plan.entityType, plan.window, plan.dateRange)
	if err != nil {
		return nil, err
	}

	return &domain.ChunkResult{
		Success:           true,
		ChunkType:         plan.chunkType,
		EntitiesProcessed: res.EntitiesProcessed,
		MetricsSynced:     intPtr(res.MetricsSynced),
		StartDate:         plan.dateRange.Since.Format(time.DateOnly),
		EndDate:           plan.dateRange.Until.Format(time.DateOnly),
	}, nil
}

func (r *ChunkRunner) finish(
	ctx context.Context,
	req domain.ChunkRequest,
	accountID string,
	chunkType domain.ChunkType,
	startedAt time.Time,
	status domain.ChunkStatus,
	entitiesProcessed int,
	errorMessage *string,
) {
	completedAt := r.now()
	r.track(ctx, &domain.SyncJobChunk{
		JobID:             req.JobID,
		ChunkID:           req.ChunkID,
		AdAccountID:       accountID,
		ChunkType:         chunkType,
		Status:            status,
		EntitiesProcessed: entitiesProcessed,
		ErrorMessage:      errorMessage,
		StartedAt:         startedAt,
		CompletedAt:       &completedAt,
	})
}

func (r *ChunkRunner) track(ctx context.Context, chunk *domain.SyncJobChunk) {
	if err := r.chunks.SaveChunk(ctx, chunk); err != nil {
		log.ForContext(ctx).WithError(err).Warnf("chunk: falha ao registrar status %s", chunk.Status)
	}
}

// AsChunkError converte qualquer erro em *ChunkError, usando 500 para erros não classificados
func AsChunkError(err error) *ChunkError {
	var chunkErr *ChunkError
	if errors.As(err, &chunkErr) {
		return chunkErr
	}
	return NewChunkError(ErrChunkFailed, apiErrors.ErrInternalServer, err.Error())
}

// chunkTypeLabel mantém a cardinalidade das métricas fixa: tipos desconhecidos viram "invalid"
func chunkTypeLabel(chunkType domain.ChunkType) string {
	if !chunkType.IsValid() {
		return "invalid"
	}
	return string(chunkType)
}

func intPtr(v int) *int {
	return &v
}
