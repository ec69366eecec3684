package syncing

import (
	"context"

	"github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-sync-api/internal/domain"
)

// Runner executa um chunk de sincronização
type Runner interface {
	Run(ctx context.Context, userID string, req domain.ChunkRequest) (*domain.ChunkResult, error)
}

// StructureSyncer reconcilia campanhas, conjuntos e anúncios de uma conta
type StructureSyncer interface {
	SyncStructure(ctx context.Context, account *domain.AdAccount) (*domain.StructureSyncResult, error)
}

// MetricsSyncer agrega métricas diárias de uma janela de entidades
type MetricsSyncer interface {
	SyncMetrics(ctx context.Context, account *domain.AdAccount, entityType domain.EntityType, window domain.EntityWindow, dateRange domain.DateRange) (*domain.MetricsSyncResult, error)
}

// TokenRefresher troca o token da conta por um de longa duração
type TokenRefresher interface {
	Enabled() bool
	GetLongLivedToken(ctx context.Context, currentToken string) (*metaclient.TokenResponse, error)
}
