package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
)

const syncJobChunksTable = "sync_job_chunks"

// SyncJobChunkRepository registra o ciclo de vida dos chunks despachados
type SyncJobChunkRepository interface {
	SaveChunk(ctx context.Context, chunk *domain.SyncJobChunk) error
}

type syncJobChunkRepository struct {
	conn *postgres.Connection
}

func NewSyncJobChunkRepository(conn *postgres.Connection) SyncJobChunkRepository {
	return &syncJobChunkRepository{
		conn: conn,
	}
}

func (r *syncJobChunkRepository) SaveChunk(ctx context.Context, chunk *domain.SyncJobChunk) error {
	query, args, err := squirrel.
		Insert(syncJobChunksTable).
		Columns("job_id", "chunk_id", "ad_account_id", "chunk_type", "status", "entities_processed", "error_message", "started_at", "completed_at").
		Values(chunk.JobID, chunk.ChunkID, chunk.AdAccountID, string(chunk.ChunkType), string(chunk.Status),
			chunk.EntitiesProcessed, chunk.ErrorMessage, chunk.StartedAt, nullTime(chunk.CompletedAt)).
		Suffix(`ON CONFLICT (job_id, chunk_id) DO UPDATE SET
			status = EXCLUDED.status,
			entities_processed = EXCLUDED.entities_processed,
			error_message = EXCLUDED.error_message,
			completed_at = EXCLUDED.completed_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar chunk %s/%s: %w", chunk.JobID, chunk.ChunkID, err)
	}

	return nil
}
