package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/metrics"
)

// DefaultBatchSize é o tamanho de lote usado quando nenhum é informado
const DefaultBatchSize = 200

// BatchWriter grava um lote e devolve os registros confirmados pelo banco
type BatchWriter[T any] func(ctx context.Context, batch []T) ([]T, error)

// BatchUpsert divide records em lotes de batchSize e grava cada um com write.
// Um lote com erro é logado e omitido do retorno; os demais seguem normalmente.
func BatchUpsert[T any](ctx context.Context, table string, records []T, batchSize int, write BatchWriter[T]) []T {
	written := make([]T, 0, len(records))
	if len(records) == 0 {
		return written
	}

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	logger := log.ForContext(ctx).WithField("table", table)

	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}

		saved, err := write(ctx, records[start:end])
		if err != nil {
			metrics.UpsertBatches.WithLabelValues(table, "error").Inc()
			logger.WithError(err).Errorf("upsert: lote %d-%d de %s descartado", start, end, table)
			continue
		}

		metrics.UpsertBatches.WithLabelValues(table, "ok").Inc()
		written = append(written, saved...)
	}

	return written
}

// upsertStatement descreve um INSERT ... ON CONFLICT ... DO UPDATE ... RETURNING.
// key é a expressão SQL que reproduz a chave natural usada em memória.
type upsertStatement struct {
	table    string
	columns  []string
	conflict []string
	update   []string
	key      string
}

// upsertedRow são as colunas calculadas pelo banco para uma linha confirmada
type upsertedRow struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s upsertStatement) build(rows [][]interface{}) (string, []interface{}, error) {
	builder := squirrel.Insert(s.table).Columns(s.columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}

	sets := make([]string, 0, len(s.update)+1)
	for _, col := range s.update {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	sets = append(sets, "updated_at = NOW()")

	suffix := fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s RETURNING id, %s, created_at, updated_at",
		strings.Join(s.conflict, ", "),
		strings.Join(sets, ", "),
		s.key,
	)

	return builder.Suffix(suffix).PlaceholderFormat(squirrel.Dollar).ToSql()
}

// exec executa o upsert e devolve as linhas confirmadas por chave natural
func (s upsertStatement) exec(ctx context.Context, q postgres.Queryer, rows [][]interface{}) (map[string]upsertedRow, error) {
	query, args, err := s.build(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro de banco no upsert em %s: %w (code: %s)", s.table, pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar upsert em %s: %w", s.table, err)
	}
	defer result.Close()

	saved := make(map[string]upsertedRow, len(rows))
	for result.Next() {
		var row upsertedRow
		var key string
		if err := result.Scan(&row.ID, &key, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler retorno do upsert: %w", err)
		}
		saved[key] = row
	}

	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar retorno do upsert: %w", err)
	}

	return saved, nil
}

// uniqueBy mantém uma ocorrência por chave com o último valor recebido.
// O Postgres rejeita um ON CONFLICT que atualize a mesma linha duas vezes no mesmo comando.
func uniqueBy[T any](records []T, key func(T) string) []T {
	position := make(map[string]int, len(records))
	out := make([]T, 0, len(records))

	for _, r := range records {
		k := key(r)
		if i, ok := position[k]; ok {
			out[i] = r
			continue
		}
		position[k] = len(out)
		out = append(out, r)
	}

	return out
}
