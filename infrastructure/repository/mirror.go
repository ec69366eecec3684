package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
)

// EntityLister seleciona janelas estáveis (ordenadas pelo id local) de entidades do espelho
type EntityLister interface {
	ListEntities(ctx context.Context, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error)
	CountEntities(ctx context.Context, adAccountID string) (int, error)
}

// mirrorSelect descreve como chegar de uma tabela do espelho até a conta
type mirrorSelect struct {
	from           string
	idColumn       string
	platformColumn string
	joins          []string
}

func (m mirrorSelect) base(columns ...string) squirrel.SelectBuilder {
	builder := squirrel.Select(columns...).From(m.from)
	for _, join := range m.joins {
		builder = builder.Join(join)
	}
	return builder.PlaceholderFormat(squirrel.Dollar)
}

func (m mirrorSelect) list(ctx context.Context, conn postgres.Queryer, adAccountID string, window domain.EntityWindow) ([]domain.MirrorEntity, error) {
	query, args, err := m.base(m.idColumn, m.platformColumn).
		Where(squirrel.Eq{"c.ad_account_id": adAccountID}).
		OrderBy(m.idColumn + " ASC").
		Limit(uint64(window.Limit)).
		Offset(uint64(window.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entidades de %s: %w", m.from, err)
	}
	defer rows.Close()

	var entities []domain.MirrorEntity
	for rows.Next() {
		var e domain.MirrorEntity
		if err := rows.Scan(&e.ID, &e.PlatformID); err != nil {
			return nil, fmt.Errorf("erro ao ler entidade: %w", err)
		}
		entities = append(entities, e)
	}

	return entities, rows.Err()
}

func (m mirrorSelect) count(ctx context.Context, conn postgres.Queryer, adAccountID string) (int, error) {
	query, args, err := m.base("COUNT(*)").
		Where(squirrel.Eq{"c.ad_account_id": adAccountID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar entidades de %s: %w", m.from, err)
	}

	return total, nil
}
