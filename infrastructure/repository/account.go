package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/utils"
)

const accountsTable = "ad_accounts"

var accountColumns = []string{
	"id", "user_id", "platform", "platform_account_id", "name", "access_token",
	"token_expires_at", "last_synced_at", "status",
}

type AccountRepository interface {
	GetAccountByIDForUser(ctx context.Context, accountID, userID string) (*domain.AdAccount, error)
	ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error)
	SaveOrUpdate(ctx context.Context, account *domain.AdAccount) (string, error)
	UpdateToken(ctx context.Context, accountID, accessToken string, expiresAt time.Time) error
	TouchLastSynced(ctx context.Context, accountID string, syncedAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// GetAccountByIDForUser retorna nil quando a conta não existe ou pertence a outro usuário
func (r *accountRepository) GetAccountByIDForUser(ctx context.Context, accountID, userID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := r.deserializeAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}

	return acc, nil
}

func (r *accountRepository) ListActiveAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(squirrel.Eq{"status": domain.AdAccountStatusActive}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas ativas: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := r.deserializeAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// SaveOrUpdate grava a conta pela chave (user_id, platform) e devolve o id local
func (r *accountRepository) SaveOrUpdate(ctx context.Context, account *domain.AdAccount) (string, error) {
	status := account.Status
	if status == "" {
		status = domain.AdAccountStatusActive
	}

	query, args, err := squirrel.
		Insert(accountsTable).
		Columns("id", "user_id", "platform", "platform_account_id", "name", "access_token", "token_expires_at", "status").
		Values(utils.GenerateID(), account.UserID, account.Platform, account.PlatformAccountID, account.Name,
			account.AccessToken, nullTime(account.TokenExpiresAt), status).
		Suffix(`ON CONFLICT (user_id, platform) DO UPDATE SET
			platform_account_id = EXCLUDED.platform_account_id,
			name = EXCLUDED.name,
			access_token = EXCLUDED.access_token,
			token_expires_at = EXCLUDED.token_expires_at,
			status = EXCLUDED.status,
			updated_at = NOW()
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("failed to execute query: %w", err)
	}

	return id, nil
}

func (r *accountRepository) UpdateToken(ctx context.Context, accountID, accessToken string, expiresAt time.Time) error {
	return r.update(ctx, accountID, map[string]interface{}{
		"access_token":     accessToken,
		"token_expires_at": expiresAt,
	})
}

func (r *accountRepository) TouchLastSynced(ctx context.Context, accountID string, syncedAt time.Time) error {
	return r.update(ctx, accountID, map[string]interface{}{
		"last_synced_at": syncedAt,
	})
}

func (r *accountRepository) update(ctx context.Context, accountID string, fields map[string]interface{}) error {
	query, args, err := squirrel.
		Update(accountsTable).
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar conta %s: %w", accountID, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("conta %s não encontrada", accountID)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *accountRepository) deserializeAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	var tokenExpiresAt, lastSyncedAt sql.NullTime
	if err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.Platform,
		&acc.PlatformAccountID,
		&acc.Name,
		&acc.AccessToken,
		&tokenExpiresAt,
		&lastSyncedAt,
		&acc.Status,
	); err != nil {
		return nil, err
	}

	if tokenExpiresAt.Valid {
		acc.TokenExpiresAt = &tokenExpiresAt.Time
	}
	if lastSyncedAt.Valid {
		acc.LastSyncedAt = &lastSyncedAt.Time
	}

	return acc, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
