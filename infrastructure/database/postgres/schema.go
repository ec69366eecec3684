package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements cria as tabelas do espelho local. Todas são idempotentes.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ad_accounts (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		platform            TEXT NOT NULL,
		platform_account_id TEXT NOT NULL,
		name                TEXT NOT NULL DEFAULT '',
		access_token        TEXT NOT NULL DEFAULT '',
		token_expires_at    TIMESTAMPTZ,
		last_synced_at      TIMESTAMPTZ,
		status              TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, platform)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_campaigns (
		id                   TEXT PRIMARY KEY,
		ad_account_id        TEXT NOT NULL REFERENCES ad_accounts(id),
		platform_campaign_id TEXT NOT NULL,
		name                 TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL DEFAULT '',
		objective            TEXT NOT NULL DEFAULT '',
		daily_budget         NUMERIC(14,2),
		lifetime_budget      NUMERIC(14,2),
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (ad_account_id, platform_campaign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_sets (
		id                TEXT PRIMARY KEY,
		ad_campaign_id    TEXT NOT NULL REFERENCES ad_campaigns(id),
		platform_adset_id TEXT NOT NULL,
		name              TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT '',
		optimization_goal TEXT NOT NULL DEFAULT '',
		billing_event     TEXT NOT NULL DEFAULT '',
		daily_budget      NUMERIC(14,2),
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (ad_campaign_id, platform_adset_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ads (
		id              TEXT PRIMARY KEY,
		ad_set_id       TEXT NOT NULL REFERENCES ad_sets(id),
		platform_ad_id  TEXT NOT NULL,
		name            TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT '',
		creative_id     TEXT NOT NULL DEFAULT '',
		creative_name   TEXT NOT NULL DEFAULT '',
		thumbnail_url   TEXT NOT NULL DEFAULT '',
		destination_url TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (ad_set_id, platform_ad_id)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_metrics (
		id               TEXT PRIMARY KEY,
		entity_type      TEXT NOT NULL,
		entity_id        TEXT NOT NULL,
		date             DATE NOT NULL,
		impressions      BIGINT NOT NULL DEFAULT 0,
		clicks           BIGINT NOT NULL DEFAULT 0,
		spend            NUMERIC(14,2) NOT NULL DEFAULT 0,
		reach            BIGINT NOT NULL DEFAULT 0,
		conversions      NUMERIC(14,2) NOT NULL DEFAULT 0,
		conversion_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		cpc              NUMERIC(14,4) NOT NULL DEFAULT 0,
		cpm              NUMERIC(14,4) NOT NULL DEFAULT 0,
		ctr              NUMERIC(14,4) NOT NULL DEFAULT 0,
		roas             NUMERIC(14,4) NOT NULL DEFAULT 0,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (entity_type, entity_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS sync_job_chunks (
		job_id             TEXT NOT NULL,
		chunk_id           TEXT NOT NULL,
		ad_account_id      TEXT NOT NULL,
		chunk_type         TEXT NOT NULL,
		status             TEXT NOT NULL,
		entities_processed INTEGER NOT NULL DEFAULT 0,
		error_message      TEXT,
		started_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		completed_at       TIMESTAMPTZ,
		PRIMARY KEY (job_id, chunk_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_metrics_entity ON ad_metrics (entity_id, date)`,
}

// EnsureSchema aplica o DDL do espelho numa única transação: ou todas as tabelas existem, ou nenhuma muda
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao aplicar schema (passo %d): %w", i+1, err)
			}
		}
		return nil
	})
}
