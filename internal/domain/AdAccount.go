package domain

import (
	"time"
)

type AdPlatform string

const (
	PlatformFacebook AdPlatform = "facebook"
	PlatformTikTok   AdPlatform = "tiktok"
	PlatformGoogle   AdPlatform = "google"
)

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é a identidade de anunciante conectada por (usuário, plataforma)
type AdAccount struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Platform          AdPlatform      `json:"platform"`
	PlatformAccountID string          `json:"platform_account_id"`
	Name              string          `json:"name"`
	AccessToken       string          `json:"-"`
	TokenExpiresAt    *time.Time      `json:"token_expires_at"`
	LastSyncedAt      *time.Time      `json:"last_synced_at"`
	Status            AdAccountStatus `json:"status"`
}

// IsTokenExpired indica se o token da conta já passou da data de expiração.
// Tokens sem data de expiração conhecida são considerados válidos.
func (a *AdAccount) IsTokenExpired(now time.Time) bool {
	if a.TokenExpiresAt == nil {
		return false
	}
	return !now.Before(*a.TokenExpiresAt)
}

// NeedsTokenRefresh indica se o token expira dentro da janela informada
func (a *AdAccount) NeedsTokenRefresh(now time.Time, window time.Duration) bool {
	if a.TokenExpiresAt == nil || a.IsTokenExpired(now) {
		return false
	}
	return a.TokenExpiresAt.Sub(now) < window
}
