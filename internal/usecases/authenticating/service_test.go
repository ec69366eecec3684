package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-sync-api/internal/config"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
)

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo"})

	token, err := service.GenerateToken("user-1", "ana@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.UserEmail)
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo"})

	t.Run("assinatura de outro segredo", func(t *testing.T) {
		other := NewService(config.Auth{Secret: "outro"})
		token, err := other.GenerateToken("user-1", "", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code())
	})

	t.Run("token expirado", func(t *testing.T) {
		token, err := service.GenerateToken("user-1", "", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.True(t, errors.Is(err, ErrExpiredToken))

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrExpiredToken, authErr.Code())
	})

	t.Run("token sem user_id", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})
		token, err := raw.SignedString([]byte("segredo"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestService_GenerateTokenRequiresUser(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo"})

	_, err := service.GenerateToken("", "", time.Hour)
	assert.True(t, errors.Is(err, ErrMissingRequiredData))
}
