package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSeedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)

	var saved *domain.AdAccount
	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.AdAccount) (string, error) {
			saved = account
			return "acc-1", nil
		})

	err := seedAccount(context.Background(), repo, seedOptions{
		UserID:            "user-1",
		PlatformAccountID: "123",
		Name:              "Loja 01",
		AccessToken:       "token",
		TokenExpiresIn:    60 * 24 * time.Hour,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, domain.PlatformFacebook, saved.Platform)
	assert.Equal(t, domain.AdAccountStatusActive, saved.Status)
	require.NotNil(t, saved.TokenExpiresAt)
	assert.True(t, saved.TokenExpiresAt.After(time.Now().Add(58*24*time.Hour)))
}

func TestSeedAccount_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return("", errors.New("unique violation"))

	err := seedAccount(context.Background(), repo, seedOptions{UserID: "user-1", PlatformAccountID: "123", AccessToken: "t"})
	assert.Error(t, err)
}
