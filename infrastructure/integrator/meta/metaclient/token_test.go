package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExchanger_GetLongLivedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "app", r.URL.Query().Get("client_id"))
		assert.Equal(t, "old-token", r.URL.Query().Get("fb_exchange_token"))
		fmt.Fprint(w, `{"access_token":"new-token","token_type":"bearer","expires_in":5184000}`)
	}))
	defer server.Close()

	exchanger := NewTokenExchanger(server.Client(), server.URL, "app", "secret")
	require.True(t, exchanger.Enabled())

	resp, err := exchanger.GetLongLivedToken(context.Background(), "old-token")

	require.NoError(t, err)
	assert.Equal(t, "new-token", resp.AccessToken)
	assert.Equal(t, int64(5184000), resp.ExpiresIn)
}

func TestTokenExchanger_GetLongLivedToken_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Error validating access token","code":190}}`)
	}))
	defer server.Close()

	exchanger := NewTokenExchanger(server.Client(), server.URL, "app", "secret")

	_, err := exchanger.GetLongLivedToken(context.Background(), "old-token")
	assert.Error(t, err)

	_, err = exchanger.GetLongLivedToken(context.Background(), "")
	assert.EqualError(t, err, "token de acesso não pode ser vazio")
}

func TestTokenExchanger_Enabled(t *testing.T) {
	assert.False(t, NewTokenExchanger(http.DefaultClient, "http://x", "", "").Enabled())
	assert.False(t, NewTokenExchanger(http.DefaultClient, "http://x", "app", "").Enabled())
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 60 dias menos 1 dia de margem
	assert.Equal(t, now.Add(59*24*time.Hour), CalculateTokenExpiration(now, 60*24*60*60))
	// prazos menores que a margem usam metade do tempo
	assert.Equal(t, now.Add(time.Hour), CalculateTokenExpiration(now, 2*60*60))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 dias, 2 horas e 3 minutos", FormatDuration(26*60*60+3*60))
}
