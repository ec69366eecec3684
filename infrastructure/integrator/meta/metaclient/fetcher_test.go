package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rateLimitBody = `{"error":{"message":"(#17) User request limit reached","type":"OAuthException","code":17}}`

func TestFetcher_FetchPage_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"cursors":{"after":"x"},"next":"https://next/page"}}`)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), 2, time.Millisecond)
	result := fetcher.FetchPage(context.Background(), server.URL)

	require.Equal(t, PageOK, result.Status)
	assert.Len(t, result.Data, 2)
	assert.JSONEq(t, `{"id":"1"}`, string(result.Data[0]))
	assert.Equal(t, "https://next/page", result.Next)
}

func TestFetcher_FetchPage_RateLimitedBoundedAttempts(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, rateLimitBody)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), 2, time.Millisecond)
	result := fetcher.FetchPage(context.Background(), server.URL)

	assert.Equal(t, PageRateLimited, result.Status)
	assert.Nil(t, result.Data)
	assert.Empty(t, result.Next)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestFetcher_FetchPage_LinearBackoffSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, rateLimitBody)
	}))
	defer server.Close()

	var waits []time.Duration
	fetcher := NewFetcher(server.Client(), 2, 3*time.Second)
	fetcher.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	result := fetcher.FetchPage(context.Background(), server.URL)

	assert.Equal(t, PageRateLimited, result.Status)
	assert.Equal(t, []time.Duration{3 * time.Second, 6 * time.Second}, waits)
}

func TestFetcher_FetchPage_BackoffWaitsForReal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, rateLimitBody)
	}))
	defer server.Close()

	base := 20 * time.Millisecond
	fetcher := NewFetcher(server.Client(), 2, base)

	start := time.Now()
	fetcher.FetchPage(context.Background(), server.URL)

	// base + 2*base entre as três tentativas
	assert.GreaterOrEqual(t, time.Since(start), 3*base)
}

func TestFetcher_FetchPage_RecoversAfterRateLimit(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"Application request limit reached","code":4}}`)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":"1"}]}`)
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), 2, time.Millisecond)
	result := fetcher.FetchPage(context.Background(), server.URL)

	assert.Equal(t, PageOK, result.Status)
	assert.Len(t, result.Data, 1)
	assert.Empty(t, result.Next)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestFetcher_FetchPage_UpstreamError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "erro da plataforma", status: http.StatusBadRequest, body: `{"error":{"message":"Invalid parameter","code":100}}`},
		{name: "erro 500 sem corpo json", status: http.StatusInternalServerError, body: `oops`},
		{name: "corpo inválido com status 200", status: http.StatusOK, body: `{"data":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&attempts, 1)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			fetcher := NewFetcher(server.Client(), 2, time.Millisecond)
			result := fetcher.FetchPage(context.Background(), server.URL)

			assert.Equal(t, PageUpstreamError, result.Status)
			assert.Nil(t, result.Data)
			assert.Error(t, result.Err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
		})
	}
}

func TestFetcher_FetchPage_ContextCanceledDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, rateLimitBody)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	fetcher := NewFetcher(server.Client(), 2, time.Hour)

	start := time.Now()
	result := fetcher.FetchPage(ctx, server.URL)

	assert.Equal(t, PageUpstreamError, result.Status)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRedactURL(t *testing.T) {
	redacted := RedactURL("https://graph.facebook.com/v22.0/act_1/campaigns?access_token=secret&limit=500")

	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "access_token=REDACTED")
	assert.Contains(t, redacted, "limit=500")
}
