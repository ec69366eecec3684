package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ad-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/metrics"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PageStatus descreve o desfecho da leitura de uma página
type PageStatus string

const (
	PageOK            PageStatus = "ok"
	PageRateLimited   PageStatus = "rate_limited"
	PageUpstreamError PageStatus = "upstream_error"
	// PageExhausted indica que o cursor de paginação terminou
	PageExhausted PageStatus = "exhausted"
)

// Succeeded informa se a paginação terminou sem falha
func (s PageStatus) Succeeded() bool {
	return s == PageOK || s == PageExhausted
}

// PageResult é o resultado de uma única requisição paginada.
// Quando Status != PageOK, Data é nil e Next é vazio.
type PageResult struct {
	Status PageStatus
	Data   []json.RawMessage
	Next   string
	// Vendor guarda o erro retornado pela plataforma, quando houver
	Vendor *metadomain.ErrorDetails
	Err    error
}

// HTTPClient é satisfeito por *http.Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Fetcher struct {
	client      HTTPClient
	maxRetries  int
	backoffBase time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewFetcher(client HTTPClient, maxRetries int, backoffBase time.Duration) *Fetcher {
	return &Fetcher{
		client:      client,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		sleep:       waitFor,
	}
}

// FetchPage faz um GET na URL informada, repetindo em caso de rate limit.
// Nunca retorna erro: falhas são representadas pelo Status do resultado.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) PageResult {
	logger := log.ForContext(ctx).WithField("url", RedactURL(pageURL))

	for retry := 0; ; retry++ {
		result := f.fetchOnce(ctx, pageURL)
		metrics.PlatformRequests.WithLabelValues(string(result.Status)).Inc()

		if result.Status != PageRateLimited {
			if result.Status == PageUpstreamError {
				logger.WithError(result.Err).Error("meta: falha ao buscar página")
			}
			return result
		}

		if retry >= f.maxRetries {
			logger.Warnf("meta: limite de requisições atingido após %d tentativas", retry+1)
			return result
		}

		wait := time.Duration(retry+1) * f.backoffBase
		logger.Warnf("meta: limite de requisições atingido, aguardando %s (tentativa %d/%d)", wait, retry+1, f.maxRetries)

		if err := f.sleep(ctx, wait); err != nil {
			return PageResult{Status: PageUpstreamError, Err: err}
		}
	}
}

func (f *Fetcher) fetchOnce(ctx context.Context, pageURL string) PageResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return PageResult{Status: PageUpstreamError, Err: fmt.Errorf("erro ao criar requisição: %w", err)}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return PageResult{Status: PageUpstreamError, Err: fmt.Errorf("erro na requisição: %s", redactError(err))}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return PageResult{Status: PageUpstreamError, Err: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	var page metadomain.Page
	decodeErr := jsonAPI.Unmarshal(body, &page)

	if page.Error != nil {
		status := PageUpstreamError
		if page.Error.IsRateLimited() {
			status = PageRateLimited
		}
		return PageResult{
			Status: status,
			Vendor: page.Error,
			Err:    fmt.Errorf("erro da API Meta. Status: %d, Código: %d, Mensagem: %s", resp.StatusCode, page.Error.Code, page.Error.Message),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return PageResult{Status: PageUpstreamError, Err: fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))}
	}

	if decodeErr != nil {
		return PageResult{Status: PageUpstreamError, Err: fmt.Errorf("erro ao decodificar resposta: %w", decodeErr)}
	}

	result := PageResult{Status: PageOK, Data: page.Data}
	if page.Paging != nil {
		result.Next = page.Paging.Next
	}
	if result.Data == nil {
		result.Data = []json.RawMessage{}
	}

	return result
}

func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RedactURL remove o access_token de uma URL antes de logar
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<url inválida>"
	}

	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// *url.Error carrega a URL completa, incluindo o token
func redactError(err error) string {
	if urlErr, ok := err.(*url.Error); ok {
		return fmt.Sprintf("%s %s: %v", urlErr.Op, RedactURL(urlErr.URL), urlErr.Err)
	}
	return err.Error()
}
