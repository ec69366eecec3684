package metaclient

import (
	"context"
	"encoding/json"

	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/metrics"
	"golang.org/x/time/rate"
)

// PageFetcher é implementado por *Fetcher
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) PageResult
}

// Pager percorre o cursor paging.next acumulando os registros de todas as páginas.
// O limiter é compartilhado pelo processo inteiro.
type Pager struct {
	fetcher  PageFetcher
	limiter  *rate.Limiter
	maxPages int
}

func NewPager(fetcher PageFetcher, limiter *rate.Limiter, maxPages int) *Pager {
	return &Pager{
		fetcher:  fetcher,
		limiter:  limiter,
		maxPages: maxPages,
	}
}

// FetchAll retorna os registros na ordem das páginas e o status da última página.
// Em caso de falha os registros já lidos são mantidos.
// Se o limite de páginas for atingido com cursor pendente o status é PageOK.
func (p *Pager) FetchAll(ctx context.Context, firstURL string) ([]json.RawMessage, PageStatus) {
	logger := log.ForContext(ctx)

	records := make([]json.RawMessage, 0)
	next := firstURL

	for page := 0; page < p.maxPages; page++ {
		if err := p.limiter.Wait(ctx); err != nil {
			logger.WithError(err).Warn("meta: paginação interrompida")
			metrics.PagesFetched.WithLabelValues(string(PageUpstreamError)).Inc()
			return records, PageUpstreamError
		}

		result := p.fetcher.FetchPage(ctx, next)
		if result.Status != PageOK {
			logger.Warnf("meta: paginação encerrada na página %d com status %s (%d registros mantidos)", page+1, result.Status, len(records))
			metrics.PagesFetched.WithLabelValues(string(result.Status)).Inc()
			return records, result.Status
		}

		metrics.PagesFetched.WithLabelValues(string(PageOK)).Inc()
		records = append(records, result.Data...)

		if result.Next == "" {
			return records, PageExhausted
		}
		next = result.Next
	}

	logger.Warnf("meta: limite de %d páginas atingido com cursor pendente", p.maxPages)
	return records, PageOK
}

// FetchOne busca apenas a primeira página, respeitando o limiter
func (p *Pager) FetchOne(ctx context.Context, pageURL string) PageResult {
	if err := p.limiter.Wait(ctx); err != nil {
		metrics.PagesFetched.WithLabelValues(string(PageUpstreamError)).Inc()
		return PageResult{Status: PageUpstreamError, Err: err}
	}

	result := p.fetcher.FetchPage(ctx, pageURL)
	metrics.PagesFetched.WithLabelValues(string(result.Status)).Inc()

	return result
}
