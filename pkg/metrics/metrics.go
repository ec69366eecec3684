package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adsync"

var (
	// PlatformRequests conta cada tentativa de requisição à plataforma de anúncios
	PlatformRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_requests_total",
			Help:      "Total de requisições à plataforma de anúncios por status",
		},
		[]string{"status"},
	)

	// PagesFetched conta as páginas consumidas pelo pager por status terminal
	PagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_fetched_total",
			Help:      "Total de páginas consumidas por status",
		},
		[]string{"status"},
	)

	UpsertBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upsert_batches_total",
			Help:      "Total de lotes de upsert por tabela e status",
		},
		[]string{"table", "status"},
	)

	Chunks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_total",
			Help:      "Total de chunks executados por tipo e status",
		},
		[]string{"chunk_type", "status"},
	)

	ChunkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_duration_seconds",
			Help:      "Duração da execução de um chunk em segundos",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"chunk_type"},
	)
)
