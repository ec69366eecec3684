package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ad-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ad-sync-api/internal/usecases/syncing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func SyncChunks(runner syncing.Runner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/chunk",
			Method:  http.MethodPost,
			Handler: RunSyncChunk(runner),
		},
	}
}

func CronJobs(dispatcher ChunkDispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/dispatch/run",
			Method:  http.MethodPost,
			Handler: RunChunkDispatch(dispatcher),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(dispatcher),
		},
	}
}
