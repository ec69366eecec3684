package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
)

// ChunkDispatcher controla o despacho agendado de chunks
type ChunkDispatcher interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunChunkDispatch inicia manualmente um despacho de chunks para todas as contas ativas
func RunChunkDispatch(dispatcher ChunkDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunChunkDispatch")

		if dispatcher == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Despachante de chunks não disponível", nil)
			return
		}

		if !dispatcher.TriggerManualSync(r.Context()) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Despacho de chunks já em andamento",
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Despacho de chunks iniciado com sucesso",
		})
	}
}

// GetCronStatus retorna o status do despachante de chunks
func GetCronStatus(dispatcher ChunkDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if dispatcher == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Despachante de chunks não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"chunk_dispatch": dispatcher.GetStatus(),
		})
	}
}
