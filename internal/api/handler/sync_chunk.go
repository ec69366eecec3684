package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-sync-api/internal/domain"
	"github.com/vfg2006/ad-sync-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
	"github.com/vfg2006/ad-sync-api/pkg/log"
	"github.com/vfg2006/ad-sync-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxChunkBodyBytes limita o corpo da invocação de um chunk
const maxChunkBodyBytes = 64 << 10

// RunSyncChunk executa um chunk de sincronização para a conta do usuário autenticado
func RunSyncChunk(runner syncing.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			writeChunkError(w, syncing.NewChunkError(errors.New("usuário não autenticado"), apiErrors.ErrMissingAuthorization, ""))
			return
		}

		req, err := decodeChunkRequest(w, r)
		if err != nil {
			logger.WithError(err).Warn("Corpo de requisição de chunk inválido")
			writeChunkError(w, syncing.NewChunkError(err, apiErrors.ErrInvalidRequest, ""))
			return
		}

		result, err := runner.Run(r.Context(), claims.UserID, req)
		if err != nil {
			writeChunkError(w, syncing.AsChunkError(err))
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func decodeChunkRequest(w http.ResponseWriter, r *http.Request) (domain.ChunkRequest, error) {
	var req domain.ChunkRequest

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChunkBodyBytes)).Decode(&req); err != nil {
		return req, errors.Wrap(err, "formato de requisição inválido")
	}

	return req, nil
}

func writeChunkError(w http.ResponseWriter, chunkErr *syncing.ChunkError) {
	writeJSON(w, chunkErr.HTTPStatus(), domain.ChunkErrorResponse{
		Success: false,
		Error:   chunkErr.Error(),
		Code:    chunkErr.Code,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao codificar resposta")
	}
}
