package apiErrors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrAccountNotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrExpiredToken))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrUnknownChunkType))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrUnsupportedPlatform))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("XYZ_999"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrMissingAuthorization, "Authorization header is required", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrMissingAuthorization, body.Code)
	assert.Equal(t, "Authorization header is required", body.Message)
}
