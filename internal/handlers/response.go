package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/joaoafonso2004/TWfrontbackend/internal/apperrors"
	"github.com/joaoafonso2004/TWfrontbackend/internal/logger"
)

// Client-facing messages. They are part of the HTTP contract.
const (
	msgInvalidID      = "ID inválido"
	msgInvalidPayload = "Corpo inválido"
	msgInternal       = "Erro interno"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure maps err to a status code. Unknown errors are logged and
// reported as a generic 500.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		writeError(w, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, apperrors.ErrInvalidPayload):
		writeError(w, http.StatusBadRequest, apperrors.Message(err, msgInvalidPayload))
	case errors.Is(err, apperrors.ErrNotFound):
		writeError(w, http.StatusNotFound, apperrors.Message(err, "Não encontrado"))
	default:
		logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// decodeBody reads a JSON object into dst. An empty body decodes as {}.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperrors.NewCustomError(apperrors.ErrInvalidPayload, msgInvalidPayload)
}

func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}
