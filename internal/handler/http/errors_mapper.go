package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pimmuno/protectconf/configtree"
	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/internal/resolver"
	"github.com/pimmuno/protectconf/internal/store"
)

var errorStatusMap = map[error]int{
	resolver.ErrLoad:         http.StatusBadRequest,
	resolver.ErrSchema:       http.StatusUnprocessableEntity,
	resolver.ErrProtectedKey: http.StatusConflict,

	store.ErrRunNotFound: http.StatusNotFound,
	store.ErrRunNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// pathFromError extracts the dotted configuration path from errors that
// carry one. Returns "" for errors without location information.
func pathFromError(err error) string {
	var schemaErr *resolver.SchemaError
	if errors.As(err, &schemaErr) {
		return configtree.JoinPath(schemaErr.Path)
	}

	var protectedErr *resolver.ProtectedKeyError
	if errors.As(err, &protectedErr) {
		return configtree.JoinPath(protectedErr.Path)
	}

	return ""
}

// writeError logs err and responds with the JSON error envelope. Internal
// failures (5xx) are masked behind the generic status text so that storage
// details never leak to API consumers.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	envelope := apiError{Error: err.Error(), Path: pathFromError(err)}
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		envelope.Error = http.StatusText(status)
	} else {
		log.Warn().Err(err).Msg("request rejected")
	}

	respondJSON(w, r, status, envelope)
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}
