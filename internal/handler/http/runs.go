package http

import (
	"net/http"
	"strconv"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/models"

	"github.com/go-chi/chi/v5"
)

// listRuns returns archived resolution runs, newest first.
//
// Query parameters:
//   - status: filter by run status ("resolved" or "invalid").
//   - source: filter by run source ("cli" or "http").
//   - limit: cap the number of returned records.
//
// Merged documents are never included in listings; fetch a single run with
// include=document to retrieve one.
func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	query := r.URL.Query()

	filter := models.RunFilter{
		Status: query.Get("status"),
		Source: query.Get("source"),
	}
	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			log.Warn().Str("limit", rawLimit).Msg("invalid limit parameter")
			respondJSON(w, r, http.StatusBadRequest, apiError{Error: "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}

	runs, err := h.services.Runs.List(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	for i := range runs {
		runs[i].Document = nil
	}

	respondJSON(w, r, http.StatusOK, runs)
}

// getRun returns one archived run by ID. The merged document is omitted
// unless the request asks for it with include=document.
func (h *Handler) getRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, err := h.services.Runs.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("include") != "document" {
		run.Document = nil
	}

	respondJSON(w, r, http.StatusOK, run)
}

// deleteRun removes one archived run by ID and answers 204 on success.
func (h *Handler) deleteRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if err := h.services.Runs.Delete(ctx, id); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("run_id", id).Msg("run record deleted")
	w.WriteHeader(http.StatusNoContent)
}
