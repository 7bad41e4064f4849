package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/pimmuno/protectconf/internal/logger"
	"github.com/pimmuno/protectconf/models"
)

// Response headers stamped by the resolve endpoint.
const (
	configDigestHeader = "X-Config-Digest"
	runIDHeader        = "X-Run-Id"
)

// Output formats accepted by the resolve endpoint's format query parameter.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// resolveConfig merges the user document from the request body over the
// bundled defaults and returns the finalized configuration.
//
// An empty body resolves the defaults alone, which is useful for inspecting
// what the daemon would run with out of the box. The merged document's
// digest and, when the run was archived, its run ID are returned in the
// X-Config-Digest and X-Run-Id response headers.
//
// Query parameters:
//   - format: "yaml" (default) or "json".
//   - strict: when truthy, a document that merges cleanly but fails
//     validation is rejected with 422 and the validation report instead of
//     being returned.
func (h *Handler) resolveConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatYAML
	}
	if format != formatYAML && format != formatJSON {
		log.Warn().Str("format", format).Msg("unknown output format requested")
		respondJSON(w, r, http.StatusBadRequest, apiError{Error: "unknown format: " + format})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		respondJSON(w, r, http.StatusBadRequest, apiError{Error: "error reading request body"})
		return
	}

	result, err := h.services.Resolution.Resolve(ctx, models.ResolveRequest{
		Document:  body,
		Source:    models.RunSourceHTTP,
		SourceRef: r.RemoteAddr,
		Persist:   true,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set(configDigestHeader, result.Digest)
	if result.RunID != "" {
		w.Header().Set(runIDHeader, result.RunID)
	}

	if strict, _ := strconv.ParseBool(r.URL.Query().Get("strict")); strict && !result.Report.OK {
		respondJSON(w, r, http.StatusUnprocessableEntity, result.Report)
		return
	}

	if format == formatJSON {
		respondJSON(w, r, http.StatusOK, result.Tree)
		return
	}
	h.writeYAML(w, r, result.Document)
}

// validateConfig resolves the user document from the request body and
// returns the validation report without archiving a run. The endpoint
// answers 200 whether or not the document passed; callers branch on the
// report's ok field. Resolution failures (unparseable document, shape
// conflict, protected key) are still reported as errors.
func (h *Handler) validateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		respondJSON(w, r, http.StatusBadRequest, apiError{Error: "error reading request body"})
		return
	}

	report, err := h.services.Resolution.Validate(ctx, models.ResolveRequest{
		Document:  body,
		Source:    models.RunSourceHTTP,
		SourceRef: r.RemoteAddr,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, report)
}

// getDefaults serves the bundled defaults document verbatim.
func (h *Handler) getDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeYAML(w, r, h.services.Defaults.Raw(r.Context()))
}

// getTemplate serves the annotated starter document for new users.
func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	h.writeYAML(w, r, h.services.Defaults.Template(r.Context()))
}

// writeYAML writes doc as a YAML response body with status 200.
func (h *Handler) writeYAML(w http.ResponseWriter, r *http.Request, doc []byte) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response body")
	}
}
