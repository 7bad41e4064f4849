package http

import "net/http"

// getServerVersion reports the daemon build version as bare text so launch
// scripts can capture it without a JSON parser.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(h.services.AppInfo.GetAppVersion(r.Context())))
}
