package handlers

import (
	"dispatch-simulation-service/internal/domain"
	"dispatch-simulation-service/internal/platform/obs"
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// MethodNotAllowed answers requests for a known path with the wrong verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}

// queryTime reads the optional ?at=HH:MM parameter.
func queryTime(r *http.Request) (domain.TimeOfDay, bool, error) {
	raw := r.URL.Query().Get("at")
	if raw == "" {
		return 0, false, nil
	}
	t, err := domain.ParseTimeOfDay(raw)
	if err != nil {
		return 0, false, err
	}
	return t, true, nil
}
