package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"tienda/internal/sync"
)

// Runner is the piece of the pipeline the trigger endpoint needs.
type Runner interface {
	Run(ctx context.Context) (*sync.Summary, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// SyncHandler exposes the internal sync trigger. The call is
// synchronous: the response carries the finished run's summary.
// Access is guarded by a shared-secret header.
func SyncHandler(runner Runner, token string, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		got := r.Header.Get("X-Sync-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid sync token"})
			return
		}

		summary, err := runner.Run(r.Context())
		if errors.Is(err, sync.ErrRunning) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			log.Error("catalog sync failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "sync failed"})
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
