// Package health expone /health (el proceso responde) y /check-db-connection (la base responde).
package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/logger"
)

// Pinger lo implementan postgres.DB y memory.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterRoutes(r chi.Router, db Pinger, log logger.Logger) {
	r.Get("/health", healthHandler())
	r.Get("/check-db-connection", checkDBHandler(db, log))
}

// healthHandler godoc
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "ok")
	}
}

// checkDBHandler godoc
// @Summary Verificar conexión a la base
// @Tags health
// @Produce plain
// @Success 200 {string} string "connected"
// @Failure 503 {string} string "unable to connect"
// @Router /check-db-connection [get]
func checkDBHandler(db Pinger, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context(), log).Warn("database ping failed", map[string]any{"err": err})
			writeText(w, http.StatusServiceUnavailable, "unable to connect")
			return
		}
		writeText(w, http.StatusOK, "connected")
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
