package middleware

import (
	"net/http"
	"runtime/debug"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con stack y responde con el
// mismo sobre {success:false} que el resto de los errores.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context(), log).Error("panic recovered", map[string]any{
					"panic": rec,
					"path":  r.URL.Path,
					"stack": string(debug.Stack()),
				})
				httpx.WriteJSON(w, http.StatusInternalServerError, httpx.SuccessResponse{Success: false, Error: "internal error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
