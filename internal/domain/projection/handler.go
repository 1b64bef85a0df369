package projection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/projection/tables", listTablesHandler(svc))
	r.Put("/projection", projectHandler(svc, log))
}

type tablesResponse struct {
	Tables []Table `json:"tables"`
}

// listTablesHandler godoc
// @Summary Tablas y columnas proyectables
// @Tags projection
// @Produce json
// @Success 200 {object} tablesResponse
// @Router /projection/tables [get]
func listTablesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, tablesResponse{Tables: svc.Tables()})
	}
}

// projectHandler godoc
// @Summary Proyectar columnas de una tabla
// @Description Tabla y columnas deben estar en el catálogo (sin importar mayúsculas). Columnas repetidas o lista vacía => 400.
// @Tags projection
// @Accept json
// @Produce json
// @Param payload body ProjectInput true "Tabla y columnas"
// @Success 200 {object} Result
// @Failure 400 {object} httpx.SuccessResponse "tabla/columna desconocida"
// @Failure 503 {object} httpx.SuccessResponse
// @Router /projection [put]
func projectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectInput
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		res, err := svc.Project(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}
