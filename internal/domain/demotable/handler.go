package demotable

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/demotable", fetchHandler(svc, log))
	r.Post("/initiate-demotable", initiateHandler(svc, log))
	r.Post("/insert-demotable", insertHandler(svc, log))
	r.Post("/update-name-demotable", updateNameHandler(svc, log))
	r.Get("/count-demotable", countHandler(svc, log))
}

type rowResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type fetchResponse struct {
	Data []rowResponse `json:"data"`
}

type insertRequest struct {
	ID   httpx.Int `json:"id"`
	Name string    `json:"name"`
}

type updateNameRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type countResponse struct {
	Success bool  `json:"success"`
	Count   int64 `json:"count"`
}

// fetchHandler godoc
// @Summary Filas de la tabla demo
// @Tags demotable
// @Produce json
// @Success 200 {object} fetchResponse
// @Failure 404 {object} httpx.SuccessResponse "tabla no inicializada"
// @Router /demotable [get]
func fetchHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Fetch(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := fetchResponse{Data: make([]rowResponse, 0, len(rows))}
		for _, row := range rows {
			out.Data = append(out.Data, rowResponse{ID: row.ID, Name: row.Name})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// initiateHandler godoc
// @Summary (Re)crear la tabla demo
// @Description Idempotente: si la tabla no existe el DROP se ignora.
// @Tags demotable
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /initiate-demotable [post]
func initiateHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Initiate(r.Context()); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

// insertHandler godoc
// @Summary Insertar fila en la tabla demo
// @Tags demotable
// @Accept json
// @Produce json
// @Param payload body insertRequest true "Fila"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.SuccessResponse "id repetido"
// @Router /insert-demotable [post]
func insertHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req insertRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if err := svc.Insert(r.Context(), InsertInput{ID: req.ID.Int64(), Name: req.Name}); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

// updateNameHandler godoc
// @Summary Renombrar filas de la tabla demo
// @Tags demotable
// @Accept json
// @Produce json
// @Param payload body updateNameRequest true "Nombres"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.SuccessResponse "ninguna fila con oldName"
// @Router /update-name-demotable [post]
func updateNameHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateNameRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if err := svc.UpdateName(r.Context(), UpdateNameInput(req)); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

// countHandler godoc
// @Summary Contar filas de la tabla demo
// @Tags demotable
// @Produce json
// @Success 200 {object} countResponse
// @Router /count-demotable [get]
func countHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Count(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, countResponse{Success: true, Count: n})
	}
}
