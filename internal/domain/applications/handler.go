package applications

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/platform/validation"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/applications", listApplicationsHandler(svc, log))
	r.Post("/applications-submit", submitApplicationHandler(svc, log))
	r.Delete("/applications-withdraw", withdrawApplicationHandler(svc, log))
	r.Put("/applications-update", updateApplicationHandler(svc, log))
}

// keyRequest identifica la fila de Applies a borrar.
type keyRequest struct {
	BranchID  httpx.Int `json:"branchID"`
	AdopterID httpx.Int `json:"adopterID"`
	AnimalID  httpx.Int `json:"animalID"`
}

// applicationRequest es el cuerpo de submit y update. applicationDate en formato YYYY-MM-DD.
type applicationRequest struct {
	keyRequest
	ApplicationStatus string `json:"applicationStatus" enums:"accepted,rejected,pending"`
	ApplicationDate   string `json:"applicationDate" example:"2024-01-15"`
}

type applicationResponse struct {
	BranchID          int64  `json:"branchID"`
	AdopterID         int64  `json:"adopterID"`
	AnimalID          int64  `json:"animalID"`
	ApplicationStatus Status `json:"applicationStatus"`
	ApplicationDate   string `json:"applicationDate"`
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes de adopción
// @Tags applications
// @Produce json
// @Success 200 {object} httpx.RowsResponse[applicationResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /applications [get]
func listApplicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		httpx.WriteRows(w, out)
	}
}

// submitApplicationHandler godoc
// @Summary Crear solicitud de adopción
// @Description Valida fecha (YYYY-MM-DD) y estado (accepted/rejected/pending, sin importar mayúsculas) antes de tocar la base.
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body applicationRequest true "Solicitud"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse "fecha/estado/IDs inválidos"
// @Failure 409 {object} httpx.SuccessResponse "la solicitud ya existe o referencia filas inexistentes"
// @Router /applications-submit [post]
func submitApplicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if _, err := svc.Submit(r.Context(), req.toInput()); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

// withdrawApplicationHandler godoc
// @Summary Retirar (borrar) una solicitud
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body keyRequest true "Clave de la solicitud"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.SuccessResponse "application not found"
// @Router /applications-withdraw [delete]
func withdrawApplicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req keyRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if err := svc.Withdraw(r.Context(), req.toInput()); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

// updateApplicationHandler godoc
// @Summary Actualizar estado/fecha de una solicitud
// @Description Los IDs ubican la fila; applicationStatus y applicationDate son los valores nuevos.
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body applicationRequest true "Solicitud"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.SuccessResponse "application not found"
// @Router /applications-update [put]
func updateApplicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if _, err := svc.Update(r.Context(), req.toInput()); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}

func (k keyRequest) toInput() KeyInput {
	return KeyInput{
		BranchID:  k.BranchID.Int64(),
		AdopterID: k.AdopterID.Int64(),
		AnimalID:  k.AnimalID.Int64(),
	}
}

func (a applicationRequest) toInput() SubmitInput {
	return SubmitInput{
		KeyInput: a.keyRequest.toInput(),
		Status:   a.ApplicationStatus,
		Date:     a.ApplicationDate,
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		BranchID:          a.BranchID,
		AdopterID:         a.AdopterID,
		AnimalID:          a.AnimalID,
		ApplicationStatus: a.Status,
		ApplicationDate:   a.Date.Format(validation.DateLayout),
	}
}
