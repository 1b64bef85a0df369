package shelters

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/shelters", listSheltersHandler(svc, log))
	r.Put("/shelters-update", updateShelterHandler(svc, log))
}

// updateShelterRequest: phoneNum con 10 dígitos, shelterAddress tipo "123 Main St, City".
type updateShelterRequest struct {
	BranchID       httpx.Int `json:"branchID"`
	PhoneNum       string    `json:"phoneNum" example:"6045551234"`
	ShelterAddress string    `json:"shelterAddress" example:"123 Main St, Vancouver"`
}

type shelterResponse struct {
	BranchID       int64  `json:"branchID"`
	PhoneNum       string `json:"phoneNum"`
	ShelterAddress string `json:"shelterAddress"`
}

// listSheltersHandler godoc
// @Summary Listar sucursales
// @Tags shelters
// @Produce json
// @Success 200 {object} httpx.RowsResponse[shelterResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /shelters [get]
func listSheltersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, s := range items {
			out = append(out, shelterResponse{BranchID: s.BranchID, PhoneNum: s.PhoneNum, ShelterAddress: s.Address})
		}
		httpx.WriteRows(w, out)
	}
}

// updateShelterHandler godoc
// @Summary Actualizar teléfono y dirección de una sucursal
// @Tags shelters
// @Accept json
// @Produce json
// @Param payload body updateShelterRequest true "Contacto"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse "teléfono/dirección inválidos"
// @Failure 404 {object} httpx.SuccessResponse "shelter not found"
// @Router /shelters-update [put]
func updateShelterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateShelterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		_, err := svc.UpdateContact(r.Context(), UpdateContactInput{
			BranchID:       req.BranchID.Int64(),
			PhoneNum:       req.PhoneNum,
			ShelterAddress: req.ShelterAddress,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}
