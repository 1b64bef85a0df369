package adopters

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/adopters", listAdoptersHandler(svc, log))
	r.Delete("/adopters-delete", deleteAdopterHandler(svc, log))
}

type deleteAdopterRequest struct {
	AdopterID httpx.Int `json:"adopterID"`
}

type adopterResponse struct {
	AdopterID   int64  `json:"adopterID"`
	AdopterName string `json:"adopterName"`
	Email       string `json:"email"`
	PhoneNum    string `json:"phoneNum"`
}

// listAdoptersHandler godoc
// @Summary Listar adoptantes
// @Tags adopters
// @Produce json
// @Success 200 {object} httpx.RowsResponse[adopterResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /adopters [get]
func listAdoptersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]adopterResponse, 0, len(items))
		for _, a := range items {
			out = append(out, adopterResponse{AdopterID: a.AdopterID, AdopterName: a.Name, Email: a.Email, PhoneNum: a.PhoneNum})
		}
		httpx.WriteRows(w, out)
	}
}

// deleteAdopterHandler godoc
// @Summary Borrar adoptante
// @Description Sus solicitudes de adopción se borran en cascada.
// @Tags adopters
// @Accept json
// @Produce json
// @Param payload body deleteAdopterRequest true "Adoptante"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.SuccessResponse "adopter not found"
// @Router /adopters-delete [delete]
func deleteAdopterHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteAdopterRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		if err := svc.Delete(r.Context(), DeleteInput{AdopterID: req.AdopterID.Int64()}); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteSuccess(w)
	}
}
