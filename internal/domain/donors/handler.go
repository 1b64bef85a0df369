package donors

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/top-donors", topDonorsHandler(svc, log))
	r.Get("/donors-attend-all-events", attendingAllEventsHandler(svc, log))
}

type topDonorResponse struct {
	DonorID      int64   `json:"donorID"`
	DonorName    string  `json:"donorName"`
	TotalDonated float64 `json:"totalDonated"`
}

type donorResponse struct {
	DonorID   int64  `json:"donorID"`
	DonorName string `json:"donorName"`
}

// topDonorsHandler godoc
// @Summary Donantes por encima del promedio
// @Tags donors
// @Produce json
// @Success 200 {object} httpx.RowsResponse[topDonorResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /top-donors [get]
func topDonorsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.TopDonors(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]topDonorResponse, 0, len(items))
		for _, d := range items {
			out = append(out, topDonorResponse{DonorID: d.DonorID, DonorName: d.Name, TotalDonated: d.TotalDonated})
		}
		httpx.WriteRows(w, out)
	}
}

// attendingAllEventsHandler godoc
// @Summary Donantes que asistieron a todos los eventos
// @Tags donors
// @Produce json
// @Success 200 {object} httpx.RowsResponse[donorResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /donors-attend-all-events [get]
func attendingAllEventsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.AttendingAllEvents(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]donorResponse, 0, len(items))
		for _, d := range items {
			out = append(out, donorResponse{DonorID: d.DonorID, DonorName: d.Name})
		}
		httpx.WriteRows(w, out)
	}
}
