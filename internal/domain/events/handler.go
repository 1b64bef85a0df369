package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/platform/validation"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/events", listEventsHandler(svc, log))
	r.Put("/events", filterEventsHandler(svc, log))
}

// filterEventsRequest: cada condición se une a la anterior con su connective (AND por defecto).
type filterEventsRequest struct {
	Where []ConditionInput `json:"where"`
}

// eventResponse representa una fila de Events; eventDate en formato YYYY-MM-DD.
type eventResponse struct {
	EventID       int64  `json:"eventID"`
	Title         string `json:"title"`
	EventLocation string `json:"eventLocation"`
	EventDate     string `json:"eventDate"`
	EventType     string `json:"eventType"`
}

// listEventsHandler godoc
// @Summary Listar eventos
// @Tags events
// @Produce json
// @Success 200 {array} eventResponse
// @Failure 503 {object} httpx.SuccessResponse
// @Router /events [get]
func listEventsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEventResponses(items))
	}
}

// filterEventsHandler godoc
// @Summary Filtrar eventos
// @Description Atributos permitidos: title, eventLocation, eventDate (YYYY-MM-DD), eventType. Los valores con `;`, `INSERT`, `DROP TABLE`, `@`, `#`, `$`, `%`, `^`, `&` o paréntesis se rechazan. Máximo 20 condiciones.
// @Tags events
// @Accept json
// @Produce json
// @Param payload body filterEventsRequest true "Condiciones"
// @Success 200 {array} eventResponse
// @Failure 400 {object} httpx.SuccessResponse "atributo/valor/conector inválido"
// @Router /events [put]
func filterEventsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req filterEventsRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		items, err := svc.Filter(r.Context(), FilterInput{Where: req.Where})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toEventResponses(items))
	}
}

func toEventResponses(items []Event) []eventResponse {
	out := make([]eventResponse, 0, len(items))
	for _, e := range items {
		out = append(out, eventResponse{
			EventID:       e.EventID,
			Title:         e.Title,
			EventLocation: e.Location,
			EventDate:     e.Date.Format(validation.DateLayout),
			EventType:     e.Type,
		})
	}
	return out
}
