package animals

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"shelter-admin/internal/platform/httpx"
	"shelter-admin/internal/platform/logger"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/available-animals", listAvailableHandler(svc, log))
	r.Get("/animals", listAnimalsHandler(svc, log))
	r.Get("/vaccinations", vaccinationCountsHandler(svc, log))
}

type availableAnimalResponse struct {
	AnimalID   int64  `json:"animalID"`
	AnimalName string `json:"animalName"`
	Breed      string `json:"breed"`
	BranchID   int64  `json:"branchID"`
}

type animalResponse struct {
	AnimalID   int64  `json:"animalID"`
	AnimalName string `json:"animalName"`
	Age        *int   `json:"age"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	BranchID   int64  `json:"branchID"`
}

type vaccinationCountResponse struct {
	AnimalID         int64 `json:"animalID"`
	VaccinationCount int64 `json:"vaccinationCount"`
}

// listAvailableHandler godoc
// @Summary Animales disponibles
// @Description Animales que no figuran en ninguna solicitud con estado Accepted.
// @Tags animals
// @Produce json
// @Success 200 {object} httpx.RowsResponse[availableAnimalResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /available-animals [get]
func listAvailableHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]availableAnimalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, availableAnimalResponse{
				AnimalID:   a.AnimalID,
				AnimalName: a.Name,
				Breed:      a.Breed,
				BranchID:   a.BranchID,
			})
		}
		httpx.WriteRows(w, out)
	}
}

// listAnimalsHandler godoc
// @Summary Animales con especie
// @Tags animals
// @Produce json
// @Success 200 {object} httpx.RowsResponse[animalResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListWithSpecies(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, animalResponse{
				AnimalID:   a.AnimalID,
				AnimalName: a.Name,
				Age:        a.Age,
				Species:    a.Species,
				Breed:      a.Breed,
				BranchID:   a.BranchID,
			})
		}
		httpx.WriteRows(w, out)
	}
}

// vaccinationCountsHandler godoc
// @Summary Cantidad de vacunas por animal
// @Tags animals
// @Produce json
// @Success 200 {object} httpx.RowsResponse[vaccinationCountResponse]
// @Failure 503 {object} httpx.SuccessResponse
// @Router /vaccinations [get]
func vaccinationCountsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.VaccinationCounts(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]vaccinationCountResponse, 0, len(items))
		for _, v := range items {
			out = append(out, vaccinationCountResponse{AnimalID: v.AnimalID, VaccinationCount: v.Count})
		}
		httpx.WriteRows(w, out)
	}
}
