package api

import (
	"net/http"

	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
)

// ListPastMastersHandler handles GET /api/v1/past-masters
func ListPastMastersHandler(repo *repositories.PastMasterRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		masters, err := repo.List(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load past masters")
			return
		}

		dtos := make([]responses.PastMasterDTO, 0, len(masters))
		for _, m := range masters {
			dtos = append(dtos, responses.PastMasterDTO{
				ID:   m.ID,
				Name: m.Name,
				Year: m.Year,
			})
		}
		respondWithSuccess(w, http.StatusOK, &dtos)
	}
}
