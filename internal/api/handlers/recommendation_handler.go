package handlers

import (
	"net/http"

	"github.com/KAMASDM/franchise-sub002/internal/application/services"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
)

// RecommendationHandler handles personalized recommendation requests
type RecommendationHandler struct {
	recommendations *services.RecommendationService
	history         *services.HistoryService
	brands          *services.BrandService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	recommendations *services.RecommendationService,
	history *services.HistoryService,
	brands *services.BrandService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		history:         history,
		brands:          brands,
	}
}

// GetRecommendations handles GET /api/recommendations. With no session
// history the response falls back to marketplace signals only.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	history, err := h.history.BySession(r.Context(), sessionID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	active := true
	candidates, err := h.brands.List(r.Context(), repositories.BrandFilter{IsActive: &active})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	recs := h.recommendations.Recommend(candidates, history, services.RecommendOptions{
		Limit: parseIntParam(r.URL.Query().Get("limit"), 0),
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"personalized":    !history.IsEmpty(),
	})
}
