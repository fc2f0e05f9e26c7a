package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/KAMASDM/franchise-sub002/internal/application/services"
)

// FavoriteHandler handles favorite and engagement HTTP requests
type FavoriteHandler struct {
	favorites *services.FavoriteService
	history   *services.HistoryService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favorites *services.FavoriteService, history *services.HistoryService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, history: history}
}

// ListFavorites handles GET /api/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	brands, err := h.favorites.List(r.Context(), sid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": brands,
		"count":     len(brands),
	})
}

// AddFavorite handles POST /api/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		BrandID string `json:"brand_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.BrandID == "" {
		respondWithError(w, http.StatusBadRequest, "brand_id is required")
		return
	}

	favorite, err := h.favorites.Add(r.Context(), sessionID(r), payload.BrandID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /api/favorites/{brandId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	brandID := r.PathValue("brandId")
	if brandID == "" {
		respondWithError(w, http.StatusBadRequest, "brand ID is required")
		return
	}

	if err := h.favorites.Remove(r.Context(), sessionID(r), brandID); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// GetEngagement handles GET /api/engagement
func (h *FavoriteHandler) GetEngagement(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	summary, err := h.history.Engagement(r.Context(), sid)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
