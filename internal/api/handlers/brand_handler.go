package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KAMASDM/franchise-sub002/internal/application/services"
	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/domain/repositories"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/observability"
)

// facetParams maps query parameter names onto facet dimensions.
var facetParams = []string{"category", "industries", "businessModels", "locations", "investment"}

// BrandHandler handles brand catalog and search HTTP requests
type BrandHandler struct {
	brands         *services.BrandService
	metrics        *observability.Metrics
	searchDefaults services.SearchConfig
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(brands *services.BrandService, metrics *observability.Metrics) *BrandHandler {
	return &BrandHandler{
		brands:         brands,
		metrics:        metrics,
		searchDefaults: services.DefaultSearchConfig(),
	}
}

// SetSearchDefaults overrides the built-in search tuning with
// operator-supplied values.
func (h *BrandHandler) SetSearchDefaults(cfg services.SearchConfig) {
	h.searchDefaults = cfg
}

// ListBrands handles GET /api/brands
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	active := true
	filter := repositories.BrandFilter{
		Category: query.Get("category"),
		IsActive: &active,
		Limit:    parseIntParam(query.Get("limit"), 30),
		Offset:   parseIntParam(query.Get("offset"), 0),
	}

	brands, err := h.brands.List(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"brands": brands,
		"count":  len(brands),
	})
}

// GetBrand handles GET /api/brands/{id}
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	brandID := r.PathValue("id")
	if brandID == "" {
		respondWithError(w, http.StatusBadRequest, "brand ID is required")
		return
	}

	brand, err := h.brands.GetByID(r.Context(), brandID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, brand)
}

// SearchBrands handles GET /api/brands/search
func (h *BrandHandler) SearchBrands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := time.Now()

	cfg := h.searchDefaults
	if limit := parseIntParam(query.Get("limit"), 0); limit > 0 {
		cfg.MaxResults = limit
	}

	result, err := h.brands.Search(r.Context(), query.Get("q"), parseSelections(r), cfg, sessionID(r))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	observability.RecordSearchMetric(r.Context(), h.metrics, result.TotalCount, time.Since(start))
	respondWithJSON(w, http.StatusOK, result)
}

// SuggestBrands handles GET /api/brands/suggest
func (h *BrandHandler) SuggestBrands(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	suggestions, err := h.brands.Suggest(r.Context(), query.Get("q"), parseIntParam(query.Get("limit"), 0))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}

// GetFacets handles GET /api/brands/facets
func (h *BrandHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.brands.Facets(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"facets": facets,
	})
}

// RecordView handles POST /api/brands/{id}/view
func (h *BrandHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	brandID := r.PathValue("id")
	if brandID == "" {
		respondWithError(w, http.StatusBadRequest, "brand ID is required")
		return
	}

	if err := h.brands.RecordView(r.Context(), brandID, sessionID(r)); err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// GetZeroResultQueries handles GET /api/analytics/zero-result-queries
func (h *BrandHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	events, err := h.brands.ZeroResultQueries(r.Context(), parseIntParam(r.URL.Query().Get("limit"), 50))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"queries": events,
		"count":   len(events),
	})
}

// parseSelections reads facet filter values from the query string. Each
// dimension accepts repeated parameters or a comma-separated list.
func parseSelections(r *http.Request) entities.FacetSelections {
	query := r.URL.Query()
	selections := entities.FacetSelections{}

	for _, name := range facetParams {
		var values []string
		for _, raw := range query[name] {
			for _, v := range strings.Split(raw, ",") {
				if v = strings.TrimSpace(v); v != "" {
					values = append(values, v)
				}
			}
		}
		if len(values) > 0 {
			selections[name] = values
		}
	}

	return selections
}

func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
