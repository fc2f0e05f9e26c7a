package routes

import (
	"net/http"

	"github.com/KAMASDM/franchise-sub002/internal/api/handlers"
	"github.com/KAMASDM/franchise-sub002/internal/api/middleware"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	brandHandler          *handlers.BrandHandler
	recommendationHandler *handlers.RecommendationHandler
	favoriteHandler       *handlers.FavoriteHandler
	inquiryHandler        *handlers.InquiryHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	brandHandler *handlers.BrandHandler,
	recommendationHandler *handlers.RecommendationHandler,
	favoriteHandler *handlers.FavoriteHandler,
	inquiryHandler *handlers.InquiryHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                   http.NewServeMux(),
		brandHandler:          brandHandler,
		recommendationHandler: recommendationHandler,
		favoriteHandler:       favoriteHandler,
		inquiryHandler:        inquiryHandler,
		cacheMiddleware:       cacheMiddleware,
		metrics:               metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Brand catalog and search
	r.mux.HandleFunc("GET /api/brands", r.brandHandler.ListBrands)
	r.mux.HandleFunc("GET /api/brands/search", r.brandHandler.SearchBrands)
	r.mux.HandleFunc("GET /api/brands/suggest", r.brandHandler.SuggestBrands)
	r.mux.HandleFunc("GET /api/brands/facets", r.brandHandler.GetFacets)
	r.mux.HandleFunc("GET /api/brands/{id}", r.brandHandler.GetBrand)
	r.mux.HandleFunc("POST /api/brands/{id}/view", r.brandHandler.RecordView)

	// Recommendations
	r.mux.HandleFunc("GET /api/recommendations", r.recommendationHandler.GetRecommendations)

	// Favorites and engagement
	r.mux.HandleFunc("GET /api/favorites", r.favoriteHandler.ListFavorites)
	r.mux.HandleFunc("POST /api/favorites", r.favoriteHandler.AddFavorite)
	r.mux.HandleFunc("DELETE /api/favorites/{brandId}", r.favoriteHandler.RemoveFavorite)
	r.mux.HandleFunc("GET /api/engagement", r.favoriteHandler.GetEngagement)

	// Inquiries
	r.mux.HandleFunc("POST /api/inquiries", r.inquiryHandler.SubmitInquiry)
	r.mux.HandleFunc("GET /api/inquiries", r.inquiryHandler.ListInquiries)

	// Analytics
	r.mux.HandleFunc("GET /api/analytics/zero-result-queries", r.brandHandler.GetZeroResultQueries)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
