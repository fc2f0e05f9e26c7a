package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/adapters/cache"
	"github.com/KAMASDM/franchise-sub002/internal/adapters/database"
	"github.com/KAMASDM/franchise-sub002/internal/adapters/events"
	"github.com/KAMASDM/franchise-sub002/internal/adapters/notifications"
	"github.com/KAMASDM/franchise-sub002/internal/api/handlers"
	"github.com/KAMASDM/franchise-sub002/internal/api/middleware"
	"github.com/KAMASDM/franchise-sub002/internal/api/routes"
	"github.com/KAMASDM/franchise-sub002/internal/application/services"
	"github.com/KAMASDM/franchise-sub002/internal/domain/providers"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/redis"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/observability"
	"github.com/KAMASDM/franchise-sub002/pkg/config"
	"github.com/KAMASDM/franchise-sub002/pkg/secrets"
)

func main() {
	// Optionally hydrate credentials from Vault before configuration
	// is read.
	if result, err := secrets.HydrateEnv(context.Background(), secrets.OptionsFromEnv()); err != nil {
		log.Fatal().Err(err).Msg("failed to load secrets from Vault")
	} else if result.Enabled {
		log.Info().Str("path", result.Path).Int("loaded", result.Loaded).Msg("secrets hydrated from Vault")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional; the server runs fine without a collector.
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Redis is optional: without it the API serves uncached and skips
	// event publishing.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Repositories
	brandRepo := database.NewBrandAdapter(pgClient)
	favoriteRepo := database.NewFavoriteAdapter(pgClient)
	inquiryRepo := database.NewInquiryAdapter(pgClient)
	viewRepo := database.NewBrandViewAdapter(pgClient)
	analyticsRepo := database.NewSearchAnalyticsAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
	}

	var emailProvider providers.EmailProvider
	if cfg.Email.APIKey == "" {
		log.Warn().Msg("EMAIL_API_KEY is not set; inquiry emails disabled")
	} else {
		sender, err := notifications.NewResendEmailSender(&cfg.Email)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize email sender")
		} else {
			emailProvider = sender
		}
	}

	// Services
	brandService := services.NewBrandService(
		brandRepo,
		viewRepo,
		analyticsRepo,
		services.NewBrandSearchService(),
		services.NewFacetService(),
	)
	favoriteService := services.NewFavoriteService(favoriteRepo, brandRepo)
	historyService := services.NewHistoryService(favoriteRepo, inquiryRepo, viewRepo, brandRepo)
	notificationService := services.NewNotificationService(emailProvider, cfg.Email.AdminInbox)
	inquiryService := services.NewInquiryService(inquiryRepo, brandRepo, notificationService)
	recommendationService := services.NewRecommendationService()

	if eventBus != nil {
		brandService.SetEventBus(eventBus)
		favoriteService.SetEventBus(eventBus)
		inquiryService.SetEventBus(eventBus)
	}

	// Handlers
	brandHandler := handlers.NewBrandHandler(brandService, metrics)
	brandHandler.SetSearchDefaults(services.SearchConfig{
		Threshold:  cfg.Search.Threshold,
		MaxResults: cfg.Search.MaxResults,
	})
	recommendationHandler := handlers.NewRecommendationHandler(
		recommendationService,
		historyService,
		brandService,
	)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, historyService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	router := routes.NewRouter(
		brandHandler,
		recommendationHandler,
		favoriteHandler,
		inquiryHandler,
		cacheMiddleware,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}
