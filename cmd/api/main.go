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
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/hourstay/hourstay-backend/internal/adapters/cache"
	"github.com/hourstay/hourstay-backend/internal/adapters/database"
	"github.com/hourstay/hourstay-backend/internal/adapters/events"
	"github.com/hourstay/hourstay-backend/internal/adapters/staticdata"
	"github.com/hourstay/hourstay-backend/internal/api/handlers"
	"github.com/hourstay/hourstay-backend/internal/api/middleware"
	"github.com/hourstay/hourstay-backend/internal/api/routes"
	"github.com/hourstay/hourstay-backend/internal/application/services"
	"github.com/hourstay/hourstay-backend/internal/domain/providers"
	"github.com/hourstay/hourstay-backend/internal/domain/repositories"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/clients/postgres"
	redisclient "github.com/hourstay/hourstay-backend/internal/infrastructure/clients/redis"
	"github.com/hourstay/hourstay-backend/internal/infrastructure/observability"
	"github.com/hourstay/hourstay-backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx := context.Background()

	// OpenTelemetry (optional)
	var metrics *observability.Metrics
	if cfg.OTEL.Enabled {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to setup OpenTelemetry")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown OpenTelemetry")
			}
		}()

		metrics, err = observability.InitMetrics()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize metrics")
		}

		if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Minute)); err != nil {
			log.Error().Err(err).Msg("Failed to start runtime instrumentation")
		}
		log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry enabled")
	}

	// Redis (optional): cache and event bus degrade gracefully without it
	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache and events")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
		defer eventBus.Close()
		log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Connected to Redis")
	}

	// Data source: Postgres for real deployments, the static reference
	// set for local development and demos
	var hotelRepo repositories.HotelRepository
	var slotRepo repositories.TimeSlotRepository
	var bookingRepo repositories.BookingRepository

	switch cfg.Data.Source {
	case "static":
		store := staticdata.NewSeededStore()
		hotelRepo = store.HotelRepo()
		slotRepo = store.SlotRepo()
		bookingRepo = store.BookingRepo()
		log.Info().Msg("Using static hotel dataset")
	default:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pgClient.Close()

		hotelAdapter := database.NewHotelAdapter(pgClient)
		slotAdapter := database.NewTimeSlotAdapter(pgClient)
		hotelRepo = hotelAdapter
		slotRepo = slotAdapter
		bookingRepo = database.NewBookingAdapter(pgClient)

		if cacheProvider != nil {
			hotelRepo = database.NewCachedHotelAdapter(hotelAdapter, cacheProvider)
			slotRepo = database.NewCachedTimeSlotAdapter(slotAdapter, cacheProvider)
		}
	}

	// Application services
	matchingService := services.NewMatchingService()
	hotelService := services.NewHotelService(hotelRepo)
	bookingService := services.NewBookingService(bookingRepo, slotRepo, hotelRepo)

	var invalidationService *services.CacheInvalidationService
	if eventBus != nil {
		hotelService.SetEventBus(eventBus)
		bookingService.SetEventBus(eventBus)

		if cacheProvider != nil {
			invalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
			if err := invalidationService.Start(); err != nil {
				log.Error().Err(err).Msg("Failed to start cache invalidation service")
			} else {
				defer invalidationService.Stop()
			}
		}
	}

	// HTTP layer
	hotelHandler := handlers.NewHotelHandler(hotelService)
	searchHandler := handlers.NewSearchHandler(matchingService, hotelService, metrics)
	bookingHandler := handlers.NewBookingHandler(bookingService, metrics)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(hotelHandler, searchHandler, bookingHandler, cacheMiddleware, metrics)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
