package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pubops/partnerstats/config"
	"pubops/partnerstats/internal/scrape"
	"pubops/partnerstats/logger"
	"pubops/partnerstats/services/cache"
	"pubops/partnerstats/services/publisher"
	"pubops/partnerstats/services/store"
	"pubops/partnerstats/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("scrape_interval", cfg.ScrapeInterval).
		Int("games", len(cfg.Games)).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services, err := initializeServices(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	location, err := time.LoadLocation(cfg.StatTimezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load stats timezone")
	}

	// Pick the document source: saved snapshots when configured, the live
	// portal otherwise.
	var source scrape.DocumentSource
	if cfg.SnapshotDir != "" {
		source = scrape.NewFileSource(cfg.SnapshotDir)
		log.Info().Str("dir", cfg.SnapshotDir).Msg("Using snapshot file source")
	} else {
		source = scrape.NewPortalSource(cfg.PortalBaseURL, services.Cache)
		log.Info().Str("base_url", cfg.PortalBaseURL).Msg("Using live portal source")
	}

	// Create and start worker
	w := worker.NewWorker(
		ctx,
		cfg.Games,
		source,
		nil,
		services.Store,
		services.Publisher,
		cfg.ScrapeInterval,
		location,
	)

	workerDone := make(chan struct{})
	go func() {
		log.Info().Msg("Starting daily metrics worker")
		w.Start()
		close(workerDone)
	}()

	// Wait for shutdown signal or worker exit
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case <-workerDone:
		log.Info().Msg("Worker exited")
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Store     store.Store
	Publisher publisher.Publisher
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	// Initialize cache service
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	services.Cache = cacheService

	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	// Initialize the metrics store
	metricsStore, err := store.Open(cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	if err := metricsStore.Migrate(); err != nil {
		return nil, err
	}
	services.Store = metricsStore

	logger.Info("Connected to MySQL, schema migrated")

	// Initialize publisher
	redisPublisher := publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamMaxLength,
	)
	services.Publisher = redisPublisher

	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	return services, nil
}
