package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/cache"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/config"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/engine"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/handler"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/middleware"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/platform"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/repository"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/router"
	"github.com/javimartin54-cpu/arbitraje-inteligente/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Arbitraje Inteligente API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Fee table: production defaults with env-tunable marketplace-wide rates
	fees := engine.DefaultFeeTable()
	fees.TaxRate = cfg.Fees.TaxRate
	fees.PaymentFeePct = cfg.Fees.PaymentPct
	fees.Packaging = cfg.Fees.PackagingCost

	matcher := engine.Matcher{
		Threshold:     cfg.Search.SimilarityThreshold,
		MinPriceRatio: cfg.Search.MinPriceRatio,
	}

	// Platform adapters. Every configured adapter contributes a stats entry
	// per search, even when its credentials are missing and it always fails.
	adapters := []platform.Adapter{
		platform.NewWallapopAdapter(),
		platform.NewEbayAdapter(cfg.Search.EbayAppID),
		platform.NewVintedAdapter(),
		platform.NewCatawikiAdapter(),
	}
	if cfg.Search.EbayAppID == "" {
		log.Println("Warning: EBAY_APP_ID not set, ebay searches will report zero results")
	}

	// Search result cache based on config
	var searchCache cache.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v, falling back to memory cache", err)
			searchCache = cache.NewMemoryCache()
		} else {
			defer redisCache.Close()
			searchCache = redisCache
			log.Println("Redis cache initialized")
		}
	default:
		searchCache = cache.NewMemoryCache()
		log.Println("Memory cache initialized")
	}

	// Search history repository based on config (optional)
	var historyRepo repository.HistoryRepository
	switch cfg.HistoryDB.Type {
	case "mysql":
		mysqlRepo, err := repository.NewMySQLHistoryRepository(cfg.HistoryDB.MySQLDSN())
		if err != nil {
			log.Printf("Warning: MySQL history disabled: %v", err)
		} else {
			defer mysqlRepo.Close()
			historyRepo = mysqlRepo
			log.Println("MySQL history repository initialized")
		}
	case "none":
		log.Println("Search history disabled")
	default: // sqlite
		if err := os.MkdirAll("./data", 0o755); err != nil {
			log.Printf("Warning: cannot create data directory: %v", err)
		}
		sqliteRepo, err := repository.NewSQLiteHistoryRepository(cfg.HistoryDB.Path)
		if err != nil {
			log.Printf("Warning: SQLite history disabled: %v", err)
		} else {
			defer sqliteRepo.Close()
			historyRepo = sqliteRepo
			log.Println("SQLite history repository initialized")
		}
	}

	// Initialize services
	searchService := service.NewSearchService(service.SearchConfig{
		Adapters:       adapters,
		Fees:           fees,
		Matcher:        matcher,
		AdapterTimeout: cfg.Search.AdapterTimeout,
		DefaultResults: cfg.Search.DefaultMaxResults,
		MaxResultsCap:  cfg.Search.MaxResultsCap,
		Cache:          searchCache,
		CacheTTL:       cfg.Cache.TTL,
		History:        historyRepo,
	})
	analyzeService := service.NewAnalyzeService(fees)

	// Initialize handlers
	baseHandler := handler.New(cfg.App.Name, cfg.App.Version)
	searchHandler := handler.NewSearchHandler(searchService)
	analyzeHandler := handler.NewAnalyzeHandler(analyzeService)
	historyHandler := handler.NewHistoryHandler(searchService)

	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfig{})

	// Create router
	r := router.New(router.Config{
		Handler:        baseHandler,
		SearchHandler:  searchHandler,
		AnalyzeHandler: analyzeHandler,
		HistoryHandler: historyHandler,
		AuthMiddleware: authMiddleware,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
