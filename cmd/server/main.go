package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/robfig/cron/v3"

	"github.com/whatiftr/whatif-backend/internal/api"
	"github.com/whatiftr/whatif-backend/internal/api/handlers"
	"github.com/whatiftr/whatif-backend/internal/apperrors"
	"github.com/whatiftr/whatif-backend/internal/coingecko"
	"github.com/whatiftr/whatif-backend/internal/config"
	"github.com/whatiftr/whatif-backend/internal/database"
	"github.com/whatiftr/whatif-backend/internal/evds"
	"github.com/whatiftr/whatif-backend/internal/pricecache"
	"github.com/whatiftr/whatif-backend/internal/repository"
	"github.com/whatiftr/whatif-backend/internal/service"
	"github.com/whatiftr/whatif-backend/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Snapshot cache is optional: a missing or unreachable Redis only costs
	// repeated API calls.
	var cache service.SnapshotCache
	if cfg.Redis.Addr != "" {
		c, err := pricecache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("snapshot cache disabled: %v", err)
		} else {
			defer c.Close()
			cache = c
		}
	}

	priceRepo := repository.NewPriceRepository(db)
	inflationRepo := repository.NewInflationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	var fernetKey *fernet.Key
	if cfg.Security.FernetKey != "" {
		fernetKey, err = fernet.DecodeKey(cfg.Security.FernetKey)
		if err != nil {
			log.Fatalf("invalid FERNET_KEY: %v", err)
		}
	}

	systemService := service.NewSystemService(db, settingRepo, fernetKey)

	// The stored encrypted EVDS key takes precedence over the environment.
	evdsKey := cfg.EVDS.APIKey
	if stored, err := systemService.EVDSAPIKey(); err == nil {
		evdsKey = stored
	} else if !errors.Is(err, apperrors.ErrSettingNotFound) && !errors.Is(err, apperrors.ErrEncryptionKeyNotConfigured) {
		log.Printf("failed to load stored EVDS API key: %v", err)
	}

	evdsClient := evds.NewAPIClient(cfg.EVDS.BaseURL, evdsKey)
	coingeckoClient := coingecko.NewAPIClient(cfg.CoinGecko.BaseURL)

	priceService := service.NewPriceService(evdsClient, coingeckoClient, priceRepo, inflationRepo, cache)
	simulationService := service.NewSimulationService(priceService)
	refreshService := service.NewRefreshService(priceService, priceRepo)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 6 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := refreshService.RefreshLatest(ctx); err != nil {
			log.Printf("daily price refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("failed to schedule price refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(api.Handlers{
		Simulation: handlers.NewSimulationHandler(simulationService),
		Data:       handlers.NewDataHandler(priceService),
		System:     handlers.NewSystemHandler(systemService),
	}, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("whatif backend %s listening on %s", version.Version, cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
