package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/saferoute-in/saferoute-go/internal/api"
	"github.com/saferoute-in/saferoute-go/internal/config"
	"github.com/saferoute-in/saferoute-go/internal/gateway"
	"github.com/saferoute-in/saferoute-go/internal/heatmap"
	"github.com/saferoute-in/saferoute-go/internal/logging"
	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/repository"
	"github.com/saferoute-in/saferoute-go/internal/scoring"
	"github.com/saferoute-in/saferoute-go/internal/sources"
	"github.com/saferoute-in/saferoute-go/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := scoring.Deps{
		DarkSpots: sources.NewMunicipalRegistry(),
		Reports:   db,
	}
	if cfg.Sources.OverpassEnabled {
		deps.POIs = sources.NewOverpassClient(cfg.Sources.OverpassURL, cfg.Sources.MemoTTL)
	}
	if cfg.Sources.OpenMeteoEnabled {
		deps.Weather = sources.NewOpenMeteoClient(cfg.Sources.OpenMeteoURL)
	}

	engine := scoring.NewEngine(scoringConfig(cfg), deps)
	generator := heatmap.NewGenerator(cfg.Heatmap)

	// Freshly computed heatmap points are persisted off the request path so
	// later requests can be served from the cache.
	persist := worker.NewPool(2, cfg.Heatmap.MaxPoints*2, func(ctx context.Context, score *models.SafetyScore) error {
		if err := db.SaveScore(ctx, score); err != nil {
			slog.Error("error persisting score", "error", err)
			return err
		}
		return nil
	})
	persist.Start(ctx)

	gw := gateway.New(cfg.Cache, cfg.Heatmap.MaxPoints, db, generator, engine.ComputeScore, persist)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.Server.RateLimit))

	handler := api.NewHandler(engine, gw, db, db)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	persist.Stop()
	cancel()

	slog.Info("shutdown complete")
}

func scoringConfig(cfg *config.Config) scoring.Config {
	sc := scoring.DefaultConfig()
	sc.WeightLighting = cfg.Scoring.WeightLighting
	sc.WeightFootfall = cfg.Scoring.WeightFootfall
	sc.WeightHazards = cfg.Scoring.WeightHazards
	sc.WeightProximity = cfg.Scoring.WeightProximity
	return sc
}
