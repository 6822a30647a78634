package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"art-valuation-service/internal/config"
	"art-valuation-service/internal/domain"
	"art-valuation-service/internal/handler"
	"art-valuation-service/internal/middleware"
	"art-valuation-service/internal/model"
	"art-valuation-service/internal/repository"
	"art-valuation-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// Reference store: bootstrap schema and seed rows (idempotent).
	store := repository.NewStore(pool)
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("ensure reference schema: %v", err)
	}
	if err := store.Seed(context.Background()); err != nil {
		log.Fatalf("seed reference store: %v", err)
	}
	log.Info("reference store ready")

	// Model artifact: a missing artifact leaves the service up but unready,
	// so health reports the state and predict answers 503.
	var (
		scorer domain.Scorer
		schema *domain.Schema
		info   domain.ModelInfo
	)
	artifact, err := model.Load(cfg.Model.ArtifactDir)
	if err != nil {
		log.WithError(err).Warn("model artifact not loaded, predictions unavailable")
	} else {
		scorer = artifact
		schema = artifact.Schema()
		info = artifact.Info()
		log.Infof("model loaded with %d features", info.FeaturesCount)
	}

	predictor := usecase.NewPredictor(store, scorer, schema, info, cfg.Model.ImageProcessing)
	h := handler.New(predictor, store)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
