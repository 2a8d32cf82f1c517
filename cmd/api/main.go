package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lock-tracking-api-server/config"
	"lock-tracking-api-server/internal/api/routes"
	"lock-tracking-api-server/internal/auth"
	"lock-tracking-api-server/internal/database"
	"lock-tracking-api-server/internal/logger"
	"lock-tracking-api-server/internal/metrics"
	"lock-tracking-api-server/internal/s3"
	"lock-tracking-api-server/internal/socket"
	"lock-tracking-api-server/internal/store"
	"lock-tracking-api-server/internal/store/memory"
	"lock-tracking-api-server/internal/store/mongodb"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	godotenv.Load()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		panic("could not load config: " + err.Error())
	}

	logger.Init(cfg.Server.Env, cfg.Log.Level)
	log := logger.Get()
	defer log.Sync()

	metrics.Init(cfg.Metrics.Prefix)

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	auth.JwtSecret = []byte(cfg.JWT.Secret)

	var stores *store.Stores
	switch cfg.Store.Driver {
	case "memory":
		// Offline development mode: state lives in process memory.
		stores = memory.New()
		log.Warn("using in-memory store, data will not survive a restart")
	default:
		db, err := database.Connect(cfg.Mongo)
		if err != nil {
			log.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		stores = mongodb.New(db)
	}

	if err := database.SeedSystemIdentity(context.Background(), stores); err != nil {
		log.Fatal("failed to seed system identity", zap.Error(err))
	}

	// Photo storage is optional; the seal-photo endpoint reports it missing.
	var s3Uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatal("failed to initialize S3 uploader", zap.Error(err))
		}
	}

	wsHub := socket.NewHub()

	router := routes.SetupRouter(cfg, stores, s3Uploader, wsHub)

	log.Info("starting API server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("failed to run server", zap.Error(err))
	}
}
