package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-studio/adapters/event"
	"github.com/khoahotran/profile-studio/adapters/media_storage"
	"github.com/khoahotran/profile-studio/adapters/persistence"
	profileUC "github.com/khoahotran/profile-studio/internal/application/usecase/profile"
	"github.com/khoahotran/profile-studio/internal/config"
	"github.com/khoahotran/profile-studio/pkg/logger"
	"github.com/khoahotran/profile-studio/pkg/tracing"
)

const consumerGroup = "profile-processor-group"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("service", "worker"))
	defer appLogger.Sync()

	appLogger.Info("Starting Profile Studio Worker...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "profile-studio-worker")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer tp.Shutdown(context.Background())

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisProfileCache(redisClient, cfg.Redis.TTL)
	processUC := profileUC.NewProcessProfileEventUseCase(profileRepo, profileCache, uploader, appLogger)

	reader := event.NewProfileEventsReader(cfg, consumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents), zap.String("group", consumerGroup))
	if err := event.ConsumeProfileEvents(ctx, reader, processUC.Execute, appLogger); err != nil {
		appLogger.Error("Consumer stopped with error", err)
	}
	appLogger.Info("Worker stopped")
}
