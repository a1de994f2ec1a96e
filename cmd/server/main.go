package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/profile-studio/adapters/event"
	httpAdapter "github.com/khoahotran/profile-studio/adapters/http"
	"github.com/khoahotran/profile-studio/adapters/media_storage"
	"github.com/khoahotran/profile-studio/adapters/persistence"
	authUC "github.com/khoahotran/profile-studio/internal/application/usecase/auth"
	profileUC "github.com/khoahotran/profile-studio/internal/application/usecase/profile"
	"github.com/khoahotran/profile-studio/internal/config"
	"github.com/khoahotran/profile-studio/pkg/auth"
	"github.com/khoahotran/profile-studio/pkg/logger"
	"github.com/khoahotran/profile-studio/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Starting Profile Studio API Server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "profile-studio-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", err)
		}
	}()

	// Infrastructure
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

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	profileCache := persistence.NewRedisProfileCache(redisClient, cfg.Redis.TTL)

	// Use Cases
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, profileCache, kafkaClient, appLogger)
	avatarUseCase := profileUC.NewUploadAvatarUseCase(profileRepo, profileCache, uploader, kafkaClient, cfg.Avatar.MaxBytes, appLogger)

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		AuthHandler:    httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		ProfileHandler: httpAdapter.NewProfileHandler(profileUseCase, avatarUseCase, cfg.Avatar.MaxBytes, appLogger),
		JWTService:     jwtSvc,
		Logger:         appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Server stopped with error", err)
	}
}
