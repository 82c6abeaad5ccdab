package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shoply-app/shoply-backend/internal/config"
	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi"
	"github.com/shoply-app/shoply-backend/internal/delivery/httpapi/middleware"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/kafka"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/metrics"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/migrate"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/postgres/repository"
	"github.com/shoply-app/shoply-backend/internal/infrastructure/token"
	"github.com/shoply-app/shoply-backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	godotenv.Load()

	cfg := config.MustLoad()

	logger := mustInitLogger(cfg)
	defer logger.Sync()

	// Database
	db := postgres.MustInitDB(cfg)
	if cfg.StoreDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.StoreDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka
	kafkaAddr := net.JoinHostPort(cfg.KafkaService.Host, cfg.KafkaService.Port)
	publisher := kafka.NewDefaultKafkaPublisher([]string{kafkaAddr})
	defer publisher.Close()

	storeMetrics := metrics.NewStoreMetrics()
	tokens := token.NewManager(cfg.JWT.Secret)

	// Repositories
	clientRepo := repository.NewDefaultClientRepository(db)
	storeRepo := repository.NewDefaultStoreRepository(db)
	inviteRepo := repository.NewDefaultInviteRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	txRepo := repository.NewDefaultTransactionRepository(db)

	// Usecases
	access := usecase.NewStoreAccessPolicy(storeRepo)
	authUsecase := usecase.NewDefaultAuthUsecase(clientRepo, tokens)
	storeUsecase := usecase.NewDefaultStoreUsecase(storeRepo, access)
	inviteUsecase := usecase.NewDefaultInviteUsecase(inviteRepo, storeRepo, clientRepo, access, publisher, storeMetrics)
	productUsecase := usecase.NewDefaultProductUsecase(productRepo, access, storeMetrics)
	txUsecase := usecase.NewDefaultTransactionUsecase(txRepo, storeRepo, access, publisher, storeMetrics)

	// HTTP
	authenticator := middleware.NewAuthenticator(tokens, clientRepo, logger)
	router := httpapi.NewRouter(logger, authenticator, httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(authUsecase, logger),
		Store:       httpapi.NewStoreHandler(storeUsecase, logger),
		Product:     httpapi.NewProductHandler(productUsecase, logger),
		Invite:      httpapi.NewInviteHandler(inviteUsecase, logger),
		Transaction: httpapi.NewTransactionHandler(txUsecase, logger),
	})

	addr := net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func mustInitLogger(cfg *config.ShoplyConfig) *zap.Logger {
	var zcfg zap.Config
	if cfg.Env == "local" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogConfig.LogLevel); err == nil {
		zcfg.Level = level
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	return logger
}
