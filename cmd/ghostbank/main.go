package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/ghostlabs/ghostbank/internal/pkg/config"
	"github.com/ghostlabs/ghostbank/internal/pkg/database"
	"github.com/ghostlabs/ghostbank/internal/pkg/health"
	"github.com/ghostlabs/ghostbank/internal/pkg/logger"
	"github.com/ghostlabs/ghostbank/internal/pkg/middleware"
	nsqpkg "github.com/ghostlabs/ghostbank/internal/pkg/nsq"
	"github.com/ghostlabs/ghostbank/internal/pkg/server"
	"github.com/ghostlabs/ghostbank/internal/pkg/transport"
	authGateway "github.com/ghostlabs/ghostbank/services/auth/gateway"
	authHTTP "github.com/ghostlabs/ghostbank/services/auth/handler/http"
	authRepository "github.com/ghostlabs/ghostbank/services/auth/repository"
	authUsecase "github.com/ghostlabs/ghostbank/services/auth/usecase"
	walletGateway "github.com/ghostlabs/ghostbank/services/wallet/gateway"
	walletHTTP "github.com/ghostlabs/ghostbank/services/wallet/handler/http"
	walletRepository "github.com/ghostlabs/ghostbank/services/wallet/repository"
	walletUsecase "github.com/ghostlabs/ghostbank/services/wallet/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "ghostbank"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// NSQ is optional: without a bus the deposit event gateway degrades
	// to a no-op
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, deposit events disabled", logger.Err(err))
			producer = nil
		} else {
			defer producer.Stop()
		}
	}

	fallbackClient := transport.NewFallbackClient(15 * time.Second)

	// Gateways
	botGW := authGateway.NewTelegramGateway(configs.Telegram, fallbackClient)
	paymentGW := walletGateway.NewPixGateway(configs.Payment, fallbackClient)
	eventsGW := walletGateway.NewEventsGateway(producer, configs.NSQ.Topic)

	// Repositories
	authRepo := authRepository.NewAuthRepo(configs, postgresClient.GetDB())
	sessionRepo := authRepository.NewSessionRepo(redisClient)
	walletRepo := walletRepository.NewWalletRepo(configs, postgresClient.GetDB())

	// Usecases
	authUC := authUsecase.NewAuthUC(configs, botGW, authRepo, sessionRepo)
	defer authUC.Shutdown()
	walletUC := walletUsecase.NewWalletUC(configs, paymentGW, eventsGW, walletRepo)
	defer walletUC.Shutdown()

	// Restore the previous session eagerly so the stored handle is
	// validated against the account store at startup
	if user, err := authUC.RestoreSession(context.Background()); err == nil {
		zapLogger.Info("Restored previous session", logger.String("handle", user.Handle))
	}

	authHandler := authHTTP.NewAuthHandler(authUC)
	walletHandler := walletHTTP.NewWalletHandler(walletUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	authHandler.RegisterRoutes(e)
	walletHandler.RegisterRoutes(e, middleware.JWTAuthMiddleware(configs.JWT))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
