package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dompet/internal/pkg/config"
	"github.com/piresc/dompet/internal/pkg/database"
	"github.com/piresc/dompet/internal/pkg/health"
	"github.com/piresc/dompet/internal/pkg/logger"
	"github.com/piresc/dompet/internal/pkg/middleware"
	natspkg "github.com/piresc/dompet/internal/pkg/nats"
	"github.com/piresc/dompet/internal/pkg/server"
	userHandler "github.com/piresc/dompet/services/user/handler"
	userHTTP "github.com/piresc/dompet/services/user/handler/http"
	userRepository "github.com/piresc/dompet/services/user/repository"
	userUsecase "github.com/piresc/dompet/services/user/usecase"
	walletGateway "github.com/piresc/dompet/services/wallet/gateway"
	walletHandler "github.com/piresc/dompet/services/wallet/handler"
	walletHTTP "github.com/piresc/dompet/services/wallet/handler/http"
	walletRepository "github.com/piresc/dompet/services/wallet/repository"
	walletUsecase "github.com/piresc/dompet/services/wallet/usecase"
)

func main() {
	appName := "wallet-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/wallet.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	txManager := walletRepository.NewTxManager(db)
	accountRepo := walletRepository.NewAccountRepository(db)
	transactionRepo := walletRepository.NewTransactionRepository(db)
	userRepo := userRepository.NewUserRepository(db)

	// Initialize gateway
	walletGW := walletGateway.NewWalletGW(natsClient)

	// Initialize use cases
	walletUC := walletUsecase.NewWalletUC(configs, txManager, accountRepo, transactionRepo, walletGW, zapLogger)
	userUC := userUsecase.NewUserUC(configs, userRepo)

	// Initialize handlers
	wHandler := walletHandler.NewHandler(walletHTTP.NewWalletHandler(walletUC), redisClient, configs)
	uHandler := userHandler.NewHandler(userHTTP.NewAuthHandler(userUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	uHandler.RegisterRoutes(e)
	wHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
