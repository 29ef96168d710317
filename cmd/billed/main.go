package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mondoloni/Billed/internal/api"
	"github.com/Mondoloni/Billed/internal/api/handlers"
	"github.com/Mondoloni/Billed/internal/repository"
	"github.com/Mondoloni/Billed/internal/service"
	"github.com/Mondoloni/Billed/pkg/auth"
	"github.com/Mondoloni/Billed/pkg/config"
	"github.com/Mondoloni/Billed/pkg/logger"
	"github.com/Mondoloni/Billed/pkg/postgres"

	"go.uber.org/zap"
)

// @title Billed API
// @version 1.0
// @description Employee expense-report management service

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Billed service")

	// Initialize database
	ctx := context.Background()
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	billRepo := repository.NewBillRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize file storage
	storage, err := service.NewDiskStorage(cfg.Storage.UploadDir, cfg.Storage.PublicURL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	billService := service.NewBillListService(billRepo, appLogger)
	newBillService := service.NewNewBillService(billRepo, storage, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	billHandler := handlers.NewBillHandler(billService, newBillService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, billHandler, jwtManager, cfg.Storage.UploadDir, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
