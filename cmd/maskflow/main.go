package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/NeuralTrust/MaskFlow/docs"
	"github.com/NeuralTrust/MaskFlow/pkg/config"
	"github.com/NeuralTrust/MaskFlow/pkg/dependency_container"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/channel"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache/event"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/MaskFlow/pkg/infra/logger"
	_ "github.com/NeuralTrust/MaskFlow/pkg/infra/migrations"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/prometheus"
	"github.com/NeuralTrust/MaskFlow/pkg/server"
	"github.com/NeuralTrust/MaskFlow/pkg/server/router"
	"github.com/joho/godotenv"
)

// @title MaskFlow API
// @version 1.0
// @description Operator API for Protecto scan field selection and masking review.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, closeLogger, err := infraLogger.NewLogger(infraLogger.Config{
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		File:    cfg.Log.File,
		Console: cfg.Log.Console,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogger()

	if cfg.Metrics.Enabled {
		prometheus.Initialize(prometheus.MetricsConfig{
			EnableLatency:             cfg.Metrics.EnableLatency,
			EnableCollaboratorMetrics: cfg.Metrics.EnableCollaboratorMetrics,
		})
	}

	var db *database.DB
	if cfg.Database.Enabled {
		db, err = database.NewDB(logger, &database.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			DBName:       cfg.Database.DBName,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.WithError(err).Warn("failed to close database")
			}
		}()
	}

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:            cfg,
		Logger:         logger,
		DB:             db,
		EventsRegistry: event.Registry,
		EventsChannel:  channel.MaskFlowChannel,
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependencies: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container.EventDispatcher.StartWorkers(cfg.Events.Workers)

	go func() {
		logger.Info("starting listening redis events...")
		container.RedisListener.Listen(ctx, channel.MaskFlowChannel)
	}()

	srv := server.NewAPIServer(server.APIServerDI{
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport, cfg.Server.SwaggerUI),
		},
		Config: cfg,
		Logger: logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}
	container.EventDispatcher.Shutdown()

	if err := container.Cache.RedisClient().Close(); err != nil {
		logger.WithError(err).Warn("failed to close redis client")
	}
	fmt.Println("server gracefully stopped")
}
