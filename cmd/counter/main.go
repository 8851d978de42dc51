package main

import (
	"log"

	"go.uber.org/zap"

	"demo_services/internal/api"
	"demo_services/internal/service"
	"demo_services/internal/storage"
	"demo_services/pkg/config"
	"demo_services/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := cfg.ValidateCounter(); err != nil {
		zapLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	// 不建立長期連線：每個請求透過 opener 開新連線
	opener, err := storage.NewOpener(cfg.DB)
	if err != nil {
		zapLogger.Fatal("Failed to create database opener", zap.Error(err))
	}
	visitService, err := service.NewVisitService(zapLogger, opener)
	if err != nil {
		zapLogger.Fatal("Failed to create visit service", zap.Error(err))
	}

	r := api.NewCounterRouter(visitService, zapLogger)

	// 啟動伺服器
	zapLogger.Info("Starting counter server",
		zap.String("addr", cfg.Server.Address),
		zap.String("driver", cfg.DB.Driver),
		zap.String("db_host", cfg.DB.Host),
	)
	if err := r.Run(cfg.Server.Address); err != nil {
		zapLogger.Fatal("Failed to run server", zap.Error(err))
	}
}
