package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"demo_services/internal/api"
	"demo_services/internal/llm"
	"demo_services/internal/paramstore"
	"demo_services/internal/service"
	"demo_services/pkg/config"
	"demo_services/pkg/logger"
)

func main() {
	// 本地開發時從 .env 載入環境變數
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

	// 沒有 API 金鑰時不啟動
	if err := cfg.ValidateRelay(); err != nil {
		zapLogger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx := context.Background()

	// 金鑰只從環境變數或 SSM 讀取一次，之後唯讀
	var params llm.ParamGetter
	if cfg.LLM.APIKey == "" {
		ssmClient, err := paramstore.NewFromEnvironment(ctx)
		if err != nil {
			zapLogger.Fatal("Failed to create SSM client", zap.Error(err))
		}
		params = ssmClient
	}
	apiKey, err := llm.ResolveAPIKey(ctx, cfg.LLM, params)
	if err != nil {
		zapLogger.Fatal("Failed to resolve Gemini API key", zap.Error(err))
	}

	// 初始化 Gemini 客戶端與服務
	gemini, err := llm.NewGemini(llm.NewClient(cfg.LLM, apiKey), cfg.LLM.Model)
	if err != nil {
		zapLogger.Fatal("Failed to create Gemini client", zap.Error(err))
	}
	chatService, err := service.NewChatService(gemini)
	if err != nil {
		zapLogger.Fatal("Failed to create chat service", zap.Error(err))
	}

	r := api.NewRelayRouter(chatService, zapLogger)

	// 啟動伺服器
	zapLogger.Info("Starting relay server",
		zap.String("addr", cfg.Server.Address),
		zap.String("model", cfg.LLM.Model),
	)
	if err := r.Run(cfg.Server.Address); err != nil {
		zapLogger.Fatal("Failed to run server", zap.Error(err))
	}
}
