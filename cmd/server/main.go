package main

import (
	"go.uber.org/zap"

	"inboxpulse/internal/config"
	"inboxpulse/internal/dataset"
	"inboxpulse/internal/handler"
	"inboxpulse/internal/httpserver"
	"inboxpulse/internal/prompt"
	"inboxpulse/internal/service/chat"
	"inboxpulse/pkg/logger"
	redisclient "inboxpulse/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Load config
	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	// Load analysis data (fail-open: an empty dataset still serves)
	ds := dataset.Load(cfg.Data.File, cfg.Data.LegacyFile, log)

	// Optional chat response cache
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rdb.Close()
	}

	// Chat proxy; a missing key disables chat but nothing else
	chatService := chat.NewService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, rdb, log)
	if !chatService.Configured() {
		log.Warn("OPENAI_API_KEY not set, chat endpoint disabled")
	}

	systemPrompt := prompt.Build(ds)

	// Handlers
	emailHandler := handler.NewEmailHandler(ds, log)
	chatHandler := handler.NewChatHandler(chatService, systemPrompt, log)
	healthHandler := handler.NewHealthHandler(ds, chatService.Configured())

	// Router
	router := httpserver.NewRouter(emailHandler, chatHandler, healthHandler, cfg.Data.StaticDir)

	log.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.Bool("data_loaded", ds.Loaded),
		zap.Int("email_count", len(ds.Emails)),
		zap.Bool("openai_configured", chatService.Configured()),
	)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
