package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/mamtahealth/mamta-backend/config"
	"github.com/mamtahealth/mamta-backend/handler"
	"github.com/mamtahealth/mamta-backend/model"
	"github.com/mamtahealth/mamta-backend/service"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log.Info().Int("port", cfg.Server.Port).Str("db", cfg.Database.Path).Msg("config loaded")

	gin.SetMode(cfg.Server.Mode)

	db, err := model.InitDB(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init database")
	}
	log.Info().Msg("database initialized")

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; /api/generate will fail until it is configured")
	}

	authHandler := handler.NewAuthHandler(service.NewAuthService(db))
	chatHandler := handler.NewChatHandler(service.NewChatService(db))
	adviceHandler := handler.NewAdviceHandler(service.NewAdviceClient(cfg.Gemini))

	r := handler.NewRouter(authHandler, chatHandler, adviceHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
