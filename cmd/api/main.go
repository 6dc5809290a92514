package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yt-collector/internal/api"
	"github.com/yt-collector/internal/config"
	"github.com/yt-collector/internal/youtube"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Initialize YouTube client
	client, err := youtube.NewClient(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize YouTube client")
	}

	server := api.NewServer(client)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := server.Start(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
