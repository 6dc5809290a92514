package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	Port          string
	LogLevel      string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get YouTube API key from environment
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY environment variable is required")
	}

	// Get server port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Get log level from environment or use default
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		YouTubeAPIKey: apiKey,
		Port:          port,
		LogLevel:      logLevel,
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}
