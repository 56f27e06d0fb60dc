package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/export"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/mechano"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Export  ExportConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// DatasetConfig holds synthetic dataset generation configuration
type DatasetConfig struct {
	SampleCount int
	Seed        int64
}

// ExportConfig holds static export configuration
type ExportConfig struct {
	SampleCount int
	Path        string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("SAMPLE_COUNT", 250)
	viper.SetDefault("DATASET_SEED", mechano.DefaultSeed)
	viper.SetDefault("EXPORT_SAMPLE_COUNT", 150)
	viper.SetDefault("EXPORT_PATH", export.DefaultFileName)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev" // Use "dev" to match .env.dev filename
	}

	// Try to read .env file for the current environment
	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	// Bind specific environment variable names
	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("SAMPLE_COUNT")
	viper.BindEnv("DATASET_SEED")
	viper.BindEnv("EXPORT_SAMPLE_COUNT")
	viper.BindEnv("EXPORT_PATH")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	config.Dataset.SampleCount = viper.GetInt("SAMPLE_COUNT")
	config.Dataset.Seed = viper.GetInt64("DATASET_SEED")
	config.Export.SampleCount = viper.GetInt("EXPORT_SAMPLE_COUNT")
	config.Export.Path = viper.GetString("EXPORT_PATH")

	log.Info().
		Str("env", config.Server.Env).
		Int("sample_count", config.Dataset.SampleCount).
		Int64("dataset_seed", config.Dataset.Seed).
		Msg("Configuration loaded")

	return &config, nil
}
