package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey  string `mapstructure:"OPENAI_API_KEY"`
	TextModel  string `mapstructure:"TEXT_MODEL_ID"`  // e.g., "gpt-4o"
	ImageModel string `mapstructure:"IMAGE_MODEL_ID"` // e.g., "dall-e-3"

	// Resolution Cache Configuration
	CacheBackend  string `mapstructure:"CACHE_BACKEND"` // "memory" (default) or "redis"
	RedisAddress  string `mapstructure:"REDIS_ADDRESS"` // e.g., "localhost:6379"
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Output Configuration
	SaveToDisk bool   `mapstructure:"SAVE_TO_DISK"` // also write generated trees under OUTPUT_DIR
	OutputDir  string `mapstructure:"OUTPUT_DIR"`   // e.g., "tmp"

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json|console
}

// LoadConfig reads configuration from config.yaml (optional) and environment
// variables. Environment variables win over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("TEXT_MODEL_ID", "gpt-4o")
	viper.SetDefault("IMAGE_MODEL_ID", "dall-e-3")
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDRESS", "localhost:6379")
	viper.SetDefault("OUTPUT_DIR", "tmp")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// Missing config file is fine, env vars may carry everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return
}
