package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port        string
	DatabaseURL string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	LocalDBPath string
	MediaDir    string

	JWTSecret         string
	JWTExpiryDuration time.Duration

	SyncSchedule string
}

// Load reads configuration from environment variables, with a .env file
// as an optional overlay for local development.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "9091")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOCAL_DB_PATH", "bumpjournal.db")
	viper.SetDefault("MEDIA_DIR", "internal")
	viper.SetDefault("JWT_SECRET", "insecure-dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRY_DURATION", "720h")
	viper.SetDefault("SYNC_SCHEDULE", "@every 15m")

	viper.AutomaticEnv()

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		DatabaseURL:       viper.GetString("DATABASE_URL"),
		RedisHost:         viper.GetString("REDIS_HOST"),
		RedisPort:         viper.GetString("REDIS_PORT"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		RedisDB:           viper.GetInt("REDIS_DB"),
		LocalDBPath:       viper.GetString("LOCAL_DB_PATH"),
		MediaDir:          viper.GetString("MEDIA_DIR"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTExpiryDuration: expiry,
		SyncSchedule:      viper.GetString("SYNC_SCHEDULE"),
	}

	return cfg, nil
}
