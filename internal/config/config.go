package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath   string
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the
// environment. Defaults keep the application runnable with no
// configuration at all: the store lives at a fixed relative path and
// logging stays out of the way of the interactive menus.
func Load() Config {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	viper.SetDefault("DB_PATH", "database/quehaypahacer.db")
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.AutomaticEnv()

	return Config{
		DBPath:   viper.GetString("DB_PATH"),
		LogLevel: viper.GetString("LOG_LEVEL"),
	}
}
