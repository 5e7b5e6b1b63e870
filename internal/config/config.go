package config

import (
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	RedisURL      string `mapstructure:"REDIS_URL"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
}

func LoadConfig() (config Config, err error) {
	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://mealtrack.db")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	// AutomaticEnv only surfaces keys viper already knows, so every
	// env-configurable key needs a default, even an empty one.
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("SESSION_SECRET", "dev-secret-change-in-production")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		slog.Error("unable to decode config into struct", "error", err)
		return
	}

	return
}
