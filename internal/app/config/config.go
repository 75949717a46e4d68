package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"warp_ships/internal/app/dsn"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost    string
	ServicePort    int
	DatabaseURL    string
	RedisEndpoint  string
	RedisPassword  string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	LogLevel       string
}

// Addr returns host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceHost, c.ServicePort)
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "127.0.0.1")
	v.SetDefault("ServicePort", 4000)
	v.SetDefault("RequestTimeout", "5s")
	v.SetDefault("CacheTTL", "30s")
	v.SetDefault("LogLevel", "info")

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		logrus.Warnf("config file %q not found, using defaults", configName)
	} else {
		v.WatchConfig()
	}

	// Чтение .env
	err = godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}

	_ = v.BindEnv("ServiceHost", "SERVICE_HOST")
	_ = v.BindEnv("ServicePort", "SERVICE_PORT")
	_ = v.BindEnv("DatabaseURL", "DATABASE_URL")
	_ = v.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	_ = v.BindEnv("RedisPassword", "REDIS_PASSWORD")
	_ = v.BindEnv("RequestTimeout", "REQUEST_TIMEOUT")
	_ = v.BindEnv("CacheTTL", "CACHE_TTL")
	_ = v.BindEnv("LogLevel", "LOG_LEVEL")

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = dsn.FromEnv()
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database url is not configured: set DATABASE_URL")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}

	logrus.Info("config parsed")
	return cfg, nil
}
