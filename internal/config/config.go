package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"salonbook/internal/domain"
)

const (
	defaultAppEnv         = "development"
	defaultDatabaseURL    = "salon.db"
	defaultLogLevel       = "warn"
	defaultLogOutput      = "stderr"
	defaultStopWord       = "stop"
	defaultClientStrategy = string(domain.ClientAlwaysNew)
	defaultDayOffPolicy   = string(domain.DayOffKeepBooked)
)

type Config struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogOutput      string `mapstructure:"LOG_OUTPUT"`
	StopWord       string `mapstructure:"STOP_WORD"`
	ClientStrategy string `mapstructure:"CLIENT_STRATEGY"`
	DayOffPolicy   string `mapstructure:"DAY_OFF_POLICY"`
}

// Load reads .env (if present), config.yaml (if present) and the environment, in increasing priority.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_OUTPUT", defaultLogOutput)
	v.SetDefault("STOP_WORD", defaultStopWord)
	v.SetDefault("CLIENT_STRATEGY", defaultClientStrategy)
	v.SetDefault("DAY_OFF_POLICY", defaultDayOffPolicy)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.StopWord = strings.TrimSpace(cfg.StopWord)
	cfg.ClientStrategy = strings.ToLower(strings.TrimSpace(cfg.ClientStrategy))
	cfg.DayOffPolicy = strings.ToLower(strings.TrimSpace(cfg.DayOffPolicy))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.StopWord == "" {
		return fmt.Errorf("STOP_WORD must not be empty")
	}
	if _, err := domain.ParseClientStrategy(cfg.ClientStrategy); err != nil {
		return fmt.Errorf("CLIENT_STRATEGY must be one of: always-new, reuse-by-phone: %w", err)
	}
	if _, err := domain.ParseDayOffPolicy(cfg.DayOffPolicy); err != nil {
		return fmt.Errorf("DAY_OFF_POLICY must be one of: keep-booked, overwrite, reject: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// Strategy returns the validated client strategy.
func (c *Config) Strategy() domain.ClientStrategy {
	s, _ := domain.ParseClientStrategy(c.ClientStrategy)
	return s
}

// Policy returns the validated day-off policy.
func (c *Config) Policy() domain.DayOffPolicy {
	p, _ := domain.ParseDayOffPolicy(c.DayOffPolicy)
	return p
}
