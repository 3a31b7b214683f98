// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AppConfig struct {
	PracticeLimit int    `mapstructure:"practice_limit"` // 0 は上限なし
	Timezone      string `mapstructure:"timezone"`       // 「今日」を決めるタイムゾーン
}

type ForecastConfig struct {
	DefaultDays int `mapstructure:"default_days"`
	MaxDays     int `mapstructure:"max_days"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppConfig      `mapstructure:"app"`
	Forecast ForecastConfig `mapstructure:"forecast"`
}

var Cfg Config

func LoadConfig(path string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_DATABASE_URL, APP_FORECAST_MAX_DAYS
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv は Unmarshal 時に未知のキーを拾わないため、明示的に紐付ける
	for _, key := range []string{
		"database.url", "server.port", "log.level", "log.format",
		"app.practice_limit", "app.timezone",
		"forecast.default_days", "forecast.max_days",
	} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Warn("Config file not found. Using default settings or environment variables if available.")
		} else {
			slog.Error("Error reading config file", slog.Any("error", err))
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("Error unmarshalling config", slog.Any("error", err))
		return err
	}
	if err := applyDefaults(&cfg); err != nil {
		return err
	}
	Cfg = cfg

	slog.Info("Config loaded successfully",
		slog.String("server_port", Cfg.Server.Port),
		slog.Int("practice_limit", Cfg.App.PracticeLimit),
		slog.String("timezone", Cfg.App.Timezone),
		slog.Int("forecast_default_days", Cfg.Forecast.DefaultDays),
		slog.Int("forecast_max_days", Cfg.Forecast.MaxDays),
	)
	return nil
}

// applyDefaults は未設定の項目にデフォルト値を入れ、矛盾する設定をエラーにします。
func applyDefaults(cfg *Config) error {
	if cfg.Server.Port == "" {
		slog.Info("Server port not set, using default", slog.String("port", DefaultServerPort))
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.App.PracticeLimit < 0 {
		slog.Warn("App practice limit is negative, using default (unlimited)")
		cfg.App.PracticeLimit = DefaultPracticeLimit
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		slog.Error("Invalid app timezone", slog.String("timezone", cfg.App.Timezone), slog.Any("error", err))
		return err
	}
	if cfg.Forecast.DefaultDays <= 0 {
		slog.Info("Forecast default days not set, using default", slog.Int("days", DefaultForecastDays))
		cfg.Forecast.DefaultDays = DefaultForecastDays
	}
	if cfg.Forecast.MaxDays <= 0 {
		cfg.Forecast.MaxDays = DefaultForecastMaxDays
	}
	if cfg.Forecast.DefaultDays > cfg.Forecast.MaxDays {
		slog.Warn("Forecast default days exceeds max days, clamping",
			slog.Int("default_days", cfg.Forecast.DefaultDays), slog.Int("max_days", cfg.Forecast.MaxDays))
		cfg.Forecast.DefaultDays = cfg.Forecast.MaxDays
	}
	if cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config.")
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "X-Tenant-ID"}
	}
	return nil
}

// Location は App.Timezone を読み込みます。不正な値は LoadConfig で弾かれている前提です。
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
