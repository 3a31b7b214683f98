// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-srs"
	AppVersion = "0.1.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultPracticeLimit   = 0
	DefaultTimezone        = "UTC"
	DefaultForecastDays    = 60
	DefaultForecastMaxDays = 365
)
