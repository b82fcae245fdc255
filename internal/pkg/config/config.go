package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timeouts, bounds, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Purchase PurchaseConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret        string        `envconfig:"JWT_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"JWT_TOKEN_DURATION" default:"24h"`
}

type StorageConfig struct {
	DataDir  string `envconfig:"DATA_DIR" default:"data"`
	StockDir string `envconfig:"STOCK_DIR" default:"stock"`
	LogsDir  string `envconfig:"LOGS_DIR" default:"data/logs"`
}

// PurchaseConfig bounds a single purchase. MaxQuantity is the anti-abuse
// ceiling per request; LockWait bounds how long a purchase waits for the
// account/bucket locks before reporting "try again".
type PurchaseConfig struct {
	MaxQuantity int           `envconfig:"PURCHASE_MAX_QUANTITY" default:"10"`
	QuoteTTL    time.Duration `envconfig:"PURCHASE_QUOTE_TTL" default:"2m"`
	LockWait    time.Duration `envconfig:"PURCHASE_LOCK_WAIT" default:"2s"`
}

type NotifyConfig struct {
	WebhookURL string        `envconfig:"NOTIFY_WEBHOOK_URL" default:""`
	Timeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		JWT: JWTConfig{
			Secret:        "test-secret",
			TokenDuration: time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Purchase: PurchaseConfig{
			MaxQuantity: 10,
			QuoteTTL:    2 * time.Minute,
			LockWait:    time.Second,
		},
	}
}
