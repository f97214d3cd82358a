package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server    ServerConfig
	App       AppConfig
	Search    SearchConfig
	Fees      FeesConfig
	Cache     CacheConfig
	HistoryDB HistoryDBConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"arbitraje-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// SearchConfig holds the knobs of the search orchestrator and matcher.
type SearchConfig struct {
	AdapterTimeout      time.Duration `envconfig:"SEARCH_ADAPTER_TIMEOUT" default:"12s"`
	DefaultMaxResults   int           `envconfig:"SEARCH_DEFAULT_MAX_RESULTS" default:"20"`
	MaxResultsCap       int           `envconfig:"SEARCH_MAX_RESULTS_CAP" default:"50"`
	SimilarityThreshold float64       `envconfig:"SEARCH_SIMILARITY_THRESHOLD" default:"0.5"`
	MinPriceRatio       float64       `envconfig:"SEARCH_MIN_PRICE_RATIO" default:"1.2"`
	EbayAppID           string        `envconfig:"EBAY_APP_ID" default:""`
}

// FeesConfig holds the marketplace-wide cost parameters. Per-platform
// commission and shipping values live in the engine's fee table.
type FeesConfig struct {
	TaxRate       float64 `envconfig:"FEES_TAX_RATE" default:"0.19"`
	PaymentPct    float64 `envconfig:"FEES_PAYMENT_PCT" default:"0.03"`
	PackagingCost float64 `envconfig:"FEES_PACKAGING_COST" default:"2.0"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	Type string        `envconfig:"CACHE_TYPE" default:"memory"` // memory or redis
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// HistoryDBConfig holds search-history database settings.
type HistoryDBConfig struct {
	Type string `envconfig:"HISTORY_DB_TYPE" default:"sqlite"` // sqlite, mysql or none
	Path string `envconfig:"HISTORY_DB_PATH" default:"./data/history.db"`
	// MySQL settings
	Host     string `envconfig:"HISTORY_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"HISTORY_DB_PORT" default:"3306"`
	Name     string `envconfig:"HISTORY_DB_NAME" default:"arbitraje"`
	User     string `envconfig:"HISTORY_DB_USER" default:"root"`
	Password string `envconfig:"HISTORY_DB_PASS" default:""`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (c *CacheConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// MySQLDSN returns the MySQL data source name.
func (h *HistoryDBConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		h.User, h.Password, h.Host, h.Port, h.Name)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
