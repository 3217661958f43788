package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App            AppConfig
	Log            LogConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
	RateLimit      RateLimitConfig
	Scheduler      SchedulerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	RunMigrations bool
	MigrationsDir string
	RunSeeders    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// RateLimitConfig caps API requests per client IP. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// SchedulerConfig holds cron specs for background jobs. An empty spec
// disables the job.
type SchedulerConfig struct {
	PoolStatsSpec string
}

// RecommendationConfig tunes how recommendations are computed, not what they
// are: scoring weights are fixed in the matching package.
type RecommendationConfig struct {
	Concurrency  int           `yaml:"concurrency"`
	DefaultLimit int           `yaml:"default_limit"`
	MaxLimit     int           `yaml:"max_limit"`
	LikeCountTTL time.Duration `yaml:"like_count_ttl"`
}

func DefaultRecommendationConfig() RecommendationConfig {
	return RecommendationConfig{
		Concurrency:  8,
		DefaultLimit: 10,
		MaxLimit:     100,
		LikeCountTTL: 30 * time.Second,
	}
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

type overlayFile struct {
	Recommendation *RecommendationConfig `yaml:"recommendation"`
}

func Load() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDur := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		raw := opt(key)
		if raw == "" {
			return false
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Log = LogConfig{Level: opt("LOG_LEVEL")}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDur("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDur("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDur("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDur("DB_POOL_HEALTH_CHECK_PERIOD", 0),

		RunMigrations: optBool("RUN_MIGRATIONS"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		RunSeeders:    optBool("RUN_SEEDERS"),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	cfg.RateLimit = RateLimitConfig{
		RPS:   optFloat("RATE_LIMIT_RPS", 0),
		Burst: optInt("RATE_LIMIT_BURST", 20),
	}

	cfg.Scheduler = SchedulerConfig{PoolStatsSpec: "@every 1m"}
	if v, ok := os.LookupEnv("POOL_STATS_SCHEDULE"); ok {
		cfg.Scheduler.PoolStatsSpec = strings.TrimSpace(v)
	}

	cfg.Recommendation = DefaultRecommendationConfig()
	cfg.Recommendation.Concurrency = optInt("RECOMMENDATION_CONCURRENCY", cfg.Recommendation.Concurrency)

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	if path := opt("CONFIG_FILE"); path != "" {
		if err := applyOverlay(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Recommendation.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst < 1 {
		return Config{}, fmt.Errorf("%w: RATE_LIMIT_BURST must be >= 1", errInvalidEnv)
	}

	return cfg, nil
}

func applyOverlay(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return mergeOverlay(cfg, b)
}

// mergeOverlay applies non-zero fields from a YAML document on top of cfg.
func mergeOverlay(cfg *Config, b []byte) error {
	var f overlayFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if f.Recommendation == nil {
		return nil
	}
	o := f.Recommendation
	if o.Concurrency != 0 {
		cfg.Recommendation.Concurrency = o.Concurrency
	}
	if o.DefaultLimit != 0 {
		cfg.Recommendation.DefaultLimit = o.DefaultLimit
	}
	if o.MaxLimit != 0 {
		cfg.Recommendation.MaxLimit = o.MaxLimit
	}
	if o.LikeCountTTL != 0 {
		cfg.Recommendation.LikeCountTTL = o.LikeCountTTL
	}
	return nil
}

func (r RecommendationConfig) Validate() error {
	switch {
	case r.Concurrency < 1:
		return fmt.Errorf("%w: recommendation concurrency must be >= 1", errInvalidEnv)
	case r.DefaultLimit < 1:
		return fmt.Errorf("%w: recommendation default limit must be >= 1", errInvalidEnv)
	case r.MaxLimit < r.DefaultLimit:
		return fmt.Errorf("%w: recommendation max limit must be >= default limit", errInvalidEnv)
	case r.LikeCountTTL < 0:
		return fmt.Errorf("%w: like count ttl must not be negative", errInvalidEnv)
	}
	return nil
}
