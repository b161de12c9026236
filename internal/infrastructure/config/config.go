package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Cache       CacheConfig     `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Export      ExportConfig    `mapstructure:"export"`
	DedupWindow time.Duration   `mapstructure:"dedup_window"`
	LogLevel    string          `mapstructure:"log_level"`
}

// AppConfig holds application metadata.
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// CacheConfig holds recipe-search cache settings. Backend selects between the
// in-memory store and Redis.
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Redis           RedisConfig   `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds rate limiting settings.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// ExportConfig holds settings for forwarding consolidated lists to the
// external shopping-list persistence service.
type ExportConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Retries  int           `mapstructure:"retries"`
}

// LoadConfig loads the configuration from defaults, .env and environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional outside development
		_ = err
	}

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.backend", "CACHE_BACKEND")
	viper.BindEnv("cache.redis.addr", "REDIS_ADDR")
	viper.BindEnv("cache.redis.password", "REDIS_PASSWORD")
	viper.BindEnv("cache.redis.db", "REDIS_DB")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("export.enabled", "EXPORT_ENABLED")
	viper.BindEnv("export.endpoint", "EXPORT_ENDPOINT")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// application
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "smart-shopping")

	// server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// cache
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "30m")
	viper.SetDefault("cache.cleanup_interval", "10m")
	viper.SetDefault("cache.redis.addr", "localhost:6379")
	viper.SetDefault("cache.redis.password", "")
	viper.SetDefault("cache.redis.db", 0)

	// rate limiting
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// export
	viper.SetDefault("export.enabled", false)
	viper.SetDefault("export.endpoint", "")
	viper.SetDefault("export.timeout", "10s")
	viper.SetDefault("export.retries", 2)

	viper.SetDefault("dedup_window", "1s")
}

func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Cache.Enabled {
		switch config.Cache.Backend {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid cache backend %q", config.Cache.Backend)
		}
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
		if config.Cache.Backend == "redis" && config.Cache.Redis.Addr == "" {
			return fmt.Errorf("redis addr is required for the redis cache backend")
		}
	}

	if config.Export.Enabled && config.Export.Endpoint == "" {
		return fmt.Errorf("export endpoint is required when export is enabled")
	}

	return nil
}
