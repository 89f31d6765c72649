package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Matching   MatchingConfig   `mapstructure:"matching"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Log        LogConfig        `mapstructure:"log"`
}

type AppConfig struct {
	AppName     string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	HTTPPort    string `mapstructure:"http_port"`
}

type DatabaseConfig struct {
	DBHost     string `mapstructure:"host"`
	DBPort     string `mapstructure:"port"`
	DBName     string `mapstructure:"name"`
	DBUser     string `mapstructure:"user"`
	DBPassword string `mapstructure:"password"`
	DBSSLMode  string `mapstructure:"ssl_mode"`

	ConnectTimeout        time.Duration `mapstructure:"connect_timeout"`
	PoolMaxConns          int32         `mapstructure:"pool_max_conns"`
	PoolMinConns          int32         `mapstructure:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `mapstructure:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `mapstructure:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `mapstructure:"pool_health_check_period"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type JWTConfig struct {
	AccessSecret string `mapstructure:"access_secret"`
}

// EmbeddingConfig selects the embedding provider. An empty provider (or "none")
// disables embeddings and matching runs on the keyword heuristic only.
type EmbeddingConfig struct {
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type MatchingConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

type AssessmentConfig struct {
	VocabularyFile string `mapstructure:"vocabulary_file"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// envBindings maps config keys onto the environment variables that feed them.
var envBindings = map[string]string{
	"app.name":      "APP_NAME",
	"app.env":       "APP_ENV",
	"app.http_port": "HTTP_PORT",

	"database.host":                     "DB_HOST",
	"database.port":                     "DB_PORT",
	"database.name":                     "DB_NAME",
	"database.user":                     "DB_USER",
	"database.password":                 "DB_PASSWORD",
	"database.ssl_mode":                 "DB_SSL_MODE",
	"database.connect_timeout":          "DB_CONNECT_TIMEOUT",
	"database.pool_max_conns":           "DB_POOL_MAX_CONNS",
	"database.pool_min_conns":           "DB_POOL_MIN_CONNS",
	"database.pool_max_conn_lifetime":   "DB_POOL_MAX_CONN_LIFETIME",
	"database.pool_max_conn_idle_time":  "DB_POOL_MAX_CONN_IDLE_TIME",
	"database.pool_health_check_period": "DB_POOL_HEALTH_CHECK_PERIOD",

	"redis.enabled":  "REDIS_ENABLED",
	"redis.host":     "REDIS_HOST",
	"redis.port":     "REDIS_PORT",
	"redis.password": "REDIS_PASSWORD",
	"redis.ttl":      "REDIS_TTL",

	"jwt.access_secret": "JWT_ACCESS_SECRET",

	"embedding.provider": "EMBEDDING_PROVIDER",
	"embedding.api_key":  "EMBEDDING_API_KEY",
	"embedding.model":    "EMBEDDING_MODEL",
	"embedding.base_url": "EMBEDDING_BASE_URL",
	"embedding.timeout":  "EMBEDDING_TIMEOUT",

	"matching.concurrency": "MATCH_CONCURRENCY",

	"assessment.vocabulary_file": "ASSESSMENT_VOCABULARY_FILE",

	"log.json":  "LOG_JSON",
	"log.debug": "LOG_DEBUG",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "skillswap")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "skillswap")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.pool_max_conns", 10)
	v.SetDefault("database.pool_min_conns", 0)
	v.SetDefault("database.pool_max_conn_lifetime", time.Hour)
	v.SetDefault("database.pool_max_conn_idle_time", 30*time.Minute)
	v.SetDefault("database.pool_health_check_period", time.Minute)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.ttl", 10*time.Minute)

	v.SetDefault("jwt.access_secret", "")

	v.SetDefault("embedding.provider", "")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.model", "")
	v.SetDefault("embedding.base_url", "")
	v.SetDefault("embedding.timeout", 5*time.Second)

	v.SetDefault("matching.concurrency", 8)

	v.SetDefault("assessment.vocabulary_file", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// Load reads configuration from the environment and, when file is set, from a
// YAML/JSON/TOML config file. Environment variables win over the file.
func Load(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if file = strings.TrimSpace(file); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		secondsToDurationHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Embedding.Provider = strings.ToLower(strings.TrimSpace(cfg.Embedding.Provider))
	return cfg, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// secondsToDurationHook reads a bare integer (REDIS_TTL=600, or `ttl: 600` in a
// file) as whole seconds. Values with a unit ("10m") are left to the
// standard duration hook.
func secondsToDurationHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != durationType || from == durationType {
			return data, nil
		}

		switch from.Kind() {
		case reflect.String:
			n, err := strconv.ParseInt(strings.TrimSpace(data.(string)), 10, 64)
			if err != nil {
				return data, nil
			}
			return time.Duration(n) * time.Second, nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return time.Duration(reflect.ValueOf(data).Int()) * time.Second, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return time.Duration(reflect.ValueOf(data).Uint()) * time.Second, nil
		default:
			return data, nil
		}
	}
}

// ValidateServer reports every setting the HTTP server cannot start without.
func (c Config) ValidateServer() error {
	var missing []string
	req := func(env, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, env)
		}
	}

	req("APP_NAME", c.App.AppName)
	req("APP_ENV", c.App.Environment)
	req("HTTP_PORT", c.App.HTTPPort)
	req("DB_HOST", c.Database.DBHost)
	req("DB_NAME", c.Database.DBName)
	req("DB_USER", c.Database.DBUser)
	req("JWT_ACCESS_SECRET", c.JWT.AccessSecret)

	if c.Embedding.Provider != "" && c.Embedding.Provider != "none" {
		req("EMBEDDING_API_KEY", c.Embedding.APIKey)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) ValidateDatabase() error {
	var missing []string
	if strings.TrimSpace(c.Database.DBHost) == "" {
		missing = append(missing, "DB_HOST")
	}
	if strings.TrimSpace(c.Database.DBName) == "" {
		missing = append(missing, "DB_NAME")
	}
	if strings.TrimSpace(c.Database.DBUser) == "" {
		missing = append(missing, "DB_USER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return nil
}

func IsMissingRequired(err error) bool {
	return errors.Is(err, errMissingRequiredEnv)
}
