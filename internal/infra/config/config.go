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

// Source kinds understood by FAQConfig.Source.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	FAQ      FAQConfig      `yaml:"faq"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	MaxBodyBytes   int64           `yaml:"maxBodyBytes"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// FAQConfig controls where the knowledge base comes from and how replies read.
type FAQConfig struct {
	Source             string            `yaml:"source"`
	DataPath           string            `yaml:"dataPath"`
	TopRecommendations int               `yaml:"topRecommendations"`
	MaxQueryLength     int               `yaml:"maxQueryLength"`
	Messages           MessagesConfig    `yaml:"messages"`
	CategoryNames      map[string]string `yaml:"categoryNames"`
	Redis              RedisConfig       `yaml:"redis"`
	Postgres           PostgresConfig    `yaml:"postgres"`
}

// MessagesConfig overrides the fixed reply texts. Empty values keep the defaults.
type MessagesConfig struct {
	NotFound         string `yaml:"notFound"`
	PartialSuffix    string `yaml:"partialSuffix"`
	WeakSuffix       string `yaml:"weakSuffix"`
	CategoriesHeader string `yaml:"categoriesHeader"`
}

// RedisConfig contains connection information for the statistics store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Table    string `yaml:"table"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// TerminalConfig controls the interactive chat host.
type TerminalConfig struct {
	Theme     string `yaml:"theme"`
	Color     string `yaml:"color"`
	UserLabel string `yaml:"userLabel"`
	BotLabel  string `yaml:"botLabel"`
}

// Load reads configuration from a YAML file, an optional .env file and
// environment variables, in that order of precedence (last wins).
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// loadDotEnv fills unset environment variables from ENV_FILE or ./.env.
// Variables already present in the environment are never overwritten.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_MAX_BODY_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.HTTP.MaxBodyBytes = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FAQ_SOURCE"); v != "" {
		cfg.FAQ.Source = strings.ToLower(v)
	}
	if v := os.Getenv("FAQ_DATA_PATH"); v != "" {
		cfg.FAQ.DataPath = v
	}
	if v := os.Getenv("FAQ_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("FAQ_MAX_QUERY_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.MaxQueryLength = parsed
		}
	}
	if v := os.Getenv("FAQ_NOT_FOUND_MESSAGE"); v != "" {
		cfg.FAQ.Messages.NotFound = v
	}
	if v := os.Getenv("FAQ_REDIS_ENABLED"); v != "" {
		cfg.FAQ.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("FAQ_REDIS_ADDR"); v != "" {
		cfg.FAQ.Redis.Addr = v
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.FAQ.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_TABLE"); v != "" {
		cfg.FAQ.Postgres.Table = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("TERMINAL_THEME"); v != "" {
		cfg.Terminal.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("TERMINAL_COLOR"); v != "" {
		cfg.Terminal.Color = strings.ToLower(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			MaxBodyBytes: 16 << 10,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		FAQ: FAQConfig{
			Source:             SourceFile,
			DataPath:           "faq.json",
			TopRecommendations: 10,
			MaxQueryLength:     500,
			Redis: RedisConfig{
				Prefix: "faq",
			},
			Postgres: PostgresConfig{
				Table:    "faq_entries",
				MaxConns: 4,
			},
		},
		Terminal: TerminalConfig{
			Theme:     "dark",
			Color:     "auto",
			UserLabel: "You",
			BotLabel:  "Bot",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		return errors.New("http.maxBodyBytes must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	switch c.FAQ.Source {
	case SourceFile:
		if strings.TrimSpace(c.FAQ.DataPath) == "" {
			return errors.New("faq.dataPath cannot be empty when faq.source is file")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.FAQ.Postgres.DSN) == "" {
			return errors.New("faq.postgres.dsn cannot be empty when faq.source is postgres")
		}
		if !validIdentifier(c.FAQ.Postgres.Table) {
			return fmt.Errorf("faq.postgres.table %q is not a valid identifier", c.FAQ.Postgres.Table)
		}
	default:
		return fmt.Errorf("faq.source must be %q or %q, got %q", SourceFile, SourcePostgres, c.FAQ.Source)
	}
	if c.FAQ.TopRecommendations < 0 {
		return errors.New("faq.topRecommendations cannot be negative")
	}
	if c.FAQ.MaxQueryLength <= 0 {
		return errors.New("faq.maxQueryLength must be positive")
	}
	if c.FAQ.Redis.Enabled && strings.TrimSpace(c.FAQ.Redis.Addr) == "" {
		return errors.New("faq.redis.addr cannot be empty when redis store is enabled")
	}
	switch c.Terminal.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("terminal.theme must be dark or light, got %q", c.Terminal.Theme)
	}
	switch c.Terminal.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("terminal.color must be auto, always or never, got %q", c.Terminal.Color)
	}
	return nil
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
