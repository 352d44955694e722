package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
	Translator TranslatorConfig `mapstructure:"translator"`
	CaseLaw    CaseLawConfig    `mapstructure:"caselaw"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	AllowOrigin string `mapstructure:"allow_origin"`
}

type DatabaseConfig struct {
	// Driver is one of "postgres", "sqlite", "memory".
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	// Path is the SQLite database file.
	Path string `mapstructure:"path"`
}

type ProvidersConfig struct {
	// Order lists the answer sources to try, first to last. Recognized
	// names: gemini, openai, offline. The offline source is always
	// appended if missing so the chain stays total.
	Order  []string     `mapstructure:"order"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type TranslatorConfig struct {
	// Endpoint empty means translation is disabled (pass-through).
	Endpoint       string `mapstructure:"endpoint"`
	Enabled        bool   `mapstructure:"enabled"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type CaseLawConfig struct {
	// Endpoint empty disables precedent search.
	Endpoint        string `mapstructure:"endpoint"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheSize       int    `mapstructure:"cache_size"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
}

type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

func (c CaseLawConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	return DatabaseConfig{
		Driver:   "postgres",
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   strings.TrimPrefix(u.Path, "/"),
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allow_origin", "*")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "legalchat.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("providers.order", []string{"gemini", "openai", "offline"})
	v.SetDefault("providers.gemini.model", "gemini-2.0-flash")
	v.SetDefault("providers.gemini.timeout_seconds", 30)
	v.SetDefault("providers.openai.model", "gpt-4o-mini")
	v.SetDefault("providers.openai.max_tokens", 1024)
	v.SetDefault("providers.openai.temperature", 0.3)
	v.SetDefault("translator.enabled", true)
	v.SetDefault("translator.timeout_seconds", 10)
	v.SetDefault("caselaw.timeout_seconds", 10)
	v.SetDefault("caselaw.cache_size", 128)
	v.SetDefault("caselaw.cache_ttl_minutes", 10)
	v.SetDefault("auth.token_ttl_minutes", 60)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
		}
		config.Database = dbConfig
	}

	// Get other environment variables
	if apiKey := v.GetString("GEMINI_API_KEY"); apiKey != "" {
		config.Providers.Gemini.APIKey = apiKey
	}
	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.Providers.OpenAI.APIKey = apiKey
	}
	if secret := v.GetString("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if endpoint := v.GetString("TRANSLATE_ENDPOINT"); endpoint != "" {
		config.Translator.Endpoint = endpoint
	}
	if endpoint := v.GetString("CASELAW_ENDPOINT"); endpoint != "" {
		config.CaseLaw.Endpoint = endpoint
	}

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret (or JWT_SECRET) is required")
	}

	return &config, nil
}
