package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Env         string `mapstructure:"env"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`

	// JWTSecret enables local access token verification; empty asks Supabase Auth per request
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LoggingConfig selects the log level and output format
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LLMConfig configures the free-text wellness advisor. An empty APIKey
// disables the model and the static fallback text is served instead.
type LLMConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// AnalysisConfig configures how much history feeds the analytics engine
type AnalysisConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load reads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	// A missing .env file is normal outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("MENTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by the Supabase tooling and hosting platforms
	_ = v.BindEnv("server.port", "MENTOR_SERVER_PORT", "PORT")
	_ = v.BindEnv("supabase.url", "MENTOR_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "MENTOR_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_KEY")
	_ = v.BindEnv("supabase.jwt_secret", "MENTOR_SUPABASE_JWT_SECRET", "SUPABASE_JWT_SECRET")
	_ = v.BindEnv("llm.api_key", "MENTOR_LLM_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("server.cors_origins", "MENTOR_SERVER_CORS_ORIGINS", "CORS_ALLOWED_ORIGINS")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", "")
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.service_key", "")
	v.SetDefault("supabase.jwt_secret", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-3.5-turbo")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("analysis.history_limit", 10)
}

// Validate checks the values the HTTP server cannot run without
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.Analysis.HistoryLimit < 1 {
		return fmt.Errorf("analysis.history_limit must be at least 1, got %d", c.Analysis.HistoryLimit)
	}
	return nil
}
