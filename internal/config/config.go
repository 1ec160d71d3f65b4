package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Generator   GeneratorConfig
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port              string        `env:"SERVER_PORT" envDefault:"8000"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"SERVER_READ_HEADER_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes      int64         `env:"SERVER_MAX_BODY_BYTES" envDefault:"104857600"`
	AllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type LogConfig struct {
	AppEnv string `env:"APP_ENV" envDefault:"production"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
}

type GeneratorConfig struct {
	Provider string `env:"GENERATOR_PROVIDER" envDefault:"gemini"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate does not require credentials: a missing key is reported per request.
func (c *Config) Validate() error {
	switch c.Generator.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown GENERATOR_PROVIDER %q: use %q or %q", c.Generator.Provider, ProviderGemini, ProviderOpenAI)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("SERVER_MAX_BODY_BYTES must be positive")
	}
	return nil
}

// APIKey returns the credential of the active provider.
func (c *Config) APIKey() string {
	if c.Generator.Provider == ProviderOpenAI {
		return c.OpenAI.APIKey
	}
	return c.Gemini.APIKey
}

// APIKeyEnv names the environment variable that holds the active credential.
func (c *Config) APIKeyEnv() string {
	if c.Generator.Provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}

func (c *Config) Model() string {
	if c.Generator.Provider == ProviderOpenAI {
		return c.OpenAI.Model
	}
	return c.Gemini.Model
}
