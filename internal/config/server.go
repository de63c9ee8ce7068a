package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig configures `ragchat serve`. Values are layered: defaults, then
// the optional YAML file, then .env, then the process environment.
type ServerConfig struct {
	Port           int           `yaml:"port" env:"PORT"`
	DatabaseURL    string        `yaml:"database_url" env:"DATABASE_URL"`
	WebhookURL     string        `yaml:"rag_webhook_url" env:"RAG_WEBHOOK_URL"`
	WebhookTimeout time.Duration `yaml:"webhook_timeout" env:"WEBHOOK_TIMEOUT"`
	AllowIPAuth    bool          `yaml:"allow_ip_auth" env:"ALLOW_IP_AUTH"`
	UserHeader     string        `yaml:"user_header" env:"USER_HEADER"`
	CORSOrigins    []string      `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	Debug          bool          `yaml:"debug" env:"DEBUG"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:           2003,
		DatabaseURL:    "ragchat.db",
		WebhookTimeout: 120 * time.Second,
		AllowIPAuth:    true,
		UserHeader:     "X-User-ID",
		CORSOrigins:    []string{"*"},
	}
}

// LoadServer builds the server configuration. yamlPath may be empty.
func LoadServer(yamlPath string) (ServerConfig, error) {
	cfg := defaultServerConfig()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ServerConfig{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return ServerConfig{}, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

func (c ServerConfig) Validate() error {
	if c.WebhookURL == "" {
		return fmt.Errorf("RAG_WEBHOOK_URL is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if c.UserHeader == "" && !c.AllowIPAuth {
		return fmt.Errorf("no identity source: set USER_HEADER or ALLOW_IP_AUTH")
	}
	return nil
}

// Addr is the listen address for http.Server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
