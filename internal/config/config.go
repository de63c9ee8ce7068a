package config

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	perrors "github.com/zhubert/ragchat/internal/errors"
)

const (
	DefaultServerURL      = "http://localhost:2003"
	DefaultTimeoutSeconds = 60
)

// Config holds the chat client configuration
type Config struct {
	ServerURL            string `json:"server_url"`
	UserID               string `json:"user_id,omitempty"`               // Sent as the identity header; empty means guest
	TimeoutSeconds       int    `json:"timeout_seconds,omitempty"`       // Per-request timeout for the collaborator API
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification for replies in background tabs

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ragchat"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.ragchat/config.json, or returns defaults if
// the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.ragchat", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults bound to
// that path so Save creates it.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	}

	cfg.ensureInitialized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills zero values with defaults. Only called from
// LoadFrom before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return perrors.ConfigInvalid("server_url must be an absolute http(s) URL, got " + c.ServerURL)
	}
	if c.TimeoutSeconds < 0 {
		return perrors.ConfigInvalid("timeout_seconds must not be negative")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetServerURL returns the collaborator base URL
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ServerURL
}

// SetServerURL overrides the collaborator base URL (e.g. from --server)
func (c *Config) SetServerURL(u string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = u
}

func (c *Config) GetUserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserID
}

// GetTimeout returns the per-request timeout
func (c *Config) GetTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
