// Package config manages the application configuration stored as JSON
// under the user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/parley-sh/parley/internal/errors"
)

// Config holds the application configuration
type Config struct {
	ServerURL            string `json:"server_url,omitempty"`            // Websocket backend, e.g. "wss://host/feed" (empty = loopback mode)
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notifications on incoming assistant entries
	TranscriptPath       string `json:"transcript_path,omitempty"`       // Default JSONL transcript to open when no server is configured

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".parley"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ServerURL != "" {
		u, err := url.Parse(c.ServerURL)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("invalid server_url: %v", err))
		}
		if u.Scheme != "ws" && u.Scheme != "wss" {
			return errors.ConfigInvalid(fmt.Sprintf("server_url must use ws:// or wss://, got %q", u.Scheme))
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetServerURL returns the configured backend URL (empty for loopback mode)
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ServerURL
}

// SetServerURL sets the backend URL
func (c *Config) SetServerURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = url
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

// GetTranscriptPath returns the default transcript file path
func (c *Config) GetTranscriptPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TranscriptPath
}

// SetTranscriptPath sets the default transcript file path
func (c *Config) SetTranscriptPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TranscriptPath = path
}
