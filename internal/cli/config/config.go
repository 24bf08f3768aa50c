package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultURL = "http://localhost:8080"

	// EnvPath overrides the session file location, e.g. for a second gym account.
	EnvPath = "GYMCTL_CONFIG"

	roleAdmin = "admin"
)

// Config is the gymctl session file. Session fields are empty while signed out.
type Config struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
	UserID    string `json:"user_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "gymctl", "config.json"), nil
}

// Load returns the stored session. No file, or no resolvable config dir, means signed out.
func Load() (*Config, error) {
	cfg := &Config{}
	p, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(p)
		switch {
		case errors.Is(readErr, os.ErrNotExist):
		case readErr != nil:
			return nil, readErr
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", p, err)
			}
		}
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultURL
	}
	return cfg, nil
}

// Save replaces the session file atomically so a crash never leaves half a token on disk.
func Save(cfg *Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".config-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (c *Config) SignIn(token, userID, email, role string) {
	c.Token, c.UserID, c.Email, c.Role = token, userID, email, role
}

// SignOut drops the session but keeps the server the user pointed gymctl at.
func (c *Config) SignOut() {
	c.SignIn("", "", "", "")
}

func (c *Config) HasToken() bool {
	return c.Token != ""
}

func (c *Config) IsAdmin() bool {
	return c.Role == roleAdmin
}
