// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config represents the ding configuration. Every section is optional;
// a nil section disables the corresponding feature.
type Config struct {
	Pushover *PushoverConfig `yaml:"pushover,omitempty" toml:"pushover,omitempty"`
	Webhook  *WebhookConfig  `yaml:"webhook,omitempty" toml:"webhook,omitempty"`
	Sound    *SoundConfig    `yaml:"sound,omitempty" toml:"sound,omitempty"`
	Desktop  *DesktopConfig  `yaml:"desktop,omitempty" toml:"desktop,omitempty"`
}

// PushoverConfig holds Pushover API credentials.
type PushoverConfig struct {
	APIToken string `yaml:"api_token" toml:"api_token"`
	UserKey  string `yaml:"user_key" toml:"user_key"`
	Device   string `yaml:"device,omitempty" toml:"device,omitempty"`
}

// WebhookConfig holds generic HTTP webhook settings.
type WebhookConfig struct {
	URL     string            `yaml:"url" toml:"url"`
	Method  string            `yaml:"method,omitempty" toml:"method,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" toml:"headers,omitempty"`
}

// SoundConfig selects a notification sound. URL takes priority over
// File when both are set.
type SoundConfig struct {
	File string `yaml:"file,omitempty" toml:"file,omitempty"`
	URL  string `yaml:"url,omitempty" toml:"url,omitempty"`
}

// DesktopConfig enables desktop notifications over D-Bus. The section's
// presence turns the feature on.
type DesktopConfig struct {
	AppName string `yaml:"app_name,omitempty" toml:"app_name,omitempty"`
}

// ConfigPath returns the default config file path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ding", "config.yaml")
}

// Load reads configuration from path. An empty path means the default
// location, where a missing file yields an empty config; an explicitly
// requested file must exist. Files ending in .toml are parsed as TOML,
// everything else as YAML. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = ConfigPath()
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file at the default location, start empty.
	default:
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv overlays DING_* environment variables onto cfg, creating
// sections as needed. A .env file in the working directory is honored,
// but real environment variables win over its values.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("DING_PUSHOVER_TOKEN"); v != "" {
		if cfg.Pushover == nil {
			cfg.Pushover = &PushoverConfig{}
		}
		cfg.Pushover.APIToken = v
	}
	if v := os.Getenv("DING_PUSHOVER_USER"); v != "" {
		if cfg.Pushover == nil {
			cfg.Pushover = &PushoverConfig{}
		}
		cfg.Pushover.UserKey = v
	}
	if v := os.Getenv("DING_PUSHOVER_DEVICE"); v != "" && cfg.Pushover != nil {
		cfg.Pushover.Device = v
	}
	if v := os.Getenv("DING_WEBHOOK_URL"); v != "" {
		if cfg.Webhook == nil {
			cfg.Webhook = &WebhookConfig{}
		}
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("DING_WEBHOOK_METHOD"); v != "" && cfg.Webhook != nil {
		cfg.Webhook.Method = v
	}
	if v := os.Getenv("DING_SOUND_FILE"); v != "" {
		if cfg.Sound == nil {
			cfg.Sound = &SoundConfig{}
		}
		cfg.Sound.File = v
	}
	if v := os.Getenv("DING_SOUND_URL"); v != "" {
		if cfg.Sound == nil {
			cfg.Sound = &SoundConfig{}
		}
		cfg.Sound.URL = v
	}
}
