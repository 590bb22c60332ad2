// Package config loads and validates the legalmind client configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LEGALMIND_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LEGALMIND_SERVICE_URL -> service_url, etc.
	if err := k.Load(env.Provider("LEGALMIND_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LEGALMIND_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		return fmt.Errorf("service_url is required")
	}
	u, err := url.Parse(c.ServiceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid service_url %q: must be an absolute http(s) URL", c.ServiceURL)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	valid := false
	for _, m := range legalmind.AllowedModels {
		if c.Model == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid model %q: must be one of %s",
			c.Model, strings.Join(legalmind.AllowedModels, ", "))
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}

	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must be non-negative")
	}

	return nil
}
