package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Load reads a YAML configuration file over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenLog redirects LogFile to LogPath, appending. The returned close
// function is a no-op when no path is set.
func (c *Config) OpenLog() (func() error, error) {
	if c.LogPath == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	c.LogFile = f
	return f.Close, nil
}

// invalid reports a bad value for a configuration key.
func invalid(key string, value interface{}) error {
	return errors.Wrapf(errors.ErrInvalidConfig, "%s: bad value %v", key, value)
}
