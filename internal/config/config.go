// Package config provides configuration for chess-rules.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration.
//
// Sub-configs are inlined so the YAML file stays flat.
type Config struct {
	Verbosity int    `yaml:"verbosity"` // 0=nothing, 1=summaries, 2=running commentary
	LogPath   string `yaml:"log_file"`

	Worker  WorkerConfig  `yaml:",inline"`
	Session SessionConfig `yaml:",inline"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Worker:     *NewWorkerConfig(),
		Session:    *NewSessionConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return invalid("verbosity", c.Verbosity)
	}
	if err := c.Worker.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}
