package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithWorkers sets the pool size and channel capacity.
func (b *ConfigBuilder) WithWorkers(workers, buffer int) *ConfigBuilder {
	b.cfg.Worker.Workers = workers
	b.cfg.Worker.BufferSize = buffer
	return b
}

// WithDefaultPromotion sets the piece a pawn becomes without a suffix.
func (b *ConfigBuilder) WithDefaultPromotion(letter string) *ConfigBuilder {
	b.cfg.Session.DefaultPromotion = letter
	return b
}

// WithHistoryLimit caps the moves per hosted game.
func (b *ConfigBuilder) WithHistoryLimit(limit int) *ConfigBuilder {
	b.cfg.Session.HistoryLimit = limit
	return b
}
