package config

import "runtime"

// WorkerConfig holds settings for the parallel validation pool.
type WorkerConfig struct {
	// Workers is the number of goroutines (0 = one per CPU)
	Workers int `yaml:"workers"`

	// BufferSize is the capacity of the work and result channels (0 = 2x workers)
	BufferSize int `yaml:"buffer_size"`
}

// NewWorkerConfig creates a WorkerConfig with default values.
func NewWorkerConfig() *WorkerConfig {
	return &WorkerConfig{}
}

// NumWorkers resolves the worker count.
func (w WorkerConfig) NumWorkers() int {
	if w.Workers <= 0 {
		return runtime.NumCPU()
	}
	return w.Workers
}

// Buffer resolves the channel capacity for n workers.
func (w WorkerConfig) Buffer(n int) int {
	if w.BufferSize <= 0 {
		return n * 2
	}
	return w.BufferSize
}

// Validate returns an error if the worker settings are inconsistent.
func (w WorkerConfig) Validate() error {
	if w.Workers < 0 {
		return invalid("workers", w.Workers)
	}
	if w.BufferSize < 0 {
		return invalid("buffer_size", w.BufferSize)
	}
	return nil
}
