package config

import (
	"errors"
	"time"

	"lockbench/internal/latencyfloor"
)

type Config struct {
	MutexDuration     time.Duration
	SemaphoreDuration time.Duration
	SampleDelay       time.Duration
	YieldDelay        time.Duration
	Capacity          int
	SemaphoreCount    int64
	LatencyFloorPath  string
	LatencyTarget     int32
	MutexCSV          string
	SemaphoreCSV      string
	LogLevel          string
}

// Default returns the fixed measurement plan. None of these values are
// exposed as flags or environment variables.
func Default() Config {
	return Config{
		MutexDuration:     60 * time.Second,
		SemaphoreDuration: 60 * time.Second,
		SampleDelay:       10 * time.Millisecond,
		YieldDelay:        time.Microsecond,
		Capacity:          7000,
		SemaphoreCount:    1,
		LatencyFloorPath:  latencyfloor.DefaultPath,
		LatencyTarget:     0,
		MutexCSV:          "mutex_ns.csv",
		SemaphoreCSV:      "sem_ns.csv",
		LogLevel:          "info",
	}
}

var (
	ErrNoDuration = errors.New("config: measurement duration must be positive")
	ErrNoCapacity = errors.New("config: sample capacity must be positive")
	ErrNoCSVPath  = errors.New("config: csv path must not be empty")
)

// Validate reports the first setting that would make a run meaningless.
func (c Config) Validate() error {
	if c.MutexDuration <= 0 || c.SemaphoreDuration <= 0 {
		return ErrNoDuration
	}
	if c.Capacity <= 0 {
		return ErrNoCapacity
	}
	if c.MutexCSV == "" || c.SemaphoreCSV == "" {
		return ErrNoCSVPath
	}
	return nil
}
