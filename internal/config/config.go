// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const envPrefix = "STEPS_"

type Config struct {
	Addr         string
	DataDir      string // optional; embedded corpora are used for missing files
	LogLevel     string
	LogFormat    string
	Seed         int64 // 0 means seed from the clock
	SolveTimeout time.Duration
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		LogFormat:    "console",
		SolveTimeout: 5 * time.Second,
	}
}

// Load starts from Default and applies STEPS_* variables.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("DATA_DIR", &c.DataDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	if v, ok := lookup(envPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(envPrefix + "SOLVE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("%sSOLVE_TIMEOUT: %w", envPrefix, err)
		}
		c.SolveTimeout = d
	}
	return c, nil
}

// SeedOrClock returns Seed, or the current time when it is unset.
func (c Config) SeedOrClock() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
