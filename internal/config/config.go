// SPDX-License-Identifier: MIT

// Package config loads the vqsd command configuration from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/qlath/vqsd"
)

// Config holds the command configuration.
type Config struct {
	Iterations   int
	LearningRate float64
	Seed         int64
	ReportEvery  int
	ReportPath   string // msgpack report destination; empty disables it
	LogLevel     string
	LogPretty    bool
}

// Load reads configuration from environment variables, after loading the
// given .env files (".env" when none are named) if they exist.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Iterations:   getEnvAsInt("VQSD_ITERATIONS", vqsd.DefaultIterations),
		LearningRate: getEnvAsFloat("VQSD_LEARNING_RATE", vqsd.DefaultLearningRate),
		Seed:         getEnvAsInt64("VQSD_SEED", vqsd.DefaultSeed),
		ReportEvery:  getEnvAsInt("VQSD_REPORT_EVERY", vqsd.DefaultReportEvery),
		ReportPath:   getEnv("VQSD_REPORT_PATH", ""),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("LOG_PRETTY", false),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("VQSD_ITERATIONS must be >= 0, got %d", c.Iterations)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("VQSD_LEARNING_RATE must be finite and > 0, got %g", c.LearningRate)
	}
	if c.ReportEvery <= 0 {
		return fmt.Errorf("VQSD_REPORT_EVERY must be > 0, got %d", c.ReportEvery)
	}

	return nil
}

// TrainerOptions converts the configuration into vqsd options.
func (c *Config) TrainerOptions() []vqsd.Option {
	return []vqsd.Option{
		vqsd.WithIterations(c.Iterations),
		vqsd.WithLearningRate(c.LearningRate),
		vqsd.WithSeed(c.Seed),
		vqsd.WithReportEvery(c.ReportEvery),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
