/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"log/slog"
	"net"
	"os"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/datecompare/pkg/defaults"
	"github.com/NVIDIA/datecompare/pkg/logging"
)

// Environment variables read by DefaultConfig.
const (
	EnvPort            = "PORT"
	EnvRateLimit       = "RATE_LIMIT"
	EnvMaxBulkRequests = "MAX_BULK_REQUESTS"
)

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		CacheMaxAge:     300, // 5 minutes
		MaxBulkRequests: 100,
		MaxBodyBytes:    defaults.MaxRequestBodyBytes,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
		LogLevel:        slog.LevelInfo.String(),
	}

	// Override with environment variables if set
	if port, ok := envInt(EnvPort); ok {
		cfg.Port = port
	}
	if limit, ok := envInt(EnvRateLimit); ok {
		cfg.RateLimit = rate.Limit(limit)
		cfg.RateLimitBurst = 2 * limit
	}
	if bulk, ok := envInt(EnvMaxBulkRequests); ok {
		cfg.MaxBulkRequests = bulk
	}
	if logLevelStr := os.Getenv(logging.EnvLogLevel); logLevelStr != "" {
		cfg.LogLevel = logLevelStr
	}

	return cfg
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid environment value", "key", key, "value", v)
		return 0, false
	}
	return n, true
}
