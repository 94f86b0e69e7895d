/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package api wires the datecompare endpoints into the HTTP server.
package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/datecompare/pkg/logging"
	"github.com/NVIDIA/datecompare/pkg/server"
)

const (
	name           = "datecompare-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/datecompare/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, validates the OpenAPI document, sets up routes and
// handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		slog.Error("failed to load OpenAPI document", "error", err)
		return err
	}

	cfg := server.DefaultConfig()
	h := NewHandler(
		WithVersion(version),
		WithMaxBulkRequests(cfg.MaxBulkRequests),
		WithCacheMaxAge(cfg.CacheMaxAge),
		WithOpenAPI(doc),
	)

	routes := h.Routes()
	paths := make([]string, 0, len(routes))
	for p := range routes {
		paths = append(paths, p)
	}
	if err := checkRoutes(doc, paths); err != nil {
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg),
		server.WithHandler(routes),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
