/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package server runs the datecompare HTTP API.
//
// The server owns the ambient HTTP concerns: configuration, graceful
// shutdown, health and readiness probes, Prometheus metrics, per-client rate
// limiting, request ids and a uniform error envelope. API handlers are
// registered with WithHandler and wrapped with the middleware chain:
//
//	s := server.New(
//		server.WithName("datecompare-api"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/compare": h.HandleCompare,
//		}),
//	)
//	err := s.Run(ctx)
//
// Errors are returned as ErrorResponse documents. Handlers use WriteError for
// request problems and WriteErrorFromErr for errors from the library, which
// maps StructuredError codes to HTTP status and retryability.
package server
