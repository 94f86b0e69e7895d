/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults provides centralized timeouts and size limits for datecompare.
//
// # Timeout Categories
//
//   - Handler timeouts: for validating a single API request
//   - Server timeouts: for HTTP server configuration
//   - Kubernetes timeouts: for ConfigMap reads and writes
//   - HTTP client timeouts: for fetching remote rule sets and models
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
//	defer cancel()
//
// Callers keep the parent deadline when it is shorter.
package defaults
