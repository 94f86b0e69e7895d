/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package defaults

import "time"

// Handler timeouts.
const (
	// ValidateHandlerTimeout bounds a single compare, validate or conditions request.
	ValidateHandlerTimeout = 30 * time.Second
)

// Server timeouts.
const (
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Kubernetes timeouts.
const (
	// K8sAPITimeout bounds each ConfigMap get, create or update.
	K8sAPITimeout = 30 * time.Second
)

// HTTP client timeouts.
const (
	// RemoteFetchTimeout bounds fetching a document over HTTP(S).
	RemoteFetchTimeout = 30 * time.Second
)

// Size limits.
const (
	// MaxRequestBodyBytes caps API request bodies.
	MaxRequestBodyBytes = 1 << 20

	// MaxRemoteDocumentBytes caps documents fetched over HTTP(S).
	MaxRemoteDocumentBytes = 10 << 20
)
