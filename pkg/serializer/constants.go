/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

// URI scheme constants for input sources and output destinations
const (
	// ConfigMapURIScheme is the URI scheme for Kubernetes ConfigMap locations.
	// Format: cm://namespace/configmap-name[/key]
	ConfigMapURIScheme = "cm://"

	// StdoutURI is the special URI for stdout (output) or stdin (input).
	StdoutURI = "-"

	// HTTPURIScheme and HTTPSURIScheme mark remote inputs.
	HTTPURIScheme  = "http://"
	HTTPSURIScheme = "https://"
)

// ConfigMapKeyPrefix is the data key prefix used when a ConfigMap URI does
// not name a key. The format extension is appended, e.g. "datecompare.yaml".
const ConfigMapKeyPrefix = "datecompare"
