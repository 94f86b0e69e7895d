/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix selects a version through the Accept header, e.g.
	// application/vnd.nvidia.datecompare.v1+json.
	vendorMediaPrefix = "application/vnd.nvidia.datecompare."

	// HeaderAPIVersion reports the version used for the response.
	HeaderAPIVersion = "X-API-Version"
)

var supportedAPIVersions = []string{"v1"}

// negotiateAPIVersion returns the version requested by the vendor media type
// in the Accept header, or DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		rest, ok := strings.CutPrefix(mt, vendorMediaPrefix)
		if !ok {
			continue
		}
		v, _, _ := strings.Cut(rest, "+")
		if isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(v string) bool {
	return slices.Contains(supportedAPIVersions, v)
}
