/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"path/filepath"
	"strings"
)

// Format is the encoding of a document.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// SupportedFormats returns the names of all supported formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// Extension returns the file extension used for f. Table output is plain text.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTable:
		return "txt"
	default:
		return "json"
	}
}

// FormatFromPath returns the format implied by the extension of path.
// Paths without a recognized extension are read as YAML, which also accepts
// JSON documents.
func FormatFromPath(path string) Format {
	// strip query strings from URLs
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".txt", ".table":
		return FormatTable
	default:
		return FormatYAML
	}
}
