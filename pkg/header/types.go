/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the Kubernetes-style header shared by rule sets,
// models and validation results.
package header

import (
	"fmt"
	"time"
)

const (
	// APIDomain is the API group of every datecompare document.
	APIDomain = "datecompare.nvidia.com"

	// APIVersionV1Alpha1 is the current document version.
	APIVersionV1Alpha1 = "v1alpha1"

	// FullAPIVersion is the apiVersion written into new documents.
	FullAPIVersion = APIDomain + "/" + APIVersionV1Alpha1

	// MetadataTimestamp is set by Init to the creation time.
	MetadataTimestamp = "timestamp"

	// MetadataVersion is set by Init to the producing tool version.
	MetadataVersion = "version"
)

// Kind is the type of a document.
type Kind string

const (
	KindRuleSet          Kind = "DateCompareRuleSet"
	KindModel            Kind = "DateCompareModel"
	KindValidationResult Kind = "DateCompareValidationResult"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
// If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains the kind, API version and free-form metadata of a document.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets kind, apiVersion, the producing tool version and a UTC timestamp.
func (h *Header) Init(kind Kind, apiVersion, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[MetadataTimestamp] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Check verifies that a decoded document has the expected kind and a
// supported apiVersion. Empty kind and apiVersion are accepted so that
// hand-written documents can omit the header.
func (h *Header) Check(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return fmt.Errorf("unexpected kind %q, expected %q", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != FullAPIVersion {
		return fmt.Errorf("unsupported apiVersion %q, expected %q", h.APIVersion, FullAPIVersion)
	}
	return nil
}
