/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindRuleSet),
		WithAPIVersion(FullAPIVersion),
		WithMetadata("name", "booking"),
	)

	if h.Kind != KindRuleSet {
		t.Errorf("Kind = %q, want %q", h.Kind, KindRuleSet)
	}
	if h.APIVersion != FullAPIVersion {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, FullAPIVersion)
	}
	if h.Metadata["name"] != "booking" {
		t.Errorf("Metadata[name] = %q, want booking", h.Metadata["name"])
	}
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	if h.Metadata["k"] != "v" {
		t.Fatalf("expected metadata to be initialized, got %#v", h.Metadata)
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindValidationResult, FullAPIVersion, "v0.1.0")

	if h.Kind != KindValidationResult {
		t.Errorf("Kind = %q", h.Kind)
	}
	if h.Metadata[MetadataVersion] != "v0.1.0" {
		t.Errorf("version = %q", h.Metadata[MetadataVersion])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		wantErr bool
	}{
		{"empty header accepted", Header{}, false},
		{"matching", Header{Kind: KindRuleSet, APIVersion: FullAPIVersion}, false},
		{"kind only", Header{Kind: KindRuleSet}, false},
		{"wrong kind", Header{Kind: KindModel}, true},
		{"wrong version", Header{Kind: KindRuleSet, APIVersion: "datecompare.nvidia.com/v2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Check(KindRuleSet)
			if (err != nil) != tt.wantErr {
				t.Errorf("Check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
