/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
	}{
		{"json", FormatJSON, `{"attribute":"end_date","operator":">"}`, false},
		{"yaml", FormatYAML, "attribute: end_date\noperator: '>'\n", false},
		{"yaml reads json", FormatYAML, `{"attribute":"end_date","operator":">"}`, false},
		{"table", FormatTable, "FIELD VALUE", true},
		{"malformed", FormatJSON, "{", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got testRule
			err := NewReader(tt.format, strings.NewReader(tt.input)).Deserialize(&got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testRule{"end_date", ">"}, got)
		})
	}
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"attribute":"a","operator":"="}`), 0o600))

	r, err := NewFileReader(FormatFromPath(path), path)
	require.NoError(t, err)
	var got testRule
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "a", got.Attribute)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())

	_, err = NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "rule.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("attribute: start_date\noperator: '<'\n"), 0o600))

	got, err := FromFile[testRule](context.Background(), yamlPath)
	require.NoError(t, err)
	assert.Equal(t, testRule{"start_date", "<"}, *got)

	_, err = FromFile[testRule](context.Background(), "")
	assert.Error(t, err)

	_, err = FromFile[testRule](context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = FromFile[testRule](context.Background(), "cm://bad")
	assert.ErrorContains(t, err, "invalid ConfigMap URI")
}

func TestFromFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rule.json":
			fmt.Fprint(w, `{"attribute":"remote","operator":">="}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got, err := FromFile[testRule](context.Background(), srv.URL+"/rule.json")
	require.NoError(t, err)
	assert.Equal(t, testRule{"remote", ">="}, *got)

	_, err = FromFile[testRule](context.Background(), srv.URL+"/missing.json")
	assert.ErrorContains(t, err, "unexpected status")
}

func TestReadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"attribute":"a","operator":">"},{"attribute":"b","operator":"<"}]`), 0o600))

	var got []testRule
	require.NoError(t, ReadInto(context.Background(), path, &got))
	assert.Equal(t, []testRule{{"a", ">"}, {"b", "<"}}, got)
}
