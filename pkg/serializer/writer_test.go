/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testRule struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Operator  string `json:"operator" yaml:"operator"`
}

type testTable struct{}

func (testTable) TableHeader() []string { return []string{"ATTRIBUTE", "STATUS"} }
func (testTable) TableRows() [][]string { return [][]string{{"end_date", "failed"}} }

func TestWriter_Serialize(t *testing.T) {
	data := []testRule{{"start_date", ">"}, {"end_date", "<="}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), data))

		var got []testRule
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), data))

		var got []testRule
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, data, got)
	})

	t.Run("unknown falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewWriter("xml", &buf).Serialize(context.Background(), data))

		var got []testRule
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var buf bytes.Buffer
		assert.ErrorIs(t, NewWriter(FormatJSON, &buf).Serialize(ctx, data), context.Canceled)
		assert.Zero(t, buf.Len())
	})
}

func TestWriter_SerializeTable(t *testing.T) {
	type inner struct {
		Format string
		Empty  *int
	}
	type outer struct {
		Name  string
		Inner inner
		Tags  []string
	}

	tests := []struct {
		name     string
		data     any
		contains []string
	}{
		{
			name:     "flattened",
			data:     outer{Name: "r1", Inner: inner{Format: "Y-m-d"}, Tags: []string{"a", "b"}},
			contains: []string{"FIELD", "VALUE", "Inner.Format", "Y-m-d", "Inner.Empty", "<nil>", "Tags[1]"},
		},
		{
			name:     "slice",
			data:     []testRule{{"start_date", ">"}},
			contains: []string{"[0].attribute", "start_date", "[0].operator"},
		},
		{
			name:     "map",
			data:     map[string]any{"b": 1, "a": true},
			contains: []string{"a", "true", "b", "1"},
		},
		{
			name:     "empty",
			data:     []testRule{},
			contains: []string{"<empty>"},
		},
		{
			name:     "tabular",
			data:     testTable{},
			contains: []string{"ATTRIBUTE", "STATUS", "end_date", "failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), tt.data))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriter_Close(t *testing.T) {
	w := NewStdoutWriter(FormatJSON)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		for _, path := range []string{"", "  ", "\t", "-"} {
			w, err := NewFileWriterOrStdout(FormatJSON, path)
			require.NoError(t, err, path)
			assert.IsType(t, &Writer{}, w)
			Close(w)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.yaml")
		w, err := NewFileWriterOrStdout(FormatYAML, path)
		require.NoError(t, err)
		require.NoError(t, w.Serialize(context.Background(), testRule{"end_date", ">"}))
		Close(w)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		var got testRule
		require.NoError(t, yaml.Unmarshal(content, &got))
		assert.Equal(t, "end_date", got.Attribute)

		assert.Error(t, w.Serialize(context.Background(), got), "closed writer")
	})

	t.Run("invalid path", func(t *testing.T) {
		w, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
		require.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "failed to create output file")
	})

	t.Run("invalid ConfigMap URI", func(t *testing.T) {
		for _, uri := range []string{"cm://namespace", "cm:///name", "cm://", "cm://ns/name/"} {
			w, err := NewFileWriterOrStdout(FormatJSON, uri)
			require.Error(t, err, uri)
			assert.Nil(t, w)
			assert.Contains(t, err.Error(), "invalid ConfigMap URI")
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format  Format
		unknown bool
		ext     string
	}{
		{FormatJSON, false, "json"},
		{FormatYAML, false, "yaml"},
		{FormatTable, false, "txt"},
		{Format("xml"), true, "json"},
		{Format(""), true, "json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.unknown, tt.format.IsUnknown())
			assert.Equal(t, tt.ext, tt.format.Extension())
		})
	}

	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"rules.json":                       FormatJSON,
		"rules.JSON":                       FormatJSON,
		"rules.yaml":                       FormatYAML,
		"rules.yml":                        FormatYAML,
		"rules":                            FormatYAML,
		"out.txt":                          FormatTable,
		"https://example.com/r.json?ref=1": FormatJSON,
	}

	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, FormatFromPath(path))
		})
	}
}
