/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Serializer writes a document to its destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers holding resources.
type Closer interface {
	Close() error
}

// Tabular is implemented by documents with their own table layout.
// Other values are flattened into FIELD/VALUE rows.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

// Writer encodes documents to an io.Writer.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer

	mu     sync.Mutex
	closed bool
}

// NewWriter returns a Writer encoding to output. Unknown formats fall back
// to JSON and a nil output means stdout.
func NewWriter(format Format, output io.Writer) *Writer {
	if format.IsUnknown() {
		slog.Warn("unknown output format, using json", "format", format)
		format = FormatJSON
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter returns a Writer encoding to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a serializer for path. An empty path or "-"
// selects stdout and a cm:// URI selects a ConfigMap.
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	if strings.HasPrefix(path, ConfigMapURIScheme) {
		loc, err := ParseConfigMapURI(path)
		if err != nil {
			return nil, err
		}
		return newConfigMapWriterFromEnv(format, loc)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize encodes v followed by a newline.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return encode(w.output, w.format, v)
}

// Close releases the underlying file. It is safe to call more than once and
// never closes stdout.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.closer == nil {
		return nil
	}
	w.closed = true
	return w.closer.Close()
}

// Close closes s when it holds resources.
func Close(s Serializer) {
	if c, ok := s.(Closer); ok {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}
}

func encode(out io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(out, v)
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

func writeTable(out io.Writer, v any) error {
	header, rows, err := tableOf(v)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

func tableOf(v any) ([]string, [][]string, error) {
	if t, ok := v.(Tabular); ok {
		return t.TableHeader(), t.TableRows(), nil
	}

	// round trip through JSON so struct tags and omitempty apply
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to serialize to table: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, nil, fmt.Errorf("failed to serialize to table: %w", err)
	}

	rows := make([][]string, 0)
	flatten("", generic, &rows)
	if len(rows) == 0 {
		rows = append(rows, []string{"<empty>", ""})
	}
	return []string{"FIELD", "VALUE"}, rows, nil
}

func flatten(prefix string, v any, rows *[][]string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, val[k], rows)
		}
	case []any:
		for i, item := range val {
			flatten(fmt.Sprintf("%s[%d]", prefix, i), item, rows)
		}
	case nil:
		*rows = append(*rows, []string{prefix, "<nil>"})
	default:
		*rows = append(*rows, []string{prefix, fmt.Sprint(val)})
	}
}
