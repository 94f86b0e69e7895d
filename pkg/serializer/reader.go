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
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/datecompare/pkg/defaults"
	"github.com/NVIDIA/datecompare/pkg/k8s/client"
)

// Reader decodes documents from an io.Reader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader returns a Reader decoding format from input.
func NewReader(format Format, input io.Reader) *Reader {
	return &Reader{format: format, input: input}
}

// NewFileReader returns a Reader for a local file, or stdin for "-".
func NewFileReader(format Format, path string) (*Reader, error) {
	if path == StdoutURI {
		return NewReader(format, os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}

	r := NewReader(format, f)
	r.closer = f
	return r, nil
}

// Deserialize decodes the next document into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize yaml: %w", err)
		}
	default:
		return fmt.Errorf("cannot deserialize %q format", r.format)
	}
	return nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a document of type T from a file, URL, ConfigMap or stdin.
func FromFile[T any](ctx context.Context, path string) (*T, error) {
	return FromFileWithKubeconfig[T](ctx, path, "")
}

// FromFileWithKubeconfig is FromFile using an explicit kubeconfig for
// ConfigMap locations. An empty kubeconfig uses the default discovery.
func FromFileWithKubeconfig[T any](ctx context.Context, path, kubeconfig string) (*T, error) {
	var v T
	if err := readInto(ctx, path, kubeconfig, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadInto decodes the document at uri into v. See FromFile for the
// supported locations.
func ReadInto(ctx context.Context, uri string, v any) error {
	return readInto(ctx, uri, "", v)
}

func readInto(ctx context.Context, uri, kubeconfig string, v any) error {
	data, format, err := load(ctx, strings.TrimSpace(uri), kubeconfig)
	if err != nil {
		return err
	}
	if err := NewReader(format, bytes.NewReader(data)).Deserialize(v); err != nil {
		return fmt.Errorf("failed to load %q: %w", uri, err)
	}
	return nil
}

func load(ctx context.Context, path, kubeconfig string) ([]byte, Format, error) {
	switch {
	case path == "":
		return nil, "", fmt.Errorf("input path cannot be empty")

	case path == StdoutURI:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, FormatYAML, nil

	case strings.HasPrefix(path, ConfigMapURIScheme):
		loc, err := ParseConfigMapURI(path)
		if err != nil {
			return nil, "", err
		}
		c, _, err := client.ClientFor(kubeconfig)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create kubernetes client for %s: %w", loc, err)
		}
		return ReadConfigMap(ctx, c, loc)

	case strings.HasPrefix(path, HTTPURIScheme), strings.HasPrefix(path, HTTPSURIScheme):
		data, err := fetch(ctx, path)
		return data, FormatFromPath(path), err

	default:
		slog.Debug("reading input file", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read input file %q: %w", path, err)
		}
		return data, FormatFromPath(path), nil
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.RemoteFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %q: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, defaults.MaxRemoteDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", url, err)
	}
	if len(data) > defaults.MaxRemoteDocumentBytes {
		return nil, fmt.Errorf("document at %q exceeds %d bytes", url, defaults.MaxRemoteDocumentBytes)
	}

	slog.Debug("fetched remote document", "url", url, "bytes", len(data))
	return data, nil
}
