/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/yaml"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	write(w, statusCode, ContentTypeJSON, buf.Bytes())
}

// RespondYAML writes a YAML response with the given status code and data.
func RespondYAML(w http.ResponseWriter, statusCode int, data any) {
	b, err := yaml.Marshal(data)
	if err != nil {
		slog.Error("yaml encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	write(w, statusCode, ContentTypeYAML, b)
}

// Respond writes data as YAML when the request accepts YAML (and not JSON
// first), and as JSON otherwise.
func Respond(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	if NegotiateFormat(r) == FormatYAML {
		RespondYAML(w, statusCode, data)
		return
	}
	RespondJSON(w, statusCode, data)
}

// NegotiateFormat returns the response format preferred by the request's
// Accept header. Only json and yaml are served.
func NegotiateFormat(r *http.Request) Format {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		switch mt {
		case ContentTypeJSON:
			return FormatJSON
		case ContentTypeYAML, "application/x-yaml", "text/yaml":
			return FormatYAML
		}
	}
	return FormatJSON
}

// DecodeRequest decodes the request body into v using the Content-Type
// header. Anything that is not YAML is read as JSON.
func DecodeRequest(r *http.Request, v any) error {
	format := FormatJSON
	switch strings.TrimSpace(strings.SplitN(r.Header.Get("Content-Type"), ";", 2)[0]) {
	case ContentTypeYAML, "application/x-yaml", "text/yaml":
		format = FormatYAML
	}
	return NewReader(format, r.Body).Deserialize(v)
}

func write(w http.ResponseWriter, statusCode int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}
