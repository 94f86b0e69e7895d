/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/defaults"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/serializer"
	"github.com/NVIDIA/datecompare/pkg/server"
	"github.com/NVIDIA/datecompare/pkg/validator"
)

const defaultMaxBulkRequests = 100

// Handler serves the datecompare endpoints.
type Handler struct {
	version     string
	maxBulk     int
	cacheMaxAge int
	doc         *openapi3.T
}

// Option is a functional option for configuring Handler instances.
type Option func(*Handler)

// WithVersion sets the version stamped on validation results.
func WithVersion(version string) Option {
	return func(h *Handler) {
		h.version = version
	}
}

// WithMaxBulkRequests caps the number of models per validation request.
func WithMaxBulkRequests(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBulk = n
		}
	}
}

// WithCacheMaxAge sets the Cache-Control max-age of the OpenAPI document.
func WithCacheMaxAge(seconds int) Option {
	return func(h *Handler) {
		h.cacheMaxAge = seconds
	}
}

// WithOpenAPI sets the document served at /v1/openapi.
func WithOpenAPI(doc *openapi3.T) Option {
	return func(h *Handler) {
		h.doc = doc
	}
}

// NewHandler creates a Handler with the provided options.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{maxBulk: defaultMaxBulkRequests}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the handlers by path.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/compare":    h.HandleCompare,
		"/v1/validate":   h.HandleValidate,
		"/v1/conditions": h.HandleConditions,
		"/v1/openapi":    h.HandleOpenAPI,
	}
}

// HandleCompare compares two values.
//
//	POST /v1/compare
//	Body: {"primaryValue": "2024-05-03", "secondaryValue": "2024-05-01", "dateFormat": "Y-m-d", "operator": ">"}
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethod(w, r, http.MethodPost) {
		return
	}

	var spec comparator.Spec
	if !decode(w, r, &spec) {
		return
	}

	res, err := comparator.Compare(spec)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compare dates", nil)
		return
	}

	serializer.Respond(w, r, http.StatusOK, res)
}

// HandleValidate validates one model, or up to the bulk limit of models,
// against a rule set.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethod(w, r, http.MethodPost) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	var req ValidateRequest
	if !decode(w, r, &req) {
		return
	}

	switch {
	case req.Rules == nil:
		badRequest(w, r, "rules is required", nil)
		return
	case req.Model != nil && len(req.Models) > 0:
		badRequest(w, r, "model and models are mutually exclusive", nil)
		return
	case req.Model == nil && len(req.Models) == 0:
		badRequest(w, r, "model or models is required", nil)
		return
	case len(req.Models) > h.maxBulk:
		badRequest(w, r, "too many models in bulk request", map[string]any{
			"count": len(req.Models),
			"max":   h.maxBulk,
		})
		return
	}

	v := validator.New(validator.WithVersion(h.version), validator.WithOnly(req.Only...))

	if req.Model != nil {
		res, err := v.Validate(ctx, req.Rules, req.Model)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Failed to validate model", nil)
			return
		}
		serializer.Respond(w, r, http.StatusOK, res)
		return
	}

	models := make([]validator.Model, 0, len(req.Models))
	for i, m := range req.Models {
		if m == nil {
			badRequest(w, r, "model cannot be null", map[string]any{"index": i})
			return
		}
		models = append(models, m)
	}

	results, err := v.ValidateBatch(ctx, req.Rules, models)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to validate models", nil)
		return
	}

	resp := BulkValidationResponse{Total: len(results), Results: results}
	for _, res := range results {
		if res.Valid() {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}

	slog.Debug("bulk validation completed", "total", resp.Total, "invalid", resp.Invalid)
	serializer.Respond(w, r, http.StatusOK, resp)
}

// HandleConditions returns the client-side conditions of a rule set.
func (h *Handler) HandleConditions(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethod(w, r, http.MethodPost) {
		return
	}

	var req ConditionsRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Rules == nil || req.Model == nil {
		badRequest(w, r, "rules and model are required", nil)
		return
	}

	v := validator.New(
		validator.WithIDResolver(validator.PrefixedIDResolver(req.IDPrefix)),
		validator.WithOnly(req.Only...),
	)

	conds, err := v.ClientConditions(req.Rules, req.Model)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build conditions", nil)
		return
	}

	resp := ConditionsResponse{Conditions: make([]ConditionView, 0, len(conds))}
	for _, c := range conds {
		resp.Conditions = append(resp.Conditions, ConditionView{Condition: c, Expression: c.Expression()})
	}
	serializer.Respond(w, r, http.StatusOK, resp)
}

// HandleOpenAPI serves the API description as JSON, or as the original YAML
// when the client accepts YAML.
func (h *Handler) HandleOpenAPI(w http.ResponseWriter, r *http.Request) {
	if !server.AllowMethod(w, r, http.MethodGet) {
		return
	}
	if h.doc == nil {
		server.WriteError(w, r, http.StatusServiceUnavailable, dcerrors.ErrCodeUnavailable,
			"OpenAPI document not loaded", true, nil)
		return
	}

	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(h.cacheMaxAge))
	}

	if serializer.NegotiateFormat(r) == serializer.FormatYAML {
		w.Header().Set("Content-Type", serializer.ContentTypeYAML)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(openAPIDocument); err != nil {
			slog.Warn("response write failed", "error", err)
		}
		return
	}
	serializer.RespondJSON(w, http.StatusOK, h.doc)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := serializer.DecodeRequest(r, v); err != nil {
		badRequest(w, r, "Invalid request body", map[string]any{"error": err.Error()})
		return false
	}
	return true
}

func badRequest(w http.ResponseWriter, r *http.Request, message string, details map[string]any) {
	server.WriteError(w, r, http.StatusBadRequest, dcerrors.ErrCodeInvalidRequest, message, false, details)
}
