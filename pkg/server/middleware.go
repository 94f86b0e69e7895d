/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
)

// HeaderRequestID carries the request id in requests and responses.
const HeaderRequestID = "X-Request-Id"

type contextKey string

const contextKeyRequestID contextKey = "requestID"

// RequestIDFromContext returns the id assigned by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withMiddleware wraps an API handler with the full middleware chain.
func (s *Server) withMiddleware(route string, h http.HandlerFunc) http.HandlerFunc {
	return s.withRecovery(s.withRequestID(s.withObservability(route,
		s.withAPIVersion(s.withRateLimit(s.withBodyLimit(h))))))
}

func (s *Server) withRecovery(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic in handler",
					"path", r.URL.Path,
					"panic", fmt.Sprint(rec),
					"requestId", RequestIDFromContext(r.Context()))
				WriteError(w, r, http.StatusInternalServerError, dcerrors.ErrCodeInternal,
					"Internal server error", true, nil)
			}
		}()
		next(w, r)
	}
}

func (s *Server) withRequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		next(w, r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, id)))
	}
}

// methodLabel folds non-standard methods into one label value.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	}
	return "OTHER"
}

func (s *Server) withObservability(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		elapsed := time.Since(start)
		httpRequestsTotal.WithLabelValues(route, methodLabel(r.Method), strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed,
			"requestId", RequestIDFromContext(r.Context()),
			"remote_addr", r.RemoteAddr)
	}
}

func (s *Server) withAPIVersion(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderAPIVersion, negotiateAPIVersion(r))
		next(w, r)
	}
}

func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			rateLimitedTotal.Inc()
			w.Header().Set("Retry-After", "1")
			WriteError(w, r, http.StatusTooManyRequests, dcerrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit": float64(s.config.RateLimit),
					"burst": s.config.RateLimitBurst,
				})
			return
		}
		next(w, r)
	}
}

func (s *Server) withBodyLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.config.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
		}
		next(w, r)
	}
}
