/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/serializer"
)

// WriteError writes an ErrorResponse with the request id of r.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code dcerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. StructuredErrors keep
// their code, message and context; anything else is an internal error
// described by fallbackMessage. The cause, if any, is added as details.error.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	var se *dcerrors.StructuredError
	if !errors.As(err, &se) {
		WriteError(w, r, http.StatusInternalServerError, dcerrors.ErrCodeInternal, fallbackMessage,
			retryableFromCode(dcerrors.ErrCodeInternal),
			mergeDetails(details, map[string]any{"error": err.Error()}))
		return
	}

	extra := map[string]any{}
	for k, v := range se.Context {
		extra[k] = v
	}
	if se.Cause != nil {
		extra["error"] = se.Cause.Error()
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
		retryableFromCode(se.Code), mergeDetails(details, extra))
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code dcerrors.ErrorCode) int {
	switch code {
	case dcerrors.ErrCodeInvalidRequest, dcerrors.ErrCodeInvalidConfiguration:
		return http.StatusBadRequest
	case dcerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case dcerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case dcerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case dcerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case dcerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case dcerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code dcerrors.ErrorCode) bool {
	switch code {
	case dcerrors.ErrCodeTimeout, dcerrors.ErrCodeUnavailable,
		dcerrors.ErrCodeRateLimitExceeded, dcerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with the entries of a and b, b winning.
// Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
