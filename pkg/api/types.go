/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/validator"
)

// ValidateRequest is the body of POST /v1/validate. Exactly one of Model and
// Models is set.
type ValidateRequest struct {
	Rules  *validator.RuleSet    `json:"rules" yaml:"rules"`
	Model  *validator.MapModel   `json:"model,omitempty" yaml:"model,omitempty"`
	Models []*validator.MapModel `json:"models,omitempty" yaml:"models,omitempty"`
	Only   []string              `json:"only,omitempty" yaml:"only,omitempty"`
}

// BulkValidationResponse is returned for requests with Models.
type BulkValidationResponse struct {
	Total   int                           `json:"total" yaml:"total"`
	Valid   int                           `json:"valid" yaml:"valid"`
	Invalid int                           `json:"invalid" yaml:"invalid"`
	Results []*validator.ValidationResult `json:"results" yaml:"results"`
}

// ConditionsRequest is the body of POST /v1/conditions.
type ConditionsRequest struct {
	Rules *validator.RuleSet  `json:"rules" yaml:"rules"`
	Model *validator.MapModel `json:"model" yaml:"model"`

	// IDPrefix prefixes element ids, e.g. "Booking" -> "Booking_end_date".
	IDPrefix string   `json:"idPrefix,omitempty" yaml:"idPrefix,omitempty"`
	Only     []string `json:"only,omitempty" yaml:"only,omitempty"`
}

// ConditionView is a condition with its rendered expression.
type ConditionView struct {
	comparator.Condition `json:",inline" yaml:",inline"`

	Expression string `json:"expression" yaml:"expression"`
}

// ConditionsResponse is returned by POST /v1/conditions.
type ConditionsResponse struct {
	Conditions []ConditionView `json:"conditions" yaml:"conditions"`
}
