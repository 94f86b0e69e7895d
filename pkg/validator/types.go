/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"time"

	"k8s.io/utils/ptr"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	"github.com/NVIDIA/datecompare/pkg/dateformat"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/header"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// RepeatSuffix is appended to the attribute name when a rule names neither a
// compare value nor a compare attribute.
const RepeatSuffix = "_repeat"

// Rule compares each of its attributes with a constant or a sibling attribute.
type Rule struct {
	// Attributes are validated independently with the same settings.
	Attributes []string `json:"attributes" yaml:"attributes"`

	// CompareAttribute names the sibling attribute to compare with.
	CompareAttribute string `json:"compareAttribute,omitempty" yaml:"compareAttribute,omitempty"`

	// CompareValue is a constant date. It takes precedence over CompareAttribute.
	CompareValue *string `json:"compareValue,omitempty" yaml:"compareValue,omitempty"`

	Operator   operator.Operator `json:"operator,omitempty" yaml:"operator,omitempty"`
	DateFormat string            `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`
	AllowEmpty bool              `json:"allowEmpty,omitempty" yaml:"allowEmpty,omitempty"`

	// SkipOnError skips the rule when the attribute already has an error.
	// Defaults to true.
	SkipOnError *bool `json:"skipOnError,omitempty" yaml:"skipOnError,omitempty"`

	// Message overrides the default template for this rule.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ShouldSkipOnError returns the effective SkipOnError setting.
func (r Rule) ShouldSkipOnError() bool {
	return ptr.Deref(r.SkipOnError, true)
}

// CompareAttributeFor returns the sibling attribute compared with attr.
func (r Rule) CompareAttributeFor(attr string) string {
	if r.CompareAttribute != "" {
		return r.CompareAttribute
	}
	return attr + RepeatSuffix
}

// HasConstant reports whether the rule compares against a constant.
func (r Rule) HasConstant() bool {
	return r.CompareValue != nil
}

// Validate checks the rule configuration. Errors carry
// ErrCodeInvalidConfiguration.
func (r Rule) Validate() error {
	if len(r.Attributes) == 0 {
		return dcerrors.New(dcerrors.ErrCodeInvalidConfiguration, "rule must name at least one attribute")
	}
	for _, a := range r.Attributes {
		if a == "" {
			return dcerrors.New(dcerrors.ErrCodeInvalidConfiguration, "attribute name cannot be empty")
		}
	}
	if _, err := operator.Parse(r.Operator.String()); err != nil {
		return err
	}
	if _, err := dateformat.Layout(r.DateFormat); err != nil {
		return err
	}
	return nil
}

// RuleSet is a document listing comparison rules.
type RuleSet struct {
	header.Header `json:",inline" yaml:",inline"`

	Rules []Rule `json:"rules" yaml:"rules"`
}

// NewRuleSet returns a RuleSet with its header initialized.
func NewRuleSet(rules ...Rule) *RuleSet {
	rs := &RuleSet{Rules: rules}
	rs.Kind = header.KindRuleSet
	rs.APIVersion = header.FullAPIVersion
	return rs
}

// Validate checks the header and every rule.
func (rs *RuleSet) Validate() error {
	if rs == nil {
		return dcerrors.New(dcerrors.ErrCodeInvalidRequest, "rule set cannot be nil")
	}
	if err := rs.Check(header.KindRuleSet); err != nil {
		return dcerrors.Wrap(dcerrors.ErrCodeInvalidConfiguration, "invalid rule set header", err)
	}
	for i, r := range rs.Rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return nil
}

// RuleStatus is the outcome of one rule for one attribute.
type RuleStatus string

const (
	RuleStatusPassed  RuleStatus = "passed"
	RuleStatusFailed  RuleStatus = "failed"
	RuleStatusSkipped RuleStatus = "skipped"
)

// ValidationStatus is the overall outcome.
type ValidationStatus string

const (
	ValidationStatusPass    ValidationStatus = "pass"
	ValidationStatusFail    ValidationStatus = "fail"
	ValidationStatusPartial ValidationStatus = "partial"
)

// RuleValidation is the outcome of one rule applied to one attribute.
type RuleValidation struct {
	Attribute    string            `json:"attribute" yaml:"attribute"`
	Operator     operator.Operator `json:"operator" yaml:"operator"`
	Value        string            `json:"value" yaml:"value"`
	CompareValue string            `json:"compareValue" yaml:"compareValue"`
	CompareTo    string            `json:"compareTo" yaml:"compareTo"`
	Status       RuleStatus        `json:"status" yaml:"status"`

	Evaluated   bool              `json:"evaluated" yaml:"evaluated"`
	DiffSeconds int64             `json:"diffSeconds" yaml:"diffSeconds"`
	Reason      comparator.Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message     string            `json:"message,omitempty" yaml:"message,omitempty"`
}

// ValidationSummary aggregates rule outcomes.
type ValidationSummary struct {
	Passed   int              `json:"passed" yaml:"passed"`
	Failed   int              `json:"failed" yaml:"failed"`
	Skipped  int              `json:"skipped" yaml:"skipped"`
	Total    int              `json:"total" yaml:"total"`
	Status   ValidationStatus `json:"status" yaml:"status"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}

// ValidationResult is the document produced by Validate.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary ValidationSummary `json:"summary" yaml:"summary"`
	Results []RuleValidation  `json:"results" yaml:"results"`
	Errors  Errors            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewValidationResult returns an empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]RuleValidation, 0),
		Errors:  NewErrors(),
	}
}

// Valid reports whether no rule failed.
func (r *ValidationResult) Valid() bool {
	return r.Summary.Failed == 0
}

// TableHeader returns the column names of the table rendering.
func (r *ValidationResult) TableHeader() []string {
	return []string{"ATTRIBUTE", "OPERATOR", "VALUE", "COMPARE", "STATUS", "MESSAGE"}
}

// TableRows returns one row per evaluated rule.
func (r *ValidationResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, rv := range r.Results {
		rows = append(rows, []string{
			rv.Attribute,
			rv.Operator.String(),
			rv.Value,
			rv.CompareTo,
			string(rv.Status),
			rv.Message,
		})
	}
	return rows
}
