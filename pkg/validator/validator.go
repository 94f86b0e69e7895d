/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/header"
)

// Validator applies rule sets to models.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	sink     ErrorSink
	ids      IDResolver
	messages comparator.Messages
	only     []string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithErrorSink returns an Option that reports failures to sink in addition
// to the returned result. The sink is also consulted for skip-on-error.
func WithErrorSink(sink ErrorSink) Option {
	return func(v *Validator) {
		v.sink = sink
	}
}

// WithIDResolver returns an Option that sets how element ids are derived for
// client conditions.
func WithIDResolver(ids IDResolver) Option {
	return func(v *Validator) {
		if ids != nil {
			v.ids = ids
		}
	}
}

// WithMessages returns an Option that overrides default message templates.
// Kinds missing from m keep the built-in template.
func WithMessages(m comparator.Messages) Option {
	return func(v *Validator) {
		v.messages = m
	}
}

// WithOnly returns an Option that restricts validation to attributes matching
// the given wildcard patterns.
func WithOnly(patterns ...string) Option {
	return func(v *Validator) {
		v.only = patterns
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		ids:      DefaultIDResolver(),
		messages: comparator.Messages{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every rule of rs against model.
// Returns a ValidationResult containing per-attribute results and summary.
// Configuration problems abort with an error before any rule is evaluated.
func (v *Validator) Validate(ctx context.Context, rs *RuleSet, model Model) (*ValidationResult, error) {
	start := time.Now()
	defer func() {
		validationDuration.Observe(time.Since(start).Seconds())
	}()

	if model == nil {
		return nil, dcerrors.New(dcerrors.ErrCodeInvalidRequest, "model cannot be nil")
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, header.FullAPIVersion, v.Version)
	if name := rs.Metadata["name"]; name != "" {
		result.Metadata["ruleSet"] = name
	}

	for _, rule := range FilterRules(rs.Rules, v.only) {
		for _, attr := range rule.Attributes {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			rv, err := v.evaluateRule(rule, attr, model, result.Errors)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", attr, err)
			}
			result.Results = append(result.Results, rv)
			ruleEvaluationsTotal.WithLabelValues(string(rv.Status)).Inc()

			// Update summary counts
			switch rv.Status {
			case RuleStatusPassed:
				result.Summary.Passed++
			case RuleStatusFailed:
				result.Summary.Failed++
				result.Errors.AddError(attr, rv.Message)
				if v.sink != nil {
					v.sink.AddError(attr, rv.Message)
				}
			case RuleStatusSkipped:
				result.Summary.Skipped++
			}
		}
	}

	result.Summary.Total = len(result.Results)
	result.Summary.Duration = time.Since(start)

	// Determine overall status
	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

// ValidateBatch validates each model against rs concurrently. Results are
// returned in the order of models. The ErrorSink is not used; each result
// carries its own errors.
func (v *Validator) ValidateBatch(ctx context.Context, rs *RuleSet, models []Model) ([]*ValidationResult, error) {
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	batch := *v
	batch.sink = nil

	results := make([]*ValidationResult, len(models))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range models {
		g.Go(func() error {
			r, err := batch.Validate(gctx, rs, m)
			if err != nil {
				return fmt.Errorf("model %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// evaluateRule applies rule to a single attribute of model.
func (v *Validator) evaluateRule(rule Rule, attr string, model Model, current Errors) (RuleValidation, error) {
	rv := RuleValidation{
		Attribute: attr,
		Operator:  rule.Operator,
		Value:     attributeValue(model, attr),
	}

	if rule.ShouldSkipOnError() && v.hasErrors(attr, current) {
		rv.Status = RuleStatusSkipped
		rv.Message = "skipped: attribute already has errors"
		slog.Debug("skipping rule, attribute already has errors", "attribute", attr)
		return rv, nil
	}

	target := resolveCompare(rule, attr, model)
	rv.CompareValue = target.Value
	rv.CompareTo = target.Display

	res, err := comparator.Compare(comparator.Spec{
		PrimaryValue:   rv.Value,
		SecondaryValue: target.Value,
		DateFormat:     rule.DateFormat,
		Operator:       rule.Operator,
		AllowEmpty:     rule.AllowEmpty,
	})
	if err != nil {
		return rv, err
	}

	rv.Operator = res.Operator
	rv.Evaluated = res.Evaluated
	rv.DiffSeconds = res.DiffSeconds
	rv.Reason = res.Reason

	if res.Valid {
		rv.Status = RuleStatusPassed
		slog.Debug("rule passed",
			"attribute", attr,
			"operator", res.Operator,
			"value", rv.Value,
			"compare", target.Value,
			"evaluated", res.Evaluated)
		return rv, nil
	}

	rv.Status = RuleStatusFailed
	rv.Message = v.message(rule, res.MessageKind, map[string]string{
		comparator.ParamAttribute:        model.AttributeLabel(attr),
		comparator.ParamCompareValue:     target.Value,
		comparator.ParamCompareAttribute: target.Display,
	})
	slog.Debug("rule failed",
		"attribute", attr,
		"operator", res.Operator,
		"value", rv.Value,
		"compare", target.Value,
		"diff", res.DiffSeconds)

	return rv, nil
}

func (v *Validator) hasErrors(attr string, current Errors) bool {
	if current.HasErrors(attr) {
		return true
	}
	return v.sink != nil && v.sink.HasErrors(attr)
}

// message renders the rule's own template or the configured one for kind.
func (v *Validator) message(rule Rule, kind comparator.MessageKind, params map[string]string) string {
	if rule.Message != "" {
		return comparator.FormatMessage(rule.Message, params)
	}
	return v.messages.Render(kind, params)
}
