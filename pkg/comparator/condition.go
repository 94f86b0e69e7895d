/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NVIDIA/datecompare/pkg/dateformat"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// OperandKind tells the client where the compare value comes from.
type OperandKind string

const (
	// OperandConstant compares against a fixed value known at render time.
	OperandConstant OperandKind = "constant"

	// OperandAttribute compares against the current value of another input.
	OperandAttribute OperandKind = "attribute"
)

// Operand is the right-hand side of a client condition.
type Operand struct {
	Kind OperandKind `json:"kind" yaml:"kind"`

	// Value is set for constants.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Attribute and ElementID are set for attribute operands.
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	ElementID string `json:"elementId,omitempty" yaml:"elementId,omitempty"`
}

// ConditionInput holds what BuildCondition needs.
type ConditionInput struct {
	Attribute  string
	ElementID  string
	Operator   operator.Operator
	Compare    Operand
	DateFormat string
	AllowEmpty bool

	// Message is the already rendered failure message.
	Message string
}

// Condition describes the client-side equivalent of a comparison. The client
// reports Message when the value of ElementID, compared with FailWhen against
// Compare, holds. When SkipEmpty is set, blank (trimmed) values are not
// checked.
type Condition struct {
	Attribute  string            `json:"attribute" yaml:"attribute"`
	ElementID  string            `json:"elementId" yaml:"elementId"`
	Operator   operator.Operator `json:"operator" yaml:"operator"`
	FailWhen   operator.Operator `json:"failWhen" yaml:"failWhen"`
	Compare    Operand           `json:"compare" yaml:"compare"`
	DateFormat string            `json:"dateFormat" yaml:"dateFormat"`
	SkipEmpty  bool              `json:"skipEmpty" yaml:"skipEmpty"`
	Message    string            `json:"message" yaml:"message"`
}

// BuildCondition validates in and returns the client condition. It accepts the
// same operators as Compare and fails with ErrCodeInvalidConfiguration for any
// other.
func BuildCondition(in ConditionInput) (Condition, error) {
	op, err := operator.Parse(in.Operator.String())
	if err != nil {
		conditionsTotal.WithLabelValues("error").Inc()
		return Condition{}, err
	}

	switch in.Compare.Kind {
	case OperandConstant, OperandAttribute:
	default:
		conditionsTotal.WithLabelValues("error").Inc()
		return Condition{}, dcerrors.NewWithContext(dcerrors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("invalid compare operand kind %q", in.Compare.Kind),
			map[string]any{"attribute": in.Attribute})
	}

	format := in.DateFormat
	if format == "" {
		format = dateformat.DefaultFormat
	}
	if _, err := dateformat.Layout(format); err != nil {
		conditionsTotal.WithLabelValues("error").Inc()
		return Condition{}, err
	}

	conditionsTotal.WithLabelValues("success").Inc()

	return Condition{
		Attribute:  in.Attribute,
		ElementID:  in.ElementID,
		Operator:   op,
		FailWhen:   op.Negate(),
		Compare:    in.Compare,
		DateFormat: format,
		SkipEmpty:  in.AllowEmpty,
		Message:    in.Message,
	}, nil
}

// Expression returns a technology neutral rendering of the failure test,
// for example:
//
//	trim(value) != "" && date(value) <= date(#booking_start)
func (c Condition) Expression() string {
	var rhs string
	switch c.Compare.Kind {
	case OperandAttribute:
		rhs = "date(#" + c.Compare.ElementID + ")"
	default:
		rhs = "date(" + strconv.Quote(c.Compare.Value) + ")"
	}

	parts := make([]string, 0, 2)
	if c.SkipEmpty {
		parts = append(parts, `trim(value) != ""`)
	}
	parts = append(parts, fmt.Sprintf("date(value) %s %s", expressionOperator(c.FailWhen), rhs))
	return strings.Join(parts, " && ")
}

// expressionOperator spells "=" as "==" so the expression reads as a test.
func expressionOperator(op operator.Operator) string {
	if op == operator.Equal {
		return "=="
	}
	return op.String()
}
