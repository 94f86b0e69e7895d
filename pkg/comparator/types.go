/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import "github.com/NVIDIA/datecompare/pkg/operator"

// MessageKind selects the message template for a failed comparison.
type MessageKind string

const (
	MessageEqual          MessageKind = "equal"
	MessageNotEqual       MessageKind = "not_equal"
	MessageGreater        MessageKind = "greater"
	MessageGreaterOrEqual MessageKind = "greater_or_equal"
	MessageLess           MessageKind = "less"
	MessageLessOrEqual    MessageKind = "less_or_equal"
)

// MessageKinds returns all kinds in operator display order.
func MessageKinds() []MessageKind {
	return []MessageKind{
		MessageEqual, MessageNotEqual,
		MessageGreater, MessageGreaterOrEqual,
		MessageLess, MessageLessOrEqual,
	}
}

// KindFor returns the message kind matching op, or "" for unknown operators.
func KindFor(op operator.Operator) MessageKind {
	switch op {
	case operator.Equal:
		return MessageEqual
	case operator.NotEqual:
		return MessageNotEqual
	case operator.GreaterThan:
		return MessageGreater
	case operator.GreaterThanOrEqual:
		return MessageGreaterOrEqual
	case operator.LessThan:
		return MessageLess
	case operator.LessThanOrEqual:
		return MessageLessOrEqual
	}
	return ""
}

// Reason explains why a comparison was not evaluated.
type Reason string

const (
	ReasonEmptyAllowed         Reason = "empty_allowed"
	ReasonUnparseablePrimary   Reason = "unparseable_primary"
	ReasonUnparseableSecondary Reason = "unparseable_secondary"
)

// Spec describes a single comparison. It is not modified by Compare.
type Spec struct {
	// PrimaryValue is the value being validated.
	PrimaryValue string `json:"primaryValue" yaml:"primaryValue"`

	// SecondaryValue is the value compared against, either a constant or the
	// value of a sibling attribute resolved by the caller.
	SecondaryValue string `json:"secondaryValue" yaml:"secondaryValue"`

	// DateFormat is used for both values. Empty means dateformat.DefaultFormat.
	DateFormat string `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`

	// Operator compares primary to secondary. Empty means "=".
	Operator operator.Operator `json:"operator,omitempty" yaml:"operator,omitempty"`

	// AllowEmpty makes an empty primary value valid without comparing.
	AllowEmpty bool `json:"allowEmpty,omitempty" yaml:"allowEmpty,omitempty"`
}

// Result is the outcome of Compare.
type Result struct {
	Valid bool `json:"valid" yaml:"valid"`

	// DiffSeconds is secondary minus primary in whole seconds. Zero when the
	// comparison was not evaluated.
	DiffSeconds int64 `json:"diffSeconds" yaml:"diffSeconds"`

	MessageKind MessageKind       `json:"messageKind" yaml:"messageKind"`
	Operator    operator.Operator `json:"operator" yaml:"operator"`

	// Evaluated is false when the operator was never applied.
	Evaluated bool   `json:"evaluated" yaml:"evaluated"`
	Reason    Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}
