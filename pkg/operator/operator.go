/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package operator defines the comparison operators accepted by date
// comparison rules and their semantics on a signed date difference.
//
// The difference is always taken as secondary minus primary, so "primary is
// greater than secondary" holds when the difference is negative.
package operator

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
)

// Operator compares the primary date to the secondary date.
type Operator string

const (
	Equal              Operator = "="
	NotEqual           Operator = "!="
	GreaterThan        Operator = ">"
	GreaterThanOrEqual Operator = ">="
	LessThan           Operator = "<"
	LessThanOrEqual    Operator = "<="

	// equalAlias is accepted on input and canonicalized to Equal.
	equalAlias = "=="
)

// Default is used when a rule does not name an operator.
const Default = Equal

var supported = []Operator{Equal, NotEqual, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual}

// common spellings that are close to, but not, a supported operator
var corrections = map[string]Operator{
	"=>":  GreaterThanOrEqual,
	"=<":  LessThanOrEqual,
	"<>":  NotEqual,
	"===": Equal,
	"!==": NotEqual,
	"eq":  Equal,
	"ne":  NotEqual,
	"gt":  GreaterThan,
	"gte": GreaterThanOrEqual,
	"lt":  LessThan,
	"lte": LessThanOrEqual,
}

// SupportedOperators returns the canonical operators in display order.
func SupportedOperators() []Operator {
	out := make([]Operator, len(supported))
	copy(out, supported)
	return out
}

// SupportedOperatorsAsStrings returns the canonical operators plus the "=="
// alias as plain strings.
func SupportedOperatorsAsStrings() []string {
	out := make([]string, 0, len(supported)+1)
	for _, op := range supported {
		out = append(out, op.String())
		if op == Equal {
			out = append(out, equalAlias)
		}
	}
	return out
}

// Parse converts s into a canonical Operator. An empty string yields Default.
// Unknown operators return an ErrCodeInvalidConfiguration error.
func Parse(s string) (Operator, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Default, nil
	case equalAlias:
		return Equal, nil
	}

	op := Operator(s)
	if op.IsValid() {
		return op, nil
	}

	ctx := map[string]any{
		"operator":  s,
		"supported": SupportedOperatorsAsStrings(),
	}
	msg := fmt.Sprintf("invalid operator %q", s)
	if hint, ok := suggest(s); ok {
		ctx["suggestion"] = hint.String()
		msg = fmt.Sprintf("invalid operator %q, did you mean %q?", s, hint)
	}
	return "", dcerrors.NewWithContext(dcerrors.ErrCodeInvalidConfiguration, msg, ctx)
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and package initialization.
func MustParse(s string) Operator {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return op
}

func suggest(s string) (Operator, bool) {
	if op, ok := corrections[strings.ToLower(s)]; ok {
		return op, true
	}

	best, bestDist := Operator(""), 2
	for _, op := range supported {
		if d := levenshtein.ComputeDistance(s, op.String()); d < bestDist {
			best, bestDist = op, d
		}
	}
	return best, best != ""
}

// IsValid reports whether o is one of the canonical operators.
func (o Operator) IsValid() bool {
	switch o {
	case Equal, NotEqual, GreaterThan, GreaterThanOrEqual, LessThan, LessThanOrEqual:
		return true
	}
	return false
}

// String returns the operator symbol.
func (o Operator) String() string {
	return string(o)
}

// Negate returns the operator that holds exactly when o does not.
func (o Operator) Negate() Operator {
	switch o {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case GreaterThan:
		return LessThanOrEqual
	case GreaterThanOrEqual:
		return LessThan
	case LessThan:
		return GreaterThanOrEqual
	case LessThanOrEqual:
		return GreaterThan
	}
	return o
}

// Holds reports whether "primary o secondary" is true given
// diff = secondary - primary.
func (o Operator) Holds(diff int64) bool {
	switch o {
	case Equal:
		return diff == 0
	case NotEqual:
		return diff != 0
	case GreaterThan:
		return diff < 0
	case GreaterThanOrEqual:
		return diff <= 0
	case LessThan:
		return diff > 0
	case LessThanOrEqual:
		return diff >= 0
	}
	return false
}
