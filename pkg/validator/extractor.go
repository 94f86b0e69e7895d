/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"log/slog"

	"github.com/agnivade/levenshtein"

	"github.com/NVIDIA/datecompare/pkg/comparator"
)

// compareTarget is the resolved right-hand side of a rule for one attribute.
type compareTarget struct {
	// Value is the raw value compared with.
	Value string

	// Display names the target in messages: the constant itself or the label
	// of the compare attribute.
	Display string

	// Attribute is set when comparing with a sibling attribute.
	Attribute string
}

// resolveCompare returns what attr is compared with under rule.
func resolveCompare(rule Rule, attr string, model Model) compareTarget {
	if rule.HasConstant() {
		return compareTarget{Value: *rule.CompareValue, Display: *rule.CompareValue}
	}

	name := rule.CompareAttributeFor(attr)
	return compareTarget{
		Value:     attributeValue(model, name),
		Display:   model.AttributeLabel(name),
		Attribute: name,
	}
}

// operand converts the target into a client condition operand.
func (t compareTarget) operand(ids IDResolver) comparator.Operand {
	if t.Attribute == "" {
		return comparator.Operand{Kind: comparator.OperandConstant, Value: t.Value}
	}
	return comparator.Operand{
		Kind:      comparator.OperandAttribute,
		Attribute: t.Attribute,
		ElementID: ids(t.Attribute),
	}
}

// attributeValue returns the value of name, or "" when the model does not
// have it. Absent attributes are treated as empty.
func attributeValue(model Model, name string) string {
	v, ok := model.AttributeValue(name)
	if !ok {
		args := []any{"attribute", name}
		if hint, found := closestAttribute(model, name); found {
			args = append(args, "suggestion", hint)
		}
		slog.Warn("attribute not found in model, treating as empty", args...)
	}
	return v
}

// closestAttribute suggests a model attribute within edit distance 2 of name.
func closestAttribute(model Model, name string) (string, bool) {
	lister, ok := model.(AttributeLister)
	if !ok {
		return "", false
	}

	best, bestDist := "", 3
	for _, candidate := range lister.AttributeNames() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}
