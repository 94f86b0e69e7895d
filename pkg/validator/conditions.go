/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

// ClientConditions returns the client-side checks equivalent to rs for model.
// Messages name the compare target by label (or constant) because the client
// only knows the sibling value at check time.
func (v *Validator) ClientConditions(rs *RuleSet, model Model) ([]comparator.Condition, error) {
	if model == nil {
		return nil, dcerrors.New(dcerrors.ErrCodeInvalidRequest, "model cannot be nil")
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}

	conds := make([]comparator.Condition, 0, len(rs.Rules))
	for _, rule := range FilterRules(rs.Rules, v.only) {
		op, err := operator.Parse(rule.Operator.String())
		if err != nil {
			return nil, err
		}

		for _, attr := range rule.Attributes {
			target := resolveCompare(rule, attr, model)
			msg := v.message(rule, comparator.KindFor(op), map[string]string{
				comparator.ParamAttribute:        model.AttributeLabel(attr),
				comparator.ParamCompareValue:     target.Display,
				comparator.ParamCompareAttribute: target.Display,
			})

			c, err := comparator.BuildCondition(comparator.ConditionInput{
				Attribute:  attr,
				ElementID:  v.ids(attr),
				Operator:   op,
				Compare:    target.operand(v.ids),
				DateFormat: rule.DateFormat,
				AllowEmpty: rule.AllowEmpty,
				Message:    msg,
			})
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", attr, err)
			}
			conds = append(conds, c)
		}
	}
	return conds, nil
}
