/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/datecompare/pkg/comparator"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

func TestClientConditions(t *testing.T) {
	rule := endAfterStart()
	rule.AllowEmpty = true
	constant := Rule{
		Attributes:   []string{"start_date"},
		CompareValue: ptr.To("2024-01-01"),
		Operator:     "==",
	}

	v := New(WithIDResolver(PrefixedIDResolver("Booking")))
	conds, err := v.ClientConditions(NewRuleSet(rule, constant), bookingModel("", ""))
	require.NoError(t, err)
	require.Len(t, conds, 2)

	c := conds[0]
	assert.Equal(t, "end_date", c.Attribute)
	assert.Equal(t, "Booking_end_date", c.ElementID)
	assert.Equal(t, operator.GreaterThan, c.Operator)
	assert.Equal(t, operator.LessThanOrEqual, c.FailWhen)
	assert.Equal(t, comparator.OperandAttribute, c.Compare.Kind)
	assert.Equal(t, "Booking_start_date", c.Compare.ElementID)
	assert.True(t, c.SkipEmpty)
	assert.Equal(t, `End Date must be greater than "Check-in".`, c.Message)
	assert.Equal(t, `trim(value) != "" && date(value) <= date(#Booking_start_date)`, c.Expression())

	c = conds[1]
	assert.Equal(t, operator.Equal, c.Operator)
	assert.Equal(t, operator.NotEqual, c.FailWhen)
	assert.Equal(t, comparator.OperandConstant, c.Compare.Kind)
	assert.Equal(t, "2024-01-01", c.Compare.Value)
	assert.Equal(t, "Check-in must be repeated exactly.", c.Message)
}

func TestClientConditions_UnknownOperator(t *testing.T) {
	_, err := New().ClientConditions(NewRuleSet(Rule{Attributes: []string{"end_date"}, Operator: "~="}), bookingModel("", ""))
	require.Error(t, err)
	assert.True(t, dcerrors.IsConfigurationError(err))
}
