/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/datecompare/pkg/dateformat"
	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

func TestBuildCondition_FailWhen(t *testing.T) {
	tests := []struct {
		op   operator.Operator
		want operator.Operator
	}{
		{"=", "!="},
		{"==", "!="},
		{"!=", "="},
		{">", "<="},
		{">=", "<"},
		{"<", ">="},
		{"<=", ">"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			c, err := BuildCondition(ConditionInput{
				Attribute: "end",
				ElementID: "Booking_end",
				Operator:  tt.op,
				Compare:   Operand{Kind: OperandConstant, Value: jan1},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.FailWhen)
			assert.Equal(t, dateformat.DefaultFormat, c.DateFormat)
		})
	}
}

func TestBuildCondition_UnknownOperator(t *testing.T) {
	_, err := BuildCondition(ConditionInput{
		Attribute: "end",
		Operator:  "~=",
		Compare:   Operand{Kind: OperandConstant, Value: jan1},
	})
	require.Error(t, err)
	assert.True(t, dcerrors.IsConfigurationError(err))
}

func TestBuildCondition_InvalidOperand(t *testing.T) {
	_, err := BuildCondition(ConditionInput{Attribute: "end", Operator: "="})
	require.Error(t, err)
	assert.True(t, dcerrors.IsConfigurationError(err))
}

func TestCondition_Expression(t *testing.T) {
	tests := []struct {
		name string
		in   ConditionInput
		want string
	}{
		{
			name: "constant",
			in: ConditionInput{
				Operator: ">",
				Compare:  Operand{Kind: OperandConstant, Value: jan1},
			},
			want: `date(value) <= date("2020-01-01 00:00:00")`,
		},
		{
			name: "attribute with allow empty",
			in: ConditionInput{
				Operator:   ">=",
				Compare:    Operand{Kind: OperandAttribute, Attribute: "start", ElementID: "booking_start"},
				AllowEmpty: true,
			},
			want: `trim(value) != "" && date(value) < date(#booking_start)`,
		},
		{
			name: "not equal fails on equality",
			in: ConditionInput{
				Operator: "!=",
				Compare:  Operand{Kind: OperandConstant, Value: jan1},
			},
			want: `date(value) == date("2020-01-01 00:00:00")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BuildCondition(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Expression())
			assert.Equal(t, tt.in.AllowEmpty, c.SkipEmpty)
		})
	}
}
