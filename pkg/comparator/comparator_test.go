/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
	"github.com/NVIDIA/datecompare/pkg/operator"
)

const (
	jan1 = "2020-01-01 00:00:00"
	jan2 = "2020-01-02 00:00:00"
)

func TestCompare_EqualDates(t *testing.T) {
	tests := []struct {
		op   operator.Operator
		want bool
	}{
		{"=", true},
		{"==", true},
		{"!=", false},
		{">", false},
		{">=", true},
		{"<", false},
		{"<=", true},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			res, err := Compare(Spec{
				PrimaryValue:   jan1,
				SecondaryValue: jan1,
				DateFormat:     "Y-m-d H:i:s",
				Operator:       tt.op,
			})
			require.NoError(t, err)
			assert.True(t, res.Evaluated)
			assert.Equal(t, int64(0), res.DiffSeconds)
			assert.Equal(t, tt.want, res.Valid)
		})
	}
}

func TestCompare_DiffSign(t *testing.T) {
	res, err := Compare(Spec{
		PrimaryValue:   jan2,
		SecondaryValue: jan1,
		Operator:       operator.GreaterThan,
	})
	require.NoError(t, err)
	assert.True(t, res.Valid, "primary occurs later, > must pass")
	assert.Equal(t, int64(-86400), res.DiffSeconds)
	assert.Equal(t, MessageGreater, res.MessageKind)
}

func TestCompare_Operators(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		op        operator.Operator
		want      bool
	}{
		{"later greater", jan2, jan1, ">", true},
		{"earlier greater", jan1, jan2, ">", false},
		{"later greater or equal", jan2, jan1, ">=", true},
		{"earlier greater or equal", jan1, jan2, ">=", false},
		{"earlier less", jan1, jan2, "<", true},
		{"later less", jan2, jan1, "<", false},
		{"earlier less or equal", jan1, jan2, "<=", true},
		{"later less or equal", jan2, jan1, "<=", false},
		{"different not equal", jan1, jan2, "!=", true},
		{"different equal", jan1, jan2, "=", false},
		{"one second apart", "2020-01-01 00:00:01", jan1, ">", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compare(Spec{PrimaryValue: tt.primary, SecondaryValue: tt.secondary, Operator: tt.op})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Valid)
			assert.Equal(t, KindFor(operator.MustParse(tt.op.String())), res.MessageKind)
		})
	}
}

func TestCompare_WholeSeconds(t *testing.T) {
	res, err := Compare(Spec{
		PrimaryValue:   "2020-01-01 00:00:00.900",
		SecondaryValue: "2020-01-01 00:00:00.100",
		DateFormat:     "Y-m-d H:i:s.v",
		Operator:       operator.Equal,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DiffSeconds)
	assert.True(t, res.Valid, "sub-second differences are truncated")
}

func TestCompare_AllowEmpty(t *testing.T) {
	for _, op := range operator.SupportedOperators() {
		t.Run(op.String(), func(t *testing.T) {
			res, err := Compare(Spec{
				PrimaryValue:   "",
				SecondaryValue: jan1,
				Operator:       op,
				AllowEmpty:     true,
			})
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.False(t, res.Evaluated)
			assert.Equal(t, ReasonEmptyAllowed, res.Reason)
		})
	}
}

func TestCompare_EmptyNotAllowedIsUndecided(t *testing.T) {
	res, err := Compare(Spec{SecondaryValue: jan1, Operator: operator.Equal})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, ReasonUnparseablePrimary, res.Reason)
}

// Malformed dates never fail; this pins the long-standing behavior.
func TestCompare_MalformedDatesPass(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		reason    Reason
	}{
		{"malformed primary", "yesterday", jan1, ReasonUnparseablePrimary},
		{"malformed secondary", jan1, "2020-13-45 99:99:99", ReasonUnparseableSecondary},
		{"both malformed", "x", "y", ReasonUnparseablePrimary},
		{"wrong format", "01/02/2020", jan1, ReasonUnparseablePrimary},
		{"undeclared fraction", "2020-01-01 00:00:00.5", "2020-01-01 00:00:01", ReasonUnparseablePrimary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range operator.SupportedOperators() {
				res, err := Compare(Spec{PrimaryValue: tt.primary, SecondaryValue: tt.secondary, Operator: op})
				require.NoError(t, err)
				assert.True(t, res.Valid, "operator %s", op)
				assert.False(t, res.Evaluated)
				assert.Equal(t, tt.reason, res.Reason)
			}
		})
	}
}

func TestCompare_UnknownOperator(t *testing.T) {
	specs := []Spec{
		{PrimaryValue: jan1, SecondaryValue: jan1, Operator: "~="},
		{PrimaryValue: "", SecondaryValue: jan1, Operator: "~=", AllowEmpty: true},
		{PrimaryValue: "bad", SecondaryValue: jan1, Operator: "~="},
	}

	for _, spec := range specs {
		_, err := Compare(spec)
		require.Error(t, err)
		assert.True(t, dcerrors.IsConfigurationError(err))
	}
}

func TestCompare_UnknownOperatorMetricLabels(t *testing.T) {
	_, err := Compare(Spec{PrimaryValue: jan1, SecondaryValue: jan1, Operator: "warmup"})
	require.Error(t, err)
	before := testutil.CollectAndCount(comparisonsTotal)

	for i := 0; i < 50; i++ {
		_, err := Compare(Spec{PrimaryValue: jan1, SecondaryValue: jan1, Operator: operator.Operator(fmt.Sprintf("op%d", i))})
		require.Error(t, err)
	}

	assert.Equal(t, before, testutil.CollectAndCount(comparisonsTotal),
		"rejected operators must share one series")
	assert.GreaterOrEqual(t, testutil.ToFloat64(comparisonsTotal.WithLabelValues(operatorInvalid, outcomeError)), float64(51))
}

func TestCompare_UnpaddedFields(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		format    string
		op        operator.Operator
		want      bool
	}{
		{"unpadded day and month fails", "2020-1-5", "2020-01-10", "Y-m-d", ">", false},
		{"unpadded day and month passes", "2020-1-15", "2020-01-10", "Y-m-d", ">", true},
		{"unpadded hour", "2020-01-10 9:00:00", "2020-01-10 10:00:00", "Y-m-d H:i:s", "<", true},
		{"same instant", "2020-1-5 7:05:00", "2020-01-05 07:05:00", "Y-m-d G:i:s", "=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compare(Spec{PrimaryValue: tt.primary, SecondaryValue: tt.secondary, DateFormat: tt.format, Operator: tt.op})
			require.NoError(t, err)
			assert.True(t, res.Evaluated, "reason: %s", res.Reason)
			assert.Equal(t, tt.want, res.Valid)
		})
	}
}

func TestCompare_UnsupportedFormat(t *testing.T) {
	_, err := Compare(Spec{PrimaryValue: jan1, SecondaryValue: jan1, DateFormat: "Y-m-d S"})
	require.Error(t, err)
	assert.True(t, dcerrors.IsConfigurationError(err))
}

func TestCompare_FormatsAgree(t *testing.T) {
	formats := map[string][2]string{
		"Y-m-d H:i:s":         {jan2, jan1},
		"YYYY-MM-DD HH:mm:ss": {jan2, jan1},
		"2006-01-02 15:04:05": {jan2, jan1},
		"d/m/Y":               {"02/01/2020", "01/01/2020"},
	}

	for format, values := range formats {
		t.Run(format, func(t *testing.T) {
			res, err := Compare(Spec{PrimaryValue: values[0], SecondaryValue: values[1], DateFormat: format, Operator: ">"})
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Equal(t, int64(-86400), res.DiffSeconds)
		})
	}
}

func TestCompare_DefaultOperator(t *testing.T) {
	res, err := Compare(Spec{PrimaryValue: jan1, SecondaryValue: jan1})
	require.NoError(t, err)
	assert.Equal(t, operator.Equal, res.Operator)
	assert.True(t, res.Valid)
}
