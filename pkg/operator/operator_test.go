/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package operator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Operator
		wantErr bool
	}{
		{"empty defaults to equal", "", Equal, false},
		{"equal", "=", Equal, false},
		{"double equal alias", "==", Equal, false},
		{"not equal", "!=", NotEqual, false},
		{"greater", ">", GreaterThan, false},
		{"greater or equal", ">=", GreaterThanOrEqual, false},
		{"less", "<", LessThan, false},
		{"less or equal", "<=", LessThanOrEqual, false},
		{"surrounding space", " >= ", GreaterThanOrEqual, false},
		{"tilde equal", "~=", "", true},
		{"reversed", "=>", "", true},
		{"word", "after", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dcerrors.IsConfigurationError(err), "expected configuration error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Suggestion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=>", `did you mean ">="`},
		{"=<", `did you mean "<="`},
		{"<>", `did you mean "!="`},
		{"gte", `did you mean ">="`},
		{"~=", `did you mean "="`},
		{">>", `did you mean ">"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse("between")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestOperator_Holds(t *testing.T) {
	// diff is secondary minus primary: negative means primary is later
	tests := []struct {
		op                  Operator
		before, same, after bool
	}{
		{Equal, false, true, false},
		{NotEqual, true, false, true},
		{GreaterThan, false, false, true},
		{GreaterThanOrEqual, false, true, true},
		{LessThan, true, false, false},
		{LessThanOrEqual, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.before, tt.op.Holds(60), "primary before secondary")
			assert.Equal(t, tt.same, tt.op.Holds(0), "primary equals secondary")
			assert.Equal(t, tt.after, tt.op.Holds(-60), "primary after secondary")
		})
	}

	assert.False(t, Operator("~=").Holds(0))
}

func TestOperator_Negate(t *testing.T) {
	for _, op := range SupportedOperators() {
		neg := op.Negate()
		assert.True(t, neg.IsValid())
		assert.Equal(t, op, neg.Negate())
		for _, diff := range []int64{-5, 0, 5} {
			assert.NotEqual(t, op.Holds(diff), neg.Holds(diff), "%s vs %s at %d", op, neg, diff)
		}
	}
}

func TestSupportedOperatorsAsStrings(t *testing.T) {
	assert.Equal(t, []string{"=", "==", "!=", ">", ">=", "<", "<="}, SupportedOperatorsAsStrings())
}
