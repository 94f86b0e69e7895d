/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMessages(t *testing.T) {
	m := DefaultMessages()
	assert.Len(t, m, 6)
	assert.Equal(t, "{attribute} must be repeated exactly.", m[MessageEqual])
	assert.Equal(t, `{attribute} must be greater than or equal to "{compareValue}".`, m[MessageGreaterOrEqual])

	// callers get a copy
	m[MessageEqual] = "changed"
	assert.Equal(t, "{attribute} must be repeated exactly.", DefaultMessages()[MessageEqual])
}

func TestMessages_Render(t *testing.T) {
	params := map[string]string{
		ParamAttribute:    "End date",
		ParamCompareValue: "Start date",
	}

	tests := []struct {
		kind MessageKind
		want string
	}{
		{MessageEqual, "End date must be repeated exactly."},
		{MessageNotEqual, `End date must not be equal to "Start date".`},
		{MessageGreater, `End date must be greater than "Start date".`},
		{MessageGreaterOrEqual, `End date must be greater than or equal to "Start date".`},
		{MessageLess, `End date must be less than "Start date".`},
		{MessageLessOrEqual, `End date must be less than or equal to "Start date".`},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMessages().Render(tt.kind, params))
		})
	}
}

func TestMessages_TemplateFallback(t *testing.T) {
	custom := Messages{MessageGreater: "{attribute} is too early"}
	assert.Equal(t, "{attribute} is too early", custom.Template(MessageGreater))
	assert.Equal(t, DefaultMessages()[MessageLess], custom.Template(MessageLess))
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "plain", FormatMessage("plain", nil))
	assert.Equal(t, "A vs {unknown}", FormatMessage("{attribute} vs {unknown}", map[string]string{ParamAttribute: "A"}))
	assert.Equal(t, "B B", FormatMessage("{compareAttribute} {compareAttribute}", map[string]string{ParamCompareAttribute: "B"}))
}
