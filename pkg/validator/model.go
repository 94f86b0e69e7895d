/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/datecompare/pkg/header"
)

// Model exposes the attributes of the object being validated.
type Model interface {
	// AttributeValue returns the raw value of name and whether it is set.
	AttributeValue(name string) (string, bool)

	// AttributeLabel returns the display label of name.
	AttributeLabel(name string) string
}

// AttributeLister is implemented by models that can enumerate their
// attributes. It is used for "did you mean" hints.
type AttributeLister interface {
	AttributeNames() []string
}

// IDResolver returns the HTML element id of an attribute's input.
type IDResolver func(attribute string) string

// MapModel is a Model backed by maps. It is the document form used by the
// CLI and the API.
type MapModel struct {
	header.Header `json:",inline" yaml:",inline"`

	// Name prefixes generated element ids, e.g. "Booking" -> "Booking_end_date".
	Name       string            `json:"name,omitempty" yaml:"name,omitempty"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	Labels     map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// NewMapModel returns a MapModel over attributes.
func NewMapModel(attributes map[string]string) *MapModel {
	m := &MapModel{Attributes: attributes, Labels: map[string]string{}}
	m.Kind = header.KindModel
	m.APIVersion = header.FullAPIVersion
	return m
}

// AttributeValue implements Model.
func (m *MapModel) AttributeValue(name string) (string, bool) {
	v, ok := m.Attributes[name]
	return v, ok
}

// AttributeLabel implements Model. Without an explicit label the name is
// turned into words, e.g. "start_date" -> "Start Date".
func (m *MapModel) AttributeLabel(name string) string {
	if l, ok := m.Labels[name]; ok && l != "" {
		return l
	}
	return GenerateLabel(name)
}

// AttributeNames implements AttributeLister.
func (m *MapModel) AttributeNames() []string {
	names := make([]string, 0, len(m.Attributes))
	for k := range m.Attributes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GenerateLabel converts an attribute name into a title cased label.
// Word boundaries are "_", "-", "." and lower-to-upper case transitions:
//
//	start_date   -> Start Date
//	endDate      -> End Date
//	checkin.time -> Checkin Time
func GenerateLabel(name string) string {
	var b strings.Builder
	prevUpper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == '.':
			b.WriteRune(' ')
			prevUpper = false
			continue
		case unicode.IsUpper(r):
			if !prevUpper {
				b.WriteRune(' ')
			}
			prevUpper = true
		default:
			prevUpper = false
		}
		b.WriteRune(unicode.ToLower(r))
	}

	words := strings.Fields(b.String())
	// a Caser keeps state and must not be shared between goroutines
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// DefaultIDResolver returns ids derived from the attribute name only.
func DefaultIDResolver() IDResolver {
	return PrefixedIDResolver("")
}

// PrefixedIDResolver returns ids of the form "<prefix>_<attribute>" with
// characters outside [A-Za-z0-9_-] replaced by "_".
func PrefixedIDResolver(prefix string) IDResolver {
	return func(attribute string) string {
		id := sanitizeID(attribute)
		if prefix == "" {
			return id
		}
		return sanitizeID(prefix) + "_" + id
	}
}

func sanitizeID(s string) string {
	s = strings.ReplaceAll(s, "[]", "")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		case r == ']':
			return -1
		default:
			return '_'
		}
	}, s)
}
