/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import "strings"

// FilterRules returns the rules narrowed to attributes matching at least one
// pattern. Rules left without attributes are dropped. An empty pattern list
// returns rules unchanged.
//
// Supports wildcard patterns:
//   - "prefix*" matches attributes starting with "prefix"
//   - "*suffix" matches attributes ending with "suffix"
//   - "*contains*" matches attributes containing "contains"
//   - "exact" matches attributes exactly
func FilterRules(rules []Rule, patterns []string) []Rule {
	if len(patterns) == 0 {
		return rules
	}

	result := make([]Rule, 0, len(rules))
	for _, r := range rules {
		attrs := make([]string, 0, len(r.Attributes))
		for _, a := range r.Attributes {
			if matchesAny(a, patterns) {
				attrs = append(attrs, a)
			}
		}
		if len(attrs) == 0 {
			continue
		}
		r.Attributes = attrs
		result = append(result, r)
	}
	return result
}

func matchesAny(key string, patterns []string) bool {
	for _, p := range patterns {
		if MatchesPattern(key, p) {
			return true
		}
	}
	return false
}

// MatchesPattern checks if a key matches a wildcard pattern.
func MatchesPattern(key, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		substr := strings.Trim(pattern, "*")
		return strings.Contains(key, substr)
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(key, strings.TrimPrefix(pattern, "*"))
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
	}

	return false
}
