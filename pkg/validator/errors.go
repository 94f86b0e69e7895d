/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

// ErrorSink receives failure messages, typically the error collection of the
// form or model being validated.
type ErrorSink interface {
	AddError(attribute, message string)
	HasErrors(attribute string) bool
}

// Errors groups failure messages by attribute. It implements ErrorSink and is
// not safe for concurrent use.
type Errors map[string][]string

// NewErrors returns an empty Errors.
func NewErrors() Errors {
	return make(Errors)
}

// AddError appends message to attribute.
func (e Errors) AddError(attribute, message string) {
	e[attribute] = append(e[attribute], message)
}

// HasErrors reports whether attribute has at least one message.
func (e Errors) HasErrors(attribute string) bool {
	return len(e[attribute]) > 0
}

// First returns the first message of attribute, or "".
func (e Errors) First(attribute string) string {
	if msgs := e[attribute]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}
