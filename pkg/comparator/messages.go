/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package comparator

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Message placeholders.
const (
	ParamAttribute        = "attribute"
	ParamCompareValue     = "compareValue"
	ParamCompareAttribute = "compareAttribute"
)

var (
	//go:embed data/messages.yaml
	messageData []byte

	messagesOnce   sync.Once
	cachedMessages Messages
	messagesErr    error
)

// Messages maps each kind to a template.
type Messages map[MessageKind]string

// loadMessages parses the embedded templates once; the data is compiled in,
// so the parsed copy is shared for the lifetime of the process.
func loadMessages() (Messages, error) {
	messagesOnce.Do(func() {
		var m Messages
		if err := yaml.Unmarshal(messageData, &m); err != nil {
			messagesErr = fmt.Errorf("failed to unmarshal message templates: %w", err)
			return
		}
		for _, k := range MessageKinds() {
			if m[k] == "" {
				messagesErr = fmt.Errorf("missing message template for %q", k)
				return
			}
		}
		cachedMessages = m
	})
	return cachedMessages, messagesErr
}

// DefaultMessages returns a copy of the built-in templates.
// It panics if the embedded templates are malformed.
func DefaultMessages() Messages {
	m, err := loadMessages()
	if err != nil {
		panic(err)
	}
	out := make(Messages, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Template returns the template for kind, falling back to the built-in one.
func (m Messages) Template(kind MessageKind) string {
	if t, ok := m[kind]; ok && t != "" {
		return t
	}
	defaults, err := loadMessages()
	if err != nil {
		return ""
	}
	return defaults[kind]
}

// Render formats the template for kind with params.
func (m Messages) Render(kind MessageKind, params map[string]string) string {
	return FormatMessage(m.Template(kind), params)
}

// FormatMessage replaces {name} placeholders in template with params[name].
// Unknown placeholders are left untouched.
func FormatMessage(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
