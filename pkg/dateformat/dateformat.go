/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package dateformat converts the date format notations found in form
// validation rules into Go time layouts and parses values with them.
//
// # Supported Notations
//
// PHP date() characters, as used by server-side form frameworks:
//
//	Y-m-d H:i:s      -> 2006-01-02 15:04:05
//	d/m/Y            -> 02/01/2006
//	D, d M Y H:i:s O -> Mon, 02 Jan 2006 15:04:05 -0700
//
// When parsing, d, m, h, i and s accept one or two digits, so "2020-1-5"
// matches Y-m-d. A two-digit year y of 69 reads as 2069. Day of year (z) and
// timezone identifiers (e) are not supported.
//
// Moment style tokens, as used by client-side pickers:
//
//	YYYY-MM-DD HH:mm:ss -> 2006-01-02 15:04:05
//	DD.MM.YYYY [at] HH:mm -> 02.01.2006 at 15:04
//
// Go layouts are detected by the reference year 2006 and used unchanged.
//
// PHP and moment formats only parse fractional seconds they declare. Go
// layouts keep Go's parsing rules.
//
// Literal digits are rejected in PHP and moment formats because Go layouts
// cannot escape them.
package dateformat

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	dcerrors "github.com/NVIDIA/datecompare/pkg/errors"
)

// DefaultFormat is the format used when a rule does not set one.
const DefaultFormat = "Y-m-d H:i:s"

// layouts caches converted formats; rule sets reuse a handful of formats.
var layouts sync.Map

// compiled holds the Go layouts derived from one format.
type compiled struct {
	// parse accepts values with or without leading zeros where PHP does.
	parse string
	// render writes zero-padded fields.
	render string
	// allowFraction is set for Go layouts and for layouts that declare
	// fractional seconds.
	allowFraction bool
	// pivotYear69 maps two-digit year 69 to 2069 like PHP.
	pivotYear69 bool
}

// phpTokens are the render layouts of PHP date() characters. Day of year (z)
// and timezone identifiers (e) have no Go layout and are rejected.
var phpTokens = map[rune]string{
	'd': "02",
	'j': "2",
	'D': "Mon",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'a': "pm",
	'A': "PM",
	'g': "3",
	'h': "03",
	'G': "15",
	'H': "15",
	'i': "04",
	's': "05",
	'v': "000",
	'u': "000000",
	'T': "MST",
	'O': "-0700",
	'P': "-07:00",
	'p': "Z07:00",
}

// phpParseTokens override phpTokens when parsing: PHP reads one or two
// digits for these fields.
var phpParseTokens = map[rune]string{
	'd': "2",
	'm': "1",
	'h': "3",
	'i': "4",
	's': "5",
}

// moment tokens ordered longest first so that prefixes do not shadow them
var momentTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DDDD", "002"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSSSSS", "000000"},
	{"SSS", "000"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
}

// Notation identifies how a format string is written.
type Notation string

const (
	NotationPHP    Notation = "php"
	NotationMoment Notation = "moment"
	NotationGo     Notation = "go"
)

// Detect guesses the notation of format.
func Detect(format string) Notation {
	switch {
	case strings.Contains(format, "2006"):
		return NotationGo
	case strings.Contains(format, "YY"),
		strings.Contains(format, "DD"),
		strings.Contains(format, "HH"),
		strings.Contains(format, "mm"),
		strings.Contains(format, "ss"):
		return NotationMoment
	default:
		return NotationPHP
	}
}

// Layout converts format into the Go time layout used to render values. An
// empty format means DefaultFormat. Unsupported characters return an
// ErrCodeInvalidConfiguration error.
func Layout(format string) (string, error) {
	c, err := compile(format)
	if err != nil {
		return "", err
	}
	return c.render, nil
}

func compile(format string) (*compiled, error) {
	if format == "" {
		format = DefaultFormat
	}
	if cached, ok := layouts.Load(format); ok {
		return cached.(*compiled), nil
	}

	var (
		c   compiled
		err error
	)
	switch Detect(format) {
	case NotationGo:
		c.parse, c.render = format, format
		c.allowFraction = true
	case NotationMoment:
		c.render, err = fromMoment(format)
		c.parse = c.render
	default:
		c.parse, c.render, err = fromPHP(format)
		c.pivotYear69 = hasTwoDigitYear(c.parse)
	}
	if err != nil {
		return nil, dcerrors.WrapWithContext(dcerrors.ErrCodeInvalidConfiguration,
			"unsupported date format", err, map[string]any{"format": format})
	}
	if hasFractionalSeconds(c.parse) {
		c.allowFraction = true
	}

	layouts.Store(format, &c)
	return &c, nil
}

// Parse parses value using format. Values without a zone are read as UTC.
// PHP and moment formats reject fractional seconds they do not declare.
func Parse(format, value string) (time.Time, error) {
	c, err := compile(format)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(c.parse, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q with format %q: %w", value, format, err)
	}
	if !c.allowFraction && t.Nanosecond() != 0 {
		return time.Time{}, fmt.Errorf("failed to parse %q with format %q: unexpected fractional seconds", value, format)
	}
	if c.pivotYear69 && t.Year() == 1969 {
		t = t.AddDate(100, 0, 0)
	}
	return t, nil
}

// Format renders t using format. Used to echo constants back in messages.
func Format(format string, t time.Time) (string, error) {
	c, err := compile(format)
	if err != nil {
		return "", err
	}
	return t.Format(c.render), nil
}

func fromPHP(format string) (string, string, error) {
	var parse, render strings.Builder
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			// escaped character is copied as a literal
			i++
			if i >= len(runes) {
				return "", "", fmt.Errorf("trailing escape character")
			}
			if err := writeLiteral(&parse, runes[i]); err != nil {
				return "", "", err
			}
			render.WriteRune(runes[i])
		case r == '!' || r == '|':
			// reset markers; unset fields are already zero in Go
		case unicode.IsLetter(r):
			tok, ok := phpTokens[r]
			if !ok {
				return "", "", fmt.Errorf("unsupported format character %q at position %d", r, i)
			}
			render.WriteString(tok)
			parse.WriteString(parseToken(parse.String(), r, tok))
		default:
			if err := writeLiteral(&parse, r); err != nil {
				return "", "", err
			}
			render.WriteRune(r)
		}
	}
	return parse.String(), render.String(), nil
}

// parseToken returns the lenient layout for r unless it would merge with the
// preceding chunk into another Go token ("1"+"5" reads as hour, "_"+"2" as a
// space padded day).
func parseToken(prev string, r rune, render string) string {
	tok, ok := phpParseTokens[r]
	if !ok {
		return render
	}
	if prev != "" {
		last := prev[len(prev)-1]
		if (last == '1' && tok[0] == '5') || (last == '_' && tok[0] == '2') {
			return render
		}
	}
	return tok
}

func fromMoment(format string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return "", fmt.Errorf("unterminated literal at position %d", i)
			}
			for _, r := range format[i+1 : i+end] {
				if err := writeLiteral(&b, r); err != nil {
					return "", err
				}
			}
			i += end + 1
			continue
		}

		matched := false
		for _, mt := range momentTokens {
			if strings.HasPrefix(format[i:], mt.token) {
				b.WriteString(mt.layout)
				i += len(mt.token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		r, size := utf8.DecodeRuneInString(format[i:])
		if err := writeLiteral(&b, r); err != nil {
			return "", err
		}
		i += size
	}
	return b.String(), nil
}

func writeLiteral(b *strings.Builder, r rune) error {
	if unicode.IsDigit(r) {
		return fmt.Errorf("literal digit %q cannot be expressed in a Go layout", r)
	}
	b.WriteRune(r)
	return nil
}

// hasFractionalSeconds reports whether layout contains a Go fractional second
// chunk: a period or comma followed by a run of 0s or 9s and no other digit.
func hasFractionalSeconds(layout string) bool {
	for i := 0; i+1 < len(layout); i++ {
		if layout[i] != '.' && layout[i] != ',' {
			continue
		}
		ch := layout[i+1]
		if ch != '0' && ch != '9' {
			continue
		}
		j := i + 1
		for j < len(layout) && layout[j] == ch {
			j++
		}
		if j == len(layout) || layout[j] < '0' || layout[j] > '9' {
			return true
		}
	}
	return false
}

// hasTwoDigitYear reports whether layout holds a "06" chunk outside "2006".
func hasTwoDigitYear(layout string) bool {
	return strings.Contains(strings.ReplaceAll(layout, "2006", ""), "06")
}
