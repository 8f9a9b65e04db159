// Package renderer turns a selection into LaTeX documents and compiles them.
package renderer

import "strings"

type escapeRule struct {
	old string
	new string
}

// Applied in order.
//
//nolint:gochecknoglobals // Escaping table
var escapeRules = []escapeRule{
	{old: "&", new: `\&`},
	{old: "%", new: `\%`},
	{old: "$", new: `\$`},
	{old: "#", new: `\#`},
}

// Escape makes s safe to interpolate into LaTeX body text. Only the characters that
// occur in profile and posting text are handled: & % $ #.
func Escape(s string) (escaped string) {
	escaped = s
	for _, rule := range escapeRules {
		escaped = strings.ReplaceAll(escaped, rule.old, rule.new)
	}
	return escaped
}

// EscapeAll escapes every element of in.
func EscapeAll(in []string) (out []string) {
	out = make([]string, len(in))
	for i, s := range in {
		out[i] = Escape(s)
	}
	return out
}
