// Package textutil holds the case handling shared by the analyzer, scorer and renderer.
package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold case-folds s for case-insensitive matching.
// A fresh Caser is built per call because Casers are not safe for concurrent use.
func Fold(s string) (folded string) {
	folded = cases.Fold().String(s)
	return folded
}

// Lower lower-cases s for display, e.g. when a sentence is inlined into prose.
func Lower(s string) (lowered string) {
	lowered = cases.Lower(language.English).String(s)
	return lowered
}

// Dedupe returns values with repeats removed, keeping first occurrences in order.
func Dedupe(values []string) (unique []string) {
	unique = make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return unique
}
