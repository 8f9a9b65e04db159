package scorer

import (
	"strings"

	"github.com/pkg/errors"
)

// Matcher reports whether keyword counts as a hit on tag. Both arguments are already
// case-folded and keyword is never empty.
type Matcher func(tag, keyword string) bool

// SubstringMatch treats a keyword as a hit when it occurs anywhere inside the tag,
// so "react" hits "react-query".
func SubstringMatch(tag, keyword string) (hit bool) {
	hit = strings.Contains(tag, keyword)
	return hit
}

// ExactMatch only counts whole-tag equality.
func ExactMatch(tag, keyword string) (hit bool) {
	hit = tag == keyword
	return hit
}

const (
	// MatchSubstring is the configuration name of SubstringMatch.
	MatchSubstring = "substring"
	// MatchExact is the configuration name of ExactMatch.
	MatchExact = "exact"
)

//nolint:gochecknoglobals // Matcher registry
var Matchers = map[string]Matcher{
	MatchSubstring: SubstringMatch,
	MatchExact:     ExactMatch,
}

// MatcherByName looks up a registered matcher. An empty name selects the default.
func MatcherByName(name string) (m Matcher, err error) {
	if name == "" {
		name = MatchSubstring
	}

	m, ok := Matchers[name]
	if !ok {
		err = errors.Errorf("unknown keyword match mode %q (want %s or %s)", name, MatchSubstring, MatchExact)
		return m, err
	}

	return m, err
}
