// Package scorer rates achievements against the keywords extracted from a posting.
package scorer

import (
	"github.com/nikogura/cv-tailor/pkg/textutil"
)

// Scorer counts tag hits using a Matcher.
type Scorer struct {
	match Matcher
}

// NewScorer creates a scorer. A nil matcher falls back to SubstringMatch.
func NewScorer(match Matcher) (scorer *Scorer) {
	if match == nil {
		match = SubstringMatch
	}

	scorer = &Scorer{match: match}
	return scorer
}

// Score returns the number of tags hit by at least one keyword. Each tag contributes
// at most 1, so repeating a keyword never changes the result.
func (s *Scorer) Score(tags []string, keywords []string) (score int) {
	keywords = foldAll(keywords)
	for _, tag := range tags {
		if s.hits(textutil.Fold(tag), keywords) {
			score++
		}
	}

	return score
}

// MatchedTags returns the tags that contributed to Score, in tag order.
func (s *Scorer) MatchedTags(tags []string, keywords []string) (matched []string) {
	keywords = foldAll(keywords)
	matched = make([]string, 0)
	for _, tag := range tags {
		if s.hits(textutil.Fold(tag), keywords) {
			matched = append(matched, tag)
		}
	}

	return matched
}

func (s *Scorer) hits(tag string, keywords []string) (hit bool) {
	for _, kw := range keywords {
		if s.match(tag, kw) {
			hit = true
			return hit
		}
	}

	return hit
}

func foldAll(in []string) (out []string) {
	out = make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		out = append(out, textutil.Fold(s))
	}

	return out
}
