// Package analyzer classifies a job posting and extracts the signals the selector scores against.
package analyzer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/nikogura/cv-tailor/pkg/textutil"
)

// Analysis is the per-posting classification. It is derived fresh for every run.
type Analysis struct {
	Focus          profile.Focus `json:"focus"`
	RequiredSkills []string      `json:"required_skills"`
	RequiredYears  int           `json:"required_years"`
	Keywords       []string      `json:"keywords"`
}

// Analyzer matches postings against a fixed skill vocabulary.
type Analyzer struct {
	skills []string
}

// New creates an analyzer for the given skill vocabulary (normally Profile.Skills.All).
func New(skills []string) (a *Analyzer) {
	a = &Analyzer{
		skills: append([]string(nil), skills...),
	}
	return a
}

// Analyze classifies jobText. It never fails: text without any recognisable signal
// yields the frontend focus, DefaultRequiredYears and empty skill and keyword sets.
func (a *Analyzer) Analyze(jobText string) (analysis Analysis) {
	folded := textutil.Fold(jobText)

	analysis = Analysis{
		Focus:          classify(folded),
		RequiredSkills: a.requiredSkills(folded),
		RequiredYears:  requiredYears(folded),
		Keywords:       extractKeywords(folded),
	}

	return analysis
}

// classify runs the focus cascade; the first matching branch wins.
func classify(folded string) (focus profile.Focus) {
	if containsAny(folded, fullstackPhrases) {
		focus = profile.FocusFullstack
		return focus
	}

	if countContained(folded, backendTerms) > fullstackThreshold {
		focus = profile.FocusFullstack
		return focus
	}

	if containsAny(folded, performanceTerms) {
		focus = profile.FocusPerformance
		return focus
	}

	focus = profile.FocusFrontend
	return focus
}

// requiredSkills keeps the vocabulary order.
func (a *Analyzer) requiredSkills(folded string) (skills []string) {
	skills = make([]string, 0)
	for _, skill := range a.skills {
		if strings.Contains(folded, textutil.Fold(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// requiredYears returns the first stated figure; later mentions are ignored.
func requiredYears(folded string) (years int) {
	years = DefaultRequiredYears

	match := yearsPattern.FindStringSubmatch(folded)
	if match == nil {
		return years
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return years
	}

	years = n
	return years
}

// extractKeywords returns the sorted union of every group's captures.
func extractKeywords(folded string) (keywords []string) {
	set := make(map[string]struct{})

	for _, group := range KeywordGroups {
		for _, match := range group.Pattern.FindAllStringSubmatch(folded, -1) {
			for _, capture := range match[1:] {
				if capture == "" {
					continue
				}
				set[capture] = struct{}{}
			}
		}
	}

	keywords = make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	return keywords
}

func containsAny(text string, terms []string) (found bool) {
	for _, term := range terms {
		if strings.Contains(text, term) {
			found = true
			return found
		}
	}
	return found
}

func countContained(text string, terms []string) (count int) {
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}
