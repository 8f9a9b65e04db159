// Package selector picks and ranks the work-history entries worth showing for a posting.
package selector

import (
	"sort"

	"github.com/nikogura/cv-tailor/pkg/analyzer"
	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/nikogura/cv-tailor/pkg/scorer"
)

const (
	// MaxEntries caps the number of experiences in a Selection.
	MaxEntries = 6
	// MaxAchievements caps the achievements kept per experience.
	MaxAchievements = 3
	// MinFilteredSkills is the smallest filtered skill list FilterSkills will return.
	MinFilteredSkills = 3
	// FallbackSkills is how many tier entries FilterSkills returns when filtering leaves too few.
	FallbackSkills = 6
)

// Entry is one selected experience with the achievements retained for it.
type Entry struct {
	Experience   profile.Experience    `json:"experience"`
	Achievements []profile.Achievement `json:"achievements"`
	Score        int                   `json:"score"`
}

// Selection is the ranked, capped list of entries for one posting.
type Selection struct {
	Entries []Entry `json:"entries"`
}

// Empty reports whether nothing in the profile scored against the posting.
func (s Selection) Empty() (empty bool) {
	empty = len(s.Entries) == 0
	return empty
}

// Selector scores and ranks profile experiences.
type Selector struct {
	scorer *scorer.Scorer
	order  PeriodOrder
}

// Option configures a Selector.
type Option func(*Selector)

// WithMatcher sets the keyword matching mode used for scoring.
func WithMatcher(m scorer.Matcher) Option {
	return func(s *Selector) {
		s.scorer = scorer.NewScorer(m)
	}
}

// WithPeriodOrder sets the tie-break for experiences with equal scores.
func WithPeriodOrder(order PeriodOrder) Option {
	return func(s *Selector) {
		if order != nil {
			s.order = order
		}
	}
}

// New creates a selector using substring matching and the lexical tie-break unless
// overridden.
func New(opts ...Option) (s *Selector) {
	s = &Selector{
		scorer: scorer.NewScorer(scorer.SubstringMatch),
		order:  LexicalPeriodOrder,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Select scores every achievement of p against analysis and returns the ranked entries.
// Achievements scoring 0 are dropped, each experience keeps its first MaxAchievements
// scoring achievements in authored order, and experiences with none are left out.
func (s *Selector) Select(p *profile.Profile, analysis analyzer.Analysis) (selection Selection) {
	entries := make([]Entry, 0, len(p.Experience))

	for _, exp := range p.Experience {
		entry, ok := s.scoreExperience(exp, analysis.Keywords)
		if ok {
			entries = append(entries, entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return s.order(entries[i].Experience.Period, entries[j].Experience.Period) < 0
	})

	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	selection = Selection{Entries: entries}
	return selection
}

func (s *Selector) scoreExperience(exp profile.Experience, keywords []string) (entry Entry, ok bool) {
	entry.Experience = exp
	entry.Achievements = make([]profile.Achievement, 0, MaxAchievements)

	for _, ach := range exp.Achievements {
		if len(entry.Achievements) == MaxAchievements {
			break
		}

		score := s.scorer.Score(ach.Tags, keywords)
		if score == 0 {
			continue
		}

		entry.Achievements = append(entry.Achievements, ach)
		entry.Score += score
	}

	ok = len(entry.Achievements) > 0
	return entry, ok
}

// FilterSkills keeps the tier entries that appear in required, in tier order. When fewer
// than MinFilteredSkills survive, the first FallbackSkills entries of the tier are
// returned unfiltered instead.
func FilterSkills(tier []string, required []string) (skills []string) {
	wanted := make(map[string]struct{}, len(required))
	for _, r := range required {
		wanted[r] = struct{}{}
	}

	skills = make([]string, 0, len(tier))
	for _, skill := range tier {
		if _, ok := wanted[skill]; ok {
			skills = append(skills, skill)
		}
	}

	if len(skills) >= MinFilteredSkills {
		return skills
	}

	n := min(len(tier), FallbackSkills)
	skills = append(make([]string, 0, n), tier[:n]...)
	return skills
}
