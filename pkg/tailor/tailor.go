// Package tailor composes analysis, selection and rendering into résumé and cover letter documents.
package tailor

import (
	"github.com/nikogura/cv-tailor/pkg/analyzer"
	"github.com/nikogura/cv-tailor/pkg/logger"
	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/nikogura/cv-tailor/pkg/renderer"
	"github.com/nikogura/cv-tailor/pkg/selector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// jobExcerptRunes bounds the posting excerpt written to debug logs.
const jobExcerptRunes = 120

// Result is everything one tailoring pass produces.
type Result struct {
	Company           string
	Role              string
	Analysis          analyzer.Analysis
	Selection         selector.Selection
	Resume            string
	CoverLetter       string
	CoverLetterMarkup string
}

// Tailor holds a loaded profile. It is safe for concurrent use: every call works on
// its own analysis and selection and the profile is never modified.
type Tailor struct {
	profile  *profile.Profile
	analyzer *analyzer.Analyzer
	selector *selector.Selector
	logger   *zap.Logger
	role     string
}

// Option configures a Tailor.
type Option func(*Tailor)

// WithLogger sets the logger for debug output. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tailor) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithSelector replaces the default selector, e.g. to change the tie-break.
func WithSelector(s *selector.Selector) Option {
	return func(t *Tailor) {
		if s != nil {
			t.selector = s
		}
	}
}

// WithRole sets the role title named in the cover letter. Empty keeps renderer.DefaultRole.
func WithRole(role string) Option {
	return func(t *Tailor) {
		if role != "" {
			t.role = role
		}
	}
}

// New creates a Tailor for p. The profile should already be validated.
func New(p profile.Profile, opts ...Option) (t *Tailor) {
	t = &Tailor{
		profile:  &p,
		analyzer: analyzer.New(p.Skills.All),
		selector: selector.New(),
		logger:   zap.NewNop(),
		role:     renderer.DefaultRole,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Analyze classifies jobText and selects the matching experience.
func (t *Tailor) Analyze(jobText string) (analysis analyzer.Analysis, selection selector.Selection) {
	analysis = t.analyzer.Analyze(jobText)
	selection = t.selector.Select(t.profile, analysis)

	companies := make([]string, 0, len(selection.Entries))
	for _, e := range selection.Entries {
		companies = append(companies, e.Experience.Company)
	}

	t.logger.Debug("analyzed job description",
		zap.String("job_excerpt", logger.Excerpt(jobText, jobExcerptRunes)),
		zap.String("focus", string(analysis.Focus)),
		zap.Int("required_years", analysis.RequiredYears),
		zap.Strings("required_skills", analysis.RequiredSkills),
		zap.Strings("keywords", analysis.Keywords),
		zap.Strings("selected", companies),
	)

	return analysis, selection
}

// TailorResume renders the résumé for jobText.
func (t *Tailor) TailorResume(jobText string) (doc string, err error) {
	analysis, selection := t.Analyze(jobText)

	doc, err = t.renderResume(analysis, selection)
	return doc, err
}

// TailorCoverLetter renders the cover letter markup for jobText. An empty company
// becomes renderer.DefaultCompany.
func (t *Tailor) TailorCoverLetter(jobText, company string) (doc string, err error) {
	analysis, selection := t.Analyze(jobText)

	text := t.composeLetter(analysis, selection, company)

	doc, err = renderer.RenderCoverLetterMarkup(text, t.profile, company)
	if err != nil {
		err = errors.Wrap(err, "failed to render cover letter")
		return doc, err
	}

	return doc, err
}

// Tailor produces both documents from a single analysis.
func (t *Tailor) Tailor(jobText, company string) (result Result, err error) {
	if company == "" {
		company = renderer.DefaultCompany
	}

	result.Company = company
	result.Role = t.role
	result.Analysis, result.Selection = t.Analyze(jobText)

	result.Resume, err = t.renderResume(result.Analysis, result.Selection)
	if err != nil {
		return result, err
	}

	result.CoverLetter = t.composeLetter(result.Analysis, result.Selection, company)

	result.CoverLetterMarkup, err = renderer.RenderCoverLetterMarkup(result.CoverLetter, t.profile, company)
	if err != nil {
		err = errors.Wrap(err, "failed to render cover letter")
		return result, err
	}

	t.logger.Debug("rendered documents",
		zap.Int("resume_bytes", len(result.Resume)),
		zap.Int("cover_letter_bytes", len(result.CoverLetterMarkup)),
	)

	return result, err
}

func (t *Tailor) renderResume(analysis analyzer.Analysis, selection selector.Selection) (doc string, err error) {
	doc, err = renderer.RenderResume(renderer.ResumeInput{
		Profile:          t.profile,
		Summary:          t.profile.Summary(analysis.Focus),
		Selection:        selection,
		CoreSkills:       selector.FilterSkills(t.profile.Skills.Core, analysis.RequiredSkills),
		ExperienceSkills: selector.FilterSkills(t.profile.Skills.Experience, analysis.RequiredSkills),
	})
	if err != nil {
		err = errors.Wrap(err, "failed to render resume")
		return doc, err
	}

	return doc, err
}

func (t *Tailor) composeLetter(analysis analyzer.Analysis, selection selector.Selection, company string) (text string) {
	text = renderer.ComposeCoverLetter(renderer.CoverLetterInput{
		Profile:   t.profile,
		Analysis:  analysis,
		Selection: selection,
		Company:   company,
		Role:      t.role,
	})
	return text
}
