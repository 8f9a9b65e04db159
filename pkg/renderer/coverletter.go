package renderer

import (
	"fmt"
	"strings"

	"github.com/nikogura/cv-tailor/pkg/analyzer"
	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/nikogura/cv-tailor/pkg/selector"
	"github.com/nikogura/cv-tailor/pkg/textutil"
)

const (
	// DefaultCompany is used when no company name is given.
	DefaultCompany = "Your Company"
	// DefaultRole is used when no role title is given.
	DefaultRole = "Software Engineer"
	// MaxLetterSkills caps the skills named in the cover letter.
	MaxLetterSkills = 5

	greeting = "Dear Hiring Manager,"
	closing  = "Best regards,"
)

// CoverLetterInput is everything the plain-text cover letter draws on.
type CoverLetterInput struct {
	Profile   *profile.Profile
	Analysis  analyzer.Analysis
	Selection selector.Selection
	Company   string
	Role      string
}

// ComposeCoverLetter writes the plain-text letter. Paragraphs are separated by blank
// lines: greeting, opening, an optional experience paragraph, an optional skills
// paragraph, the closing pitch, thanks, and the signature block.
func ComposeCoverLetter(in CoverLetterInput) (letter string) {
	company := orDefault(in.Company, DefaultCompany)
	role := orDefault(in.Role, DefaultRole)
	p := in.Profile

	paragraphs := []string{
		greeting,
		fmt.Sprintf("I am writing to apply for the %s position at %s. With over %d years of experience "+
			"building fast, accessible web applications, I am confident I can make a meaningful contribution to your team.",
			role, company, p.YearsExperience),
	}

	if para, ok := experienceParagraph(in.Selection, company); ok {
		paragraphs = append(paragraphs, para)
	}

	if skills := in.Analysis.RequiredSkills; len(skills) > 0 {
		skills = skills[:min(len(skills), MaxLetterSkills)]
		paragraphs = append(paragraphs, fmt.Sprintf("My technical expertise includes %s, which lines up with "+
			"what you are looking for. I have a track record of shipping maintainable solutions that move "+
			"business metrics without compromising code quality.", strings.Join(skills, ", ")))
	}

	paragraphs = append(paragraphs,
		fmt.Sprintf("What draws me to %s is the chance to work on problems that reach users at scale. "+
			"I would bring a habit of measuring before optimizing and a strong focus on the people using the product.",
			company),
		thanks(company),
		strings.Join(nonEmpty(closing, p.Name, p.Email, p.Phone), "\n"),
	)

	letter = strings.Join(paragraphs, "\n\n")
	return letter
}

// experienceParagraph quotes the first achievement of the top-ranked entry.
func experienceParagraph(sel selector.Selection, company string) (para string, ok bool) {
	if sel.Empty() || len(sel.Entries[0].Achievements) == 0 {
		return para, ok
	}

	top := sel.Entries[0]
	para = fmt.Sprintf("At %s, I %s This experience has prepared me well for the challenges and opportunities at %s.",
		top.Experience.Company, textutil.Lower(top.Achievements[0].Text), company)
	ok = true
	return para, ok
}

func thanks(company string) (para string) {
	para = fmt.Sprintf("Thank you for considering my application. I look forward to discussing how my "+
		"background and skills can contribute to %s's continued success.", company)
	return para
}

type letterView struct {
	Name     string
	Address  []string
	Company  string
	Greeting string
	Body     []string
	Thanks   string
	Closing  string
}

// RenderCoverLetterMarkup converts the plain-text letter into the letter skeleton. The
// text is escaped and split on blank lines; the first paragraph (greeting) and the last
// two (thanks and signature) are dropped because the skeleton supplies its own.
func RenderCoverLetterMarkup(text string, p *profile.Profile, company string) (doc string, err error) {
	company = orDefault(company, DefaultCompany)

	view := letterView{
		Name:     Escape(p.Name),
		Address:  EscapeAll(nonEmpty(p.Name, p.Email, p.Phone)),
		Company:  Escape(company),
		Greeting: greeting,
		Body:     letterBody(Escape(text)),
		Thanks:   Escape(thanks(company)),
		Closing:  closing,
	}

	doc, err = execute("cover_letter.tex.tmpl", view)
	return doc, err
}

func letterBody(escaped string) (body []string) {
	body = make([]string, 0)

	paragraphs := strings.Split(escaped, "\n\n")
	if len(paragraphs) <= 3 {
		return body
	}

	for _, para := range paragraphs[1 : len(paragraphs)-2] {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		body = append(body, para)
	}

	return body
}

func orDefault(s, def string) (out string) {
	out = strings.TrimSpace(s)
	if out == "" {
		out = def
	}
	return out
}

func nonEmpty(values ...string) (out []string) {
	out = make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
