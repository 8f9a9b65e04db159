package renderer

import (
	"strings"

	"github.com/nikogura/cv-tailor/pkg/profile"
	"github.com/nikogura/cv-tailor/pkg/selector"
)

// ResumeInput is everything the résumé template shows.
type ResumeInput struct {
	Profile          *profile.Profile
	Summary          string
	Selection        selector.Selection
	CoreSkills       []string
	ExperienceSkills []string
}

type link struct {
	Target string
	Label  string
}

type experienceView struct {
	Title        string
	Organization string
	Period       string
	Achievements []string
}

type lineView struct {
	Institution string
	Degree      string
	Title       string
	Achievement string
	Year        string
}

// resumeView holds only escaped values.
type resumeView struct {
	Name             string
	Links            []link
	Summary          string
	Experience       []experienceView
	CoreSkills       []string
	ExperienceSkills []string
	Education        []lineView
	Awards           []lineView
}

// RenderResume fills the résumé skeleton. Every profile and selection value is escaped
// before it reaches the template.
func RenderResume(in ResumeInput) (doc string, err error) {
	p := in.Profile

	view := resumeView{
		Name:             Escape(p.Name),
		Links:            headerLinks(p),
		Summary:          Escape(in.Summary),
		Experience:       make([]experienceView, 0, len(in.Selection.Entries)),
		CoreSkills:       EscapeAll(in.CoreSkills),
		ExperienceSkills: EscapeAll(in.ExperienceSkills),
	}

	for _, entry := range in.Selection.Entries {
		ev := experienceView{
			Title:        Escape(entry.Experience.Title),
			Organization: Escape(organization(entry.Experience)),
			Period:       Escape(entry.Experience.Period),
			Achievements: make([]string, 0, len(entry.Achievements)),
		}
		for _, a := range entry.Achievements {
			ev.Achievements = append(ev.Achievements, Escape(a.Text))
		}
		view.Experience = append(view.Experience, ev)
	}

	for _, e := range p.Education {
		view.Education = append(view.Education, lineView{
			Institution: Escape(e.Institution),
			Degree:      Escape(e.Degree),
			Year:        Escape(e.Year),
		})
	}

	for _, a := range p.Awards {
		view.Awards = append(view.Awards, lineView{
			Title:       Escape(a.Title),
			Achievement: Escape(a.Achievement),
			Year:        Escape(a.Year),
		})
	}

	doc, err = execute("resume.tex.tmpl", view)
	return doc, err
}

// headerLinks builds the contact line. Empty fields are left out.
func headerLinks(p *profile.Profile) (links []link) {
	links = make([]link, 0, 3)

	if p.Email != "" {
		links = append(links, link{Target: Escape("mailto:" + p.Email), Label: Escape(p.Email)})
	}

	if digits := PhoneDigits(p.Phone); digits != "" {
		links = append(links, link{
			Target: "https://api.whatsapp.com/send/?phone=" + digits,
			Label:  Escape(p.Phone),
		})
	}

	if p.LinkedIn != "" {
		links = append(links, link{Target: Escape("https://" + p.LinkedIn), Label: Escape(p.LinkedIn)})
	}

	return links
}

// PhoneDigits strips everything but digits, so "+1 555 010 0199" becomes "15550100199".
func PhoneDigits(phone string) (digits string) {
	digits = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return digits
}

// organization renders "Company (Category), Location", dropping empty parts.
func organization(e profile.Experience) (org string) {
	org = e.Company
	if e.Category != "" {
		org += " (" + e.Category + ")"
	}
	if e.Location != "" {
		org += ", " + e.Location
	}
	return org
}
