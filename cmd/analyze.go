package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/cv-tailor/pkg/analyzer"
	"github.com/nikogura/cv-tailor/pkg/jd"
	"github.com/nikogura/cv-tailor/pkg/scorer"
	"github.com/nikogura/cv-tailor/pkg/selector"
	"github.com/nikogura/cv-tailor/pkg/tailor"
	"github.com/nikogura/cv-tailor/pkg/textutil"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Report styles
var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	reportLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Width(16)

	reportEntryStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	reportMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

//nolint:gochecknoglobals // Cobra boilerplate
var analyzeCmd = &cobra.Command{
	Use:   "analyze [jd-file-or-url]",
	Short: "Show how a job posting is classified and which experience it selects",
	Long: `Analyze a job posting without writing any files.

Prints the detected focus, the required years, the profile skills the posting
names, the extracted keywords and the ranked experience selection with the tags
that matched.

Example:
  cv-tailor analyze jd.txt
  cv-tailor analyze https://example.com/jobs/123 --profile ~/cv/profile.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) (err error) {
	var s session
	s, err = loadSession(cmd, currentOverrides())
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	var jobText string
	if len(args) == 0 {
		jobText, err = fetchAndLogJD(cmd.Context(), jd.StdinInput)
	} else {
		jobText, err = fetchAndLogJD(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	var sel *selector.Selector
	sel, err = s.cfg.Selector()
	if err != nil {
		return err
	}

	var match scorer.Matcher
	match, err = scorer.MatcherByName(s.cfg.Selection.KeywordMatch)
	if err != nil {
		return err
	}

	t := tailor.New(s.profile, tailor.WithLogger(s.logger), tailor.WithSelector(sel))
	analysis, selection := t.Analyze(jobText)

	fmt.Print(analysisReport(analysis, selection, scorer.NewScorer(match)))

	return err
}

// analysisReport renders the classification and the ranked selection.
func analysisReport(analysis analyzer.Analysis, selection selector.Selection, sc *scorer.Scorer) (report string) {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("Job analysis"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(reportLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Focus", string(analysis.Focus))
	row("Years", fmt.Sprintf("%d+", analysis.RequiredYears))
	row("Skills", listOrNone(analysis.RequiredSkills))
	row("Keywords", listOrNone(analysis.Keywords))

	b.WriteString("\n")
	b.WriteString(reportTitleStyle.Render("Selected experience"))
	b.WriteString("\n")

	if selection.Empty() {
		b.WriteString(reportEntryStyle.Render(reportMutedStyle.Render("nothing in the profile matched")))
		b.WriteString("\n")
		report = b.String()
		return report
	}

	for i, entry := range selection.Entries {
		var tags []string
		for _, a := range entry.Achievements {
			tags = append(tags, sc.MatchedTags(a.Tags, analysis.Keywords)...)
		}

		line := fmt.Sprintf("%d. %s, %s (%s)  score %d", i+1, entry.Experience.Title, entry.Experience.Company, entry.Experience.Period, entry.Score)
		b.WriteString(reportEntryStyle.Render(line))
		b.WriteString("\n")
		b.WriteString(reportEntryStyle.Render(reportMutedStyle.Render("   matched: " + strings.Join(textutil.Dedupe(tags), ", "))))
		b.WriteString("\n")
	}

	report = b.String()
	return report
}

func listOrNone(items []string) (out string) {
	if len(items) == 0 {
		out = reportMutedStyle.Render("none")
		return out
	}

	out = strings.Join(items, ", ")
	return out
}
