package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikogura/cv-tailor/pkg/jd"
	"github.com/nikogura/cv-tailor/pkg/logger"
	"github.com/nikogura/cv-tailor/pkg/selector"
	"github.com/nikogura/cv-tailor/pkg/tailor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var company string

//nolint:gochecknoglobals // Cobra boilerplate
var role string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var interactive bool

//nolint:gochecknoglobals // Cobra boilerplate
var keepTeX bool

//nolint:gochecknoglobals // Cobra boilerplate
var tailorCmd = &cobra.Command{
	Use:   "tailor [jd-file-or-url]",
	Short: "Generate a tailored CV and cover letter",
	Long: `Generate a tailored CV and cover letter for a job posting.

The job description can be provided as:
- A file path (e.g., jd.txt)
- A URL (e.g., https://example.com/jobs/123)
- "-" to read it from stdin
- Nothing, or --interactive, to paste it into the terminal

Files are written to <output-dir>/tex, <output-dir>/md and <output-dir>/pdf.

Example:
  cv-tailor tailor jd.txt --company "Acme Corp" --role "Frontend Engineer"
  cv-tailor tailor https://example.com/jobs/123 --company "Acme" --skip-pdf
  pbpaste | cv-tailor tailor - --company "Acme"
  cv-tailor tailor --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTailor,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tailorCmd)
	tailorCmd.Flags().StringVar(&company, "company", "", "Company name (default from config)")
	tailorCmd.Flags().StringVar(&role, "role", "", "Role title (default from config)")
	tailorCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	tailorCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Skip PDF generation and keep only the LaTeX sources")
	tailorCmd.Flags().BoolVar(&interactive, "interactive", false, "Paste the job description and enter the company interactively")
	tailorCmd.Flags().BoolVar(&keepTeX, "keep-tex", true, "Keep LaTeX sources after PDF generation")
}

func currentOverrides() (o overrides) {
	o = overrides{
		company:   company,
		role:      role,
		outputDir: outputDir,
		profile:   profileFile,
		skipPDF:   skipPDF,
		json:      jsonLogs,
		debug:     debugLogs,
	}
	return o
}

func runTailor(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	var s session
	s, err = loadSession(cmd, currentOverrides())
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	paste := pastesJobText(args, interactive)

	var jobText string
	jobText, err = readJobText(ctx, args, paste)
	if err != nil {
		return err
	}

	finalCompany := s.cfg.Company
	if paste && !cmd.Flags().Changed("company") {
		finalCompany, err = promptForCompany(s.cfg.Company)
		if err != nil {
			return err
		}
	}

	var sel *selector.Selector
	sel, err = s.cfg.Selector()
	if err != nil {
		return err
	}

	runLogger := logger.WithFields(s.logger, logger.RunFields(uuid.NewString(), finalCompany, s.cfg.Role)...)
	runLogger.Info("tailoring documents")

	t := tailor.New(s.profile,
		tailor.WithLogger(runLogger),
		tailor.WithSelector(sel),
		tailor.WithRole(s.cfg.Role),
	)

	var result tailor.Result
	result, err = t.Tailor(jobText, finalCompany)
	if err != nil {
		return err
	}

	if result.Selection.Empty() {
		fmt.Println("Warning: nothing in the profile matched this posting; the CV has no experience section")
	}

	filenames := buildFilenames(s.cfg.OutputDir, time.Now())
	err = writeOutputs(result, filenames)
	if err != nil {
		return err
	}

	if s.cfg.Typesetter.Skip {
		fmt.Println("\nLaTeX files saved (PDF generation skipped):")
		fmt.Printf("  CV: %s\n", filenames.resumeTeX)
		fmt.Printf("  Cover letter: %s\n", filenames.coverTeX)
		fmt.Printf("  Cover letter text: %s\n", filenames.coverMD)
		return err
	}

	err = renderPDFs(ctx, s.cfg.Typesetter, filenames, keepTeX, runLogger)
	if err != nil {
		// Failures were reported per document and the sources stay on disk.
		fmt.Printf("Cover letter text saved at: %s\n", filenames.coverMD)
		err = nil
		return err
	}

	fmt.Println("\nGeneration complete!")

	return err
}

// readJobText resolves the posting from the argument, falling back to the paste
// dialog when no argument is given or a URL cannot be fetched.
func readJobText(ctx context.Context, args []string, paste bool) (jobText string, err error) {
	if paste {
		jobText, err = pasteJobDescription()
		return jobText, err
	}

	jobText, err = fetchAndLogJD(ctx, args[0])
	if err == nil {
		return jobText, err
	}

	if !jd.IsURL(args[0]) {
		return jobText, err
	}

	fmt.Printf("\nWarning: Failed to fetch job description from URL: %v\n", err)
	fmt.Println("This often happens with JavaScript-rendered pages. Please paste the posting instead.")

	jobText, err = pasteJobDescription()
	return jobText, err
}

func fetchAndLogJD(ctx context.Context, jdInput string) (jobDescription string, err error) {
	if getVerbose() {
		fmt.Printf("Loading job description from: %s\n", jdInput)
	}

	jobDescription, err = jd.Fetch(ctx, jdInput)
	if err != nil {
		err = errors.Wrap(err, "failed to load job description")
		return jobDescription, err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobDescription))
	}

	return jobDescription, err
}

// pastesJobText reports whether the posting comes from the paste dialog rather than
// the argument.
func pastesJobText(args []string, interactiveFlag bool) (paste bool) {
	paste = len(args) == 0 || (interactiveFlag && args[0] != jd.StdinInput)
	return paste
}
