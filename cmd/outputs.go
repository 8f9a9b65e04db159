package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikogura/cv-tailor/pkg/config"
	"github.com/nikogura/cv-tailor/pkg/renderer"
	"github.com/nikogura/cv-tailor/pkg/tailor"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// timestampLayout names one run's files; it never influences document content.
const timestampLayout = "20060102_150405"

// outputFilenames holds all output file paths for one run.
type outputFilenames struct {
	resumeTeX string
	coverTeX  string
	coverMD   string
	pdfDir    string
}

// buildFilenames lays out <outDir>/{tex,md,pdf} for a run started at now.
func buildFilenames(outDir string, now time.Time) (filenames outputFilenames) {
	ts := now.Format(timestampLayout)

	filenames = outputFilenames{
		resumeTeX: filepath.Join(outDir, "tex", "cv_tailored_"+ts+".tex"),
		coverTeX:  filepath.Join(outDir, "tex", "cover_letter_"+ts+".tex"),
		coverMD:   filepath.Join(outDir, "md", "cover_letter_"+ts+".md"),
		pdfDir:    filepath.Join(outDir, "pdf"),
	}

	return filenames
}

// writeOutputs writes the CV, the letter text and the letter markup.
func writeOutputs(result tailor.Result, filenames outputFilenames) (err error) {
	documents := []struct {
		content string
		path    string
	}{
		{content: result.Resume, path: filenames.resumeTeX},
		{content: result.CoverLetter, path: filenames.coverMD},
		{content: result.CoverLetterMarkup, path: filenames.coverTeX},
	}

	for _, doc := range documents {
		err = renderer.WriteDocument(doc.content, doc.path)
		if err != nil {
			return err
		}

		if getVerbose() {
			fmt.Printf("Wrote %s\n", doc.path)
		}
	}

	return err
}

// pdfJob is one document handed to the typesetter.
type pdfJob struct {
	label   string
	texPath string
	pdfPath string
	err     error
}

// compilePDFs typesets both documents concurrently. Every job runs to completion;
// the returned error only says that at least one failed.
func compilePDFs(ctx context.Context, ts config.TypesetterConfig, filenames outputFilenames, lg *zap.Logger) (jobs []*pdfJob, err error) {
	ctx, cancel := context.WithTimeout(ctx, ts.Timeout)
	defer cancel()

	jobs = []*pdfJob{
		{label: "CV", texPath: filenames.resumeTeX},
		{label: "Cover letter", texPath: filenames.coverTeX},
	}

	var g errgroup.Group
	for _, job := range jobs {
		g.Go(func() (jobErr error) {
			job.pdfPath, job.err = renderer.CompilePDF(ctx, ts.Command, job.texPath, filenames.pdfDir)
			if job.err != nil {
				lg.Warn("typesetting failed", zap.String("document", job.texPath), zap.Error(job.err))
				jobErr = job.err
				return jobErr
			}

			cleanupErr := renderer.RemoveAuxiliary(job.pdfPath)
			if cleanupErr != nil {
				lg.Debug("failed to remove auxiliary files", zap.Error(cleanupErr))
			}

			return jobErr
		})
	}

	err = g.Wait()
	if err != nil {
		err = errors.Wrap(err, "PDF compilation failed")
		return jobs, err
	}

	return jobs, err
}

// renderPDFs compiles the documents and reports each one. The .tex sources are
// removed afterwards only when every PDF was produced and keepTeX is off.
func renderPDFs(ctx context.Context, ts config.TypesetterConfig, filenames outputFilenames, keepTeX bool, lg *zap.Logger) (err error) {
	var progress *spinner
	if !getVerbose() {
		progress = startSpinner(os.Stdout, fmt.Sprintf("Typesetting PDFs with %s...", ts.Command))
	} else {
		fmt.Printf("Typesetting PDFs with %s...\n", ts.Command)
	}

	var jobs []*pdfJob
	jobs, err = compilePDFs(ctx, ts, filenames, lg)

	if progress != nil {
		progress.Stop()
	}

	for _, job := range jobs {
		if job.err != nil {
			fmt.Printf("Warning: Failed to typeset %s: %v\n", job.label, job.err)
			fmt.Printf("%s source saved at: %s\n", job.label, job.texPath)
			continue
		}
		fmt.Printf("%s PDF saved at: %s\n", job.label, job.pdfPath)
	}

	if err != nil {
		return err
	}

	if keepTeX {
		return err
	}

	for _, job := range jobs {
		cleanupErr := renderer.RemoveAuxiliary(job.pdfPath, job.texPath)
		if cleanupErr != nil {
			fmt.Printf("Warning: Failed to clean up LaTeX sources: %v\n", cleanupErr)
		}
	}

	return err
}
