package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultTypesetter is the LaTeX engine used when none is configured.
const DefaultTypesetter = "pdflatex"

// CompilePDF typesets texPath into pdfDir and returns the path of the produced PDF.
// The context bounds the typesetter run.
func CompilePDF(ctx context.Context, command, texPath, pdfDir string) (pdfPath string, err error) {
	if command == "" {
		command = DefaultTypesetter
	}

	err = checkTypesetter(command)
	if err != nil {
		return pdfPath, err
	}

	err = validateFiles(texPath)
	if err != nil {
		return pdfPath, err
	}

	err = os.MkdirAll(pdfDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", pdfDir)
		return pdfPath, err
	}

	cmd := exec.CommandContext(ctx, command,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", pdfDir,
		texPath,
	)

	var output []byte
	output, err = cmd.CombinedOutput()
	if ctx.Err() != nil {
		err = errors.Wrapf(ctx.Err(), "%s did not finish for %s", command, texPath)
		return pdfPath, err
	}
	if err != nil {
		err = errors.Wrapf(err, "%s failed: %s", command, lastLines(string(output), 20))
		return pdfPath, err
	}

	pdfPath = filepath.Join(pdfDir, strings.TrimSuffix(filepath.Base(texPath), filepath.Ext(texPath))+".pdf")

	err = validateFiles(pdfPath)
	if err != nil {
		err = errors.Wrapf(err, "%s reported success but produced no PDF", command)
		return pdfPath, err
	}

	return pdfPath, err
}

// checkTypesetter verifies the typesetter is installed.
func checkTypesetter(command string) (err error) {
	_, err = exec.LookPath(command)
	if err != nil {
		err = errors.Errorf("%s not found in PATH (install a LaTeX distribution to generate PDFs, or use --skip-pdf)", command)
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

func lastLines(s string, n int) (tail string) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	tail = strings.Join(lines, "\n")
	return tail
}
