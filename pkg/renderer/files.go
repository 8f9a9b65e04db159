package renderer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// auxiliaryExtensions are the files pdflatex leaves next to the PDF it writes.
//
//nolint:gochecknoglobals // Typesetter byproducts
var auxiliaryExtensions = []string{".aux", ".log", ".out"}

// WriteDocument writes a rendered document, creating parent directories as needed.
// The content goes to a temporary file in the same directory first, so a reader never
// sees a half-written document.
func WriteDocument(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	var tmp *os.File
	tmp, err = os.CreateTemp(outputDir, "."+filepath.Base(outputPath)+".*")
	if err != nil {
		err = errors.Wrapf(err, "failed to create temporary file in %s", outputDir)
		return err
	}
	tmpPath := tmp.Name()

	_, err = tmp.WriteString(content)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, outputPath)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		err = errors.Wrapf(err, "failed to write document: %s", outputPath)
		return err
	}

	return err
}

// RemoveAuxiliary deletes the .aux, .log and .out files the typesetter leaves next to
// pdfPath, plus any sources given (the .tex files once they are no longer wanted).
// Missing files are ignored; the PDF itself is never touched.
func RemoveAuxiliary(pdfPath string, sources ...string) (err error) {
	base := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))

	paths := make([]string, 0, len(auxiliaryExtensions)+len(sources))
	for _, ext := range auxiliaryExtensions {
		paths = append(paths, base+ext)
	}

	for _, src := range sources {
		if filepath.Clean(src) == filepath.Clean(pdfPath) {
			continue
		}
		paths = append(paths, src)
	}

	for _, path := range paths {
		err = os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			err = errors.Wrapf(err, "failed to remove file: %s", path)
			return err
		}
	}

	err = nil
	return err
}
