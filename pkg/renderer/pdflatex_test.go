package renderer

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// fakeTypesetter writes an executable shell script standing in for pdflatex.
func fakeTypesetter(t *testing.T, body string) (path string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("Shell script typesetter not supported on windows")
	}

	path = filepath.Join(t.TempDir(), "fake-latex")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700)
	if err != nil {
		t.Fatalf("Failed to write fake typesetter: %v", err)
	}

	return path
}

func writeTex(t *testing.T) (texPath string) {
	t.Helper()

	texPath = filepath.Join(t.TempDir(), "cv_tailored_20250101_120000.tex")
	err := WriteDocument(`\documentclass{article}\begin{document}x\end{document}`, texPath)
	if err != nil {
		t.Fatalf("Failed to write tex: %v", err)
	}

	return texPath
}

func TestWriteDocument(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.tex")
	testContent := "\\section{Test}\n\nThis is a test."

	err := WriteDocument(testContent, testFile)
	if err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, string(data))
	}
}

func TestWriteDocumentCreatesDir(t *testing.T) {
	tmpDir := t.TempDir()
	nestedPath := filepath.Join(tmpDir, "tex", "nested", "test.tex")

	err := WriteDocument("test", nestedPath)
	if err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}

	_, err = os.Stat(nestedPath)
	if os.IsNotExist(err) {
		t.Error("Document was not created in nested directory")
	}
}

func TestWriteDocumentOverwrites(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "doc.tex")

	for _, content := range []string{"first version", "second"} {
		err := WriteDocument(content, testFile)
		if err != nil {
			t.Fatalf("Failed to write document: %v", err)
		}
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected 'second', got '%s'", string(data))
	}

	entries, err := os.ReadDir(filepath.Dir(testFile))
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the document in the directory, got %d entries", len(entries))
	}
}

func TestRemoveAuxiliaryWithSources(t *testing.T) {
	pdfDir := t.TempDir()
	texDir := t.TempDir()

	pdfPath := filepath.Join(pdfDir, "cv_tailored_20250101_120000.pdf")
	texPath := filepath.Join(texDir, "cv_tailored_20250101_120000.tex")
	auxPath := filepath.Join(pdfDir, "cv_tailored_20250101_120000.aux")

	for _, f := range []string{pdfPath, texPath, auxPath} {
		err := os.WriteFile(f, []byte("test"), 0600)
		if err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	err := RemoveAuxiliary(pdfPath, texPath, pdfPath)
	if err != nil {
		t.Fatalf("Failed to remove auxiliary files: %v", err)
	}

	for _, f := range []string{texPath, auxPath} {
		_, err = os.Stat(f)
		if !os.IsNotExist(err) {
			t.Errorf("File %s was not deleted", f)
		}
	}

	_, err = os.Stat(pdfPath)
	if err != nil {
		t.Errorf("Expected PDF to survive even when listed as a source: %v", err)
	}
}

func TestRemoveAuxiliaryMissingFiles(t *testing.T) {
	err := RemoveAuxiliary("/nonexistent/doc.pdf", "/nonexistent/doc.tex")
	if err != nil {
		t.Errorf("Expected missing files to be ignored, got %v", err)
	}
}

func TestValidateFiles(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	err := os.WriteFile(existingFile, []byte("test"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = validateFiles(existingFile)
	if err != nil {
		t.Errorf("Expected no error for existing file, got %v", err)
	}

	err = validateFiles(existingFile, "/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error when one file doesn't exist, got nil")
	}
}

func TestCheckTypesetterMissing(t *testing.T) {
	err := checkTypesetter("definitely-not-a-typesetter-binary")
	if err == nil {
		t.Fatal("Expected error for missing typesetter, got nil")
	}

	if !strings.Contains(err.Error(), "not found in PATH") {
		t.Errorf("Expected descriptive error, got %v", err)
	}
}

func TestCompilePDF(t *testing.T) {
	// Arguments: -interaction -halt-on-error -output-directory <dir> <tex>
	typesetter := fakeTypesetter(t, `echo "$@" > "$4/args.txt"
touch "$4/$(basename "$5" .tex).pdf" "$4/$(basename "$5" .tex).aux" "$4/$(basename "$5" .tex).log"`)

	texPath := writeTex(t)
	pdfDir := filepath.Join(t.TempDir(), "pdf")

	pdfPath, err := CompilePDF(context.Background(), typesetter, texPath, pdfDir)
	if err != nil {
		t.Fatalf("Failed to compile: %v", err)
	}

	expected := filepath.Join(pdfDir, "cv_tailored_20250101_120000.pdf")
	if pdfPath != expected {
		t.Errorf("Expected PDF path '%s', got '%s'", expected, pdfPath)
	}

	args, err := os.ReadFile(filepath.Join(pdfDir, "args.txt"))
	if err != nil {
		t.Fatalf("Failed to read recorded arguments: %v", err)
	}

	if !strings.HasPrefix(string(args), "-interaction=nonstopmode -halt-on-error -output-directory "+pdfDir) {
		t.Errorf("Unexpected typesetter arguments: %s", args)
	}

	err = RemoveAuxiliary(pdfPath)
	if err != nil {
		t.Fatalf("Failed to remove auxiliary files: %v", err)
	}

	for _, ext := range []string{".aux", ".log"} {
		_, err = os.Stat(strings.TrimSuffix(pdfPath, ".pdf") + ext)
		if !os.IsNotExist(err) {
			t.Errorf("Expected %s file to be removed", ext)
		}
	}

	_, err = os.Stat(pdfPath)
	if err != nil {
		t.Errorf("Expected PDF to survive auxiliary cleanup: %v", err)
	}
}

func TestCompilePDFFailure(t *testing.T) {
	typesetter := fakeTypesetter(t, `echo "! LaTeX Error: File roboto.sty not found."
exit 1`)

	_, err := CompilePDF(context.Background(), typesetter, writeTex(t), t.TempDir())
	if err == nil {
		t.Fatal("Expected error from failing typesetter, got nil")
	}

	if !strings.Contains(err.Error(), "roboto.sty") {
		t.Errorf("Expected typesetter output in error, got %v", err)
	}
}

func TestCompilePDFNoOutput(t *testing.T) {
	typesetter := fakeTypesetter(t, "exit 0")

	_, err := CompilePDF(context.Background(), typesetter, writeTex(t), t.TempDir())
	if err == nil {
		t.Fatal("Expected error when no PDF is produced, got nil")
	}
}

func TestCompilePDFTimeout(t *testing.T) {
	typesetter := fakeTypesetter(t, "exec sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := CompilePDF(ctx, typesetter, writeTex(t), t.TempDir())
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}
}

func TestCompilePDFMissingTex(t *testing.T) {
	typesetter := fakeTypesetter(t, "exit 0")

	_, err := CompilePDF(context.Background(), typesetter, "/nonexistent/doc.tex", t.TempDir())
	if err == nil {
		t.Error("Expected error for missing tex file, got nil")
	}
}
