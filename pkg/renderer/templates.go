package renderer

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LaTeX is full of braces, so the templates use ((* *)) as actions.
//
//nolint:gochecknoglobals // Parsed once from embedded files
var templates = template.Must(
	template.New("documents").
		Delims("((*", "*))").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

func execute(name string, data any) (out string, err error) {
	var buf bytes.Buffer

	err = templates.ExecuteTemplate(&buf, name, data)
	if err != nil {
		err = errors.Wrapf(err, "failed to render %s", name)
		return out, err
	}

	out = buf.String()
	return out, err
}
