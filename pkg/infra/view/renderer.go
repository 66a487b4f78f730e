package view

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ReadmeTemplate is the name of the README template
const ReadmeTemplate = "README.md"

type renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Each template is addressed by
// its file name without the ".tmpl" suffix.
func NewRenderer() (interfaces.ViewRenderer, error) {
	tmpl, err := template.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}

	return &renderer{templates: tmpl}, nil
}

// Render executes the named template with vars
func (r *renderer) Render(name string, vars map[string]any) (string, error) {
	tmpl := r.templates.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", goerr.New("template not found", goerr.V("name", name))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", goerr.Wrap(err, "failed to execute template", goerr.V("name", name))
	}

	return buf.String(), nil
}
