// Package render writes a changelog through a text template.
package render

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/wahlandcase/attuned.changelog/internal/changelog"
)

//go:embed changelog.md.tmpl
var defaultTemplate string

// Renderer renders changelogs with one parsed template
type Renderer struct {
	tmpl *template.Template
}

// New parses the template file at path, or the built-in Markdown template
// when path is empty
func New(path string) (*Renderer, error) {
	text := defaultTemplate
	name := "changelog.md.tmpl"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		text = string(data)
		name = path
	}

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes cl to w
func (r *Renderer) Render(w io.Writer, cl *changelog.Changelog) error {
	if err := r.tmpl.Execute(w, cl); err != nil {
		return fmt.Errorf("render changelog: %w", err)
	}
	return nil
}
