package handlers

import (
	_ "embed"
	"html/template"
)

//go:embed templates/page.tmpl
var pageTemplate string

// PageTemplate parses the template that renders a domain.Page as one HTML form.
func PageTemplate() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplate))
}
