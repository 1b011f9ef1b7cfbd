package email

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RenderedEmail is a template expanded with its parameters.
type RenderedEmail struct {
	Subject   string
	HTMLBody  string
	PlainBody string
}

// TemplateRenderer expands the embedded transactional templates. Each file
// defines a "subject" and a "body" block.
type TemplateRenderer struct {
	templates map[string]*template.Template
	strip     *bluemonday.Policy
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	templates := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		id := strings.TrimSuffix(entry.Name(), ".html")
		// Missing params render as empty strings instead of "<no value>".
		tmpl, err := template.New(id).Option("missingkey=zero").ParseFS(templatesFS, "templates/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to parse email template %s: %w", id, err)
		}
		templates[id] = tmpl
	}

	return &TemplateRenderer{
		templates: templates,
		strip:     bluemonday.StrictPolicy(),
	}, nil
}

func (r *TemplateRenderer) Has(templateID string) bool {
	_, ok := r.templates[templateID]
	return ok
}

func (r *TemplateRenderer) Render(templateID string, params map[string]string) (*RenderedEmail, error) {
	tmpl, ok := r.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("unknown email template: %s", templateID)
	}

	var subject, body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", params); err != nil {
		return nil, fmt.Errorf("failed to render subject of %s: %w", templateID, err)
	}
	if err := tmpl.ExecuteTemplate(&body, "body", params); err != nil {
		return nil, fmt.Errorf("failed to render body of %s: %w", templateID, err)
	}

	return &RenderedEmail{
		Subject:   html.UnescapeString(strings.TrimSpace(subject.String())),
		HTMLBody:  body.String(),
		PlainBody: r.plain(body.String()),
	}, nil
}

func (r *TemplateRenderer) plain(htmlBody string) string {
	text := html.UnescapeString(r.strip.Sanitize(htmlBody))
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n\n")
}
