// Package vanilla renders the review summary as a standalone HTML page. The
// active theme is applied through CSS custom properties and the light or dark
// class on the root element.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	gotheme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-stepform/pkg/render"
	rendertemplate "github.com/goliatone/go-stepform/pkg/render/template"
	"github.com/goliatone/go-stepform/pkg/render/template/pongo"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/theme"
)

// Name is the registry name of the renderer.
const Name = "html"

// ReviewTemplate is the default template file, relative to templates/.
const ReviewTemplate = "review.html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         gotheme.ThemeSelector
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/<name>.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves the review template name from the selected
// theme manifest.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.selector = selector
	}
}

// WithDefaultStyles inlines the bundled stylesheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	selector   gotheme.ThemeSelector
	policy     *bluemonday.Policy
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS), pongo.WithName("vanilla"))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	r := &Renderer{
		templates: renderer,
		selector:  cfg.selector,
		policy:    bluemonday.StrictPolicy(),
	}
	if cfg.inlineStyles {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the summary into the review template. Every summary string is
// passed through a strict sanitizer before reaching the template.
func (r *Renderer) Render(ctx context.Context, summary review.Summary, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	mode := options.ResolvedMode()
	name, err := r.templateName(mode)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/"+name, map[string]any{
		"mode":          string(mode),
		"style":         theme.CSSVarsStyle(theme.CSSVars(options.ResolvedTokens())),
		"stylesheet":    r.stylesheet,
		"summary":       r.sanitize(summary),
		"termsAccepted": options.TermsAccepted,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) templateName(mode theme.Mode) (string, error) {
	if r.selector == nil {
		return ReviewTemplate, nil
	}
	selection, err := r.selector.Select("", string(mode))
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return ReviewTemplate, nil
	}
	if name := selection.Manifest.Templates[ReviewTemplate]; name != "" {
		return name, nil
	}
	return ReviewTemplate, nil
}

func (r *Renderer) sanitize(summary review.Summary) review.Summary {
	out := review.Summary{
		Title:    r.policy.Sanitize(summary.Title),
		Intro:    r.policy.Sanitize(summary.Intro),
		Terms:    r.policy.Sanitize(summary.Terms),
		Notice:   r.policy.Sanitize(summary.Notice),
		Sections: make([]review.Section, len(summary.Sections)),
	}
	for i, section := range summary.Sections {
		entries := make([]review.Entry, len(section.Entries))
		for j, entry := range section.Entries {
			entries[j] = review.Entry{
				Field:  entry.Field,
				Label:  r.policy.Sanitize(entry.Label),
				Value:  r.policy.Sanitize(entry.Value),
				Masked: entry.Masked,
			}
		}
		out.Sections[i] = review.Section{
			Title:   r.policy.Sanitize(section.Title),
			Entries: entries,
		}
	}
	return out
}
