// Package stepform re-exports the main entry points of the registration form
// so callers can build a session without importing every subpackage.
package stepform

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/renderers/text"
	"github.com/goliatone/go-stepform/pkg/renderers/vanilla"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/theme"
	"github.com/goliatone/go-stepform/pkg/wizard"
)

// Record aliases record.Record.
type Record = record.Record

// Patch aliases record.Patch.
type Patch = record.Patch

// Controller aliases wizard.Controller.
type Controller = wizard.Controller

// Presenter aliases wizard.Presenter.
type Presenter = wizard.Presenter

// NewController exposes the form controller constructor from the top-level
// module.
func NewController(options ...wizard.Option) *wizard.Controller {
	return wizard.New(options...)
}

// NewPresenter builds a controller with options and wraps it in a presenter.
func NewPresenter(options ...wizard.Option) *wizard.Presenter {
	return wizard.NewPresenter(wizard.New(options...))
}

// NewRenderers returns a registry holding the text, html and json review
// renderers. The html renderer resolves its template through manager when
// one is given.
func NewRenderers(manager *theme.Manager) (*render.Registry, error) {
	htmlOptions := []vanilla.Option{vanilla.WithDefaultStyles()}
	if manager != nil {
		htmlOptions = append(htmlOptions, vanilla.WithThemeSelector(manager))
	}
	html, err := vanilla.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(text.New(), html, render.JSON{})
}

// RenderReview renders the review summary of rec with the named renderer in
// the given mode.
func RenderReview(ctx context.Context, rec record.Record, rendererName string, mode theme.Mode) ([]byte, error) {
	manager, err := theme.NewManager(theme.WithMode(mode))
	if err != nil {
		return nil, err
	}
	registry, err := NewRenderers(manager)
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("stepform: %w", err)
	}
	return renderer.Render(ctx, review.Build(rec), render.OptionsFromTheme(manager))
}

// EmbeddedTemplates exposes the built-in html review templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
