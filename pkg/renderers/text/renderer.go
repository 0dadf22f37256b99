// Package text renders the review summary for terminals using lipgloss styles
// derived from the active theme.
package text

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/theme"
)

// Name is the registry name of the renderer.
const Name = "text"

type Option func(*Renderer)

// WithPlain disables styling and borders, for piping to files.
func WithPlain() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

type Renderer struct {
	plain bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, summary review.Summary, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	styles := theme.NewStyles(options.ResolvedTokens())

	blocks := []string{
		r.paint(styles.Title, summary.Title),
		r.paint(styles.Muted, summary.Intro),
	}
	for _, section := range summary.Sections {
		blocks = append(blocks, r.section(styles, section))
	}

	box := "[ ]"
	if options.TermsAccepted {
		box = "[x]"
	}
	blocks = append(blocks,
		box+" "+summary.Terms,
		r.paint(styles.Muted, summary.Notice),
	)
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

func (r *Renderer) section(styles theme.Styles, section review.Section) string {
	width := 0
	for _, entry := range section.Entries {
		if w := lipgloss.Width(entry.Label); w > width {
			width = w
		}
	}

	lines := []string{r.paint(styles.Heading, section.Title)}
	for _, entry := range section.Entries {
		label := entry.Label + ":" + strings.Repeat(" ", width-lipgloss.Width(entry.Label))
		lines = append(lines, r.paint(styles.Label, label)+" "+r.paint(styles.Value, entry.Value))
	}
	body := strings.Join(lines, "\n")
	if r.plain {
		return body
	}
	return styles.Box.Render(body)
}

func (r *Renderer) paint(style lipgloss.Style, value string) string {
	if r.plain {
		return value
	}
	return style.Render(value)
}
