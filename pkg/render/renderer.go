package render

import (
	"context"

	"github.com/goliatone/go-stepform/pkg/review"
)

// Renderer converts a review summary into a byte representation (terminal
// text, HTML, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, summary review.Summary, options Options) ([]byte, error)
}
