package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-stepform/pkg/review"
)

// JSONName is the registry name of the JSON renderer.
const JSONName = "json"

// JSON emits the summary as indented JSON. Secret values are already masked
// by review.Build.
type JSON struct{}

var _ Renderer = JSON{}

func (JSON) Name() string        { return JSONName }
func (JSON) ContentType() string { return "application/json" }

type jsonDocument struct {
	Theme         string `json:"theme"`
	TermsAccepted bool   `json:"termsAccepted"`
	review.Summary
}

func (JSON) Render(ctx context.Context, summary review.Summary, options Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonDocument{
		Theme:         string(options.ResolvedMode()),
		TermsAccepted: options.TermsAccepted,
		Summary:       summary,
	}); err != nil {
		return nil, fmt.Errorf("render: encode json: %w", err)
	}
	return buf.Bytes(), nil
}
