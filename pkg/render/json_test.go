package render_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-stepform/pkg/record"
	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/testsupport"
	"github.com/goliatone/go-stepform/pkg/theme"
)

func TestJSON_RenderGolden(t *testing.T) {
	summary := review.Build(record.Record{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-1234",
		Username:        "jane_d",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	output, err := render.JSON{}.Render(context.Background(), summary, render.Options{Mode: theme.Dark})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "summary.golden.json")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_Defaults(t *testing.T) {
	var options render.Options
	if options.ResolvedMode() != theme.Light {
		t.Fatalf("expected light default")
	}
	tokens := options.ResolvedTokens()
	if tokens[theme.TokenBackground] != "#ffffff" {
		t.Fatalf("expected light tokens, got %v", tokens)
	}
	dark := render.Options{Mode: theme.Dark}.ResolvedTokens()
	if dark[theme.TokenBackground] != "#0a0a0a" {
		t.Fatalf("expected dark tokens, got %v", dark)
	}
}
