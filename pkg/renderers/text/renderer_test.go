package text_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-stepform/pkg/render"
	"github.com/goliatone/go-stepform/pkg/renderers/text"
	"github.com/goliatone/go-stepform/pkg/review"
	"github.com/goliatone/go-stepform/pkg/testsupport"
)

func janeSummary() review.Summary {
	return review.Build(testsupport.JaneRecord())
}

func TestRenderer_Plain(t *testing.T) {
	output, err := text.New(text.WithPlain()).Render(context.Background(), janeSummary(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"Review & Submit",
		"",
		"Please review your information before submitting",
		"",
		"User Information",
		"Full Name: Jane Doe",
		"Email:     jane@example.com",
		"Phone:     555-1234",
		"",
		"Account Details",
		"Username: jane_d",
		"Password: •••••••",
		"",
		"[ ] I agree to the Terms of Service and Privacy Policy",
		"",
		"By submitting, your data will be saved to local storage and logged to the diagnostic output",
		"",
	}, "\n")
	if string(output) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, output)
	}
}

func TestRenderer_StyledKeepsContent(t *testing.T) {
	output, err := text.New().Render(context.Background(), janeSummary(), render.Options{TermsAccepted: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	got := string(output)
	for _, want := range []string{"Jane Doe", "jane_d", "•••••••", "[x]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "secret1") {
		t.Fatalf("password leaked into output")
	}
}

func TestRenderer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := text.New().Render(ctx, janeSummary(), render.Options{}); err == nil {
		t.Fatalf("expected context error")
	}
}
