package review

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stepform/pkg/record"
)

func TestBuild_MasksPasswordByLength(t *testing.T) {
	summary := Build(record.Record{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-1234",
		Username:        "jane_d",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	password, ok := summary.Lookup(record.FieldPassword)
	if !ok {
		t.Fatalf("password entry missing")
	}
	if password.Value != "•••••••" || !password.Masked {
		t.Fatalf("unexpected password entry: %+v", password)
	}
	if _, ok := summary.Lookup(record.FieldConfirmPassword); ok {
		t.Fatalf("confirmation should not be listed")
	}
	for _, section := range summary.Sections {
		for _, e := range section.Entries {
			if strings.Contains(e.Value, "secret1") {
				t.Fatalf("password leaked in %s", e.Label)
			}
		}
	}
}

func TestBuild_SectionLayout(t *testing.T) {
	summary := Build(record.Record{Name: "Jane Doe", Username: "jane_d"})

	type row struct{ Section, Label, Value string }
	var got []row
	for _, section := range summary.Sections {
		for _, e := range section.Entries {
			got = append(got, row{section.Title, e.Label, e.Value})
		}
	}
	want := []row{
		{"User Information", "Full Name", "Jane Doe"},
		{"User Information", "Email", ""},
		{"User Information", "Phone", ""},
		{"Account Details", "Username", "jane_d"},
		{"Account Details", "Password", ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}
