// Package review builds the read-only summary shown on the last form step.
// Secret fields are masked by length so the summary is safe to print, log,
// or export.
package review

import "github.com/goliatone/go-stepform/pkg/record"

// Entry is one labelled value in a section.
type Entry struct {
	Field  record.Field `json:"field"`
	Label  string       `json:"label"`
	Value  string       `json:"value"`
	Masked bool         `json:"masked,omitempty"`
}

// Section groups the entries collected by one step.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Summary is the review screen content.
type Summary struct {
	Title    string    `json:"title"`
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
	Terms    string    `json:"terms"`
	Notice   string    `json:"notice"`
}

// Build derives the summary for rec. The confirmation field is omitted; the
// password is shown as one bullet per character.
func Build(rec record.Record) Summary {
	return Summary{
		Title: "Review & Submit",
		Intro: "Please review your information before submitting",
		Sections: []Section{
			{
				Title: "User Information",
				Entries: []Entry{
					entry(record.FieldName, "Full Name", rec.Name),
					entry(record.FieldEmail, "Email", rec.Email),
					entry(record.FieldPhone, "Phone", rec.Phone),
				},
			},
			{
				Title: "Account Details",
				Entries: []Entry{
					entry(record.FieldUsername, "Username", rec.Username),
					entry(record.FieldPassword, "Password", rec.Password),
				},
			},
		},
		Terms:  "I agree to the Terms of Service and Privacy Policy",
		Notice: "By submitting, your data will be saved to local storage and logged to the diagnostic output",
	}
}

func entry(field record.Field, label, value string) Entry {
	if field.Secret() {
		return Entry{Field: field, Label: label, Value: record.MaskPassword(value), Masked: true}
	}
	return Entry{Field: field, Label: label, Value: value}
}

// Lookup returns the entry for field, if present.
func (s Summary) Lookup(field record.Field) (Entry, bool) {
	for _, section := range s.Sections {
		for _, e := range section.Entries {
			if e.Field == field {
				return e, true
			}
		}
	}
	return Entry{}, false
}
