package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Field identifies one of the six record fields by its JSON name.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// ErrUnknownField is returned when a patch references a field that is not part
// of the record.
var ErrUnknownField = errors.New("record: unknown field")

var fieldOrder = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
}

// Fields returns every field in declaration order.
func Fields() []Field {
	return append([]Field(nil), fieldOrder...)
}

// ParseField resolves a JSON field name.
func ParseField(raw string) (Field, error) {
	candidate := Field(strings.TrimSpace(raw))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// Valid reports whether f names a record field.
func (f Field) Valid() bool {
	for _, known := range fieldOrder {
		if f == known {
			return true
		}
	}
	return false
}

// Secret reports whether the field holds a credential that must be masked
// on display and hidden while typing.
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Label returns the human label used by prompts and summaries.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldEmail:
		return "Email Address"
	case FieldPhone:
		return "Phone Number"
	case FieldUsername:
		return "Username"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return string(f)
	}
}

// Placeholder returns the input hint shown next to an empty prompt.
func (f Field) Placeholder() string {
	switch f {
	case FieldName:
		return "Enter your full name"
	case FieldEmail:
		return "Enter your email address"
	case FieldPhone:
		return "Enter your phone number"
	case FieldUsername:
		return "Choose a username"
	case FieldPassword:
		return "Create a password"
	case FieldConfirmPassword:
		return "Confirm your password"
	default:
		return ""
	}
}

// Record is the full set of values collected across the form steps. The JSON
// layout (names and order) is persisted verbatim.
type Record struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UserInfo is the subset inspected by the first step.
type UserInfo struct {
	Name  string
	Email string
	Phone string
}

// AccountDetails is the subset inspected by the second step.
type AccountDetails struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// UserInfo extracts the first-step fields.
func (r Record) UserInfo() UserInfo {
	return UserInfo{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// AccountDetails extracts the second-step fields.
func (r Record) AccountDetails() AccountDetails {
	return AccountDetails{
		Username:        r.Username,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// Get returns the value stored for field, or "" for unknown fields.
func (r Record) Get(field Field) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldUsername:
		return r.Username
	case FieldPassword:
		return r.Password
	case FieldConfirmPassword:
		return r.ConfirmPassword
	default:
		return ""
	}
}

// Set assigns value to field.
func (r *Record) Set(field Field, value string) error {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldUsername:
		r.Username = value
	case FieldPassword:
		r.Password = value
	case FieldConfirmPassword:
		r.ConfirmPassword = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// IsZero reports whether every field is empty.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Merge returns a copy of r with the patch applied. Keys absent from the patch
// keep their current value. Callers that need unknown keys rejected should
// call Patch.Validate first.
func (r Record) Merge(patch Patch) Record {
	out := r
	for field, value := range patch {
		_ = out.Set(field, value)
	}
	return out
}

// Patch is a partial record keyed by field.
type Patch map[Field]string

// Validate rejects keys that do not name a record field.
func (p Patch) Validate() error {
	for field := range p {
		if !field.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}
	return nil
}

// Fields returns the patched fields in declaration order.
func (p Patch) Fields() []Field {
	out := make([]Field, 0, len(p))
	for _, field := range fieldOrder {
		if _, ok := p[field]; ok {
			out = append(out, field)
		}
	}
	return out
}

// MaskPassword replaces every character with a bullet so only the length is
// revealed. The length is measured with Length.
func MaskPassword(password string) string {
	return strings.Repeat("•", Length(password))
}

// Length counts UTF-16 code units, the unit browsers use for string length.
// Characters outside the Basic Multilingual Plane count twice.
func Length(value string) int {
	n := 0
	for _, r := range value {
		n += utf16.RuneLen(r)
	}
	return n
}
