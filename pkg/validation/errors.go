package validation

import (
	"strings"

	"github.com/goliatone/go-stepform/pkg/record"
)

// Kind classifies a field-level validation failure.
type Kind string

const (
	// Required means the field is empty after trimming whitespace.
	Required Kind = "required"
	// InvalidFormat means the field does not match the expected shape.
	InvalidFormat Kind = "invalid_format"
	// TooShort means the field is shorter than its minimum length.
	TooShort Kind = "too_short"
	// Mismatch means a confirmation field differs from its source.
	Mismatch Kind = "mismatch"
)

// FieldError describes why a single field failed validation.
type FieldError struct {
	Field   record.Field `json:"field"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Errors maps fields to their validation failure. A nil or empty mapping means
// the inspected fields are valid.
type Errors map[record.Field]FieldError

// Empty reports whether no field failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Has reports whether field carries an error.
func (e Errors) Has(field record.Field) bool {
	_, ok := e[field]
	return ok
}

// Kind returns the failure kind recorded for field, or "".
func (e Errors) Kind(field record.Field) Kind {
	return e[field].Kind
}

// Fields returns the failing fields in record declaration order.
func (e Errors) Fields() []record.Field {
	out := make([]record.Field, 0, len(e))
	for _, field := range record.Fields() {
		if _, ok := e[field]; ok {
			out = append(out, field)
		}
	}
	return out
}

// Messages flattens the mapping into field name to message pairs, the shape
// presentation layers display next to each input.
func (e Errors) Messages() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for field, fe := range e {
		out[string(field)] = fe.Message
	}
	return out
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	for field, fe := range e {
		out[field] = fe
	}
	return out
}

// Error joins the messages in field order so the output is deterministic.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, e[field].Error())
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e Errors) add(field record.Field, kind Kind, message string) {
	e[field] = FieldError{Field: field, Kind: kind, Message: message}
}
