package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-stepform/pkg/record"
)

const (
	// MinUsernameLength is the shortest accepted username.
	MinUsernameLength = 3
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
)

// EmailPattern is the simple local@domain.tld shape accepted for emails. The
// excluded class is the full browser whitespace set, not just ASCII spaces.
var EmailPattern = regexp.MustCompile(`^[^\t\n\x0B\f\r\p{Z}\x{FEFF}@]+@[^\t\n\x0B\f\r\p{Z}\x{FEFF}@]+\.[^\t\n\x0B\f\r\p{Z}\x{FEFF}@]+$`)

// StepValidator validates the fields owned by one step of the form.
type StepValidator func(record.Record) Errors

// UserInfoStep adapts ValidateUserInfo to a StepValidator.
func UserInfoStep(rec record.Record) Errors {
	return ValidateUserInfo(rec.UserInfo())
}

// AccountDetailsStep adapts ValidateAccountDetails to a StepValidator.
func AccountDetailsStep(rec record.Record) Errors {
	return ValidateAccountDetails(rec.AccountDetails())
}

// ValidateUserInfo checks name, email, and phone. Phone only needs to be
// non-blank; its format is not inspected.
func ValidateUserInfo(info record.UserInfo) Errors {
	errs := make(Errors)

	if isBlank(info.Name) {
		errs.add(record.FieldName, Required, "Name is required")
	}

	switch {
	case isBlank(info.Email):
		errs.add(record.FieldEmail, Required, "Email is required")
	case !EmailPattern.MatchString(info.Email):
		errs.add(record.FieldEmail, InvalidFormat, "Please enter a valid email address")
	}

	if isBlank(info.Phone) {
		errs.add(record.FieldPhone, Required, "Phone number is required")
	}

	return errs
}

// ValidateAccountDetails checks username, password, and its confirmation.
// The confirmation is compared against the raw password even when the
// password itself is empty, so an empty password with a non-empty
// confirmation reports Mismatch on confirmPassword.
func ValidateAccountDetails(details record.AccountDetails) Errors {
	errs := make(Errors)

	switch {
	case isBlank(details.Username):
		errs.add(record.FieldUsername, Required, "Username is required")
	case length(details.Username) < MinUsernameLength:
		errs.add(record.FieldUsername, TooShort, "Username must be at least 3 characters long")
	}

	switch {
	case isBlank(details.Password):
		errs.add(record.FieldPassword, Required, "Password is required")
	case length(details.Password) < MinPasswordLength:
		errs.add(record.FieldPassword, TooShort, "Password must be at least 6 characters long")
	}

	switch {
	case isBlank(details.ConfirmPassword):
		errs.add(record.FieldConfirmPassword, Required, "Please confirm your password")
	case details.ConfirmPassword != details.Password:
		errs.add(record.FieldConfirmPassword, Mismatch, "Passwords do not match")
	}

	return errs
}

func isBlank(value string) bool {
	return strings.TrimFunc(value, isSpace) == ""
}

// isSpace matches the whitespace and line terminators trimmed by browsers,
// which include U+FEFF but not U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

func length(value string) int {
	return record.Length(value)
}
