// Package validation holds the per-step validators of the registration form.
// Validators are pure: they inspect a subset of the record and return an
// Errors mapping keyed by field. An empty mapping means the step may advance.
package validation
