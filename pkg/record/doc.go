// Package record defines the registration record collected by the multi-step
// form. A Record always carries exactly six string fields whose JSON names are
// part of the persisted layout, so field identifiers are exported as constants
// and reused by validators, renderers, and storage.
package record
