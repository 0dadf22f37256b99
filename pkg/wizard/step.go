package wizard

import (
	"fmt"

	"github.com/goliatone/go-stepform/pkg/record"
)

// Step is the 1-based index of a form page.
type Step int

const (
	StepUserInfo Step = iota + 1
	StepAccountDetails
	StepReview
)

const (
	FirstStep  = StepUserInfo
	LastStep   = StepReview
	TotalSteps = int(LastStep)
)

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepUserInfo, StepAccountDetails, StepReview}
}

// Valid reports whether s is within range.
func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Title returns the page heading.
func (s Step) Title() string {
	switch s {
	case StepUserInfo:
		return "User Information"
	case StepAccountDetails:
		return "Account Details"
	case StepReview:
		return "Review & Submit"
	default:
		return ""
	}
}

// Fields lists the record fields edited on the step. The review step edits
// nothing.
func (s Step) Fields() []record.Field {
	switch s {
	case StepUserInfo:
		return []record.Field{record.FieldName, record.FieldEmail, record.FieldPhone}
	case StepAccountDetails:
		return []record.Field{record.FieldUsername, record.FieldPassword, record.FieldConfirmPassword}
	default:
		return nil
	}
}

func (s Step) String() string {
	return fmt.Sprintf("Step %d: %s", int(s), s.Title())
}
