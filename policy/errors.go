package policy

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mathstyle/style"
)

// ErrIncomplete is wrapped by errors for per-alphabet styles missing an
// entry.
var ErrIncomplete = errors.New("incomplete per-alphabet style")

// ErrMalformed is wrapped by errors for policy fields of the wrong shape.
var ErrMalformed = errors.New("malformed policy field")

// PolicyError is returned when constructing a policy from malformed input.
type PolicyError struct {
	Field string // policy field, e.g. "bold_style"
	Issue string // human-readable description
	Err   error  // ErrIncomplete or ErrMalformed
}

// Error implements the error interface.
func (e *PolicyError) Error() string {
	return fmt.Sprintf("style policy: %s: %s", e.Field, e.Issue)
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}

func errIncomplete(field string, a style.Alphabet) error {
	return &PolicyError{
		Field: field,
		Issue: fmt.Sprintf("missing shape preference for alphabet %s", a),
		Err:   ErrIncomplete,
	}
}

func errMalformed(field string, issue string) error {
	return &PolicyError{Field: field, Issue: issue, Err: ErrMalformed}
}
