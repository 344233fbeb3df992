package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every input validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvariant is wrapped by every internal consistency failure of a simulator.
	ErrInvariant = errors.New("scheduler invariant violated")
	// ErrStepBudgetExceeded is returned when a unit-step simulation runs past its tick budget.
	ErrStepBudgetExceeded = errors.New("simulation step budget exceeded")
)

// FieldError reports one offending input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

func fieldErrorf(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError marks a logic defect inside a simulator, as opposed to bad input.
type InvariantError struct {
	Algorithm string
	Reason    string
}

func (e *InvariantError) Error() string {
	if e.Algorithm == "" {
		return fmt.Sprintf("%v: %s", ErrInvariant, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrInvariant, e.Algorithm, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// FieldErrors flattens err (including errors.Join trees) into its field errors.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	var walk func(error)
	walk = func(e error) {
		if fe, ok := e.(*FieldError); ok {
			out = append(out, fe)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}
