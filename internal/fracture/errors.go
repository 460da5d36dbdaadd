package fracture

import (
	"errors"
	"fmt"
)

// Domain errors for assessment operations.
var (
	// ErrInvalidInput indicates a structurally invalid input field
	// (negative length, non-positive life target, unknown orientation).
	ErrInvalidInput = errors.New("fracture: invalid input")

	// ErrGeometryDomain indicates a normalized crack ratio outside the
	// calibrated validity window for the selected crack type.
	ErrGeometryDomain = errors.New("fracture: geometry outside calibrated domain")

	// ErrModelResult indicates an internally computed quantity (Y, K_I)
	// came out non-finite or non-positive despite valid-looking inputs.
	ErrModelResult = errors.New("fracture: non-physical model result")

	// ErrNoConvergence indicates the growth integration exhausted its
	// step budget before reaching a termination condition.
	ErrNoConvergence = errors.New("fracture: integration did not converge")

	// ErrUnknownCrackType indicates a crack type with no registered model.
	ErrUnknownCrackType = errors.New("fracture: unknown crack type")
)

// InputError reports a structurally invalid input field.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s = %g (%s)", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// GeometryError reports a normalized ratio outside its validity window.
// Bound describes the violated constraint, e.g. "a/W < 0.6".
type GeometryError struct {
	CrackType CrackType
	Field     string
	Value     float64
	Bound     string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s: %s = %g violates %s",
		ErrGeometryDomain, e.CrackType, e.Field, e.Value, e.Bound)
}

func (e *GeometryError) Unwrap() error { return ErrGeometryDomain }

// ModelResultError reports a non-physical computed quantity.
type ModelResultError struct {
	Quantity string
	Value    float64
}

func (e *ModelResultError) Error() string {
	return fmt.Sprintf("%s: %s = %g", ErrModelResult, e.Quantity, e.Value)
}

func (e *ModelResultError) Unwrap() error { return ErrModelResult }

// ComputationError reports a failed numerical procedure.
type ComputationError struct {
	Stage string
	Steps int
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s after %d steps", ErrNoConvergence, e.Stage, e.Steps)
}

func (e *ComputationError) Unwrap() error { return ErrNoConvergence }
