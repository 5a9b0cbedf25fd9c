// Package errs defines the error kinds surfaced by the tensor core.
//
// Every error returned by the core wraps exactly one of the sentinels below,
// so callers classify failures with errors.Is and keep the formatted message
// for diagnostics.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds.
var (
	// ErrOutOfRange: an index or range bound normalizes outside [0, extent).
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLayout: shape/stride/offset inconsistent with the buffer,
	// malformed index expression, or irreconcilable broadcast.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrDeviceMismatch: operands are bound to non-identical devices.
	ErrDeviceMismatch = errors.New("device mismatch")

	// ErrShapeMismatch: incompatible ranks or extents for an operation.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrLinalg: a decomposition routine reported failure.
	ErrLinalg = errors.New("linalg failure")

	// ErrReadOnly: a write was attempted through a shared view.
	ErrReadOnly = errors.New("read-only view")
)

// OutOfRange reports idx outside [0, extent) for the named quantity.
func OutOfRange(what string, idx, extent int) error {
	return errors.Wrapf(ErrOutOfRange, "%q = %d not match to pattern 0..%d", what, idx, extent)
}

// InvalidLayout wraps ErrInvalidLayout with a formatted message.
func InvalidLayout(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidLayout, format, args...)
}

// Broadcast reports two aligned extents that cannot be reconciled.
func Broadcast(d1, d2 int) error {
	return errors.Wrapf(ErrInvalidLayout, "broadcasting failed: d1 = %d not equal to d2 = %d", d1, d2)
}

// DeviceMismatch reports two non-identical devices.
func DeviceMismatch(a, b fmt.Stringer) error {
	return errors.Wrapf(ErrDeviceMismatch, "%s vs %s", a, b)
}

// ShapeMismatch wraps ErrShapeMismatch with a formatted message.
func ShapeMismatch(format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, format, args...)
}

// ReadOnly reports a write attempted by op through a shared view.
func ReadOnly(op string) error {
	return errors.Wrapf(ErrReadOnly, "%s: tensor is a shared view", op)
}

// LinalgError carries the diagnostic code reported by a decomposition routine.
type LinalgError struct {
	Routine string
	Info    int
}

func (e *LinalgError) Error() string {
	return fmt.Sprintf("%s: %s failed (info = %d)", ErrLinalg, e.Routine, e.Info)
}

// Unwrap lets errors.Is match ErrLinalg.
func (e *LinalgError) Unwrap() error { return ErrLinalg }

// Linalg builds a LinalgError.
func Linalg(routine string, info int) error {
	return errors.WithStack(&LinalgError{Routine: routine, Info: info})
}

// Must panics with err when it is non-nil and returns v otherwise.
// It backs the operator-style surface that fails loudly instead of returning errors.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
