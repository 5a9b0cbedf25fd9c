// Package tensor implements strided tensors: a buffer bound to a device,
// addressed through a layout, and owned, shared or exclusively borrowed.
package tensor

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/strided/internal/backend/cpu"
)

// Elem is the set of element types a tensor can hold.
type Elem interface {
	constraints.Integer | constraints.Float | ~bool
}

// Number is the set of element types with arithmetic.
type Number = cpu.Number

// Integer is the set of element types with bitwise operations and remainder.
type Integer interface {
	constraints.Integer
}

// Signed is the set of element types with negation and absolute value.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is the set of element types with transcendental functions.
type Float interface {
	constraints.Float
}

// Ordered is the set of element types with comparisons.
type Ordered interface {
	constraints.Integer | constraints.Float
}

// DTypeName returns the name of the element type, e.g. "float64".
func DTypeName[T Elem]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
