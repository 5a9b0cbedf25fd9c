// Package layout implements the stride algebra of the tensor core: shape,
// stride and offset of a logical array over a flat buffer, contiguity
// classification, indexing, broadcasting and reshaping. Nothing in this
// package touches element data.
package layout

import (
	"fmt"
	"strings"
)

// Shape represents the extents of a tensor, one per axis.
// Rank 0 (an empty Shape) is a scalar.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no extent is negative. Zero extents are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates dense strides for the shape in the given order.
// Row-major: stride[i] = product of all extents after i.
// Column-major: stride[i] = product of all extents before i.
// Zero extents are treated as one so that strides stay non-zero.
func (s Shape) ComputeStrides(order Order) []int {
	strides := make([]int, len(s))
	acc := 1
	if order == ColMajor {
		for i := range s {
			strides[i] = acc
			acc *= max(s[i], 1)
		}
		return strides
	}
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= max(s[i], 1)
	}
	return strides
}

func (s Shape) String() string {
	return formatInts(s)
}

func formatInts(v []int) string {
	parts := make([]string, len(v))
	for i, d := range v {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Order is the element order convention used when a layout is not given
// explicitly: RowMajor (C) or ColMajor (Fortran).
type Order int

// Supported element orders.
const (
	RowMajor Order = iota
	ColMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Unknown"
	}
}
