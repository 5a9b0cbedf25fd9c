// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/tensor"
)

// Elem is the set of element types a tensor can hold.
type Elem = tensor.Elem

// Number is the set of element types with arithmetic.
type Number = tensor.Number

// Integer is the set of element types with bitwise operations.
type Integer = tensor.Integer

// Signed is the set of element types with negation.
type Signed = tensor.Signed

// Float is the set of element types with transcendental functions.
type Float = tensor.Float

// Ordered is the set of element types with comparisons.
type Ordered = tensor.Ordered

// Tensor is a storage addressed through a layout.
//
// Example:
//
//	dev := cpu.NewCPU(0)
//	a, _ := tensor.AsArray([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, dev)
//	c, _ := tensor.Matmul(a, a.T()) // [[14 32] [32 77]]
type Tensor[T Elem] = tensor.Tensor[T]

// Storage pairs a flat buffer with its device.
type Storage[T Elem] = tensor.Storage[T]

// Device is a CPU device; see package backend/cpu.
type Device = device.Device

// Mode is the ownership mode of a tensor.
type Mode = tensor.Mode

// Ownership modes.
const (
	Owned   = tensor.Owned
	View    = tensor.View
	ViewMut = tensor.ViewMut
)

// New takes ownership of data addressed through l. A layout that reaches
// one element twice is rejected; use ViewOf for those.
func New[T Elem](data []T, l Layout, dev Device) (*Tensor[T], error) {
	return tensor.New(data, l, dev)
}

// FromVec takes ownership of data as a 1-D tensor.
func FromVec[T Elem](data []T, dev Device) *Tensor[T] {
	return tensor.FromVec(data, dev)
}

// AsArray takes ownership of data laid out densely in the device order.
// One extent may be -1.
//
// Example:
//
//	a, err := tensor.AsArray(data, []int{2, -1}, dev)
func AsArray[T Elem](data []T, shape []int, dev Device) (*Tensor[T], error) {
	return tensor.AsArray(data, shape, dev)
}

// ViewOf borrows data read-only through l.
func ViewOf[T Elem](data []T, l Layout, dev Device) (*Tensor[T], error) {
	return tensor.ViewOf(data, l, dev)
}

// ViewMutOf borrows data for writing through l. Like New it rejects a
// layout that reaches one element twice.
func ViewMutOf[T Elem](data []T, l Layout, dev Device) (*Tensor[T], error) {
	return tensor.ViewMutOf(data, l, dev)
}

// Zeros creates a zero tensor in the device order.
func Zeros[T Elem](shape []int, dev Device) *Tensor[T] {
	return tensor.Zeros[T](shape, dev)
}

// ZerosOrder creates a zero tensor laid out in order.
func ZerosOrder[T Elem](shape []int, order Order, dev Device) *Tensor[T] {
	return tensor.ZerosOrder[T](shape, order, dev)
}

// Empty creates a tensor with unspecified contents.
func Empty[T Elem](shape []int, dev Device) *Tensor[T] {
	return tensor.Empty[T](shape, dev)
}

// ZerosLike creates a zero tensor shaped like t.
func ZerosLike[T Elem](t *Tensor[T]) *Tensor[T] {
	return tensor.ZerosLike(t)
}

// Full creates a tensor filled with v.
func Full[T Elem](shape []int, v T, dev Device) *Tensor[T] {
	return tensor.Full(shape, v, dev)
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape []int, dev Device) *Tensor[T] {
	return tensor.Ones[T](shape, dev)
}

// Arange returns [0, stop).
//
// Example:
//
//	a := tensor.Arange(24, dev)   // int
//	b := tensor.Arange(12.0, dev) // float64
func Arange[T Number](stop T, dev Device) *Tensor[T] {
	return tensor.Arange(stop, dev)
}

// ArangeStep returns start, start+step, ... excluding stop.
func ArangeStep[T Number](start, stop, step T, dev Device) (*Tensor[T], error) {
	return tensor.ArangeStep(start, stop, step, dev)
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace[T Float](start, stop T, n int, dev Device) *Tensor[T] {
	return tensor.Linspace(start, stop, n, dev)
}

// Eye returns an n x m matrix with ones on the k-th diagonal.
func Eye[T Number](n, m, k int, dev Device) *Tensor[T] {
	return tensor.Eye[T](n, m, k, dev)
}

// Diag builds a diagonal matrix from a vector or extracts the diagonal of
// a matrix.
func Diag[T Elem](v *Tensor[T]) (*Tensor[T], error) {
	return tensor.Diag(v)
}

// DTypeName returns the element type name.
func DTypeName[T Elem]() string {
	return tensor.DTypeName[T]()
}
