package tensor

import (
	"math"

	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// FromVec takes ownership of data as a 1-D tensor. Nothing is copied.
//
// Example:
//
//	v := tensor.FromVec([]int{1, 2, 3}, dev)
func FromVec[T Elem](data []T, dev device.Device) *Tensor[T] {
	return &Tensor[T]{
		storage: NewStorage(data, dev),
		layout:  layout.C(len(data)),
		mode:    Owned,
	}
}

// AsArray takes ownership of data laid out densely in the device order.
// One extent may be -1 and is inferred from len(data).
func AsArray[T Elem](data []T, shape []int, dev device.Device) (*Tensor[T], error) {
	s, err := layout.InferShape(shape, len(data))
	if err != nil {
		return nil, err
	}
	return New(data, layout.Contig(s, dev.DefaultOrder()), dev)
}

// FromLayout takes ownership of data addressed through l.
func FromLayout[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return New(data, l, dev)
}

// ViewOf borrows data read-only through l.
func ViewOf[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return NewView(data, l, dev)
}

// ViewMutOf borrows data for writing through l.
func ViewMutOf[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return NewViewMut(data, l, dev)
}

func mustShape(shape []int) layout.Shape {
	s := layout.Shape(shape)
	if err := s.Validate(); err != nil {
		panic(errs.InvalidLayout("%v", err))
	}
	return s.Clone()
}

// ZerosOrder creates a zero tensor laid out densely in order.
// It panics on a negative extent.
func ZerosOrder[T Elem](shape []int, order layout.Order, dev device.Device) *Tensor[T] {
	s := mustShape(shape)
	return &Tensor[T]{
		storage: NewStorage(make([]T, s.NumElements()), dev),
		layout:  layout.Contig(s, order),
		mode:    Owned,
	}
}

// Zeros creates a zero tensor in the device order.
//
// Example:
//
//	z := tensor.Zeros[float32]([]int{3, 4}, dev)
func Zeros[T Elem](shape []int, dev device.Device) *Tensor[T] {
	return ZerosOrder[T](shape, dev.DefaultOrder(), dev)
}

// Empty creates a tensor whose contents are unspecified. Go zeroes every
// allocation, so it equals Zeros.
func Empty[T Elem](shape []int, dev device.Device) *Tensor[T] {
	return Zeros[T](shape, dev)
}

// ZerosLike creates a zero tensor with the shape and device of t.
func ZerosLike[T Elem](t *Tensor[T]) *Tensor[T] {
	return Zeros[T](t.Shape(), t.Device())
}

// Full creates a tensor filled with v.
func Full[T Elem](shape []int, v T, dev device.Device) *Tensor[T] {
	t := Zeros[T](shape, dev)
	for i := range t.storage.data {
		t.storage.data[i] = v
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones[T Number](shape []int, dev device.Device) *Tensor[T] {
	return Full(shape, T(1), dev)
}

// Arange returns [0, 1, ..., stop-1].
//
// Example:
//
//	a := tensor.Arange(24, dev) // int tensor
//	b := tensor.Arange(12.0, dev)
func Arange[T Number](stop T, dev device.Device) *Tensor[T] {
	t, err := ArangeStep(0, stop, 1, dev)
	if err != nil {
		panic(err)
	}
	return t
}

// ArangeStep returns start, start+step, ... up to but excluding stop.
func ArangeStep[T Number](start, stop, step T, dev device.Device) (*Tensor[T], error) {
	if step == 0 {
		return nil, errs.InvalidLayout("arange: step cannot be zero")
	}
	n := int(math.Ceil((float64(stop) - float64(start)) / float64(step)))
	n = max(n, 0)
	data := make([]T, n)
	v := start
	for i := range data {
		data[i] = v
		v += step
	}
	return FromVec(data, dev), nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace[T Float](start, stop T, n int, dev device.Device) *Tensor[T] {
	data := make([]T, max(n, 0))
	if n == 1 {
		data[0] = start
	}
	if n > 1 {
		step := (stop - start) / T(n-1)
		for i := range data {
			data[i] = start + T(i)*step
		}
		data[n-1] = stop
	}
	return FromVec(data, dev)
}

// Eye returns an n x m matrix with ones on the k-th diagonal (k > 0 above
// the main diagonal, k < 0 below).
func Eye[T Number](n, m, k int, dev device.Device) *Tensor[T] {
	t := Zeros[T]([]int{n, m}, dev)
	for i := 0; i < n; i++ {
		j := i + k
		if j < 0 || j >= m {
			continue
		}
		t.storage.data[t.layout.IndexUnchecked([]int{i, j})] = 1
	}
	return t
}

// Diag builds a square matrix with v on its diagonal when v is 1-D, and
// copies out the main diagonal when v is 2-D.
func Diag[T Elem](v *Tensor[T]) (*Tensor[T], error) {
	switch v.Ndim() {
	case 1:
		n := v.layout.ShapeAt(0)
		out := Zeros[T]([]int{n, n}, v.Device())
		for i := 0; i < n; i++ {
			out.storage.data[out.layout.IndexUnchecked([]int{i, i})] = v.storage.data[v.layout.IndexUnchecked([]int{i})]
		}
		return out, nil
	case 2:
		d, err := v.Diagonal(0, 0, 1)
		if err != nil {
			return nil, err
		}
		return d.Clone(), nil
	default:
		return nil, errs.ShapeMismatch("diag: expected 1-D or 2-D tensor, got %d-D", v.Ndim())
	}
}
