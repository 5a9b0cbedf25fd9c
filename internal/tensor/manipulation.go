package tensor

import (
	"log/slog"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// Slice applies an index expression and returns a view. Nothing is copied.
//
// Example:
//
//	a := tensor.Arange(24, dev).MustIntoShape(4, 3, 2)
//	b, _ := a.Slice(layout.Range(1, 3), layout.NewAxis, layout.Ellipsis, layout.Index(0))
func (t *Tensor[T]) Slice(sels ...layout.Selector) (*Tensor[T], error) {
	l, err := t.layout.Slice(sels...)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}

// SliceMut is Slice returning a writable view. t must be writable.
func (t *Tensor[T]) SliceMut(sels ...layout.Selector) (*Tensor[T], error) {
	if err := t.checkWritable("slice_mut"); err != nil {
		return nil, err
	}
	l, err := t.layout.Slice(sels...)
	if err != nil {
		return nil, err
	}
	return t.derive(l, ViewMut), nil
}

// Index is Slice with loose arguments: ints are indices, nil inserts an
// axis and selectors pass through. See layout.Selectors.
func (t *Tensor[T]) Index(args ...any) (*Tensor[T], error) {
	sels, err := layout.Selectors(args...)
	if err != nil {
		return nil, err
	}
	return t.Slice(sels...)
}

// I is Index that panics on error.
func (t *Tensor[T]) I(args ...any) *Tensor[T] {
	return errs.Must(t.Index(args...))
}

// IMut is SliceMut with loose arguments that panics on error.
func (t *Tensor[T]) IMut(args ...any) *Tensor[T] {
	sels := errs.Must(layout.Selectors(args...))
	return errs.Must(t.SliceMut(sels...))
}

// reshape returns a view when the layout allows it, else a dense copy.
func (t *Tensor[T]) reshape(shape []int, mode Mode) (*Tensor[T], error) {
	l, ok, err := t.layout.Reshape(shape, t.order())
	if err != nil {
		return nil, err
	}
	if ok {
		return t.derive(l, mode), nil
	}
	slog.Debug("reshape requires a copy", "from", t.layout, "shape", l.Shape())
	data := cpu.Gather(t.backend(), t.storage.data, t.layout)
	return &Tensor[T]{storage: NewStorage(data, t.storage.dev), layout: l, mode: Owned}, nil
}

// Reshape returns t with a new shape, traversed in the device order. One
// extent may be -1. The result is a view when no copy is needed and an
// owned copy otherwise.
func (t *Tensor[T]) Reshape(shape ...int) (*Tensor[T], error) {
	return t.reshape(shape, t.viewMode(false))
}

// IntoShape is Reshape for a tensor the caller hands over: when no copy is
// needed the result keeps t's mode, so an owned tensor stays owned and
// shares its buffer with t.
func (t *Tensor[T]) IntoShape(shape ...int) (*Tensor[T], error) {
	return t.reshape(shape, t.mode)
}

// MustIntoShape is IntoShape that panics on error.
func (t *Tensor[T]) MustIntoShape(shape ...int) *Tensor[T] {
	return errs.Must(t.IntoShape(shape...))
}

// Flatten reshapes t to one dimension.
func (t *Tensor[T]) Flatten() (*Tensor[T], error) {
	return t.Reshape(-1)
}

// Transpose permutes the axes; no arguments reverses them.
func (t *Tensor[T]) Transpose(axes ...int) (*Tensor[T], error) {
	l, err := t.layout.Transpose(axes...)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}

// T returns the view with reversed axes.
func (t *Tensor[T]) T() *Tensor[T] {
	return t.derive(t.layout.ReverseAxes(), t.viewMode(false))
}

// SwapAxes exchanges two axes.
func (t *Tensor[T]) SwapAxes(a, b int) (*Tensor[T], error) {
	l, err := t.layout.SwapAxes(a, b)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}

// Flip reverses the traversal of an axis.
func (t *Tensor[T]) Flip(axis int) (*Tensor[T], error) {
	l, err := t.layout.Flip(axis)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}

// InsertAxis inserts a length-1 axis at axis.
func (t *Tensor[T]) InsertAxis(axis int) (*Tensor[T], error) {
	l, err := t.layout.InsertAxis(axis)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}

// Squeeze removes every length-1 axis.
func (t *Tensor[T]) Squeeze() *Tensor[T] {
	return t.derive(t.layout.Squeeze(), t.viewMode(false))
}

// BroadcastTo returns a read-only view replicated to shape, aligned the way
// the device order aligns broadcast operands.
func (t *Tensor[T]) BroadcastTo(shape ...int) (*Tensor[T], error) {
	l, err := t.layout.BroadcastTo(shape, t.order())
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(true)), nil
}

// Diagonal returns the k-th diagonal of the plane of axes a1 and a2 as the
// last axis of a view.
func (t *Tensor[T]) Diagonal(k, a1, a2 int) (*Tensor[T], error) {
	l, err := t.layout.Diagonal(k, a1, a2)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.viewMode(false)), nil
}
