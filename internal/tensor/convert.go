package tensor

import (
	"log/slog"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// View returns a read-only view of t.
func (t *Tensor[T]) View() *Tensor[T] {
	return t.derive(t.layout, View)
}

// ViewMut returns a writable view of t. t must itself be writable.
func (t *Tensor[T]) ViewMut() (*Tensor[T], error) {
	if err := t.checkWritable("view_mut"); err != nil {
		return nil, err
	}
	return t.derive(t.layout, ViewMut), nil
}

// IntoOwned returns t if it is owned, and otherwise copies the addressed
// elements into a new dense tensor in the device order.
func (t *Tensor[T]) IntoOwned() *Tensor[T] {
	if t.mode == Owned {
		return t
	}
	slog.Debug("copying view into owned tensor", "layout", t.layout, "mode", t.mode)
	return t.Clone()
}

// Clone copies the addressed elements into a new dense owned tensor in the
// device order.
func (t *Tensor[T]) Clone() *Tensor[T] {
	be := t.backend()
	data := cpu.Gather(be, t.storage.data, t.layout)
	return &Tensor[T]{
		storage: NewStorage(data, t.storage.dev),
		layout:  layout.Contig(t.layout.Shape(), be.Order()),
		mode:    Owned,
	}
}

// IntoVec returns the elements in device-order traversal. The buffer itself
// is returned when t is owned, dense in the device order at offset 0 and
// the buffer holds nothing else; otherwise the elements are copied.
func (t *Tensor[T]) IntoVec() []T {
	if t.mode == Owned && t.layout.IsContig(t.order()) && t.layout.Offset() == 0 && t.storage.Len() == t.Size() {
		return t.storage.data
	}
	slog.Debug("into_vec copies", "layout", t.layout)
	return t.ToVec()
}

// ToVec copies the elements in device-order traversal.
func (t *Tensor[T]) ToVec() []T {
	return cpu.Gather(t.backend(), t.storage.data, t.layout)
}

// ToScalar returns the only element of a one-element tensor.
func (t *Tensor[T]) ToScalar() (T, error) {
	if t.Size() != 1 {
		var zero T
		return zero, errs.ShapeMismatch("to_scalar: tensor of shape %v has %d elements", t.layout.Shape(), t.Size())
	}
	idx := make([]int, t.Ndim())
	return t.storage.data[t.layout.IndexUnchecked(idx)], nil
}

// IntoRawParts returns the buffer, layout and device.
func (t *Tensor[T]) IntoRawParts() ([]T, layout.Layout, device.Device) {
	return t.storage.data, t.layout, t.storage.dev
}

// RawData returns the whole underlying buffer, including elements the
// layout does not address.
func (t *Tensor[T]) RawData() []T {
	return t.storage.data
}

// ToDevice rebinds t to dev. All devices are CPU devices, so the buffer
// and layout are shared; only later operations see the new configuration.
func (t *Tensor[T]) ToDevice(dev device.Device) *Tensor[T] {
	return &Tensor[T]{storage: NewStorage(t.storage.data, dev), layout: t.layout, mode: t.mode}
}

// IntoDim fixes the rank of the layout to n.
func (t *Tensor[T]) IntoDim(n int) (*Tensor[T], error) {
	l, err := t.layout.IntoDim(n)
	if err != nil {
		return nil, err
	}
	return t.derive(l, t.mode), nil
}

// IntoDyn makes the rank of the layout dynamic.
func (t *Tensor[T]) IntoDyn() *Tensor[T] {
	return t.derive(t.layout.IntoDyn(), t.mode)
}
