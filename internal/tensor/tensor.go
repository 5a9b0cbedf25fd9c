package tensor

import (
	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// Mode is the ownership mode of a tensor.
type Mode int

// Ownership modes.
const (
	// Owned tensors hold their buffer; it lives as long as any tensor uses it.
	Owned Mode = iota
	// View tensors borrow a buffer read-only. Writes return ErrReadOnly.
	View
	// ViewMut tensors borrow a buffer for writing. While one exists no other
	// tensor may read or write the elements it addresses; this is a
	// contract on the caller and is not checked at run time.
	ViewMut
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Owned:
		return "Owned"
	case View:
		return "View"
	case ViewMut:
		return "ViewMut"
	default:
		return "Unknown"
	}
}

// Tensor is a storage addressed through a layout.
//
// Example:
//
//	dev := device.NewCPU(0)
//	a, _ := tensor.AsArray([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, dev)
//	b := a.T()            // view, no copy
//	c, _ := Matmul(a, b)  // [[14 32] [32 77]]
type Tensor[T Elem] struct {
	storage Storage[T]
	layout  layout.Layout
	mode    Mode
}

// newTensor checks l against the buffer. Writable tensors must address every
// element at most once, since in-place kernels write from several workers.
func newTensor[T Elem](st Storage[T], l layout.Layout, mode Mode) (*Tensor[T], error) {
	if err := l.CheckBuffer(st.Len()); err != nil {
		return nil, err
	}
	if mode != View && l.MayOverlap() {
		return nil, errs.InvalidLayout("%s tensor cannot address an element twice (shape %v, stride %v)",
			mode, l.Shape(), l.Stride())
	}
	return &Tensor[T]{storage: st, layout: l, mode: mode}, nil
}

// New creates an owned tensor over data. The layout is checked against the
// buffer length and must not address any element twice; use NewView for
// broadcast-style layouts.
func New[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return newTensor(NewStorage(data, dev), l, Owned)
}

// NewView creates a read-only view over data.
func NewView[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return newTensor(NewStorage(data, dev), l, View)
}

// NewViewMut creates a writable view over data.
func NewViewMut[T Elem](data []T, l layout.Layout, dev device.Device) (*Tensor[T], error) {
	return newTensor(NewStorage(data, dev), l, ViewMut)
}

// derive shares the storage under a layout derived from t's.
func (t *Tensor[T]) derive(l layout.Layout, mode Mode) *Tensor[T] {
	return &Tensor[T]{storage: t.storage, layout: l, mode: mode}
}

// viewMode is the mode of a view derived from t. Exclusive views stay
// exclusive unless the derived layout addresses an element more than once.
func (t *Tensor[T]) viewMode(aliasing bool) Mode {
	if t.mode == ViewMut && !aliasing {
		return ViewMut
	}
	return View
}

// Layout returns the layout.
func (t *Tensor[T]) Layout() layout.Layout { return t.layout }

// Shape returns a copy of the shape.
func (t *Tensor[T]) Shape() layout.Shape { return t.layout.Shape() }

// Stride returns a copy of the strides.
func (t *Tensor[T]) Stride() []int { return t.layout.Stride() }

// Offset returns the buffer offset of index zero.
func (t *Tensor[T]) Offset() int { return t.layout.Offset() }

// Ndim returns the rank.
func (t *Tensor[T]) Ndim() int { return t.layout.Ndim() }

// Size returns the number of elements.
func (t *Tensor[T]) Size() int { return t.layout.Size() }

// Device returns the device the tensor is bound to.
func (t *Tensor[T]) Device() device.Device { return t.storage.dev }

// Storage returns the storage.
func (t *Tensor[T]) Storage() Storage[T] { return t.storage }

// Mode returns the ownership mode.
func (t *Tensor[T]) Mode() Mode { return t.mode }

// Writable reports whether writes through t are allowed.
func (t *Tensor[T]) Writable() bool { return t.mode != View }

func (t *Tensor[T]) checkWritable(op string) error {
	if !t.Writable() {
		return errs.ReadOnly(op)
	}
	return nil
}

func (t *Tensor[T]) order() layout.Order { return t.storage.dev.DefaultOrder() }

func (t *Tensor[T]) backend() cpu.Backend { return cpu.New(t.storage.dev) }

// String returns the %v rendering.
func (t *Tensor[T]) String() string {
	return sprint(t)
}
