package tensor

import (
	"unsafe"

	"github.com/born-ml/strided/internal/device"
)

// Storage pairs a flat buffer with the device it belongs to.
// Views of one buffer share the same Storage value.
type Storage[T Elem] struct {
	data []T
	dev  device.Device
}

// NewStorage wraps data without copying.
func NewStorage[T Elem](data []T, dev device.Device) Storage[T] {
	return Storage[T]{data: data, dev: dev}
}

// Len returns the buffer length in elements.
func (s Storage[T]) Len() int { return len(s.data) }

// Data returns the buffer itself, not a copy.
func (s Storage[T]) Data() []T { return s.data }

// Device returns the device the buffer belongs to.
func (s Storage[T]) Device() device.Device { return s.dev }

// IntoRawParts returns the buffer and device.
func (s Storage[T]) IntoRawParts() ([]T, device.Device) { return s.data, s.dev }

// shares reports whether the two buffers have any element in common,
// including sub-slices of one array that start at different elements.
func (s Storage[T]) shares(o Storage[T]) bool {
	if len(s.data) == 0 || len(o.data) == 0 {
		return false
	}
	size := unsafe.Sizeof(s.data[0])
	a := uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
	b := uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))
	return a < b+uintptr(len(o.data))*size && b < a+uintptr(len(s.data))*size
}
