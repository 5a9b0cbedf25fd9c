package tensor

import (
	"iter"

	"github.com/born-ml/strided/internal/backend/cpu"
)

// At returns the element at a full multi-index. Indices must lie in
// [0, extent).
func (t *Tensor[T]) At(idx ...int) (T, error) {
	addr, err := t.layout.Index(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.storage.data[addr], nil
}

// AtUnchecked returns the element at idx without bounds checks. An index
// out of range silently addresses another element of the buffer, and the
// runtime panics if the address falls outside it.
func (t *Tensor[T]) AtUnchecked(idx ...int) T {
	return t.storage.data[t.layout.IndexUnchecked(idx)]
}

// SetAt writes v at a full multi-index.
func (t *Tensor[T]) SetAt(v T, idx ...int) error {
	if err := t.checkWritable("set"); err != nil {
		return err
	}
	addr, err := t.layout.Index(idx)
	if err != nil {
		return err
	}
	t.storage.data[addr] = v
	return nil
}

// SetAtUnchecked writes v at idx without bounds or mode checks.
func (t *Tensor[T]) SetAtUnchecked(v T, idx ...int) {
	t.storage.data[t.layout.IndexUnchecked(idx)] = v
}

// Fill sets every addressed element to v.
func (t *Tensor[T]) Fill(v T) error {
	if err := t.checkWritable("fill"); err != nil {
		return err
	}
	cpu.Fill(t.backend(), t.storage.data, t.layout, v)
	return nil
}

// Values iterates the elements in device-order traversal.
func (t *Tensor[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.Size() == 0 {
			return
		}
		idx := make([]int, t.Ndim())
		for pos := 0; pos < t.Size(); pos++ {
			t.layout.Unravel(pos, t.order(), idx)
			if !yield(t.storage.data[t.layout.IndexUnchecked(idx)]) {
				return
			}
		}
	}
}
