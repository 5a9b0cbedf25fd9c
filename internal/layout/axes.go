package layout

import "github.com/born-ml/strided/internal/errs"

// Transpose permutes the axes. With no arguments the axis order is reversed.
func (l Layout) Transpose(axes ...int) (Layout, error) {
	n := len(l.shape)
	if len(axes) == 0 {
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	if len(axes) != n {
		return Layout{}, errs.InvalidLayout("transpose: %d axes given for %d-D layout", len(axes), n)
	}
	perm, err := NormAxes(axes, n)
	if err != nil {
		return Layout{}, err
	}
	shape := make(Shape, n)
	stride := make([]int, n)
	for i, ax := range perm {
		shape[i] = l.shape[ax]
		stride[i] = l.stride[ax]
	}
	return l.derive(shape, stride, l.offset), nil
}

// ReverseAxes reverses the axis order (the matrix transpose for rank 2).
func (l Layout) ReverseAxes() Layout {
	out, _ := l.Transpose()
	return out
}

// SwapAxes exchanges two axes.
func (l Layout) SwapAxes(a, b int) (Layout, error) {
	n := len(l.shape)
	axA, err := normAxis(a, n)
	if err != nil {
		return Layout{}, err
	}
	axB, err := normAxis(b, n)
	if err != nil {
		return Layout{}, err
	}
	shape, stride := l.shape.Clone(), l.Stride()
	shape[axA], shape[axB] = shape[axB], shape[axA]
	stride[axA], stride[axB] = stride[axB], stride[axA]
	return l.derive(shape, stride, l.offset), nil
}

// Flip reverses traversal along axis: the stride changes sign and the offset
// moves to the former last element.
func (l Layout) Flip(axis int) (Layout, error) {
	ax, err := normAxis(axis, len(l.shape))
	if err != nil {
		return Layout{}, err
	}
	stride := l.Stride()
	offset := l.offset
	if l.shape[ax] > 0 {
		offset += (l.shape[ax] - 1) * stride[ax]
	}
	stride[ax] = -stride[ax]
	return l.derive(l.shape.Clone(), stride, offset), nil
}

// InsertAxis inserts a length-1 axis before position axis (axis may equal the
// rank to append). Its stride is the stride of the axis it precedes, or 1 at
// the end.
func (l Layout) InsertAxis(axis int) (Layout, error) {
	n := len(l.shape)
	ax := axis
	if ax < 0 {
		ax += n + 1
	}
	if ax < 0 || ax > n {
		return Layout{}, errs.OutOfRange("axis", axis, n+1)
	}
	s := 1
	if ax < n {
		s = l.stride[ax]
	}
	shape := make(Shape, 0, n+1)
	shape = append(append(append(shape, l.shape[:ax]...), 1), l.shape[ax:]...)
	stride := make([]int, 0, n+1)
	stride = append(append(append(stride, l.stride[:ax]...), s), l.stride[ax:]...)
	return l.derive(shape, stride, l.offset), nil
}

// RemoveAxis removes an axis of extent 1.
func (l Layout) RemoveAxis(axis int) (Layout, error) {
	ax, err := normAxis(axis, len(l.shape))
	if err != nil {
		return Layout{}, err
	}
	if l.shape[ax] != 1 {
		return Layout{}, errs.InvalidLayout("cannot remove axis %d of extent %d", axis, l.shape[ax])
	}
	shape := append(l.shape[:ax:ax], l.shape[ax+1:]...)
	stride := append(l.stride[:ax:ax], l.stride[ax+1:]...)
	return l.derive(shape, stride, l.offset), nil
}

// Squeeze removes every axis of extent 1.
func (l Layout) Squeeze() Layout {
	shape := make(Shape, 0, len(l.shape))
	stride := make([]int, 0, len(l.shape))
	for k, n := range l.shape {
		if n != 1 {
			shape = append(shape, n)
			stride = append(stride, l.stride[k])
		}
	}
	return l.derive(shape, stride, l.offset)
}

// Diagonal selects the k-th diagonal of the plane spanned by axes a1 and a2.
// Both axes are removed and the diagonal is appended as the last axis with
// stride stride[a1]+stride[a2].
func (l Layout) Diagonal(k, a1, a2 int) (Layout, error) {
	n := len(l.shape)
	ax1, err := normAxis(a1, n)
	if err != nil {
		return Layout{}, err
	}
	ax2, err := normAxis(a2, n)
	if err != nil {
		return Layout{}, err
	}
	if ax1 == ax2 {
		return Layout{}, errs.InvalidLayout("diagonal: axes %d and %d are the same", a1, a2)
	}
	n1, n2 := l.shape[ax1], l.shape[ax2]
	offset := l.offset
	var length int
	if k >= 0 {
		length = max(0, min(n1, n2-k))
		if length > 0 {
			offset += k * l.stride[ax2]
		}
	} else {
		length = max(0, min(n1+k, n2))
		if length > 0 {
			offset -= k * l.stride[ax1]
		}
	}
	shape := make(Shape, 0, n-1)
	stride := make([]int, 0, n-1)
	for ax := range l.shape {
		if ax != ax1 && ax != ax2 {
			shape = append(shape, l.shape[ax])
			stride = append(stride, l.stride[ax])
		}
	}
	shape = append(shape, length)
	stride = append(stride, l.stride[ax1]+l.stride[ax2])
	return l.derive(shape, stride, offset), nil
}
