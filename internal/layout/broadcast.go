package layout

import "github.com/born-ml/strided/internal/errs"

// BroadcastShapes reconciles shapes for elementwise operations.
//
// Rules (NumPy-style):
//  1. Align the shapes: RowMajor aligns trailing axes and pads the shorter shape
//     with leading 1s; ColMajor aligns leading axes and pads with trailing 1s.
//  2. Aligned extents are compatible if they are equal or one of them is 1.
//
// Examples (RowMajor):
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5,)   + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → error: d1 = 4 not equal to d2 = 5
func BroadcastShapes(order Order, shapes ...Shape) (Shape, error) {
	ndim := 0
	for _, s := range shapes {
		ndim = max(ndim, len(s))
	}
	result := make(Shape, ndim)
	for ax := 0; ax < ndim; ax++ {
		d := 1
		for _, s := range shapes {
			e := alignedExtent(s, ax, ndim, order)
			switch {
			case e == d, e == 1:
			case d == 1:
				d = e
			default:
				return nil, errs.Broadcast(d, e)
			}
		}
		result[ax] = d
	}
	return result, nil
}

// alignedExtent returns the extent of s at result axis ax, or 1 for padding.
func alignedExtent(s Shape, ax, ndim int, order Order) int {
	k := sourceAxis(len(s), ax, ndim, order)
	if k < 0 {
		return 1
	}
	return s[k]
}

// sourceAxis maps result axis ax to the source axis, or -1 for a padded axis.
func sourceAxis(srcDim, ax, ndim int, order Order) int {
	if order == ColMajor {
		if ax < srcDim {
			return ax
		}
		return -1
	}
	k := ax - (ndim - srcDim)
	if k < 0 {
		return -1
	}
	return k
}

// BroadcastTo returns a layout with the given shape that replicates l along
// padded and extent-1 axes (stride 0). No data is copied.
func (l Layout) BroadcastTo(shape Shape, order Order) (Layout, error) {
	ndim := len(shape)
	if len(l.shape) > ndim {
		return Layout{}, errs.InvalidLayout("cannot broadcast %d-D layout to %d-D shape %v", len(l.shape), ndim, shape)
	}
	stride := make([]int, ndim)
	for ax := 0; ax < ndim; ax++ {
		k := sourceAxis(len(l.shape), ax, ndim, order)
		if k < 0 {
			continue
		}
		switch e := l.shape[k]; {
		case e == shape[ax]:
			stride[ax] = l.stride[k]
		case e == 1:
			stride[ax] = 0
		default:
			return Layout{}, errs.Broadcast(e, shape[ax])
		}
	}
	return l.derive(shape.Clone(), stride, l.offset), nil
}

// BroadcastLayouts computes the common shape of all layouts and returns each
// layout broadcast to it.
func BroadcastLayouts(order Order, ls ...Layout) (Shape, []Layout, error) {
	shapes := make([]Shape, len(ls))
	for i, l := range ls {
		shapes[i] = l.shape
	}
	shape, err := BroadcastShapes(order, shapes...)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Layout, len(ls))
	for i, l := range ls {
		if out[i], err = l.BroadcastTo(shape, order); err != nil {
			return nil, nil, err
		}
	}
	return shape, out, nil
}
