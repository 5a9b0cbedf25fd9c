package layout

import "github.com/born-ml/strided/internal/errs"

// InferShape resolves a single -1 extent against size.
func InferShape(shape []int, size int) (Shape, error) {
	out := make(Shape, len(shape))
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, errs.InvalidLayout("reshape: more than one -1 in %v", formatInts(shape))
			}
			infer = i
		case d < 0:
			return nil, errs.InvalidLayout("reshape: invalid extent %d in %v", d, formatInts(shape))
		default:
			known *= d
		}
		out[i] = d
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, errs.InvalidLayout("reshape: cannot infer -1 in %v for size %d", formatInts(shape), size)
		}
		out[infer] = size / known
	}
	if out.NumElements() != size {
		return nil, errs.InvalidLayout("reshape: cannot reshape size %d into shape %v", size, out)
	}
	return out, nil
}

// Reshape re-expresses l with newShape, traversing elements in the given
// order. When the result can address the same buffer it is returned with
// ok = true; otherwise ok = false and the returned layout is the dense layout
// a copy must be written into.
func (l Layout) Reshape(newShape []int, order Order) (out Layout, ok bool, err error) {
	shape, err := InferShape(newShape, l.Size())
	if err != nil {
		return Layout{}, false, err
	}
	if l.IsContig(order) {
		c := Contig(shape, order)
		return l.derive(c.shape, c.stride, l.offset), true, nil
	}
	if stride, ok := nocopyStrides(l.shape, l.stride, shape, order); ok {
		return l.derive(shape, stride, l.offset), true, nil
	}
	return Contig(shape, order), false, nil
}

// nocopyStrides finds strides for newShape addressing the same elements as
// (oldShape, oldStride) in the given traversal order, grouping runs of axes
// whose products match.
func nocopyStrides(oldShape Shape, oldStride []int, newShape Shape, order Order) ([]int, bool) {
	var oDims, oStrides []int
	for k, n := range oldShape {
		if n != 1 {
			oDims = append(oDims, n)
			oStrides = append(oStrides, oldStride[k])
		}
	}
	nDims := []int(newShape.Clone())
	if order == ColMajor {
		reverse(oDims)
		reverse(oStrides)
		reverse(nDims)
	}

	stride := make([]int, len(nDims))
	oi, oj := 0, 1
	ni, nj := 0, 1
	for ni < len(nDims) && oi < len(oDims) {
		np, op := nDims[ni], oDims[oi]
		for np != op {
			if np < op {
				if nj >= len(nDims) {
					return nil, false
				}
				np *= nDims[nj]
				nj++
			} else {
				if oj >= len(oDims) {
					return nil, false
				}
				op *= oDims[oj]
				oj++
			}
		}
		for ok := oi; ok < oj-1; ok++ {
			if oStrides[ok] != oDims[ok+1]*oStrides[ok+1] {
				return nil, false
			}
		}
		stride[nj-1] = oStrides[oj-1]
		for nk := nj - 1; nk > ni; nk-- {
			stride[nk-1] = stride[nk] * nDims[nk]
		}
		ni, nj = nj, nj+1
		oi, oj = oj, oj+1
	}
	// Trailing extent-1 axes, and any extent-1 axis inside a group, get the
	// stride a dense layout would give them.
	for k := len(nDims) - 1; k >= 0; k-- {
		if nDims[k] != 1 {
			continue
		}
		if k+1 < len(nDims) {
			stride[k] = stride[k+1] * max(nDims[k+1], 1)
		} else {
			stride[k] = 1
		}
	}
	if order == ColMajor {
		reverse(stride)
	}
	return stride, true
}

func reverse(v []int) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
