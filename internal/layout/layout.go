package layout

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/born-ml/strided/internal/errs"
)

// contiguity flags, computed once per layout.
type contiguity uint8

const (
	contigC contiguity = 1 << iota
	contigF
)

// Layout maps a logical multi-index onto a flat buffer:
//
//	address(i) = offset + sum(i[k] * stride[k])
//
// Layout is an immutable value; every derivation returns a new Layout.
// Strides are in elements and may be negative or zero (broadcast).
//
// The rank is either dynamic (the default) or fixed by IntoDim. A fixed rank
// survives rank-preserving derivations only.
type Layout struct {
	shape  Shape
	stride []int
	offset int
	fixed  bool
	flags  contiguity
}

// New creates a layout and checks that it is self-consistent: equal lengths,
// non-negative extents and offset, and no reachable negative address.
func New(shape Shape, stride []int, offset int) (Layout, error) {
	if len(shape) != len(stride) {
		return Layout{}, errs.InvalidLayout("shape %v and stride %v differ in rank", shape, formatInts(stride))
	}
	if err := shape.Validate(); err != nil {
		return Layout{}, errs.InvalidLayout("%v", err)
	}
	if offset < 0 {
		return Layout{}, errs.InvalidLayout("negative offset %d", offset)
	}
	l := build(shape.Clone(), append([]int(nil), stride...), offset, false)
	if lo, _ := l.Bounds(); l.Size() > 0 && lo < 0 {
		return Layout{}, errs.InvalidLayout("layout reaches negative address %d (shape %v, stride %v, offset %d)",
			lo, shape, formatInts(stride), offset)
	}
	return l, nil
}

// Contig returns the dense layout of shape in the given order, at offset 0.
func Contig(shape Shape, order Order) Layout {
	return build(shape.Clone(), shape.ComputeStrides(order), 0, false)
}

// C returns the dense row-major layout of shape.
func C(shape ...int) Layout { return Contig(shape, RowMajor) }

// F returns the dense column-major layout of shape.
func F(shape ...int) Layout { return Contig(shape, ColMajor) }

// build assembles a layout from slices it takes ownership of.
func build(shape Shape, stride []int, offset int, fixed bool) Layout {
	l := Layout{shape: shape, stride: stride, offset: offset, fixed: fixed}
	if isContig(shape, stride, RowMajor) {
		l.flags |= contigC
	}
	if isContig(shape, stride, ColMajor) {
		l.flags |= contigF
	}
	return l
}

// derive builds a layout of the same dimensionality class: the fixed tag is
// kept only when the rank did not change.
func (l Layout) derive(shape Shape, stride []int, offset int) Layout {
	return build(shape, stride, offset, l.fixed && len(shape) == len(l.shape))
}

func isContig(shape Shape, stride []int, order Order) bool {
	if shape.NumElements() == 0 {
		return true
	}
	expect := 1
	check := func(k int) bool {
		if shape[k] == 1 {
			return true
		}
		if stride[k] != expect {
			return false
		}
		expect *= shape[k]
		return true
	}
	if order == ColMajor {
		for k := 0; k < len(shape); k++ {
			if !check(k) {
				return false
			}
		}
		return true
	}
	for k := len(shape) - 1; k >= 0; k-- {
		if !check(k) {
			return false
		}
	}
	return true
}

// Shape returns a copy of the extents.
func (l Layout) Shape() Shape { return l.shape.Clone() }

// Stride returns a copy of the strides.
func (l Layout) Stride() []int {
	out := make([]int, len(l.stride))
	copy(out, l.stride)
	return out
}

// Offset returns the element offset of index zero.
func (l Layout) Offset() int { return l.offset }

// Ndim returns the rank.
func (l Layout) Ndim() int { return len(l.shape) }

// Size returns the number of addressed elements.
func (l Layout) Size() int { return l.shape.NumElements() }

// Dim returns the extent of axis k (negative counts from the end).
func (l Layout) Dim(k int) (int, error) {
	ax, err := normAxis(k, len(l.shape))
	if err != nil {
		return 0, err
	}
	return l.shape[ax], nil
}

// StrideAt returns the stride of axis k without bounds normalization.
func (l Layout) StrideAt(k int) int { return l.stride[k] }

// ShapeAt returns the extent of axis k without bounds normalization.
func (l Layout) ShapeAt(k int) int { return l.shape[k] }

// IsCContig reports row-major contiguity (offset is not considered).
func (l Layout) IsCContig() bool { return l.flags&contigC != 0 }

// IsFContig reports column-major contiguity (offset is not considered).
func (l Layout) IsFContig() bool { return l.flags&contigF != 0 }

// IsContig reports contiguity in the given order.
func (l Layout) IsContig(order Order) bool {
	if order == ColMajor {
		return l.IsFContig()
	}
	return l.IsCContig()
}

// Contiguity returns the classification label: CcFf, Cc, Ff or Custom.
func (l Layout) Contiguity() string {
	switch {
	case l.IsCContig() && l.IsFContig():
		return "CcFf"
	case l.IsCContig():
		return "Cc"
	case l.IsFContig():
		return "Ff"
	default:
		return "Custom"
	}
}

// IsFixed reports whether the rank is fixed.
func (l Layout) IsFixed() bool { return l.fixed }

// IntoDim fixes the rank to n. The conversion never reallocates.
func (l Layout) IntoDim(n int) (Layout, error) {
	if n != len(l.shape) {
		return Layout{}, errs.ShapeMismatch("cannot convert %d-D layout into %d-D", len(l.shape), n)
	}
	l.fixed = true
	return l, nil
}

// IntoDyn drops the fixed-rank tag.
func (l Layout) IntoDyn() Layout {
	l.fixed = false
	return l
}

// Bounds returns the lowest and highest addresses reachable by a valid
// multi-index. For an empty layout hi < lo.
func (l Layout) Bounds() (lo, hi int) {
	lo, hi = l.offset, l.offset
	for k, n := range l.shape {
		if n == 0 {
			return l.offset, l.offset - 1
		}
		span := (n - 1) * l.stride[k]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	return lo, hi
}

// MayOverlap reports whether two valid multi-indices may address the same
// element. Axes are taken from the smallest stride up; an axis whose stride
// does not clear the span of the faster axes counts as overlapping, so a
// zero stride on an axis of extent > 1 always does. Interleaved layouts
// that never collide may still be reported.
func (l Layout) MayOverlap() bool {
	type axis struct{ n, s int }
	axes := make([]axis, 0, len(l.shape))
	for k, n := range l.shape {
		if n == 0 {
			return false
		}
		if n > 1 {
			s := l.stride[k]
			if s < 0 {
				s = -s
			}
			axes = append(axes, axis{n, s})
		}
	}
	slices.SortFunc(axes, func(a, b axis) int { return cmp.Compare(a.s, b.s) })
	reach := 1
	for _, a := range axes {
		if a.s < reach {
			return true
		}
		reach += (a.n - 1) * a.s
	}
	return false
}

// CheckBuffer validates that every addressed element lies in a buffer of n elements.
func (l Layout) CheckBuffer(n int) error {
	if l.Size() == 0 {
		if l.offset > n {
			return errs.InvalidLayout("offset %d beyond buffer of %d elements", l.offset, n)
		}
		return nil
	}
	lo, hi := l.Bounds()
	if lo < 0 || hi >= n {
		return errs.InvalidLayout("layout addresses [%d, %d] but buffer holds %d elements (%s)", lo, hi, n, l.brief())
	}
	return nil
}

// Index returns the buffer address of a full multi-index after bounds checks.
// Indices must lie in [0, extent).
func (l Layout) Index(idx []int) (int, error) {
	if len(idx) != len(l.shape) {
		return 0, errs.ShapeMismatch("expected %d indices, got %d", len(l.shape), len(idx))
	}
	addr := l.offset
	for k, i := range idx {
		if i < 0 || i >= l.shape[k] {
			return 0, errs.OutOfRange("idx", i, l.shape[k])
		}
		addr += i * l.stride[k]
	}
	return addr, nil
}

// IndexUnchecked returns the buffer address of idx without any checks.
// Out-of-range indices silently address some other element (or none);
// the caller is responsible for validity.
func (l Layout) IndexUnchecked(idx []int) int {
	addr := l.offset
	for k, i := range idx {
		addr += i * l.stride[k]
	}
	return addr
}

// Unravel converts a flat position into a multi-index, traversing the shape
// in the given order. dst must have length Ndim.
func (l Layout) Unravel(flat int, order Order, dst []int) {
	if order == ColMajor {
		for k := 0; k < len(l.shape); k++ {
			dst[k] = flat % l.shape[k]
			flat /= l.shape[k]
		}
		return
	}
	for k := len(l.shape) - 1; k >= 0; k-- {
		dst[k] = flat % l.shape[k]
		flat /= l.shape[k]
	}
}

// Equal reports identical shape, stride and offset.
func (l Layout) Equal(other Layout) bool {
	if l.offset != other.offset || !l.shape.Equal(other.shape) {
		return false
	}
	for k := range l.stride {
		if l.stride[k] != other.stride[k] {
			return false
		}
	}
	return true
}

func (l Layout) brief() string {
	return fmt.Sprintf("shape: %v, stride: %s, offset: %d", l.shape, formatInts(l.stride), l.offset)
}

// String prints the debug description of the layout.
func (l Layout) String() string {
	dyn := " (dyn)"
	if l.fixed {
		dyn = ""
	}
	return fmt.Sprintf("%d-Dim%s, contiguous: %s\n%s", len(l.shape), dyn, l.Contiguity(), l.brief())
}

// LogValue implements slog.LogValuer.
func (l Layout) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("shape", []int(l.shape)),
		slog.Any("stride", l.stride),
		slog.Int("offset", l.offset),
		slog.String("contiguous", l.Contiguity()),
	)
}

// normAxis normalizes a possibly negative axis against rank n.
func normAxis(axis, n int) (int, error) {
	a := axis
	if a < 0 {
		a += n
	}
	if a < 0 || a >= n {
		return 0, errs.OutOfRange("axis", axis, n)
	}
	return a, nil
}

// NormAxes normalizes a list of axes against rank n and rejects duplicates.
func NormAxes(axes []int, n int) ([]int, error) {
	out := make([]int, len(axes))
	seen := make([]bool, n)
	for i, ax := range axes {
		a, err := normAxis(ax, n)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, errs.InvalidLayout("duplicate axis %d", ax)
		}
		seen[a] = true
		out[i] = a
	}
	return out, nil
}
