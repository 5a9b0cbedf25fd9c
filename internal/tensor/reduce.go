package tensor

import (
	"math"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// ReduceOpts selects the axes of a reduction. No axes means all of them.
// Axes may be negative; duplicates are rejected. KeepDims leaves each
// reduced axis in the result with extent 1.
type ReduceOpts struct {
	Axes     []int
	KeepDims bool
}

// plan resolves opts against t: the normalized axes, the result shape and
// the number of elements folded into each result.
func plan[T Elem](t *Tensor[T], opts ReduceOpts) (axes []int, shape []int, count int, err error) {
	nd := t.Ndim()
	if len(opts.Axes) == 0 {
		axes = make([]int, nd)
		for k := range axes {
			axes[k] = k
		}
	} else if axes, err = layout.NormAxes(opts.Axes, nd); err != nil {
		return nil, nil, 0, err
	}
	reduced := make([]bool, nd)
	for _, ax := range axes {
		reduced[ax] = true
	}
	shape = []int{}
	count = 1
	for k := 0; k < nd; k++ {
		n := t.layout.ShapeAt(k)
		switch {
		case reduced[k]:
			count *= n
			if opts.KeepDims {
				shape = append(shape, 1)
			}
		default:
			shape = append(shape, n)
		}
	}
	return axes, shape, count, nil
}

// reduce folds t along opts.Axes. Unless empty is allowed, folding zero
// elements into a result fails with ErrShapeMismatch.
func reduce[T Elem, A any, U Elem](op string, t *Tensor[T], opts ReduceOpts, empty bool,
	init A, step func(acc A, pos int, v T) A, final func(A) U,
) (*Tensor[U], error) {
	axes, shape, count, err := plan(t, opts)
	if err != nil {
		return nil, err
	}
	if count == 0 && !empty {
		return nil, errs.ShapeMismatch("%s: reduction of zero elements over axes %v of shape %v", op, axes, t.layout.Shape())
	}
	// Inserted unit axes do not change the dense element order, so the
	// kernel writes the keep-dims result as if they were absent.
	out := Zeros[U](shape, t.Device())
	cpu.ReduceAxes(t.backend(), out.storage.data, t.storage.data, t.layout, axes, init, step, final)
	return out, nil
}

func fold[T Elem, A any](t *Tensor[T], init A, step func(acc A, pos int, v T) A, merge func(lo, hi A) A) A {
	return cpu.Fold(t.backend(), t.storage.data, t.layout, init, step, merge)
}

func identity[T any](v T) T { return v }

func sumStep[T Number](acc T, _ int, v T) T { return acc + v }

func prodStep[T Number](acc T, _ int, v T) T { return acc * v }

func sqStep[T Float](acc T, _ int, v T) T { return acc + v*v }

func add[T Number](x, y T) T { return x + y }

// extremum tracks the best element seen and its position.
type extremum[T Ordered] struct {
	pos int
	v   T
	ok  bool
}

func minStep[T Ordered](acc extremum[T], pos int, v T) extremum[T] {
	if !acc.ok || v < acc.v {
		return extremum[T]{pos: pos, v: v, ok: true}
	}
	return acc
}

func maxStep[T Ordered](acc extremum[T], pos int, v T) extremum[T] {
	if !acc.ok || v > acc.v {
		return extremum[T]{pos: pos, v: v, ok: true}
	}
	return acc
}

// mergeMin keeps lo on ties, so the lowest position wins.
func mergeMin[T Ordered](lo, hi extremum[T]) extremum[T] {
	if !lo.ok || (hi.ok && hi.v < lo.v) {
		return hi
	}
	return lo
}

func mergeMax[T Ordered](lo, hi extremum[T]) extremum[T] {
	if !lo.ok || (hi.ok && hi.v > lo.v) {
		return hi
	}
	return lo
}

func (e extremum[T]) value() T  { return e.v }
func (e extremum[T]) index() int { return e.pos }

func nonEmpty[T Elem](op string, t *Tensor[T]) error {
	if t.Size() == 0 {
		return errs.ShapeMismatch("%s: empty tensor of shape %v", op, t.layout.Shape())
	}
	return nil
}

// Sum returns the sum of all elements, 0 for an empty tensor.
func Sum[T Number](t *Tensor[T]) T {
	return fold(t, 0, sumStep[T], add[T])
}

// Prod returns the product of all elements, 1 for an empty tensor.
func Prod[T Number](t *Tensor[T]) T {
	return fold(t, 1, prodStep[T], func(x, y T) T { return x * y })
}

// Mean returns the arithmetic mean of all elements.
func Mean[T Float](t *Tensor[T]) (T, error) {
	if err := nonEmpty("mean", t); err != nil {
		return 0, err
	}
	return Sum(t) / T(t.Size()), nil
}

// Min returns the smallest element.
func Min[T Ordered](t *Tensor[T]) (T, error) {
	if err := nonEmpty("min", t); err != nil {
		return 0, err
	}
	return fold(t, extremum[T]{}, minStep[T], mergeMin[T]).v, nil
}

// Max returns the largest element.
func Max[T Ordered](t *Tensor[T]) (T, error) {
	if err := nonEmpty("max", t); err != nil {
		return 0, err
	}
	return fold(t, extremum[T]{}, maxStep[T], mergeMax[T]).v, nil
}

// Argmin returns the row-major flat index of the smallest element. Ties go
// to the lowest index.
func Argmin[T Ordered](t *Tensor[T]) (int, error) {
	if err := nonEmpty("argmin", t); err != nil {
		return 0, err
	}
	return fold(t, extremum[T]{}, minStep[T], mergeMin[T]).pos, nil
}

// Argmax returns the row-major flat index of the largest element. Ties go
// to the lowest index.
func Argmax[T Ordered](t *Tensor[T]) (int, error) {
	if err := nonEmpty("argmax", t); err != nil {
		return 0, err
	}
	return fold(t, extremum[T]{}, maxStep[T], mergeMax[T]).pos, nil
}

// L2Norm returns the Euclidean norm of all elements.
func L2Norm[T Float](t *Tensor[T]) T {
	return T(math.Sqrt(float64(fold(t, 0, sqStep[T], add[T]))))
}

// CountTrue returns the number of true elements.
func CountTrue(t *Tensor[bool]) int {
	return fold(t, 0, func(acc, _ int, v bool) int {
		if v {
			return acc + 1
		}
		return acc
	}, add[int])
}

// AnyTrue reports whether some element is true.
func AnyTrue(t *Tensor[bool]) bool { return CountTrue(t) > 0 }

// AllTrue reports whether every element is true. It is true for an empty tensor.
func AllTrue(t *Tensor[bool]) bool { return CountTrue(t) == t.Size() }

// SumAxes sums along opts.Axes.
func SumAxes[T Number](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	return reduce("sum", t, opts, true, T(0), sumStep[T], identity[T])
}

// ProdAxes multiplies along opts.Axes.
func ProdAxes[T Number](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	return reduce("prod", t, opts, true, T(1), prodStep[T], identity[T])
}

// MeanAxes averages along opts.Axes.
func MeanAxes[T Float](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	_, _, count, err := plan(t, opts)
	if err != nil {
		return nil, err
	}
	n := T(count)
	return reduce("mean", t, opts, false, T(0), sumStep[T], func(s T) T { return s / n })
}

// MinAxes takes the minimum along opts.Axes.
func MinAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	return reduce("min", t, opts, false, extremum[T]{}, minStep[T], extremum[T].value)
}

// MaxAxes takes the maximum along opts.Axes.
func MaxAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	return reduce("max", t, opts, false, extremum[T]{}, maxStep[T], extremum[T].value)
}

// ArgminAxes returns, for each kept position, the index of the smallest
// element along opts.Axes. Over several axes the index is the row-major
// position within the reduced axes.
func ArgminAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[int], error) {
	return reduce("argmin", t, opts, false, extremum[T]{}, minStep[T], extremum[T].index)
}

// ArgmaxAxes is ArgminAxes for the largest element.
func ArgmaxAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[int], error) {
	return reduce("argmax", t, opts, false, extremum[T]{}, maxStep[T], extremum[T].index)
}

// L2NormAxes takes the Euclidean norm along opts.Axes.
func L2NormAxes[T Float](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) {
	return reduce("l2norm", t, opts, true, T(0), sqStep[T], func(s T) T {
		return T(math.Sqrt(float64(s)))
	})
}
