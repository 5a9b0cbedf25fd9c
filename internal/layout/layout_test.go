package layout

import (
	"testing"

	"github.com/born-ml/strided/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLayout(t *testing.T, l Layout, shape, stride []int, offset int) {
	t.Helper()
	assert.Equal(t, Shape(shape), l.Shape(), "shape")
	assert.Equal(t, stride, l.Stride(), "stride")
	assert.Equal(t, offset, l.Offset(), "offset")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Shape{2, 3}, []int{3}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	_, err = New(Shape{2, -1}, []int{3, 1}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	_, err = New(Shape{2, 3}, []int{3, 1}, -1)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	// reversed axis starting at 0 reaches address -2
	_, err = New(Shape{3}, []int{-1}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	l, err := New(Shape{3}, []int{-1}, 2)
	require.NoError(t, err)
	lo, hi := l.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)
}

func TestCheckBuffer(t *testing.T) {
	l, err := New(Shape{2, 3}, []int{3, 1}, 0)
	require.NoError(t, err)
	assert.NoError(t, l.CheckBuffer(6))
	assert.ErrorIs(t, l.CheckBuffer(5), errs.ErrInvalidLayout)

	empty := C(0, 4)
	assert.NoError(t, empty.CheckBuffer(0))
}

func TestMayOverlap(t *testing.T) {
	tests := []struct {
		name   string
		shape  []int
		stride []int
		offset int
		want   bool
	}{
		{"row-major", []int{2, 3}, []int{3, 1}, 0, false},
		{"col-major", []int{2, 3}, []int{1, 2}, 0, false},
		{"gapped", []int{2, 3}, []int{8, 2}, 0, false},
		{"reversed", []int{4}, []int{-1}, 3, false},
		{"zero stride", []int{4}, []int{0}, 0, true},
		{"zero stride on unit axis", []int{1, 3}, []int{0, 1}, 0, false},
		{"sliding window", []int{2, 2}, []int{1, 1}, 0, true},
		{"rows overlap", []int{3, 4}, []int{2, 1}, 0, true},
		{"empty", []int{0, 3}, []int{0, 0}, 0, false},
		{"scalar", []int{}, []int{}, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.shape, tt.stride, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.MayOverlap())
		})
	}

	b, err := C(3).BroadcastTo(Shape{2, 3}, RowMajor)
	require.NoError(t, err)
	assert.True(t, b.MayOverlap())
}

func TestContiguity(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		label  string
	}{
		{"row-major", C(2, 3), "Cc"},
		{"col-major", F(2, 3), "Ff"},
		{"vector", C(5), "CcFf"},
		{"scalar", C(), "CcFf"},
		{"size-1 axes", C(1, 4, 1), "CcFf"},
		{"empty", C(0, 3), "CcFf"},
		{"flipped", must(C(6).Flip(0)), "Custom"},
		{"transposed", C(2, 3).ReverseAxes(), "Ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.layout.Contiguity())
		})
	}
}

func TestComputeStrides(t *testing.T) {
	assert.Equal(t, []int{6, 3, 1}, Shape{2, 2, 3}.ComputeStrides(RowMajor))
	assert.Equal(t, []int{1, 2, 4}, Shape{2, 2, 3}.ComputeStrides(ColMajor))
}

func TestIndex_CheckedAndUnchecked(t *testing.T) {
	l := C(4, 3, 2)

	addr, err := l.Index([]int{2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 17, addr)

	_, err = l.Index([]int{2, 2, 3})
	assert.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = l.Index([]int{2, 2})
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)

	// the unchecked path computes the address anyway
	assert.Equal(t, 19, l.IndexUnchecked([]int{2, 2, 3}))
}

func TestIntoDim(t *testing.T) {
	l := C(3, 4)
	assert.False(t, l.IsFixed())
	assert.Contains(t, l.String(), "2-Dim (dyn)")

	fixed, err := l.IntoDim(2)
	require.NoError(t, err)
	assert.True(t, fixed.IsFixed())
	assert.Contains(t, fixed.String(), "2-Dim, contiguous: Cc")

	_, err = l.IntoDim(3)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)

	// rank-preserving derivations keep the tag, rank-changing ones drop it
	assert.True(t, fixed.ReverseAxes().IsFixed())
	sq, err := fixed.InsertAxis(0)
	require.NoError(t, err)
	assert.False(t, sq.IsFixed())
	assert.False(t, fixed.IntoDyn().IsFixed())
}

func TestString(t *testing.T) {
	l := C(1, 4, 3, 2)
	assert.Equal(t, "4-Dim (dyn), contiguous: Cc\nshape: [1, 4, 3, 2], stride: [24, 6, 2, 1], offset: 0", l.String())
}

func TestTranspose(t *testing.T) {
	l := C(2, 3, 4)

	tr, err := l.Transpose(2, 0, 1)
	require.NoError(t, err)
	assertLayout(t, tr, []int{4, 2, 3}, []int{1, 12, 4}, 0)

	_, err = l.Transpose(0, 0, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	_, err = l.Transpose(0, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	sw, err := l.SwapAxes(0, -1)
	require.NoError(t, err)
	assertLayout(t, sw, []int{4, 3, 2}, []int{1, 4, 12}, 0)
}

func TestFlip(t *testing.T) {
	f, err := C(6).Flip(0)
	require.NoError(t, err)
	assertLayout(t, f, []int{6}, []int{-1}, 5)

	f2, err := C(3, 4).Flip(-1)
	require.NoError(t, err)
	assertLayout(t, f2, []int{3, 4}, []int{4, -1}, 3)
}

func TestInsertRemoveSqueeze(t *testing.T) {
	l := C(4, 3, 2)

	ins, err := l.InsertAxis(1)
	require.NoError(t, err)
	assertLayout(t, ins, []int{4, 1, 3, 2}, []int{6, 2, 2, 1}, 0)

	end, err := l.InsertAxis(-1)
	require.NoError(t, err)
	assertLayout(t, end, []int{4, 3, 2, 1}, []int{6, 2, 1, 1}, 0)

	rm, err := ins.RemoveAxis(1)
	require.NoError(t, err)
	assert.True(t, rm.Equal(l))

	_, err = l.RemoveAxis(0)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)

	assertLayout(t, C(1, 4, 1, 2).Squeeze(), []int{4, 2}, []int{2, 1}, 0)
}

func TestDiagonal(t *testing.T) {
	l := C(3, 3)

	d, err := l.Diagonal(0, 0, 1)
	require.NoError(t, err)
	assertLayout(t, d, []int{3}, []int{4}, 0)

	up, err := l.Diagonal(1, 0, 1)
	require.NoError(t, err)
	assertLayout(t, up, []int{2}, []int{4}, 1)

	lo, err := l.Diagonal(-1, 0, 1)
	require.NoError(t, err)
	assertLayout(t, lo, []int{2}, []int{4}, 3)

	_, err = l.Diagonal(0, 1, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)
}

func TestNormAxes(t *testing.T) {
	axes, err := NormAxes([]int{-1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, axes)

	_, err = NormAxes([]int{3}, 3)
	assert.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = NormAxes([]int{1, -2}, 3)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout)
}

func TestLayoutErrorsAreKinds(t *testing.T) {
	_, err := C(3).Index([]int{5})
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	assert.Contains(t, err.Error(), `"idx" = 5 not match to pattern 0..3`)
}

func must(l Layout, err error) Layout {
	if err != nil {
		panic(err)
	}
	return l
}
