package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// Binary operations

func TestAdd_Broadcast(t *testing.T) {
	a := Arange(6, cpu2()).MustIntoShape(2, 3)
	b := FromVec([]int{10, 20, 30}, cpu2())

	c, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 21, 32, 13, 24, 35}, c.ToVec())
	assert.True(t, c.Layout().IsCContig())

	col := Arange(2, cpu2()).MustIntoShape(2, 1)
	outer, err := Mul(col, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 10, 20, 30}, outer.ToVec())
}

func TestMul_BroadcastColMajor(t *testing.T) {
	dev := colMajor()
	a, err := AsArray([]int{1, 4, 2, 5, 3, 6}, []int{2, 3}, dev)
	require.NoError(t, err)
	b := FromVec([]int{1, -1}, dev)

	c, err := Mul(a, b)
	require.NoError(t, err)
	for i, row := range [][]int{{1, 2, 3}, {-4, -5, -6}} {
		for j, want := range row {
			assert.Equal(t, want, c.AtUnchecked(i, j))
		}
	}
	assert.True(t, c.Layout().IsFContig())
}

func TestBinary_BroadcastFailure(t *testing.T) {
	a := Zeros[int]([]int{2, 3}, cpu2())
	_, err := Add(a, Zeros[int]([]int{2}, cpu2()))
	require.ErrorIs(t, err, errs.ErrInvalidLayout)
	assert.Contains(t, err.Error(), "add: ")
	assert.Contains(t, err.Error(), "broadcasting failed: d1 = 3 not equal to d2 = 2")

	f := Zeros[int]([]int{2, 3}, colMajor())
	_, err = Sub(f, Zeros[int]([]int{3}, colMajor()))
	require.ErrorIs(t, err, errs.ErrInvalidLayout)
	assert.Contains(t, err.Error(), "broadcasting failed: d1 = 2 not equal to d2 = 3")
}

func TestBinary_DeviceMismatch(t *testing.T) {
	a := Arange(3, cpu2())
	b := Arange(3, device.NewSerial())
	_, err := Add(a, b)
	assert.ErrorIs(t, err, errs.ErrDeviceMismatch)

	_, err = Matmul(a, b)
	assert.ErrorIs(t, err, errs.ErrDeviceMismatch)

	assert.ErrorIs(t, Assign(a, b), errs.ErrDeviceMismatch)
}

func TestIntegerOps(t *testing.T) {
	dev := cpu2()
	a := FromVec([]int{9, 7, 5, 3}, dev)
	s := FromVec([]int{5, 6, 7, 8}, dev)

	shl := Must(Shl(a, s))
	assert.Equal(t, []int{288, 448, 640, 768}, shl.ToVec())
	assert.Equal(t, a.ToVec(), Must(Shr(shl, s)).ToVec())

	three := FromVec([]int{3}, dev)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, Must(Rem(Arange(6, dev), three)).ToVec())
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, RemScalar(Arange(6, dev), 3).ToVec())

	x, y := FromVec([]int{12}, dev), FromVec([]int{10}, dev)
	assert.Equal(t, []int{8}, Must(BitAnd(x, y)).ToVec())
	assert.Equal(t, []int{14}, Must(BitOr(x, y)).ToVec())
	assert.Equal(t, []int{6}, Must(BitXor(x, y)).ToVec())
	assert.Equal(t, []int{-13}, BitNot(x).ToVec())
}

func TestArithmetic(t *testing.T) {
	dev := cpu2()
	a := FromVec([]float64{1, 4, 9}, dev)
	b := FromVec([]float64{2, 2, 3}, dev)

	assert.Equal(t, []float64{-1, 2, 6}, Must(Sub(a, b)).ToVec())
	assert.Equal(t, []float64{0.5, 2, 3}, Must(Div(a, b)).ToVec())
	assert.Equal(t, []float64{1, 2, 3}, Must(Minimum(a, b)).ToVec())
	assert.Equal(t, []float64{2, 4, 9}, Must(Maximum(a, b)).ToVec())

	assert.Equal(t, []float64{3, 6, 11}, AddScalar(a, 2).ToVec())
	assert.Equal(t, []float64{0, 3, 8}, SubScalar(a, 1).ToVec())
	assert.Equal(t, []float64{2, 8, 18}, MulScalar(a, 2).ToVec())
	assert.Equal(t, []float64{0.5, 2, 4.5}, DivScalar(a, 2).ToVec())
}

func TestComparisons(t *testing.T) {
	dev := cpu2()
	a := Arange(4, dev)
	two := FromVec([]int{2}, dev)

	assert.Equal(t, []bool{false, false, false, true}, Must(Greater(a, two)).ToVec())
	assert.Equal(t, []bool{false, false, true, true}, Must(GreaterEqual(a, two)).ToVec())
	assert.Equal(t, []bool{true, true, false, false}, Must(Less(a, two)).ToVec())
	assert.Equal(t, []bool{true, true, true, false}, Must(LessEqual(a, two)).ToVec())
	assert.Equal(t, []bool{false, false, true, false}, Must(Equal(a, two)).ToVec())
	assert.Equal(t, []bool{true, true, false, true}, Must(NotEqual(a, two)).ToVec())
}

func TestLogical(t *testing.T) {
	dev := cpu2()
	p := FromVec([]bool{true, true, false, false}, dev)
	q := FromVec([]bool{true, false, true, false}, dev)

	assert.Equal(t, []bool{true, false, false, false}, Must(LogicalAnd(p, q)).ToVec())
	assert.Equal(t, []bool{true, true, true, false}, Must(LogicalOr(p, q)).ToVec())
	assert.Equal(t, []bool{false, true, true, false}, Must(LogicalXor(p, q)).ToVec())
	assert.Equal(t, []bool{false, false, true, true}, Not(p).ToVec())
}

func TestMapBinary(t *testing.T) {
	dev := cpu2()
	a := FromVec([]int{1, 2, 3}, dev)
	b := FromVec([]float64{0.5}, dev)

	c, err := MapBinary(a, b, func(x int, y float64) float64 { return float64(x) * y })
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 1.5}, c.ToVec())
}

func TestBinary_ParallelMatchesSerial(t *testing.T) {
	n := 10000
	run := func(dev device.Device) []float64 {
		a := Linspace(0.0, 1.0, n, dev).MustIntoShape(100, 100).T()
		b := Linspace(1.0, 2.0, 100, dev)
		return Must(Mul(a, b)).ToVec()
	}
	assert.Equal(t, run(device.NewSerial()), run(device.NewCPU(4)))
}

// Unary operations

func TestUnary(t *testing.T) {
	dev := cpu2()
	a := FromVec([]float64{-4, 0, 4}, dev)

	assert.Equal(t, []float64{4, 0, -4}, Neg(a).ToVec())
	assert.Equal(t, []float64{4, 0, 4}, Abs(a).ToVec())
	assert.Equal(t, []int{3, 0, 3}, Abs(FromVec([]int{-3, 0, 3}, dev)).ToVec())
	assert.Equal(t, []float64{2, 0, 2}, Sqrt(Abs(a)).ToVec())

	assert.InDeltaSlice(t, []float64{math.Exp(-4), 1, math.Exp(4)}, Exp(a).ToVec(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1}, Log(FromVec([]float64{1, math.E}, dev)).ToVec(), 1e-12)

	x := FromVec([]float32{0, math.Pi / 2}, dev)
	assert.InDeltaSlice(t, []float32{0, 1}, Sin(x).ToVec(), 1e-6)
	assert.InDeltaSlice(t, []float32{1, 0}, Cos(x).ToVec(), 1e-6)
	assert.InDeltaSlice(t, []float32{0}, Tan(FromVec([]float32{0}, dev)).ToVec(), 1e-6)

	assert.Equal(t, []int{-4, 0, 4}, Cast[int](a).ToVec())
}

func TestMap_DenseResult(t *testing.T) {
	a := Arange(6, cpu2()).MustIntoShape(2, 3).T()
	sq := Map(a, func(x int) int { return x * x })
	assert.True(t, sq.Layout().IsCContig())
	assert.Equal(t, []int{0, 9, 1, 16, 4, 25}, sq.ToVec())
}

func TestMapInplace(t *testing.T) {
	a := Arange(6, cpu2()).MustIntoShape(2, 3)
	row := a.IMut(0)
	require.NoError(t, MapInplace(row, func(x int) int { return -x }))
	assert.Equal(t, []int{0, -1, -2, 3, 4, 5}, a.ToVec())
}

// In-place operations

func TestAssignOps(t *testing.T) {
	dev := cpu2()
	dst := Zeros[int]([]int{2, 3}, dev)
	row := FromVec([]int{1, 2, 3}, dev)

	require.NoError(t, AddAssign(dst, row))
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, dst.ToVec())

	require.NoError(t, MulAssign(dst, Arange(6, dev).MustIntoShape(2, 3)))
	assert.Equal(t, []int{0, 2, 6, 3, 8, 15}, dst.ToVec())

	require.NoError(t, SubAssign(dst, FromVec([]int{1}, dev)))
	assert.Equal(t, []int{-1, 1, 5, 2, 7, 14}, dst.ToVec())

	require.NoError(t, DivAssign(dst, FromVec([]int{2}, dev)))
	assert.Equal(t, []int{0, 0, 2, 1, 3, 7}, dst.ToVec())

	require.NoError(t, AddScalarAssign(dst, 1))
	require.NoError(t, MulScalarAssign(dst, 10))
	assert.Equal(t, []int{10, 10, 30, 20, 40, 80}, dst.ToVec())

	err := AddAssign(row, dst)
	assert.ErrorIs(t, err, errs.ErrInvalidLayout, "the destination never broadcasts")
}

func TestAssign_OverlappingSource(t *testing.T) {
	a := Arange(6, cpu2())
	rev, err := a.Flip(0)
	require.NoError(t, err)

	require.NoError(t, Assign(a, rev))
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, a.ToVec())
}

func TestAssign_ShiftedSubslice(t *testing.T) {
	buf := []int{1, 2, 3, 4, 5}
	dst, err := ViewMutOf(buf[1:], layout.C(4), cpu2())
	require.NoError(t, err)
	src, err := ViewOf(buf, layout.C(4), cpu2())
	require.NoError(t, err)

	require.NoError(t, AddAssign(dst, src))
	assert.Equal(t, []int{1, 3, 5, 7, 9}, buf)

	assert.False(t, NewStorage(buf[:2], cpu2()).shares(NewStorage(buf[2:], cpu2())))
	assert.True(t, NewStorage(buf[:3], cpu2()).shares(NewStorage(buf[2:], cpu2())))
}

func TestAssign_IntoSlice(t *testing.T) {
	a := Zeros[int]([]int{3, 3}, cpu2())
	inner := a.IMut(layout.Range(1, 3), layout.Range(1, 3))
	require.NoError(t, Assign(inner, FromVec([]int{7}, cpu2())))
	assert.Equal(t, []int{0, 0, 0, 0, 7, 7, 0, 7, 7}, a.ToVec())
}
