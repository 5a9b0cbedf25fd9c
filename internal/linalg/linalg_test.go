package linalg

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/tensor"
)

func matrix(t *testing.T, dev device.Device, rows ...[]float64) *tensor.Tensor[float64] {
	t.Helper()
	var data []float64
	for _, r := range rows {
		data = append(data, r...)
	}
	a, err := tensor.New(data, layout.C(len(rows), len(rows[0])), dev)
	require.NoError(t, err)
	return a
}

func TestEigh(t *testing.T) {
	dev := device.NewCPU(1)
	a := matrix(t, dev,
		[]float64{2, -1, 0},
		[]float64{-1, 2, -1},
		[]float64{0, -1, 2},
	)

	vals, vecs, err := Eigh(a, Lower)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}, vals.ToVec(), 1e-12)

	// A v = lambda v for every column
	av, err := tensor.Matmul(a, vecs)
	require.NoError(t, err)
	for j, lambda := range vals.ToVec() {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, lambda*vecs.AtUnchecked(i, j), av.AtUnchecked(i, j), 1e-12)
		}
	}
}

func TestEigh_ReadsOneTriangle(t *testing.T) {
	dev := device.NewCPU(1)
	upper := matrix(t, dev,
		[]float64{2, 1},
		[]float64{99, 2},
	)
	vals, _, err := Eigh(upper, Upper)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3}, vals.ToVec(), 1e-12)

	vals, _, err = Eigh(upper.T(), Lower)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 3}, vals.ToVec(), 1e-12)
}

func TestCholesky(t *testing.T) {
	dev := device.NewCPU(1)
	a := matrix(t, dev,
		[]float64{5, 1.5},
		[]float64{1.5, 8},
	)

	l, err := Cholesky(a, Lower)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.2361, 0, 0.6708, 2.7477}, l.ToVec(), 1e-4)

	u, err := Cholesky(a, Upper)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.2361, 0.6708, 0, 2.7477}, u.ToVec(), 1e-4)

	back, err := tensor.Matmul(l, l.T())
	require.NoError(t, err)
	assert.InDeltaSlice(t, a.ToVec(), back.ToVec(), 1e-12)
}

func TestCholesky_ColMajorDevice(t *testing.T) {
	dev := device.NewCPU(1)
	dev.SetDefaultOrder(layout.ColMajor)
	a, err := tensor.AsArray([]float64{5, 1.5, 1.5, 8}, []int{2, 2}, dev)
	require.NoError(t, err)

	l, err := Cholesky(a, Lower)
	require.NoError(t, err)
	assert.True(t, l.Layout().IsFContig())
	assert.InDelta(t, 0.6708, l.AtUnchecked(1, 0), 1e-4)
	assert.Equal(t, 0.0, l.AtUnchecked(0, 1))
}

func TestCholesky_NotPositiveDefinite(t *testing.T) {
	dev := device.NewCPU(1)
	a := matrix(t, dev,
		[]float64{1, 2},
		[]float64{2, 1},
	)
	_, err := Cholesky(a, Lower)
	require.ErrorIs(t, err, errs.ErrLinalg)

	var le *errs.LinalgError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "potrf", le.Routine)
	assert.Equal(t, 2, le.Info)

	_, err = Cholesky(matrix(t, dev, []float64{-1}), Upper)
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 1, le.Info)
}

func TestShapeErrors(t *testing.T) {
	dev := device.NewCPU(1)
	_, _, err := Eigh(tensor.Zeros[float64]([]int{2, 3}, dev), Lower)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = Cholesky(tensor.Zeros[float64]([]int{4}, dev), Lower)
	assert.ErrorIs(t, err, errs.ErrShapeMismatch)
}
