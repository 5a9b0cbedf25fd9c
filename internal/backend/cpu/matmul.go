package cpu

import (
	"log/slog"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/strided/internal/parallel"
)

// Matrix is a strided 2-D operand: element (i, j) lives at
// Data[Offset + i*RowStride + j*ColStride].
type Matrix[T any] struct {
	Data                 []T
	Offset               int
	Rows, Cols           int
	RowStride, ColStride int
}

func (m Matrix[T]) at(i, j int) int {
	return m.Offset + i*m.RowStride + j*m.ColStride
}

// Gemm computes c = a * b. c is fully overwritten and must not alias a or b.
// For float32 and float64 operands with one unit stride each, the product
// goes through BLAS; everything else uses a strided kernel split by rows.
func Gemm[T Number](be Backend, c, a, b Matrix[T]) {
	if c.Rows == 0 || c.Cols == 0 {
		return
	}
	if a.Cols == 0 {
		for i := 0; i < c.Rows; i++ {
			for j := 0; j < c.Cols; j++ {
				c.Data[c.at(i, j)] = 0
			}
		}
		return
	}
	if gemmBLAS(c, a, b) {
		return
	}
	gemmStrided(be.par, c, a, b)
}

// GemmBatched computes cs[i] = as[i] * bs[i] for products that share their
// dimensions. Large batches are spread across workers with serial products;
// small ones use BLAS where it applies and split the remaining products by
// rows across the whole batch.
func GemmBatched[T Number](be Backend, cs, as, bs []Matrix[T]) {
	if len(cs) >= be.par.NumWorkers && !be.par.Serial() {
		inner := be
		inner.par = parallel.WithWorkers(1)
		slog.Debug("gemm batch split by product", "products", len(cs), "workers", be.par.NumWorkers)
		parallel.ForEach(len(cs), func(i int) {
			Gemm(inner, cs[i], as[i], bs[i])
		}, be.par)
		return
	}
	var rest []int
	for i := range cs {
		if cs[i].Rows == 0 || cs[i].Cols == 0 {
			continue
		}
		if as[i].Cols == 0 || !gemmBLAS(cs[i], as[i], bs[i]) {
			rest = append(rest, i)
		}
	}
	if len(rest) == 0 {
		return
	}
	first := rest[0]
	slog.Debug("gemm batch split by row", "products", len(rest), "rows", cs[first].Rows)
	cfg := be.par
	if cs[first].Cols*as[first].Cols >= cfg.MinChunkSize {
		cfg.MinChunkSize = 1
	}
	parallel.ForBatch(len(rest), cs[first].Rows, func(b, r int) {
		i := rest[b]
		gemmRow(cs[i], as[i], bs[i], r)
	}, cfg)
}

func gemmStrided[T Number](cfg parallel.Config, c, a, b Matrix[T]) {
	if c.Cols*a.Cols >= cfg.MinChunkSize {
		cfg.MinChunkSize = 1
	}
	parallel.For(c.Rows, func(i int) {
		gemmRow(c, a, b, i)
	}, cfg)
}

// gemmRow computes row i of c = a * b.
func gemmRow[T Number](c, a, b Matrix[T], i int) {
	k := a.Cols
	for j := 0; j < c.Cols; j++ {
		var sum T
		ai, bj := a.at(i, 0), b.at(0, j)
		for p := 0; p < k; p++ {
			sum += a.Data[ai+p*a.ColStride] * b.Data[bj+p*b.RowStride]
		}
		c.Data[c.at(i, j)] = sum
	}
}

// Dot returns sum(x[i]*y[i]) over n elements with the given strides.
func Dot[T Number](x []T, xOff, incX int, y []T, yOff, incY, n int) T {
	if n > 0 && incX > 0 && incY > 0 {
		switch xd := any(x).(type) {
		case []float64:
			yd := any(y).([]float64)
			v := blas64.Dot(
				blas64.Vector{N: n, Data: xd[xOff:], Inc: incX},
				blas64.Vector{N: n, Data: yd[yOff:], Inc: incY},
			)
			return any(v).(T)
		case []float32:
			yd := any(y).([]float32)
			v := blas32.Dot(
				blas32.Vector{N: n, Data: xd[xOff:], Inc: incX},
				blas32.Vector{N: n, Data: yd[yOff:], Inc: incY},
			)
			return any(v).(T)
		}
	}
	var sum T
	for i := 0; i < n; i++ {
		sum += x[xOff+i*incX] * y[yOff+i*incY]
	}
	return sum
}

// blasForm describes m as a row-major BLAS matrix, possibly transposed.
// ok is false when neither stride is 1 or a stride is negative.
func blasForm[T any](m Matrix[T]) (rows, cols, stride int, t blas.Transpose, ok bool) {
	rs, cs := m.RowStride, m.ColStride
	if m.Cols <= 1 {
		cs = 1
	}
	if m.Rows <= 1 {
		rs = max(m.Cols, 1)
	}
	switch {
	case cs == 1 && rs >= max(m.Cols, 1):
		return m.Rows, m.Cols, rs, blas.NoTrans, true
	case rs == 1 && cs >= max(m.Rows, 1):
		return m.Cols, m.Rows, cs, blas.Trans, true
	}
	return 0, 0, 0, blas.NoTrans, false
}

func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}

func gemmBLAS[T Number](c, a, b Matrix[T]) bool {
	switch cd := any(c.Data).(type) {
	case []float64:
		ad, bd := any(a.Data).([]float64), any(b.Data).([]float64)
		ga, ta, okA := general64(a, ad)
		gb, tb, okB := general64(b, bd)
		gc, tc, okC := general64(c, cd)
		if !okA || !okB || !okC {
			return false
		}
		if tc == blas.Trans {
			// c^T = b^T a^T
			blas64.Gemm(flip(tb), flip(ta), 1, gb, ga, 0, gc)
		} else {
			blas64.Gemm(ta, tb, 1, ga, gb, 0, gc)
		}
		return true
	case []float32:
		ad, bd := any(a.Data).([]float32), any(b.Data).([]float32)
		ga, ta, okA := general32(a, ad)
		gb, tb, okB := general32(b, bd)
		gc, tc, okC := general32(c, cd)
		if !okA || !okB || !okC {
			return false
		}
		if tc == blas.Trans {
			blas32.Gemm(flip(tb), flip(ta), 1, gb, ga, 0, gc)
		} else {
			blas32.Gemm(ta, tb, 1, ga, gb, 0, gc)
		}
		return true
	}
	return false
}

func general64[T any](m Matrix[T], data []float64) (blas64.General, blas.Transpose, bool) {
	rows, cols, stride, t, ok := blasForm(m)
	if !ok {
		return blas64.General{}, t, false
	}
	return blas64.General{Rows: rows, Cols: cols, Data: data[m.Offset:], Stride: stride}, t, true
}

func general32[T any](m Matrix[T], data []float32) (blas32.General, blas.Transpose, bool) {
	rows, cols, stride, t, ok := blasForm(m)
	if !ok {
		return blas32.General{}, t, false
	}
	return blas32.General{Rows: rows, Cols: cols, Data: data[m.Offset:], Stride: stride}, t, true
}
