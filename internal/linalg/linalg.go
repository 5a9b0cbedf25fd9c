// Package linalg decomposes symmetric matrices held in tensors.
//
// The factorizations run on gonum; tensors are copied into gonum matrices
// and the results copied back, dense in the device order of the input.
package linalg

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/tensor"
)

// UpLo selects the triangle of a symmetric matrix that is read, and for
// Cholesky the triangle of the factor returned.
type UpLo int

// Triangles.
const (
	Lower UpLo = iota
	Upper
)

// String returns "Lower" or "Upper".
func (u UpLo) String() string {
	if u == Upper {
		return "Upper"
	}
	return "Lower"
}

// symmetric copies the uplo triangle of a into a gonum symmetric matrix.
func symmetric(routine string, a *tensor.Tensor[float64], uplo UpLo) (*mat.SymDense, error) {
	if a.Ndim() != 2 || a.Layout().ShapeAt(0) != a.Layout().ShapeAt(1) {
		return nil, errs.ShapeMismatch("%s: expected a square matrix, got shape %v", routine, a.Shape())
	}
	n := a.Layout().ShapeAt(0)
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if uplo == Upper {
				s.SetSym(i, j, a.AtUnchecked(i, j))
			} else {
				s.SetSym(i, j, a.AtUnchecked(j, i))
			}
		}
	}
	return s, nil
}

// fromMatrix copies m into a new tensor on the device of like.
func fromMatrix(m mat.Matrix, like *tensor.Tensor[float64]) *tensor.Tensor[float64] {
	r, c := m.Dims()
	out := tensor.Zeros[float64]([]int{r, c}, like.Device())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.SetAtUnchecked(m.At(i, j), i, j)
		}
	}
	return out
}

// Eigh computes the eigenvalues, in ascending order, and the eigenvectors,
// as the columns of a matrix, of the symmetric matrix whose uplo triangle
// a holds. The other triangle is not read.
func Eigh(a *tensor.Tensor[float64], uplo UpLo) (values, vectors *tensor.Tensor[float64], err error) {
	s, err := symmetric("eigh", a, uplo)
	if err != nil {
		return nil, nil, err
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(s, true); !ok {
		slog.Debug("eigen decomposition did not converge", "n", s.SymmetricDim())
		return nil, nil, errs.Linalg("syevd", 1)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	return tensor.FromVec(vals, a.Device()), fromMatrix(&vecs, a), nil
}

// Cholesky factors the symmetric positive definite matrix whose uplo
// triangle a holds into L*L^T (Lower) or U^T*U (Upper) and returns the
// factor. A matrix that is not positive definite fails with a LinalgError
// whose Info is the order of the first leading minor that is not positive.
func Cholesky(a *tensor.Tensor[float64], uplo UpLo) (*tensor.Tensor[float64], error) {
	s, err := symmetric("cholesky", a, uplo)
	if err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(s); !ok {
		return nil, errs.Linalg("potrf", failingMinor(s))
	}
	var tri mat.TriDense
	if uplo == Upper {
		ch.UTo(&tri)
	} else {
		ch.LTo(&tri)
	}
	return fromMatrix(&tri, a), nil
}

// failingMinor returns the order of the smallest leading submatrix of s
// that is not positive definite.
func failingMinor(s *mat.SymDense) int {
	n := s.SymmetricDim()
	for k := 1; k <= n; k++ {
		var ch mat.Cholesky
		if !ch.Factorize(s.SliceSym(0, k)) {
			return k
		}
	}
	return n
}
