// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides symmetric eigen decomposition and Cholesky
// factorization for float64 matrices held in tensors of any layout.
package linalg

import (
	"github.com/born-ml/strided/internal/linalg"
	"github.com/born-ml/strided/tensor"
)

// UpLo selects the triangle that is read, and returned by Cholesky.
type UpLo = linalg.UpLo

// Triangles.
const (
	Lower = linalg.Lower
	Upper = linalg.Upper
)

// Eigh returns the ascending eigenvalues and the eigenvectors, one per
// column, of the symmetric matrix stored in the uplo triangle of a.
//
// Example:
//
//	vals, vecs, err := linalg.Eigh(a, linalg.Lower)
func Eigh(a *tensor.Tensor[float64], uplo UpLo) (values, vectors *tensor.Tensor[float64], err error) {
	return linalg.Eigh(a, uplo)
}

// Cholesky returns the triangular factor of the symmetric positive
// definite matrix stored in the uplo triangle of a. Failure is reported as
// a *tensor.LinalgError.
func Cholesky(a *tensor.Tensor[float64], uplo UpLo) (*tensor.Tensor[float64], error) {
	return linalg.Cholesky(a, uplo)
}
