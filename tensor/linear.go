// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strided/internal/tensor"

// Matmul multiplies a and b: inner product for two vectors, matrix-vector
// and vector-matrix products, and batched matrix products over the last
// two axes with broadcast batch axes.
func Matmul[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Matmul(a, b) }

// MustMatmul is Matmul that panics on error.
func MustMatmul[T Number](a, b *Tensor[T]) *Tensor[T] { return tensor.MustMatmul(a, b) }

// GemmOp computes c = alpha * op(a) * op(b) + beta * c.
type GemmOp[T Number] = tensor.GemmOp[T]

// Gemm returns a GemmOp with alpha 1 and beta 0.
//
// Example:
//
//	err := tensor.Gemm[float64]().Alpha(3).Beta(2).TransA().Run(a, b, c)
func Gemm[T Number]() GemmOp[T] { return tensor.Gemm[T]() }
