// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strided/internal/tensor"

// ReduceOpts selects reduced axes; none means all.
type ReduceOpts = tensor.ReduceOpts

// Sum returns the sum of all elements.
func Sum[T Number](t *Tensor[T]) T { return tensor.Sum(t) }

// Prod returns the product of all elements.
func Prod[T Number](t *Tensor[T]) T { return tensor.Prod(t) }

// L2Norm returns the Euclidean norm.
func L2Norm[T Float](t *Tensor[T]) T { return tensor.L2Norm(t) }

// Mean returns the mean. It fails on an empty tensor.
func Mean[T Float](t *Tensor[T]) (T, error) { return tensor.Mean(t) }

// Min returns the smallest element. It fails on an empty tensor.
func Min[T Ordered](t *Tensor[T]) (T, error) { return tensor.Min(t) }

// Max returns the largest element. It fails on an empty tensor.
func Max[T Ordered](t *Tensor[T]) (T, error) { return tensor.Max(t) }

// Argmin returns the row-major flat index of the smallest element. It fails on an empty tensor.
func Argmin[T Ordered](t *Tensor[T]) (int, error) { return tensor.Argmin(t) }

// Argmax returns the row-major flat index of the largest element. It fails on an empty tensor.
func Argmax[T Ordered](t *Tensor[T]) (int, error) { return tensor.Argmax(t) }

// CountTrue returns the number of true elements.
func CountTrue(t *Tensor[bool]) int { return tensor.CountTrue(t) }

// AnyTrue reports whether some element is true.
func AnyTrue(t *Tensor[bool]) bool { return tensor.AnyTrue(t) }

// AllTrue reports whether every element is true.
func AllTrue(t *Tensor[bool]) bool { return tensor.AllTrue(t) }

// SumAxes sums along opts.Axes.
func SumAxes[T Number](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.SumAxes(t, opts) }

// ProdAxes multiplies along opts.Axes.
func ProdAxes[T Number](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.ProdAxes(t, opts) }

// MeanAxes averages along opts.Axes.
func MeanAxes[T Float](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.MeanAxes(t, opts) }

// MinAxes takes the minimum along opts.Axes.
func MinAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.MinAxes(t, opts) }

// MaxAxes takes the maximum along opts.Axes.
func MaxAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.MaxAxes(t, opts) }

// ArgminAxes takes the index of the minimum along opts.Axes.
func ArgminAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[int], error) { return tensor.ArgminAxes(t, opts) }

// ArgmaxAxes takes the index of the maximum along opts.Axes.
func ArgmaxAxes[T Ordered](t *Tensor[T], opts ReduceOpts) (*Tensor[int], error) { return tensor.ArgmaxAxes(t, opts) }

// L2NormAxes takes the Euclidean norm along opts.Axes.
func L2NormAxes[T Float](t *Tensor[T], opts ReduceOpts) (*Tensor[T], error) { return tensor.L2NormAxes(t, opts) }
