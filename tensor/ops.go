// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strided/internal/tensor"

// Binary operations broadcast their operands against each other and
// return a new tensor dense in the device order. Both operands must be on
// the same device.

// MapBinary applies f elementwise after broadcasting.
func MapBinary[A, B, C Elem](a *Tensor[A], b *Tensor[B], f func(A, B) C) (*Tensor[C], error) {
	return tensor.MapBinary(a, b, f)
}

// Add returns a + b.
func Add[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Add(a, b) }

// Sub returns a - b.
func Sub[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Sub(a, b) }

// Mul returns the elementwise product.
func Mul[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Mul(a, b) }

// Div returns a / b.
func Div[T Number](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Div(a, b) }

// Rem returns a % b.
func Rem[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Rem(a, b) }

// Minimum returns the elementwise minimum.
func Minimum[T Ordered](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Minimum(a, b) }

// Maximum returns the elementwise maximum.
func Maximum[T Ordered](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Maximum(a, b) }

// BitAnd returns a & b.
func BitAnd[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.BitAnd(a, b) }

// BitOr returns a | b.
func BitOr[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.BitOr(a, b) }

// BitXor returns a ^ b.
func BitXor[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.BitXor(a, b) }

// Shl returns a << b.
func Shl[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Shl(a, b) }

// Shr returns a >> b.
func Shr[T Integer](a, b *Tensor[T]) (*Tensor[T], error) { return tensor.Shr(a, b) }

// Greater returns a > b.
func Greater[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Greater(a, b) }

// GreaterEqual returns a >= b.
func GreaterEqual[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.GreaterEqual(a, b) }

// Less returns a < b.
func Less[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Less(a, b) }

// LessEqual returns a <= b.
func LessEqual[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.LessEqual(a, b) }

// Equal returns a == b.
func Equal[T Elem](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.Equal(a, b) }

// NotEqual returns a != b.
func NotEqual[T Elem](a, b *Tensor[T]) (*Tensor[bool], error) { return tensor.NotEqual(a, b) }

// LogicalAnd returns a && b.
func LogicalAnd(a, b *Tensor[bool]) (*Tensor[bool], error) { return tensor.LogicalAnd(a, b) }

// LogicalOr returns a || b.
func LogicalOr(a, b *Tensor[bool]) (*Tensor[bool], error) { return tensor.LogicalOr(a, b) }

// LogicalXor returns a != b.
func LogicalXor(a, b *Tensor[bool]) (*Tensor[bool], error) { return tensor.LogicalXor(a, b) }

// AddScalar returns a + s.
func AddScalar[T Number](a *Tensor[T], s T) *Tensor[T] { return tensor.AddScalar(a, s) }

// SubScalar returns a - s.
func SubScalar[T Number](a *Tensor[T], s T) *Tensor[T] { return tensor.SubScalar(a, s) }

// MulScalar returns a * s.
func MulScalar[T Number](a *Tensor[T], s T) *Tensor[T] { return tensor.MulScalar(a, s) }

// DivScalar returns a / s.
func DivScalar[T Number](a *Tensor[T], s T) *Tensor[T] { return tensor.DivScalar(a, s) }

// RemScalar returns a % s.
func RemScalar[T Integer](a *Tensor[T], s T) *Tensor[T] { return tensor.RemScalar(a, s) }

// Map applies f to every element.
func Map[T, U Elem](a *Tensor[T], f func(T) U) *Tensor[U] { return tensor.Map(a, f) }

// MapInplace replaces every element of a writable tensor with f of it.
func MapInplace[T Elem](a *Tensor[T], f func(T) T) error { return tensor.MapInplace(a, f) }

// Not returns !a.
func Not(a *Tensor[bool]) *Tensor[bool] { return tensor.Not(a) }

// Cast converts every element to U.
func Cast[U, T Number](a *Tensor[T]) *Tensor[U] { return tensor.Cast[U](a) }

// Neg returns -a.
func Neg[T Signed](a *Tensor[T]) *Tensor[T] { return tensor.Neg(a) }

// Abs returns |a|.
func Abs[T Signed](a *Tensor[T]) *Tensor[T] { return tensor.Abs(a) }

// BitNot returns ^a.
func BitNot[T Integer](a *Tensor[T]) *Tensor[T] { return tensor.BitNot(a) }

// Sin returns sin(a).
func Sin[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Sin(a) }

// Cos returns cos(a).
func Cos[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Cos(a) }

// Tan returns tan(a).
func Tan[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Tan(a) }

// Exp returns e**a.
func Exp[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Exp(a) }

// Log returns ln(a).
func Log[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Log(a) }

// Sqrt returns the square root of a.
func Sqrt[T Float](a *Tensor[T]) *Tensor[T] { return tensor.Sqrt(a) }

// In-place operations write into dst, which must be writable. src is
// broadcast to the shape of dst.

// Assign copies src into dst.
func Assign[T Elem](dst, src *Tensor[T]) error { return tensor.Assign(dst, src) }

// AddAssign computes dst += src.
func AddAssign[T Number](dst, src *Tensor[T]) error { return tensor.AddAssign(dst, src) }

// SubAssign computes dst -= src.
func SubAssign[T Number](dst, src *Tensor[T]) error { return tensor.SubAssign(dst, src) }

// MulAssign computes dst *= src.
func MulAssign[T Number](dst, src *Tensor[T]) error { return tensor.MulAssign(dst, src) }

// DivAssign computes dst /= src.
func DivAssign[T Number](dst, src *Tensor[T]) error { return tensor.DivAssign(dst, src) }

// AddScalarAssign computes dst += s.
func AddScalarAssign[T Number](dst *Tensor[T], s T) error { return tensor.AddScalarAssign(dst, s) }

// MulScalarAssign computes dst *= s.
func MulScalarAssign[T Number](dst *Tensor[T], s T) error { return tensor.MulScalarAssign(dst, s) }

// Must returns t and panics if err is non-nil.
func Must[T Elem](t *Tensor[T], err error) *Tensor[T] { return tensor.Must(t, err) }
