package tensor

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
)

// MapBinary applies f to a and b after broadcasting them against each other.
// Both must be bound to the same device. The result is dense in the device
// order.
func MapBinary[A, B, C Elem](a *Tensor[A], b *Tensor[B], f func(A, B) C) (*Tensor[C], error) {
	return binary("map", a, b, f)
}

func binary[A, B, C Elem](op string, a *Tensor[A], b *Tensor[B], f func(A, B) C) (*Tensor[C], error) {
	dev := a.Device()
	if err := dev.Check(b.Device()); err != nil {
		return nil, errors.WithMessage(err, op)
	}
	shape, ls, err := layout.BroadcastLayouts(dev.DefaultOrder(), a.layout, b.layout)
	if err != nil {
		return nil, errors.WithMessage(err, op)
	}
	out := Zeros[C](shape, dev)
	cpu.Zip(out.backend(), out.storage.data, out.layout, a.storage.data, ls[0], b.storage.data, ls[1], f)
	return out, nil
}

// Map applies f to every element. The result is dense in the device order.
func Map[T, U Elem](a *Tensor[T], f func(T) U) *Tensor[U] {
	out := Zeros[U](a.Shape(), a.Device())
	cpu.Map(out.backend(), out.storage.data, out.layout, a.storage.data, a.layout, f)
	return out
}

// MapInplace replaces every element of a with f of it.
func MapInplace[T Elem](a *Tensor[T], f func(T) T) error {
	if err := a.checkWritable("map_inplace"); err != nil {
		return err
	}
	cpu.Apply(a.backend(), a.storage.data, a.layout, f)
	return nil
}

// Must returns t and panics if err is non-nil.
func Must[T Elem](t *Tensor[T], err error) *Tensor[T] {
	return errs.Must(t, err)
}

// Add returns a + b.
func Add[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("add", a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b.
func Sub[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("sub", a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product a * b.
func Mul[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("mul", a, b, func(x, y T) T { return x * y })
}

// Div returns a / b. Integer division by zero panics.
func Div[T Number](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("div", a, b, func(x, y T) T { return x / y })
}

// Rem returns the remainder a % b.
func Rem[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("rem", a, b, func(x, y T) T { return x % y })
}

// Minimum returns the elementwise minimum.
func Minimum[T Ordered](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("minimum", a, b, func(x, y T) T { return min(x, y) })
}

// Maximum returns the elementwise maximum.
func Maximum[T Ordered](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("maximum", a, b, func(x, y T) T { return max(x, y) })
}

// BitAnd returns a & b.
func BitAnd[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("bitand", a, b, func(x, y T) T { return x & y })
}

// BitOr returns a | b.
func BitOr[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("bitor", a, b, func(x, y T) T { return x | y })
}

// BitXor returns a ^ b.
func BitXor[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("bitxor", a, b, func(x, y T) T { return x ^ y })
}

// Shl returns a << b. A negative shift count panics.
func Shl[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("shl", a, b, func(x, y T) T { return x << y })
}

// Shr returns a >> b. A negative shift count panics.
func Shr[T Integer](a, b *Tensor[T]) (*Tensor[T], error) {
	return binary("shr", a, b, func(x, y T) T { return x >> y })
}

// LogicalAnd returns a && b.
func LogicalAnd(a, b *Tensor[bool]) (*Tensor[bool], error) {
	return binary("logical_and", a, b, func(x, y bool) bool { return x && y })
}

// LogicalOr returns a || b.
func LogicalOr(a, b *Tensor[bool]) (*Tensor[bool], error) {
	return binary("logical_or", a, b, func(x, y bool) bool { return x || y })
}

// LogicalXor returns a != b.
func LogicalXor(a, b *Tensor[bool]) (*Tensor[bool], error) {
	return binary("logical_xor", a, b, func(x, y bool) bool { return x != y })
}

// Greater returns a > b.
func Greater[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("greater", a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a >= b.
func GreaterEqual[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("greater_equal", a, b, func(x, y T) bool { return x >= y })
}

// Less returns a < b.
func Less[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("less", a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a <= b.
func LessEqual[T Ordered](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("less_equal", a, b, func(x, y T) bool { return x <= y })
}

// Equal returns a == b.
func Equal[T Elem](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("equal", a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a != b.
func NotEqual[T Elem](a, b *Tensor[T]) (*Tensor[bool], error) {
	return binary("not_equal", a, b, func(x, y T) bool { return x != y })
}

// AddScalar returns a + s.
func AddScalar[T Number](a *Tensor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x + s })
}

// SubScalar returns a - s.
func SubScalar[T Number](a *Tensor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x - s })
}

// MulScalar returns a * s.
func MulScalar[T Number](a *Tensor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x * s })
}

// DivScalar returns a / s.
func DivScalar[T Number](a *Tensor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x / s })
}

// RemScalar returns a % s.
func RemScalar[T Integer](a *Tensor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x % s })
}

// Neg returns -a.
func Neg[T Signed](a *Tensor[T]) *Tensor[T] {
	return Map(a, func(x T) T { return -x })
}

// Abs returns |a|.
func Abs[T Signed](a *Tensor[T]) *Tensor[T] {
	return Map(a, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Not returns !a.
func Not(a *Tensor[bool]) *Tensor[bool] {
	return Map(a, func(x bool) bool { return !x })
}

// BitNot returns ^a.
func BitNot[T Integer](a *Tensor[T]) *Tensor[T] {
	return Map(a, func(x T) T { return ^x })
}

func float64Map[T Float](a *Tensor[T], f func(float64) float64) *Tensor[T] {
	return Map(a, func(x T) T { return T(f(float64(x))) })
}

// Sin returns sin(a).
func Sin[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Sin) }

// Cos returns cos(a).
func Cos[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Cos) }

// Tan returns tan(a).
func Tan[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Tan) }

// Exp returns e**a.
func Exp[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Exp) }

// Log returns the natural logarithm of a.
func Log[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Log) }

// Sqrt returns the square root of a.
func Sqrt[T Float](a *Tensor[T]) *Tensor[T] { return float64Map(a, math.Sqrt) }

// Cast converts every element to U.
func Cast[U, T Number](a *Tensor[T]) *Tensor[U] {
	return Map(a, func(x T) U { return U(x) })
}
