package tensor

import (
	"github.com/pkg/errors"

	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/layout"
)

// update combines src into dst in place. src is broadcast to dst's shape;
// dst itself never broadcasts. When the buffers overlap anywhere, src is
// copied first so every read sees the values from before the operation.
func update[T Elem](op string, dst, src *Tensor[T], f func(T, T) T) error {
	if err := dst.checkWritable(op); err != nil {
		return err
	}
	if err := dst.Device().Check(src.Device()); err != nil {
		return errors.WithMessage(err, op)
	}
	sl, err := src.layout.BroadcastTo(dst.layout.Shape(), dst.order())
	if err != nil {
		return errors.WithMessage(err, op)
	}
	data := src.storage.data
	if dst.storage.shares(src.storage) {
		data = cpu.Gather(src.backend(), data, sl)
		sl = layout.Contig(sl.Shape(), dst.order())
	}
	cpu.Update(dst.backend(), dst.storage.data, dst.layout, data, sl, f)
	return nil
}

// Assign copies src into dst, broadcasting src. src may overlap dst,
// including views over a different sub-slice of the same array; it is then
// read as it was before the call. The same holds for the other *Assign
// functions taking a tensor operand.
func Assign[T Elem](dst, src *Tensor[T]) error {
	return update("assign", dst, src, func(_, y T) T { return y })
}

// AddAssign computes dst += src.
func AddAssign[T Number](dst, src *Tensor[T]) error {
	return update("add_assign", dst, src, func(x, y T) T { return x + y })
}

// SubAssign computes dst -= src.
func SubAssign[T Number](dst, src *Tensor[T]) error {
	return update("sub_assign", dst, src, func(x, y T) T { return x - y })
}

// MulAssign computes dst *= src.
func MulAssign[T Number](dst, src *Tensor[T]) error {
	return update("mul_assign", dst, src, func(x, y T) T { return x * y })
}

// DivAssign computes dst /= src.
func DivAssign[T Number](dst, src *Tensor[T]) error {
	return update("div_assign", dst, src, func(x, y T) T { return x / y })
}

// AddScalarAssign computes dst += s.
func AddScalarAssign[T Number](dst *Tensor[T], s T) error {
	return MapInplace(dst, func(x T) T { return x + s })
}

// MulScalarAssign computes dst *= s.
func MulScalarAssign[T Number](dst *Tensor[T], s T) error {
	return MapInplace(dst, func(x T) T { return x * s })
}
