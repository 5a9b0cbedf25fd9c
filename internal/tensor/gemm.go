package tensor

import (
	"github.com/born-ml/strided/internal/backend/cpu"
	"github.com/born-ml/strided/internal/errs"
)

// GemmOp computes c = alpha * op(a) * op(b) + beta * c for 2-D tensors,
// where op transposes its operand when requested. The zero value is not
// usable; start from Gemm.
//
// Example:
//
//	err := tensor.Gemm[float64]().Alpha(3).Beta(2).TransA().Run(a, b, c)
type GemmOp[T Number] struct {
	alpha, beta    T
	transA, transB bool
}

// Gemm returns a GemmOp with alpha 1 and beta 0.
func Gemm[T Number]() GemmOp[T] {
	return GemmOp[T]{alpha: 1}
}

// Alpha sets the product scale.
func (g GemmOp[T]) Alpha(v T) GemmOp[T] { g.alpha = v; return g }

// Beta sets the scale of the existing c. With beta 0 c is overwritten
// without being read.
func (g GemmOp[T]) Beta(v T) GemmOp[T] { g.beta = v; return g }

// TransA transposes a.
func (g GemmOp[T]) TransA() GemmOp[T] { g.transA = true; return g }

// TransB transposes b.
func (g GemmOp[T]) TransB() GemmOp[T] { g.transB = true; return g }

// Run computes the product into c, which must be writable.
func (g GemmOp[T]) Run(a, b, c *Tensor[T]) error {
	if err := c.checkWritable("gemm"); err != nil {
		return err
	}
	if a.Ndim() != 2 || b.Ndim() != 2 || c.Ndim() != 2 {
		return errs.ShapeMismatch("gemm: expected 2-D operands, got %d-D, %d-D and %d-D", a.Ndim(), b.Ndim(), c.Ndim())
	}
	if g.transA {
		a = a.T()
	}
	if g.transB {
		b = b.T()
	}
	m, n := a.layout.ShapeAt(0), b.layout.ShapeAt(1)
	if c.layout.ShapeAt(0) != m || c.layout.ShapeAt(1) != n {
		return errs.ShapeMismatch("gemm: output shape %v, want [%d, %d]", c.layout.Shape(), m, n)
	}
	p, err := Matmul(a, b)
	if err != nil {
		return err
	}
	if err := c.Device().Check(p.Device()); err != nil {
		return err
	}
	alpha, beta := g.alpha, g.beta
	cpu.Update(c.backend(), c.storage.data, c.layout, p.storage.data, p.layout, func(x, y T) T {
		if beta == 0 {
			return alpha * y
		}
		return alpha*y + beta*x
	})
	return nil
}
