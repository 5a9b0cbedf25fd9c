// Package cpu implements the CPU kernels tensors delegate to: elementwise
// maps, reductions and matrix products over strided buffers. float32 and
// float64 matrix products use gonum BLAS when the operands allow it.
package cpu

import (
	"golang.org/x/exp/constraints"

	"github.com/born-ml/strided/internal/device"
	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/parallel"
)

// Number is the set of element types with arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Backend runs kernels with the order and worker count of a device.
type Backend struct {
	name  string
	order layout.Order
	par   parallel.Config
}

// New creates a backend for dev.
func New(dev device.Device) Backend {
	return Backend{
		name:  dev.Kind().String(),
		order: dev.DefaultOrder(),
		par:   dev.ParallelConfig(),
	}
}

// Name returns the backend name.
func (be Backend) Name() string {
	return be.name
}

// Order returns the traversal order results are written in.
func (be Backend) Order() layout.Order {
	return be.order
}

// Parallel returns the worker configuration.
func (be Backend) Parallel() parallel.Config {
	return be.par
}
