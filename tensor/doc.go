// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided n-dimensional arrays over flat buffers.
//
// # Overview
//
// A tensor pairs a buffer bound to a device with a layout: a shape, a
// signed stride per axis and an offset. Transposing, slicing, flipping,
// broadcasting and most reshapes only derive a new layout, so they never
// copy elements:
//
//	dev := cpu.NewCPU(0)
//	a := tensor.Arange(24, dev).MustIntoShape(4, 3, 2)
//	b := a.I(tensor.Range(1, 3), nil, tensor.Ellipsis, 0) // shape [2 1 3], a view
//	c := a.T()                                            // shape [2 3 4], a view
//
// # Ownership
//
// Every tensor is Owned, a read-only View or an exclusive ViewMut. Writes
// through a View fail with ErrReadOnly. While a ViewMut exists no other
// tensor may touch the elements it addresses; the kernels rely on this and
// do not lock.
//
// # Devices
//
// A device carries the worker count and the default element order. Binary
// operations require both operands on the same device. The order decides
// how new tensors are laid out, how reshape traverses elements and how
// operands of different rank are aligned for broadcasting: trailing axes
// for row-major devices, leading axes for column-major ones.
//
// # Errors
//
// Fallible operations return errors wrapping one of ErrOutOfRange,
// ErrInvalidLayout, ErrDeviceMismatch, ErrShapeMismatch, ErrLinalg and
// ErrReadOnly; match them with errors.Is. The Must helpers and I panic
// instead.
package tensor
