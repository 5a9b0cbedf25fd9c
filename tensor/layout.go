// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strided/internal/layout"

// Layout maps a multi-index onto a flat buffer.
type Layout = layout.Layout

// Shape is the extent of every axis.
type Shape = layout.Shape

// Order is an element order convention.
type Order = layout.Order

// Element orders.
const (
	RowMajor = layout.RowMajor
	ColMajor = layout.ColMajor
)

// NewLayout creates a checked layout.
func NewLayout(shape Shape, stride []int, offset int) (Layout, error) {
	return layout.New(shape, stride, offset)
}

// C returns the row-major contiguous layout of shape.
func C(shape ...int) Layout { return layout.C(shape...) }

// F returns the column-major contiguous layout of shape.
func F(shape ...int) Layout { return layout.F(shape...) }

// Selector is one item of an index expression.
type Selector = layout.Selector

// Index selects one position and removes the axis.
type Index = layout.Index

// Slice selects a strided range.
type Slice = layout.Slice

// Selectors usable with Tensor.Slice.
var (
	NewAxis  = layout.NewAxis
	Ellipsis = layout.Ellipsis
)

// Range selects [start, stop).
func Range(start, stop int) Slice { return layout.Range(start, stop) }

// From selects [start, end).
func From(start int) Slice { return layout.From(start) }

// Until selects [0, stop).
func Until(stop int) Slice { return layout.Until(stop) }

// All selects the whole axis.
func All() Slice { return layout.All() }

// ParseSelectors parses an index expression such as "1:3, None, ..., 0".
func ParseSelectors(expr string) ([]Selector, error) {
	return layout.ParseSelectors(expr)
}

// BroadcastShapes computes the common shape of operands aligned by order.
func BroadcastShapes(order Order, shapes ...Shape) (Shape, error) {
	return layout.BroadcastShapes(order, shapes...)
}
