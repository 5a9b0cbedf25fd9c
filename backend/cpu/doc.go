// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU devices tensors are bound to.
//
// # Overview
//
// A device carries two settings:
//   - the number of worker goroutines kernels may fan out to (0 uses every
//     hardware thread, 1 runs serially)
//   - the default element order, row-major or column-major
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/strided/backend/cpu"
//	    "github.com/born-ml/strided/tensor"
//	)
//
//	func main() {
//	    dev := cpu.NewCPU(0)
//	    a := tensor.Arange(6.0, dev).MustIntoShape(2, 3)
//	    b, _ := tensor.Matmul(a, a.T())
//	    fmt.Println(b)
//	}
//
// # Configuration
//
// DefaultConfig reads the thread count from STRIDED_NUM_THREADS when set.
// Devices are values; copies compare equal when their settings do, and
// tensors on unequal devices cannot be combined.
package cpu
