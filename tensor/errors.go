// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strided/internal/errs"

// Error kinds; match with errors.Is.
var (
	ErrOutOfRange     = errs.ErrOutOfRange
	ErrInvalidLayout  = errs.ErrInvalidLayout
	ErrDeviceMismatch = errs.ErrDeviceMismatch
	ErrShapeMismatch  = errs.ErrShapeMismatch
	ErrLinalg         = errs.ErrLinalg
	ErrReadOnly       = errs.ErrReadOnly
)

// LinalgError carries the diagnostic code of a failed decomposition.
type LinalgError = errs.LinalgError
