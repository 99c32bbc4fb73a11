// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, times)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilConstructor indicates a nil Constructor passed to BuildSegments.
var ErrNilConstructor = errors.New("builder: nil constructor")
