// SPDX-License-Identifier: MIT
//
// File: coordinate.go
// Role: Coordinate value type and finiteness checks.

package geom

import (
	"errors"
	"math"
	"strconv"
)

// ErrNonFinite indicates that an ordinate is NaN or ±Inf.
var ErrNonFinite = errors.New("geom: non-finite ordinate")

// Coordinate is an immutable planar point. Equality and hashing are by value.
type Coordinate struct {
	X float64
	Y float64
}

// XY is shorthand for Coordinate{X: x, Y: y}.
func XY(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// IsFinite reports whether both ordinates are finite numbers.
// Complexity: O(1).
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// Validate returns ErrNonFinite if either ordinate is NaN or ±Inf.
func (c Coordinate) Validate() error {
	if !c.IsFinite() {
		return ErrNonFinite
	}

	return nil
}

// String renders the coordinate as "(x y)" using the shortest exact decimal form.
func (c Coordinate) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '(')
	b = strconv.AppendFloat(b, c.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, c.Y, 'g', -1, 64)
	b = append(b, ')')

	return string(b)
}
