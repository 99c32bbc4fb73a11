// SPDX-License-Identifier: MIT

package assembly

import "errors"

var (
	// ErrNegativeDegree indicates AllocateNode received a negative degree.
	ErrNegativeDegree = errors.New("assembly: negative degree")

	// ErrDegreeExceeded indicates an edge would overflow a node's fixed adjacency.
	ErrDegreeExceeded = errors.New("assembly: node degree exceeded")

	// ErrDegreeMismatch indicates Verify found a node whose attached edge
	// endpoints differ from the degree it was allocated with.
	ErrDegreeMismatch = errors.New("assembly: node degree mismatch")

	// ErrContainerMismatch indicates Verify found the core container out of
	// step with the handles Adjacency issued.
	ErrContainerMismatch = errors.New("assembly: container out of sync")

	// ErrForeignNode indicates a handle not allocated by this strategy.
	ErrForeignNode = errors.New("assembly: node not allocated by this strategy")
)
