// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Coordinate Endpoint Index.
//
// Each entry is a tagged value: a count while segments are ingested, a node
// handle once phase A has materialized it. The same map serves both phases.

package linegraph

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

type entryKind uint8

const (
	entryCount entryKind = iota
	entryNode
)

func (k entryKind) String() string {
	if k == entryNode {
		return "node"
	}

	return "count"
}

type indexEntry struct {
	kind  entryKind
	count int
	node  Node
}

// endpointIndex maps coordinates to endpoint counts, then to nodes.
type endpointIndex struct {
	entries map[geom.Coordinate]*indexEntry
}

func newEndpointIndex(capacity int) *endpointIndex {
	return &endpointIndex{entries: make(map[geom.Coordinate]*indexEntry, capacity)}
}

// observe increments the count at c, initializing it to 1.
// Complexity: O(1) amortized.
func (x *endpointIndex) observe(c geom.Coordinate) error {
	e, ok := x.entries[c]
	if !ok {
		x.entries[c] = &indexEntry{kind: entryCount, count: 1}
		return nil
	}
	if e.kind != entryCount {
		return fmt.Errorf("observe %s: entry holds a %s: %w", c, e.kind, ErrIndexState)
	}
	e.count++

	return nil
}

// materialize swaps the count at c for n.
func (x *endpointIndex) materialize(c geom.Coordinate, n Node) error {
	e, ok := x.entries[c]
	if !ok {
		return fmt.Errorf("materialize %s: coordinate never observed: %w", c, ErrIndexState)
	}
	if e.kind != entryCount {
		return fmt.Errorf("materialize %s: entry holds a %s: %w", c, e.kind, ErrIndexState)
	}
	e.kind, e.count, e.node = entryNode, 0, n

	return nil
}

// resolve returns the node at c; ok is false if c was never observed.
func (x *endpointIndex) resolve(c geom.Coordinate) (Node, bool, error) {
	e, ok := x.entries[c]
	if !ok {
		return nil, false, nil
	}
	if e.kind != entryNode {
		return nil, false, fmt.Errorf("resolve %s: entry holds a %s: %w", c, e.kind, ErrIndexState)
	}

	return e.node, true, nil
}

func (x *endpointIndex) len() int { return len(x.entries) }

// forEachCount visits every entry still holding a count. Order is unspecified.
// fn may materialize the visited entry.
func (x *endpointIndex) forEachCount(fn func(c geom.Coordinate, count int) error) error {
	for c, e := range x.entries {
		if e.kind != entryCount {
			continue
		}
		if err := fn(c, e.count); err != nil {
			return err
		}
	}

	return nil
}

func (x *endpointIndex) counts() map[geom.Coordinate]int {
	out := make(map[geom.Coordinate]int, len(x.entries))
	for c, e := range x.entries {
		if e.kind == entryCount {
			out[c] = e.count
		}
	}

	return out
}

func (x *endpointIndex) nodes() map[geom.Coordinate]Node {
	out := make(map[geom.Coordinate]Node, len(x.entries))
	for c, e := range x.entries {
		if e.kind == entryNode {
			out[c] = e.node
		}
	}

	return out
}
