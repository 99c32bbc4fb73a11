// SPDX-License-Identifier: MIT
//
// File: seglog.go
// Role: Segment Log, the append-only record replayed by phase B.

package linegraph

import "github.com/katalvlaran/linegraph/geom"

type segmentLog struct {
	segs []geom.Segment
}

func newSegmentLog(capacity int) *segmentLog {
	return &segmentLog{segs: make([]geom.Segment, 0, capacity)}
}

// append records s. O(1) amortized; duplicates are kept.
func (l *segmentLog) append(s geom.Segment) {
	l.segs = append(l.segs, s)
}

// forEach visits segments in insertion order and stops at the first error.
func (l *segmentLog) forEach(fn func(i int, s geom.Segment) error) error {
	for i, s := range l.segs {
		if err := fn(i, s); err != nil {
			return err
		}
	}

	return nil
}

func (l *segmentLog) len() int { return len(l.segs) }

func (l *segmentLog) snapshot() []geom.Segment {
	out := make([]geom.Segment, len(l.segs))
	copy(out, l.segs)

	return out
}
