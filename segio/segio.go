// SPDX-License-Identifier: MIT
//
// Package segio decodes segment documents into geom.Segment values.
//
// A document is YAML (JSON is accepted as a YAML subset):
//
//	segments:
//	  - [[0, 0], [1, 0]]
//	polylines:
//	  - [[0, 0], [0, 1], [1, 1]]
//
// Each polyline of k points contributes k-1 consecutive segments. Segments
// are returned first, then polylines, each in document order. Finiteness
// is not checked here; that is the generator's job at ingestion.
//
// GeoJSON (".geojson") line work is accepted too, see DecodeGeoJSON.
package segio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linegraph/geom"
)

var (
	// ErrBadPoint indicates a point without exactly two ordinates.
	ErrBadPoint = errors.New("segio: point must have exactly two ordinates")

	// ErrBadSegment indicates a segment without exactly two points.
	ErrBadSegment = errors.New("segio: segment must have exactly two points")

	// ErrShortPolyline indicates a polyline with fewer than two points.
	ErrShortPolyline = errors.New("segio: polyline needs at least two points")
)

// Document is the decoded form of a segment file.
type Document struct {
	Segments  [][][]float64 `yaml:"segments"`
	Polylines [][][]float64 `yaml:"polylines"`
}

// Decode reads one document from r and flattens it into segments.
// An empty input yields no segments and no error.
func Decode(r io.Reader) ([]geom.Segment, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("segio: decode: %w", err)
	}

	return doc.Flatten()
}

// ReadFile opens path and decodes it. Files ending in ".geojson" are read
// with DecodeGeoJSON, everything else with Decode.
func ReadFile(path string) ([]geom.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("segio: %w", err)
	}
	defer f.Close()

	decode := Decode
	if strings.EqualFold(filepath.Ext(path), ".geojson") {
		decode = DecodeGeoJSON
	}
	segs, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return segs, nil
}

// Flatten converts the document into segments.
func (d Document) Flatten() ([]geom.Segment, error) {
	out := make([]geom.Segment, 0, len(d.Segments)+len(d.Polylines))
	for i, raw := range d.Segments {
		if len(raw) != 2 {
			return nil, fmt.Errorf("segments[%d]: got %d points: %w", i, len(raw), ErrBadSegment)
		}
		p0, err := point(raw[0])
		if err != nil {
			return nil, fmt.Errorf("segments[%d][0]: %w", i, err)
		}
		p1, err := point(raw[1])
		if err != nil {
			return nil, fmt.Errorf("segments[%d][1]: %w", i, err)
		}
		out = append(out, geom.Seg(p0, p1))
	}

	for i, line := range d.Polylines {
		if len(line) < 2 {
			return nil, fmt.Errorf("polylines[%d]: got %d points: %w", i, len(line), ErrShortPolyline)
		}
		prev, err := point(line[0])
		if err != nil {
			return nil, fmt.Errorf("polylines[%d][0]: %w", i, err)
		}
		for j := 1; j < len(line); j++ {
			cur, err := point(line[j])
			if err != nil {
				return nil, fmt.Errorf("polylines[%d][%d]: %w", i, j, err)
			}
			out = append(out, geom.Seg(prev, cur))
			prev = cur
		}
	}

	return out, nil
}

func point(raw []float64) (geom.Coordinate, error) {
	if len(raw) != 2 {
		return geom.Coordinate{}, fmt.Errorf("got %d: %w", len(raw), ErrBadPoint)
	}

	return geom.XY(raw[0], raw[1]), nil
}
