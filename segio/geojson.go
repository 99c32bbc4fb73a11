// SPDX-License-Identifier: MIT
//
// File: geojson.go
// Role: GeoJSON input (street centerlines are usually shipped this way).
//
// Accepted roots: FeatureCollection, Feature, or a bare Geometry.
// LineString and MultiLineString parts become polylines; Polygon and
// MultiPolygon rings become closed polylines; GeometryCollection recurses.
// Point and MultiPoint carry no segments and are skipped. A third ordinate
// (elevation) is ignored.

package segio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/linegraph/geom"
)

// ErrUnsupportedGeometry indicates a GeoJSON geometry type segio does not know.
var ErrUnsupportedGeometry = errors.New("segio: unsupported geometry type")

// DecodeGeoJSON reads one GeoJSON object from r and flattens its line work
// into segments, in document order.
func DecodeGeoJSON(r io.Reader) ([]geom.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("segio: geojson: %w", err)
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("segio: geojson: %w", err)
	}

	var out []geom.Segment
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("segio: geojson: %w", err)
		}
		for i, f := range fc.Features {
			if out, err = appendGeometry(out, f.Geometry); err != nil {
				return nil, fmt.Errorf("features[%d]: %w", i, err)
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("segio: geojson: %w", err)
		}
		if out, err = appendGeometry(out, f.Geometry); err != nil {
			return nil, err
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("segio: geojson: %w", err)
		}
		if out, err = appendGeometry(out, g); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func appendGeometry(out []geom.Segment, g *geojson.Geometry) ([]geom.Segment, error) {
	if g == nil {
		return out, nil
	}

	var err error
	switch g.Type {
	case geojson.GeometryPoint, geojson.GeometryMultiPoint:
		return out, nil
	case geojson.GeometryLineString:
		return appendLine(out, g.LineString)
	case geojson.GeometryMultiLineString:
		for i, line := range g.MultiLineString {
			if out, err = appendLine(out, line); err != nil {
				return nil, fmt.Errorf("lines[%d]: %w", i, err)
			}
		}
	case geojson.GeometryPolygon:
		return appendRings(out, g.Polygon)
	case geojson.GeometryMultiPolygon:
		for i, poly := range g.MultiPolygon {
			if out, err = appendRings(out, poly); err != nil {
				return nil, fmt.Errorf("polygons[%d]: %w", i, err)
			}
		}
	case geojson.GeometryCollection:
		for i, child := range g.Geometries {
			if out, err = appendGeometry(out, child); err != nil {
				return nil, fmt.Errorf("geometries[%d]: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%q: %w", g.Type, ErrUnsupportedGeometry)
	}

	return out, nil
}

func appendRings(out []geom.Segment, rings [][][]float64) ([]geom.Segment, error) {
	var err error
	for i, ring := range rings {
		if out, err = appendLine(out, ring); err != nil {
			return nil, fmt.Errorf("rings[%d]: %w", i, err)
		}
	}

	return out, nil
}

func appendLine(out []geom.Segment, line [][]float64) ([]geom.Segment, error) {
	if len(line) < 2 {
		return nil, fmt.Errorf("got %d points: %w", len(line), ErrShortPolyline)
	}
	prev, err := position(line[0])
	if err != nil {
		return nil, fmt.Errorf("[0]: %w", err)
	}
	for j := 1; j < len(line); j++ {
		cur, err := position(line[j])
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", j, err)
		}
		out = append(out, geom.Seg(prev, cur))
		prev = cur
	}

	return out, nil
}

// position accepts [x, y] and [x, y, z].
func position(raw []float64) (geom.Coordinate, error) {
	if len(raw) < 2 || len(raw) > 3 {
		return geom.Coordinate{}, fmt.Errorf("got %d: %w", len(raw), ErrBadPoint)
	}

	return geom.XY(raw[0], raw[1]), nil
}
