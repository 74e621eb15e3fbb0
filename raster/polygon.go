// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"sort"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

// FillRule selects how PolygonFilled decides interior pixels for
// self-intersecting polygons.
type FillRule uint8

const (
	// FillEvenOdd toggles interiorness at every edge crossing.
	FillEvenOdd FillRule = iota
	// FillNonZero sums signed crossings and fills where the winding
	// number is nonzero.
	FillNonZero
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case FillEvenOdd:
		return "even-odd"
	case FillNonZero:
		return "non-zero"
	default:
		return "unknown"
	}
}

// Polygon draws the closed outline of a polygon, connecting the last
// point back to the first. Fewer than 3 points draws nothing.
func Polygon(s *surface.Surface, pts []blit.Point, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if len(pts) < 3 {
		return nil
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if err := Line(s, a.X, a.Y, b.X, b.Y, c); err != nil {
			return err
		}
	}
	return nil
}

// crossing is one edge intersection with a scanline, carrying the edge
// direction so the non-zero rule can accumulate winding.
type crossing struct {
	x       float64
	winding int
}

// PolygonFilled scanline-fills a polygon under the given fill rule.
// Scanlines sample at pixel centers (y + 0.5) and intersect each edge
// half-open in y, so shared vertices count once. Fewer than 3 points
// draws nothing.
func PolygonFilled(s *surface.Surface, pts []blit.Point, rule FillRule, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if len(pts) < 3 {
		return nil
	}

	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	if yMin < 0 {
		yMin = 0
	}
	if yMax >= s.Height() {
		yMax = s.Height() - 1
	}

	var xs []crossing
	for y := yMin; y <= yMax; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]

		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			winding := 1
			if a.Y > b.Y {
				a, b = b, a
				winding = -1
			}
			// Half-open in y: the top vertex belongs to the edge, the
			// bottom does not, so a scanline through a shared vertex
			// crosses exactly one of the two meeting edges.
			if sy < float64(a.Y) || sy >= float64(b.Y) {
				continue
			}
			t := (sy - float64(a.Y)) / (float64(b.Y) - float64(a.Y))
			x := float64(a.X) + t*(float64(b.X)-float64(a.X))
			xs = append(xs, crossing{x: x, winding: winding})
		}
		if len(xs) == 0 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		switch rule {
		case FillNonZero:
			wind := 0
			for i := 0; i < len(xs)-1; i++ {
				wind += xs[i].winding
				if wind != 0 {
					fillBetween(s, xs[i].x, xs[i+1].x, y, c)
				}
			}
		default:
			for i := 0; i+1 < len(xs); i += 2 {
				fillBetween(s, xs[i].x, xs[i+1].x, y, c)
			}
		}
	}
	return nil
}

// fillBetween fills the pixels whose centers fall in [x0, x1).
func fillBetween(s *surface.Surface, x0, x1 float64, y int, c blit.Color) {
	lo := int(math.Ceil(x0 - 0.5))
	hi := int(math.Ceil(x1-0.5)) - 1
	if hi < lo {
		return
	}
	s.FillSpan(lo, hi, y, c)
}
