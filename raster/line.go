// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster draws pixel-exact primitives onto surfaces.
//
// Every operation validates its inputs, clips to the surface bounds
// through the pixel accessors, and runs to completion on the calling
// goroutine. Bulk spans go through the surface fill kernel, which the
// platform capability probe selects; results never depend on the
// kernel, only throughput does.
package raster

import (
	"math"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

// Line draws a solid line from (x0, y0) to (x1, y1), both endpoints
// included. Purely horizontal and vertical segments take a direct span
// fill; the general case is integer Bresenham.
func Line(s *surface.Surface, x0, y0, x1, y1 int, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}

	if y0 == y1 {
		s.FillSpan(x0, x1, y0, c)
		return nil
	}
	if x0 == x1 {
		s.FillColumn(x0, y0, y1, c)
		return nil
	}

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		s.SetPixel(x, y, c)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return nil
}

// LineAA draws an anti-aliased line using Wu's algorithm. Coverage
// scales the color's alpha channel and the scaled color overwrites the
// destination pixel; no destination read happens here. Callers wanting
// true compositing read back and blend through blit.AlphaBlend.
func LineAA(s *surface.Surface, x0, y0, x1, y1 int, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	gradient := dy / dx

	// First endpoint
	xend := float64(x0)
	yend := float64(y0) + gradient*(xend-float64(x0))
	xgap := rfpart(float64(x0) + 0.5)
	xpxl1 := x0
	ypxl1 := ipart(yend)

	plotCoverage(s, xpxl1, ypxl1, steep, c, rfpart(yend)*xgap)
	plotCoverage(s, xpxl1, ypxl1+1, steep, c, fpart(yend)*xgap)

	intery := yend + gradient

	// Second endpoint
	xend = float64(x1)
	yend = float64(y1) + gradient*(xend-float64(x1))
	xgap = fpart(float64(x1) + 0.5)
	xpxl2 := x1
	ypxl2 := ipart(yend)

	plotCoverage(s, xpxl2, ypxl2, steep, c, rfpart(yend)*xgap)
	plotCoverage(s, xpxl2, ypxl2+1, steep, c, fpart(yend)*xgap)

	// Interior
	for x := xpxl1 + 1; x < xpxl2; x++ {
		plotCoverage(s, x, ipart(intery), steep, c, rfpart(intery))
		plotCoverage(s, x, ipart(intery)+1, steep, c, fpart(intery))
		intery += gradient
	}
	return nil
}

// plotCoverage writes c with its alpha scaled by coverage at (x, y),
// un-swapping the coordinates when the line was traversed steep.
func plotCoverage(s *surface.Surface, x, y int, steep bool, c blit.Color, coverage float64) {
	if coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	c.A = uint8(float64(c.A) * coverage)
	if steep {
		s.SetPixel(y, x, c)
	} else {
		s.SetPixel(x, y, c)
	}
}

// LineThick draws a line of the given pixel thickness as parallel solid
// line copies offset along the unit perpendicular, centered on the
// segment. Thickness 1 is a plain Line; a zero-length segment becomes a
// filled circle of radius thickness/2.
func LineThick(s *surface.Surface, x0, y0, x1, y1, thickness int, c blit.Color) error {
	if !s.Valid() || thickness <= 0 {
		return blit.ErrInvalidParam
	}
	if thickness == 1 {
		return Line(s, x0, y0, x1, y1, c)
	}

	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return CircleFilled(s, x0, y0, thickness/2, c)
	}

	// Unit perpendicular
	px := -dy / length
	py := dx / length

	for i := -thickness / 2; i <= thickness/2; i++ {
		ox0 := x0 + int(px*float64(i))
		oy0 := y0 + int(py*float64(i))
		ox1 := x1 + int(px*float64(i))
		oy1 := y1 + int(py*float64(i))
		if err := Line(s, ox0, oy0, ox1, oy1, c); err != nil {
			return err
		}
	}
	return nil
}

// Cohen-Sutherland outcodes: a 4-bit classification of a point against
// the clip rectangle.
const (
	clipInside = 0
	clipLeft   = 1
	clipRight  = 2
	clipBottom = 4
	clipTop    = 8
)

func outcode(x, y int, clip blit.Rect) int {
	code := clipInside
	if x < clip.X {
		code |= clipLeft
	} else if x >= clip.X+clip.W {
		code |= clipRight
	}
	if y < clip.Y {
		code |= clipBottom
	} else if y >= clip.Y+clip.H {
		code |= clipTop
	}
	return code
}

// LineClipped draws the solid line clipped to the given rectangle using
// Cohen-Sutherland. A segment entirely outside the rectangle draws
// nothing.
func LineClipped(s *surface.Surface, x0, y0, x1, y1 int, clip blit.Rect, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}

	code0 := outcode(x0, y0, clip)
	code1 := outcode(x1, y1, clip)

	for {
		switch {
		case code0|code1 == 0:
			// Both endpoints inside
			return Line(s, x0, y0, x1, y1, c)

		case code0&code1 != 0:
			// Entirely outside one boundary
			return nil

		default:
			out := code0
			if out == 0 {
				out = code1
			}

			// Rational interpolation against the violated boundary.
			var x, y int
			switch {
			case out&clipTop != 0:
				x = x0 + (x1-x0)*(clip.Y+clip.H-1-y0)/(y1-y0)
				y = clip.Y + clip.H - 1
			case out&clipBottom != 0:
				x = x0 + (x1-x0)*(clip.Y-y0)/(y1-y0)
				y = clip.Y
			case out&clipRight != 0:
				y = y0 + (y1-y0)*(clip.X+clip.W-1-x0)/(x1-x0)
				x = clip.X + clip.W - 1
			case out&clipLeft != 0:
				y = y0 + (y1-y0)*(clip.X-x0)/(x1-x0)
				x = clip.X
			}

			if out == code0 {
				x0, y0 = x, y
				code0 = outcode(x0, y0, clip)
			} else {
				x1, y1 = x, y
				code1 = outcode(x1, y1, clip)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func ipart(v float64) int {
	return int(math.Floor(v))
}

func fpart(v float64) float64 {
	return v - math.Floor(v)
}

func rfpart(v float64) float64 {
	return 1 - fpart(v)
}
