// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

func plotEllipsePoints(s *surface.Surface, cx, cy, x, y int, c blit.Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
}

// Ellipse draws an axis-aligned ellipse outline with the two-region
// midpoint algorithm. Both radii zero draws the single center pixel; a
// negative radius is invalid.
func Ellipse(s *surface.Surface, cx, cy, rx, ry int, c blit.Color) error {
	if !s.Valid() || rx < 0 || ry < 0 {
		return blit.ErrInvalidParam
	}
	if rx == 0 && ry == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	rx2 := rx * rx
	ry2 := ry * ry

	x, y := 0, ry

	// Region 1: slope magnitude below 1, step x every iteration.
	d1 := ry2 - rx2*ry + rx2/4
	dx := 2 * ry2 * x
	dy := 2 * rx2 * y

	plotEllipsePoints(s, cx, cy, x, y, c)
	for dx < dy {
		if d1 < 0 {
			x++
			dx += 2 * ry2
			d1 += dx + ry2
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d1 += dx - dy + ry2
		}
		plotEllipsePoints(s, cx, cy, x, y, c)
	}

	// Region 2: slope magnitude above 1, step y every iteration. The
	// decision variable restarts from the half-pixel offset boundary
	// position, truncated to int.
	fx := float64(x)
	fy := float64(y)
	d2 := int(float64(ry2)*(fx+0.5)*(fx+0.5) + float64(rx2)*(fy-1)*(fy-1) - float64(rx2*ry2))

	for y > 0 {
		if d2 > 0 {
			y--
			dy -= 2 * rx2
			d2 += rx2 - dy
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d2 += dx - dy + rx2
		}
		plotEllipsePoints(s, cx, cy, x, y, c)
	}
	return nil
}

// EllipseFilled draws a filled axis-aligned ellipse by scanning rows and
// solving the ellipse equation for the half-width at each row.
func EllipseFilled(s *surface.Surface, cx, cy, rx, ry int, c blit.Color) error {
	if !s.Valid() || rx < 0 || ry < 0 {
		return blit.ErrInvalidParam
	}
	if ry == 0 {
		s.FillSpan(cx-rx, cx+rx, cy, c)
		return nil
	}

	for y := -ry; y <= ry; y++ {
		t := float64(y) / float64(ry)
		half := int(float64(rx) * math.Sqrt(1-t*t))
		s.FillSpan(cx-half, cx+half, cy+y, c)
	}
	return nil
}
