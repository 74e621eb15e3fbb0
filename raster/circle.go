// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

// plotCirclePoints writes the 8 symmetric points of the first-octant
// position (x, y) around the center.
func plotCirclePoints(s *surface.Surface, cx, cy, x, y int, c blit.Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
	s.SetPixel(cx+y, cy+x, c)
	s.SetPixel(cx-y, cy+x, c)
	s.SetPixel(cx+y, cy-x, c)
	s.SetPixel(cx-y, cy-x, c)
}

// fillCircleSpans fills the horizontal spans for the 4 quadrants at the
// first-octant position (x, y), skipping the spans that would duplicate
// already filled rows (y == 0 mirrors onto itself, y == x collides with
// the swapped-octant span).
func fillCircleSpans(s *surface.Surface, cx, cy, x, y int, c blit.Color) {
	if x != 0 {
		s.FillSpan(cx-x, cx+x, cy+y, c)
		s.FillSpan(cx-x, cx+x, cy-y, c)
	}
	if y != 0 && y != x {
		s.FillSpan(cx-y, cx+y, cy+x, c)
		s.FillSpan(cx-y, cx+y, cy-x, c)
	}
}

// Circle draws a circle outline with the midpoint algorithm. Radius 0
// draws the single center pixel; a negative radius is invalid.
func Circle(s *surface.Surface, cx, cy, radius int, c blit.Color) error {
	if !s.Valid() || radius < 0 {
		return blit.ErrInvalidParam
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x, y := 0, radius
	d := 1 - radius

	plotCirclePoints(s, cx, cy, x, y, c)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		plotCirclePoints(s, cx, cy, x, y, c)
	}
	return nil
}

// CircleFilled draws a filled circle, walking the midpoint octant and
// filling horizontal spans per symmetric row instead of single pixels.
func CircleFilled(s *surface.Surface, cx, cy, radius int, c blit.Color) error {
	if !s.Valid() || radius < 0 {
		return blit.ErrInvalidParam
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x, y := 0, radius
	d := 1 - radius

	fillCircleSpans(s, cx, cy, x, y, c)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		fillCircleSpans(s, cx, cy, x, y, c)
	}
	return nil
}

// CircleAA draws an anti-aliased circle outline by evaluating the
// distance field over the clipped bounding box: coverage is
// 1 - |distance - radius| clamped to [0, 1], and scales the color's
// alpha. Zero-coverage pixels are skipped entirely.
func CircleAA(s *surface.Surface, cx, cy, radius int, c blit.Color) error {
	if !s.Valid() || radius < 0 {
		return blit.ErrInvalidParam
	}

	xMin := cx - radius - 1
	xMax := cx + radius + 1
	yMin := cy - radius - 1
	yMax := cy + radius + 1

	if xMin < 0 {
		xMin = 0
	}
	if yMin < 0 {
		yMin = 0
	}
	if xMax >= s.Width() {
		xMax = s.Width() - 1
	}
	if yMax >= s.Height() {
		yMax = s.Height() - 1
	}

	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			distance := math.Sqrt(dx*dx + dy*dy)

			coverage := 1 - math.Abs(distance-float64(radius))
			if coverage <= 0 {
				continue
			}
			if coverage > 1 {
				coverage = 1
			}
			aa := c
			aa.A = uint8(float64(c.A) * coverage)
			s.SetPixel(x, y, aa)
		}
	}
	return nil
}

// Arc draws a circular arc between two angles in radians. Angles are
// normalized into [0, 2π); the angle step is min(1/radius, 0.1) and the
// exact end angle is always plotted last so step quantization cannot
// under- or overshoot the endpoint.
func Arc(s *surface.Surface, cx, cy, radius int, startAngle, endAngle float64, c blit.Color) error {
	if !s.Valid() || radius < 0 {
		return blit.ErrInvalidParam
	}

	for startAngle < 0 {
		startAngle += 2 * math.Pi
	}
	for endAngle < 0 {
		endAngle += 2 * math.Pi
	}
	for startAngle >= 2*math.Pi {
		startAngle -= 2 * math.Pi
	}
	for endAngle >= 2*math.Pi {
		endAngle -= 2 * math.Pi
	}

	step := 0.1
	if radius > 0 {
		if fine := 1 / float64(radius); fine < step {
			step = fine
		}
	}

	for angle := startAngle; angle <= endAngle; angle += step {
		x := cx + int(float64(radius)*math.Cos(angle))
		y := cy + int(float64(radius)*math.Sin(angle))
		s.SetPixel(x, y, c)
	}

	endX := cx + int(float64(radius)*math.Cos(endAngle))
	endY := cy + int(float64(radius)*math.Sin(endAngle))
	s.SetPixel(endX, endY, c)
	return nil
}
