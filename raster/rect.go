// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

// RectFilled fills an axis-aligned rectangle. Zero or negative
// dimensions draw nothing; out-of-bounds rows and columns are clipped
// by the span fill.
func RectFilled(s *surface.Surface, r blit.Rect, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if r.Empty() {
		return nil
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		s.FillSpan(r.X, r.X+r.W-1, y, c)
	}
	return nil
}

// RectOutline draws the one-pixel border of an axis-aligned rectangle.
func RectOutline(s *surface.Surface, r blit.Rect, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if r.Empty() {
		return nil
	}
	x1 := r.X + r.W - 1
	y1 := r.Y + r.H - 1
	s.FillSpan(r.X, x1, r.Y, c)
	s.FillSpan(r.X, x1, y1, c)
	if r.H > 2 {
		s.FillColumn(r.X, r.Y+1, y1-1, c)
		s.FillColumn(x1, r.Y+1, y1-1, c)
	}
	return nil
}
