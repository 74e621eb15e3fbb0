// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

// Text draws a string with the built-in 7x13 bitmap face. The point
// (x, y) is the baseline origin of the first glyph; glyphs are alpha
// blended onto the surface through the font drawer.
func Text(s *surface.Surface, x, y int, text string, c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if text == "" {
		return nil
	}
	d := font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(c.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// Char draws a single rune at baseline origin (x, y) and returns the
// glyph advance in pixels.
func Char(s *surface.Surface, x, y int, r rune, c blit.Color) (int, error) {
	if !s.Valid() {
		return 0, blit.ErrInvalidParam
	}
	d := font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(c.NRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(r))
	return (d.Dot.X - fixed.I(x)).Ceil(), nil
}
