// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogfx/blit"
)

// Surface implements image.Image and draw.Image so the standard library
// and golang.org/x/image can draw directly into a surface (the bitmap
// text path in raster relies on this).
var (
	_ image.Image = (*Surface)(nil)
)

// ColorModel returns the non-premultiplied RGBA model, matching the
// straight-alpha packed word layout.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.width, s.height)
}

// At returns the pixel at (x, y). Out-of-bounds reads are transparent
// black, the same contract as PixelAt.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).NRGBA()
}

// Set writes the pixel at (x, y), silently dropping out-of-bounds
// writes. This satisfies draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, blit.FromColor(c))
}

// Snapshot copies the surface contents into a fresh *image.RGBA.
// Mutating the returned image does not affect the surface.
func (s *Surface) Snapshot() *image.RGBA {
	if !s.Valid() {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, rgbaFrom(blit.Unpack(s.pix[y*s.stride+x])))
		}
	}
	return img
}

// rgbaFrom premultiplies a straight-alpha color for image.RGBA storage.
func rgbaFrom(c blit.Color) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
