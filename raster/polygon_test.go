// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"testing"

	"github.com/gogfx/blit"
)

func square(x0, y0, x1, y1 int) []blit.Point {
	return []blit.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0},
		{X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	s := mustSurface(t, 20, 20)
	pts := []blit.Point{{X: 2, Y: 2}, {X: 10, Y: 10}}

	if err := Polygon(s, pts, blit.RGB(255, 0, 0)); err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	if err := PolygonFilled(s, pts, FillEvenOdd, blit.RGB(255, 0, 0)); err != nil {
		t.Fatalf("PolygonFilled: %v", err)
	}
	if got := countSet(s); got != 0 {
		t.Errorf("degenerate polygon drew %d pixels", got)
	}
}

func TestPolygonOutlineCloses(t *testing.T) {
	s := mustSurface(t, 30, 30)
	c := blit.RGB(255, 255, 255)

	if err := Polygon(s, square(5, 5, 20, 20), c); err != nil {
		t.Fatalf("Polygon: %v", err)
	}
	// The closing edge from the last point back to the first.
	if s.PixelAt(5, 12) != c {
		t.Error("closing edge not drawn")
	}
	if s.PixelAt(12, 12) != (blit.Color{}) {
		t.Error("interior filled by outline")
	}
}

func TestPolygonFilledSquare(t *testing.T) {
	s := mustSurface(t, 30, 30)
	c := blit.RGB(0, 0, 255)

	if err := PolygonFilled(s, square(10, 10, 20, 20), FillEvenOdd, c); err != nil {
		t.Fatalf("PolygonFilled: %v", err)
	}
	if s.PixelAt(15, 15) != c {
		t.Error("interior not filled")
	}
	if s.PixelAt(25, 15) != (blit.Color{}) {
		t.Error("exterior filled")
	}
	if s.PixelAt(15, 5) != (blit.Color{}) {
		t.Error("pixel above polygon filled")
	}
}

func TestPolygonFilledTriangle(t *testing.T) {
	s := mustSurface(t, 40, 40)
	c := blit.RGB(0, 255, 0)
	pts := []blit.Point{{X: 20, Y: 5}, {X: 35, Y: 30}, {X: 5, Y: 30}}

	if err := PolygonFilled(s, pts, FillEvenOdd, c); err != nil {
		t.Fatalf("PolygonFilled: %v", err)
	}
	if s.PixelAt(20, 20) != c {
		t.Error("triangle interior not filled")
	}
	if s.PixelAt(5, 10) != (blit.Color{}) {
		t.Error("pixel outside slanted edge filled")
	}
}

func TestPolygonFillRules(t *testing.T) {
	// The same square traced twice: every scanline crosses each side
	// twice, so even-odd coverage cancels while the winding number
	// doubles.
	doubled := append(square(10, 10, 20, 20), square(10, 10, 20, 20)...)

	s := mustSurface(t, 30, 30)
	if err := PolygonFilled(s, doubled, FillEvenOdd, blit.RGB(255, 0, 0)); err != nil {
		t.Fatalf("even-odd: %v", err)
	}
	if got := s.PixelAt(15, 15); got != (blit.Color{}) {
		t.Errorf("even-odd filled the cancelled region: %v", got)
	}

	s2 := mustSurface(t, 30, 30)
	c := blit.RGB(255, 0, 0)
	if err := PolygonFilled(s2, doubled, FillNonZero, c); err != nil {
		t.Fatalf("non-zero: %v", err)
	}
	if got := s2.PixelAt(15, 15); got != c {
		t.Errorf("non-zero left the doubly wound region empty: %v", got)
	}
}

func TestFillRuleString(t *testing.T) {
	if got := FillEvenOdd.String(); got != "even-odd" {
		t.Errorf("FillEvenOdd.String() = %q", got)
	}
	if got := FillNonZero.String(); got != "non-zero" {
		t.Errorf("FillNonZero.String() = %q", got)
	}
	if got := FillRule(9).String(); got != "unknown" {
		t.Errorf("FillRule(9).String() = %q", got)
	}
}
