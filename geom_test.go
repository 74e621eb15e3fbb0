// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package blit

import "testing"

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{W: 10, H: 10}, false},
		{Rect{W: 0, H: 10}, true},
		{Rect{W: 10, H: 0}, true},
		{Rect{W: -1, H: 5}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("corner points not contained")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) || r.Contains(1, 3) {
		t.Error("points past the edges contained")
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}

	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, W: 5, H: 5}
	if !a.Intersect(c).Empty() {
		t.Error("disjoint intersection not empty")
	}
}
