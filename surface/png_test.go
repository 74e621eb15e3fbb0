// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogfx/blit"
)

func TestEncodePNG(t *testing.T) {
	s, _ := New(8, 8)
	_ = s.Clear(blit.RGB(255, 0, 0))

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Errorf("bounds = %v", got)
	}
	r, _, _, a := img.At(3, 3).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("pixel = r %#x a %#x, want opaque red", r, a)
	}
}

func TestSavePNG(t *testing.T) {
	s, _ := New(4, 4)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file missing: %v", err)
	}

	_ = s.Destroy()
	if err := s.SavePNG(path); err == nil {
		t.Error("SavePNG on destroyed surface did not error")
	}
}
