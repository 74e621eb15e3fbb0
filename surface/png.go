// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogfx/blit"
)

// EncodePNG writes the surface contents as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	if err := png.Encode(w, s.Snapshot()); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.EncodePNG(f)
}
