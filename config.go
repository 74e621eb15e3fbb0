package blit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Options holds tunables that callers or host applications may want to
// persist between runs. All fields have working defaults; a missing
// config file is not an error.
type Options struct {
	// ForceScalar disables accelerated bulk kernels even when the
	// platform probe reports SIMD support. Results never differ, only
	// speed does.
	ForceScalar bool

	// SurfacePoolSize is the byte size of the allocator backing a
	// surface pool created without an explicit allocator.
	SurfacePoolSize int

	// SurfacePoolMax caps how many surfaces a pool retains for reuse.
	SurfacePoolMax int
}

const optionsFile = "blit.toml"

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		ForceScalar:     false,
		SurfacePoolSize: 8 * 1024 * 1024,
		SurfacePoolMax:  16,
	}
}

// LoadOptions reads options from the given TOML file. Defaults fill any
// fields the file omits. A nonexistent path returns the defaults with a
// nil error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("blit: reading options %s: %w", path, err)
	}
	return opts, nil
}

// SaveOptions writes options to the given TOML file, creating parent
// directories as needed.
func SaveOptions(path string, opts Options) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(opts); err != nil {
		return fmt.Errorf("blit: encoding options: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("blit: creating options dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("blit: writing options: %w", err)
	}
	return nil
}

// OptionsPath returns the conventional per-user location of the options
// file, honoring XDG_CONFIG_HOME when set.
func OptionsPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "blit", optionsFile)
}
