// Package platform detects host capabilities relevant to rendering:
// CPU SIMD extensions, GPU vendor, and display subsystem availability.
//
// The probe is read-only and purely advisory. Consumers may pick an
// accelerated code path from it, but absence of any capability is never
// a functional error; every accelerated path has a scalar fallback that
// produces byte-identical results.
package platform

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/gogfx/blit"
)

// Caps is a read-only snapshot of host capabilities, queried once and
// cached for the process lifetime.
type Caps struct {
	// HasAVX2 reports x86-64 AVX2 support.
	HasAVX2 bool
	// HasNEON reports ARM NEON support. Always true on arm64.
	HasNEON bool
	// HasDRM reports a kernel DRM render device.
	HasDRM bool
	// HasWayland reports a live Wayland session.
	HasWayland bool
	// GPUVendor is the primary GPU vendor name, or "Unknown".
	GPUVendor string
	// Platform is the OS name ("linux", "darwin", "windows", ...).
	Platform string
}

// probe holds the lazily computed snapshot. The mutable cell is never
// exported; tests reset it through Reset.
var probe struct {
	mu   sync.Mutex
	done bool
	caps Caps
}

// Detect returns the cached capability snapshot, computing it on first
// use. Safe for concurrent use.
func Detect() Caps {
	probe.mu.Lock()
	defer probe.mu.Unlock()
	if !probe.done {
		probe.caps = detect()
		probe.done = true
		blit.Logger().Info("platform: capabilities detected",
			slog.Bool("avx2", probe.caps.HasAVX2),
			slog.Bool("neon", probe.caps.HasNEON),
			slog.Bool("drm", probe.caps.HasDRM),
			slog.Bool("wayland", probe.caps.HasWayland),
			slog.String("gpu", probe.caps.GPUVendor),
			slog.String("platform", probe.caps.Platform))
	}
	return probe.caps
}

// Reset clears the cached snapshot so the next Detect probes again.
// Intended for tests that manipulate the environment.
func Reset() {
	probe.mu.Lock()
	defer probe.mu.Unlock()
	probe.done = false
	probe.caps = Caps{}
}

// ShouldUseSIMD reports whether a SIMD-sized kernel is worthwhile.
func ShouldUseSIMD() bool {
	caps := Detect()
	return caps.HasAVX2 || caps.HasNEON
}

// ShouldUseGPU reports whether a GPU presentation path is plausible.
// It never implies one is required.
func ShouldUseGPU() bool {
	caps := Detect()
	return caps.HasDRM && caps.GPUVendor != "Unknown"
}

func detect() Caps {
	return Caps{
		HasAVX2:    cpu.X86.HasAVX2,
		HasNEON:    detectNEON(),
		HasDRM:     detectDRM(),
		HasWayland: detectWayland(),
		GPUVendor:  detectGPUVendor(),
		Platform:   runtime.GOOS,
	}
}

func detectNEON() bool {
	// AArch64 mandates NEON (ASIMD); 32-bit ARM reports it per-core.
	if runtime.GOARCH == "arm64" {
		return true
	}
	return cpu.ARM.HasNEON
}

func detectDRM() bool {
	for _, p := range []string{"/dev/dri/card0", "/dev/dri/card1"} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}

func detectWayland() bool {
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// pciVendors maps PCI vendor IDs to names for the cards we care about.
var pciVendors = map[uint64]string{
	0x8086: "Intel",
	0x10de: "NVIDIA",
	0x1002: "AMD",
	0x1414: "Microsoft",
}

func detectGPUVendor() string {
	for _, p := range []string{
		"/sys/class/drm/card0/device/vendor",
		"/sys/class/drm/card1/device/vendor",
	} {
		raw, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(string(raw)), "0x"), 16, 32)
		if err != nil {
			continue
		}
		if name, ok := pciVendors[id]; ok {
			return name
		}
		return "Unknown"
	}
	return "Unknown"
}
