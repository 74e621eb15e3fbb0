package blit

// BlendMode specifies how a source color is combined with a destination
// color. The set is closed: every mode is dispatched through an explicit
// switch in Blend and BlendAdvanced.
type BlendMode uint8

const (
	// BlendNone passes the source through unchanged.
	BlendNone BlendMode = iota
	// BlendAlpha is standard Porter-Duff source-over compositing.
	BlendAlpha
	// BlendAdd is a saturating per-channel sum, alpha included.
	BlendAdd
	// BlendMultiply multiplies channels pairwise, alpha included.
	BlendMultiply
	// BlendScreen is the inverse-multiply of the channel inverses.
	BlendScreen
	// BlendOverlay combines Multiply and Screen depending on the destination.
	BlendOverlay
	// BlendSoftLight is a soft version of HardLight.
	BlendSoftLight
	// BlendHardLight combines Multiply and Screen depending on the source.
	BlendHardLight
	// BlendColorDodge brightens the destination to reflect the source.
	BlendColorDodge
	// BlendColorBurn darkens the destination to reflect the source.
	BlendColorBurn
	// BlendDifference takes the per-channel absolute difference.
	BlendDifference
	// BlendExclusion is a lower-contrast Difference.
	BlendExclusion
)

// String returns the mode name for diagnostics.
func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "None"
	case BlendAlpha:
		return "Alpha"
	case BlendAdd:
		return "Add"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendSoftLight:
		return "SoftLight"
	case BlendHardLight:
		return "HardLight"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	default:
		return "Unknown"
	}
}

// AlphaBlend composites src over dst using the Porter-Duff "over"
// operator. Inputs are straight (non-premultiplied); the computation
// premultiplies, sums, and unpremultiplies.
//
// Short circuits: a fully transparent source returns dst unchanged, a
// fully opaque source returns src unchanged, and a fully transparent
// result is transparent black rather than a division by zero.
func AlphaBlend(src, dst Color) Color {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return src
	}

	srcA := float32(src.A) / 255.0
	dstA := float32(dst.A) / 255.0
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return Color{}
	}

	srcR := (float32(src.R) / 255.0) * srcA
	srcG := (float32(src.G) / 255.0) * srcA
	srcB := (float32(src.B) / 255.0) * srcA

	dstR := (float32(dst.R) / 255.0) * dstA * invSrcA
	dstG := (float32(dst.G) / 255.0) * dstA * invSrcA
	dstB := (float32(dst.B) / 255.0) * dstA * invSrcA

	return Color{
		R: clampAndRound((srcR + dstR) / outA),
		G: clampAndRound((srcG + dstG) / outA),
		B: clampAndRound((srcB + dstB) / outA),
		A: clampAndRound(outA),
	}
}

// Blend combines src and dst using the given mode.
//
// None, Alpha, Add, Multiply, and Screen run entirely in 8-bit integer
// arithmetic. The remaining modes are color-mixing formulas evaluated in
// float precision; for those the source alpha is preserved unchanged,
// since they express mixing rather than compositing.
func Blend(src, dst Color, mode BlendMode) Color {
	switch mode {
	case BlendNone:
		return src

	case BlendAlpha:
		return AlphaBlend(src, dst)

	case BlendAdd:
		return Color{
			R: satAdd(src.R, dst.R),
			G: satAdd(src.G, dst.G),
			B: satAdd(src.B, dst.B),
			A: satAdd(src.A, dst.A),
		}

	case BlendMultiply:
		return Color{
			R: uint8(uint16(src.R) * uint16(dst.R) / 255),
			G: uint8(uint16(src.G) * uint16(dst.G) / 255),
			B: uint8(uint16(src.B) * uint16(dst.B) / 255),
			A: uint8(uint16(src.A) * uint16(dst.A) / 255),
		}

	case BlendScreen:
		return Color{
			R: 255 - uint8(uint16(255-src.R)*uint16(255-dst.R)/255),
			G: 255 - uint8(uint16(255-src.G)*uint16(255-dst.G)/255),
			B: 255 - uint8(uint16(255-src.B)*uint16(255-dst.B)/255),
			A: 255 - uint8(uint16(255-src.A)*uint16(255-dst.A)/255),
		}

	case BlendOverlay:
		return Overlay(src, dst)
	case BlendSoftLight:
		return SoftLight(src, dst)
	case BlendHardLight:
		return HardLight(src, dst)
	case BlendColorDodge:
		return ColorDodge(src, dst)
	case BlendColorBurn:
		return ColorBurn(src, dst)
	case BlendDifference:
		return Difference(src, dst)
	case BlendExclusion:
		return Exclusion(src, dst)

	default:
		return src
	}
}

// satAdd adds two channel values, saturating at 255.
func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
