package blit

// Float-precision blend formulas.
//
// Each function is a pure (src, dst) -> result mapping evaluated on
// normalized channels. The source alpha is carried through unchanged:
// these modes express color mixing, not compositing. Callers wanting
// compositing apply AlphaBlend to the mixed result.

// Overlay multiplies or screens per channel depending on the destination.
// Formula: d < 0.5 ? 2*s*d : 1 - 2*(1-s)*(1-d)
func Overlay(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		if d < 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	})
}

// HardLight is Overlay with the roles of source and destination swapped:
// the branch is taken on the source channel.
func HardLight(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		if s < 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	})
}

// SoftLight darkens or lightens depending on the source.
// Formula: (1 - 2s)*d^2 + 2*s*d
func SoftLight(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		return (1-2*s)*d*d + 2*s*d
	})
}

// ColorDodge brightens the destination to reflect the source.
// A source channel at 1 maps straight to 1, guarding the division.
func ColorDodge(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		if s >= 1 {
			return 1
		}
		return clampF(d / (1 - s))
	})
}

// ColorBurn darkens the destination to reflect the source.
// A source channel at 0 maps straight to 0, guarding the division.
func ColorBurn(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		if s <= 0 {
			return 0
		}
		return clampF(1 - (1-d)/s)
	})
}

// Difference takes the per-channel absolute difference. It stays in
// integer arithmetic, the formula is exact there.
func Difference(src, dst Color) Color {
	return Color{
		R: absDiff(src.R, dst.R),
		G: absDiff(src.G, dst.G),
		B: absDiff(src.B, dst.B),
		A: src.A,
	}
}

// Exclusion is a lower-contrast Difference.
// Formula: s + d - 2*s*d
func Exclusion(src, dst Color) Color {
	return mixFloat(src, dst, func(s, d float32) float32 {
		return s + d - 2*s*d
	})
}

// BlendAdvanced blends with float precision and an extra opacity factor
// in [0, 1] applied to the source alpha before blending. Modes without a
// dedicated float formula (None, Alpha, Add, Multiply, Screen) are
// evaluated in float space so the opacity scaling stays exact.
func BlendAdvanced(src, dst Color, mode BlendMode, opacity float32) Color {
	sf := src.Float()
	df := dst.Float()
	sf.A *= clampF(opacity)

	var rf ColorF
	switch mode {
	case BlendNone:
		rf = sf

	case BlendAlpha:
		a := sf.A
		inv := 1 - a
		rf = ColorF{
			R: sf.R*a + df.R*inv,
			G: sf.G*a + df.G*inv,
			B: sf.B*a + df.B*inv,
			A: a + df.A*inv,
		}

	case BlendAdd:
		rf = ColorF{
			R: clampF(sf.R + df.R),
			G: clampF(sf.G + df.G),
			B: clampF(sf.B + df.B),
			A: clampF(sf.A + df.A),
		}

	case BlendMultiply:
		rf = ColorF{R: sf.R * df.R, G: sf.G * df.G, B: sf.B * df.B, A: sf.A * df.A}

	case BlendScreen:
		rf = ColorF{
			R: 1 - (1-sf.R)*(1-df.R),
			G: 1 - (1-sf.G)*(1-df.G),
			B: 1 - (1-sf.B)*(1-df.B),
			A: 1 - (1-sf.A)*(1-df.A),
		}

	default:
		// Mixing modes ignore opacity beyond the alpha scale above.
		return Blend(sf.Color(), dst, mode)
	}

	return rf.Color()
}

// mixFloat applies a per-channel float formula to RGB and carries the
// source alpha through.
func mixFloat(src, dst Color, f func(s, d float32) float32) Color {
	sf := src.Float()
	df := dst.Float()
	rf := ColorF{
		R: f(sf.R, df.R),
		G: f(sf.G, df.G),
		B: f(sf.B, df.B),
		A: sf.A,
	}
	return rf.Color()
}

func clampF(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
