package blit

import "math"

// Space identifies a color space for Convert.
type Space uint8

const (
	// SpaceRGB is non-linear sRGB, the native space of Color.
	SpaceRGB Space = iota
	// SpaceHSV is hue/saturation/value. Hue in R as degrees/360.
	SpaceHSV
	// SpaceHSL is hue/saturation/lightness. Hue in R as degrees/360.
	SpaceHSL
	// SpaceLAB is CIE L*a*b* under a D65 white point, normalized:
	// L in R as L/100, a in G as (a+128)/256, b in B as (b+128)/256.
	SpaceLAB
)

// String returns the space name for diagnostics.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHSV:
		return "HSV"
	case SpaceHSL:
		return "HSL"
	case SpaceLAB:
		return "LAB"
	default:
		return "Unknown"
	}
}

// Convert converts a color between two spaces. Conversions between two
// non-RGB spaces route through RGB as the intermediate. Alpha is passed
// through untouched. Round trips reproduce the input within about 1%
// per channel except at gamut extremes of genuinely lossy pairs.
func Convert(c ColorF, from, to Space) ColorF {
	if from == to {
		return c
	}

	var rgb ColorF
	switch from {
	case SpaceRGB:
		rgb = c
	case SpaceHSV:
		rgb = hsvToRGB(c)
	case SpaceHSL:
		rgb = hslToRGB(c)
	case SpaceLAB:
		rgb = labToRGB(c)
	default:
		return c
	}

	switch to {
	case SpaceRGB:
		return rgb
	case SpaceHSV:
		return rgbToHSV(rgb)
	case SpaceHSL:
		return rgbToHSL(rgb)
	case SpaceLAB:
		return rgbToLAB(rgb)
	default:
		return rgb
	}
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// hueFromMax derives the hue in [0,1] from the dominant channel.
func hueFromMax(r, g, b, maxVal, delta float32) float32 {
	var h float32
	switch maxVal {
	case r:
		h = 60 * float32(math.Mod(float64((g-b)/delta), 6))
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h / 360
}

// hueToPrimes maps a hue sector to the chroma-scaled channel triple.
func hueToPrimes(h, c, x float32) (float32, float32, float32) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

func rgbToHSV(rgb ColorF) ColorF {
	maxVal := max3(rgb.R, rgb.G, rgb.B)
	minVal := min3(rgb.R, rgb.G, rgb.B)
	delta := maxVal - minVal

	hsv := ColorF{A: rgb.A}
	hsv.B = maxVal // V

	if maxVal == 0 {
		hsv.G = 0
	} else {
		hsv.G = delta / maxVal // S
	}

	if delta == 0 {
		hsv.R = 0
	} else {
		hsv.R = hueFromMax(rgb.R, rgb.G, rgb.B, maxVal, delta)
	}
	return hsv
}

func hsvToRGB(hsv ColorF) ColorF {
	h := hsv.R * 360
	s := hsv.G
	v := hsv.B

	rgb := ColorF{A: hsv.A}
	if s == 0 {
		// Achromatic
		rgb.R, rgb.G, rgb.B = v, v, v
		return rgb
	}

	c := v * s
	x := c * (1 - float32(math.Abs(math.Mod(float64(h)/60, 2)-1)))
	m := v - c

	rp, gp, bp := hueToPrimes(h, c, x)
	rgb.R = rp + m
	rgb.G = gp + m
	rgb.B = bp + m
	return rgb
}

func rgbToHSL(rgb ColorF) ColorF {
	maxVal := max3(rgb.R, rgb.G, rgb.B)
	minVal := min3(rgb.R, rgb.G, rgb.B)
	delta := maxVal - minVal

	hsl := ColorF{A: rgb.A}
	hsl.B = (maxVal + minVal) / 2 // L

	if delta == 0 {
		// Achromatic
		hsl.R = 0
		hsl.G = 0
		return hsl
	}

	if hsl.B < 0.5 {
		hsl.G = delta / (maxVal + minVal)
	} else {
		hsl.G = delta / (2 - maxVal - minVal)
	}
	hsl.R = hueFromMax(rgb.R, rgb.G, rgb.B, maxVal, delta)
	return hsl
}

func hslToRGB(hsl ColorF) ColorF {
	h := hsl.R * 360
	s := hsl.G
	l := hsl.B

	rgb := ColorF{A: hsl.A}
	if s == 0 {
		// Achromatic
		rgb.R, rgb.G, rgb.B = l, l, l
		return rgb
	}

	c := (1 - float32(math.Abs(float64(2*l-1)))) * s
	x := c * (1 - float32(math.Abs(math.Mod(float64(h)/60, 2)-1)))
	m := l - c/2

	rp, gp, bp := hueToPrimes(h, c, x)
	rgb.R = rp + m
	rgb.G = gp + m
	rgb.B = bp + m
	return rgb
}

// sRGB transfer function breakpoints.
const (
	srgbEOTFKnee = 0.04045
	srgbOETFKnee = 0.0031308
	labKnee      = 0.008856
	labFInvKnee  = 0.206897 // cube root of labKnee region boundary
)

// srgbToLinear converts an sRGB component to linear light.
func srgbToLinear(s float32) float32 {
	if s <= srgbEOTFKnee {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// linearToSRGB converts a linear component back to sRGB.
func linearToSRGB(l float32) float32 {
	if l <= srgbOETFKnee {
		return 12.92 * l
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

func labF(t float32) float32 {
	if t > labKnee {
		return float32(math.Cbrt(float64(t)))
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(t float32) float32 {
	if t > labFInvKnee {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

func rgbToLAB(rgb ColorF) ColorF {
	r := srgbToLinear(rgb.R)
	g := srgbToLinear(rgb.G)
	b := srgbToLinear(rgb.B)

	// Linear sRGB to CIE XYZ
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	// Normalize by the D65 white point
	x /= 0.95047
	y /= 1.00000
	z /= 1.08883

	fx := labF(x)
	fy := labF(y)
	fz := labF(z)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)

	return ColorF{
		R: l / 100,
		G: (a + 128) / 256,
		B: (bb + 128) / 256,
		A: rgb.A,
	}
}

func labToRGB(lab ColorF) ColorF {
	l := lab.R * 100
	a := lab.G*256 - 128
	bb := lab.B*256 - 128

	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - bb/200

	x := labFInv(fx) * 0.95047
	y := labFInv(fy) * 1.00000
	z := labFInv(fz) * 1.08883

	// CIE XYZ to linear sRGB
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return ColorF{
		R: clampF(linearToSRGB(r)),
		G: clampF(linearToSRGB(g)),
		B: clampF(linearToSRGB(b)),
		A: lab.A,
	}
}
