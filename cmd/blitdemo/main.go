// Command blitdemo renders a sampler of the blit drawing primitives to
// a PNG file.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/platform"
	"github.com/gogfx/blit/raster"
	"github.com/gogfx/blit/surface"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
		scalar = flag.Bool("scalar", false, "force the scalar fill kernel")
	)
	flag.Parse()

	opts, err := blit.LoadOptions(blit.OptionsPath())
	if err != nil {
		log.Printf("options: %v", err)
	}
	if *scalar {
		opts.ForceScalar = true
	}
	surface.ApplyOptions(opts)
	caps := platform.Detect()
	log.Printf("platform %s, kernel %s", caps.Platform, surface.ActiveKernel())

	s, err := surface.New(*width, *height)
	if err != nil {
		log.Fatalf("create surface: %v", err)
	}

	drawBackground(s, *width, *height)
	drawShapes(s)
	drawLines(s, *width)
	drawLabels(s)

	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)", *output, *width, *height)
}

func drawBackground(s *surface.Surface, w, h int) {
	// Vertical gradient, one span row at a time.
	for y := 0; y < h; y++ {
		t := float32(y) / float32(h)
		c := blit.ColorF{R: 0.1 + t*0.4, G: 0.2 + t*0.3, B: 0.4 + t*0.2, A: 1}
		s.FillSpan(0, w-1, y, c.Color())
	}
}

func drawShapes(s *surface.Surface) {
	// Three overlapping translucent circles, composited by hand.
	circles := []struct {
		x, y int
		c    blit.Color
	}{
		{150, 150, blit.Color{R: 255, G: 80, B: 80, A: 200}},
		{200, 150, blit.Color{R: 80, G: 255, B: 80, A: 200}},
		{175, 200, blit.Color{R: 80, G: 80, B: 255, A: 200}},
	}
	for _, ci := range circles {
		blendCircle(s, ci.x, ci.y, 60, ci.c)
	}

	_ = raster.RectFilled(s, blit.Rect{X: 350, Y: 100, W: 120, H: 80}, blit.RGB(255, 204, 0))
	_ = raster.RectOutline(s, blit.Rect{X: 346, Y: 96, W: 128, H: 88}, blit.RGB(255, 255, 255))

	_ = raster.Ellipse(s, 600, 150, 90, 45, blit.RGB(255, 255, 255))
	_ = raster.EllipseFilled(s, 600, 150, 70, 30, blit.Color{R: 255, G: 128, B: 0, A: 255})

	star := starPoints(150, 420, 80, 32)
	_ = raster.PolygonFilled(s, star, raster.FillNonZero, blit.RGB(240, 220, 60))
	_ = raster.Polygon(s, star, blit.RGB(40, 30, 0))
}

// blendCircle composites a translucent disc using the alpha blender,
// pixel by pixel.
func blendCircle(s *surface.Surface, cx, cy, r int, c blit.Color) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y > r*r {
				continue
			}
			dst := s.PixelAt(cx+x, cy+y)
			s.SetPixel(cx+x, cy+y, blit.AlphaBlend(c, dst))
		}
	}
}

func drawLines(s *surface.Surface, w int) {
	// A fan of anti-aliased lines next to their aliased twins.
	for i := 0; i <= 8; i++ {
		angle := float64(i) / 8 * math.Pi / 2
		dx := int(120 * math.Cos(angle))
		dy := int(120 * math.Sin(angle))
		_ = raster.Line(s, 380, 440, 380+dx, 440-dy, blit.RGB(200, 200, 200))
		_ = raster.LineAA(s, 560, 440, 560+dx, 440-dy, blit.RGB(255, 255, 255))
	}
	_ = raster.LineThick(s, 40, 560, w-40, 560, 5, blit.RGB(90, 200, 255))
	_ = raster.Arc(s, 480, 440, 140, math.Pi, 3*math.Pi/2, blit.RGB(255, 90, 90))
}

func drawLabels(s *surface.Surface) {
	white := blit.RGB(255, 255, 255)
	_ = raster.Text(s, 40, 40, "blit raster sampler", white)
	_ = raster.Text(s, 350, 220, "rect", white)
	_ = raster.Text(s, 580, 220, "ellipse", white)
	_ = raster.Text(s, 120, 530, "non-zero star", white)
}

// starPoints builds a five-pointed star, which self-intersects and so
// fills differently under the two fill rules.
func starPoints(cx, cy, r, inner int) []blit.Point {
	pts := make([]blit.Point, 0, 10)
	for i := 0; i < 10; i++ {
		rad := r
		if i%2 == 1 {
			rad = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, blit.Point{
			X: cx + int(float64(rad)*math.Cos(a)),
			Y: cy + int(float64(rad)*math.Sin(a)),
		})
	}
	return pts
}
