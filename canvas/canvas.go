package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"circletrace/game"
)

var (
	background = color.RGBA{R: 0x11, G: 0x13, B: 0x18, A: 0xff}
	guideInk   = color.RGBA{R: 0x3a, G: 0x40, B: 0x4d, A: 0xff}
	traceInk   = color.RGBA{R: 0x5e, G: 0xd0, B: 0x9e, A: 0xff}
)

// Canvas is a software raster mirroring one session's drawing surface. It
// implements game.Renderer. A nil *Canvas is a valid surface: every drawing
// call degrades to a silent no-op, matching the unavailable-context behavior
// of the client side.
type Canvas struct {
	size  float64
	guide game.ReferenceCircle
	img   *image.RGBA
}

// New allocates a square surface and paints the guide circle. Logical and
// pixel coordinates coincide at 1:1; clients with other densities normalize
// before their samples reach the server.
func New(size int) *Canvas {
	c := &Canvas{
		size:  float64(size),
		guide: game.FitReference(float64(size)),
		img:   image.NewRGBA(image.Rect(0, 0, size, size)),
	}
	c.Clear()
	return c
}

func (c *Canvas) Guide() game.ReferenceCircle {
	if c == nil {
		return game.ReferenceCircle{}
	}
	return c.guide
}

// Clear repaints the background and the guide circle, dropping any trace.
func (c *Canvas) Clear() {
	if c == nil || c.img == nil {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	c.Circle(c.guide, guideInk)
}

// Begin starts a fresh trace at the down point.
func (c *Canvas) Begin(p game.Point) {
	if c == nil || c.img == nil {
		return
	}
	c.Clear()
	c.set(int(math.Round(p.X)), int(math.Round(p.Y)), traceInk)
}

// Segment draws the line between two consecutive samples.
func (c *Canvas) Segment(from, to game.Point) {
	c.Line(from, to, traceInk)
}

// Line plots the segment between two logical points. Out-of-bounds portions
// are clipped pixel by pixel.
func (c *Canvas) Line(from, to game.Point, ink color.RGBA) {
	if c == nil || c.img == nil {
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(to.X-from.X), math.Abs(to.Y-from.Y))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := from.X + (to.X-from.X)*t
		y := from.Y + (to.Y-from.Y)*t
		c.set(int(math.Round(x)), int(math.Round(y)), ink)
	}
}

// Circle plots the outline of the given circle.
func (c *Canvas) Circle(ref game.ReferenceCircle, ink color.RGBA) {
	if c == nil || c.img == nil || ref.Radius <= 0 {
		return
	}
	// One step per outline pixel keeps the ring gap-free.
	steps := int(math.Ceil(2 * math.Pi * ref.Radius))
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := ref.Center.X + ref.Radius*math.Cos(theta)
		y := ref.Center.Y + ref.Radius*math.Sin(theta)
		c.set(int(math.Round(x)), int(math.Round(y)), ink)
	}
}

// EncodePNG returns the current raster as a PNG image.
func (c *Canvas) EncodePNG() ([]byte, error) {
	if c == nil || c.img == nil {
		return nil, fmt.Errorf("canvas: no surface")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("canvas: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) set(x, y int, ink color.RGBA) {
	if x < 0 || y < 0 || x >= c.img.Rect.Dx() || y >= c.img.Rect.Dy() {
		return
	}
	c.img.SetRGBA(x, y, ink)
}

// At reports the color under a logical point, for tests and debugging.
func (c *Canvas) At(x, y int) color.RGBA {
	if c == nil || c.img == nil {
		return color.RGBA{}
	}
	if x < 0 || y < 0 || x >= c.img.Rect.Dx() || y >= c.img.Rect.Dy() {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}
