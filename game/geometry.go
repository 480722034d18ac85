package game

import "math"

// Point is a position in canvas logical-pixel space. X grows right, Y grows
// down, matching the browser coordinate system the client reports in.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Stroke is the ordered sample sequence of one continuous pointer gesture.
type Stroke []Point

// PathLength sums the consecutive-sample segment lengths. The first sample
// contributes nothing; a stationary stroke has length 0.
func (s Stroke) PathLength() float64 {
	total := 0.0
	for i := 1; i < len(s); i++ {
		total += s[i-1].DistanceTo(s[i])
	}
	return total
}

// Viewport is the client-space rectangle the canvas element occupies on the
// player's screen. Clients report it with every pointer event so the server
// can normalize raw client coordinates.
type Viewport struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Logical maps a client-space pointer position into the logical square of the
// given size. Only the element rectangle enters the mapping; device pixel
// ratio cancels out, so the same physical gesture yields the same logical
// samples on any display.
func (v Viewport) Logical(clientX, clientY, size float64) Point {
	if v.Width <= 0 || v.Height <= 0 {
		return Point{X: clientX, Y: clientY}
	}
	return Point{
		X: (clientX - v.Left) / v.Width * size,
		Y: (clientY - v.Top) / v.Height * size,
	}
}
