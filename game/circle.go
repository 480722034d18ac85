package game

// ReferenceCircle is the fixed guide strokes are traced over and scored
// against. It changes only when the canvas is (re)configured.
type ReferenceCircle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// FitReference centers the guide in a logical square of the given size.
func FitReference(size float64) ReferenceCircle {
	return ReferenceCircle{
		Center: Point{X: size / 2, Y: size / 2},
		Radius: size * RadiusFraction,
	}
}
