package protocol

import "circletrace/game"

// Messages coming in from the browser client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional name
}

// Pointer carries one raw pointer event. Coordinates are client-space; the
// viewport lets the server map them into canvas logical space.
type Pointer struct {
	Phase    string        `json:"phase"`
	X        float64       `json:"x"`
	Y        float64       `json:"y"`
	Viewport game.Viewport `json:"viewport"`
}
