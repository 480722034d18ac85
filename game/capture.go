package game

// Phase is the capture state machine's current state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDrawing
)

// Renderer receives drawing side effects as samples arrive. A nil Renderer is
// allowed; capture then records samples without drawing anything.
type Renderer interface {
	// Begin is called with the first sample of a new gesture.
	Begin(p Point)
	// Segment is called once per appended sample with the previous sample.
	Segment(from, to Point)
}

// Capture accumulates exactly one gesture at a time. It owns the stroke
// buffer; ownership transfers to the caller on End. All methods must be
// called from a single goroutine.
type Capture struct {
	phase    Phase
	stroke   Stroke
	renderer Renderer
}

func NewCapture(r Renderer) *Capture {
	return &Capture{renderer: r}
}

func (c *Capture) Phase() Phase { return c.phase }

// Down starts a new gesture. Any prior stroke is discarded and the down
// position becomes the first sample.
func (c *Capture) Down(p Point) {
	c.stroke = Stroke{p}
	c.phase = PhaseDrawing
	if c.renderer != nil {
		c.renderer.Begin(p)
	}
}

// Move appends one sample per delivered event; no coalescing. Ignored while
// idle.
func (c *Capture) Move(p Point) {
	if c.phase != PhaseDrawing {
		return
	}
	prev := c.stroke[len(c.stroke)-1]
	c.stroke = append(c.stroke, p)
	if c.renderer != nil {
		c.renderer.Segment(prev, p)
	}
}

// End finalizes the gesture. Up, cancel and leave all land here, so an
// in-progress attempt is never lost. ok is false when no samples were
// recorded; the returned stroke is owned by the caller.
func (c *Capture) End() (stroke Stroke, ok bool) {
	stroke = c.stroke
	c.stroke = nil
	c.phase = PhaseIdle
	return stroke, len(stroke) > 0
}
