package session

import (
	"circletrace/canvas"
	"circletrace/game"
	"circletrace/logger"
	"circletrace/protocol"
)

// Session owns one player's capture machine, score state and drawing surface.
// All commands are drained by a single goroutine, so gesture events are
// handled strictly in delivery order and no locking is needed around the
// stroke buffer or the surface.
type Session struct {
	Inbox chan any

	ID   string
	Name string

	size    float64
	surface *canvas.Canvas
	capture *game.Capture
	scores  game.ScoreState
	conn    Conn
	quit    chan struct{}

	OnClose func(id string) // called after detach
}

func New(id, name string, conn Conn, size int) *Session {
	surface := canvas.New(size)
	return &Session{
		Inbox:   make(chan any, 256),
		ID:      id,
		Name:    name,
		size:    float64(size),
		surface: surface,
		capture: game.NewCapture(surface),
		conn:    conn,
		quit:    make(chan struct{}),
	}
}

func (s *Session) Stop() {
	close(s.quit)
}

func (s *Session) Run() {
	// Welcome doubles as the ready signal; the first score snapshot carries
	// the null last-score state.
	s.sendWelcome()
	s.sendScore()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			if s.handleCommand(cmd) {
				return
			}
		}
	}
}

func (s *Session) handleCommand(cmd any) (done bool) {
	switch c := cmd.(type) {
	case PointerEvent:
		s.handlePointer(c.Pointer)
	case SnapshotPNG:
		b, err := s.surface.EncodePNG()
		if err != nil {
			b = nil
		}
		c.Reply <- b
	case Detach:
		// Disconnect mid-gesture counts as a cancel: the attempt still scores.
		s.finishGesture()
		if s.conn != nil {
			_ = s.conn.Close()
		}
		if s.OnClose != nil {
			s.OnClose(s.ID)
		}
		return true
	}
	return false
}

func (s *Session) handlePointer(p protocol.Pointer) {
	pt := p.Viewport.Logical(p.X, p.Y, s.size)

	switch p.Phase {
	case protocol.PhaseDown:
		s.capture.Down(pt)
	case protocol.PhaseMove:
		s.capture.Move(pt)
	case protocol.PhaseUp, protocol.PhaseCancel, protocol.PhaseLeave:
		s.finishGesture()
	default:
		logger.Debug(logger.Fields{"session": s.ID, "phase": p.Phase}, "dropping unknown pointer phase")
	}
}

// finishGesture scores whatever was captured. With zero samples nothing is
// recorded and the previous snapshot stands.
func (s *Session) finishGesture() {
	stroke, ok := s.capture.End()
	if !ok {
		return
	}
	s.scores.Record(game.Score(stroke, s.surface.Guide()))
	s.sendScore()
}

func (s *Session) sendWelcome() {
	s.send(protocol.MsgWelcome, protocol.Welcome{
		SessionID: s.ID,
		Size:      s.size,
		Circle:    s.surface.Guide(),
	})
}

func (s *Session) sendScore() {
	snap := protocol.ScoreSnapshot{
		BestScore:  s.scores.BestScore,
		HasAttempt: s.scores.HasAttempt,
	}
	if s.scores.HasAttempt {
		last := s.scores.LastScore
		snap.LastScore = &last
	}
	s.send(protocol.MsgScore, snap)
}

func (s *Session) send(t string, payload any) {
	if s.conn == nil {
		return
	}
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return
	}
	// A failed send is left to the transport's read loop, which detaches.
	_ = s.conn.Send(b)
}
