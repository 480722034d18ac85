package protocol

import "circletrace/game"

// Welcome acknowledges the hello handshake; receiving it is the client's
// signal that the session is ready to display.
type Welcome struct {
	SessionID string               `json:"sessionId"`
	Size      float64              `json:"size"`
	Circle    game.ReferenceCircle `json:"circle"`
}

// ScoreSnapshot is pushed after every completed gesture. LastScore is null
// until the first attempt lands.
type ScoreSnapshot struct {
	LastScore  *int `json:"lastScore"`
	BestScore  int  `json:"bestScore"`
	HasAttempt bool `json:"hasAttempt"`
}
