package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgPointer = "pointer"
	MsgWelcome = "welcome"
	MsgScore   = "score"
)

// Pointer phases, mirroring the browser pointer event names. Cancel and leave
// terminate a gesture exactly like up.
const (
	PhaseDown   = "down"
	PhaseMove   = "move"
	PhaseUp     = "up"
	PhaseCancel = "cancel"
	PhaseLeave  = "leave"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
