package session

import "circletrace/protocol"

// Conn is the outbound half of a client connection.
type Conn interface {
	Send([]byte) error
	Close() error
}

// PointerEvent: one raw pointer event forwarded by the transport, in
// delivery order.
type PointerEvent struct {
	Pointer protocol.Pointer
}

// SnapshotPNG: request the current canvas raster.
type SnapshotPNG struct {
	Reply chan<- []byte
}

// Detach: issued on disconnect.
type Detach struct{}
