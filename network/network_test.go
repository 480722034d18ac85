package network

import (
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"circletrace/game"
	"circletrace/protocol"
	"circletrace/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("ENV", "test")
	ts := httptest.NewServer(NewServer(session.NewManager(320)).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendMsg(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", msgType, err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

func awaitMsg[T any](t *testing.T, conn *websocket.Conn, wantType string) T {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read while waiting for %q: %v", wantType, err)
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if env.T != wantType {
			continue
		}
		out, err := protocol.DecodePayload[T](env)
		if err != nil {
			t.Fatalf("decode %s payload: %v", wantType, err)
		}
		return out
	}
}

func sendGuideGesture(t *testing.T, conn *websocket.Conn, n int) {
	t.Helper()
	ref := game.FitReference(320)
	vp := game.Viewport{Width: 320, Height: 320}

	point := func(i int) (float64, float64) {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		return ref.Center.X + ref.Radius*math.Cos(theta), ref.Center.Y + ref.Radius*math.Sin(theta)
	}

	x, y := point(0)
	sendMsg(t, conn, protocol.MsgPointer, protocol.Pointer{Phase: protocol.PhaseDown, X: x, Y: y, Viewport: vp})
	for i := 1; i < n; i++ {
		x, y = point(i)
		sendMsg(t, conn, protocol.MsgPointer, protocol.Pointer{Phase: protocol.PhaseMove, X: x, Y: y, Viewport: vp})
	}
	sendMsg(t, conn, protocol.MsgPointer, protocol.Pointer{Phase: protocol.PhaseUp, Viewport: vp})
}

func TestWebsocketGameFlow(t *testing.T) {
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendMsg(t, conn, protocol.MsgHello, protocol.Hello{V: 1, Name: "tester"})

	welcome := awaitMsg[protocol.Welcome](t, conn, protocol.MsgWelcome)
	if welcome.SessionID == "" {
		t.Fatalf("welcome without session id")
	}
	if welcome.Size != 320 {
		t.Fatalf("welcome size = %f, want 320", welcome.Size)
	}

	initial := awaitMsg[protocol.ScoreSnapshot](t, conn, protocol.MsgScore)
	if initial.HasAttempt || initial.LastScore != nil {
		t.Fatalf("initial snapshot = %+v, want no attempt", initial)
	}

	sendGuideGesture(t, conn, 40)

	snap := awaitMsg[protocol.ScoreSnapshot](t, conn, protocol.MsgScore)
	if snap.LastScore == nil || *snap.LastScore != 100 {
		t.Fatalf("snapshot after full trace = %+v, want lastScore 100", snap)
	}
	if snap.BestScore != 100 {
		t.Fatalf("best = %d, want 100", snap.BestScore)
	}
}

func TestWebsocketRequiresHelloFirst(t *testing.T) {
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendMsg(t, conn, protocol.MsgPointer, protocol.Pointer{Phase: protocol.PhaseDown})

	// Server drops the connection on a handshake violation.
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestHealthRoutes(t *testing.T) {
	ts := newTestServer(t)
	for path, want := range map[string]string{
		"/health/live":  "alive",
		"/health/ready": "ready",
	} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), want) {
			t.Fatalf("%s -> %d %q, want 200 with %q", path, resp.StatusCode, body, want)
		}
	}
}

func TestCanvasPNGRoute(t *testing.T) {
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	sendMsg(t, conn, protocol.MsgHello, protocol.Hello{V: 1})
	welcome := awaitMsg[protocol.Welcome](t, conn, protocol.MsgWelcome)

	resp, err := http.Get(ts.URL + "/sessions/" + welcome.SessionID + "/canvas.png")
	if err != nil {
		t.Fatalf("get canvas: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("canvas status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q, want image/png", ct)
	}

	missing, err := http.Get(ts.URL + "/sessions/nope/canvas.png")
	if err != nil {
		t.Fatalf("get missing canvas: %v", err)
	}
	_ = missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("missing canvas status = %d, want 404", missing.StatusCode)
	}
}
