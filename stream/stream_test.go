package stream

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rakunlabs/kuba/apierr"
)

func TestGetWebsocketURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost/api", "ws://localhost/api"},
		{"https://localhost/api", "wss://localhost/api"},
		{"HtTps://domain.com/api", "wss://domain.com/api"},
		{"HTTP://domain.com/api?watch=true", "ws://domain.com/api?watch=true"},
	}

	for _, tt := range tests {
		got, err := GetWebsocketURL(tt.in)
		if err != nil {
			t.Errorf("GetWebsocketURL(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("GetWebsocketURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetWebsocketURLUnknownScheme(t *testing.T) {
	_, err := GetWebsocketURL("foo://bar.com")

	var perr *apierr.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

// wsServer runs an httptest server that upgrades and hands the connection to
// serve.
func wsServer(t *testing.T, serve func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{
		Subprotocols: []string{Protocol},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		serve(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialSession(t *testing.T, srv *httptest.Server) *Session {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	dialer := websocket.Dialer{Subprotocols: []string{Protocol}}
	conn, resp, err := dialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	return &Session{conn: conn}
}

func closeNormally(conn *websocket.Conn) {
	conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)
}

func TestCollectGathersStdoutAndStderr(t *testing.T) {
	srv := wsServer(t, func(conn *websocket.Conn) {
		frames := [][]byte{
			[]byte("\x01message1 "),
			[]byte("\x00from stdin channel"), // never collected
			[]byte("\x01message2 "),
			[]byte("\x03an error payload"), // never collected
			[]byte("\x04resize payload"),   // never collected
			{},                             // zero payload, skipped
			[]byte("\x02from stderr "),
		}
		for _, f := range frames {
			if err := conn.WriteMessage(websocket.BinaryMessage, f); err != nil {
				return
			}
		}
		closeNormally(conn)
	})

	session := dialSession(t, srv)
	defer session.Close()

	out, err := Collect(session)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if got := string(out); got != "message1 message2 from stderr " {
		t.Fatalf("collected = %q", got)
	}
}

func TestCollectFanOutQueue(t *testing.T) {
	srv := wsServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.BinaryMessage, []byte("\x01out"))
		conn.WriteMessage(websocket.BinaryMessage, []byte("\x03err-channel"))
		closeNormally(conn)
	})

	session := dialSession(t, srv)
	defer session.Close()

	queue := make(chan Frame, 8)
	out, err := Collect(session, WithQueue(queue))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	close(queue)

	if string(out) != "out" {
		t.Fatalf("collected = %q", out)
	}

	// Every frame is mirrored into the queue, whatever its channel.
	var frames []Frame
	for f := range queue {
		frames = append(frames, f)
	}
	if len(frames) != 2 {
		t.Fatalf("queue got %d frames, want 2", len(frames))
	}
	if frames[0].Channel != StdoutChannel || string(frames[0].Payload) != "out" {
		t.Errorf("frame 0 = %d %q", frames[0].Channel, frames[0].Payload)
	}
	if frames[1].Channel != ErrorChannel || string(frames[1].Payload) != "err-channel" {
		t.Errorf("frame 1 = %d %q", frames[1].Channel, frames[1].Payload)
	}
}

func TestReadRejectsTextFrames(t *testing.T) {
	srv := wsServer(t, func(conn *websocket.Conn) {
		conn.WriteMessage(websocket.TextMessage, []byte("not binary"))
		closeNormally(conn)
	})

	session := dialSession(t, srv)
	defer session.Close()

	_, err := session.Read()

	var perr *apierr.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestWritePrefixesChannelByte(t *testing.T) {
	received := make(chan []byte, 1)
	srv := wsServer(t, func(conn *websocket.Conn) {
		_, data, err := conn.ReadMessage()
		if err == nil {
			received <- data
		}
		closeNormally(conn)
	})

	session := dialSession(t, srv)
	defer session.Close()

	if err := session.WriteStdin([]byte("ls\n")); err != nil {
		t.Fatalf("WriteStdin: %v", err)
	}

	select {
	case data := <-received:
		if data[0] != StdinChannel {
			t.Errorf("channel byte = %d, want %d", data[0], StdinChannel)
		}
		if string(data[1:]) != "ls\n" {
			t.Errorf("payload = %q", data[1:])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not receive the frame")
	}
}

func TestReadEOFOnPeerClose(t *testing.T) {
	srv := wsServer(t, func(conn *websocket.Conn) {
		closeNormally(conn)
	})

	session := dialSession(t, srv)
	defer session.Close()

	if _, err := session.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}
