// Package stream implements the channel-framed pod-exec protocol over
// WebSocket. Every binary frame starts with one channel byte selecting a
// stdio stream; the rest of the frame is payload.
package stream

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/rest"
	"github.com/rakunlabs/kuba/transport"
)

// Channel indices of the v4 exec subprotocol.
const (
	StdinChannel  byte = 0
	StdoutChannel byte = 1
	StderrChannel byte = 2
	ErrorChannel  byte = 3
	ResizeChannel byte = 4
)

// Protocol is the exec subprotocol offered during the upgrade handshake.
const Protocol = "v4.channel.k8s.io"

// GetWebsocketURL rewrites an http(s) URL for the upgrade: http becomes ws
// and https becomes wss. The input scheme is matched case-insensitively, the
// output scheme is strictly lowercase, and everything after the scheme is
// preserved. Any other scheme fails fast.
func GetWebsocketURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", apierr.Protocol("cannot parse url %q", raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", apierr.Protocol("unknown scheme <%s>", u.Scheme)
	}
	return u.String(), nil
}

// Frame is one inbound channel-framed message.
type Frame struct {
	Channel byte
	Payload []byte
}

// Session is an open exec connection. Reads and writes are framed with the
// channel-prefix convention; the session adds no other framing.
type Session struct {
	conn *websocket.Conn
}

// Connect upgrades spec into a WebSocket session: the URL scheme is
// rewritten, the exec subprotocol is offered unless the spec already names
// one, and the connection is dialed through t. The spec's query parameters
// (including repeated command values) are already flattened into the URL by
// the request builder.
func Connect(ctx context.Context, t transport.Adapter, spec *rest.Spec) (*Session, error) {
	wsURL, err := GetWebsocketURL(spec.URL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if spec.Header != nil {
		header = spec.Header.Clone()
	}
	if header.Get("Sec-Websocket-Protocol") == "" {
		header.Set("Sec-Websocket-Protocol", Protocol)
	}
	// An upgrade has no JSON body; the builder's default content type only
	// confuses intermediaries.
	header.Del("Content-Type")

	conn, err := t.OpenWebsocket(transport.WithoutRetry(ctx), wsURL, header)
	if err != nil {
		return nil, err
	}
	return &Session{conn: conn}, nil
}

// Read returns the next channel frame. Zero-length messages are skipped.
// It returns io.EOF on a clean peer close and *apierr.ProtocolError when the
// peer sends a non-binary frame.
func (s *Session) Read() (*Frame, error) {
	for {
		mt, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return nil, io.EOF
			}
			return nil, &apierr.TransportError{Msg: "websocket read failed", Err: err}
		}
		if mt != websocket.BinaryMessage {
			return nil, apierr.Protocol("unexpected websocket frame type %d", mt)
		}
		if len(data) == 0 {
			continue
		}
		return &Frame{Channel: data[0], Payload: data[1:]}, nil
	}
}

// Write sends payload on the given channel.
func (s *Session) Write(channel byte, payload []byte) error {
	frame := make([]byte, 0, len(payload)+1)
	frame = append(frame, channel)
	frame = append(frame, payload...)
	if err := s.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return &apierr.TransportError{Msg: "websocket write failed", Err: err}
	}
	return nil
}

// WriteStdin sends payload to the remote process's stdin.
func (s *Session) WriteStdin(payload []byte) error {
	return s.Write(StdinChannel, payload)
}

// Resize asks the remote terminal to resize to the given dimensions.
func (s *Session) Resize(width, height uint16) error {
	msg, err := json.Marshal(map[string]uint16{"Width": width, "Height": height})
	if err != nil {
		return &apierr.SerializationError{Msg: "cannot encode resize message", Err: err}
	}
	return s.Write(ResizeChannel, msg)
}

// Close closes the session. Closing is also how a caller aborts a running
// Collect; the output gathered so far is returned there.
func (s *Session) Close() error {
	return s.conn.Close()
}

// CollectOption tunes Collect.
type CollectOption func(*collectOptions)

type collectOptions struct {
	queue chan<- Frame
}

// WithQueue mirrors every inbound frame into q for concurrent consumption.
// The queue is caller-sized; a frame that does not fit is dropped with a
// warning so the collector never stalls on a slow consumer.
func WithQueue(q chan<- Frame) CollectOption {
	return func(o *collectOptions) { o.queue = q }
}

// Collect consumes the session until the peer closes and returns the
// concatenated stdout and stderr payloads. Frames from other channels are
// not part of the collected output. On error the output gathered so far is
// returned alongside it.
func Collect(s *Session, opts ...CollectOption) ([]byte, error) {
	var o collectOptions
	for _, opt := range opts {
		opt(&o)
	}

	var out []byte
	for {
		frame, err := s.Read()
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}

		if o.queue != nil {
			select {
			case o.queue <- *frame:
			default:
				slog.Warn("exec frame queue full, dropping frame", "channel", frame.Channel, "size", len(frame.Payload))
			}
		}

		if frame.Channel == StdoutChannel || frame.Channel == StderrChannel {
			out = append(out, frame.Payload...)
		}
	}
}
