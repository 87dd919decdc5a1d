// Package watch turns a long-polling chunked response into a lazy sequence
// of typed events. Every newline-terminated chunk is one JSON document of
// shape {"type": ..., "object": ...}; undecodable chunks become events with
// an empty name and a nil object instead of terminating the stream, so
// callers can log and keep watching.
package watch

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/schema"
)

// Event names delivered by the server.
const (
	Added    = "ADDED"
	Modified = "MODIFIED"
	Deleted  = "DELETED"
	Bookmark = "BOOKMARK"
	Error    = "ERROR"
)

// Event is one record from the watch stream. Name is empty when the record
// could not be decoded at all; Obj is nil when the payload could not be
// deserialized, the event is an error, or no target type was resolvable.
type Event struct {
	Name string
	Raw  []byte
	Obj  any
}

// Stream is a pull-based iterator over watch events. The underlying request
// is only issued on the first Next call.
type Stream struct {
	do       func(ctx context.Context) (*http.Response, error)
	typeHint string

	resp    *http.Response
	reader  *bufio.Reader
	stopped atomic.Bool
	done    bool
}

// New builds a Stream over a deferred request. typeHint, when non-empty,
// names the registered type every event object decodes into; otherwise the
// type is resolved per event from the embedded apiVersion/kind.
func New(do func(ctx context.Context) (*http.Response, error), typeHint string) *Stream {
	return &Stream{do: do, typeHint: typeHint}
}

// Stop requests cooperative termination: the next Next call ends the stream
// without reading further. Safe to call from any goroutine.
func (s *Stream) Stop() {
	s.stopped.Store(true)
}

// Next returns the next event. It returns io.EOF when the stream ended
// cleanly: server closed the connection (e.g. timeoutSeconds expired), an
// empty frame arrived, or Stop was called.
func (s *Stream) Next(ctx context.Context) (*Event, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.resp == nil {
		resp, err := s.do(ctx)
		if err != nil {
			s.done = true
			return nil, err
		}
		s.resp = resp
		s.reader = bufio.NewReader(resp.Body)
	}

	if s.stopped.Load() {
		return nil, s.finish()
	}

	line, err := s.reader.ReadBytes('\n')
	if len(line) == 0 {
		if err != nil && err != io.EOF {
			s.done = true
			s.resp.Body.Close()
			return nil, &apierr.TransportError{Msg: "watch read failed", Err: err}
		}
		return nil, s.finish()
	}

	return decodeEvent(line, s.typeHint), nil
}

// Chan drives the stream from a goroutine and delivers events on a channel,
// for callers who prefer select loops over explicit pulls. The channel is
// closed when the stream terminates for any reason.
func (s *Stream) Chan(ctx context.Context) <-chan Event {
	ch := make(chan Event, 64)
	go func() {
		defer close(ch)
		for {
			ev, err := s.Next(ctx)
			if err != nil {
				if err != io.EOF {
					slog.Warn("watch stream ended", "error", err)
				}
				return
			}
			select {
			case ch <- *ev:
			case <-ctx.Done():
				s.Stop()
				return
			}
		}
	}()
	return ch
}

// Close releases the underlying response without waiting for the next
// demand.
func (s *Stream) Close() error {
	s.Stop()
	if s.resp != nil && !s.done {
		s.done = true
		return s.resp.Body.Close()
	}
	s.done = true
	return nil
}

func (s *Stream) finish() error {
	s.done = true
	s.resp.Body.Close()
	return io.EOF
}

// decodeEvent unmarshals one raw line into an Event. It never fails: every
// malformed input degrades to an Event carrying just the raw bytes.
func decodeEvent(raw []byte, typeHint string) *Event {
	if !utf8.Valid(raw) {
		return &Event{Raw: raw}
	}

	var frame struct {
		Type   *string        `json:"type"`
		Object map[string]any `json:"object"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil || frame.Type == nil || frame.Object == nil {
		return &Event{Raw: raw}
	}

	name := *frame.Type
	if strings.EqualFold(name, "error") {
		// Typically the supplied resourceVersion was too old; the payload is
		// a Status, not the watched resource.
		return &Event{Name: name, Raw: raw}
	}

	target := typeHint
	if target == "" {
		apiVersion, _ := frame.Object["apiVersion"].(string)
		kind, _ := frame.Object["kind"].(string)
		if apiVersion == "" || kind == "" {
			return &Event{Name: name, Raw: raw}
		}
		target = schema.ResolveKind(apiVersion, kind)
	}
	if schema.Lookup(target) == nil {
		return &Event{Name: name, Raw: raw}
	}

	obj, err := schema.FromWire(frame.Object, target)
	if err != nil {
		slog.Debug("watch event decode failed", "type", name, "target", target, "error", err)
		return &Event{Name: name, Raw: raw}
	}

	return &Event{Name: name, Raw: raw, Obj: obj}
}
