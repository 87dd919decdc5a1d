// Package kuba is an asynchronous Kubernetes API client. A Client turns the
// typed operations under apis/ into wire requests, dispatches them over the
// configured transport, and materializes responses back into typed objects.
//
//	cfg, err := config.LoadKubeconfig("", "")
//	cli, err := kuba.New(cfg)
//	defer cli.Close()
//
//	resp, err := cli.Invoke(ctx, corev1.ListNamespacedPod("default", apis.Options{}))
//	pods := resp.Parsed.(*models.V1PodList)
package kuba

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/rest"
	"github.com/rakunlabs/kuba/schema"
	"github.com/rakunlabs/kuba/stream"
	"github.com/rakunlabs/kuba/transport"
	"github.com/rakunlabs/kuba/watch"
)

// Response pairs the raw transport response with the optionally deserialized
// typed object. Parsed is nil unless the request asked for one-shot
// deserialization; when it is nil the caller owns closing Raw.Body.
type Response struct {
	Raw    *http.Response
	Parsed any
}

// Client ties a Configuration to a transport.
type Client struct {
	Config    *config.Configuration
	Transport transport.Adapter
}

// New builds a Client with the stock klient-backed transport.
func New(cfg *config.Configuration) (*Client, error) {
	t, err := transport.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{Config: cfg, Transport: t}, nil
}

// NewWithTransport builds a Client around a caller-supplied transport,
// typically a test double.
func NewWithTransport(cfg *config.Configuration, t transport.Adapter) *Client {
	return &Client{Config: cfg, Transport: t}
}

// Close releases the transport. Safe to defer right after New.
func (c *Client) Close() error {
	return c.Transport.Close()
}

// Invoke executes one typed operation. With Preload set on the request the
// body is read, deserialized into the operation's response type and returned
// in Response.Parsed; otherwise the streamable response is handed back
// untouched.
func (c *Client) Invoke(ctx context.Context, req *apis.Request) (*Response, error) {
	spec, err := rest.Build(c.Config, req.Input)
	if err != nil {
		return nil, err
	}

	resp, err := c.Transport.Do(ctx, spec)
	if err != nil {
		return nil, err
	}

	if !req.Preload || req.ResponseType == "" {
		return &Response{Raw: resp}, nil
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.TransportError{Msg: "cannot read response body", Err: err}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, &apierr.SerializationError{Msg: "response is not valid json", Err: err}
	}

	obj, err := schema.FromWire(tree, req.ResponseType)
	if err != nil {
		return nil, err
	}

	return &Response{Raw: resp, Parsed: obj}, nil
}

// Watch starts a watch for the given list operation and returns its event
// stream. The request is issued lazily on the stream's first demand; events
// decode into the operation's watch item type.
func (c *Client) Watch(ctx context.Context, req *apis.Request) (*watch.Stream, error) {
	req.Input.QueryParams = ensureWatchParam(req.Input.QueryParams)

	spec, err := rest.Build(c.Config, req.Input)
	if err != nil {
		return nil, err
	}

	do := func(ctx context.Context) (*http.Response, error) {
		return c.Transport.Do(transport.WithoutRetry(ctx), spec)
	}
	return watch.New(do, req.WatchItemType), nil
}

// Exec opens the channel-framed WebSocket session for an upgradeable
// operation such as pod exec.
func (c *Client) Exec(ctx context.Context, req *apis.Request) (*stream.Session, error) {
	spec, err := rest.Build(c.Config, req.Input)
	if err != nil {
		return nil, err
	}
	return stream.Connect(ctx, c.Transport, spec)
}

// ensureWatchParam appends watch=true when the options bag did not already.
func ensureWatchParam(q []rest.Pair) []rest.Pair {
	for _, p := range q {
		if p.Key == "watch" {
			return q
		}
	}
	return append(q, rest.Pair{Key: "watch", Value: "true"})
}
