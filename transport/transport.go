// Package transport executes finished request specs against the API server.
// It owns the pooled HTTP client, the TLS trust context built from the
// Configuration, and the WebSocket dialer used for upgraded connections.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"github.com/worldline-go/klient"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/rest"
)

// maxConns bounds concurrent connections per host, matching the connector
// limit of the upstream client.
const maxConns = 4

// Adapter is the capability the rest of the client depends on. The klient
// backed Client below is the stock implementation; tests substitute their
// own.
type Adapter interface {
	Do(ctx context.Context, spec *rest.Spec) (*http.Response, error)
	OpenWebsocket(ctx context.Context, url string, header http.Header) (*websocket.Conn, error)
	Close() error
}

// Client is the stock Adapter.
type Client struct {
	cfg    *config.Configuration
	client *klient.Client
	tls    *tls.Config
	log    *slog.Logger
}

var _ Adapter = (*Client)(nil)

// New builds a transport for cfg.
func New(cfg *config.Configuration) (*Client, error) {
	tlsCfg, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	kl, err := klient.New(
		klient.WithDisableBaseURLCheck(true),
		klient.WithDisableEnvValues(true),
		klient.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, &apierr.TransportError{Msg: "cannot build http client", Err: err}
	}

	// Swap the cluster trust material into the pooled transport. When klient
	// wrapped the transport with something opaque, fall back to a fresh one
	// so the TLS settings are guaranteed to apply.
	base, ok := kl.HTTP.Transport.(*http.Transport)
	if !ok {
		base = http.DefaultTransport.(*http.Transport)
	}
	pooled := base.Clone()
	pooled.TLSClientConfig = tlsCfg
	pooled.MaxConnsPerHost = maxConns
	kl.HTTP.Transport = pooled

	return &Client{
		cfg:    cfg,
		client: kl,
		tls:    tlsCfg,
		log:    slog.Default(),
	}, nil
}

// WithoutRetry marks ctx so the underlying client does not retry the request.
// Watch and exec connections are long-lived; replaying them after a partial
// read would deliver duplicate events.
func WithoutRetry(ctx context.Context) context.Context {
	return klient.CtxWithRetryPolicy(ctx, klient.OptionRetry.WithRetryDisable())
}

// Do executes spec and returns the streamable response. Responses with a
// non-2xx status are drained and surfaced as *apierr.APIError.
func (c *Client) Do(ctx context.Context, spec *rest.Spec) (*http.Response, error) {
	// The bearer token may have expired since the last request; the
	// configuration refreshes it through its installed provider.
	if err := c.cfg.RefreshToken(ctx); err != nil {
		return nil, err
	}

	var cancel context.CancelFunc = func() {}
	if spec.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, spec.Timeout)
	}

	var body io.Reader
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		cancel()
		return nil, &apierr.TransportError{Msg: "cannot build request", Err: err}
	}
	req.Header = spec.Header.Clone()

	id := ulid.Make().String()
	c.log.Debug("api request", "id", id, "method", spec.Method, "url", spec.URL)

	resp, err := c.client.HTTP.Do(req)
	if err != nil {
		cancel()
		return nil, &apierr.TransportError{Msg: spec.Method + " " + spec.URL + " failed", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		c.log.Debug("api error response", "id", id, "status", resp.StatusCode)
		return nil, apiError(resp.StatusCode, data)
	}

	c.log.Debug("api response", "id", id, "status", resp.StatusCode)

	// The request timeout covers the whole exchange including body reads, so
	// its cancel is released only when the caller closes the body.
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// OpenWebsocket dials url with the transport's TLS context. A
// Sec-Websocket-Protocol header is translated into the dialer's subprotocol
// list, which is where gorilla expects it.
func (c *Client) OpenWebsocket(ctx context.Context, url string, header http.Header) (*websocket.Conn, error) {
	h := http.Header{}
	if header != nil {
		h = header.Clone()
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 45 * time.Second,
	}
	if c.tls != nil {
		dialer.TLSClientConfig = c.tls.Clone()
	}
	if proto := h.Get("Sec-Websocket-Protocol"); proto != "" {
		for _, p := range strings.Split(proto, ",") {
			dialer.Subprotocols = append(dialer.Subprotocols, strings.TrimSpace(p))
		}
		h.Del("Sec-Websocket-Protocol")
	}

	conn, resp, err := dialer.DialContext(ctx, url, h)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			data, _ := io.ReadAll(resp.Body)
			return nil, &apierr.TransportError{
				Msg:    "websocket dial " + url + " failed",
				Status: resp.StatusCode,
				Body:   data,
				Err:    err,
			}
		}
		return nil, &apierr.TransportError{Msg: "websocket dial " + url + " failed", Err: err}
	}
	return conn, nil
}

// Close releases pooled connections.
func (c *Client) Close() error {
	c.client.HTTP.CloseIdleConnections()
	return nil
}

// apiError decodes the server's Status document when there is one.
func apiError(status int, body []byte) *apierr.APIError {
	out := &apierr.APIError{Status: status, Body: body}

	var st struct {
		Kind    string `json:"kind"`
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &st); err == nil && st.Kind == "Status" {
		out.Reason = st.Reason
		out.Message = st.Message
	}
	return out
}

func buildTLSConfig(cfg *config.Configuration) (*tls.Config, error) {
	tlsCfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: !cfg.VerifyTLS, //nolint:gosec // honors the configuration's verify_tls knob
	}

	caData := cfg.CAData
	if cfg.SSLCACert != "" {
		data, err := os.ReadFile(cfg.SSLCACert)
		if err != nil {
			return nil, &apierr.ConfigError{Msg: "cannot read CA bundle " + cfg.SSLCACert, Err: err}
		}
		caData = data
	}
	if len(caData) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caData) {
			return nil, apierr.Config("CA bundle contains no usable certificates")
		}
		tlsCfg.RootCAs = pool
	}

	switch {
	case cfg.CertFile != "" && cfg.KeyFile != "":
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, &apierr.ConfigError{Msg: "cannot load client certificate", Err: err}
		}
		tlsCfg.Certificates = []tls.Certificate{cert}

	case len(cfg.CertData) > 0 && len(cfg.KeyData) > 0:
		cert, err := tls.X509KeyPair(cfg.CertData, cfg.KeyData)
		if err != nil {
			return nil, &apierr.ConfigError{Msg: "cannot parse client certificate", Err: err}
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	return tlsCfg, nil
}

// cancelOnClose ties a request-scoped cancel to the response body lifetime.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
