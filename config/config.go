// Package config holds the client Configuration and the credential loaders
// that produce it, either from a kubeconfig file or from the service-account
// files Kubernetes mounts into a pod.
package config

import (
	"context"
	"sync"
	"time"

	"github.com/rakunlabs/kuba/apierr"
)

// Auth setting names referenced by the generated operations.
const (
	AuthBearerToken = "BearerToken"
	AuthBasic       = "BasicAuth"
)

// AuthSetting places a credential either in a header or in a query parameter.
type AuthSetting struct {
	Location string // "header" or "query"
	Key      string
	Value    string
}

// TokenProvider supplies a bearer token and its expiry. Loaders install one
// when the credential source supports refresh (e.g. a kubeconfig
// auth-provider); a zero expiry means the token never expires.
type TokenProvider interface {
	Token(ctx context.Context) (token string, expiry time.Time, err error)
}

// Configuration is everything the request builder and transport need to talk
// to one cluster. It is read-only after hand-off, with a single exception:
// the bearer-token value, which the installed TokenProvider refreshes through
// RefreshToken.
type Configuration struct {
	// Host is scheme://authority with an optional base path, no trailing
	// slash.
	Host string

	// TLS trust material. Paths win over raw bytes when both are set.
	SSLCACert string
	CAData    []byte
	CertFile  string
	KeyFile   string
	CertData  []byte
	KeyData   []byte
	VerifyTLS bool

	// Basic auth credentials, when the kubeconfig user carries them.
	Username string
	Password string

	// SafePathChars are the characters exempt from percent-encoding when a
	// path parameter is substituted into a resource path.
	SafePathChars string

	DefaultHeaders map[string]string
	UserAgent      string

	// Timeout is the default request timeout applied when an operation does
	// not override it.
	Timeout time.Duration

	mu          sync.RWMutex
	apiKeys     map[string]string
	extra       map[string]AuthSetting
	provider    TokenProvider
	tokenExpiry time.Time
	tokenPrefix string
}

// New returns a Configuration with the library defaults.
func New() *Configuration {
	return &Configuration{
		VerifyTLS: true,
		UserAgent: "kuba/" + Version,
		Timeout:   5 * time.Minute,
		apiKeys:   map[string]string{},
	}
}

// Version of the client library, injected into the default User-Agent.
var Version = "0.1.0"

// SetAPIKey stores the raw value sent for key (e.g. the full
// "authorization" header value, prefix included). Loaders install credentials
// through it; RefreshToken writes the same values under the same lock. Safe
// for concurrent use.
func (c *Configuration) SetAPIKey(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.apiKeys == nil {
		c.apiKeys = map[string]string{}
	}
	c.apiKeys[key] = value
}

func (c *Configuration) apiKey(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKeys[key]
}

// SetAuthSetting registers a custom auth setting under name, alongside the
// built-in bearer and basic settings.
func (c *Configuration) SetAuthSetting(name string, s AuthSetting) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.extra == nil {
		c.extra = map[string]AuthSetting{}
	}
	c.extra[name] = s
}

// AuthSettings returns the auth settings known to this configuration, keyed
// by the names the generated operations use.
func (c *Configuration) AuthSettings() map[string]AuthSetting {
	out := map[string]AuthSetting{
		AuthBearerToken: {
			Location: "header",
			Key:      "authorization",
			Value:    c.apiKey("authorization"),
		},
	}
	if c.Username != "" {
		out[AuthBasic] = AuthSetting{
			Location: "header",
			Key:      "authorization",
			Value:    basicAuth(c.Username, c.Password),
		}
	}
	c.mu.RLock()
	for name, s := range c.extra {
		out[name] = s
	}
	c.mu.RUnlock()
	return out
}

// SetTokenProvider installs a refreshing token source. prefix is prepended to
// the bare token when composing the authorization value ("Bearer " for
// kubeconfig providers).
func (c *Configuration) SetTokenProvider(p TokenProvider, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.provider = p
	c.tokenPrefix = prefix
}

// RefreshToken refreshes the bearer token through the installed provider when
// the previous token has expired. It is a no-op without a provider.
func (c *Configuration) RefreshToken(ctx context.Context) error {
	c.mu.Lock()
	provider, prefix, expiry := c.provider, c.tokenPrefix, c.tokenExpiry
	c.mu.Unlock()

	if provider == nil {
		return nil
	}
	if !expiry.IsZero() && time.Now().Before(expiry) {
		return nil
	}

	token, newExpiry, err := provider.Token(ctx)
	if err != nil {
		return &apierr.ConfigError{Msg: "token refresh failed", Err: err}
	}

	c.mu.Lock()
	c.apiKeys["authorization"] = prefix + token
	c.tokenExpiry = newExpiry
	c.mu.Unlock()

	return nil
}
