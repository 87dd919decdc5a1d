package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"github.com/rakunlabs/kuba/apierr"
)

// EnvKubeconfig overrides the kubeconfig location when set.
const EnvKubeconfig = "KUBECONFIG"

// kubeconfig mirrors the documented kubeconfig YAML schema, limited to the
// fields the loader consumes.
type kubeconfig struct {
	CurrentContext string         `yaml:"current-context"`
	Clusters       []namedCluster `yaml:"clusters"`
	Contexts       []namedContext `yaml:"contexts"`
	Users          []namedUser    `yaml:"users"`
}

type namedCluster struct {
	Name    string  `yaml:"name"`
	Cluster cluster `yaml:"cluster"`
}

type cluster struct {
	Server                   string `yaml:"server"`
	CertificateAuthority     string `yaml:"certificate-authority"`
	CertificateAuthorityData string `yaml:"certificate-authority-data"`
	InsecureSkipTLSVerify    bool   `yaml:"insecure-skip-tls-verify"`
}

type namedContext struct {
	Name    string      `yaml:"name"`
	Context contextSpec `yaml:"context"`
}

type contextSpec struct {
	Cluster string `yaml:"cluster"`
	User    string `yaml:"user"`
}

type namedUser struct {
	Name string `yaml:"name"`
	User user   `yaml:"user"`
}

type user struct {
	Token                 string        `yaml:"token"`
	TokenFile             string        `yaml:"tokenFile"`
	Username              string        `yaml:"username"`
	Password              string        `yaml:"password"`
	ClientCertificate     string        `yaml:"client-certificate"`
	ClientCertificateData string        `yaml:"client-certificate-data"`
	ClientKey             string        `yaml:"client-key"`
	ClientKeyData         string        `yaml:"client-key-data"`
	AuthProvider          *authProvider `yaml:"auth-provider"`
}

type authProvider struct {
	Name   string            `yaml:"name"`
	Config map[string]string `yaml:"config"`
}

// LoadKubeconfig reads a kubeconfig file and returns a Configuration for the
// selected context. An empty path falls back to $KUBECONFIG and then to
// $HOME/.kube/config; an empty contextName selects current-context.
func LoadKubeconfig(path, contextName string) (*Configuration, error) {
	if path == "" {
		path = os.Getenv(EnvKubeconfig)
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, &apierr.ConfigError{Msg: "cannot locate home directory for default kubeconfig", Err: err}
		}
		path = filepath.Join(home, ".kube", "config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &apierr.ConfigError{Msg: fmt.Sprintf("cannot read kubeconfig %s", path), Err: err}
	}

	var kc kubeconfig
	if err := yaml.Unmarshal(data, &kc); err != nil {
		return nil, &apierr.ConfigError{Msg: fmt.Sprintf("malformed kubeconfig %s", path), Err: err}
	}

	if contextName == "" {
		contextName = kc.CurrentContext
	}
	if contextName == "" {
		return nil, apierr.Config("kubeconfig %s has no current-context and none was given", path)
	}

	var ctxSpec *contextSpec
	for i := range kc.Contexts {
		if kc.Contexts[i].Name == contextName {
			ctxSpec = &kc.Contexts[i].Context
			break
		}
	}
	if ctxSpec == nil {
		return nil, apierr.Config("context %q not found in kubeconfig %s", contextName, path)
	}

	var cl *cluster
	for i := range kc.Clusters {
		if kc.Clusters[i].Name == ctxSpec.Cluster {
			cl = &kc.Clusters[i].Cluster
			break
		}
	}
	if cl == nil {
		return nil, apierr.Config("cluster %q not found in kubeconfig %s", ctxSpec.Cluster, path)
	}

	var usr *user
	for i := range kc.Users {
		if kc.Users[i].Name == ctxSpec.User {
			usr = &kc.Users[i].User
			break
		}
	}
	if usr == nil {
		return nil, apierr.Config("user %q not found in kubeconfig %s", ctxSpec.User, path)
	}

	cfg := New()
	cfg.Host = strings.TrimRight(cl.Server, "/")
	if cfg.Host == "" {
		return nil, apierr.Config("cluster %q has no server address", ctxSpec.Cluster)
	}

	if err := applyCluster(cfg, cl, path); err != nil {
		return nil, err
	}
	if err := applyUser(cfg, usr, path); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyCluster(cfg *Configuration, cl *cluster, path string) error {
	cfg.VerifyTLS = !cl.InsecureSkipTLSVerify

	if cl.CertificateAuthority != "" {
		// Relative CA paths resolve against the kubeconfig's directory.
		cfg.SSLCACert = resolvePath(path, cl.CertificateAuthority)
	}
	if cl.CertificateAuthorityData != "" {
		ca, err := base64.StdEncoding.DecodeString(cl.CertificateAuthorityData)
		if err != nil {
			return &apierr.ConfigError{Msg: "invalid certificate-authority-data", Err: err}
		}
		cfg.CAData = ca
	}
	return nil
}

func applyUser(cfg *Configuration, usr *user, path string) error {
	switch {
	case usr.Token != "":
		cfg.SetAPIKey("authorization", "Bearer "+usr.Token)

	case usr.TokenFile != "":
		token, err := os.ReadFile(resolvePath(path, usr.TokenFile))
		if err != nil {
			return &apierr.ConfigError{Msg: "cannot read tokenFile", Err: err}
		}
		cfg.SetAPIKey("authorization", "Bearer "+strings.TrimSpace(string(token)))

	case usr.Username != "":
		cfg.Username = usr.Username
		cfg.Password = usr.Password

	case usr.AuthProvider != nil:
		if err := applyAuthProvider(cfg, usr.AuthProvider); err != nil {
			return err
		}
	}

	if usr.ClientCertificate != "" {
		cfg.CertFile = resolvePath(path, usr.ClientCertificate)
	}
	if usr.ClientKey != "" {
		cfg.KeyFile = resolvePath(path, usr.ClientKey)
	}
	if usr.ClientCertificateData != "" {
		cert, err := base64.StdEncoding.DecodeString(usr.ClientCertificateData)
		if err != nil {
			return &apierr.ConfigError{Msg: "invalid client-certificate-data", Err: err}
		}
		cfg.CertData = cert
	}
	if usr.ClientKeyData != "" {
		key, err := base64.StdEncoding.DecodeString(usr.ClientKeyData)
		if err != nil {
			return &apierr.ConfigError{Msg: "invalid client-key-data", Err: err}
		}
		cfg.KeyData = key
	}

	return nil
}

// applyAuthProvider honors the opaque auth-provider stanza: the current
// access token is used immediately, and when the stanza carries enough OAuth2
// material to refresh, a TokenProvider is installed so the token is renewed
// on expiry.
func applyAuthProvider(cfg *Configuration, ap *authProvider) error {
	token := ap.Config["access-token"]
	if token == "" {
		token = ap.Config["id-token"]
	}
	if token == "" {
		return apierr.Config("auth-provider %q carries no access-token or id-token", ap.Name)
	}

	cfg.SetAPIKey("authorization", "Bearer "+token)

	tokenURL := ap.Config["token-url"]
	if tokenURL == "" && ap.Config["idp-issuer-url"] != "" {
		tokenURL = strings.TrimRight(ap.Config["idp-issuer-url"], "/") + "/token"
	}
	if tokenURL == "" || ap.Config["refresh-token"] == "" {
		return nil // static token, nothing to refresh with
	}

	oc := &oauth2.Config{
		ClientID:     ap.Config["client-id"],
		ClientSecret: ap.Config["client-secret"],
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}

	seed := &oauth2.Token{
		AccessToken:  token,
		RefreshToken: ap.Config["refresh-token"],
	}
	if expiry := ap.Config["expiry"]; expiry != "" {
		if t, err := time.Parse(time.RFC3339, expiry); err == nil {
			seed.Expiry = t
		}
	}

	cfg.SetTokenProvider(&oauth2Provider{cfg: oc, seed: seed}, "Bearer ")
	return nil
}

// oauth2Provider adapts an oauth2 token source to the TokenProvider
// interface. The source is rebuilt per call so the refresh uses the caller's
// context.
type oauth2Provider struct {
	cfg  *oauth2.Config
	seed *oauth2.Token
}

func (p *oauth2Provider) Token(ctx context.Context) (string, time.Time, error) {
	tok, err := p.cfg.TokenSource(ctx, p.seed).Token()
	if err != nil {
		return "", time.Time{}, err
	}
	p.seed = tok
	return tok.AccessToken, tok.Expiry, nil
}

func resolvePath(kubeconfigPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(kubeconfigPath), p)
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}
