package config

import (
	"net"
	"os"
	"strings"

	"github.com/rakunlabs/kuba/apierr"
)

// Locations where Kubernetes mounts the service-account credentials inside a
// pod.
const (
	ServiceTokenFile = "/var/run/secrets/kubernetes.io/serviceaccount/token"  //nolint:gosec // well-known path, not a credential
	ServiceCertFile  = "/var/run/secrets/kubernetes.io/serviceaccount/ca.crt"
)

// Environment variables Kubernetes injects into every pod.
const (
	EnvServiceHost = "KUBERNETES_SERVICE_HOST"
	EnvServicePort = "KUBERNETES_SERVICE_PORT"
)

// LoadInCluster returns a Configuration built from the service-account
// credentials of the pod the process runs in. Empty tokenFile/certFile fall
// back to the well-known mount points.
func LoadInCluster(tokenFile, certFile string) (*Configuration, error) {
	if tokenFile == "" {
		tokenFile = ServiceTokenFile
	}
	if certFile == "" {
		certFile = ServiceCertFile
	}

	host := os.Getenv(EnvServiceHost)
	port := os.Getenv(EnvServicePort)
	if host == "" || port == "" {
		return nil, apierr.Config("service host/port is either empty or not set")
	}

	token, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, &apierr.ConfigError{Msg: "token file " + tokenFile + " is not readable", Err: err}
	}
	if len(token) == 0 {
		return nil, apierr.Config("token file %s exists but is empty", tokenFile)
	}

	// The certificate itself is not parsed here, only handed to the TLS
	// layer by path; it still must exist and be non-empty.
	cert, err := os.ReadFile(certFile)
	if err != nil {
		return nil, &apierr.ConfigError{Msg: "cert file " + certFile + " is not readable", Err: err}
	}
	if len(cert) == 0 {
		return nil, apierr.Config("cert file %s exists but is empty", certFile)
	}

	cfg := New()
	// IPv6 literals (anything with ':' or '%') are bracketed. net.JoinHostPort
	// only looks for ':', so a bare '%' zone is bracketed here.
	hostPort := net.JoinHostPort(host, port)
	if strings.Contains(host, "%") && !strings.Contains(host, ":") {
		hostPort = "[" + host + "]:" + port
	}
	cfg.Host = "https://" + hostPort
	cfg.SSLCACert = certFile
	cfg.SetAPIKey("authorization", "bearer "+string(token))

	return cfg, nil
}
