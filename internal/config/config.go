// Package config is the CLI's own configuration, loaded from file and
// environment. The cluster credentials themselves come from the library's
// config package; this only covers how the tool is driven.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rakunlabs/chu"
	"github.com/rakunlabs/chu/loader/loaderenv"
	"github.com/rakunlabs/logi"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var Service = ""

type Config struct {
	LogLevel string `cfg:"log_level,no_prefix" default:"info"`

	// Kubeconfig is the path of the kubeconfig file to load. Empty falls
	// back to $KUBECONFIG and then to ~/.kube/config. Ignored when InCluster
	// is set.
	Kubeconfig string `cfg:"kubeconfig"`

	// Context selects a kubeconfig context; empty uses current-context.
	Context string `cfg:"context"`

	// InCluster loads service-account credentials from the pod instead of a
	// kubeconfig file.
	InCluster bool `cfg:"in_cluster"`

	// Namespace is the default namespace for namespaced operations.
	Namespace string `cfg:"namespace" default:"default"`

	// Timeout is the per-request timeout as a human duration ("90s", "2m").
	// Empty keeps the library default.
	Timeout string `cfg:"timeout"`
}

// RequestTimeout parses the configured timeout. Zero means default.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := str2duration.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

func Load(ctx context.Context, path string) (*Config, error) {
	var cfg Config
	if err := chu.Load(ctx, path, &cfg, chu.WithLoaderOption(loaderenv.New(loaderenv.WithPrefix("KUBA_")))); err != nil {
		return nil, err
	}

	if err := logi.SetLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("set log level %s: %w", cfg.LogLevel, err)
	}

	slog.Info("loaded configuration", "config", chu.MarshalMap(cfg))

	return &cfg, nil
}
