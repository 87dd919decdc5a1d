package rest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/config"
)

func testConfig() *config.Configuration {
	cfg := config.New()
	cfg.Host = "myhost"
	cfg.UserAgent = ""
	cfg.SetAPIKey("authorization", "bearer my-token")
	return cfg
}

func TestBuildPathTemplatingAndQueryFlattening(t *testing.T) {
	cfg := testConfig()

	spec, err := Build(cfg, Input{
		Method: "GET",
		Path:   "/api/v1/namespaces/{namespace}/pods/{name}/exec",
		PathParams: map[string]any{
			"name":      "login-cd546cd56-q8254",
			"namespace": "foo",
		},
		QueryParams: []Pair{
			{Key: "command", Value: []string{"/bin/sh", "echo err >&2"}},
			{Key: "stderr", Value: true},
		},
		AuthNames: []string{config.AuthBearerToken},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantQuery := []QueryPair{
		{Key: "command", Value: "/bin/sh"},
		{Key: "command", Value: "echo err >&2"},
		{Key: "stderr", Value: "true"},
	}
	if !reflect.DeepEqual(spec.Query, wantQuery) {
		t.Fatalf("query = %#v, want %#v", spec.Query, wantQuery)
	}

	wantPrefix := "myhost/api/v1/namespaces/foo/pods/login-cd546cd56-q8254/exec?"
	if got := spec.URL[:len(wantPrefix)]; got != wantPrefix {
		t.Fatalf("url = %q, want prefix %q", spec.URL, wantPrefix)
	}

	if got := spec.Header.Get("authorization"); got != "bearer my-token" {
		t.Fatalf("authorization header = %q", got)
	}
}

func TestBuildScalarQueryPassesThrough(t *testing.T) {
	spec, err := Build(testConfig(), Input{
		Method: "GET",
		Path:   "/api/v1/pods",
		QueryParams: []Pair{
			{Key: "limit", Value: "5"},
			{Key: "watch", Value: true},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []QueryPair{{Key: "limit", Value: "5"}, {Key: "watch", Value: "true"}}
	if !reflect.DeepEqual(spec.Query, want) {
		t.Fatalf("query = %#v, want %#v", spec.Query, want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	in := Input{
		Method: "GET",
		Path:   "/api/v1/namespaces/{namespace}/pods",
		PathParams: map[string]any{
			"namespace": "kube-system",
		},
		QueryParams: []Pair{
			{Key: "labelSelector", Value: "app=web"},
			{Key: "watch", Value: true},
		},
		AuthNames: []string{config.AuthBearerToken},
	}

	first, err := Build(testConfig(), in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Build(testConfig(), in)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if again.URL != first.URL {
			t.Fatalf("url differs between runs: %q vs %q", again.URL, first.URL)
		}
		if !reflect.DeepEqual(again.Header, first.Header) {
			t.Fatalf("headers differ between runs")
		}
	}
}

func TestBuildPathParamEscaping(t *testing.T) {
	spec, err := Build(testConfig(), Input{
		Method:     "GET",
		Path:       "/api/v1/namespaces/{namespace}",
		PathParams: map[string]any{"namespace": "a b/c"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if want := "myhost/api/v1/namespaces/a%20b%2Fc"; spec.URL != want {
		t.Fatalf("url = %q, want %q", spec.URL, want)
	}

	// Safe characters are exempt from encoding.
	cfg := testConfig()
	cfg.SafePathChars = "/"
	spec, err = Build(cfg, Input{
		Method:     "GET",
		Path:       "/api/v1/namespaces/{namespace}",
		PathParams: map[string]any{"namespace": "a b/c"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if want := "myhost/api/v1/namespaces/a%20b/c"; spec.URL != want {
		t.Fatalf("url = %q, want %q", spec.URL, want)
	}
}

func TestBuildBody(t *testing.T) {
	spec, err := Build(testConfig(), Input{
		Method: "POST",
		Path:   "/api/v1/namespaces",
		Body:   map[string]any{"kind": "Namespace"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := string(spec.Body); got != `{"kind":"Namespace"}` {
		t.Fatalf("body = %q", got)
	}
	if got := spec.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
}

func TestBuildBodyPostParamsConflict(t *testing.T) {
	_, err := Build(testConfig(), Input{
		Method:     "POST",
		Path:       "/x",
		Body:       map[string]any{"a": 1},
		PostParams: map[string]any{"b": "2"},
	})

	var verr *apierr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBuildUnknownAuthLocation(t *testing.T) {
	cfg := testConfig()
	cfg.SetAuthSetting("Cookie", config.AuthSetting{Location: "cookie", Key: "session", Value: "x"})

	_, err := Build(cfg, Input{
		Method:    "GET",
		Path:      "/x",
		AuthNames: []string{"Cookie"},
	})

	var cerr *apierr.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestBuildQueryLocatedAuth(t *testing.T) {
	cfg := testConfig()
	cfg.SetAuthSetting("QueryToken", config.AuthSetting{Location: "query", Key: "token", Value: "abc"})

	spec, err := Build(cfg, Input{
		Method:    "GET",
		Path:      "/x",
		AuthNames: []string{"QueryToken"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if want := "myhost/x?token=abc"; spec.URL != want {
		t.Fatalf("url = %q, want %q", spec.URL, want)
	}
}

func TestBuildSkipsEmptyAndUnknownAuth(t *testing.T) {
	cfg := config.New()
	cfg.Host = "myhost"
	cfg.UserAgent = ""

	// BearerToken has no value and NoSuch is not configured: both skipped.
	spec, err := Build(cfg, Input{
		Method:    "GET",
		Path:      "/x",
		AuthNames: []string{config.AuthBearerToken, "NoSuch"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := spec.Header.Get("authorization"); got != "" {
		t.Fatalf("authorization header = %q, want unset", got)
	}
}

func TestBuildDefaultTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 0

	spec, err := Build(cfg, Input{Method: "GET", Path: "/x"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if spec.Timeout != DefaultTimeout {
		t.Fatalf("timeout = %v, want %v", spec.Timeout, DefaultTimeout)
	}
}

func TestSelectContentType(t *testing.T) {
	tests := []struct {
		offers []string
		want   string
	}{
		{nil, "application/json"},
		{[]string{}, "application/json"},
		{[]string{"foo", "bar"}, "foo"},
		{[]string{"*/*"}, "application/json"},
		{[]string{"application/xml", "APPLICATION/JSON"}, "application/json"},
	}

	for _, tt := range tests {
		if got := SelectContentType(tt.offers); got != tt.want {
			t.Errorf("SelectContentType(%v) = %q, want %q", tt.offers, got, tt.want)
		}
	}
}

func TestSelectAccept(t *testing.T) {
	tests := []struct {
		offers []string
		want   string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"foo", "bar"}, "foo, bar"},
		{[]string{"APPLICATION/json", "foo"}, "application/json"},
	}

	for _, tt := range tests {
		if got := SelectAccept(tt.offers); got != tt.want {
			t.Errorf("SelectAccept(%v) = %q, want %q", tt.offers, got, tt.want)
		}
	}
}
