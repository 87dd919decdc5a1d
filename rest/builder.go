// Package rest composes wire requests from typed operation parameters. The
// builder is pure: given the same Configuration and inputs it produces a
// byte-identical Spec, and it performs no I/O, so a Spec can be built without
// any transport loaded and dispatched through whatever the caller chooses.
package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/schema"
)

// DefaultTimeout applies when neither the operation nor the Configuration
// overrides it.
const DefaultTimeout = 5 * time.Minute

// Pair is one query parameter before flattening. Value may be a scalar or a
// sequence; sequences expand into repeated pairs with the same key.
type Pair struct {
	Key   string
	Value any
}

// QueryPair is one flattened, stringified query parameter.
type QueryPair struct {
	Key   string
	Value string
}

// Spec is the finished wire request handed to a transport adapter.
type Spec struct {
	Method  string
	URL     string
	Header  http.Header
	Query   []QueryPair
	Body    []byte
	Timeout time.Duration
}

// Input carries the seven canonical inputs of an API operation.
type Input struct {
	Method       string
	Path         string // resource path template with {name} placeholders
	PathParams   map[string]any
	QueryParams  []Pair
	HeaderParams map[string]string
	PostParams   map[string]any
	AuthNames    []string
	Body         any
	Timeout      time.Duration
}

// Build finalizes a request Spec from cfg and in.
func Build(cfg *config.Configuration, in Input) (*Spec, error) {
	if in.Body != nil && len(in.PostParams) > 0 {
		return nil, apierr.Validation("body cannot be combined with post params")
	}

	header := http.Header{}
	for k, v := range cfg.DefaultHeaders {
		header.Set(k, v)
	}
	if cfg.UserAgent != "" {
		header.Set("User-Agent", cfg.UserAgent)
	}
	for k, v := range in.HeaderParams {
		header.Set(k, v)
	}

	path := in.Path
	for k, v := range in.PathParams {
		sane, err := schema.ToWire(v)
		if err != nil {
			return nil, err
		}
		path = strings.ReplaceAll(path, "{"+k+"}", pathEscape(stringify(sane), cfg.SafePathChars))
	}

	query, err := flattenQuery(in.QueryParams)
	if err != nil {
		return nil, err
	}

	// Auth settings the operation names but the configuration does not know,
	// or knows with an empty value, are silently skipped.
	settings := cfg.AuthSettings()
	for _, name := range in.AuthNames {
		setting, ok := settings[name]
		if !ok || setting.Value == "" {
			continue
		}
		switch setting.Location {
		case "header":
			header.Set(setting.Key, setting.Value)
		case "query":
			query = append(query, QueryPair{Key: setting.Key, Value: setting.Value})
		default:
			return nil, apierr.Config("auth setting %q must be in query or header, not %q", name, setting.Location)
		}
	}

	var body []byte
	switch {
	case in.Body != nil:
		tree, err := schema.ToWire(in.Body)
		if err != nil {
			return nil, err
		}
		body, err = json.Marshal(tree)
		if err != nil {
			return nil, &apierr.SerializationError{Msg: "cannot encode request body", Err: err}
		}
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}

	case len(in.PostParams) > 0:
		tree, err := schema.ToWire(in.PostParams)
		if err != nil {
			return nil, err
		}
		form := tree.(map[string]any)
		keys := make([]string, 0, len(form))
		for k := range form {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, queryEscape(k)+"="+queryEscape(stringify(form[k])))
		}
		body = []byte(strings.Join(pairs, "&"))
		header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	url := cfg.Host + path
	if len(query) > 0 {
		url += "?" + EncodeQuery(query)
	}

	timeout := in.Timeout
	if timeout == 0 {
		timeout = cfg.Timeout
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Spec{
		Method:  strings.ToUpper(in.Method),
		URL:     url,
		Header:  header,
		Query:   query,
		Body:    body,
		Timeout: timeout,
	}, nil
}

// flattenQuery sanitizes query values and expands sequence values into
// repeated pairs, preserving relative order.
func flattenQuery(params []Pair) ([]QueryPair, error) {
	var out []QueryPair
	for _, p := range params {
		sane, err := schema.ToWire(p.Value)
		if err != nil {
			return nil, err
		}
		if seq, ok := sane.([]any); ok {
			for _, item := range seq {
				out = append(out, QueryPair{Key: p.Key, Value: stringify(item)})
			}
			continue
		}
		out = append(out, QueryPair{Key: p.Key, Value: stringify(sane)})
	}
	return out, nil
}

// EncodeQuery URL-encodes pairs preserving their order. (net/url's Encode
// sorts keys, which would break the builder's determinism guarantee the
// other way: identical inputs must keep caller order.)
func EncodeQuery(pairs []QueryPair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(queryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(queryEscape(p.Value))
	}
	return b.String()
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// SelectAccept composes the Accept header from the media types an operation
// offers: empty offers leave the header unset, application/json wins when
// present (case-insensitively), otherwise the offers are lower-cased and
// joined with ", ".
func SelectAccept(offers []string) string {
	if len(offers) == 0 {
		return ""
	}
	lowered := make([]string, len(offers))
	for i, o := range offers {
		lowered[i] = strings.ToLower(o)
	}
	for _, o := range lowered {
		if o == "application/json" {
			return "application/json"
		}
	}
	return strings.Join(lowered, ", ")
}

// SelectContentType picks the request Content-Type from the media types an
// operation accepts: application/json when the offers are empty or include
// application/json or */* (case-insensitively), otherwise the first offer,
// lower-cased.
func SelectContentType(offers []string) string {
	if len(offers) == 0 {
		return "application/json"
	}
	lowered := make([]string, len(offers))
	for i, o := range offers {
		lowered[i] = strings.ToLower(o)
	}
	for _, o := range lowered {
		if o == "application/json" || o == "*/*" {
			return "application/json"
		}
	}
	return lowered[0]
}

// pathEscape percent-encodes s for use as a path segment, leaving unreserved
// characters and any caller-supplied safe characters intact.
func pathEscape(s, safe string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(safe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteString(fmt.Sprintf("%%%02X", c))
	}
	return b.String()
}

func queryEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteString(fmt.Sprintf("%%%02X", c))
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}
