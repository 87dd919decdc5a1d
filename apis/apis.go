// Package apis carries the pieces shared by every generated operation group:
// the options bag, the request envelope handed to the client facade, and the
// helpers that turn options into canonical builder input.
package apis

import (
	"strconv"
	"time"

	"github.com/rakunlabs/kuba/rest"
)

// Media types the API server speaks. application/json is preferred whenever
// it is offered.
var (
	AcceptTypes = []string{"application/json", "application/yaml", "application/vnd.kubernetes.protobuf"}

	PatchStrategicMerge = "application/strategic-merge-patch+json"
	PatchMergeJSON      = "application/merge-patch+json"
	PatchJSON           = "application/json-patch+json"
)

// Options is the per-call options bag accepted by every operation.
type Options struct {
	Pretty          bool
	Watch           bool
	TimeoutSeconds  *int64
	LabelSelector   string
	FieldSelector   string
	ResourceVersion string
	Limit           *int64
	Continue        string

	// PreloadContent controls one-shot deserialization of the response body.
	// nil means true; watch callers set it to false to keep the body
	// streamable.
	PreloadContent *bool

	// Timeout overrides the configuration's request timeout for this call.
	Timeout time.Duration
}

// Preload reports whether the caller wants the response deserialized in one
// shot.
func (o Options) Preload() bool {
	return o.PreloadContent == nil || *o.PreloadContent
}

// ListQuery renders the options bag into query parameters in a fixed order,
// so identical options always produce a byte-identical request.
func ListQuery(o Options) []rest.Pair {
	var q []rest.Pair
	if o.Pretty {
		q = append(q, rest.Pair{Key: "pretty", Value: "true"})
	}
	if o.Continue != "" {
		q = append(q, rest.Pair{Key: "continue", Value: o.Continue})
	}
	if o.FieldSelector != "" {
		q = append(q, rest.Pair{Key: "fieldSelector", Value: o.FieldSelector})
	}
	if o.LabelSelector != "" {
		q = append(q, rest.Pair{Key: "labelSelector", Value: o.LabelSelector})
	}
	if o.Limit != nil {
		q = append(q, rest.Pair{Key: "limit", Value: strconv.FormatInt(*o.Limit, 10)})
	}
	if o.ResourceVersion != "" {
		q = append(q, rest.Pair{Key: "resourceVersion", Value: o.ResourceVersion})
	}
	if o.TimeoutSeconds != nil {
		q = append(q, rest.Pair{Key: "timeoutSeconds", Value: strconv.FormatInt(*o.TimeoutSeconds, 10)})
	}
	if o.Watch {
		q = append(q, rest.Pair{Key: "watch", Value: "true"})
	}
	return q
}

// Headers builds the header parameters for an operation. contentTypes is the
// list of media types the operation accepts for its body; nil means the
// operation has no body and no Content-Type is set.
func Headers(contentTypes []string) map[string]string {
	h := map[string]string{}
	if accept := rest.SelectAccept(AcceptTypes); accept != "" {
		h["Accept"] = accept
	}
	if contentTypes != nil {
		h["Content-Type"] = rest.SelectContentType(contentTypes)
	}
	return h
}

// Request is a finished, transport-free description of one API call: the
// builder input plus what the caller expects back.
type Request struct {
	Input rest.Input

	// ResponseType names the registered type the response body deserializes
	// into; empty means the caller gets the raw response only.
	ResponseType string

	// WatchItemType names the registered type of individual watch events for
	// this resource, used as the decode hint when the request is watched.
	WatchItemType string

	// Preload mirrors Options.PreloadContent.
	Preload bool
}
