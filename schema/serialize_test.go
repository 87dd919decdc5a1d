package schema

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rakunlabs/kuba/apierr"
)

// deleteOptions mirrors the shape used by the wire round-trip scenarios.
type deleteOptions struct {
	APIVersion         *string
	Kind               *string
	GracePeriodSeconds *int64
	PropagationPolicy  *string
}

type podInfo struct {
	Name      *string
	Labels    map[string]string
	Ports     []int64
	StartedAt *time.Time
	Payload   any
}

type shapeBase struct {
	Kind *string
}

type shapeCircle struct {
	Kind   *string
	Radius *float64
}

func strp(s string) *string { return &s }
func intp(i int64) *int64   { return &i }

func init() {
	Register(&Descriptor{
		TypeName: "V1DeleteOptions",
		New:      func() any { return &deleteOptions{} },
		Attrs: []Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "grace_period_seconds", Wire: "gracePeriodSeconds", Type: "long"},
			{Name: "propagation_policy", Wire: "propagationPolicy", Type: "str"},
		},
	})

	Register(&Descriptor{
		TypeName: "TestPodInfo",
		New:      func() any { return &podInfo{} },
		Attrs: []Attr{
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "labels", Wire: "labels", Type: "dict(str, str)"},
			{Name: "ports", Wire: "ports", Type: "list[long]"},
			{Name: "started_at", Wire: "startedAt", Type: "datetime"},
			{Name: "payload", Wire: "payload", Type: "object"},
		},
	})

	Register(&Descriptor{
		TypeName: "TestShape",
		New:      func() any { return &shapeBase{} },
		Attrs: []Attr{
			{Name: "kind", Wire: "kind", Type: "str"},
		},
		ResolveSubtype: func(tree map[string]any) string {
			if kind, _ := tree["kind"].(string); kind == "circle" {
				return "TestShapeCircle"
			}
			return ""
		},
	})

	Register(&Descriptor{
		TypeName: "TestShapeCircle",
		New:      func() any { return &shapeCircle{} },
		Attrs: []Attr{
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "radius", Wire: "radius", Type: "float"},
		},
	})
}

func TestToWireEmitsWireNamesAndPrunesNil(t *testing.T) {
	obj := &deleteOptions{
		APIVersion:         strp("v1"),
		Kind:               strp("DeleteOptions"),
		GracePeriodSeconds: intp(0),
		PropagationPolicy:  strp("Foreground"),
	}

	tree, err := ToWire(obj)
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}

	m, ok := tree.(map[string]any)
	if !ok {
		t.Fatalf("ToWire returned %T, want map", tree)
	}

	want := map[string]any{
		"apiVersion":         "v1",
		"kind":               "DeleteOptions",
		"gracePeriodSeconds": int64(0),
		"propagationPolicy":  "Foreground",
	}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("ToWire = %#v, want %#v", m, want)
	}

	// A nil attribute must not appear on the wire at all.
	obj.PropagationPolicy = nil
	tree, err = ToWire(obj)
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}
	if _, ok := tree.(map[string]any)["propagationPolicy"]; ok {
		t.Fatal("nil attribute leaked into wire output")
	}
}

func TestRoundTrip(t *testing.T) {
	obj := &deleteOptions{
		APIVersion:         strp("v1"),
		Kind:               strp("DeleteOptions"),
		GracePeriodSeconds: intp(0),
		PropagationPolicy:  strp("Foreground"),
	}

	tree, err := ToWire(obj)
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}

	// Through real JSON so numbers arrive as float64, like responses do.
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := FromWire(decoded, "V1DeleteOptions")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}

	if !reflect.DeepEqual(got, obj) {
		t.Fatalf("round-trip mismatch: got %#v, want %#v", got, obj)
	}
}

func TestFromWireCollections(t *testing.T) {
	tree := map[string]any{
		"name":      "web",
		"labels":    map[string]any{"app": "web", "tier": "frontend"},
		"ports":     []any{float64(80), float64(443)},
		"startedAt": "2018-07-01T10:20:30Z",
		"payload":   map[string]any{"free": "form"},
	}

	got, err := FromWire(tree, "TestPodInfo")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}

	info := got.(*podInfo)
	if *info.Name != "web" {
		t.Errorf("name = %q", *info.Name)
	}
	if info.Labels["tier"] != "frontend" {
		t.Errorf("labels = %#v", info.Labels)
	}
	if len(info.Ports) != 2 || info.Ports[0] != 80 || info.Ports[1] != 443 {
		t.Errorf("ports = %#v", info.Ports)
	}
	if info.StartedAt == nil || !info.StartedAt.Equal(time.Date(2018, 7, 1, 10, 20, 30, 0, time.UTC)) {
		t.Errorf("started_at = %v", info.StartedAt)
	}
	if _, ok := info.Payload.(map[string]any); !ok {
		t.Errorf("payload = %#v, want verbatim tree", info.Payload)
	}
}

func TestFromWireMissingAndUnknownFields(t *testing.T) {
	// Missing wire fields stay nil; unknown wire fields are ignored.
	got, err := FromWire(map[string]any{
		"name":         "web",
		"notInSchema":  true,
		"alsoNotThere": []any{1},
	}, "TestPodInfo")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}

	info := got.(*podInfo)
	if info.Labels != nil || info.Ports != nil || info.StartedAt != nil {
		t.Fatalf("missing fields must stay nil: %#v", info)
	}
}

func TestFromWireUnknownType(t *testing.T) {
	_, err := FromWire(map[string]any{}, "NoSuchType")

	var verr *apierr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFromWireBadDatetime(t *testing.T) {
	_, err := FromWire(map[string]any{"startedAt": "not-a-time"}, "TestPodInfo")

	var serr *apierr.SerializationError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SerializationError, got %v", err)
	}
}

func TestFromWirePrimitives(t *testing.T) {
	if v, err := FromWire(float64(7), "long"); err != nil || v.(int64) != 7 {
		t.Errorf("long: %v, %v", v, err)
	}
	if v, err := FromWire("x", "str"); err != nil || v.(string) != "x" {
		t.Errorf("str: %v, %v", v, err)
	}
	if v, err := FromWire(true, "bool"); err != nil || v.(bool) != true {
		t.Errorf("bool: %v, %v", v, err)
	}
	if v, err := FromWire(nil, "str"); err != nil || v != nil {
		t.Errorf("nil: %v, %v", v, err)
	}
	if v, err := FromWire("2018-07-01", "date"); err != nil || v.(Date).Format("2006-01-02") != "2018-07-01" {
		t.Errorf("date: %v, %v", v, err)
	}
	if _, err := FromWire("07/01/2018", "date"); err == nil {
		t.Error("expected parse error for non-ISO date")
	}
}

func TestFromWireDictDecodesValuesOnly(t *testing.T) {
	// Keys are taken verbatim as strings; only values decode.
	got, err := FromWire(map[string]any{"a": float64(1), "b": float64(2)}, "dict(str, long)")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}

	m := got.(map[string]any)
	if m["a"].(int64) != 1 || m["b"].(int64) != 2 {
		t.Fatalf("dict = %#v", m)
	}
}

func TestFromWireDiscriminator(t *testing.T) {
	got, err := FromWire(map[string]any{"kind": "circle", "radius": float64(2.5)}, "TestShape")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}

	circle, ok := got.(*shapeCircle)
	if !ok {
		t.Fatalf("discriminator did not dispatch: got %T", got)
	}
	if *circle.Radius != 2.5 {
		t.Errorf("radius = %v", *circle.Radius)
	}

	// Unselected discriminator keeps the base type.
	got, err = FromWire(map[string]any{"kind": "square"}, "TestShape")
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if _, ok := got.(*shapeBase); !ok {
		t.Fatalf("expected base type, got %T", got)
	}
}

func TestUnpack(t *testing.T) {
	raw := []byte(`{"apiVersion":"v1","kind":"DeleteOptions","gracePeriodSeconds":30}`)

	got, err := Unpack(raw)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}

	opts := got.(*deleteOptions)
	if *opts.GracePeriodSeconds != 30 {
		t.Errorf("grace_period_seconds = %d", *opts.GracePeriodSeconds)
	}

	if _, err := Unpack([]byte(`not ]json`)); err == nil {
		t.Error("expected error for invalid json")
	}
	if _, err := Unpack([]byte(`{"foo":"bar"}`)); err == nil {
		t.Error("expected error for document without apiVersion/kind")
	}
}

func TestToWireDateFormats(t *testing.T) {
	ts := time.Date(2018, 7, 1, 10, 20, 30, 0, time.UTC)

	v, err := ToWire(ts)
	if err != nil || v.(string) != "2018-07-01T10:20:30Z" {
		t.Errorf("datetime = %v, %v", v, err)
	}

	v, err = ToWire(Date{Time: ts})
	if err != nil || v.(string) != "2018-07-01" {
		t.Errorf("date = %v, %v", v, err)
	}
}

func TestToWirePreservesSequenceOrder(t *testing.T) {
	v, err := ToWire([]string{"/bin/sh", "-c", "echo hi"})
	if err != nil {
		t.Fatalf("ToWire: %v", err)
	}

	got := v.([]any)
	want := []any{"/bin/sh", "-c", "echo hi"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order not preserved: %#v", got)
	}
}
