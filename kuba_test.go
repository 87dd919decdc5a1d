package kuba

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/rakunlabs/kuba/apierr"
	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/apis/corev1"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/models"
	"github.com/rakunlabs/kuba/rest"
)

// fakeTransport records the last spec and replays canned responses.
type fakeTransport struct {
	lastSpec *rest.Spec
	status   int
	body     string
}

func (f *fakeTransport) Do(_ context.Context, spec *rest.Spec) (*http.Response, error) {
	f.lastSpec = spec
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func (f *fakeTransport) OpenWebsocket(context.Context, string, http.Header) (*websocket.Conn, error) {
	return nil, apierr.Protocol("not supported by fake transport")
}

func (f *fakeTransport) Close() error { return nil }

func testClient(body string) (*Client, *fakeTransport) {
	cfg := config.New()
	cfg.Host = "https://cluster.example.com"
	cfg.SetAPIKey("authorization", "Bearer tok")

	ft := &fakeTransport{body: body}
	return NewWithTransport(cfg, ft), ft
}

func TestInvokeDeserializesResponse(t *testing.T) {
	cli, ft := testClient(`{
		"apiVersion": "v1",
		"kind": "PodList",
		"items": [
			{"metadata": {"name": "web-0"}, "status": {"phase": "Running"}},
			{"metadata": {"name": "web-1"}, "status": {"phase": "Pending"}}
		]
	}`)

	resp, err := cli.Invoke(context.Background(), corev1.ListNamespacedPod("default", apis.Options{}))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	list, ok := resp.Parsed.(*models.V1PodList)
	if !ok {
		t.Fatalf("parsed = %T, want *models.V1PodList", resp.Parsed)
	}
	if len(list.Items) != 2 {
		t.Fatalf("items = %d", len(list.Items))
	}
	if *list.Items[0].Metadata.Name != "web-0" || *list.Items[1].Status.Phase != "Pending" {
		t.Fatalf("items not decoded: %#v", list.Items)
	}

	if got := ft.lastSpec.URL; got != "https://cluster.example.com/api/v1/namespaces/default/pods" {
		t.Fatalf("url = %q", got)
	}
}

func TestInvokeWithoutPreloadReturnsRawResponse(t *testing.T) {
	cli, _ := testClient(`ignored`)

	req := corev1.ListNamespacedPod("default", apis.Options{PreloadContent: models.Ptr(false)})
	resp, err := cli.Invoke(context.Background(), req)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	defer resp.Raw.Body.Close()

	if resp.Parsed != nil {
		t.Fatal("parsed must stay nil without preload")
	}
	data, _ := io.ReadAll(resp.Raw.Body)
	if string(data) != "ignored" {
		t.Fatalf("raw body = %q", data)
	}
}

func TestWatchStreamsTypedEvents(t *testing.T) {
	cli, ft := testClient(
		`{"type":"ADDED","object":{"metadata":{"name":"web-0"}}}` + "\n" +
			`{"type":"MODIFIED","object":{"metadata":{"name":"web-0"}}}` + "\n")

	st, err := cli.Watch(context.Background(), corev1.ListNamespacedPod("default", apis.Options{
		PreloadContent: models.Ptr(false),
	}))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer st.Close()

	ctx := context.Background()

	ev, err := st.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Name != "ADDED" {
		t.Errorf("name = %q", ev.Name)
	}
	pod, ok := ev.Obj.(*models.V1Pod)
	if !ok {
		t.Fatalf("obj = %T, want *models.V1Pod (watch item hint)", ev.Obj)
	}
	if *pod.Metadata.Name != "web-0" {
		t.Errorf("metadata.name = %q", *pod.Metadata.Name)
	}

	if _, err := st.Next(ctx); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := st.Next(ctx); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}

	// watch=true must have been forced onto the wire.
	if !strings.Contains(ft.lastSpec.URL, "watch=true") {
		t.Fatalf("url = %q, missing watch=true", ft.lastSpec.URL)
	}
}

func TestWatchRequestIsLazy(t *testing.T) {
	cli, ft := testClient("")

	_, err := cli.Watch(context.Background(), corev1.ListNamespacedPod("default", apis.Options{
		PreloadContent: models.Ptr(false),
	}))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if ft.lastSpec != nil {
		t.Fatal("watch must not issue the request before the first demand")
	}
}
