// Package corev1 is the generated-style operation surface for the core/v1
// API group. Every operation is a pure function: it composes the canonical
// builder input for one endpoint and never touches the network.
package corev1

import (
	"net/http"

	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/models"
	"github.com/rakunlabs/kuba/rest"
)

var bearer = []string{config.AuthBearerToken}

// ListNamespace lists all namespaces in the cluster.
func ListNamespace(opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces",
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "V1NamespaceList",
		WatchItemType: "V1Namespace",
		Preload:       opts.Preload(),
	}
}

// ReadNamespace reads one namespace by name.
func ReadNamespace(name string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{name}",
			PathParams:   map[string]any{"name": name},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Namespace",
		Preload:      opts.Preload(),
	}
}

// CreateNamespace creates a namespace.
func CreateNamespace(body *models.V1Namespace, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPost,
			Path:         "/api/v1/namespaces",
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{"*/*"}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Namespace",
		Preload:      opts.Preload(),
	}
}

// DeleteNamespace deletes a namespace. body is optional delete options.
func DeleteNamespace(name string, body *models.V1DeleteOptions, opts apis.Options) *apis.Request {
	in := rest.Input{
		Method:       http.MethodDelete,
		Path:         "/api/v1/namespaces/{name}",
		PathParams:   map[string]any{"name": name},
		QueryParams:  apis.ListQuery(opts),
		HeaderParams: apis.Headers([]string{"*/*"}),
		AuthNames:    bearer,
		Timeout:      opts.Timeout,
	}
	if body != nil {
		in.Body = body
	}
	return &apis.Request{Input: in, ResponseType: "V1Status", Preload: opts.Preload()}
}

// ListPodForAllNamespaces lists pods across every namespace.
func ListPodForAllNamespaces(opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/pods",
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "V1PodList",
		WatchItemType: "V1Pod",
		Preload:       opts.Preload(),
	}
}

// ListNamespacedPod lists pods in one namespace.
func ListNamespacedPod(namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/pods",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "V1PodList",
		WatchItemType: "V1Pod",
		Preload:       opts.Preload(),
	}
}

// ReadNamespacedPod reads one pod.
func ReadNamespacedPod(name, namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/pods/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Pod",
		Preload:      opts.Preload(),
	}
}

// CreateNamespacedPod creates a pod.
func CreateNamespacedPod(namespace string, body *models.V1Pod, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPost,
			Path:         "/api/v1/namespaces/{namespace}/pods",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{"*/*"}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Pod",
		Preload:      opts.Preload(),
	}
}

// DeleteNamespacedPod deletes a pod. body is optional delete options.
func DeleteNamespacedPod(name, namespace string, body *models.V1DeleteOptions, opts apis.Options) *apis.Request {
	in := rest.Input{
		Method:       http.MethodDelete,
		Path:         "/api/v1/namespaces/{namespace}/pods/{name}",
		PathParams:   map[string]any{"name": name, "namespace": namespace},
		QueryParams:  apis.ListQuery(opts),
		HeaderParams: apis.Headers([]string{"*/*"}),
		AuthNames:    bearer,
		Timeout:      opts.Timeout,
	}
	if body != nil {
		in.Body = body
	}
	return &apis.Request{Input: in, ResponseType: "V1Status", Preload: opts.Preload()}
}

// PatchNamespacedPod patches a pod. patchType selects the patch media type;
// empty means strategic merge.
func PatchNamespacedPod(name, namespace string, body any, patchType string, opts apis.Options) *apis.Request {
	if patchType == "" {
		patchType = apis.PatchStrategicMerge
	}
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPatch,
			Path:         "/api/v1/namespaces/{namespace}/pods/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{patchType}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Pod",
		Preload:      opts.Preload(),
	}
}

// ListNamespacedConfigMap lists config maps in one namespace.
func ListNamespacedConfigMap(namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/configmaps",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "V1ConfigMapList",
		WatchItemType: "V1ConfigMap",
		Preload:       opts.Preload(),
	}
}

// ReadNamespacedConfigMap reads one config map.
func ReadNamespacedConfigMap(name, namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/configmaps/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1ConfigMap",
		Preload:      opts.Preload(),
	}
}

// CreateNamespacedConfigMap creates a config map.
func CreateNamespacedConfigMap(namespace string, body *models.V1ConfigMap, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPost,
			Path:         "/api/v1/namespaces/{namespace}/configmaps",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{"*/*"}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1ConfigMap",
		Preload:      opts.Preload(),
	}
}

// DeleteNamespacedConfigMap deletes a config map.
func DeleteNamespacedConfigMap(name, namespace string, body *models.V1DeleteOptions, opts apis.Options) *apis.Request {
	in := rest.Input{
		Method:       http.MethodDelete,
		Path:         "/api/v1/namespaces/{namespace}/configmaps/{name}",
		PathParams:   map[string]any{"name": name, "namespace": namespace},
		QueryParams:  apis.ListQuery(opts),
		HeaderParams: apis.Headers([]string{"*/*"}),
		AuthNames:    bearer,
		Timeout:      opts.Timeout,
	}
	if body != nil {
		in.Body = body
	}
	return &apis.Request{Input: in, ResponseType: "V1Status", Preload: opts.Preload()}
}

// ListNamespacedService lists services in one namespace.
func ListNamespacedService(namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/services",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "V1ServiceList",
		WatchItemType: "V1Service",
		Preload:       opts.Preload(),
	}
}

// ReadNamespacedService reads one service.
func ReadNamespacedService(name, namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/services/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "V1Service",
		Preload:      opts.Preload(),
	}
}

// ExecOptions selects what the exec'd process is wired to.
type ExecOptions struct {
	Command   []string
	Container string
	Stdin     bool
	Stdout    bool
	Stderr    bool
	TTY       bool
}

// ConnectGetNamespacedPodExec composes the upgradeable exec request for a
// pod. The command sequence stays a sequence here; the builder flattens it
// into repeated query pairs.
func ConnectGetNamespacedPodExec(name, namespace string, exec ExecOptions, opts apis.Options) *apis.Request {
	q := []rest.Pair{
		{Key: "command", Value: exec.Command},
	}
	if exec.Container != "" {
		q = append(q, rest.Pair{Key: "container", Value: exec.Container})
	}
	q = append(q,
		rest.Pair{Key: "stderr", Value: exec.Stderr},
		rest.Pair{Key: "stdin", Value: exec.Stdin},
		rest.Pair{Key: "stdout", Value: exec.Stdout},
		rest.Pair{Key: "tty", Value: exec.TTY},
	)

	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/api/v1/namespaces/{namespace}/pods/{name}/exec",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  q,
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "str",
		Preload:      false,
	}
}
