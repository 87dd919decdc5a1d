// Package appsv1 is the generated-style operation surface for the apps/v1
// API group.
package appsv1

import (
	"net/http"

	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/models"
	"github.com/rakunlabs/kuba/rest"
)

var bearer = []string{config.AuthBearerToken}

// ListNamespacedDeployment lists deployments in one namespace.
func ListNamespacedDeployment(namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/apis/apps/v1/namespaces/{namespace}/deployments",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType:  "AppsV1DeploymentList",
		WatchItemType: "AppsV1Deployment",
		Preload:       opts.Preload(),
	}
}

// ReadNamespacedDeployment reads one deployment.
func ReadNamespacedDeployment(name, namespace string, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodGet,
			Path:         "/apis/apps/v1/namespaces/{namespace}/deployments/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers(nil),
			AuthNames:    bearer,
			Timeout:      opts.Timeout,
		},
		ResponseType: "AppsV1Deployment",
		Preload:      opts.Preload(),
	}
}

// CreateNamespacedDeployment creates a deployment.
func CreateNamespacedDeployment(namespace string, body *models.AppsV1Deployment, opts apis.Options) *apis.Request {
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPost,
			Path:         "/apis/apps/v1/namespaces/{namespace}/deployments",
			PathParams:   map[string]any{"namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{"*/*"}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "AppsV1Deployment",
		Preload:      opts.Preload(),
	}
}

// DeleteNamespacedDeployment deletes a deployment. body is optional delete
// options.
func DeleteNamespacedDeployment(name, namespace string, body *models.V1DeleteOptions, opts apis.Options) *apis.Request {
	in := rest.Input{
		Method:       http.MethodDelete,
		Path:         "/apis/apps/v1/namespaces/{namespace}/deployments/{name}",
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

// PatchNamespacedDeployment patches a deployment. patchType selects the
// patch media type; empty means strategic merge.
func PatchNamespacedDeployment(name, namespace string, body any, patchType string, opts apis.Options) *apis.Request {
	if patchType == "" {
		patchType = apis.PatchStrategicMerge
	}
	return &apis.Request{
		Input: rest.Input{
			Method:       http.MethodPatch,
			Path:         "/apis/apps/v1/namespaces/{namespace}/deployments/{name}",
			PathParams:   map[string]any{"name": name, "namespace": namespace},
			QueryParams:  apis.ListQuery(opts),
			HeaderParams: apis.Headers([]string{patchType}),
			AuthNames:    bearer,
			Body:         body,
			Timeout:      opts.Timeout,
		},
		ResponseType: "AppsV1Deployment",
		Preload:      opts.Preload(),
	}
}
