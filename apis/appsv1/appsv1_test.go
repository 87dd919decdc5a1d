package appsv1

import (
	"strings"
	"testing"

	"github.com/rakunlabs/kuba/apis"
	"github.com/rakunlabs/kuba/config"
	"github.com/rakunlabs/kuba/models"
	"github.com/rakunlabs/kuba/rest"
)

func testConfig() *config.Configuration {
	cfg := config.New()
	cfg.Host = "myhost"
	cfg.UserAgent = ""
	cfg.SetAPIKey("authorization", "Bearer token")
	return cfg
}

func TestListNamespacedDeploymentComposesRequest(t *testing.T) {
	req := ListNamespacedDeployment("default", apis.Options{})

	if req.ResponseType != "AppsV1DeploymentList" || req.WatchItemType != "AppsV1Deployment" {
		t.Fatalf("response types = %q/%q", req.ResponseType, req.WatchItemType)
	}

	spec, err := rest.Build(testConfig(), req.Input)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if want := "myhost/apis/apps/v1/namespaces/default/deployments"; spec.URL != want {
		t.Fatalf("url = %q, want %q", spec.URL, want)
	}
}

func TestCreateNamespacedDeploymentSerializesBody(t *testing.T) {
	dep := &models.AppsV1Deployment{
		APIVersion: models.Ptr("apps/v1"),
		Kind:       models.Ptr("Deployment"),
		Metadata:   &models.V1ObjectMeta{Name: models.Ptr("web")},
		Spec: &models.AppsV1DeploymentSpec{
			Replicas: models.Ptr(int32(3)),
			Selector: &models.V1LabelSelector{MatchLabels: map[string]string{"app": "web"}},
			Template: &models.V1PodTemplateSpec{
				Metadata: &models.V1ObjectMeta{Labels: map[string]string{"app": "web"}},
				Spec: &models.V1PodSpec{
					Containers: []models.V1Container{
						{Name: models.Ptr("web"), Image: models.Ptr("nginx:1.25")},
					},
				},
			},
		},
	}

	spec, err := rest.Build(testConfig(), CreateNamespacedDeployment("default", dep, apis.Options{}).Input)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	body := string(spec.Body)
	for _, needle := range []string{`"apiVersion":"apps/v1"`, `"replicas":3`, `"matchLabels":{"app":"web"}`} {
		if !strings.Contains(body, needle) {
			t.Errorf("body %q missing %q", body, needle)
		}
	}
}
