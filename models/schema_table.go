package models

import "github.com/rakunlabs/kuba/schema"

// The schema table below is the compact stand-in for the generated model
// registry: one descriptor per type, one row per attribute as
// (attribute name, wire name, declared type). Attribute names are the only
// names used in-process; wire names only ever appear on the wire.

func init() {
	for _, d := range table {
		schema.Register(d)
	}
}

var table = []*schema.Descriptor{
	{
		TypeName: "V1ObjectMeta",
		New:      func() any { return &V1ObjectMeta{} },
		Attrs: []schema.Attr{
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "generate_name", Wire: "generateName", Type: "str"},
			{Name: "namespace", Wire: "namespace", Type: "str"},
			{Name: "self_link", Wire: "selfLink", Type: "str"},
			{Name: "uid", Wire: "uid", Type: "str"},
			{Name: "resource_version", Wire: "resourceVersion", Type: "str"},
			{Name: "generation", Wire: "generation", Type: "long"},
			{Name: "creation_timestamp", Wire: "creationTimestamp", Type: "datetime"},
			{Name: "deletion_timestamp", Wire: "deletionTimestamp", Type: "datetime"},
			{Name: "deletion_grace_period_seconds", Wire: "deletionGracePeriodSeconds", Type: "long"},
			{Name: "labels", Wire: "labels", Type: "dict(str, str)"},
			{Name: "annotations", Wire: "annotations", Type: "dict(str, str)"},
			{Name: "owner_references", Wire: "ownerReferences", Type: "list[V1OwnerReference]"},
			{Name: "finalizers", Wire: "finalizers", Type: "list[str]"},
		},
	},
	{
		TypeName: "V1OwnerReference",
		New:      func() any { return &V1OwnerReference{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "uid", Wire: "uid", Type: "str"},
			{Name: "controller", Wire: "controller", Type: "bool"},
			{Name: "block_owner_deletion", Wire: "blockOwnerDeletion", Type: "bool"},
		},
	},
	{
		TypeName: "V1ListMeta",
		New:      func() any { return &V1ListMeta{} },
		Attrs: []schema.Attr{
			{Name: "continue", Wire: "continue", Type: "str"},
			{Name: "resource_version", Wire: "resourceVersion", Type: "str"},
			{Name: "self_link", Wire: "selfLink", Type: "str"},
		},
	},
	{
		TypeName: "V1Status",
		New:      func() any { return &V1Status{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
			{Name: "status", Wire: "status", Type: "str"},
			{Name: "message", Wire: "message", Type: "str"},
			{Name: "reason", Wire: "reason", Type: "str"},
			{Name: "code", Wire: "code", Type: "int"},
			{Name: "details", Wire: "details", Type: "V1StatusDetails"},
		},
	},
	{
		TypeName: "V1StatusDetails",
		New:      func() any { return &V1StatusDetails{} },
		Attrs: []schema.Attr{
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "group", Wire: "group", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "uid", Wire: "uid", Type: "str"},
			{Name: "causes", Wire: "causes", Type: "list[V1StatusCause]"},
			{Name: "retry_after_seconds", Wire: "retryAfterSeconds", Type: "int"},
		},
	},
	{
		TypeName: "V1StatusCause",
		New:      func() any { return &V1StatusCause{} },
		Attrs: []schema.Attr{
			{Name: "field", Wire: "field", Type: "str"},
			{Name: "message", Wire: "message", Type: "str"},
			{Name: "reason", Wire: "reason", Type: "str"},
		},
	},
	{
		TypeName: "V1DeleteOptions",
		New:      func() any { return &V1DeleteOptions{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "dry_run", Wire: "dryRun", Type: "list[str]"},
			{Name: "grace_period_seconds", Wire: "gracePeriodSeconds", Type: "long"},
			{Name: "orphan_dependents", Wire: "orphanDependents", Type: "bool"},
			{Name: "propagation_policy", Wire: "propagationPolicy", Type: "str"},
		},
	},
	{
		TypeName: "V1Namespace",
		New:      func() any { return &V1Namespace{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
			{Name: "spec", Wire: "spec", Type: "V1NamespaceSpec"},
			{Name: "status", Wire: "status", Type: "V1NamespaceStatus"},
		},
	},
	{
		TypeName: "V1NamespaceSpec",
		New:      func() any { return &V1NamespaceSpec{} },
		Attrs: []schema.Attr{
			{Name: "finalizers", Wire: "finalizers", Type: "list[str]"},
		},
	},
	{
		TypeName: "V1NamespaceStatus",
		New:      func() any { return &V1NamespaceStatus{} },
		Attrs: []schema.Attr{
			{Name: "phase", Wire: "phase", Type: "str"},
		},
	},
	{
		TypeName: "V1NamespaceList",
		New:      func() any { return &V1NamespaceList{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "items", Wire: "items", Type: "list[V1Namespace]"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
		},
	},
	{
		TypeName: "V1Pod",
		New:      func() any { return &V1Pod{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
			{Name: "spec", Wire: "spec", Type: "V1PodSpec"},
			{Name: "status", Wire: "status", Type: "V1PodStatus"},
		},
	},
	{
		TypeName: "V1PodSpec",
		New:      func() any { return &V1PodSpec{} },
		Attrs: []schema.Attr{
			{Name: "active_deadline_seconds", Wire: "activeDeadlineSeconds", Type: "long"},
			{Name: "containers", Wire: "containers", Type: "list[V1Container]"},
			{Name: "dns_policy", Wire: "dnsPolicy", Type: "str"},
			{Name: "host_network", Wire: "hostNetwork", Type: "bool"},
			{Name: "hostname", Wire: "hostname", Type: "str"},
			{Name: "node_name", Wire: "nodeName", Type: "str"},
			{Name: "node_selector", Wire: "nodeSelector", Type: "dict(str, str)"},
			{Name: "restart_policy", Wire: "restartPolicy", Type: "str"},
			{Name: "service_account_name", Wire: "serviceAccountName", Type: "str"},
			{Name: "termination_grace_period_seconds", Wire: "terminationGracePeriodSeconds", Type: "long"},
		},
	},
	{
		TypeName: "V1Container",
		New:      func() any { return &V1Container{} },
		Attrs: []schema.Attr{
			{Name: "args", Wire: "args", Type: "list[str]"},
			{Name: "command", Wire: "command", Type: "list[str]"},
			{Name: "env", Wire: "env", Type: "list[V1EnvVar]"},
			{Name: "image", Wire: "image", Type: "str"},
			{Name: "image_pull_policy", Wire: "imagePullPolicy", Type: "str"},
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "ports", Wire: "ports", Type: "list[V1ContainerPort]"},
			{Name: "stdin", Wire: "stdin", Type: "bool"},
			{Name: "tty", Wire: "tty", Type: "bool"},
			{Name: "working_dir", Wire: "workingDir", Type: "str"},
		},
	},
	{
		TypeName: "V1EnvVar",
		New:      func() any { return &V1EnvVar{} },
		Attrs: []schema.Attr{
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "value", Wire: "value", Type: "str"},
		},
	},
	{
		TypeName: "V1ContainerPort",
		New:      func() any { return &V1ContainerPort{} },
		Attrs: []schema.Attr{
			{Name: "container_port", Wire: "containerPort", Type: "int"},
			{Name: "host_ip", Wire: "hostIP", Type: "str"},
			{Name: "host_port", Wire: "hostPort", Type: "int"},
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "protocol", Wire: "protocol", Type: "str"},
		},
	},
	{
		TypeName: "V1PodStatus",
		New:      func() any { return &V1PodStatus{} },
		Attrs: []schema.Attr{
			{Name: "container_statuses", Wire: "containerStatuses", Type: "list[V1ContainerStatus]"},
			{Name: "host_ip", Wire: "hostIP", Type: "str"},
			{Name: "message", Wire: "message", Type: "str"},
			{Name: "phase", Wire: "phase", Type: "str"},
			{Name: "pod_ip", Wire: "podIP", Type: "str"},
			{Name: "qos_class", Wire: "qosClass", Type: "str"},
			{Name: "reason", Wire: "reason", Type: "str"},
			{Name: "start_time", Wire: "startTime", Type: "datetime"},
		},
	},
	{
		TypeName: "V1ContainerStatus",
		New:      func() any { return &V1ContainerStatus{} },
		Attrs: []schema.Attr{
			{Name: "container_id", Wire: "containerID", Type: "str"},
			{Name: "image", Wire: "image", Type: "str"},
			{Name: "image_id", Wire: "imageID", Type: "str"},
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "ready", Wire: "ready", Type: "bool"},
			{Name: "restart_count", Wire: "restartCount", Type: "int"},
		},
	},
	{
		TypeName: "V1PodList",
		New:      func() any { return &V1PodList{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "items", Wire: "items", Type: "list[V1Pod]"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
		},
	},
	{
		TypeName: "V1ConfigMap",
		New:      func() any { return &V1ConfigMap{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "binary_data", Wire: "binaryData", Type: "dict(str, str)"},
			{Name: "data", Wire: "data", Type: "dict(str, str)"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
		},
	},
	{
		TypeName: "V1ConfigMapList",
		New:      func() any { return &V1ConfigMapList{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "items", Wire: "items", Type: "list[V1ConfigMap]"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
		},
	},
	{
		TypeName: "V1Service",
		New:      func() any { return &V1Service{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
			{Name: "spec", Wire: "spec", Type: "V1ServiceSpec"},
			{Name: "status", Wire: "status", Type: "V1ServiceStatus"},
		},
	},
	{
		TypeName: "V1ServiceSpec",
		New:      func() any { return &V1ServiceSpec{} },
		Attrs: []schema.Attr{
			{Name: "cluster_ip", Wire: "clusterIP", Type: "str"},
			{Name: "external_name", Wire: "externalName", Type: "str"},
			{Name: "ports", Wire: "ports", Type: "list[V1ServicePort]"},
			{Name: "selector", Wire: "selector", Type: "dict(str, str)"},
			{Name: "session_affinity", Wire: "sessionAffinity", Type: "str"},
			{Name: "type", Wire: "type", Type: "str"},
		},
	},
	{
		TypeName: "V1ServicePort",
		New:      func() any { return &V1ServicePort{} },
		Attrs: []schema.Attr{
			{Name: "name", Wire: "name", Type: "str"},
			{Name: "node_port", Wire: "nodePort", Type: "int"},
			{Name: "port", Wire: "port", Type: "int"},
			{Name: "protocol", Wire: "protocol", Type: "str"},
			{Name: "target_port", Wire: "targetPort", Type: "object"},
		},
	},
	{
		TypeName: "V1ServiceStatus",
		New:      func() any { return &V1ServiceStatus{} },
		Attrs: []schema.Attr{
			{Name: "load_balancer", Wire: "loadBalancer", Type: "V1LoadBalancerStatus"},
		},
	},
	{
		TypeName: "V1LoadBalancerStatus",
		New:      func() any { return &V1LoadBalancerStatus{} },
		Attrs: []schema.Attr{
			{Name: "ingress", Wire: "ingress", Type: "list[V1LoadBalancerIngress]"},
		},
	},
	{
		TypeName: "V1LoadBalancerIngress",
		New:      func() any { return &V1LoadBalancerIngress{} },
		Attrs: []schema.Attr{
			{Name: "hostname", Wire: "hostname", Type: "str"},
			{Name: "ip", Wire: "ip", Type: "str"},
		},
	},
	{
		TypeName: "V1ServiceList",
		New:      func() any { return &V1ServiceList{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "items", Wire: "items", Type: "list[V1Service]"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
		},
	},
	{
		TypeName: "V1LabelSelector",
		New:      func() any { return &V1LabelSelector{} },
		Attrs: []schema.Attr{
			{Name: "match_expressions", Wire: "matchExpressions", Type: "list[V1LabelSelectorRequirement]"},
			{Name: "match_labels", Wire: "matchLabels", Type: "dict(str, str)"},
		},
	},
	{
		TypeName: "V1LabelSelectorRequirement",
		New:      func() any { return &V1LabelSelectorRequirement{} },
		Attrs: []schema.Attr{
			{Name: "key", Wire: "key", Type: "str"},
			{Name: "operator", Wire: "operator", Type: "str"},
			{Name: "values", Wire: "values", Type: "list[str]"},
		},
	},
	{
		TypeName: "V1PodTemplateSpec",
		New:      func() any { return &V1PodTemplateSpec{} },
		Attrs: []schema.Attr{
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
			{Name: "spec", Wire: "spec", Type: "V1PodSpec"},
		},
	},
	{
		TypeName: "AppsV1Deployment",
		New:      func() any { return &AppsV1Deployment{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ObjectMeta"},
			{Name: "spec", Wire: "spec", Type: "AppsV1DeploymentSpec"},
			{Name: "status", Wire: "status", Type: "AppsV1DeploymentStatus"},
		},
	},
	{
		TypeName: "AppsV1DeploymentSpec",
		New:      func() any { return &AppsV1DeploymentSpec{} },
		Attrs: []schema.Attr{
			{Name: "min_ready_seconds", Wire: "minReadySeconds", Type: "int"},
			{Name: "paused", Wire: "paused", Type: "bool"},
			{Name: "progress_deadline_seconds", Wire: "progressDeadlineSeconds", Type: "int"},
			{Name: "replicas", Wire: "replicas", Type: "int"},
			{Name: "revision_history_limit", Wire: "revisionHistoryLimit", Type: "int"},
			{Name: "selector", Wire: "selector", Type: "V1LabelSelector"},
			{Name: "template", Wire: "template", Type: "V1PodTemplateSpec"},
		},
	},
	{
		TypeName: "AppsV1DeploymentStatus",
		New:      func() any { return &AppsV1DeploymentStatus{} },
		Attrs: []schema.Attr{
			{Name: "available_replicas", Wire: "availableReplicas", Type: "int"},
			{Name: "observed_generation", Wire: "observedGeneration", Type: "long"},
			{Name: "ready_replicas", Wire: "readyReplicas", Type: "int"},
			{Name: "replicas", Wire: "replicas", Type: "int"},
			{Name: "unavailable_replicas", Wire: "unavailableReplicas", Type: "int"},
			{Name: "updated_replicas", Wire: "updatedReplicas", Type: "int"},
		},
	},
	{
		TypeName: "AppsV1DeploymentList",
		New:      func() any { return &AppsV1DeploymentList{} },
		Attrs: []schema.Attr{
			{Name: "api_version", Wire: "apiVersion", Type: "str"},
			{Name: "items", Wire: "items", Type: "list[AppsV1Deployment]"},
			{Name: "kind", Wire: "kind", Type: "str"},
			{Name: "metadata", Wire: "metadata", Type: "V1ListMeta"},
		},
	},
}
