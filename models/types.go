// Package models carries the typed API objects the client materializes wire
// payloads into. The set is intentionally compact: the full upstream model
// zoo lives behind the same schema-table mechanism and is emitted by codegen,
// so every type here follows the exact shape the generator would produce.
package models

import (
	"time"

	"github.com/rakunlabs/kuba/schema"
)

type V1ObjectMeta struct {
	Name                       *string
	GenerateName               *string
	Namespace                  *string
	SelfLink                   *string
	UID                        *string
	ResourceVersion            *string
	Generation                 *int64
	CreationTimestamp          *time.Time
	DeletionTimestamp          *time.Time
	DeletionGracePeriodSeconds *int64
	Labels                     map[string]string
	Annotations                map[string]string
	OwnerReferences            []V1OwnerReference
	Finalizers                 []string
}

type V1OwnerReference struct {
	APIVersion         *string
	Kind               *string
	Name               *string
	UID                *string
	Controller         *bool
	BlockOwnerDeletion *bool
}

type V1ListMeta struct {
	Continue        *string
	ResourceVersion *string
	SelfLink        *string
}

type V1Status struct {
	APIVersion *string
	Kind       *string
	Metadata   *V1ListMeta
	Status     *string
	Message    *string
	Reason     *string
	Code       *int32
	Details    *V1StatusDetails
}

type V1StatusDetails struct {
	Name              *string
	Group             *string
	Kind              *string
	UID               *string
	Causes            []V1StatusCause
	RetryAfterSeconds *int32
}

type V1StatusCause struct {
	Field   *string
	Message *string
	Reason  *string
}

type V1DeleteOptions struct {
	APIVersion         *string
	Kind               *string
	DryRun             []string
	GracePeriodSeconds *int64
	OrphanDependents   *bool
	PropagationPolicy  *string
}

type V1Namespace struct {
	APIVersion *string
	Kind       *string
	Metadata   *V1ObjectMeta
	Spec       *V1NamespaceSpec
	Status     *V1NamespaceStatus
}

type V1NamespaceSpec struct {
	Finalizers []string
}

type V1NamespaceStatus struct {
	Phase *string
}

type V1NamespaceList struct {
	APIVersion *string
	Items      []V1Namespace
	Kind       *string
	Metadata   *V1ListMeta
}

type V1Pod struct {
	APIVersion *string
	Kind       *string
	Metadata   *V1ObjectMeta
	Spec       *V1PodSpec
	Status     *V1PodStatus
}

type V1PodSpec struct {
	ActiveDeadlineSeconds         *int64
	Containers                    []V1Container
	DNSPolicy                     *string
	HostNetwork                   *bool
	Hostname                      *string
	NodeName                      *string
	NodeSelector                  map[string]string
	RestartPolicy                 *string
	ServiceAccountName            *string
	TerminationGracePeriodSeconds *int64
}

type V1Container struct {
	Args            []string
	Command         []string
	Env             []V1EnvVar
	Image           *string
	ImagePullPolicy *string
	Name            *string
	Ports           []V1ContainerPort
	Stdin           *bool
	TTY             *bool
	WorkingDir      *string
}

type V1EnvVar struct {
	Name  *string
	Value *string
}

type V1ContainerPort struct {
	ContainerPort *int32
	HostIP        *string
	HostPort      *int32
	Name          *string
	Protocol      *string
}

type V1PodStatus struct {
	ContainerStatuses []V1ContainerStatus
	HostIP            *string
	Message           *string
	Phase             *string
	PodIP             *string
	QosClass          *string
	Reason            *string
	StartTime         *time.Time
}

type V1ContainerStatus struct {
	ContainerID  *string
	Image        *string
	ImageID      *string
	Name         *string
	Ready        *bool
	RestartCount *int32
}

type V1PodList struct {
	APIVersion *string
	Items      []V1Pod
	Kind       *string
	Metadata   *V1ListMeta
}

type V1ConfigMap struct {
	APIVersion *string
	BinaryData map[string]string
	Data       map[string]string
	Kind       *string
	Metadata   *V1ObjectMeta
}

type V1ConfigMapList struct {
	APIVersion *string
	Items      []V1ConfigMap
	Kind       *string
	Metadata   *V1ListMeta
}

type V1Service struct {
	APIVersion *string
	Kind       *string
	Metadata   *V1ObjectMeta
	Spec       *V1ServiceSpec
	Status     *V1ServiceStatus
}

type V1ServiceSpec struct {
	ClusterIP       *string
	ExternalName    *string
	Ports           []V1ServicePort
	Selector        map[string]string
	SessionAffinity *string
	Type            *string
}

type V1ServicePort struct {
	Name       *string
	NodePort   *int32
	Port       *int32
	Protocol   *string
	TargetPort any
}

type V1ServiceStatus struct {
	LoadBalancer *V1LoadBalancerStatus
}

type V1LoadBalancerStatus struct {
	Ingress []V1LoadBalancerIngress
}

type V1LoadBalancerIngress struct {
	Hostname *string
	IP       *string
}

type V1ServiceList struct {
	APIVersion *string
	Items      []V1Service
	Kind       *string
	Metadata   *V1ListMeta
}

type V1LabelSelector struct {
	MatchExpressions []V1LabelSelectorRequirement
	MatchLabels      map[string]string
}

type V1LabelSelectorRequirement struct {
	Key      *string
	Operator *string
	Values   []string
}

type V1PodTemplateSpec struct {
	Metadata *V1ObjectMeta
	Spec     *V1PodSpec
}

type AppsV1Deployment struct {
	APIVersion *string
	Kind       *string
	Metadata   *V1ObjectMeta
	Spec       *AppsV1DeploymentSpec
	Status     *AppsV1DeploymentStatus
}

type AppsV1DeploymentSpec struct {
	MinReadySeconds         *int32
	Paused                  *bool
	ProgressDeadlineSeconds *int32
	Replicas                *int32
	RevisionHistoryLimit    *int32
	Selector                *V1LabelSelector
	Template                *V1PodTemplateSpec
}

type AppsV1DeploymentStatus struct {
	AvailableReplicas   *int32
	ObservedGeneration  *int64
	ReadyReplicas       *int32
	Replicas            *int32
	UnavailableReplicas *int32
	UpdatedReplicas     *int32
}

type AppsV1DeploymentList struct {
	APIVersion *string
	Items      []AppsV1Deployment
	Kind       *string
	Metadata   *V1ListMeta
}

// Ptr returns a pointer to v. Handy for filling optional model attributes.
func Ptr[T any](v T) *T { return &v }

// date type is re-exported so callers building manifests by hand do not need
// a schema import for the one odd primitive.
type Date = schema.Date
