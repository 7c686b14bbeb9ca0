package plan

import "fmt"

// Kind identifies the type of resource a descriptor declares.
type Kind string

const (
	KindNetwork            Kind = "network"
	KindNATGateway         Kind = "nat-gateway"
	KindSecurityGroup      Kind = "security-group"
	KindRegistry           Kind = "registry"
	KindService            Kind = "service"
	KindRelationalDatabase Kind = "relational-database"
	KindCacheCluster       Kind = "cache-cluster"
	KindFunction           Kind = "function"
	KindQueue              Kind = "queue"
	KindBucket             Kind = "bucket"
	KindAPI                Kind = "api"
	KindAPIRoute           Kind = "api-route"
	KindTopic              Kind = "topic"
	KindAlarm              Kind = "alarm"
)

// Identity uniquely names a resource within one provisioning run.
// Identities are derived deterministically from project, environment and
// resource role, so repeated runs over the same configuration produce the
// same plan.
type Identity string

// Ref renders a late-bound attribute reference for a resource. The
// provisioning sink substitutes the real value (an endpoint address, a
// repository URI) once the resource exists.
func Ref(id Identity, attribute string) string {
	return fmt.Sprintf("${%s.%s}", id, attribute)
}

// Descriptor is a data-only declaration of a resource to be provisioned.
// Descriptors are immutable once added to a plan; the single sanctioned
// exception is the service finalize patch, which flows through the pointer
// the service stack retains to its own parameters.
type Descriptor struct {
	ID        Identity   `yaml:"id"`
	Kind      Kind       `yaml:"kind"`
	Params    any        `yaml:"params,omitempty"`
	DependsOn []Identity `yaml:"dependsOn,omitempty"`
}
