package stacks

import (
	"fmt"

	"github.com/martiops/stackplan/internal/plan"
)

// Endpoint is a host/port pair exposed by a stack output. The host is
// usually a late-bound attribute reference resolved by the provisioning
// sink.
type Endpoint struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// NetworkOutput is what the network stack exposes to its dependents.
type NetworkOutput struct {
	Network     plan.Identity
	NATGateways []plan.Identity
}

// RegistryOutput is what the registry stack exposes.
type RegistryOutput struct {
	Repository    plan.Identity
	RepositoryURI string
}

// ServiceOutput is what the service stack exposes before finalize. It
// deliberately carries no database connection details; those only exist on
// FinalizedServiceOutput, so unfinalized service configuration cannot be
// consumed downstream by accident.
type ServiceOutput struct {
	Service plan.Identity
	// SecurityGroup is the service's single application security group,
	// consumed by the database stack for ingress rules.
	SecurityGroup   plan.Identity
	LoadBalancerDNS string
}

// FinalizedServiceOutput is the service output after database connection
// details have been patched in.
type FinalizedServiceOutput struct {
	ServiceOutput
	Relational     Endpoint
	Cache          Endpoint
	CredentialsRef string
}

// DatabaseOutput is what the database stack exposes.
type DatabaseOutput struct {
	Relational         plan.Identity
	RelationalEndpoint Endpoint
	CredentialsSecret  string
	Cache              plan.Identity
	CacheEndpoint      Endpoint
}

// ScrapingOutput is what the scraping stack exposes.
type ScrapingOutput struct {
	Queue      plan.Identity
	DeadLetter plan.Identity
	Function   plan.Identity
	API        plan.Identity
}

// UploadOutput is what the upload stack exposes.
type UploadOutput struct {
	Bucket   plan.Identity
	Function plan.Identity
}

// State holds the outputs of completed stacks. It is owned by the
// orchestrator and append-only: each field is written exactly once by the
// stack that produces it, the finalize patch being the single sanctioned
// second write path.
type State struct {
	Network          *NetworkOutput
	Registry         *RegistryOutput
	Service          *ServiceOutput
	Database         *DatabaseOutput
	FinalizedService *FinalizedServiceOutput
	Scraping         *ScrapingOutput
	Upload           *UploadOutput
}

// NewState creates an empty run state.
func NewState() *State {
	return &State{}
}

// OutputValues returns the operator-facing outputs of the run, keyed by
// name. Only outputs of completed stacks appear.
func (s *State) OutputValues() map[string]string {
	out := make(map[string]string)
	if s.Registry != nil {
		out["registryUri"] = s.Registry.RepositoryURI
	}
	if s.Database != nil {
		out["relationalEndpoint"] = s.Database.RelationalEndpoint.Host
		out["cacheEndpoint"] = s.Database.CacheEndpoint.String()
	}
	if s.Service != nil {
		out["serviceUrl"] = fmt.Sprintf("http://%s", s.Service.LoadBalancerDNS)
	}
	if s.Scraping != nil {
		out["scrapingFunction"] = string(s.Scraping.Function)
	}
	if s.Upload != nil {
		out["uploadFunction"] = string(s.Upload.Function)
		out["uploadBucket"] = string(s.Upload.Bucket)
	}
	return out
}
