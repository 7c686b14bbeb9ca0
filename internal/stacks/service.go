package stacks

import (
	"fmt"
	"strconv"

	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/config"
	"github.com/martiops/stackplan/internal/plan"
)

// SecurityGroupIngress declares one ingress rule on a security group.
type SecurityGroupIngress struct {
	FromSecurityGroup plan.Identity `yaml:"fromSecurityGroup,omitempty"`
	FromAnyIPv4       bool          `yaml:"fromAnyIpv4,omitempty"`
	Port              int           `yaml:"port"`
	Description       string        `yaml:"description"`
}

// SecurityGroupParams declares a security group and its ingress rules.
type SecurityGroupParams struct {
	Description string                 `yaml:"description"`
	AllowAllOut bool                   `yaml:"allowAllOutbound"`
	Ingress     []SecurityGroupIngress `yaml:"ingress,omitempty"`
}

// ServiceParams declares the load-balanced container service. The service
// stack keeps a pointer to its params so the finalize stage can patch in
// database connection details after the database stack completes.
type ServiceParams struct {
	ClusterName        string                   `yaml:"clusterName"`
	ContainerInsights  bool                     `yaml:"containerInsights"`
	Image              string                   `yaml:"image"`
	TaskCPU            int                      `yaml:"taskCpu"`
	TaskMemory         int                      `yaml:"taskMemory"`
	ContainerPort      int                      `yaml:"containerPort"`
	DesiredCount       int                      `yaml:"desiredCount"`
	MinTasks           int                      `yaml:"minTasks"`
	MaxTasks           int                      `yaml:"maxTasks"`
	SubnetTier         string                   `yaml:"subnetTier"`
	PublicLoadBalancer bool                     `yaml:"publicLoadBalancer"`
	HealthCheck        config.HealthCheckConfig `yaml:"healthCheck"`
	Scaling            config.ScalingConfig     `yaml:"scaling"`
	Environment        map[string]string        `yaml:"environment"`
	Secrets            map[string]string        `yaml:"secrets,omitempty"`
}

// ServiceStack builds the compute service. It is built before the database
// stack so its security group can feed the database ingress rules, and
// finalized afterwards with the database connection details.
type ServiceStack struct {
	params    *ServiceParams
	finalized bool
}

// NewServiceStack creates the service stack.
func NewServiceStack() *ServiceStack {
	return &ServiceStack{}
}

// Name implements the Stage interface.
func (s *ServiceStack) Name() string { return "service" }

// Build implements the Stage interface.
func (s *ServiceStack) Build(ctx *Context) error {
	if ctx.State.Network == nil {
		return &DependencyError{Stage: s.Name(), Needs: "network output"}
	}
	if ctx.State.Registry == nil {
		return &DependencyError{Stage: s.Name(), Needs: "registry output"}
	}

	cfg, err := ctx.Config.Application(ctx.Environment)
	if err != nil {
		return err
	}

	network := ctx.State.Network.Network
	sg := plan.AppSecurityGroup(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   sg,
		Kind: plan.KindSecurityGroup,
		Params: SecurityGroupParams{
			Description: "Security group for the application service",
			AllowAllOut: true,
			Ingress: []SecurityGroupIngress{{
				FromAnyIPv4: true,
				Port:        cfg.ContainerPort,
				Description: "Allow inbound HTTP traffic",
			}},
		},
		DependsOn: []plan.Identity{network},
	})
	if err != nil {
		return err
	}

	id := plan.Service(ctx.Project, ctx.Environment)
	s.params = &ServiceParams{
		ClusterName:        fmt.Sprintf("%s-%s-cluster", ctx.Project, ctx.Environment),
		ContainerInsights:  cfg.ContainerInsights,
		Image:              fmt.Sprintf("%s:latest", ctx.State.Registry.RepositoryURI),
		TaskCPU:            cfg.TaskCPU,
		TaskMemory:         cfg.TaskMemory,
		ContainerPort:      cfg.ContainerPort,
		DesiredCount:       cfg.DesiredCount,
		MinTasks:           cfg.MinTasks,
		MaxTasks:           cfg.MaxTasks,
		SubnetTier:         SubnetTierPrivate,
		PublicLoadBalancer: true,
		HealthCheck:        cfg.HealthCheck,
		Scaling:            cfg.Scaling,
		Environment: map[string]string{
			"ENV":     ctx.Environment,
			"DB_NAME": cfg.Database.Name,
		},
	}
	err = ctx.Plan.Add(plan.Descriptor{
		ID:        id,
		Kind:      plan.KindService,
		Params:    s.params,
		DependsOn: []plan.Identity{network, sg, ctx.State.Registry.Repository},
	})
	if err != nil {
		return err
	}

	ctx.State.Service = &ServiceOutput{
		Service:         id,
		SecurityGroup:   sg,
		LoadBalancerDNS: plan.Ref(id, "loadBalancerDnsName"),
	}
	return nil
}

// Alarms implements the AlarmSource interface.
func (s *ServiceStack) Alarms(ctx *Context) []alarm.Rule {
	if ctx.State.Service == nil {
		return nil
	}
	return ctx.Binder.ServiceRules(ctx.State.Service.Service)
}

// Finalize patches database connection details into the service after the
// database stack has built. It is the single sanctioned mutation of a
// completed stack; a second call fails with a FreezeError.
func (s *ServiceStack) Finalize(ctx *Context) error {
	if ctx.State.Service == nil {
		return &DependencyError{Stage: "service-finalize", Needs: "service output"}
	}
	if ctx.State.Database == nil {
		return &DependencyError{Stage: "service-finalize", Needs: "database output"}
	}
	if s.finalized {
		return &FreezeError{Stack: ctx.State.Service.Service}
	}

	db := ctx.State.Database
	s.params.Environment["DB_HOST"] = db.RelationalEndpoint.Host
	s.params.Environment["DB_PORT"] = strconv.Itoa(db.RelationalEndpoint.Port)
	s.params.Environment["REDIS_ENDPOINT"] = db.CacheEndpoint.Host
	s.params.Environment["REDIS_PORT"] = strconv.Itoa(db.CacheEndpoint.Port)
	s.params.Secrets = map[string]string{
		"DB_CREDENTIALS": db.CredentialsSecret,
	}
	s.finalized = true

	ctx.State.FinalizedService = &FinalizedServiceOutput{
		ServiceOutput:  *ctx.State.Service,
		Relational:     db.RelationalEndpoint,
		Cache:          db.CacheEndpoint,
		CredentialsRef: db.CredentialsSecret,
	}
	return nil
}

// FinalizeStage runs the service finalize as its own pipeline stage, after
// the database stack.
type FinalizeStage struct {
	service *ServiceStack
}

// NewFinalizeStage creates the finalize stage for a service stack instance.
func NewFinalizeStage(service *ServiceStack) *FinalizeStage {
	return &FinalizeStage{service: service}
}

// Name implements the Stage interface.
func (s *FinalizeStage) Name() string { return "service-finalize" }

// Build implements the Stage interface.
func (s *FinalizeStage) Build(ctx *Context) error {
	return s.service.Finalize(ctx)
}
