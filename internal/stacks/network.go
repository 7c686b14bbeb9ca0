package stacks

import (
	"github.com/martiops/stackplan/internal/alarm"
	"github.com/martiops/stackplan/internal/plan"
)

// Subnet tiers every network carries. Databases live in the private tier,
// the load balancer in the public one.
const (
	SubnetTierPublic   = "public"
	SubnetTierPrivate  = "private"
	SubnetTierIsolated = "isolated"
)

// NetworkParams declares the network topology.
type NetworkParams struct {
	MaxAZs      int      `yaml:"maxAzs"`
	NATGateways int      `yaml:"natGateways"`
	SubnetTiers []string `yaml:"subnetTiers"`
}

// NetworkStack builds the network foundation every other stack depends on.
type NetworkStack struct{}

// NewNetworkStack creates the network stack.
func NewNetworkStack() *NetworkStack {
	return &NetworkStack{}
}

// Name implements the Stage interface.
func (s *NetworkStack) Name() string { return "network" }

// Build implements the Stage interface.
func (s *NetworkStack) Build(ctx *Context) error {
	cfg, err := ctx.Config.Network(ctx.Environment)
	if err != nil {
		return err
	}

	id := plan.Network(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   id,
		Kind: plan.KindNetwork,
		Params: NetworkParams{
			MaxAZs:      cfg.MaxAZs,
			NATGateways: cfg.NATGateways,
			SubnetTiers: []string{SubnetTierPublic, SubnetTierPrivate, SubnetTierIsolated},
		},
	})
	if err != nil {
		return err
	}

	gateways := make([]plan.Identity, 0, cfg.NATGateways)
	for i := 0; i < cfg.NATGateways; i++ {
		gw := plan.NATGateway(ctx.Project, ctx.Environment, i)
		if err := ctx.Plan.Add(plan.Descriptor{
			ID:        gw,
			Kind:      plan.KindNATGateway,
			DependsOn: []plan.Identity{id},
		}); err != nil {
			return err
		}
		gateways = append(gateways, gw)
	}

	ctx.State.Network = &NetworkOutput{Network: id, NATGateways: gateways}
	return nil
}

// Alarms implements the AlarmSource interface. Environments without NAT
// gateways get no network alarms.
func (s *NetworkStack) Alarms(ctx *Context) []alarm.Rule {
	if ctx.State.Network == nil || len(ctx.State.Network.NATGateways) == 0 {
		return nil
	}
	return ctx.Binder.NetworkRules(ctx.State.Network.NATGateways)
}
