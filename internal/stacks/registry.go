package stacks

import (
	"fmt"

	"github.com/martiops/stackplan/internal/plan"
)

// LifecycleRule declares one image retention rule on the registry.
type LifecycleRule struct {
	Description   string   `yaml:"description"`
	Priority      int      `yaml:"priority"`
	MaxImageCount int      `yaml:"maxImageCount,omitempty"`
	MaxAgeDays    int      `yaml:"maxAgeDays,omitempty"`
	TagStatus     string   `yaml:"tagStatus,omitempty"`
	TagPrefixes   []string `yaml:"tagPrefixes,omitempty"`
}

// RegistryParams declares the container registry.
type RegistryParams struct {
	RepositoryName string          `yaml:"repositoryName"`
	MaxImageCount  int             `yaml:"maxImageCount"`
	ScanOnPush     bool            `yaml:"scanOnPush"`
	Lifecycle      []LifecycleRule `yaml:"lifecycle"`
}

// RegistryStack builds the container registry the service pulls images from.
type RegistryStack struct{}

// NewRegistryStack creates the registry stack.
func NewRegistryStack() *RegistryStack {
	return &RegistryStack{}
}

// Name implements the Stage interface.
func (s *RegistryStack) Name() string { return "registry" }

// Build implements the Stage interface.
func (s *RegistryStack) Build(ctx *Context) error {
	cfg, err := ctx.Config.Registry(ctx.Environment)
	if err != nil {
		return err
	}
	cleanup, err := ctx.Config.Cleanup(ctx.Environment)
	if err != nil {
		return err
	}

	id := plan.Registry(ctx.Project, ctx.Environment)
	err = ctx.Plan.Add(plan.Descriptor{
		ID:   id,
		Kind: plan.KindRegistry,
		Params: RegistryParams{
			RepositoryName: fmt.Sprintf("%s-%s", cfg.RepositoryName, ctx.Environment),
			MaxImageCount:  cfg.MaxImageCount,
			ScanOnPush:     cfg.EnableScan,
			Lifecycle: []LifecycleRule{
				{
					Description:   "Keep only recent tagged images",
					Priority:      1,
					MaxImageCount: cleanup.Registry.MaxTaggedImages,
					TagStatus:     "tagged",
				},
				{
					Description: "Remove untagged images",
					Priority:    2,
					MaxAgeDays:  cleanup.Registry.UntaggedRetentionDays,
					TagStatus:   "untagged",
				},
				{
					Description:   "Clean up by tag prefixes",
					Priority:      3,
					MaxImageCount: cleanup.Registry.MaxTaggedImages,
					TagPrefixes:   cleanup.Registry.TagPrefixes,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	ctx.State.Registry = &RegistryOutput{
		Repository:    id,
		RepositoryURI: plan.Ref(id, "repositoryUri"),
	}
	return nil
}
