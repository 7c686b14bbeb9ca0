package handlers

import (
	"context"
	"fmt"

	"github.com/martiops/stackplan/internal/envfile"
	"github.com/martiops/stackplan/internal/plan"
	"github.com/martiops/stackplan/internal/retry"
	"github.com/martiops/stackplan/internal/sink"
)

// DeployOptions configures the deploy handler.
type DeployOptions struct {
	ConfigPath  string
	Environment string
	Project     string
	EnvFile     string
	LogLevel    string
}

// publisher is the subset of the S3 sink deploy uses.
type publisher interface {
	EnsureBucket(ctx context.Context) error
	Submit(ctx context.Context, doc *plan.Document) error
}

// Factory function variables for deploy - can be replaced in tests.
var (
	// loadSettings reads publish settings from the environment.
	loadSettings = envfile.LoadSettings

	// newPublisher creates the object store sink.
	newPublisher = func(ctx context.Context, s envfile.Settings) (publisher, error) {
		return sink.NewS3Sink(ctx, s.S3Endpoint, s.Region, s.AccessKey, s.SecretKey, s.Bucket)
	}
)

// Deploy renders the provisioning plan and publishes it to the shared plan
// bucket, creating the bucket if needed.
func Deploy(ctx context.Context, opts DeployOptions) error {
	settings, err := loadSettings(opts.EnvFile)
	if err != nil {
		return err
	}
	if !settings.Credentialed() {
		return fmt.Errorf("missing object store credentials: set STACKPLAN_S3_ACCESS_KEY and STACKPLAN_S3_SECRET_KEY")
	}

	_, doc, err := buildPlan(ctx, opts.ConfigPath, opts.Environment, opts.Project, opts.LogLevel)
	if err != nil {
		return err
	}

	pub, err := newPublisher(ctx, settings)
	if err != nil {
		return err
	}
	if err := pub.EnsureBucket(ctx); err != nil {
		return err
	}
	err = retry.Do(ctx, func() error {
		return pub.Submit(ctx, doc)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Plan published for %s/%s\n", doc.Project, doc.Environment)
	fmt.Println()
	fmt.Printf("  Bucket: %s\n", settings.Bucket)
	fmt.Printf("  Key:    %s\n", doc.Key())
	fmt.Println()
	return nil
}
