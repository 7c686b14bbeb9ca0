// Package sink stores rendered plan documents and the run outputs they
// carry. The file sink serves local development; the S3 sink publishes to an
// object store bucket shared by the team.
package sink

import (
	"context"
	"fmt"

	"github.com/martiops/stackplan/internal/plan"
)

// Sink persists rendered plan documents keyed by project and environment.
type Sink interface {
	// Submit stores the document, replacing any previous plan for the same
	// project and environment.
	Submit(ctx context.Context, doc *plan.Document) error

	// Fetch returns the stored document for a project and environment.
	// Returns a NotFoundError when no plan has been submitted.
	Fetch(ctx context.Context, project, env string) (*plan.Document, error)
}

// NotFoundError indicates no plan document exists for the requested
// project and environment.
type NotFoundError struct {
	Project     string
	Environment string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no plan found for project %q environment %q", e.Project, e.Environment)
}

func key(project, env string) string {
	return fmt.Sprintf("%s/%s/plan.yaml", project, env)
}
