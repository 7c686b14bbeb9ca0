package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/martiops/stackplan/internal/plan"
)

// FileSink stores plan documents under a local directory, one file per
// project and environment.
type FileSink struct {
	dir string
}

// NewFileSink creates a file sink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Submit implements the Sink interface.
func (s *FileSink) Submit(_ context.Context, doc *plan.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(doc.Key()))
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write plan %s: %w", path, err)
	}
	return nil
}

// Fetch implements the Sink interface.
func (s *FileSink) Fetch(_ context.Context, project, env string) (*plan.Document, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key(project, env)))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Project: project, Environment: env}
		}
		return nil, fmt.Errorf("failed to read plan %s: %w", path, err)
	}
	return plan.UnmarshalDocument(data)
}
