package stacks

import (
	"fmt"

	"github.com/martiops/stackplan/internal/plan"
)

// DependencyError reports a stack whose required upstream output is absent.
// With the fixed stage order this indicates a wiring bug, not a user error,
// so it never passes through as an empty reference.
type DependencyError struct {
	Stage string
	Needs string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s stack requires %s, which is not available", e.Stage, e.Needs)
}

// FreezeError reports a finalize call on a stack that is already finalized.
type FreezeError struct {
	Stack plan.Identity
}

func (e *FreezeError) Error() string {
	return fmt.Sprintf("stack %q is already finalized and cannot be patched again", e.Stack)
}

// BuildError wraps a stage failure with the name of the failing stage. Any
// stage failure aborts the rest of the pipeline.
type BuildError struct {
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
