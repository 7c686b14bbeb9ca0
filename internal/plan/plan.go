package plan

import "fmt"

// DuplicateIdentityError reports an attempt to declare the same resource
// identity twice within one run.
type DuplicateIdentityError struct {
	ID Identity
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("resource %q is already declared in the plan", e.ID)
}

// UnknownDependencyError reports a descriptor that references an identity no
// earlier descriptor declared. Because stacks build in dependency order,
// every reference must already exist when the dependent is added.
type UnknownDependencyError struct {
	ID      Identity
	Missing Identity
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("resource %q depends on %q, which is not declared in the plan", e.ID, e.Missing)
}

// Plan is the append-only set of descriptors produced by one run.
type Plan struct {
	project     string
	environment string
	descriptors []Descriptor
	index       map[Identity]int
}

// New creates an empty plan for one project/environment pair.
func New(project, environment string) *Plan {
	return &Plan{
		project:     project,
		environment: environment,
		index:       make(map[Identity]int),
	}
}

// Project returns the project name the plan was built for.
func (p *Plan) Project() string { return p.project }

// Environment returns the environment name the plan was built for.
func (p *Plan) Environment() string { return p.environment }

// Add appends a descriptor, rejecting duplicate identities and references to
// identities the plan does not contain yet.
func (p *Plan) Add(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("descriptor of kind %q has no identity", d.Kind)
	}
	if _, exists := p.index[d.ID]; exists {
		return &DuplicateIdentityError{ID: d.ID}
	}
	for _, dep := range d.DependsOn {
		if _, ok := p.index[dep]; !ok {
			return &UnknownDependencyError{ID: d.ID, Missing: dep}
		}
	}
	p.index[d.ID] = len(p.descriptors)
	p.descriptors = append(p.descriptors, d)
	return nil
}

// Contains reports whether an identity is declared in the plan.
func (p *Plan) Contains(id Identity) bool {
	_, ok := p.index[id]
	return ok
}

// Descriptors returns the descriptors in declaration order. The returned
// slice is a copy; the plan itself stays append-only.
func (p *Plan) Descriptors() []Descriptor {
	out := make([]Descriptor, len(p.descriptors))
	copy(out, p.descriptors)
	return out
}

// Len returns the number of declared descriptors.
func (p *Plan) Len() int { return len(p.descriptors) }

// CountByKind returns how many descriptors of one kind the plan holds.
func (p *Plan) CountByKind(kind Kind) int {
	n := 0
	for _, d := range p.descriptors {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
