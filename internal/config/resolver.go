package config

import "sort"

// Resolver answers typed per-category configuration lookups against a loaded
// tree. It is constructed once at process start and passed into every stack
// builder; there is no ambient configuration lookup anywhere else.
type Resolver struct {
	tree *Tree
}

// NewResolver wraps a loaded configuration tree.
func NewResolver(tree *Tree) *Resolver {
	return &Resolver{tree: tree}
}

// ProjectName returns the top-level project name.
func (r *Resolver) ProjectName() (string, error) {
	if r.tree == nil || r.tree.ProjectName == "" {
		return "", ErrMissingProjectName
	}
	return r.tree.ProjectName, nil
}

// Environments returns the configured environment names, sorted.
func (r *Resolver) Environments() []string {
	if r.tree == nil {
		return nil
	}
	names := make([]string, 0, len(r.tree.Environments))
	for name := range r.tree.Environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// env returns the configuration branch for one environment.
func (r *Resolver) env(name string) (*EnvConfig, error) {
	if r.tree == nil {
		return nil, &NotFoundError{Environment: name}
	}
	branch, ok := r.tree.Environments[name]
	if !ok {
		return nil, &NotFoundError{Environment: name}
	}
	return &branch, nil
}

// Network resolves the network category for an environment.
func (r *Resolver) Network(env string) (NetworkConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return NetworkConfig{}, err
	}
	if branch.Network == nil {
		return NetworkConfig{}, &NotFoundError{Environment: env, Category: "network"}
	}
	if err := branch.Network.validate(env); err != nil {
		return NetworkConfig{}, err
	}
	return *branch.Network, nil
}

// Registry resolves the registry category for an environment.
func (r *Resolver) Registry(env string) (RegistryConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return RegistryConfig{}, err
	}
	if branch.Registry == nil {
		return RegistryConfig{}, &NotFoundError{Environment: env, Category: "registry"}
	}
	if err := branch.Registry.validate(env); err != nil {
		return RegistryConfig{}, err
	}
	return *branch.Registry, nil
}

// Application resolves the application category for an environment.
func (r *Resolver) Application(env string) (ApplicationConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return ApplicationConfig{}, err
	}
	if branch.Application == nil {
		return ApplicationConfig{}, &NotFoundError{Environment: env, Category: "application"}
	}
	if err := branch.Application.validate(env); err != nil {
		return ApplicationConfig{}, err
	}
	return *branch.Application, nil
}

// Database resolves the database category for an environment.
func (r *Resolver) Database(env string) (DatabaseConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return DatabaseConfig{}, err
	}
	if branch.Database == nil {
		return DatabaseConfig{}, &NotFoundError{Environment: env, Category: "database"}
	}
	if err := branch.Database.validate(env); err != nil {
		return DatabaseConfig{}, err
	}
	return *branch.Database, nil
}

// Alarms resolves the alarms category for an environment.
func (r *Resolver) Alarms(env string) (AlarmConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return AlarmConfig{}, err
	}
	if branch.Alarms == nil {
		return AlarmConfig{}, &NotFoundError{Environment: env, Category: "alarms"}
	}
	if err := branch.Alarms.validate(env); err != nil {
		return AlarmConfig{}, err
	}
	return *branch.Alarms, nil
}

// Cleanup resolves the cleanup category for an environment.
func (r *Resolver) Cleanup(env string) (CleanupConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return CleanupConfig{}, err
	}
	if branch.Cleanup == nil {
		return CleanupConfig{}, &NotFoundError{Environment: env, Category: "cleanup"}
	}
	if err := branch.Cleanup.validate(env); err != nil {
		return CleanupConfig{}, err
	}
	return *branch.Cleanup, nil
}

// VectorStore resolves the vector store credentials for an environment.
func (r *Resolver) VectorStore(env string) (VectorStoreConfig, error) {
	branch, err := r.env(env)
	if err != nil {
		return VectorStoreConfig{}, err
	}
	if branch.VectorStore == nil {
		return VectorStoreConfig{}, &NotFoundError{Environment: env, Category: "vectorStore"}
	}
	if err := branch.VectorStore.validate(env); err != nil {
		return VectorStoreConfig{}, err
	}
	return *branch.VectorStore, nil
}
