// Package stacks builds the deployment plan stack by stack.
//
// Stacks run in a fixed dependency order driven by the orchestrator:
// network, registry, service, database, service finalize, scraping, upload.
// Each stack resolves its own configuration category, validates that the
// upstream outputs it needs are present, appends descriptors to the shared
// plan and records its output in the shared state. The service and database
// stacks have a circular logical relationship (the service needs database
// endpoints, the database needs the service's security group); it is broken
// by building the service first and patching database connection details in
// through an explicit finalize stage.
package stacks
