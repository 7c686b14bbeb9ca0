// Package plan holds the declarative resource model produced by the stack
// builders.
//
// A Plan is an append-only collection of Descriptors, each a data-only
// declaration of one resource to be provisioned: a deterministic identity,
// a kind, typed parameters and the identities it depends on. The plan never
// talks to a provider; it is rendered into a Document and handed to a
// provisioning sink.
package plan
