// Package config loads and validates the layered deployment configuration.
//
// Configuration is a single YAML document with a top-level project name and
// one branch per environment (dev, staging, prod). Each branch carries the
// per-category parameter records consumed by the stack builders: network,
// registry, application, database, alarms, cleanup and vectorStore.
//
// Resolution is strict: a missing environment, category or required field
// fails with a NotFoundError at resolution time, before any descriptor is
// built. Optional fields are limited to the alarm thresholds the binder
// substitutes defaults for.
package config
