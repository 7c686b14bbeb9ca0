package config

import (
	"errors"
	"fmt"
)

// ErrMissingProjectName is returned when the configuration document has no
// top-level projectName.
var ErrMissingProjectName = errors.New("projectName not found in configuration")

// NotFoundError reports a missing environment, category, or required field in
// the configuration tree. Field is empty when a whole category is absent;
// Category is empty when the environment itself is absent.
type NotFoundError struct {
	Environment string
	Category    string
	Field       string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Category == "":
		return fmt.Sprintf("no configuration found for environment %q", e.Environment)
	case e.Field == "":
		return fmt.Sprintf("no %s configuration found for environment %q", e.Category, e.Environment)
	default:
		return fmt.Sprintf("%s.%s is required for environment %q", e.Category, e.Field, e.Environment)
	}
}

// notFound builds a NotFoundError for a required field.
func notFound(env, category, field string) *NotFoundError {
	return &NotFoundError{Environment: env, Category: category, Field: field}
}
