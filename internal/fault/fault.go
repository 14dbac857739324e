// Package fault defines the error kinds shared by the locomotion and effect
// subsystems. None of them are retried: callers either skip the offending
// entry or refuse to run.
package fault

import "fmt"

// ConfigError reports a missing or malformed configuration source.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ResourceError reports an asset that could not be resolved.
type ResourceError struct {
	Asset string
	Err   error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource %q: %v", e.Asset, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// PreconditionError reports a required collaborator that was not supplied.
type PreconditionError struct {
	Component string
	Missing   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: missing required %s", e.Component, e.Missing)
}
