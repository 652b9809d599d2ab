package config

import (
	"fmt"

	"github.com/streamforge/encoding-examples/internal/params"
)

// MissingParameterError reports that a parameter was not present with a
// non-empty value in any configured source. It carries the requested key and
// a description of what was expected; there is no default-value fallback.
type MissingParameterError struct {
	Key         params.Key
	Description string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing configuration parameter %s: %s", e.Key, e.Description)
}

func newMissingParameterError(key params.Key) *MissingParameterError {
	description := fmt.Sprintf("Configuration parameter '%s'", key)
	if spec, ok := params.Lookup(key); ok {
		description = spec.Description
	}
	return &MissingParameterError{Key: key, Description: description}
}

// SourceReadError reports that a properties file exists but could not be
// read or parsed. A file that simply does not exist is not an error and
// never produces a SourceReadError.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("reading properties file %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
