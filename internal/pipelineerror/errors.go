// Package pipelineerror defines the typed errors surfaced by the
// classification pipeline and its collaborators.
package pipelineerror

import "fmt"

// MissingColumnError is the one fatal pipeline error: the header row lacks
// a required column category, so no record can be constructed.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required %s column not found in header row", e.Column)
}

// MappingError reports an invalid bucket-mapping entry.
type MappingError struct {
	CentKey int
	Reason  string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("invalid church mapping for cent key %d: %s", e.CentKey, e.Reason)
}

// FormatError reports a grid or mapping file that could not be decoded.
type FormatError struct {
	Path string
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid format in file '%s': %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("invalid format in file '%s': %s", e.Path, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
