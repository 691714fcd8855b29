// Package dataset loads the bundled MEP fixtures and looks records up by name.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds observable by callers.
var (
	ErrMissing   = errors.New("dataset file not found")
	ErrMalformed = errors.New("dataset file is malformed")
	ErrNotFound  = errors.New("no record for name")
)

// LoadError reports a failure to load a dataset file.
type LoadError struct {
	Path string
	Kind error // ErrMissing or ErrMalformed
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// openError classifies a file read error as missing or malformed.
func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &LoadError{Path: path, Kind: ErrMissing, Err: err}
	}
	return &LoadError{Path: path, Kind: ErrMalformed, Err: err}
}

func malformed(path string, format string, args ...any) error {
	return &LoadError{Path: path, Kind: ErrMalformed, Err: fmt.Errorf(format, args...)}
}

// notFound returns an ErrNotFound error for name within a dataset.
func notFound(dataset, name string) error {
	return fmt.Errorf("%w in %s: %s", ErrNotFound, dataset, name)
}
