package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/euncover/euncover/internal/dashboard"
	"github.com/euncover/euncover/internal/dataset"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps a domain error to its exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrUnknownSelection), errors.Is(err, dataset.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, dataset.ErrMissing), errors.Is(err, dataset.ErrMalformed):
		return ExitDataError
	default:
		return ExitError
	}
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}
