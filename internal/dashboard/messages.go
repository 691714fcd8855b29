package dashboard

import (
	"errors"
	"fmt"

	"github.com/euncover/euncover/internal/dataset"
	"github.com/euncover/euncover/internal/mep"
)

// Panel names used in messages, logs and metrics.
const (
	PanelProfile     = "profile"
	PanelDeclaration = "declaration"
	PanelNetwork     = "network"
	PanelArticles    = "articles"
)

// Error kinds reported for failed panels.
const (
	KindMissing       = "missing"
	KindMalformed     = "malformed"
	KindNotFound      = "not_found"
	KindMalformedList = "malformed_list"
	KindInternal      = "internal"
)

// NoArticlesMessage is shown when an MEP has no matching articles.
const NoArticlesMessage = "This person did not appear in recent news articles."

// PanelError is the user-visible failure of a single panel.
type PanelError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// classify maps a catalog error to its kind.
func classify(err error) string {
	switch {
	case errors.Is(err, dataset.ErrMissing):
		return KindMissing
	case errors.Is(err, dataset.ErrMalformed):
		return KindMalformed
	case errors.Is(err, dataset.ErrNotFound):
		return KindNotFound
	case errors.Is(err, mep.ErrMalformedList):
		return KindMalformedList
	default:
		return KindInternal
	}
}

// panelError converts a catalog error into the message shown in panel.
func panelError(panel, name string, err error) *PanelError {
	kind := classify(err)

	var path string
	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		path = loadErr.Path
	}

	var msg string
	switch kind {
	case KindMissing:
		msg = fmt.Sprintf("Could not find the file at %s. Please check the path and try again.", path)
	case KindMalformed:
		msg = fmt.Sprintf("The file at %s is not valid. Please check the file content.", path)
	case KindNotFound:
		if panel == PanelDeclaration {
			msg = fmt.Sprintf("No data found for %s.", name)
		} else {
			msg = fmt.Sprintf("No data available for %s.", name)
		}
	case KindMalformedList:
		msg = fmt.Sprintf("The committees or delegations of %s could not be read.", name)
	default:
		msg = fmt.Sprintf("Could not load the %s of %s.", panel, name)
	}
	return &PanelError{Kind: kind, Message: msg}
}
