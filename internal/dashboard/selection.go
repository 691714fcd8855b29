// Package dashboard assembles the MEP dashboard page from the catalog.
package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/euncover/euncover/internal/mep"
)

// ErrUnknownSelection is returned for names outside the roster.
var ErrUnknownSelection = errors.New("unknown selection")

// Selection is the current dropdown value: the placeholder or a roster name.
type Selection struct {
	Name string
}

// ParseSelection validates a raw dropdown value. The empty string and the
// placeholder both select the welcome page.
func ParseSelection(raw string) (Selection, error) {
	name := strings.TrimSpace(raw)
	if name == "" || name == mep.Placeholder {
		return Selection{}, nil
	}
	if !mep.InRoster(name) {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownSelection, name)
	}
	return Selection{Name: name}, nil
}

// IsPlaceholder reports whether no MEP is selected.
func (s Selection) IsPlaceholder() bool {
	return s.Name == ""
}

// String returns the dropdown value for the selection.
func (s Selection) String() string {
	if s.IsPlaceholder() {
		return mep.Placeholder
	}
	return s.Name
}
