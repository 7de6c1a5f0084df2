// Package lifecycle describes guarded status transitions shared by every
// resource with a moderation or payment state.
package lifecycle

import (
	"fmt"
	"slices"

	"github.com/BruksfildServices01/bizmarket/internal/httperr"
)

// Rule moves Column to To, but only from one of From. Stores apply it as a
// single conditional UPDATE so concurrent callers cannot lose updates.
type Rule struct {
	Name   string
	Column string
	From   []string
	To     string
}

func (r Rule) Allows(current string) bool {
	return slices.Contains(r.From, current)
}

// Settle interprets a transition that changed no row. A record already in
// the target state is a repeat and succeeds; anything else is a conflict.
func (r Rule) Settle(current string) error {
	if current == r.To {
		return nil
	}
	return httperr.ErrConflict(
		"invalid_state",
		fmt.Sprintf("Cannot %s: current %s is %s", r.Name, r.Column, current),
	)
}
