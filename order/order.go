package order

import (
	"github.com/ericr/stalmarck/tribool"
)

// Order chooses branch variables. Branching always takes the smallest
// unassigned variable id, which keeps the search deterministic for a given
// triplet store.
type Order struct {
	assigns []tribool.Tribool
}

// New returns a new Order reading the given assignment slice, indexed by
// variable id with slot 0 unused. The slice is shared with the caller, who
// mutates it in place.
func New(assigns []tribool.Tribool) *Order {
	return &Order{assigns: assigns}
}

// Choose returns the smallest unbound variable, or 0 when every variable is
// bound.
func (o *Order) Choose() int {
	for v := 1; v < len(o.assigns); v++ {
		if o.assigns[v].Undef() {
			return v
		}
	}
	return 0
}
