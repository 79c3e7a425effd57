package solver

import (
	"github.com/ericr/stalmarck/lit"
	"github.com/ericr/stalmarck/tribool"
)

// Assignment is a partial truth assignment over variables 1..n. Bindings are
// recorded on a trail in chronological order, so a snapshot is just the
// current trail length and restoring unbinds everything assigned since.
type Assignment struct {
	// values holds each variable's binding, indexed by id with slot 0 unused.
	values []tribool.Tribool
	// trail is the list of bound variables in binding order.
	trail []int
}

// newAssignment returns an empty assignment over numVars variables.
func newAssignment(numVars int) *Assignment {
	return &Assignment{
		values: make([]tribool.Tribool, numVars+1),
		trail:  make([]int, 0, numVars),
	}
}

// Get returns the binding of variable v.
func (a *Assignment) Get(v int) tribool.Tribool {
	return a.values[v]
}

// Eval returns the value of literal p under the assignment. The constant
// false evaluates to false; an unbound variable evaluates to undef.
func (a *Assignment) Eval(p lit.Lit) tribool.Tribool {
	if p.IsConst() {
		return tribool.False
	}
	if p.Sign() {
		return a.values[p.Var()].Not()
	}
	return a.values[p.Var()]
}

// Assign binds p's variable so that p evaluates to val. Returns false on
// conflict with an existing binding; the prior binding is untouched.
// Assigning the constant false succeeds only for val == false and binds
// nothing.
func (a *Assignment) Assign(p lit.Lit, val bool) bool {
	if p.IsConst() {
		return !val
	}
	want := tribool.NewFromBool(val != p.Sign())

	switch cur := a.values[p.Var()]; {
	case cur.Undef():
		a.values[p.Var()] = want
		a.trail = append(a.trail, p.Var())
		return true
	default:
		return cur == want
	}
}

// Snapshot captures the current state in O(1).
func (a *Assignment) Snapshot() int {
	return len(a.trail)
}

// Restore unbinds every variable assigned since the snapshot was taken.
func (a *Assignment) Restore(mark int) {
	for i := len(a.trail) - 1; i >= mark; i-- {
		a.values[a.trail[i]] = tribool.Undef
	}
	a.trail = a.trail[:mark]
}

// Size returns the number of bound variables.
func (a *Assignment) Size() int {
	return len(a.trail)
}

// IsComplete returns true if all of variables 1..numVars are bound.
func (a *Assignment) IsComplete(numVars int) bool {
	return len(a.trail) == numVars
}
