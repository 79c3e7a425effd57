package solver

import (
	"github.com/ericr/stalmarck/lit"
)

// search decides satisfiability of the triplet store from the current
// assignment: saturate, and if the store is neither refuted nor fully bound,
// case-split on the smallest unassigned variable with rollback between the
// branches. Depth is bounded by the variable count, since every level binds
// at least one more variable.
func (s *Solver) search() bool {
	if !s.saturate() {
		return false
	}
	if s.assign.IsComplete(s.numVars) {
		// Guard against rule-set incompleteness: a complete assignment is
		// only a model if every triplet checks out.
		if s.verify() {
			return true
		}
		s.hasContradiction = true
		s.conflicts++
		return false
	}

	p := lit.New(s.order.Choose(), false)
	s.decisions++
	mark := s.assign.Snapshot()

	if s.assign.Assign(p, true) && s.search() {
		return true
	}
	s.assign.Restore(mark)
	s.hasContradiction = false

	if s.assign.Assign(p, false) && s.search() {
		return true
	}
	s.assign.Restore(mark)
	s.hasContradiction = true

	return false
}

// verify evaluates every triplet under a complete assignment, checking
// v(x) == (v(y) -> v(z)).
func (s *Solver) verify() bool {
	for _, t := range s.triplets {
		vx := s.assign.Eval(lit.New(t.X, false)).True()
		vy := s.assign.Eval(t.Y).True()
		vz := s.assign.Eval(t.Z).True()

		if vx != (!vy || vz) {
			return false
		}
	}
	return true
}
