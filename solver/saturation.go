package solver

import (
	"github.com/ericr/stalmarck/formula"
	"github.com/ericr/stalmarck/lit"
)

// 0-saturation: sweep the triplet store applying the simple rules until a
// sweep binds nothing new (fixed point) or a binding conflicts. Values read
// at the top of a rule block may be stale within the same sweep after an
// earlier rule fired; the next sweep sees them, and every forced binding
// goes through Assign, so staleness delays propagation but never corrupts it.

// saturate runs the simple rules to fixed point. Returns false on conflict,
// leaving the assignment in its extended state for the caller to roll back.
func (s *Solver) saturate() bool {
	for {
		before := s.assign.Size()

		for _, t := range s.triplets {
			if !s.apply(t) {
				s.hasContradiction = true
				s.conflicts++
				return false
			}
		}
		s.sweeps++

		if s.assign.Size() == before {
			return true
		}
	}
}

// apply fires every simple rule matching the triplet x <-> (y -> z).
// Returns false on conflict.
func (s *Solver) apply(t formula.Triplet) bool {
	x := lit.New(t.X, false)
	vx := s.assign.Eval(x)
	vy := s.assign.Eval(t.Y)
	vz := s.assign.Eval(t.Z)

	// Rule 1: x false forces y true and z false.
	if vx.False() {
		if !s.force(t.Y, true) || !s.force(t.Z, false) {
			return false
		}
	}

	// Rule 2: y false forces x true.
	if vy.False() {
		if !s.force(x, true) {
			return false
		}
	}

	// Rule 3: z false makes x equivalent to ~y; force whichever side the
	// other already determines.
	if vz.False() {
		if !vx.Undef() && !s.force(t.Y, !vx.True()) {
			return false
		}
		if !vy.Undef() && !s.force(x, !vy.True()) {
			return false
		}
	}

	// Rule 4: y and z are the same literal, so y -> z holds and x is true.
	if t.Y == t.Z {
		if !s.force(x, true) {
			return false
		}
	}

	// Rule 5: z true forces x true.
	if vz.True() {
		if !s.force(x, true) {
			return false
		}
	}

	// Rule 6: y true makes x equivalent to z.
	if vy.True() {
		if !vx.Undef() && !s.force(t.Z, vx.True()) {
			return false
		}
		if !vz.Undef() && !s.force(x, vz.True()) {
			return false
		}
	}

	// Rule 7: y is x itself; x <-> (x -> z) forces both x and z true.
	if t.Y == x {
		if !s.force(x, true) || !s.force(t.Z, true) {
			return false
		}
	}

	return true
}

// force binds p to val through the assignment store, counting new bindings.
// Returns false on conflict.
func (s *Solver) force(p lit.Lit, val bool) bool {
	before := s.assign.Size()

	if !s.assign.Assign(p, val) {
		return false
	}
	if s.assign.Size() > before {
		s.propagations++
	}
	return true
}
