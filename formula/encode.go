package formula

import "github.com/ericr/stalmarck/lit"

// The encoder translates the CNF into an equi-satisfiable conjunction of
// triplets x <-> (y -> z), Tseitin-style. Auxiliary variables are minted
// from a monotonic counter above the input variables, so the store is
// reproducible for a given clause insertion order.

// encode materializes the triplet store. It runs at most once.
func (f *Formula) encode() {
	if f.encoded {
		return
	}
	f.encoded = true
	f.numTotal = f.numVars

	// A constant-false clause makes the conjunction constant false. There is
	// no true/false pair of sentinels to express that directly, so emit the
	// one self-refuting triplet t <-> (t -> false) instead: rule application
	// conflicts on it under every assignment.
	if f.HasEmptyClause() {
		t := f.fresh()
		f.emit(t, lit.New(t, false), lit.False)
		f.top = t
		return
	}

	if len(f.clauses) == 0 {
		f.top = 0
		return
	}

	// Pass 1: each clause l1 v ... v lk becomes the implication chain
	// ~l1 -> (~l2 -> (... -> lk)), emitted innermost-first with a fresh
	// representative per step. A unit clause is its own representative.
	reps := make([]lit.Lit, 0, len(f.clauses))

	for _, clause := range f.clauses {
		reps = append(reps, f.encodeClause(clause))
	}

	// Pass 2: conjoin the clause representatives right-associatively via
	// A ^ B == ~(A -> ~B). Each step defines c_i <-> (R_i -> ~rep), making
	// ~c_i the representative of R_i ^ ... ^ R_m.
	rep := reps[len(reps)-1]

	for i := len(reps) - 2; i >= 0; i-- {
		c := f.fresh()
		f.emit(c, reps[i], rep.Not())
		rep = lit.New(c, true)
	}

	// Terminating triplet t <-> (~rep -> false), i.e. t <-> rep: the CNF is
	// satisfiable exactly when t can be forced to true.
	t := f.fresh()
	f.emit(t, rep.Not(), lit.False)
	f.top = t
}

// encodeClause emits the implication chain for one clause and returns its
// representative literal.
func (f *Formula) encodeClause(clause []lit.Lit) lit.Lit {
	k := len(clause)

	if k == 1 {
		return clause[0]
	}
	rep := clause[k-1]

	for i := k - 2; i >= 0; i-- {
		r := f.fresh()
		f.emit(r, clause[i].Not(), rep)
		rep = lit.New(r, false)
	}
	return rep
}

// fresh mints the next auxiliary variable id.
func (f *Formula) fresh() int {
	f.numTotal++
	return f.numTotal
}

// emit appends the defining triplet for x.
func (f *Formula) emit(x int, y, z lit.Lit) {
	f.triplets = append(f.triplets, Triplet{X: x, Y: y, Z: z})
}
