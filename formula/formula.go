package formula

import (
	"sort"

	"github.com/ericr/stalmarck/lit"
)

// Formula is a CNF formula: a list of clauses over variables 1..NumVariables.
type Formula struct {
	// clauses is the list of problem clauses in insertion order.
	clauses [][]lit.Lit
	// numVars is the largest variable magnitude seen so far.
	numVars int

	// triplets holds the encoded triplet store once the encoder has run.
	triplets []Triplet
	// top is the terminating representative variable, 0 when no clauses.
	top int
	// numTotal is the variable count including encoder auxiliaries.
	numTotal int
	// encoded records whether the encoder has run.
	encoded bool
}

// New returns a new empty formula.
func New() *Formula {
	return &Formula{}
}

// AddClause appends a clause given as DIMACS-style signed integers. Duplicate
// literals and tautological clauses are kept as-is; an empty clause denotes
// the constant false. Adding a clause after the triplet store has been
// materialized panics, since the store is read-only from then on.
func (f *Formula) AddClause(ps []int) {
	if f.encoded {
		panic("formula: AddClause after encoding")
	}
	clause := make([]lit.Lit, 0, len(ps))

	for _, p := range ps {
		if p == 0 {
			panic("formula: literal 0 in clause")
		}
		l := lit.NewFromInt(p)
		clause = append(clause, l)

		if l.Var() > f.numVars {
			f.numVars = l.Var()
		}
	}
	f.clauses = append(f.clauses, clause)
}

// NumVariables returns the number of variables in the input CNF.
func (f *Formula) NumVariables() int {
	return f.numVars
}

// NumClauses returns the number of clauses.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// Clauses returns the clause list for read-only iteration.
func (f *Formula) Clauses() [][]lit.Lit {
	return f.clauses
}

// HasEmptyClause returns true if any clause is empty.
func (f *Formula) HasEmptyClause() bool {
	for _, clause := range f.clauses {
		if len(clause) == 0 {
			return true
		}
	}
	return false
}

// Normalize sorts the literals within each clause and the clauses
// lexicographically. It does not change the formula's meaning and is
// idempotent; it exists to make formulas comparable. Normalizing after
// encoding panics for the same reason AddClause does.
func (f *Formula) Normalize() {
	if f.encoded {
		panic("formula: Normalize after encoding")
	}
	for _, clause := range f.clauses {
		sort.Slice(clause, func(i, j int) bool {
			return clause[i] < clause[j]
		})
	}
	sort.Slice(f.clauses, func(i, j int) bool {
		return lessClause(f.clauses[i], f.clauses[j])
	})
}

// lessClause orders clauses lexicographically.
func lessClause(a, b []lit.Lit) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Triplets returns the triplet store, running the encoder on first use.
// The store is read-only and shared by all callers.
func (f *Formula) Triplets() []Triplet {
	f.encode()
	return f.triplets
}

// Top returns the terminating representative variable. The whole CNF is
// satisfiable together with the triplet store exactly when Top can be forced
// to true. Top is 0 for a formula with no clauses.
func (f *Formula) Top() int {
	f.encode()
	return f.top
}

// NumTotalVariables returns the variable count including the auxiliaries
// minted by the encoder.
func (f *Formula) NumTotalVariables() int {
	f.encode()
	return f.numTotal
}
