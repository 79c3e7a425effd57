package solver

import (
	"fmt"

	"github.com/ericr/stalmarck/config"
	"github.com/ericr/stalmarck/formula"
	"github.com/ericr/stalmarck/lit"
	"github.com/ericr/stalmarck/order"
	"github.com/sirupsen/logrus"
)

const (
	VersionMajor = 1
	VersionMinor = 0
)

// Solver decides satisfiability of a CNF formula with Stålmarck's method:
// the formula is encoded into implication triplets, the simple rules are
// run to saturation, and remaining variables are settled by two-way
// case-splitting with rollback.
type Solver struct {
	// config is the solver's configuration.
	config *config.Config
	// logger is the solver's logger.
	logger *logrus.Logger

	// formula is the problem being decided.
	formula *formula.Formula
	// triplets is the encoded store, read-only during solving.
	triplets []formula.Triplet
	// numVars is the variable count including encoder auxiliaries.
	numVars int

	// assign is the current partial assignment, owned by the running solve.
	assign *Assignment
	// order picks branch variables.
	order *order.Order
	// hasContradiction is set on conflict and cleared on branch rollback.
	hasContradiction bool

	// satisfiable records the last verdict.
	satisfiable bool
	// model stores the satisfying assignment over original variables.
	model map[int]bool

	// sweeps counts full passes over the triplet store.
	sweeps int
	// propagations counts bindings forced by the simple rules.
	propagations int
	// decisions counts case splits.
	decisions int
	// conflicts counts refuted branches.
	conflicts int
}

// New returns a new initialized solver with an empty formula.
func New(c *config.Config) *Solver {
	return &Solver{
		config:  c,
		logger:  c.Logger,
		formula: formula.New(),
		model:   map[int]bool{},
	}
}

// Version returns the version of the solver.
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// AddClause adds a clause, given as DIMACS-style signed integers, to the
// solver's formula.
func (s *Solver) AddClause(ps []int) {
	s.formula.AddClause(ps)
}

// Formula returns the solver's formula.
func (s *Solver) Formula() *formula.Formula {
	return s.formula
}

// SolveFormula replaces the solver's formula and solves it.
func (s *Solver) SolveFormula(f *formula.Formula) bool {
	s.formula = f
	return s.Solve()
}

// Solve decides the solver's formula, returning true when satisfiable. Each
// call starts from a fresh assignment; the formula and its triplet store are
// reused across calls.
func (s *Solver) Solve() bool {
	s.reset()

	switch {
	case s.formula.NumClauses() == 0:
		// The empty conjunction holds under the empty assignment.
		s.satisfiable = true
	case s.formula.HasEmptyClause():
		s.hasContradiction = true
	case s.hasUnitContradiction():
		s.hasContradiction = true
	default:
		s.satisfiable = s.run()
	}

	if s.satisfiable {
		for v := 1; v <= s.formula.NumVariables(); v++ {
			s.model[v] = s.assign.Get(v).True()
		}
	}
	s.logStats()

	return s.satisfiable
}

// run encodes the formula and searches the triplet store.
func (s *Solver) run() bool {
	s.triplets = s.formula.Triplets()
	s.numVars = s.formula.NumTotalVariables()
	s.assign = newAssignment(s.numVars)
	s.order = order.New(s.assign.values)

	// The terminator represents the whole conjunction; the store is
	// satisfiable with the input exactly when it holds.
	s.assign.Assign(lit.New(s.formula.Top(), false), true)

	return s.search()
}

// reset discards all per-solve state.
func (s *Solver) reset() {
	s.assign = newAssignment(0)
	s.order = nil
	s.hasContradiction = false
	s.satisfiable = false
	s.model = map[int]bool{}
	s.sweeps = 0
	s.propagations = 0
	s.decisions = 0
	s.conflicts = 0
}

// hasUnitContradiction reports whether some literal and its complement both
// occur as unit clauses.
func (s *Solver) hasUnitContradiction() bool {
	units := map[lit.Lit]bool{}

	for _, clause := range s.formula.Clauses() {
		if len(clause) != 1 {
			continue
		}
		if units[clause[0].Not()] {
			return true
		}
		units[clause[0]] = true
	}
	return false
}

// IsSatisfiable returns the last verdict.
func (s *Solver) IsSatisfiable() bool {
	return s.satisfiable
}

// HasContradiction returns true when the last solve refuted the formula at
// the root.
func (s *Solver) HasContradiction() bool {
	return s.hasContradiction
}

// IsSatisfyingAssignment reports whether the last solve produced a model
// satisfying every input clause.
func (s *Solver) IsSatisfyingAssignment() bool {
	if !s.satisfiable {
		return false
	}
	for _, clause := range s.formula.Clauses() {
		ok := false
		for _, p := range clause {
			if s.model[p.Var()] != p.Sign() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Model returns the satisfying assignment over original variables found by
// the last successful solve.
func (s *Solver) Model() map[int]bool {
	return s.model
}

// Answer returns the model as DIMACS-style literals in variable order, or
// nil when the last solve was unsatisfiable.
func (s *Solver) Answer() []int {
	if !s.satisfiable {
		return nil
	}
	ps := make([]int, 0, len(s.model))

	for v := 1; v <= s.formula.NumVariables(); v++ {
		if s.model[v] {
			ps = append(ps, v)
		} else {
			ps = append(ps, -v)
		}
	}
	return ps
}

// NVars returns the number of variables, auxiliaries included.
func (s *Solver) NVars() int {
	return s.numVars
}

// NSweeps returns the number of saturation sweeps performed.
func (s *Solver) NSweeps() int {
	return s.sweeps
}

// NPropagations returns the number of bindings forced by the simple rules.
func (s *Solver) NPropagations() int {
	return s.propagations
}

// NDecisions returns the number of case splits performed.
func (s *Solver) NDecisions() int {
	return s.decisions
}

// NConflicts returns the number of refuted branches.
func (s *Solver) NConflicts() int {
	return s.conflicts
}

// logStats reports solve statistics when verbose.
func (s *Solver) logStats() {
	if !s.config.Verbose {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"satisfiable":  s.satisfiable,
		"variables":    s.numVars,
		"clauses":      s.formula.NumClauses(),
		"triplets":     len(s.triplets),
		"sweeps":       s.sweeps,
		"propagations": s.propagations,
		"decisions":    s.decisions,
		"conflicts":    s.conflicts,
	}).Debug("solve finished")
}
