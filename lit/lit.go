package lit

import "fmt"

// False is the sentinel literal denoting the logical constant false. It is
// only meaningful inside triplets; clauses never contain it.
const False = Lit(0)

// Lit is a literal represented by a signed integer. The magnitude is the
// variable id and the sign is the polarity, so L and ~L are additive
// inverses. The zero value is the constant false, not a variable.
type Lit int

// New returns a new literal over the variable v, negated when neg is true.
func New(v int, neg bool) Lit {
	if neg {
		return Lit(-v)
	}
	return Lit(v)
}

// NewFromInt returns the literal for a DIMACS-style signed integer.
func NewFromInt(i int) Lit {
	return Lit(i)
}

// Not negates a literal. The constant false is returned unchanged.
func (l Lit) Not() Lit {
	return -l
}

// Sign returns true if the literal is negative.
func (l Lit) Sign() bool {
	return l < 0
}

// Var returns the literal's variable id, or 0 for the constant false.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsConst returns true if the literal is the constant false.
func (l Lit) IsConst() bool {
	return l == False
}

// Int returns the literal as a DIMACS-style signed integer.
func (l Lit) Int() int {
	return int(l)
}

// String implements the Stringer interface.
func (l Lit) String() string {
	if l.IsConst() {
		return "F"
	}
	if l.Sign() {
		return fmt.Sprintf("~%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}
