package formula

import (
	"fmt"

	"github.com/ericr/stalmarck/lit"
)

// Triplet is an equivalence x <-> (y -> z). X is always a positive variable
// id, the representative defined by the triplet; Y and Z are signed literals
// and either may be the constant false.
type Triplet struct {
	X int
	Y lit.Lit
	Z lit.Lit
}

// String implements the Stringer interface.
func (t Triplet) String() string {
	return fmt.Sprintf("%d <-> (%s -> %s)", t.X, t.Y, t.Z)
}
