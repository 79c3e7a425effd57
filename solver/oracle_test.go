package solver

import (
	"math/rand"
	"testing"

	gophersat "github.com/crillab/gophersat/solver"
	"github.com/stretchr/testify/require"
)

// Cross-check verdicts against an independent CDCL solver on generated
// 3-CNF instances. The generator is seeded, so the corpus is fixed.
func TestVerdictsAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 40; i++ {
		clauses := randomCNF(rng, 5, 4+rng.Intn(18))

		want := gophersat.New(gophersat.ParseSlice(clauses)).Solve() == gophersat.Sat
		got := newSolver(clauses).Solve()

		require.Equal(t, want, got, "instance %d: %v", i, clauses)
		require.Equal(t, want, bruteForce(clauses, 5), "oracle disagrees with enumeration on %v", clauses)
	}
}

// randomCNF generates numClauses clauses of three distinct variables drawn
// from 1..numVars with random polarities.
func randomCNF(rng *rand.Rand, numVars, numClauses int) [][]int {
	clauses := make([][]int, 0, numClauses)

	for i := 0; i < numClauses; i++ {
		vars := rng.Perm(numVars)[:3]
		clause := make([]int, 3)

		for j, v := range vars {
			clause[j] = v + 1
			if rng.Intn(2) == 1 {
				clause[j] = -clause[j]
			}
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
