package encoding

import (
	"strings"
	"testing"

	"github.com/ericr/stalmarck/lit"
	"github.com/stretchr/testify/require"
)

func TestParseDimacs(t *testing.T) {
	in := `c a small problem
p cnf 3 2
1 -3 0
2 3 -1 0
`
	f, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, f.NumClauses())
	require.Equal(t, 3, f.NumVariables())
	require.Equal(t, []lit.Lit{1, -3}, f.Clauses()[0])
	require.Equal(t, []lit.Lit{2, 3, -1}, f.Clauses()[1])
}

func TestParseDimacsClauseSpansLines(t *testing.T) {
	in := "p cnf 4 1\n1 2\n3\n-4 0\n"

	f, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, f.NumClauses())
	require.Equal(t, []lit.Lit{1, 2, 3, -4}, f.Clauses()[0])
}

func TestParseDimacsMultipleClausesPerLine(t *testing.T) {
	in := "p cnf 2 2\n1 0 -2 0\n"

	f, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, f.NumClauses())
}

func TestParseDimacsMissingFinalTerminator(t *testing.T) {
	in := "p cnf 2 1\n1 -2"

	f, err := ParseDimacs(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, f.NumClauses())
}

func TestParseDimacsNoHeader(t *testing.T) {
	f, err := ParseDimacs(strings.NewReader("1 2 0\n-1 0\n"))
	require.NoError(t, err)
	require.Equal(t, 2, f.NumClauses())
	require.Equal(t, 2, f.NumVariables())
}

func TestParseDimacsWrongFormat(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p sat 3 2\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cnf")
}

func TestParseDimacsMalformedHeader(t *testing.T) {
	for _, in := range []string{"p cnf 3\n", "p cnf x 2\n", "p cnf 3 y\n", "p\n"} {
		_, err := ParseDimacs(strings.NewReader(in))
		require.Error(t, err, "input %q", in)
	}
}

func TestParseDimacsDuplicateHeader(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p cnf 1 1\np cnf 1 1\n1 0\n"))
	require.Error(t, err)
}

func TestParseDimacsLiteralOutOfRange(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("p cnf 2 1\n1 -3 0\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds")
}

func TestParseDimacsBadLiteral(t *testing.T) {
	_, err := ParseDimacs(strings.NewReader("1 x 0\n"))
	require.Error(t, err)
}

func TestParseDimacsEmpty(t *testing.T) {
	f, err := ParseDimacs(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, f.NumClauses())
}
