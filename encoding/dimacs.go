package encoding

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ericr/stalmarck/formula"
	"github.com/pkg/errors"
)

// ParseDimacs reads a CNF problem in DIMACS format. Comment lines start with
// "c"; an optional header "p cnf <vars> <clauses>" declares the problem
// size; clauses are 0-terminated lists of nonzero literals and may span
// lines. When a header is present, literal magnitudes are checked against
// the declared variable count.
func ParseDimacs(in io.Reader) (*formula.Formula, error) {
	f := formula.New()
	scanner := bufio.NewScanner(in)

	declVars := 0
	sawHeader := false
	clause := []int{}

	for lineno := 1; scanner.Scan(); lineno++ {
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] == "p" {
			if sawHeader {
				return nil, errors.Errorf("line %d: duplicate problem line", lineno)
			}
			var err error
			if declVars, err = parseHeader(fields); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineno)
			}
			sawHeader = true
			continue
		}
		for _, field := range fields {
			p, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad literal %q", lineno, field)
			}
			if p == 0 {
				f.AddClause(clause)
				clause = []int{}
				continue
			}
			if sawHeader && abs(p) > declVars {
				return nil, errors.Errorf("line %d: literal %d exceeds declared %d variables", lineno, p, declVars)
			}
			clause = append(clause, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	// A final clause missing its 0 terminator is accepted at EOF.
	if len(clause) > 0 {
		f.AddClause(clause)
	}
	return f, nil
}

// parseHeader validates a "p cnf <vars> <clauses>" problem line and returns
// the declared variable count.
func parseHeader(fields []string) (int, error) {
	if len(fields) != 4 {
		return 0, errors.Errorf("malformed problem line %q", strings.Join(fields, " "))
	}
	if fields[1] != "cnf" {
		return 0, errors.Errorf("unsupported problem format %q, want cnf", fields[1])
	}
	declVars, err := strconv.Atoi(fields[2])
	if err != nil || declVars < 0 {
		return 0, errors.Errorf("bad variable count %q", fields[2])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return 0, errors.Errorf("bad clause count %q", fields[3])
	}
	return declVars, nil
}

func abs(p int) int {
	if p < 0 {
		return -p
	}
	return p
}
