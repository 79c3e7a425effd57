package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ericr/stalmarck/config"
	"github.com/ericr/stalmarck/encoding"
	"github.com/ericr/stalmarck/formula"
	"github.com/ericr/stalmarck/solver"
	"github.com/spf13/cobra"
)

// SAT competition exit code convention.
const (
	exitSat   = 10
	exitUnsat = 20
	exitError = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf := config.New()
	verbose := false
	code := 0

	cmd := &cobra.Command{
		Use:           "stalmarck [flags] <input.cnf>",
		Short:         "stalmarck decides CNF satisfiability with Stålmarck's method",
		Version:       solver.Version(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			conf.SetVerbose(verbose)
			code = solve(conf, cmdArgs[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver statistics")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitError
	}
	return code
}

func solve(conf *config.Config, path string) int {
	f, err := readCNF(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return exitError
	}
	printBanner(path)

	sat := solver.New(conf)
	tStart := time.Now()
	ok := sat.SolveFormula(f)

	if conf.Verbose {
		conf.Logger.Printf("solved in %s", time.Since(tStart))
	}
	if ok {
		fmt.Fprint(os.Stdout, "s SATISFIABLE\n")
		return exitSat
	}
	fmt.Fprint(os.Stdout, "s UNSATISFIABLE\n")
	return exitUnsat
}

func printBanner(path string) {
	fmt.Fprintf(os.Stdout, "c stalmarck %s\n", solver.Version())
	fmt.Fprintf(os.Stdout, "c solving %s\n", path)
}

func readCNF(path string) (*formula.Formula, error) {
	var in io.Reader

	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if !isFile(path) {
			return nil, fmt.Errorf("open %s: not a readable file", path)
		}
		in = f
	}
	return encoding.ParseDimacs(in)
}

func isFile(path string) bool {
	if fs, err := os.Stat(path); err == nil {
		if fs.Mode().IsRegular() {
			return true
		}
	}
	return false
}
