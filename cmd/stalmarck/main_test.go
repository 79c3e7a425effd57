package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCNF(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.cnf")

	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSat(t *testing.T) {
	path := writeCNF(t, "p cnf 2 2\n1 2 0\n-1 2 0\n")

	if code := run([]string{path}); code != exitSat {
		t.Fatalf("run() = %d, want %d", code, exitSat)
	}
}

func TestRunUnsat(t *testing.T) {
	path := writeCNF(t, "p cnf 1 2\n1 0\n-1 0\n")

	if code := run([]string{path}); code != exitUnsat {
		t.Fatalf("run() = %d, want %d", code, exitUnsat)
	}
}

func TestRunMissingFile(t *testing.T) {
	if code := run([]string{filepath.Join(t.TempDir(), "nope.cnf")}); code != exitError {
		t.Fatalf("run() = %d, want %d", code, exitError)
	}
}

func TestRunParseError(t *testing.T) {
	path := writeCNF(t, "p sat 2 1\n1 0\n")

	if code := run([]string{path}); code != exitError {
		t.Fatalf("run() = %d, want %d", code, exitError)
	}
}

func TestRunInvalidFlag(t *testing.T) {
	if code := run([]string{"--bogus"}); code != exitError {
		t.Fatalf("run() = %d, want %d", code, exitError)
	}
}

func TestRunVerbose(t *testing.T) {
	path := writeCNF(t, "p cnf 1 1\n1 0\n")

	if code := run([]string{"-v", path}); code != exitSat {
		t.Fatalf("run() = %d, want %d", code, exitSat)
	}
}
