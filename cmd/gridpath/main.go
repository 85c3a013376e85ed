// Command gridpath plans minimum-cost routes over weighted grid maps.
//
// Usage:
//
//	gridpath find -f grid.yaml [--start r,c] [--goal r,c] [--heuristic manhattan|zero]
//	                           [--max-expansions n] [--plain]
//	gridpath field -f grid.yaml [--from r,c]
//	gridpath components -f grid.yaml
//	gridpath generate [--rows n] [--cols n] [--seed s] [--obstacles p] [-o file]
//
// Logging goes to stderr, controlled by --log-level and --log-format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
