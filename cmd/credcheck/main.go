// Package main is the entry point for the credcheck CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(cmd.ErrOrStderr(), err))
	}
}

// exitCode reports err and maps it to a process exit status: 1 for a
// credential that was refused, 2 for anything else.
func exitCode(w io.Writer, err error) int {
	if errors.Is(err, errRefused) {
		return 1
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
	return 2
}
