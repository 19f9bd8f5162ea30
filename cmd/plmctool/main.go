// plmctool prepares alignments for plmc and runs it.
//
// Usage:
//
//	plmctool convert -i query.a3m [-o query.a2m | --prefix name]
//	plmctool model -a query.a2m -f FOCUS_ID [--out-dir dir] [--prefix name]
//	plmctool clean input.a2m [output.a2m]
//
// Each command prints a JSON description of what it did on stdout.
// Logging goes to stderr. Directories and program locations come from
// the environment (PLMCPREP_*, README_INPUT_DIR, README_OUTPUT_DIR,
// PLMC_DIR), an optional plmcprep config file, or the global flags.
package main

import (
	"context"
	"os"
	"os/signal"

	. "github.com/andrew-torda/plmcprep/pkg/seq/common"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(ExitFailure)
	}
}
