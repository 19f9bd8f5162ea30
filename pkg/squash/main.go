// 29 April 2020

package squash

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/colstat"
	"github.com/andrew-torda/plmcprep/pkg/reformat"
	. "github.com/andrew-torda/plmcprep/pkg/seq/common"
)

// Options are the optional extras from the command line.
type Options struct {
	PlotFile  string      // png of column occupancy, if set
	StatsFile string      // csv of column occupancy, if set
	Logger    *log.Logger // nil means warnings only, on stderr
}

// MyMain is the top level main, after parsing the command line.
// Empty file names mean stdin and stdout.
func MyMain(infile, outfile string, opts *Options) int {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
	}

	set, err := a2m.ReadFile(infile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err, "(the inputfile)")
		return ExitFailure
	}
	if set.NSeq() == 0 {
		fmt.Fprintln(os.Stderr, "no sequences found in", nameOf(infile, "stdin"))
		return ExitFailure
	}
	sq, st, err := a2m.Clean(set)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	if err := a2m.WriteFile(outfile, sq); err != nil {
		fmt.Fprintln(os.Stderr, "Fail writing to", nameOf(outfile, "os.Stdout"), err)
		return ExitFailure
	}
	reformat.LogStats(logger, nameOf(outfile, "stdout"), st)

	if opts.PlotFile == "" && opts.StatsFile == "" {
		return ExitSuccess
	}
	occ, err := colstat.Calc(sq)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	logger.Info("column occupancy", "ncol", len(occ.NonGap), "half_empty", occ.NSparse(0.5))
	if opts.StatsFile != "" {
		if err := occ.CSVFile(opts.StatsFile); err != nil {
			fmt.Fprintln(os.Stderr, "Fail writing stats", err)
			return ExitFailure
		}
	}
	if opts.PlotFile != "" {
		title := fmt.Sprintf("%s: %d sequences", st.Query, st.NSeq)
		if err := occ.PlotFile(opts.PlotFile, title); err != nil {
			fmt.Fprintln(os.Stderr, "Fail writing plot", err)
			return ExitFailure
		}
	}
	return ExitSuccess
}

func nameOf(fname, dflt string) string {
	if fname == "" || fname == "-" {
		return dflt
	}
	return fname
}
