// Package reformat turns a3m alignments into a2m with hh-suite's
// reformat.pl and then squashes out the query's gap columns, so the
// result can go straight to plmc.
package reformat

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/extool"
)

// The formats we ask reformat.pl to translate between.
const (
	SrcFmt = "a3m"
	DstFmt = "a2m"
)

// Args returns the arguments for reformat.pl.
func Args(a3mFile, a2mFile string) []string {
	return []string{SrcFmt, DstFmt, a3mFile, a2mFile}
}

// Convert runs bin (reformat.pl) to write a2mFile from a3mFile, then
// cleans a2mFile in place. If reformat.pl fails, we return its
// *extool.ExternalToolError and do not touch the output.
func Convert(ctx context.Context, runner extool.Runner, bin, a3mFile, a2mFile string,
	logger *log.Logger) (a2m.Stats, error) {
	logger = extool.Logger(logger)
	logger.Info("converting a3m to a2m", "in", a3mFile, "out", a2mFile, "reformat", bin)
	if _, err := extool.RunLogged(ctx, runner, logger, bin, Args(a3mFile, a2mFile)...); err != nil {
		return a2m.Stats{}, err
	}
	logger.Info("conversion complete", "out", a2mFile)

	st, err := a2m.CleanFile(a2mFile, a2mFile)
	if err != nil {
		return a2m.Stats{}, fmt.Errorf("cleaning query gaps: %w", err)
	}
	LogStats(logger, a2mFile, st)
	return st, nil
}

// LogStats reports what cleaning did, much as the old script printed it.
func LogStats(logger *log.Logger, fname string, st a2m.Stats) {
	logger.Info("query gaps cleaned", "file", fname, "nseq", st.NSeq, "query", st.Query,
		"orig_len", st.OrigLen, "gaps_removed", st.NGap, "new_len", st.NewLen)
}
