package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/reformat"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean input [output]",
	Short: "Remove the query's gap columns from an a2m alignment",
	Long: `Remove the query's gap columns from an a2m alignment

Without an output file, the input is replaced. An output of "-" means
stdout. The statistics of what
was removed are printed as JSON.
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[0]
		if len(args) == 2 {
			out = args[1]
		}
		st, err := a2m.CleanFile(in, out)
		if err != nil {
			return fail(err)
		}
		reformat.LogStats(logger, out, st)
		if out == "-" {
			return nil // the alignment went to stdout
		}
		return printJSON(cmd.OutOrStdout(), st)
	},
}
