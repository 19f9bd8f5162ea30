package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/plmcprep/pkg/tools"
)

var convertReq tools.ConvertRequest

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertReq.A3mPath, "input", "i", "", "a3m alignment to convert")
	convertCmd.Flags().StringVarP(&convertReq.A2mPath, "output", "o", "", "a2m file to write (default <output-dir>/<prefix>.a2m)")
	convertCmd.Flags().StringVarP(&convertReq.OutPrefix, "prefix", "", "", "output name if --output is not given (default input file stem)")
	convertCmd.MarkFlagRequired("input")

	convertCmd.Flags().SortFlags = false
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an a3m alignment to a2m and remove the query's gap columns",
	Long: `Convert an a3m alignment to a2m and remove the query's gap columns

reformat.pl from hh-suite does the conversion. Then every column in which
the first (query) sequence has a gap is removed, which is what plmc needs.

Example usage:
	plmctool convert -i BLAT_ECOLX.a3m -o BLAT_ECOLX.a2m
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTools()
		if err != nil {
			return fail(err)
		}
		res, err := t.ConvertA3mToA2m(cmd.Context(), convertReq)
		if err != nil {
			return fail(err)
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}
