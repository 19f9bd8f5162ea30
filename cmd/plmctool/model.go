package main

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/plmcprep/pkg/tools"
)

var modelReq tools.ModelRequest

func init() {
	rootCmd.AddCommand(modelCmd)

	f := modelCmd.Flags()
	f.StringVarP(&modelReq.AlignmentPath, "alignment", "a", "", "a2m alignment, already cleaned")
	f.StringVarP(&modelReq.FocusSeqID, "focus", "f", "", "identifier of the focus sequence")
	f.StringVarP(&modelReq.OutputDir, "out-dir", "d", "", "directory for the model files (default --output-dir)")
	f.StringVarP(&modelReq.OutPrefix, "prefix", "", "", "name of the model files (default uniref100)")
	f.Float64VarP(&modelReq.Params.LambdaE, "lambda-e", "", 0, "coupling regularisation (0 means 16.2)")
	f.Float64VarP(&modelReq.Params.LambdaH, "lambda-h", "", 0, "field regularisation (0 means 0.01)")
	f.IntVarP(&modelReq.Params.MaxIter, "max-iter", "m", 0, "maximum iterations (0 means 200)")
	f.Float64VarP(&modelReq.Params.Theta, "theta", "t", 0, "reweighting threshold (0 means 0.2)")
	modelCmd.MarkFlagRequired("alignment")
	modelCmd.MarkFlagRequired("focus")

	f.SortFlags = false
}

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Fit a Potts model to an alignment with plmc",
	Long: `Fit a Potts model to an alignment with plmc

The alignment should have come from 'plmctool convert', so the focus
sequence has no gaps. Two files are written, <prefix>.model_params and
<prefix>.EC. Unset parameters take the values used for EV+Onehot.

Example usage:
	plmctool model -a BLAT_ECOLX.a2m -f BLAT_ECOLX --prefix blat
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTools()
		if err != nil {
			return fail(err)
		}
		res, err := t.GenerateModel(cmd.Context(), modelReq)
		if err != nil {
			return fail(err)
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}
