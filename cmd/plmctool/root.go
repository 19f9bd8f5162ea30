package main

import (
	"encoding/json"
	"io"
	"os"
	"path"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/plmcprep/pkg/config"
	"github.com/andrew-torda/plmcprep/pkg/extool"
	"github.com/andrew-torda/plmcprep/pkg/tools"
)

var (
	verbose bool
	vpr     = config.New()
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: path.Base(os.Args[0]), ReportTimestamp: true})
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "log debugging detail")
	pf.String("output-dir", "", "directory for results")
	pf.String("plmc-bin", "", "plmc program")
	pf.String("reformat-bin", "", "hh-suite reformat.pl script")
	for key, flag := range map[string]string{
		"output_dir":   "output-dir",
		"plmc_bin":     "plmc-bin",
		"reformat_bin": "reformat-bin",
	} {
		if err := vpr.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

var rootCmd = &cobra.Command{
	Use:           "plmctool",
	Short:         "Prepare alignments for plmc and fit models",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(log.InfoLevel)
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// newTools reads the configuration only when a command needs it, so
// --help works in a broken environment.
func newTools() (*tools.Tools, error) {
	cfg, err := config.FromViper(vpr)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration", "output_dir", cfg.OutputDir, "plmc", cfg.PlmcBin, "reformat", cfg.ReformatBin)
	return tools.New(cfg, extool.Exec{}, logger), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fail logs the error, since cobra has been told to keep quiet.
func fail(err error) error {
	if err != nil {
		logger.Error(err)
	}
	return err
}
