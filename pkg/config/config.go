// Package config finds the directories and programs the tools need.
// Values come from, in rising priority, built in defaults, a config
// file and environment variables. The environment names used by the
// older python scripts (README_INPUT_DIR, README_OUTPUT_DIR, PLMC_DIR)
// still work.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds where things live.
type Config struct {
	ProjectRoot string `mapstructure:"project_root"`
	InputDir    string `mapstructure:"input_dir"`
	OutputDir   string `mapstructure:"output_dir"`
	PlmcDir     string `mapstructure:"plmc_dir"`
	PlmcBin     string `mapstructure:"plmc_bin"`
	ReformatBin string `mapstructure:"reformat_bin"`
}

// Names of programs, used if we cannot find anything better.
const (
	PlmcName     = "plmc"
	ReformatName = "reformat.pl"
)

// New returns a viper set up with our environment variables and config
// file search path. Callers can bind command line flags to it before
// calling FromViper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PLMCPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("input_dir", "PLMCPREP_INPUT_DIR", "README_INPUT_DIR")
	v.BindEnv("output_dir", "PLMCPREP_OUTPUT_DIR", "README_OUTPUT_DIR")
	v.BindEnv("plmc_dir", "PLMCPREP_PLMC_DIR", "PLMC_DIR")
	for _, k := range []string{"project_root", "plmc_bin", "reformat_bin"} {
		v.BindEnv(k)
	}

	if cfgPath := os.Getenv("PLMCPREP_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("plmcprep")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "plmcprep"))
		}
	}
	return v
}

// Load is FromViper(New()).
func Load() (Config, error) { return FromViper(New()) }

// FromViper reads any config file, fills in defaults relative to the
// project root, finds the programs and makes the input and output
// directories.
func FromViper(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("project root: %w", err)
		}
		c.ProjectRoot = wd
	}
	if c.InputDir == "" {
		c.InputDir = filepath.Join(c.ProjectRoot, "tmp", "inputs")
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.ProjectRoot, "tmp", "outputs")
	}
	if c.PlmcDir == "" {
		c.PlmcDir = filepath.Join(c.ProjectRoot, "repo", "plmc")
	}
	c.PlmcDir = expandHome(c.PlmcDir)

	if c.PlmcBin == "" {
		c.PlmcBin = findProg(PlmcName,
			filepath.Join(c.PlmcDir, "bin", PlmcName),
			filepath.Join(c.ProjectRoot, "env", "bin", PlmcName))
	}
	if c.ReformatBin == "" {
		c.ReformatBin = findProg(ReformatName,
			filepath.Join(c.ProjectRoot, "env", "bin", ReformatName),
			filepath.Join(c.ProjectRoot, "env", "scripts", ReformatName))
	}

	for _, d := range []string{c.InputDir, c.OutputDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return Config{}, fmt.Errorf("making directory: %w", err)
		}
	}
	return c, nil
}

// findProg returns the first candidate that exists, then whatever is
// on the PATH, then just the bare name and hope.
func findProg(name string, candidates ...string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if p, err := exec.LookPath(name); err == nil {
		return p
	}
	return name
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
