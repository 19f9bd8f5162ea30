// Package plmc builds the command line for plmc
// (https://github.com/debbiemarkslab/plmc) and runs it. plmc fits a
// Potts model to an a2m alignment by pseudolikelihood maximisation. We
// never look inside what it writes; we only say where it should go.
package plmc

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/plmcprep/pkg/extool"
)

// Suffixes for the two files plmc writes, as used by the EV+Onehot scripts.
const (
	ParamsSuffix    = ".model_params"
	CouplingsSuffix = ".EC"
	DefaultPrefix   = "uniref100"
)

// Params are the knobs we pass to plmc.
type Params struct {
	FocusSeq string  // sequence identifier of the focus sequence
	LambdaE  float64 // L2 regularisation of couplings
	LambdaH  float64 // L2 regularisation of fields (single sites)
	MaxIter  int     // maximum optimisation iterations
	Theta    float64 // sequence reweighting threshold
}

// Preset returns the parameters the EV+Onehot model was built with.
func Preset(focus string) Params {
	return Params{FocusSeq: focus, LambdaE: 16.2, LambdaH: 0.01, MaxIter: 200, Theta: 0.2}
}

// WithDefaults fills any zero numbers from the preset.
func (p Params) WithDefaults() Params {
	d := Preset(p.FocusSeq)
	if p.LambdaE == 0 {
		p.LambdaE = d.LambdaE
	}
	if p.LambdaH == 0 {
		p.LambdaH = d.LambdaH
	}
	if p.MaxIter == 0 {
		p.MaxIter = d.MaxIter
	}
	if p.Theta == 0 {
		p.Theta = d.Theta
	}
	return p
}

// Validate catches parameters plmc would choke on.
func (p Params) Validate() error {
	switch {
	case p.FocusSeq == "":
		return errors.New("focus sequence identifier must be provided")
	case p.LambdaE < 0 || p.LambdaH < 0:
		return errors.New("regularisation coefficients must not be negative")
	case p.MaxIter < 0:
		return errors.New("maximum iterations must not be negative")
	case p.Theta < 0 || p.Theta > 1:
		return errors.New("theta must be between 0 and 1")
	}
	return nil
}

// Artifacts are the files plmc leaves behind.
type Artifacts struct {
	Params    string // binary model parameters
	Couplings string // text file of evolutionary couplings
}

// ArtifactsFor names the output files for a directory and prefix.
func ArtifactsFor(dir, prefix string) Artifacts {
	return Artifacts{
		Params:    filepath.Join(dir, prefix+ParamsSuffix),
		Couplings: filepath.Join(dir, prefix+CouplingsSuffix),
	}
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Args gives the plmc command line, without the program name.
// The -g flag says the alignment is in a2m with focus/gap handling,
// and the alignment file comes last.
func Args(p Params, alignment string, out Artifacts) []string {
	return []string{
		"-o", out.Params,
		"-c", out.Couplings,
		"-f", p.FocusSeq,
		"-le", ftoa(p.LambdaE),
		"-lh", ftoa(p.LambdaH),
		"-m", strconv.Itoa(p.MaxIter),
		"-t", ftoa(p.Theta),
		"-g",
		alignment,
	}
}

// Run runs plmc on an alignment. The alignment should have been
// through a2m cleaning, so the focus sequence has no gaps.
func Run(ctx context.Context, runner extool.Runner, bin string, p Params, alignment string,
	out Artifacts, logger *log.Logger) error {
	logger = extool.Logger(logger)
	if err := p.Validate(); err != nil {
		return err
	}
	logger.Info("running plmc", "bin", bin, "focus", p.FocusSeq, "alignment", alignment)
	if _, err := extool.RunLogged(ctx, runner, logger, bin, Args(p, alignment, out)...); err != nil {
		return err
	}
	logger.Info("plmc finished", "params", out.Params, "couplings", out.Couplings)
	return nil
}
