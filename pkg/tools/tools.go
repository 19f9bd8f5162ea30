// Package tools is what a service sees: the two operations, converting
// an a3m alignment and fitting a plmc model, with their arguments
// checked and their outputs described. Arguments are checked before any
// program is started.
package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/andrew-torda/plmcprep/pkg/a2m"
	"github.com/andrew-torda/plmcprep/pkg/config"
	"github.com/andrew-torda/plmcprep/pkg/extool"
	"github.com/andrew-torda/plmcprep/pkg/plmc"
	"github.com/andrew-torda/plmcprep/pkg/reformat"
)

const (
	HHSuiteURL = "https://github.com/soedinglab/hh-suite"
	PlmcURL    = "https://github.com/debbiemarkslab/plmc"
	a2mExt     = ".a2m"
)

// Artifact is a file we read or wrote.
type Artifact struct {
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Result is returned by both operations. Stats is only set by a
// conversion, Parameters only by model generation.
type Result struct {
	RunID      uuid.UUID    `json:"run_id"`
	Message    string       `json:"message"`
	Reference  string       `json:"reference"`
	Parameters *ModelParams `json:"parameters,omitempty"`
	Artifacts  []Artifact   `json:"artifacts"`
	Stats      *a2m.Stats   `json:"stats,omitempty"`
}

// ModelParams is how the plmc parameters are reported.
type ModelParams struct {
	LambdaE  float64 `json:"lambda_e"`
	LambdaH  float64 `json:"lambda_h"`
	MaxIter  int     `json:"max_iterations"`
	Theta    float64 `json:"theta"`
	FocusSeq string  `json:"focus_seq"`
}

// Tools carries what both operations need.
type Tools struct {
	cfg    config.Config
	runner extool.Runner
	logger *log.Logger
}

// New returns Tools that run programs with runner. A nil runner means
// extool.Exec and a nil logger means no logging.
func New(cfg config.Config, runner extool.Runner, logger *log.Logger) *Tools {
	if runner == nil {
		runner = extool.Exec{}
	}
	return &Tools{cfg: cfg, runner: runner, logger: extool.Logger(logger)}
}

// ConvertRequest asks for an a3m file to become a clean a2m file.
// If A2mPath is empty, the output goes to the configured output
// directory, named from OutPrefix or, failing that, the input's stem.
type ConvertRequest struct {
	A3mPath   string `json:"a3m_file_path"`
	A2mPath   string `json:"a2m_file_path,omitempty"`
	OutPrefix string `json:"out_prefix,omitempty"`
}

// ModelRequest asks for a plmc model. Zero parameters take the preset,
// an empty OutputDir is the configured one and an empty OutPrefix is
// plmc.DefaultPrefix.
type ModelRequest struct {
	AlignmentPath string      `json:"alignment_path"`
	FocusSeqID    string      `json:"focus_seq_id"`
	OutputDir     string      `json:"output_dir,omitempty"`
	OutPrefix     string      `json:"out_prefix,omitempty"`
	Params        plmc.Params `json:"-"`
}

// mustExist says clearly what is missing, before we start any program.
func mustExist(what, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s not found: %s: %w", what, path, err)
		}
		return fmt.Errorf("checking %s: %w", what, err)
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func abs(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return path
}

// ConvertA3mToA2m runs reformat.pl and then removes the query's gap
// columns, leaving something plmc can use.
func (t *Tools) ConvertA3mToA2m(ctx context.Context, req ConvertRequest) (Result, error) {
	if req.A3mPath == "" {
		return Result{}, errors.New("path to a3m alignment file must be provided")
	}
	if err := mustExist("a3m file", req.A3mPath); err != nil {
		return Result{}, err
	}
	out := req.A2mPath
	if out == "" {
		prefix := req.OutPrefix
		if prefix == "" {
			prefix = stem(req.A3mPath)
		}
		out = filepath.Join(t.cfg.OutputDir, prefix+a2mExt)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return Result{}, fmt.Errorf("making output directory: %w", err)
	}

	id := uuid.New()
	logger := t.logger.With("run", id)
	st, err := reformat.Convert(ctx, t.runner, t.cfg.ReformatBin, req.A3mPath, out, logger)
	if err != nil {
		return Result{}, err
	}
	return Result{
		RunID:     id,
		Message:   "Successfully converted A3M to A2M format and cleaned query gaps",
		Reference: HHSuiteURL,
		Artifacts: []Artifact{
			{Description: "Input A3M alignment file", Path: abs(req.A3mPath)},
			{Description: "Output A2M alignment file with query gaps removed (ready for model generation)",
				Path: abs(out)},
		},
		Stats: &st,
	}, nil
}

// GenerateModel runs plmc with the EV+Onehot preset, or whatever
// parameters the caller changed.
func (t *Tools) GenerateModel(ctx context.Context, req ModelRequest) (Result, error) {
	if req.AlignmentPath == "" {
		return Result{}, errors.New("path to protein alignment file (a2m format) must be provided")
	}
	if req.FocusSeqID == "" {
		return Result{}, errors.New("focus sequence identifier must be provided")
	}
	if err := mustExist("alignment file", req.AlignmentPath); err != nil {
		return Result{}, err
	}
	p := req.Params
	p.FocusSeq = req.FocusSeqID
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	dir := req.OutputDir
	if dir == "" {
		dir = t.cfg.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("making output directory: %w", err)
	}
	prefix := req.OutPrefix
	if prefix == "" {
		prefix = plmc.DefaultPrefix
	}
	out := plmc.ArtifactsFor(dir, prefix)

	id := uuid.New()
	if err := plmc.Run(ctx, t.runner, t.cfg.PlmcBin, p, req.AlignmentPath, out, t.logger.With("run", id)); err != nil {
		return Result{}, err
	}
	return Result{
		RunID:     id,
		Message:   "plmc model generated successfully for " + p.FocusSeq,
		Reference: PlmcURL,
		Parameters: &ModelParams{
			LambdaE:  p.LambdaE,
			LambdaH:  p.LambdaH,
			MaxIter:  p.MaxIter,
			Theta:    p.Theta,
			FocusSeq: p.FocusSeq,
		},
		Artifacts: []Artifact{
			{Description: "Model parameters file (for EV predictor)", Path: abs(out.Params)},
			{Description: "Evolutionary couplings file (for EV predictor)", Path: abs(out.Couplings)},
		},
	}, nil
}
