// Package report records the outcome of a demo run: a YAML document with the
// run attributes and a PNG plot of the residual histories.
package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/solver"
)

// ErrEmptyReport is returned by Load when the file holds no runs.
var ErrEmptyReport = errors.New("report: no runs recorded")

// Run is one solve of the system.
type Run struct {
	Method       string    `yaml:"method"`
	Converged    bool      `yaml:"converged"`
	Iterations   int       `yaml:"iterations"`
	ResidualNorm float64   `yaml:"residual_norm"`
	ErrorVsRef   float64   `yaml:"error_vs_reference"`
	History      []float64 `yaml:"history,flow,omitempty"`
}

// Report holds the attributes of one demo invocation.
type Report struct {
	CreatedAt      time.Time `yaml:"created_at"`
	Dimension      int       `yaml:"dimension"`
	Tolerance      float64   `yaml:"tolerance"`
	PreferCholesky bool      `yaml:"prefer_cholesky"`
	MaxIterations  int       `yaml:"max_iterations"`
	Seed           int64     `yaml:"seed"`
	Runs           []Run     `yaml:"runs"`
}

// NewRun summarizes res against the reference solution ref.
// ErrorVsRef is ‖X − ref‖₂; it is NaN when ref is nil or of another length.
func NewRun(res solver.Result, ref []float64) Run {
	run := Run{
		Method:       res.Method.String(),
		Converged:    res.Converged,
		Iterations:   res.Iterations,
		ResidualNorm: res.ResidualNorm,
		History:      append([]float64(nil), res.History...),
	}
	if ref != nil && len(ref) == len(res.X) {
		run.ErrorVsRef = floats.Distance(res.X, ref, 2)
	} else {
		run.ErrorVsRef = math.NaN()
	}
	return run
}

// Save writes r to path as YAML, creating directories as needed.
func Save(path string, r *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a report previously written by Save.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: parse %s: %w", path, err)
	}
	if len(r.Runs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyReport)
	}
	return &r, nil
}

// Run returns the first run recorded for method, if any.
func (r *Report) Run(method string) (Run, bool) {
	for _, run := range r.Runs {
		if run.Method == method {
			return run, true
		}
	}
	return Run{}, false
}
