// Package config loads the YAML configuration of the linsolve demo harness.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/solver"
)

// EnvConfigPath names the environment variable (also read from .env) that
// points at the config file.
const EnvConfigPath = "LINSOLVE_CONFIG"

// DefaultPath is used when neither a flag nor EnvConfigPath is set.
const DefaultPath = "linsolve.yaml"

// Defaults of the demo system.
const (
	DefaultDimension  = 25
	DefaultTolerance  = 1e-10
	DefaultOffScale   = 0.1
	DefaultSeed       = 1
	DefaultReportPath = "linsolve-report.yaml"
	DefaultPlotPath   = "linsolve-convergence.png"
)

// ErrInvalidConfig marks a config that loaded but cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid")

// SystemConfig describes the generated tridiagonal system A·x = b.
type SystemConfig struct {
	// Dimension is the order n of A.
	Dimension int `yaml:"dimension"`
	// OffScale scales the U[0,1) off-diagonal entries; the diagonal is 1.
	// An explicit 0 yields the identity.
	OffScale *float64 `yaml:"off_scale,omitempty"`
	// Seed drives the generation of A and b; 0 is a valid seed.
	Seed *int64 `yaml:"seed,omitempty"`
}

// SolverConfig mirrors the solver options.
type SolverConfig struct {
	Tolerance      float64 `yaml:"tolerance"`
	PreferCholesky *bool   `yaml:"prefer_cholesky,omitempty"`
	MaxIterations  int     `yaml:"max_iterations"`
	// InitialSeed, when set, starts the iterative methods from a seeded
	// random guess instead of zeros.
	InitialSeed *int64 `yaml:"initial_seed,omitempty"`
}

// OutputConfig names the artefacts a run writes. Empty paths disable them.
type OutputConfig struct {
	ReportPath string `yaml:"report_path"`
	PlotPath   string `yaml:"plot_path"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	System SystemConfig `yaml:"system"`
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolvePath picks the config path: explicit flag, then EnvConfigPath,
// then DefaultPath.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Default returns the demo defaults: n = 25, tolerance 1e-10, Cholesky on.
func Default() *AppConfig {
	prefer := solver.DefaultPreferCholesky
	off, seed := DefaultOffScale, int64(DefaultSeed)
	return &AppConfig{
		System: SystemConfig{
			Dimension: DefaultDimension,
			OffScale:  &off,
			Seed:      &seed,
		},
		Solver: SolverConfig{
			Tolerance:      DefaultTolerance,
			PreferCholesky: &prefer,
			MaxIterations:  solver.DefaultMaxIterations,
		},
		Output: OutputConfig{
			ReportPath: DefaultReportPath,
			PlotPath:   DefaultPlotPath,
		},
	}
}

// Validate rejects values the solver options would panic on, and a system
// section that cannot be generated. Call it after defaults are applied.
func (c *AppConfig) Validate() error {
	switch {
	case c.System.Dimension < 2:
		return fmt.Errorf("%w: system.dimension must be >= 2, got %d", ErrInvalidConfig, c.System.Dimension)
	case c.System.OffScale == nil || c.System.Seed == nil:
		return fmt.Errorf("%w: system.off_scale and system.seed must be set", ErrInvalidConfig)
	case !(*c.System.OffScale >= 0) || math.IsInf(*c.System.OffScale, 0):
		return fmt.Errorf("%w: system.off_scale must be finite and >= 0, got %g", ErrInvalidConfig, *c.System.OffScale)
	case !(c.Solver.Tolerance > 0) || math.IsInf(c.Solver.Tolerance, 0):
		return fmt.Errorf("%w: solver.tolerance must be finite and > 0, got %g", ErrInvalidConfig, c.Solver.Tolerance)
	case c.Solver.MaxIterations <= 0:
		return fmt.Errorf("%w: solver.max_iterations must be > 0, got %d", ErrInvalidConfig, c.Solver.MaxIterations)
	}
	return nil
}

// SolverOptions translates the solver section into solver.Option values.
func (c *AppConfig) SolverOptions() []solver.Option {
	opts := []solver.Option{
		solver.WithTolerance(c.Solver.Tolerance),
		solver.WithMaxIterations(c.Solver.MaxIterations),
	}
	if c.Solver.PreferCholesky != nil {
		opts = append(opts, solver.WithPreferCholesky(*c.Solver.PreferCholesky))
	}
	if c.Solver.InitialSeed != nil {
		opts = append(opts, solver.WithSeed(*c.Solver.InitialSeed))
	}
	return opts
}

func applyDefaults(cfg *AppConfig) {
	if cfg.System.Dimension == 0 {
		cfg.System.Dimension = DefaultDimension
	}
	if cfg.System.OffScale == nil {
		off := DefaultOffScale
		cfg.System.OffScale = &off
	}
	if cfg.System.Seed == nil {
		seed := int64(DefaultSeed)
		cfg.System.Seed = &seed
	}
	if cfg.Solver.Tolerance == 0 {
		cfg.Solver.Tolerance = DefaultTolerance
	}
	if cfg.Solver.MaxIterations == 0 {
		cfg.Solver.MaxIterations = solver.DefaultMaxIterations
	}
	if cfg.Solver.PreferCholesky == nil {
		prefer := solver.DefaultPreferCholesky
		cfg.Solver.PreferCholesky = &prefer
	}
}
