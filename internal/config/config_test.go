package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/solver"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, 25, cfg.System.Dimension)
	require.Equal(t, 1e-10, cfg.Solver.Tolerance)
	require.True(t, *cfg.Solver.PreferCholesky)
	require.Equal(t, solver.DefaultMaxIterations, cfg.Solver.MaxIterations)
}

func TestLoad_PartialFileFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	yml := "system:\n  dimension: 8\nsolver:\n  prefer_cholesky: false\n  initial_seed: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.System.Dimension)
	require.Equal(t, config.DefaultOffScale, *cfg.System.OffScale)
	require.Equal(t, int64(config.DefaultSeed), *cfg.System.Seed)
	require.Equal(t, config.DefaultTolerance, cfg.Solver.Tolerance)
	require.False(t, *cfg.Solver.PreferCholesky)
	require.Equal(t, int64(3), *cfg.Solver.InitialSeed)

	sv := solver.New(cfg.SolverOptions()...)
	require.False(t, sv.PreferCholesky())
	require.Equal(t, 1e-10, sv.Tolerance())
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("system: [unclosed"), 0o644))
	_, err := config.Load(bad)
	require.Error(t, err)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("solver:\n  tolerance: -1\n"), 0o644))
	_, err = config.Load(neg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	tiny := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(tiny, []byte("system:\n  dimension: 1\n"), 0o644))
	_, err = config.Load(tiny)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")
	want := config.Default()
	want.System.Dimension = 12
	want.Output.PlotPath = ""

	require.NoError(t, config.Save(path, want))
	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	require.Equal(t, config.DefaultPath, config.ResolvePath(""))

	t.Setenv(config.EnvConfigPath, "from-env.yaml")
	require.Equal(t, "from-env.yaml", config.ResolvePath(""))
	require.Equal(t, "flag.yaml", config.ResolvePath("flag.yaml"))
}

func TestLoad_NonFiniteRejected(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"inf-tolerance":  "solver:\n  tolerance: .inf\n",
		"nan-tolerance":  "solver:\n  tolerance: .nan\n",
		"inf-off-scale":  "system:\n  off_scale: .inf\n",
		"nan-off-scale":  "system:\n  off_scale: .nan\n",
		"negative-scale": "system:\n  off_scale: -0.1\n",
	}
	for name, yml := range cases {
		path := filepath.Join(dir, name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

		var err error
		require.NotPanics(t, func() {
			var cfg *config.AppConfig
			if cfg, err = config.Load(path); err == nil {
				solver.New(cfg.SolverOptions()...)
			}
		}, name)
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestLoad_ExplicitZerosKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("system:\n  off_scale: 0\n  seed: 0\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Zero(t, *cfg.System.OffScale)
	require.Zero(t, *cfg.System.Seed)
}
