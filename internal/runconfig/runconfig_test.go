package runconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mstop/internal/runconfig"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := runconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, runconfig.Default(), cfg)
}

func TestLoad_OverlaysProvidedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mstop.yaml")
	contents := "metaheuristic:\n  max_iter: 42\n  n_elites: 9\noutput:\n  format: csv\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := runconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Metaheuristic.MaxIter)
	assert.Equal(t, 9, cfg.Metaheuristic.NElites)
	assert.Equal(t, "csv", cfg.Output.Format)
	// Unset fields keep their Default() values since Load overlays onto it.
	assert.Equal(t, 0.1, cfg.Metaheuristic.MinBeta)
}

func TestDefault_MatchesOriginalBenchmarkBounds(t *testing.T) {
	cfg := runconfig.Default()
	assert.Equal(t, 0.1, cfg.Metaheuristic.MinBeta)
	assert.Equal(t, 0.3, cfg.Metaheuristic.MaxBeta)
	assert.Equal(t, 1000, cfg.Metaheuristic.MaxIter)
	assert.Equal(t, 5, cfg.Metaheuristic.NElites)
}
