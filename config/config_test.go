package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/cuttlecore/heuristic"
)

func TestSaveLoadSearchConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "search.json")

	cfg := DefaultSearchConfig()
	cfg.Iterations = 5000
	cfg.Workers = 4
	cfg.HandLimit = 8

	require.NoError(t, SaveSearchConfig(cfg, path))

	got, err := LoadSearchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadSearchConfigFallsBackOnMissingFile(t *testing.T) {
	got, err := LoadSearchConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Equal(t, DefaultSearchConfig(), got)
}

func TestLoadSearchConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"iterations": 42}`), 0o644))

	got, err := LoadSearchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Iterations)
	assert.Equal(t, DefaultSearchConfig().ExplorationParam, got.ExplorationParam)
}

func TestMCTSConfigTranslatesFields(t *testing.T) {
	cfg := DefaultSearchConfig()
	cfg.Iterations = 10
	cfg.Workers = 2

	mc := cfg.MCTSConfig(heuristic.DefaultWeights())
	assert.Equal(t, 10, mc.Iterations)
	assert.Equal(t, 2, mc.Workers)
}

func TestMovegenOptionsTranslatesHandLimit(t *testing.T) {
	cfg := DefaultSearchConfig()
	cfg.HandLimit = 6
	assert.Equal(t, 6, cfg.MovegenOptions().HandLimit)
}
