package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigManager_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cm.GetConfig())

	// The defaults must have been written back for the user to edit.
	_, err = os.Stat(path)
	assert.NoError(t, err)

	// A second manager reads the file it just wrote.
	cm2, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.Equal(t, cm.GetConfig(), cm2.GetConfig())
}

func TestNewConfigManager_EmptyPathUsesDefaults(t *testing.T) {
	cm, err := NewConfigManager("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cm.GetConfig())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
tuning:
  min_food_reserve: 80
sim:
  max_turns: 42
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cm, err := NewConfigManager(path)
	require.NoError(t, err)
	cfg := cm.GetConfig()

	assert.Equal(t, 80, cfg.Tuning.MinFoodReserve)
	assert.Equal(t, 42, cfg.Sim.MaxTurns)
	// Untouched keys stay at their defaults.
	assert.Equal(t, 10, cfg.Tuning.CriticalFoodLevel)
	assert.Equal(t, 40, cfg.Sim.Width)
	assert.Equal(t, "balanced", cfg.Bot.Strategy)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuning: [not: a: map"), 0644))

	_, err := NewConfigManager(path)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cm, err := NewConfigManager(path)
	require.NoError(t, err)

	cfg := cm.GetConfig()
	cfg.Tuning.ProbeDivisor = 3
	cfg.Sim.Players = []SimPlayerConfig{{Strategy: "explorer"}}
	require.NoError(t, cm.SaveConfig())

	reloaded, err := NewConfigManager(path)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.GetConfig().Tuning.ProbeDivisor)
	assert.Equal(t, []SimPlayerConfig{{Strategy: "explorer"}}, reloaded.GetConfig().Sim.Players)
}

func TestDefaultTuning_SelfConsistent(t *testing.T) {
	tuning := DefaultTuning()

	assert.Less(t, tuning.EarlyGameEnd, tuning.MidGameEnd)
	assert.Less(t, tuning.CriticalFoodLevel, tuning.MinFoodReserve)
	assert.LessOrEqual(t, tuning.ScanRadiusBase, tuning.ScanRadiusMax)
	assert.Greater(t, tuning.ProbeDivisor, 0)
	assert.Greater(t, tuning.ConvertChunk, 0)
}
