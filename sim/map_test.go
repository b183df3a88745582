package sim

import (
	"testing"

	"ensibot/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	m, err := NewMap(4, 3)
	require.NoError(t, err)

	assert.Equal(t, core.MapSize{Width: 4, Height: 3}, m.Size())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			tile := m.At(core.Coord{X: x, Y: y})
			assert.Equal(t, core.TerrainDesert, tile.Terrain)
			assert.Equal(t, core.OwnerNeutral, tile.Owner)
		}
	}

	_, err = NewMap(0, 3)
	assert.Error(t, err)
	_, err = NewMap(4, -1)
	assert.Error(t, err)
}

func TestMapAt_DistinctCells(t *testing.T) {
	m, err := NewMap(4, 3)
	require.NoError(t, err)

	m.At(core.Coord{X: 3, Y: 0}).Army = 7
	m.At(core.Coord{X: 0, Y: 1}).Army = 9

	assert.Equal(t, 7, m.At(core.Coord{X: 3, Y: 0}).Army)
	assert.Equal(t, 9, m.At(core.Coord{X: 0, Y: 1}).Army)
	assert.Equal(t, 0, m.At(core.Coord{X: 1, Y: 1}).Army)
}

func genConfig(players int) core.SimConfig {
	cfg := core.SimConfig{
		Width:       20,
		Height:      20,
		Seed:        7,
		StartingPop: 50,
	}
	for i := 0; i < players; i++ {
		cfg.Players = append(cfg.Players, core.SimPlayerConfig{Strategy: "balanced"})
	}
	return cfg
}

func TestGenerate_Deterministic(t *testing.T) {
	first, capsA, err := Generate(genConfig(2))
	require.NoError(t, err)
	second, capsB, err := Generate(genConfig(2))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, capsA, capsB)

	// A different seed produces a different world.
	cfg := genConfig(2)
	cfg.Seed = 8
	third, _, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestGenerate_PlacesCapitals(t *testing.T) {
	m, capitals, err := Generate(genConfig(3))
	require.NoError(t, err)
	require.Len(t, capitals, 3)

	seen := make(map[core.Coord]bool)
	for i, c := range capitals {
		assert.True(t, m.InBounds(c))
		assert.False(t, seen[c], "capitals must not collide")
		seen[c] = true

		tile := m.At(c)
		assert.Equal(t, core.TerrainCity, tile.Terrain)
		assert.Equal(t, uint8(i+1), tile.Owner)
		assert.Equal(t, 50, tile.Population)
		assert.Equal(t, 0, tile.Army)
	}
}

func TestGenerate_PlayerCountBounds(t *testing.T) {
	_, _, err := Generate(genConfig(0))
	assert.Error(t, err)

	_, _, err = Generate(genConfig(9))
	assert.Error(t, err)

	_, caps, err := Generate(genConfig(8))
	assert.NoError(t, err)
	assert.Len(t, caps, 8)
}
