package game

import (
	"testing"

	"ensibot/core"

	"github.com/stretchr/testify/assert"
)

func ownedDesert(owner uint8) core.Tile {
	return core.Tile{Terrain: core.TerrainDesert, Owner: owner}
}

func TestScanWorld_RecordsArmiesAndCities(t *testing.T) {
	h := NewMockHost(7, 7)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.SetTile(3, 3, core.Tile{Terrain: core.TerrainCity, Owner: 1, Army: 5})
	h.SetTile(3, 1, core.Tile{Terrain: core.TerrainCity, Owner: core.OwnerNeutral})
	h.SetTile(5, 3, core.Tile{Terrain: core.TerrainCity, Owner: 2, Army: 4})
	h.SetTile(4, 4, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 3})
	// Own tile with zero army must not become a stack.
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 0})

	snap := ScanWorld(h, core.Coord{X: 3, Y: 3}, 3, 256)

	assert.ElementsMatch(t, []ArmyStack{
		{Pos: core.Coord{X: 3, Y: 3}, Count: 5},
		{Pos: core.Coord{X: 4, Y: 4}, Count: 3},
	}, snap.Armies)
	assert.ElementsMatch(t, []CityEntry{
		{Pos: core.Coord{X: 3, Y: 3}, Class: CityOwned},
		{Pos: core.Coord{X: 3, Y: 1}, Class: CityNeutral},
		{Pos: core.Coord{X: 5, Y: 3}, Class: CityEnemy},
	}, snap.Cities)
}

func TestScanWorld_SkipsFog(t *testing.T) {
	h := NewMockHost(5, 5)
	// Grid left empty: every tile reads as fog.
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainCity, Owner: 1, Army: 5})

	snap := ScanWorld(h, core.Coord{X: 2, Y: 2}, 2, 256)

	assert.Len(t, snap.Armies, 1)
	assert.Len(t, snap.Cities, 1)
}

func TestScanWorld_TruncatesAtCapacity(t *testing.T) {
	h := NewMockHost(10, 10)
	h.Fill(ownedDesert(core.OwnerNeutral))
	for x := 0; x < 10; x++ {
		h.SetTile(x, 0, core.Tile{Terrain: core.TerrainCity, Owner: core.OwnerNeutral})
		h.SetTile(x, 1, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 1})
	}

	snap := ScanWorld(h, core.Coord{X: 5, Y: 1}, 9, 3)

	// Both lists stop at capacity; the earliest cells in scan order win.
	assert.Len(t, snap.Cities, 3)
	assert.Len(t, snap.Armies, 3)
	assert.Equal(t, core.Coord{X: 0, Y: 0}, snap.Cities[0].Pos)
}

func TestScanWorld_Deterministic(t *testing.T) {
	h := NewMockHost(9, 9)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.SetTile(1, 1, core.Tile{Terrain: core.TerrainCity, Owner: 1, Army: 2})
	h.SetTile(7, 7, core.Tile{Terrain: core.TerrainCity, Owner: 2, Army: 2})
	h.SetTile(4, 4, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 6})

	first := ScanWorld(h, core.Coord{X: 4, Y: 4}, 4, 256)
	second := ScanWorld(h, core.Coord{X: 4, Y: 4}, 4, 256)

	assert.Equal(t, first, second)
}

func TestScanRadiusForTurn(t *testing.T) {
	tuning := core.DefaultTuning()

	assert.Equal(t, 10, ScanRadiusForTurn(0, tuning))
	assert.Equal(t, 10, ScanRadiusForTurn(99, tuning))
	assert.Equal(t, 11, ScanRadiusForTurn(100, tuning))
	assert.Equal(t, 15, ScanRadiusForTurn(500, tuning))
	assert.Equal(t, 30, ScanRadiusForTurn(2000, tuning))
	assert.Equal(t, 30, ScanRadiusForTurn(1000000, tuning))
}
