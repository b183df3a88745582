package game

import (
	"errors"
	"testing"

	"ensibot/core"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
)

func newEconomicForTest() *EconomicStrategy {
	return NewEconomicStrategy(core.DefaultTuning(), zap.NewNop())
}

func TestEconomic_ConvertsTowardCityGarrison(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 2, Y: 2}
	h.PopValue = 30
	h.ArmyValue = 0
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainCity, Owner: 1})
	h.SetTile(4, 4, core.Tile{Terrain: core.TerrainCity, Owner: 1})

	newEconomicForTest().PlayTurn(h)

	// Two cities want 6 army; balance 30 allows (30-5)/2 = 12, so the
	// full need of 6 converts at the capital.
	assert.Equal(t, []ConvertCommand{
		{City: core.Coord{X: 2, Y: 2}, Count: 6},
	}, h.Converts)
}

func TestEconomic_ConversionBoundedByFoodBalance(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 2, Y: 2}
	h.PopValue = 9
	h.ArmyValue = 0
	for x := 0; x < 5; x++ {
		h.SetTile(x, 0, core.Tile{Terrain: core.TerrainCity, Owner: 1})
	}
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainCity, Owner: 1})

	newEconomicForTest().PlayTurn(h)

	// Six cities want 18 army, but balance 9 only allows (9-5)/2 = 2.
	assert.Equal(t, []ConvertCommand{
		{City: core.Coord{X: 2, Y: 2}, Count: 2},
	}, h.Converts)
}

func TestEconomic_NoConversionWhenGarrisonMet(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 2, Y: 2}
	h.PopValue = 50
	h.ArmyValue = 3
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainCity, Owner: 1})

	newEconomicForTest().PlayTurn(h)

	assert.Empty(t, h.Converts)
}

func TestEconomic_DefendsThreatenedTile(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 0, Y: 0}
	// Own tile at (2,2) faces an enemy stack at (3,2); the neighbour at
	// (1,2) has spare army to gather.
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 1})
	h.SetTile(3, 2, core.Tile{Terrain: core.TerrainDesert, Owner: 2, Army: 4})
	h.SetTile(1, 2, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 5})

	newEconomicForTest().PlayTurn(h)

	assert.Contains(t, h.Moves, MoveCommand{
		From: core.Coord{X: 1, Y: 2}, To: core.Coord{X: 2, Y: 2}, Count: 4,
	})
}

func TestEconomic_ExpandsToOneNeutralCityPerTurn(t *testing.T) {
	h := NewMockHost(7, 7)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 0, Y: 0}
	// Two capture opportunities; only the first in scan order is taken.
	h.SetTile(1, 1, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 3})
	h.SetTile(2, 1, core.Tile{Terrain: core.TerrainCity, Owner: core.OwnerNeutral, Army: 1})
	h.SetTile(5, 5, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 3})
	h.SetTile(5, 6, core.Tile{Terrain: core.TerrainCity, Owner: core.OwnerNeutral, Army: 1})

	newEconomicForTest().PlayTurn(h)

	captures := 0
	for _, m := range h.Moves {
		if m.To == (core.Coord{X: 2, Y: 1}) || m.To == (core.Coord{X: 5, Y: 6}) {
			captures++
			assert.Equal(t, core.Coord{X: 2, Y: 1}, m.To)
			assert.Equal(t, economicExpansionArmy, m.Count)
		}
	}
	assert.Equal(t, 1, captures)
}

func TestEconomic_SkipsDefendedNeutralCity(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 0, Y: 0}
	h.SetTile(1, 1, core.Tile{Terrain: core.TerrainDesert, Owner: 1, Army: 2})
	// Garrison of 2 would not fall to an expansion stack of 2.
	h.SetTile(2, 1, core.Tile{Terrain: core.TerrainCity, Owner: core.OwnerNeutral, Army: 2})

	newEconomicForTest().PlayTurn(h)

	for _, m := range h.Moves {
		assert.NotEqual(t, core.Coord{X: 2, Y: 1}, m.To)
	}
}

func TestEconomic_DistributesCapitalGarrison(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(1))
	h.CapitalValue = core.Coord{X: 2, Y: 2}
	h.SetTile(2, 2, core.Tile{Terrain: core.TerrainCity, Owner: 1, Army: 8})
	h.MoveCapitalFunc = func(city core.Coord) error { return errors.New("smaller") }

	newEconomicForTest().PlayTurn(h)

	// Excess of 5 over the garrison floor flows out in stacks of 2.
	assert.Equal(t, []MoveCommand{
		{From: core.Coord{X: 2, Y: 2}, To: core.Coord{X: 2, Y: 1}, Count: 2},
		{From: core.Coord{X: 2, Y: 2}, To: core.Coord{X: 3, Y: 2}, Count: 2},
		{From: core.Coord{X: 2, Y: 2}, To: core.Coord{X: 2, Y: 3}, Count: 1},
	}, h.Moves)
}

func TestEconomic_RelocatesCapitalOnFirstAcceptedCity(t *testing.T) {
	h := NewMockHost(5, 5)
	h.Fill(ownedDesert(core.OwnerNeutral))
	h.CapitalValue = core.Coord{X: 0, Y: 0}
	h.SetTile(0, 0, core.Tile{Terrain: core.TerrainCity, Owner: 1})
	h.SetTile(1, 0, core.Tile{Terrain: core.TerrainCity, Owner: 1})
	h.SetTile(3, 3, core.Tile{Terrain: core.TerrainCity, Owner: 1})

	// The host only accepts a relocation to a strictly bigger city;
	// here only (3,3) qualifies.
	h.MoveCapitalFunc = func(city core.Coord) error {
		if city != (core.Coord{X: 3, Y: 3}) {
			return errors.New("smaller")
		}
		return nil
	}

	newEconomicForTest().PlayTurn(h)

	assert.Equal(t, []core.Coord{{X: 3, Y: 3}}, h.Relocations)
	assert.Equal(t, core.Coord{X: 3, Y: 3}, h.Capital())
}
