// Package sim is an in-process implementation of the game engine: a tile
// grid with fog of war, a population/food economy, and move/convert
// command resolution. It exists so strategies can be exercised end to end
// without an external host; it follows the same rules the real engine
// enforces (each population produces 2 food and consumes 1, each army
// unit consumes 1, combat uses the subtraction model, fog hides all but
// owned tiles and their neighbours).
package sim

import (
	"fmt"
	"math/rand"

	"ensibot/core"
)

// Tile is the simulator's authoritative per-cell state. Population only
// ever lives on city tiles.
type Tile struct {
	Terrain    core.Terrain
	Owner      uint8
	Army       int
	Population int
}

// Map is the authoritative game grid.
type Map struct {
	size  core.MapSize
	tiles []Tile
}

// NewMap creates an all-desert map.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	m := &Map{
		size:  core.MapSize{Width: width, Height: height},
		tiles: make([]Tile, width*height),
	}
	for i := range m.tiles {
		m.tiles[i] = Tile{Terrain: core.TerrainDesert, Owner: core.OwnerNeutral}
	}
	return m, nil
}

// Size returns the map dimensions.
func (m *Map) Size() core.MapSize { return m.size }

// InBounds reports whether c lies on the map.
func (m *Map) InBounds(c core.Coord) bool { return m.size.InBounds(c.X, c.Y) }

// At returns the tile at c. The caller must check bounds first.
func (m *Map) At(c core.Coord) *Tile {
	return &m.tiles[c.Y*m.size.Width+c.X]
}

// generation parameters
const (
	mountainShare   = 0.10 // fraction of tiles that are impassable
	cityShare       = 0.02 // fraction of tiles that are neutral cities
	neutralCityPop  = 10
	neutralCityArmy = 8
	capitalMargin   = 4 // distance of capitals from the map edge
)

// Generate builds a deterministic map from the seed and places one
// capital city per player, spread around the map edge.
func Generate(cfg core.SimConfig) (*Map, []core.Coord, error) {
	numPlayers := len(cfg.Players)
	if numPlayers < 1 || numPlayers > 8 {
		return nil, nil, fmt.Errorf("player count %d out of range 1-8", numPlayers)
	}

	m, err := NewMap(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	for i := range m.tiles {
		roll := rng.Float64()
		switch {
		case roll < mountainShare:
			m.tiles[i].Terrain = core.TerrainMountain
		case roll < mountainShare+cityShare:
			m.tiles[i].Terrain = core.TerrainCity
			m.tiles[i].Population = neutralCityPop
			m.tiles[i].Army = rng.Intn(neutralCityArmy + 1)
		}
	}

	capitals := capitalPositions(m.size, numPlayers)
	for i, pos := range capitals {
		tile := m.At(pos)
		tile.Terrain = core.TerrainCity
		tile.Owner = uint8(i + 1)
		tile.Population = cfg.StartingPop
		tile.Army = 0
	}
	return m, capitals, nil
}

// capitalPositions spreads up to 8 capitals around the map edge:
// the four corners first, then the edge midpoints.
func capitalPositions(size core.MapSize, n int) []core.Coord {
	left := capitalMargin
	top := capitalMargin
	right := size.Width - 1 - capitalMargin
	bottom := size.Height - 1 - capitalMargin
	midX := size.Width / 2
	midY := size.Height / 2

	slots := []core.Coord{
		{X: left, Y: top},
		{X: right, Y: bottom},
		{X: right, Y: top},
		{X: left, Y: bottom},
		{X: midX, Y: top},
		{X: midX, Y: bottom},
		{X: left, Y: midY},
		{X: right, Y: midY},
	}
	capitals := make([]core.Coord, n)
	for i := 0; i < n; i++ {
		capitals[i] = size.Clamp(slots[i])
	}
	return capitals
}
