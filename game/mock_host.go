package game

import "ensibot/core"

// MoveCommand records a move issued against the MockHost.
type MoveCommand struct {
	From, To core.Coord
	Count    int
}

// ConvertCommand records a conversion issued against the MockHost.
type ConvertCommand struct {
	City  core.Coord
	Count int
}

// MockHost is a scriptable in-memory host for tests and dry runs. Tiles
// not present in the grid read as fog. Commands are recorded, not applied:
// the world does not change unless the test changes it. The Func fields
// override individual command outcomes when set.
type MockHost struct {
	TurnValue    int
	Player       uint8
	CapitalValue core.Coord
	FoodValue    int
	PopValue     int
	ArmyValue    int
	Size         core.MapSize
	Tiles        map[core.Coord]core.Tile

	Moves       []MoveCommand
	Converts    []ConvertCommand
	Relocations []core.Coord

	MoveFunc        func(from, to core.Coord, count int) error
	ConvertFunc     func(city core.Coord, count int) error
	MoveCapitalFunc func(city core.Coord) error
}

// NewMockHost creates an empty MockHost with the given map size.
func NewMockHost(width, height int) *MockHost {
	return &MockHost{
		Player: 1,
		Size:   core.MapSize{Width: width, Height: height},
		Tiles:  make(map[core.Coord]core.Tile),
	}
}

// SetTile places a tile on the grid.
func (m *MockHost) SetTile(x, y int, tile core.Tile) {
	m.Tiles[core.Coord{X: x, Y: y}] = tile
}

// Fill sets every cell of the grid to the given tile.
func (m *MockHost) Fill(tile core.Tile) {
	for y := 0; y < m.Size.Height; y++ {
		for x := 0; x < m.Size.Width; x++ {
			m.Tiles[core.Coord{X: x, Y: y}] = tile
		}
	}
}

func (m *MockHost) Turn() int             { return m.TurnValue }
func (m *MockHost) PlayerID() uint8       { return m.Player }
func (m *MockHost) Capital() core.Coord   { return m.CapitalValue }
func (m *MockHost) Food() int             { return m.FoodValue }
func (m *MockHost) Population() int       { return m.PopValue }
func (m *MockHost) Army() int             { return m.ArmyValue }
func (m *MockHost) MapSize() core.MapSize { return m.Size }

func (m *MockHost) TileAt(c core.Coord) core.Tile {
	if tile, ok := m.Tiles[c]; ok {
		return tile
	}
	return core.Tile{Terrain: core.TerrainFog, Owner: core.OwnerFog}
}

func (m *MockHost) Move(from, to core.Coord, count int) error {
	if m.MoveFunc != nil {
		if err := m.MoveFunc(from, to, count); err != nil {
			return err
		}
	}
	m.Moves = append(m.Moves, MoveCommand{From: from, To: to, Count: count})
	return nil
}

func (m *MockHost) Convert(city core.Coord, count int) error {
	if m.ConvertFunc != nil {
		if err := m.ConvertFunc(city, count); err != nil {
			return err
		}
	}
	m.Converts = append(m.Converts, ConvertCommand{City: city, Count: count})
	return nil
}

func (m *MockHost) MoveCapital(city core.Coord) error {
	if m.MoveCapitalFunc != nil {
		if err := m.MoveCapitalFunc(city); err != nil {
			return err
		}
	}
	m.Relocations = append(m.Relocations, city)
	m.CapitalValue = city
	return nil
}
