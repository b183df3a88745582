package core

// Terrain identifies what kind of ground a tile is.
type Terrain uint8

const (
	TerrainCity     Terrain = 0
	TerrainDesert   Terrain = 1
	TerrainMountain Terrain = 2
	TerrainFog      Terrain = 255
)

// Owner sentinels. Real player IDs are 1-8.
const (
	OwnerNeutral uint8 = 0
	OwnerFog     uint8 = 255
)

// Coord is a grid cell position.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Dist returns the Manhattan distance between two coordinates.
func (c Coord) Dist(o Coord) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether o is one of the 4 grid neighbours of c.
func (c Coord) Adjacent(o Coord) bool {
	return c.Dist(o) == 1
}

// Tile is the per-cell fact the host exposes for a single turn.
// A fog tile carries no usable owner or army information, so a tile
// must never be held past the turn it was fetched.
type Tile struct {
	Terrain Terrain
	Owner   uint8
	Army    int
}

// IsFog reports whether the tile is hidden this turn.
func (t Tile) IsFog() bool {
	return t.Terrain == TerrainFog
}

// IsCity reports whether the tile hosts a city.
func (t Tile) IsCity() bool {
	return t.Terrain == TerrainCity
}

// Passable reports whether army can enter the tile. Fog counts as
// impassable: the engine never moves into the unknown.
func (t Tile) Passable() bool {
	return t.Terrain != TerrainMountain && t.Terrain != TerrainFog
}

// IsMine reports whether the tile is owned by the given player.
func (t Tile) IsMine(id uint8) bool {
	return t.Owner == id
}

// IsEnemy reports whether the tile is owned by a hostile player.
func (t Tile) IsEnemy(id uint8) bool {
	return t.Owner != OwnerNeutral && t.Owner != id && t.Owner != OwnerFog
}

// MapSize holds the map dimensions.
type MapSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// InBounds reports whether (x, y) lies on the map.
func (m MapSize) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Clamp pulls a coordinate back inside the map bounds.
func (m MapSize) Clamp(c Coord) Coord {
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.X >= m.Width {
		c.X = m.Width - 1
	}
	if c.Y >= m.Height {
		c.Y = m.Height - 1
	}
	return c
}
