package sim

import (
	"errors"

	"ensibot/core"
)

// Command rejection reasons. Strategies only ever treat these as
// "no state change occurred", but tests inspect them.
var (
	ErrBudgetExceeded = errors.New("command budget exceeded")
	ErrNotOwned       = errors.New("tile not owned")
	ErrNotAdjacent    = errors.New("destination not adjacent")
	ErrImpassable     = errors.New("destination impassable")
	ErrInsufficient   = errors.New("insufficient units")
	ErrNotCity        = errors.New("tile is not a city")
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrSmallerCity    = errors.New("destination population not greater")
)

// playerHost is one player's fog-masked view of the match state. It
// implements core.Host. A fresh host is handed to the strategy each turn
// with a reset command budget; commands past the budget are rejected so
// everything issued before the cutoff stands on its own.
type playerHost struct {
	state  *State
	player *Player
	budget int
	issued int
}

func newPlayerHost(state *State, player *Player, budget int) *playerHost {
	return &playerHost{state: state, player: player, budget: budget}
}

func (h *playerHost) Turn() int             { return h.state.Turn }
func (h *playerHost) PlayerID() uint8       { return h.player.ID }
func (h *playerHost) Capital() core.Coord   { return h.player.Capital }
func (h *playerHost) MapSize() core.MapSize { return h.state.Map.Size() }

func (h *playerHost) Food() int       { return h.state.StatsFor(h.player.ID).Food }
func (h *playerHost) Population() int { return h.state.StatsFor(h.player.ID).Population }
func (h *playerHost) Army() int       { return h.state.StatsFor(h.player.ID).Army }

// TileAt applies the fog mask before answering.
func (h *playerHost) TileAt(c core.Coord) core.Tile {
	if !h.state.Map.InBounds(c) || !h.state.VisibleTo(h.player.ID, c) {
		return core.Tile{Terrain: core.TerrainFog, Owner: core.OwnerFog}
	}
	tile := h.state.Map.At(c)
	return core.Tile{Terrain: tile.Terrain, Owner: tile.Owner, Army: tile.Army}
}

func (h *playerHost) spend() error {
	if h.issued >= h.budget {
		return ErrBudgetExceeded
	}
	h.issued++
	return nil
}

// Move validates and resolves an army move, attacking when the
// destination is hostile. Combat uses the subtraction model: a strictly
// larger attacker captures the tile and keeps the difference; otherwise
// the defender keeps the tile and loses the attacker's count.
func (h *playerHost) Move(from, to core.Coord, count int) error {
	if err := h.spend(); err != nil {
		return err
	}
	if count <= 0 {
		return ErrInsufficient
	}
	if !h.state.Map.InBounds(from) || !h.state.Map.InBounds(to) {
		return ErrOutOfBounds
	}
	src := h.state.Map.At(from)
	if src.Owner != h.player.ID {
		return ErrNotOwned
	}
	if src.Army < count {
		return ErrInsufficient
	}
	if !from.Adjacent(to) {
		return ErrNotAdjacent
	}
	dst := h.state.Map.At(to)
	if dst.Terrain == core.TerrainMountain {
		return ErrImpassable
	}

	src.Army -= count
	switch {
	case dst.Owner == h.player.ID:
		dst.Army += count
	case count > dst.Army:
		dst.Army = count - dst.Army
		dst.Owner = h.player.ID
	default:
		dst.Army -= count
	}
	return nil
}

// Convert turns population into army at an owned city.
func (h *playerHost) Convert(city core.Coord, count int) error {
	if err := h.spend(); err != nil {
		return err
	}
	if count <= 0 {
		return ErrInsufficient
	}
	if !h.state.Map.InBounds(city) {
		return ErrOutOfBounds
	}
	tile := h.state.Map.At(city)
	if tile.Terrain != core.TerrainCity {
		return ErrNotCity
	}
	if tile.Owner != h.player.ID {
		return ErrNotOwned
	}
	if tile.Population < count {
		return ErrInsufficient
	}
	tile.Population -= count
	tile.Army += count
	return nil
}

// MoveCapital relocates the capital to an owned city with strictly more
// population than the current one.
func (h *playerHost) MoveCapital(city core.Coord) error {
	if err := h.spend(); err != nil {
		return err
	}
	if !h.state.Map.InBounds(city) {
		return ErrOutOfBounds
	}
	tile := h.state.Map.At(city)
	if tile.Terrain != core.TerrainCity {
		return ErrNotCity
	}
	if tile.Owner != h.player.ID {
		return ErrNotOwned
	}
	current := h.state.Map.At(h.player.Capital)
	if tile.Population <= current.Population {
		return ErrSmallerCity
	}
	h.player.Capital = city
	return nil
}
