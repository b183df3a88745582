package core

// Host is the capability surface a strategy uses to observe the game and
// issue commands. Queries are read-only and turn-scoped: the host applies
// fog of war before answering, and answers are only valid for the turn
// they were fetched in. Commands are validated by the host; a returned
// error means no state change occurred and the caller should skip the
// action, never retry it within the same turn.
//
// Any transport satisfies this interface equally: the in-process
// simulator in sim/, a mock, or a remote game engine.
type Host interface {
	// Turn returns the current turn number (0-indexed).
	Turn() int
	// PlayerID returns the local player's identifier.
	PlayerID() uint8
	// Capital returns the local player's capital coordinate.
	Capital() Coord
	// TileAt returns the fog-masked tile at the given coordinate.
	TileAt(c Coord) Tile
	// Food returns the player's food balance. It can be negative.
	Food() int
	// Population returns the player's total population across all cities.
	Population() int
	// Army returns the player's total army count across all tiles.
	Army() int
	// MapSize returns the map dimensions.
	MapSize() MapSize

	// Move moves count army from one tile to an adjacent tile. Moving
	// onto a hostile tile is an attack, resolved by the host.
	Move(from, to Coord, count int) error
	// Convert turns count population into army at an owned city.
	Convert(city Coord, count int) error
	// MoveCapital relocates the capital to an owned city with strictly
	// more population than the current capital.
	MoveCapital(city Coord) error
}
