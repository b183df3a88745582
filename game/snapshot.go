package game

import "ensibot/core"

// CityClass classifies a scanned city relative to the local player.
// Neutral and enemy cities are both contested: capturable targets.
type CityClass uint8

const (
	CityOwned CityClass = iota
	CityNeutral
	CityEnemy
)

// ArmyStack is a visible tile the player controls with army on it.
type ArmyStack struct {
	Pos   core.Coord
	Count int
}

// CityEntry is a visible city and its classification.
type CityEntry struct {
	Pos   core.Coord
	Class CityClass
}

// WorldSnapshot is the engine's per-turn model of the visible world:
// a flat list of owned army stacks and a flat list of known cities.
// It is rebuilt from scratch every turn and discarded at the end of it;
// fog status changes turn to turn and stale entries must never be reused.
type WorldSnapshot struct {
	Armies []ArmyStack
	Cities []CityEntry
}

// ScanWorld visits every in-bounds cell within Chebyshev distance radius
// of center and records owned army stacks and known cities. Fog cells are
// skipped. Each list stops recording once it reaches maxEntries; scanning
// continues for the other list. Which entries survive truncation is
// decided by the scan order, which is fixed (rows top to bottom, cells
// left to right) so two scans of identical host state produce identical
// snapshots.
func ScanWorld(h core.Host, center core.Coord, radius, maxEntries int) *WorldSnapshot {
	snap := &WorldSnapshot{
		Armies: make([]ArmyStack, 0, maxEntries),
		Cities: make([]CityEntry, 0, maxEntries),
	}
	me := h.PlayerID()
	size := h.MapSize()

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x := center.X + dx
			y := center.Y + dy
			if !size.InBounds(x, y) {
				continue
			}
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if tile.IsFog() {
				continue
			}

			if tile.Army > 0 && tile.IsMine(me) && len(snap.Armies) < maxEntries {
				snap.Armies = append(snap.Armies, ArmyStack{Pos: pos, Count: tile.Army})
			}

			if tile.IsCity() && len(snap.Cities) < maxEntries {
				snap.Cities = append(snap.Cities, CityEntry{Pos: pos, Class: classifyCity(tile, me)})
			}
		}
	}
	return snap
}

func classifyCity(tile core.Tile, me uint8) CityClass {
	switch {
	case tile.IsMine(me):
		return CityOwned
	case tile.Owner == core.OwnerNeutral:
		return CityNeutral
	default:
		return CityEnemy
	}
}

// ScanRadiusForTurn grows the scan radius with the turn counter:
// controlled territory, and thus the profitable scan range, grows over
// the game. Capped so the per-turn scan cost stays bounded.
func ScanRadiusForTurn(turn int, t core.TuningConfig) int {
	radius := t.ScanRadiusBase
	if t.ScanRadiusTurns > 0 {
		radius += turn / t.ScanRadiusTurns
	}
	if radius > t.ScanRadiusMax {
		radius = t.ScanRadiusMax
	}
	return radius
}
