package game

import "ensibot/core"

// EnemyNearby reports whether any visible hostile army sits within
// Chebyshev distance radius of center. It is a pure per-call snapshot
// query with no threat history; the balanced strategy uses it to decide
// whether idle forces should rally home instead of advancing.
func EnemyNearby(h core.Host, center core.Coord, radius int) bool {
	me := h.PlayerID()
	size := h.MapSize()

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x := center.X + dx
			y := center.Y + dy
			if !size.InBounds(x, y) {
				continue
			}
			tile := h.TileAt(core.Coord{X: x, Y: y})
			if !tile.IsFog() && tile.IsEnemy(me) && tile.Army > 0 {
				return true
			}
		}
	}
	return false
}
