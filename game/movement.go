package game

import "ensibot/core"

// stepOffsets are the 4 grid directions: up, right, down, left.
var stepOffsets = [4]core.Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// BestStep returns the in-bounds, passable 4-neighbour of from that
// minimizes the Manhattan distance to target, provided it is strictly
// closer than from itself. When every passable neighbour is as far or
// farther, the unit should hold position and ok is false.
func BestStep(h core.Host, from, target core.Coord) (core.Coord, bool) {
	size := h.MapSize()
	best := from
	bestDist := from.Dist(target)
	found := false

	for _, off := range stepOffsets {
		next := core.Coord{X: from.X + off.X, Y: from.Y + off.Y}
		if !size.InBounds(next.X, next.Y) {
			continue
		}
		if !h.TileAt(next).Passable() {
			continue
		}
		if d := next.Dist(target); d < bestDist {
			bestDist = d
			best = next
			found = true
		}
	}
	return best, found
}

// StepToward issues a single move of count units from from toward target,
// along the best available step. Holding position (no strictly closer
// passable neighbour) is a silent no-op, and so is a host rejection:
// a failed move is never retried within the turn.
func StepToward(h core.Host, from, target core.Coord, count int) {
	if next, ok := BestStep(h, from, target); ok {
		_ = h.Move(from, next, count)
	}
}

// ShouldAttack decides whether an adjacent stack should strike a defended
// tile. Neutral tiles and strict numerical advantage are unconditional.
// Otherwise a probe attack is allowed against a stronger defender when the
// attacker exceeds defender/probeDivisor: a deliberate risk-tolerant trade
// of units for a weakening strike. Equal strength holds position.
func ShouldAttack(attacker, defender int, neutral bool, probeDivisor int) bool {
	if neutral {
		return true
	}
	if attacker > defender {
		return true
	}
	if probeDivisor > 0 && attacker < defender && attacker > defender/probeDivisor {
		return true
	}
	return false
}

// ExploreTarget computes where an idle stack should push when no contested
// city is known: twice as far from the capital along its current offset,
// clamped to map bounds. A stack sitting exactly on the capital has no
// offset to extend and explores along a fixed default direction instead.
func ExploreTarget(pos, capital core.Coord, size core.MapSize, defaultOffset int) core.Coord {
	dx := pos.X - capital.X
	dy := pos.Y - capital.Y
	if dx == 0 && dy == 0 {
		return size.Clamp(core.Coord{X: capital.X + defaultOffset, Y: capital.Y})
	}
	return size.Clamp(core.Coord{X: capital.X + dx*2, Y: capital.Y + dy*2})
}
