package game

import (
	"ensibot/core"

	"go.uber.org/zap"
)

// Movement priority tiers for the aggressive strategy, highest first.
// The comparison is a plain max over adjacent tiles with first-match
// tie-break in the fixed direction order, so the table is the whole
// policy: attack enemies, then grab neutral ground, then drift outward.
const (
	prioAttackEnemy      = 1000
	prioEnemyCityBonus   = 500
	prioCaptureNeutral   = 100
	prioNeutralCityBonus = 200
	prioOutwardBase      = 10
	prioInward           = -10
	prioLosingAttack     = -100
	// prioMoveFloor is the cutoff below which holding beats moving.
	prioMoveFloor = -50
)

// aggressiveMinPopKeep is the population floor kept for growth; everything
// above it is converted to army.
const aggressiveMinPopKeep = 2

// aggressiveConvertChunk is the per-city conversion attempt size.
const aggressiveConvertChunk = 10

// AggressiveStrategy maximizes military and attacks enemies on sight:
// it converts nearly all population to army and moves every stack to the
// best-priority adjacent tile. It never routes around obstacles; pressure
// in all directions is the plan.
type AggressiveStrategy struct {
	log *zap.Logger
}

// NewAggressiveStrategy creates an AggressiveStrategy.
func NewAggressiveStrategy(log *zap.Logger) *AggressiveStrategy {
	return &AggressiveStrategy{log: log}
}

// Name implements Strategy.
func (s *AggressiveStrategy) Name() string { return "aggressive" }

// PlayTurn implements Strategy.
func (s *AggressiveStrategy) PlayTurn(h core.Host) {
	me := h.PlayerID()
	size := h.MapSize()
	capital := h.Capital()

	s.buildArmy(h, me, size)

	// Move every stack we can see. Full-map sweep in row-major order:
	// deterministic, and the fog mask hides what we cannot act on anyway.
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if !tile.IsMine(me) || tile.Army == 0 {
				continue
			}
			s.moveStack(h, pos, tile.Army, me, capital, size)
		}
	}
}

// buildArmy converts all population above the growth floor.
func (s *AggressiveStrategy) buildArmy(h core.Host, me uint8, size core.MapSize) {
	pop := h.Population()
	if pop <= aggressiveMinPopKeep {
		return
	}
	remaining := pop - aggressiveMinPopKeep
	converted := 0

	for y := 0; y < size.Height && remaining > 0; y++ {
		for x := 0; x < size.Width && remaining > 0; x++ {
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if !tile.IsCity() || !tile.IsMine(me) {
				continue
			}
			amount := remaining
			if amount > aggressiveConvertChunk {
				amount = aggressiveConvertChunk
			}
			if err := h.Convert(pos, amount); err == nil {
				remaining -= amount
				converted += amount
			}
		}
	}
	if converted > 0 {
		s.log.Debug("converted population", zap.Int("amount", converted))
	}
}

// moveStack sends the whole stack to the best-priority adjacent tile,
// or holds when everything around is below the move floor.
func (s *AggressiveStrategy) moveStack(h core.Host, from core.Coord, count int, me uint8, capital core.Coord, size core.MapSize) {
	bestPriority := prioLosingAttack * 10
	var bestTarget core.Coord
	found := false

	for _, off := range stepOffsets {
		target := core.Coord{X: from.X + off.X, Y: from.Y + off.Y}
		if !size.InBounds(target.X, target.Y) {
			continue
		}
		tile := h.TileAt(target)
		if !tile.Passable() {
			continue
		}

		priority := s.tilePriority(tile, from, target, count, me, capital)
		if priority > bestPriority {
			bestPriority = priority
			bestTarget = target
			found = true
		}
	}

	if found && bestPriority > prioMoveFloor {
		_ = h.Move(from, bestTarget, count)
	}
}

func (s *AggressiveStrategy) tilePriority(tile core.Tile, from, target core.Coord, count int, me uint8, capital core.Coord) int {
	switch {
	case tile.IsEnemy(me):
		if count <= tile.Army {
			return prioLosingAttack // don't suicide
		}
		priority := prioAttackEnemy
		if tile.IsCity() {
			priority += prioEnemyCityBonus
		}
		return priority

	case tile.Owner == core.OwnerNeutral:
		priority := prioCaptureNeutral
		if tile.IsCity() {
			priority += prioNeutralCityBonus
		}
		return priority

	case tile.IsMine(me):
		// Drift through own territory away from the capital.
		if target.Dist(capital) > from.Dist(capital) {
			return prioOutwardBase + target.Dist(capital)
		}
		return prioInward
	}
	return prioInward
}
