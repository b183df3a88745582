package game

import (
	"ensibot/core"

	"go.uber.org/zap"
)

const (
	// economicMaxCities caps the tracked city list.
	economicMaxCities = 64
	// economicFoodBuffer is the minimum food surplus to maintain.
	economicFoodBuffer = 5
	// economicArmyPerCity is the defensive army size per owned city.
	economicArmyPerCity = 3
	// economicExpansionArmy is the stack size sent to capture a neutral city.
	economicExpansionArmy = 2
)

// EconomicStrategy grows population and holds ground: a small defensive
// army sized to the number of cities, one cautious neutral-city capture
// per turn, and reinforcement of any owned tile that has an enemy stack
// next to it. It also relocates the capital to the biggest owned city,
// keeping the rally point where the population is.
type EconomicStrategy struct {
	tuning core.TuningConfig
	log    *zap.Logger
}

// NewEconomicStrategy creates an EconomicStrategy.
func NewEconomicStrategy(tuning core.TuningConfig, log *zap.Logger) *EconomicStrategy {
	return &EconomicStrategy{tuning: tuning, log: log}
}

// Name implements Strategy.
func (s *EconomicStrategy) Name() string { return "economic" }

// PlayTurn implements Strategy.
func (s *EconomicStrategy) PlayTurn(h core.Host) {
	me := h.PlayerID()
	size := h.MapSize()

	cities := s.findOwnedCities(h, me, size)

	s.defendTerritory(h, me, size)
	s.convertForDefense(h, len(cities))
	s.expandToNeutral(h, me, size)
	s.distributeFromCapital(h, me, size)
	s.relocateCapital(h, cities)
}

func (s *EconomicStrategy) findOwnedCities(h core.Host, me uint8, size core.MapSize) []core.Coord {
	cities := make([]core.Coord, 0, economicMaxCities)
	for y := 0; y < size.Height && len(cities) < economicMaxCities; y++ {
		for x := 0; x < size.Width && len(cities) < economicMaxCities; x++ {
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if tile.IsCity() && tile.IsMine(me) {
				cities = append(cities, pos)
			}
		}
	}
	return cities
}

// defendTerritory pulls spare army onto any owned tile with an enemy
// stack adjacent to it.
func (s *EconomicStrategy) defendTerritory(h core.Host, me uint8, size core.MapSize) {
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := core.Coord{X: x, Y: y}
			if !h.TileAt(pos).IsMine(me) {
				continue
			}
			if !s.enemyAdjacent(h, pos, me, size) {
				continue
			}
			// Gather spare army from the neighbours onto the threatened tile.
			for _, off := range stepOffsets {
				from := core.Coord{X: pos.X + off.X, Y: pos.Y + off.Y}
				if !size.InBounds(from.X, from.Y) {
					continue
				}
				friend := h.TileAt(from)
				if friend.IsMine(me) && friend.Army > 1 {
					_ = h.Move(from, pos, friend.Army-1)
				}
			}
		}
	}
}

func (s *EconomicStrategy) enemyAdjacent(h core.Host, pos core.Coord, me uint8, size core.MapSize) bool {
	for _, off := range stepOffsets {
		adj := core.Coord{X: pos.X + off.X, Y: pos.Y + off.Y}
		if !size.InBounds(adj.X, adj.Y) {
			continue
		}
		tile := h.TileAt(adj)
		if tile.IsEnemy(me) && tile.Army > 0 {
			return true
		}
	}
	return false
}

// convertForDefense keeps the army at cities*economicArmyPerCity, bounded
// so the food balance stays above the buffer. Converting n population
// moves the balance by -2n (one producer lost, one consumer gained).
func (s *EconomicStrategy) convertForDefense(h core.Host, numCities int) {
	army := h.Army()
	desired := numCities * economicArmyPerCity
	if army >= desired {
		return
	}
	needed := desired - army

	balance := h.Population() - army
	if balance <= economicFoodBuffer {
		return
	}
	maxConvert := (balance - economicFoodBuffer) / 2
	if maxConvert <= 0 {
		return
	}

	toConvert := needed
	if toConvert > maxConvert {
		toConvert = maxConvert
	}
	if toConvert == 0 {
		return
	}
	// The capital usually has the most population.
	_ = h.Convert(h.Capital(), toConvert)
}

// expandToNeutral captures at most one adjacent neutral city per turn.
func (s *EconomicStrategy) expandToNeutral(h core.Host, me uint8, size core.MapSize) {
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if !tile.IsMine(me) || tile.Army < economicExpansionArmy {
				continue
			}
			for _, off := range stepOffsets {
				adj := core.Coord{X: pos.X + off.X, Y: pos.Y + off.Y}
				if !size.InBounds(adj.X, adj.Y) {
					continue
				}
				target := h.TileAt(adj)
				if !target.IsCity() || target.Owner != core.OwnerNeutral {
					continue
				}
				toSend := tile.Army
				if toSend > economicExpansionArmy {
					toSend = economicExpansionArmy
				}
				if toSend > target.Army {
					_ = h.Move(pos, adj, toSend)
					return // one expansion per turn to conserve
				}
			}
		}
	}
}

// distributeFromCapital spreads excess capital garrison to the neighbours.
func (s *EconomicStrategy) distributeFromCapital(h core.Host, me uint8, size core.MapSize) {
	capital := h.Capital()
	garrison := h.TileAt(capital).Army
	if garrison <= economicArmyPerCity {
		return
	}
	excess := garrison - economicArmyPerCity

	for _, off := range stepOffsets {
		if excess <= 0 {
			break
		}
		adj := core.Coord{X: capital.X + off.X, Y: capital.Y + off.Y}
		if !size.InBounds(adj.X, adj.Y) {
			continue
		}
		tile := h.TileAt(adj)
		if !tile.Passable() || (!tile.IsMine(me) && tile.Owner != core.OwnerNeutral) {
			continue
		}
		toMove := excess
		if toMove > economicExpansionArmy {
			toMove = economicExpansionArmy
		}
		if err := h.Move(capital, adj, toMove); err == nil {
			excess -= toMove
		}
	}
}

// relocateCapital tries to move the capital to a bigger owned city.
// Per-city population is not visible through the tile query, only the
// host knows it, so every candidate is offered in scan order and the
// first accepted relocation wins. Rejections are free no-ops.
func (s *EconomicStrategy) relocateCapital(h core.Host, cities []core.Coord) {
	capital := h.Capital()
	for _, city := range cities {
		if city == capital {
			continue
		}
		if err := h.MoveCapital(city); err == nil {
			s.log.Debug("relocated capital",
				zap.Int("x", city.X),
				zap.Int("y", city.Y),
			)
			return
		}
	}
}
