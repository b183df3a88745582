package game

import (
	"ensibot/core"

	"go.uber.org/zap"
)

// Adjacent-tile priorities for the explorer strategy: fog beats unclaimed
// ground beats enemy ground beats own territory. First match in direction
// order breaks ties.
const (
	explorePrioFog         = 100
	explorePrioNeutral     = 80
	explorePrioNeutralCity = 15 // bonus on top of neutral
	explorePrioEnemy       = 50
	explorePrioOwn         = 10
)

const (
	// explorerFoodBuffer is the surplus kept when converting.
	explorerFoodBuffer = 5
	// explorerConvertCap bounds the capital conversion per turn.
	explorerConvertCap = 10
)

// ExplorerStrategy maps the world methodically: scouts push into fog
// first, claim neutral ground second, and spread thin to maximize
// territory coverage, with a steady sustainable conversion rate feeding
// the scouts.
type ExplorerStrategy struct {
	tuning core.TuningConfig
	log    *zap.Logger
}

// NewExplorerStrategy creates an ExplorerStrategy.
func NewExplorerStrategy(tuning core.TuningConfig, log *zap.Logger) *ExplorerStrategy {
	return &ExplorerStrategy{tuning: tuning, log: log}
}

// Name implements Strategy.
func (s *ExplorerStrategy) Name() string { return "explorer" }

// PlayTurn implements Strategy.
func (s *ExplorerStrategy) PlayTurn(h core.Host) {
	me := h.PlayerID()
	size := h.MapSize()
	capital := h.Capital()
	turn := h.Turn()

	s.manageConversion(h, me, capital, size)
	s.spiralExplore(h, me, capital, size, turn)
	s.spreadArmy(h, me, size, turn)
}

// manageConversion converts at a rate the food balance can sustain:
// half the surplus of population over army, minus a buffer, capped per
// turn, taken from the capital, plus a trickle at every other city.
func (s *ExplorerStrategy) manageConversion(h core.Host, me uint8, capital core.Coord, size core.MapSize) {
	convertible := h.Population() - h.Army() - explorerFoodBuffer
	if convertible <= 0 {
		return
	}

	capTile := h.TileAt(capital)
	if capTile.IsCity() && capTile.IsMine(me) {
		toConvert := convertible / 2
		if toConvert < 1 {
			toConvert = 1
		}
		if toConvert > explorerConvertCap {
			toConvert = explorerConvertCap
		}
		if err := h.Convert(capital, toConvert); err == nil {
			s.log.Debug("converted population", zap.Int("amount", toConvert))
		}
	}

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := core.Coord{X: x, Y: y}
			if pos == capital {
				continue
			}
			tile := h.TileAt(pos)
			if tile.IsCity() && tile.IsMine(me) {
				_ = h.Convert(pos, 1)
			}
		}
	}
}

// spiralExplore walks the rings around the capital outward, sending
// scouts from every owned stack it passes. The ring radius grows with
// the turn counter so early turns stay cheap.
func (s *ExplorerStrategy) spiralExplore(h core.Host, me uint8, capital core.Coord, size core.MapSize, turn int) {
	maxRadius := turn/4 + 3
	if maxRadius > s.tuning.ScanRadiusMax {
		maxRadius = s.tuning.ScanRadiusMax
	}

	for radius := 0; radius <= maxRadius; radius++ {
		for offset := -radius; offset <= radius; offset++ {
			// Top and bottom edges, which coincide at radius zero.
			x := capital.X + offset
			if y := capital.Y - radius; size.InBounds(x, y) {
				s.exploreFrom(h, core.Coord{X: x, Y: y}, me, size)
			}
			if y := capital.Y + radius; radius != 0 && size.InBounds(x, y) {
				s.exploreFrom(h, core.Coord{X: x, Y: y}, me, size)
			}
			// Left and right edges, corners already covered.
			if offset != -radius && offset != radius {
				y := capital.Y + offset
				if x := capital.X - radius; size.InBounds(x, y) {
					s.exploreFrom(h, core.Coord{X: x, Y: y}, me, size)
				}
				if x := capital.X + radius; size.InBounds(x, y) {
					s.exploreFrom(h, core.Coord{X: x, Y: y}, me, size)
				}
			}
		}
	}
}

// exploreFrom sends scouts from one stack toward the best adjacent tile,
// leaving one unit behind to hold the territory.
func (s *ExplorerStrategy) exploreFrom(h core.Host, pos core.Coord, me uint8, size core.MapSize) {
	tile := h.TileAt(pos)
	if !tile.IsMine(me) || tile.Army < 2 {
		return
	}
	available := tile.Army - 1

	target, ok := s.explorationTarget(h, pos, me, size)
	if !ok {
		return
	}

	targetTile := h.TileAt(target)
	needed := 1
	if !targetTile.IsFog() && !targetTile.IsMine(me) {
		needed = targetTile.Army + 1
	}

	if available >= needed {
		_ = h.Move(pos, target, needed)
	} else if targetTile.IsFog() || targetTile.Owner == core.OwnerNeutral {
		// Send what we have for neutral or unknown ground.
		_ = h.Move(pos, target, available)
	}
}

func (s *ExplorerStrategy) explorationTarget(h core.Host, from core.Coord, me uint8, size core.MapSize) (core.Coord, bool) {
	bestPriority := -1
	var best core.Coord

	for _, off := range stepOffsets {
		next := core.Coord{X: from.X + off.X, Y: from.Y + off.Y}
		if !size.InBounds(next.X, next.Y) {
			continue
		}
		tile := h.TileAt(next)
		if tile.Terrain == core.TerrainMountain {
			continue
		}

		priority := explorePrioOwn
		switch {
		case tile.IsFog():
			priority = explorePrioFog
		case tile.Owner == core.OwnerNeutral:
			priority = explorePrioNeutral
			if tile.IsCity() {
				priority += explorePrioNeutralCity
			}
		case tile.IsEnemy(me):
			priority = explorePrioEnemy
		}

		if priority > bestPriority {
			bestPriority = priority
			best = next
		}
	}
	return best, bestPriority >= 0
}

// spreadArmy pushes excess army onto empty owned tiles, rotating the
// preferred direction with the turn counter for varied coverage.
func (s *ExplorerStrategy) spreadArmy(h core.Host, me uint8, size core.MapSize, turn int) {
	dirOffset := turn % 4

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			pos := core.Coord{X: x, Y: y}
			tile := h.TileAt(pos)
			if !tile.IsMine(me) || tile.Army < 3 {
				continue
			}
			excess := tile.Army - 1

			for d := 0; d < 4; d++ {
				off := stepOffsets[(d+dirOffset)%4]
				next := core.Coord{X: x + off.X, Y: y + off.Y}
				if !size.InBounds(next.X, next.Y) {
					continue
				}
				adj := h.TileAt(next)
				if adj.IsMine(me) && adj.Army == 0 {
					send := excess / 2
					if send < 1 {
						send = 1
					}
					_ = h.Move(pos, next, send)
					break // one spread per tile per turn
				}
			}
		}
	}
}
