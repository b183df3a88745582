package game

import (
	"ensibot/core"

	"go.uber.org/zap"
)

// BalancedStrategy is the adaptive, phase-aware strategy: expand onto
// neutral cities early, balance economy and military through the mid
// game, and push with accumulated forces late. It adapts to the food
// balance (never converting itself into starvation) and to enemy
// proximity (rallying home when the capital is threatened).
type BalancedStrategy struct {
	tuning core.TuningConfig
	log    *zap.Logger
}

// NewBalancedStrategy creates a BalancedStrategy.
func NewBalancedStrategy(tuning core.TuningConfig, log *zap.Logger) *BalancedStrategy {
	return &BalancedStrategy{tuning: tuning, log: log}
}

// Name implements Strategy.
func (s *BalancedStrategy) Name() string { return "balanced" }

// turnContext is the per-turn working state. It is rebuilt from host
// queries at the start of every turn and discarded at the end of it;
// nothing in it survives across turns.
type turnContext struct {
	turn    int
	phase   Phase
	me      uint8
	size    core.MapSize
	capital core.Coord
	food    int
	pop     int
	army    int
	snap    *WorldSnapshot
}

// PlayTurn runs one full decision cycle: refresh, scan, starvation hold,
// convert, move. Every branch degrades to a no-op rather than failing;
// the turn loop must never abort.
func (s *BalancedStrategy) PlayTurn(h core.Host) {
	ctx := s.refresh(h)

	radius := ScanRadiusForTurn(ctx.turn, s.tuning)
	ctx.snap = ScanWorld(h, ctx.capital, radius, s.tuning.MaxScanEntries)

	s.log.Debug("turn state",
		zap.Int("turn", ctx.turn),
		zap.Stringer("phase", ctx.phase),
		zap.Int("food", ctx.food),
		zap.Int("pop", ctx.pop),
		zap.Int("army", ctx.army),
		zap.Int("scan_radius", radius),
		zap.Int("stacks", len(ctx.snap.Armies)),
		zap.Int("cities", len(ctx.snap.Cities)),
	)

	if ctx.food < 0 {
		// Starvation hold: no conversion this turn. Army attrites
		// naturally and reduces upkeep; movement still proceeds, the
		// defense is not suspended while starving.
		s.log.Debug("starvation hold, skipping conversion", zap.Int("food", ctx.food))
	} else {
		s.manageConversion(h, ctx)
	}

	s.manageArmies(h, ctx)
}

func (s *BalancedStrategy) refresh(h core.Host) *turnContext {
	turn := h.Turn()
	return &turnContext{
		turn:    turn,
		phase:   PhaseForTurn(turn, s.tuning),
		me:      h.PlayerID(),
		size:    h.MapSize(),
		capital: h.Capital(),
		food:    h.Food(),
		pop:     h.Population(),
		army:    h.Army(),
	}
}

func (s *BalancedStrategy) manageConversion(h core.Host, ctx *turnContext) {
	budget := ConversionBudget(ctx.food, ctx.pop, ctx.phase, s.tuning)
	if budget <= 0 {
		return
	}
	converted := ConvertAtCities(h, ctx.snap.Cities, budget, s.tuning.ConvertChunk)
	if converted > 0 {
		s.log.Debug("converted population",
			zap.Int("amount", converted),
			zap.Int("budget", budget),
		)
	}
}

func (s *BalancedStrategy) manageArmies(h core.Host, ctx *turnContext) {
	threatened := EnemyNearby(h, ctx.capital, s.tuning.ThreatRadius)
	preferNeutral := ctx.phase == PhaseEarly

	for _, stack := range ctx.snap.Armies {
		if stack.Count == 0 {
			continue
		}

		// Hostile presence near the capital: rally everything that is
		// not already close enough to defend.
		if threatened && stack.Pos.Dist(ctx.capital) > s.tuning.RallyDistance {
			StepToward(h, stack.Pos, ctx.capital, stack.Count)
			continue
		}

		target, ok := ctx.snap.NearestTarget(stack.Pos, preferNeutral)
		if !ok {
			s.explore(h, ctx, stack)
			continue
		}

		if stack.Pos.Adjacent(target) {
			tile := h.TileAt(target)
			neutral := tile.Owner == core.OwnerNeutral
			if ShouldAttack(stack.Count, tile.Army, neutral, s.tuning.ProbeDivisor) {
				_ = h.Move(stack.Pos, target, stack.Count)
			}
			continue
		}

		StepToward(h, stack.Pos, target, stack.Count)
	}
}

// explore pushes an idle stack outward from the capital when no contested
// city is known, instead of letting it sit still.
func (s *BalancedStrategy) explore(h core.Host, ctx *turnContext, stack ArmyStack) {
	target := ExploreTarget(stack.Pos, ctx.capital, ctx.size, s.tuning.ExploreOffset)
	StepToward(h, stack.Pos, target, stack.Count)
}
