package game

import (
	"fmt"

	"ensibot/core"

	"go.uber.org/zap"
)

// Strategy is one complete decision engine. PlayTurn runs a single turn
// against the host: it must issue every command it wants for this turn
// and return; the caller owns the end-of-turn yield. Implementations
// never fail a turn: rejected commands are skipped, not escalated.
type Strategy interface {
	Name() string
	PlayTurn(h core.Host)
}

// StrategyManager builds strategies by name from the shared tuning config.
type StrategyManager struct {
	tuning core.TuningConfig
	log    *zap.Logger
}

// NewStrategyManager creates a StrategyManager.
func NewStrategyManager(tuning core.TuningConfig, log *zap.Logger) *StrategyManager {
	return &StrategyManager{tuning: tuning, log: log}
}

// Build returns the named strategy, or an error for an unknown name.
func (sm *StrategyManager) Build(name string) (Strategy, error) {
	log := sm.log.Named(name)
	switch name {
	case "balanced":
		return NewBalancedStrategy(sm.tuning, log), nil
	case "aggressive":
		return NewAggressiveStrategy(log), nil
	case "economic":
		return NewEconomicStrategy(sm.tuning, log), nil
	case "explorer":
		return NewExplorerStrategy(sm.tuning, log), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// Strategies lists the names Build accepts.
func Strategies() []string {
	return []string{"balanced", "aggressive", "economic", "explorer"}
}
