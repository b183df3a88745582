package game

import "ensibot/core"

// Phase buckets match progress into three coarse stages used to scale
// conversion aggressiveness and target preference. It is derived purely
// from the turn counter; a phase flip is instantaneous and needs no
// hysteresis because every decision is recomputed from fresh state.
type Phase int

const (
	PhaseEarly Phase = iota
	PhaseMid
	PhaseLate
)

func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	case PhaseLate:
		return "late"
	}
	return "unknown"
}

// PhaseForTurn classifies a turn counter against the tuning thresholds.
func PhaseForTurn(turn int, t core.TuningConfig) Phase {
	if turn < t.EarlyGameEnd {
		return PhaseEarly
	}
	if turn < t.MidGameEnd {
		return PhaseMid
	}
	return PhaseLate
}
