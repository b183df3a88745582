package sim

import (
	"encoding/json"
	"fmt"
	"sync"

	"ensibot/core"
	"ensibot/game"

	"go.uber.org/zap"
)

// Match runs strategies against the simulator, one host view per player
// per turn. Strategies run strictly sequentially; there is no concurrent
// access to the state while a turn is in progress.
type Match struct {
	state      *State
	strategies []game.Strategy
	budget     int
	recorder   *Recorder
	log        *zap.Logger
	lock       sync.Mutex
}

// NewMatch generates a map from the sim config and pairs each player slot
// with its configured strategy.
func NewMatch(cfg core.SimConfig, strategies []game.Strategy, recorder *Recorder, log *zap.Logger) (*Match, error) {
	if len(strategies) != len(cfg.Players) {
		return nil, fmt.Errorf("have %d strategies for %d player slots", len(strategies), len(cfg.Players))
	}
	m, capitals, err := Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate map: %w", err)
	}
	budget := cfg.CommandBudget
	if budget <= 0 {
		budget = 512
	}
	return &Match{
		state:      NewState(m, capitals, cfg.MaxTurns),
		strategies: strategies,
		budget:     budget,
		recorder:   recorder,
		log:        log,
	}, nil
}

// Step advances the match by one turn and reports whether the match is
// still running. Each living player's strategy plays against a fresh
// fog-masked host view, then the economy and eliminations are applied.
func (m *Match) Step() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.state.GameOver() {
		return false
	}

	for i, p := range m.state.Players {
		if !p.Alive {
			continue
		}
		host := newPlayerHost(m.state, p, m.budget)
		m.strategies[i].PlayTurn(host)
		if host.issued >= m.budget {
			m.log.Warn("command budget exhausted",
				zap.Uint8("player", p.ID),
				zap.Int("turn", m.state.Turn),
			)
		}
	}

	m.state.ApplyEconomy()
	m.state.EliminateDead()

	if m.recorder != nil {
		if err := m.recorder.Record(m.turnRecord()); err != nil {
			m.log.Warn("failed to record turn", zap.Error(err))
		}
	}

	m.state.Turn++
	return !m.state.GameOver()
}

// Run steps the match until it ends and logs the final scores.
func (m *Match) Run() {
	for m.Step() {
	}
	for _, p := range m.state.Players {
		m.log.Info("final score",
			zap.Uint8("player", p.ID),
			zap.String("strategy", m.strategies[p.ID-1].Name()),
			zap.Bool("alive", p.Alive),
			zap.Float64("score", m.state.ScoreFor(p.ID)),
		)
	}
}

// Turn returns the current turn number.
func (m *Match) Turn() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.state.Turn
}

// PlayerSummary is one player's line in a match state snapshot.
type PlayerSummary struct {
	ID       uint8       `json:"id"`
	Strategy string      `json:"strategy"`
	Alive    bool        `json:"alive"`
	Score    float64     `json:"score"`
	Stats    PlayerStats `json:"stats"`
}

// Snapshot is a JSON-friendly view of the match for the live viewer.
type Snapshot struct {
	Turn    int             `json:"turn"`
	Over    bool            `json:"over"`
	Players []PlayerSummary `json:"players"`
	// Owners is the ownership grid, one row per string, '.' for neutral,
	// '#' for mountains, '1'-'8' for players.
	Owners []string `json:"owners"`
}

// State returns the current match snapshot as JSON.
func (m *Match) State() ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return json.Marshal(m.snapshot())
}

func (m *Match) snapshot() Snapshot {
	snap := Snapshot{
		Turn: m.state.Turn,
		Over: m.state.GameOver(),
	}
	for i, p := range m.state.Players {
		snap.Players = append(snap.Players, PlayerSummary{
			ID:       p.ID,
			Strategy: m.strategies[i].Name(),
			Alive:    p.Alive,
			Score:    m.state.ScoreFor(p.ID),
			Stats:    m.state.StatsFor(p.ID),
		})
	}

	size := m.state.Map.Size()
	for y := 0; y < size.Height; y++ {
		row := make([]byte, size.Width)
		for x := 0; x < size.Width; x++ {
			tile := m.state.Map.At(core.Coord{X: x, Y: y})
			switch {
			case tile.Terrain == core.TerrainMountain:
				row[x] = '#'
			case tile.Owner == core.OwnerNeutral:
				row[x] = '.'
			default:
				row[x] = '0' + tile.Owner
			}
		}
		snap.Owners = append(snap.Owners, string(row))
	}
	return snap
}

func (m *Match) turnRecord() TurnRecord {
	rec := TurnRecord{Turn: m.state.Turn}
	for i, p := range m.state.Players {
		rec.Players = append(rec.Players, PlayerSummary{
			ID:       p.ID,
			Strategy: m.strategies[i].Name(),
			Alive:    p.Alive,
			Score:    m.state.ScoreFor(p.ID),
			Stats:    m.state.StatsFor(p.ID),
		})
	}
	return rec
}
