package main

import (
	"encoding/json"
	"testing"

	"ensibot/core"
	"ensibot/game"
	"ensibot/sim"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	cfg := core.SimConfig{
		Width:       20,
		Height:      20,
		Seed:        5,
		MaxTurns:    15,
		StartingPop: 50,
		Players: []core.SimPlayerConfig{
			{Strategy: "balanced"},
			{Strategy: "aggressive"},
		},
	}
	sm := game.NewStrategyManager(core.DefaultTuning(), zap.NewNop())
	var strategies []game.Strategy
	for _, slot := range cfg.Players {
		s, err := sm.Build(slot.Strategy)
		require.NoError(t, err)
		strategies = append(strategies, s)
	}
	match, err := sim.NewMatch(cfg, strategies, nil, zap.NewNop())
	require.NoError(t, err)
	return NewBot(match, zap.NewNop(), 0)
}

func TestBot_RunsMatchToCompletion(t *testing.T) {
	bot := newTestBot(t)

	bot.Run()

	assert.Equal(t, 15, bot.Match.Turn())

	data, err := bot.State()
	require.NoError(t, err)
	var snap sim.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.True(t, snap.Over)
}

func TestBot_PauseResume(t *testing.T) {
	bot := newTestBot(t)

	assert.False(t, bot.IsPaused())
	bot.Pause()
	assert.True(t, bot.IsPaused())
	bot.Resume()
	assert.False(t, bot.IsPaused())
}
