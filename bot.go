package main

import (
	"sync"
	"time"

	"ensibot/sim"
	"ensibot/web"

	"go.uber.org/zap"
)

// Bot drives a match to completion: it steps the simulator turn by turn,
// broadcasts state to the viewer hub after each turn, and honors
// pause/resume requests from the web UI.
type Bot struct {
	Match     *sim.Match
	Hub       *web.Hub
	log       *zap.Logger
	tickDelay time.Duration
	paused    bool
	lock      sync.Mutex
}

// NewBot creates a new Bot.
func NewBot(match *sim.Match, log *zap.Logger, tickDelay time.Duration) *Bot {
	return &Bot{
		Match:     match,
		log:       log,
		tickDelay: tickDelay,
	}
}

// Run starts the main loop for the bot and returns when the match ends.
func (b *Bot) Run() {
	b.log.Info("starting match")
	for {
		if b.IsPaused() {
			time.Sleep(200 * time.Millisecond)
			continue
		}

		running := b.Match.Step()
		if b.Hub != nil {
			b.Hub.BroadcastFullState()
		}
		if !running {
			break
		}
		if b.tickDelay > 0 {
			time.Sleep(b.tickDelay)
		}
	}
	b.log.Info("match finished", zap.Int("turns", b.Match.Turn()))
}

// State returns a JSON snapshot of the match for the web viewer.
func (b *Bot) State() ([]byte, error) {
	return b.Match.State()
}

// Pause pauses the bot.
func (b *Bot) Pause() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.paused = true
}

// Resume resumes the bot.
func (b *Bot) Resume() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.paused = false
}

// IsPaused returns true if the bot is paused.
func (b *Bot) IsPaused() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.paused
}
