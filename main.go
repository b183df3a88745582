package main

import (
	"flag"
	"log"
	"time"

	"ensibot/core"
	"ensibot/game"
	"ensibot/sim"
	"ensibot/web"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	turns := flag.Int("turns", 0, "override the configured turn limit")
	replayPath := flag.String("replay", "", "override the configured replay file")
	flag.Parse()

	cm, err := core.NewConfigManager(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := cm.GetConfig()
	if *turns > 0 {
		cfg.Sim.MaxTurns = *turns
	}
	if *replayPath != "" {
		cfg.Sim.ReplayFile = *replayPath
	}

	logger := core.NewLogger(cfg.Log)
	defer logger.Sync()

	sm := game.NewStrategyManager(cfg.Tuning, logger)
	strategies := make([]game.Strategy, 0, len(cfg.Sim.Players))
	for i, slot := range cfg.Sim.Players {
		strategy, err := sm.Build(slot.Strategy)
		if err != nil {
			logger.Fatal("failed to build strategy",
				zap.Int("player", i+1),
				zap.Error(err),
			)
		}
		strategies = append(strategies, strategy)
	}

	var recorder *sim.Recorder
	if cfg.Sim.ReplayFile != "" {
		recorder, err = sim.NewFileRecorder(cfg.Sim.ReplayFile)
		if err != nil {
			logger.Fatal("failed to open replay file", zap.Error(err))
		}
		defer recorder.Close()
	}

	match, err := sim.NewMatch(cfg.Sim, strategies, recorder, logger)
	if err != nil {
		logger.Fatal("failed to create match", zap.Error(err))
	}

	bot := NewBot(match, logger, time.Duration(cfg.Bot.TickDelay)*time.Millisecond)

	if cfg.Web.Enabled {
		hub := web.NewHub(bot)
		bot.Hub = hub
		go hub.Run()
		go func() {
			if err := web.StartServer(cfg.Web.Addr, hub); err != nil {
				logger.Error("viewer server stopped", zap.Error(err))
			}
		}()
		logger.Info("live viewer listening", zap.String("addr", cfg.Web.Addr))
	}

	bot.Run()
}
