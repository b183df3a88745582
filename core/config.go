package core

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// TuningConfig holds the strategy tuning parameters. Every threshold the
// strategies use is named here so the numbers are auditable and can be
// adjusted without touching the decision code.
type TuningConfig struct {
	// Phase thresholds (turn counts).
	EarlyGameEnd int `yaml:"early_game_end"`
	MidGameEnd   int `yaml:"mid_game_end"`

	// Food safety.
	MinFoodReserve    int `yaml:"min_food_reserve"`
	CriticalFoodLevel int `yaml:"critical_food_level"`

	// World scan policy.
	MaxScanEntries  int `yaml:"max_scan_entries"`
	ScanRadiusBase  int `yaml:"scan_radius_base"`
	ScanRadiusTurns int `yaml:"scan_radius_turns"` // turns per +1 radius
	ScanRadiusMax   int `yaml:"scan_radius_max"`

	// Defense and attack.
	ThreatRadius  int `yaml:"threat_radius"`
	RallyDistance int `yaml:"rally_distance"`
	// ProbeDivisor controls the probe attack: an attack without full
	// numerical advantage is launched when attacker > defender/divisor
	// and attacker < defender. A probe can be a net loss of units with
	// no gain; raise the divisor's value to make probing rarer.
	ProbeDivisor int `yaml:"probe_divisor"`

	// Conversion distribution.
	ConvertChunk int `yaml:"convert_chunk"`

	// Exploration.
	ExploreOffset int `yaml:"explore_offset"`
}

// BotConfig holds bot-level settings.
type BotConfig struct {
	Strategy  string `yaml:"strategy"`
	TickDelay int    `yaml:"tick_delay_ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Dev        bool   `yaml:"dev"`
}

// SimPlayerConfig assigns a strategy to a simulated player slot.
type SimPlayerConfig struct {
	Strategy string `yaml:"strategy"`
}

// SimConfig holds the in-process simulator settings.
type SimConfig struct {
	Width         int               `yaml:"width"`
	Height        int               `yaml:"height"`
	Seed          int64             `yaml:"seed"`
	MaxTurns      int               `yaml:"max_turns"`
	StartingPop   int               `yaml:"starting_pop"`
	CommandBudget int               `yaml:"command_budget"`
	ReplayFile    string            `yaml:"replay_file"`
	Players       []SimPlayerConfig `yaml:"players"`
}

// WebConfig holds the live match viewer settings.
type WebConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Config corresponds to the structure of the YAML config file.
type Config struct {
	Bot    BotConfig    `yaml:"bot"`
	Log    LogConfig    `yaml:"log"`
	Tuning TuningConfig `yaml:"tuning"`
	Sim    SimConfig    `yaml:"sim"`
	Web    WebConfig    `yaml:"web"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() *Config {
	return &Config{
		Bot: BotConfig{
			Strategy:  "balanced",
			TickDelay: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
		Tuning: DefaultTuning(),
		Sim: SimConfig{
			Width:         40,
			Height:        40,
			Seed:          1,
			MaxTurns:      1000,
			StartingPop:   50,
			CommandBudget: 512,
			Players: []SimPlayerConfig{
				{Strategy: "balanced"},
				{Strategy: "aggressive"},
			},
		},
		Web: WebConfig{
			Enabled: false,
			Addr:    "127.0.0.1:8080",
		},
	}
}

// DefaultTuning returns the reference strategy parameters.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		EarlyGameEnd:      300,
		MidGameEnd:        700,
		MinFoodReserve:    50,
		CriticalFoodLevel: 10,
		MaxScanEntries:    256,
		ScanRadiusBase:    10,
		ScanRadiusTurns:   100,
		ScanRadiusMax:     30,
		ThreatRadius:      5,
		RallyDistance:     3,
		ProbeDivisor:      2,
		ConvertChunk:      5,
		ExploreOffset:     5,
	}
}

// ConfigManager handles loading and saving of the bot's configuration.
type ConfigManager struct {
	configPath string
	config     *Config
	lock       sync.Mutex
}

// NewConfigManager creates a ConfigManager. A missing config file is not
// an error: the defaults are used and written back so the parameters are
// visible and editable.
func NewConfigManager(path string) (*ConfigManager, error) {
	cm := &ConfigManager{configPath: path}

	exists, err := cm.LoadConfig()
	if err != nil {
		return nil, err
	}
	if !exists {
		cm.config = DefaultConfig()
		if path != "" {
			if err := cm.SaveConfig(); err != nil {
				return nil, fmt.Errorf("failed to save default config: %w", err)
			}
		}
	}
	return cm, nil
}

// LoadConfig loads the configuration from the YAML file. It returns false
// if the file does not exist.
func (cm *ConfigManager) LoadConfig() (bool, error) {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	if cm.configPath == "" {
		return false, nil
	}
	file, err := os.ReadFile(cm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their default values.
	config := DefaultConfig()
	if err := yaml.Unmarshal(file, config); err != nil {
		return false, fmt.Errorf("failed to decode YAML from config file: %w", err)
	}
	cm.config = config
	return true, nil
}

// SaveConfig saves the current configuration to the YAML file.
func (cm *ConfigManager) SaveConfig() error {
	cm.lock.Lock()
	defer cm.lock.Unlock()

	data, err := yaml.Marshal(cm.config)
	if err != nil {
		return fmt.Errorf("failed to encode config to YAML: %w", err)
	}
	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to config file: %w", err)
	}
	return nil
}

// GetConfig returns the entire configuration.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig sets the configuration for testing purposes.
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}
