// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/captcharun/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Play       PlayConfig       `toml:"play"`
	Audio      AudioConfig      `toml:"audio"`
	Log        LogConfig        `toml:"log"`
	Rules      RulesConfig      `toml:"rules"`
	Difficulty DifficultyConfig `toml:"difficulty"`
	Weights    map[string]int   `toml:"weights"`
}

// PlayConfig maps frame rate, seeding and word bank settings.
type PlayConfig struct {
	FPS      *int    `toml:"fps"`
	Seed     *int64  `toml:"seed"`
	WordBank *string `toml:"word-bank"`
}

// AudioConfig maps sound settings.
type AudioConfig struct {
	Enabled *bool    `toml:"enabled"`
	Volume  *float64 `toml:"volume"`
}

// LogConfig maps log destination and verbosity.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// RulesConfig maps game constants. Durations are in seconds.
type RulesConfig struct {
	TimerStart     *float64 `toml:"timer-start"`
	TimerMin       *float64 `toml:"timer-min"`
	TimerDecay     *float64 `toml:"timer-decay"`
	MaxStrikes     *int     `toml:"max-strikes"`
	RoundsPerLevel *int     `toml:"rounds-per-level"`
	BaseScore      *int     `toml:"base-score"`
	Flash          *float64 `toml:"flash"`
	LevelUp        *float64 `toml:"level-up"`
}

// DifficultyConfig maps the first round each difficulty may appear in.
type DifficultyConfig struct {
	Easy   *int `toml:"easy"`
	Medium *int `toml:"medium"`
	Hard   *int `toml:"hard"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ApplyRules overlays the values present in the file onto rules.
func (c RulesConfig) ApplyRules(rules model.Rules) model.Rules {
	if c.TimerStart != nil {
		rules.TimerStart = seconds(*c.TimerStart)
	}
	if c.TimerMin != nil {
		rules.TimerMin = seconds(*c.TimerMin)
	}
	if c.TimerDecay != nil {
		rules.TimerDecay = seconds(*c.TimerDecay)
	}
	if c.MaxStrikes != nil {
		rules.MaxStrikes = *c.MaxStrikes
	}
	if c.RoundsPerLevel != nil {
		rules.RoundsPerLevel = *c.RoundsPerLevel
	}
	if c.BaseScore != nil {
		rules.BaseScore = *c.BaseScore
	}
	if c.Flash != nil {
		rules.FlashDuration = seconds(*c.Flash)
	}
	if c.LevelUp != nil {
		rules.LevelUpDuration = seconds(*c.LevelUp)
	}
	return rules
}

// ApplyThresholds returns a copy of base with the configured rounds set.
func (c DifficultyConfig) ApplyThresholds(base model.Thresholds) model.Thresholds {
	out := make(model.Thresholds, len(base))
	for d, round := range base {
		out[d] = round
	}
	if c.Easy != nil {
		out[model.Easy] = *c.Easy
	}
	if c.Medium != nil {
		out[model.Medium] = *c.Medium
	}
	if c.Hard != nil {
		out[model.Hard] = *c.Hard
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
