package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/captcharun/internal/config"
	"github.com/verte-zerg/captcharun/internal/model"
)

func validConfig() model.Config {
	return model.Config{
		FPS:        defaultFPS,
		Volume:     defaultVolume,
		Rules:      model.DefaultRules(),
		Thresholds: model.DefaultThresholds(),
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(validConfig()))

	cases := map[string]func(*model.Config){
		"zero fps":        func(c *model.Config) { c.FPS = 0 },
		"fps too high":    func(c *model.Config) { c.FPS = maxFPS + 1 },
		"negative volume": func(c *model.Config) { c.Volume = -0.1 },
		"volume above 1":  func(c *model.Config) { c.Volume = 1.5 },
		"bad rules":       func(c *model.Config) { c.Rules.MaxStrikes = 0 },
		"negative tier":   func(c *model.Config) { c.Thresholds[model.Hard] = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Play.FPS, "template values are commented out")
	assert.Nil(t, cfg.Rules.TimerStart)
}

func TestDefaultConfigTemplateUncommented(t *testing.T) {
	var lines []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		trimmed := strings.TrimPrefix(line, "# ")
		if strings.Contains(trimmed, " = ") {
			line = trimmed
		}
		lines = append(lines, line)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	fileCfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, fileCfg.Play.FPS)
	assert.Equal(t, defaultFPS, *fileCfg.Play.FPS)
	assert.Equal(t, model.DefaultRules(), fileCfg.Rules.ApplyRules(model.Rules{}))
	assert.Equal(t, model.DefaultThresholds(), fileCfg.Difficulty.ApplyThresholds(model.Thresholds{}))
	assert.Equal(t, 7, fileCfg.Weights["crosswalk"])
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--fps", "30"}))

	fileFPS := 90
	fileVolume := 0.2
	applyIntConfig(cmd, "fps", &playFPS, &fileFPS)
	applyFloatConfig(cmd, "volume", &playVolume, &fileVolume)
	applyStringConfig(cmd, "word-bank", &playWordBank, nil)

	assert.Equal(t, 30, playFPS, "explicit flag wins")
	assert.InDelta(t, 0.2, playVolume, 1e-9, "config fills unset flag")
	assert.Equal(t, "", playWordBank)
}

func TestChallengeTable(t *testing.T) {
	cfg := validConfig()
	cfg.Weights = map[string]int{"shuffle": 8}
	reg, err := buildRegistry(cfg, nil)
	require.NoError(t, err)

	lines := challengeTable(reg)
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "crosswalk")
	assert.Contains(t, joined, "medium")

	var shuffle string
	for _, line := range lines {
		if strings.HasPrefix(line, "shuffle") {
			shuffle = line
		}
	}
	fields := strings.Fields(shuffle)
	require.Len(t, fields, 5)
	assert.Equal(t, "hard", fields[1])
	assert.Equal(t, "8", fields[2])
	assert.Equal(t, "8", fields[4])
}

func TestBuildRegistryRejectsUnknownWeight(t *testing.T) {
	cfg := validConfig()
	cfg.Weights = map[string]int{"captcha_v3": 1}
	_, err := buildRegistry(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "captcha_v3")
}

func TestLoadChallengeTableValidatesConfig(t *testing.T) {
	newRootCmd()
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[weights]\nbus = 4\n"), 0o644))
	lines, err := loadChallengeTable(good)
	require.NoError(t, err)
	assert.Len(t, lines, 6)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[difficulty]\nhard = -1\n"), 0o644))
	_, err = loadChallengeTable(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[difficulty]")
}
