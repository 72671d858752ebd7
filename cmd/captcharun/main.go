// Package main provides the CLI entrypoint for captcharun.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/captcharun/internal/audio"
	"github.com/verte-zerg/captcharun/internal/challenge"
	"github.com/verte-zerg/captcharun/internal/config"
	"github.com/verte-zerg/captcharun/internal/factory"
	"github.com/verte-zerg/captcharun/internal/game"
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/logging"
	"github.com/verte-zerg/captcharun/internal/model"
	"github.com/verte-zerg/captcharun/internal/render"
	"github.com/verte-zerg/captcharun/internal/tui"
	"github.com/verte-zerg/captcharun/internal/wordlist"
)

const (
	defaultFPS      = 60
	defaultVolume   = 0.6
	defaultLogLevel = "info"
	maxFPS          = 240
)

var (
	playFPS      int
	playSeed     int64
	playMute     bool
	playVolume   float64
	playWordBank string
	logLevel     string
	logFile      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "captcharun",
		Short:         "Prove you are human, faster every round",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playFPS, "fps", defaultFPS, "frames per second")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0: seed from the clock)")
	rootCmd.Flags().BoolVar(&playMute, "mute", false, "disable sound")
	rootCmd.Flags().Float64Var(&playVolume, "volume", defaultVolume, "sound volume (0-1)")
	rootCmd.Flags().StringVar(&playWordBank, "word-bank", "", "word list for the typed-text challenge (default: builtin)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: "+strings.Join(logging.Levels, ", "))
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (default: "+config.DefaultLogPath()+")")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newChallengesCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "fps", &playFPS, fileCfg.Play.FPS)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Play.Seed)
	applyStringConfig(cmd, "word-bank", &playWordBank, fileCfg.Play.WordBank)
	applyFloatConfig(cmd, "volume", &playVolume, fileCfg.Audio.Volume)
	if fileCfg.Audio.Enabled != nil {
		muted := !*fileCfg.Audio.Enabled
		applyBoolConfig(cmd, "mute", &playMute, &muted)
	}
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.Log.File)

	cfg := resolveConfig(fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(logLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("captcharun needs an interactive terminal")
	}

	words := wordlist.Default()
	if cfg.WordBank != "" {
		words, err = wordlist.LoadWords(cfg.WordBank)
		if err != nil {
			return fmt.Errorf("failed to load word bank %s: %w", cfg.WordBank, err)
		}
	}

	reg, err := buildRegistry(cfg, words)
	if err != nil {
		return err
	}

	logPath := logFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logOut, err := logging.Open(logPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logOut.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()
	logger := logging.New(logOut, logLevel)

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.FPS, "challenges", reg.Len(), "words", len(words))

	var sound game.Audio = game.NopAudio{}
	if !cfg.Mute {
		player := audio.NewPlayer(cfg.Volume, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		}
		defer player.Close()
		sound = player
	}

	g := game.New(cfg.Rules, factory.New(reg, gen), sound, logger)
	driver := tui.NewModel(g, render.New(), cfg.FPS, logger)
	program := tea.NewProgram(driver, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := driver.Err(); err != nil {
		return err
	}
	snap := g.Snapshot()
	logger.Info("exiting", "score", snap.Score, "round", snap.Round, "level", snap.Level)
	return nil
}

// resolveConfig merges flag values with the rules, thresholds and weights
// found in the config file.
func resolveConfig(fileCfg config.FileConfig) model.Config {
	return model.Config{
		FPS:        playFPS,
		Seed:       playSeed,
		WordBank:   playWordBank,
		Mute:       playMute,
		Volume:     playVolume,
		Rules:      fileCfg.Rules.ApplyRules(model.DefaultRules()),
		Thresholds: fileCfg.Difficulty.ApplyThresholds(model.DefaultThresholds()),
		Weights:    fileCfg.Weights,
	}
}

func buildRegistry(cfg model.Config, words []string) (*challenge.Registry, error) {
	defs, err := challenge.WithWeights(challenge.DefaultDefinitions(words), cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("invalid [weights]: %w", err)
	}
	reg, err := challenge.NewRegistry(cfg.Thresholds, defs...)
	if err != nil {
		return nil, fmt.Errorf("invalid challenge registry: %w", err)
	}
	return reg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newChallengesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "List challenge types with their weights and unlock rounds",
		Args:  cobra.NoArgs,
		RunE:  runChallengesCmd,
	}
}

func runChallengesCmd(cmd *cobra.Command, _ []string) error {
	lines, err := loadChallengeTable(config.DefaultConfigPath())
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// loadChallengeTable resolves the registry the play command would use and
// formats it. Config the play command rejects is rejected here too.
func loadChallengeTable(path string) ([]string, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(fileCfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	reg, err := buildRegistry(cfg, nil)
	if err != nil {
		return nil, err
	}
	return challengeTable(reg), nil
}

func challengeTable(reg *challenge.Registry) []string {
	entries := reg.Entries()
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		from := e.MinRound
		if from < 1 {
			from = 1
		}
		share := 0.0
		if total > 0 {
			share = float64(e.Weight) * 100 / float64(total)
		}
		rows = append(rows, []string{
			e.ID,
			string(e.Difficulty),
			strconv.Itoa(e.Weight),
			fmt.Sprintf("%.1f%%", share),
			strconv.Itoa(from),
		})
	}
	headers := []string{"ID", "DIFFICULTY", "WEIGHT", "SHARE", "FROM ROUND"}
	return render.FormatTable(headers, rows, map[int]bool{2: true, 3: true, 4: true})
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	rules := model.DefaultRules()
	th := model.DefaultThresholds()
	return fmt.Sprintf(`# captcharun configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# fps = %d                # Frames per second
# seed = 0                # Random seed, 0 seeds from the clock
# word-bank = ""          # Word list for the typed-text challenge

[audio]
# enabled = true
# volume = %.1f           # 0-1

[log]
# level = %q          # debug, info, warn, error
# file = ""               # Default: %s

[rules]
# timer-start = %.1f      # Seconds on the clock in round 1
# timer-min = %.1f        # Floor for the round clock
# timer-decay = %.1f      # Seconds removed per round
# max-strikes = %d
# rounds-per-level = %d
# base-score = %d
# flash = %.2f            # Verdict overlay, seconds
# level-up = %.1f         # Level-up screen, seconds

[difficulty]
# First round each tier may appear in
# easy = %d
# medium = %d
# hard = %d

[weights]
# Relative draw weight per challenge type, see: captcharun challenges
# traffic_light = 10
# crosswalk = 7
`,
		defaultFPS,
		defaultVolume,
		defaultLogLevel,
		config.DefaultLogPath(),
		rules.TimerStart.Seconds(),
		rules.TimerMin.Seconds(),
		rules.TimerDecay.Seconds(),
		rules.MaxStrikes,
		rules.RoundsPerLevel,
		rules.BaseScore,
		rules.FlashDuration.Seconds(),
		rules.LevelUpDuration.Seconds(),
		th[model.Easy],
		th[model.Medium],
		th[model.Hard],
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FPS <= 0 || cfg.FPS > maxFPS {
		return fmt.Errorf("--fps must be between 1 and %d", maxFPS)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	if err := cfg.Rules.Validate(); err != nil {
		return fmt.Errorf("invalid [rules]: %w", err)
	}
	for _, d := range model.Difficulties {
		if round, ok := cfg.Thresholds[d]; ok && round < 0 {
			return fmt.Errorf("invalid [difficulty]: %s must be >= 0", d)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
