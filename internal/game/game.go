// Package game runs the CAPTCHArun state machine: menu, rounds, verdict
// flash, level-up and game over.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/verte-zerg/captcharun/internal/challenge"
	"github.com/verte-zerg/captcharun/internal/model"
	"github.com/verte-zerg/captcharun/internal/session"
	"github.com/verte-zerg/captcharun/internal/timer"
)

// Game owns the session, the round timer and the active challenge. It is
// driven by one caller per frame: HandleInput for each queued event, then
// Update, then Render.
type Game struct {
	rules  model.Rules
	source Source
	audio  Audio
	log    *slog.Logger

	session *session.Session
	timer   *timer.Timer

	state    State
	active   challenge.Challenge
	button   model.Rect
	hover    bool
	timedOut bool

	levelUpLeft time.Duration
	lastDt      time.Duration
}

// New returns a game sitting on the menu. A nil audio or logger is
// replaced by a silent one.
func New(rules model.Rules, source Source, audio Audio, logger *slog.Logger) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		rules:   rules,
		source:  source,
		audio:   audio,
		log:     logger,
		session: session.New(rules),
		timer:   timer.New(rules),
		state:   StateMenu,
	}
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Snapshot returns the scoreboard.
func (g *Game) Snapshot() session.Snapshot { return g.session.Snapshot() }

// Challenge returns the active challenge, or nil outside a round.
func (g *Game) Challenge() challenge.Challenge { return g.active }

// TimerFill returns the remaining fraction of the round timer.
func (g *Game) TimerFill() float64 { return g.timer.Fill() }

// Button returns the action button cached by the last render.
func (g *Game) Button() model.Rect { return g.button }

func (g *Game) setState(s State) {
	if g.state != s {
		g.log.Debug("state change", "from", g.state, "to", s)
	}
	g.state = s
	g.button = model.Rect{}
	g.hover = false
}

// HandleInput routes one event. Menu and game over react only to a click
// on the action button; during a round a click on the verify button is
// consumed and every other event goes to the challenge. Nothing reacts
// during the flash or the level-up screen.
func (g *Game) HandleInput(ev model.Event) error {
	switch g.state {
	case StateMenu:
		if ev.IsClick() && g.button.Contains(ev.Pos) {
			return g.start()
		}
	case StateGameOver:
		if ev.IsClick() && g.button.Contains(ev.Pos) {
			g.active = nil
			g.setState(StateMenu)
		}
	case StatePlaying:
		if ev.IsClick() && g.button.Contains(ev.Pos) {
			g.verify(false)
			return nil
		}
		if cue, ok := g.active.HandleInput(ev).Cue(); ok {
			g.audio.Play(cue)
		}
	}
	return nil
}

// Update advances the game by dt. pointer is the current pointer position
// used for hover tracking.
func (g *Game) Update(dt time.Duration, pointer model.Point) error {
	if dt < 0 {
		dt = 0
	}
	g.lastDt = dt
	switch g.state {
	case StateMenu, StateGameOver:
		g.updateHover(pointer)
	case StatePlaying:
		g.timer.Update(dt)
		g.session.UpdateFlash(dt)
		g.updateHover(pointer)
		if g.timer.Expired() {
			g.verify(true)
		}
	case StateFlash:
		g.session.UpdateFlash(dt)
		if flash, _ := g.session.FlashState(); flash != model.FlashNone {
			return nil
		}
		switch {
		case g.session.IsGameOver():
			snap := g.session.Snapshot()
			g.log.Info("game over", "score", snap.Score, "round", snap.Round, "level", snap.Level)
			g.active = nil
			g.setState(StateGameOver)
		case g.session.LevelUp():
			g.log.Info("level up", "level", g.session.Level(), "round", g.session.Round())
			g.levelUpLeft = g.rules.LevelUpDuration
			g.setState(StateLevelUp)
			g.audio.Play(model.CueLevelUp)
		default:
			return g.loadNext()
		}
	case StateLevelUp:
		g.levelUpLeft -= dt
		if g.levelUpLeft <= 0 {
			g.levelUpLeft = 0
			return g.loadNext()
		}
	}
	return nil
}

// Render hands the current frame to r and caches the returned button.
func (g *Game) Render(r Renderer) {
	switch g.state {
	case StateMenu:
		g.button = r.Menu(MenuFrame{Hover: g.hover, Dt: g.lastDt})
	case StatePlaying:
		g.button = r.Playing(g.playingFrame(true))
	case StateFlash:
		r.Playing(g.playingFrame(false))
	case StateLevelUp:
		progress := 1.0
		if g.rules.LevelUpDuration > 0 {
			progress = 1 - float64(g.levelUpLeft)/float64(g.rules.LevelUpDuration)
		}
		r.LevelUp(LevelUpFrame{
			Session:   g.session.Snapshot(),
			Remaining: g.levelUpLeft,
			Progress:  progress,
		})
	case StateGameOver:
		g.button = r.GameOver(GameOverFrame{
			Session:  g.session.Snapshot(),
			Hover:    g.hover,
			TimedOut: g.timedOut,
		})
	}
}

func (g *Game) playingFrame(interactive bool) PlayingFrame {
	flash, alpha := g.session.FlashState()
	return PlayingFrame{
		Challenge:   g.active,
		Session:     g.session.Snapshot(),
		Fill:        g.timer.Fill(),
		Remaining:   g.timer.Remaining(),
		Hover:       g.hover,
		Interactive: interactive,
		Flash:       flash,
		FlashAlpha:  alpha,
	}
}

func (g *Game) start() error {
	g.session.Reset()
	g.source.ResetHistory()
	g.timedOut = false
	g.log.Info("game started")
	if err := g.loadNext(); err != nil {
		return err
	}
	g.audio.Play(model.CueMenuStart)
	return nil
}

func (g *Game) loadNext() error {
	round := g.session.Round()
	c, err := g.source.Next(round)
	if err != nil {
		return fmt.Errorf("failed to load challenge for round %d: %w", round, err)
	}
	g.active = c
	g.timer.Start(round)
	g.setState(StatePlaying)
	g.log.Debug("round started", "round", round, "prompt", c.Prompt(), "limit", g.timer.Limit())
	return nil
}

// verify ends the round. A timeout always counts as a fail, whatever the
// challenge state.
func (g *Game) verify(timeout bool) {
	g.timer.Stop()
	g.timedOut = timeout
	switch {
	case timeout:
		g.session.RegisterFail()
		g.audio.Play(model.CueTimeout)
		g.log.Debug("round timed out", "round", g.session.Round(), "strikes", g.session.Strikes())
	case g.active.IsSolved():
		g.audio.Play(model.CueVerify)
		g.session.RegisterPass()
		g.audio.Play(model.CuePass)
		g.log.Debug("round passed", "round", g.session.Round()-1, "score", g.session.Score(), "streak", g.session.Streak())
	default:
		g.audio.Play(model.CueVerify)
		g.session.RegisterFail()
		g.audio.Play(model.CueFail)
		g.log.Debug("round failed", "round", g.session.Round(), "strikes", g.session.Strikes())
	}
	g.setState(StateFlash)
}

func (g *Game) updateHover(pointer model.Point) {
	hover := g.button.Contains(pointer)
	if hover && !g.hover && (g.state == StateMenu || g.state == StateGameOver) {
		g.audio.Play(model.CueMenuHover)
	}
	g.hover = hover
}
