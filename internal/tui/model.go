// Package tui drives the game from a Bubble Tea program: it translates
// terminal input, paces frames and shows the rendered playfield.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/captcharun/internal/game"
	"github.com/verte-zerg/captcharun/internal/model"
	"github.com/verte-zerg/captcharun/internal/render"
)

// MaxFrameDt caps the time step fed to the game after a stall.
const MaxFrameDt = 50 * time.Millisecond

type tickMsg time.Time

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

var smallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(string(model.ColorChrome)))

// Model implements the Bubble Tea frame driver for a game.
type Model struct {
	game     *game.Game
	renderer *render.Renderer
	log      *slog.Logger
	keys     keyMap
	frame    time.Duration

	width  int
	height int

	pointer model.Point
	queue   []model.Event
	last    time.Time
	err     error
}

// NewModel returns a driver ticking fps times per second.
func NewModel(g *game.Game, r *render.Renderer, fps int, logger *slog.Logger) *Model {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		game:     g,
		renderer: r,
		log:      logger,
		keys:     defaultKeyMap(),
		frame:    time.Second / time.Duration(fps),
		pointer:  offField,
	}
	g.Render(r)
	return m
}

// Err returns the error that stopped the game, if any.
func (m *Model) Err() error { return m.err }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model. Input is only queued here; the game sees
// it on the next frame, before that frame's update and render.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.queue = append(m.queue, translateKey(msg, m.pointer)...)
		return m, nil
	case tea.MouseMsg:
		ev, ok := translateMouse(msg, m.offset())
		if ev.Kind == model.EventPointerMove {
			m.pointer = offField
			if ok {
				m.pointer = ev.Pos
			}
		}
		if ok {
			m.queue = append(m.queue, ev)
		}
		return m, nil
	case tickMsg:
		if err := m.step(time.Time(msg)); err != nil {
			m.err = err
			m.log.Error("game stopped", "error", err)
			return m, tea.Quit
		}
		return m, m.tick()
	default:
		return m, nil
	}
}

// step runs one frame: queued input, then update, then render.
func (m *Model) step(now time.Time) error {
	var dt time.Duration
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now
	if dt > MaxFrameDt {
		dt = MaxFrameDt
	}

	queue := m.queue
	m.queue = nil
	for _, ev := range queue {
		if err := m.game.HandleInput(ev); err != nil {
			return err
		}
	}
	if err := m.game.Update(dt, m.pointer); err != nil {
		return err
	}
	m.game.Render(m.renderer)
	return nil
}

func (m *Model) offset() model.Point {
	return render.Offset(m.width, m.height)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}
	if m.width > 0 && m.height > 0 && (m.width < model.ScreenW || m.height < model.ScreenH) {
		msg := fmt.Sprintf("terminal too small: need %dx%d, have %dx%d", model.ScreenW, model.ScreenH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, smallStyle.Render(msg))
	}
	return m.renderer.View(m.width, m.height)
}
