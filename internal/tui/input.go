package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/captcharun/internal/model"
)

// offField is where the pointer is parked once it leaves the playfield.
var offField = model.Point{X: -1, Y: -1}

func inField(p model.Point) bool {
	return p.X >= 0 && p.X < model.ScreenW && p.Y >= 0 && p.Y < model.ScreenH
}

// translateMouse converts a terminal mouse message into a playfield event.
// Wheel input and unknown actions are dropped. The bool reports whether
// the event landed on the playfield.
func translateMouse(msg tea.MouseMsg, offset model.Point) (model.Event, bool) {
	pos := model.Point{X: msg.X - offset.X, Y: msg.Y - offset.Y}
	ev := model.Event{Pos: pos}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = model.EventPointerDown
	case tea.MouseActionRelease:
		ev.Kind = model.EventPointerUp
	case tea.MouseActionMotion:
		ev.Kind = model.EventPointerMove
	default:
		return model.Event{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = model.ButtonLeft
	case tea.MouseButtonRight:
		ev.Button = model.ButtonRight
	case tea.MouseButtonMiddle:
		ev.Button = model.ButtonMiddle
	case tea.MouseButtonNone:
	default:
		return model.Event{}, false
	}
	return ev, inField(pos)
}

// translateKey converts a key message into zero or more key events. Pasted
// or batched runes become one event each.
func translateKey(msg tea.KeyMsg, pointer model.Point) []model.Event {
	base := model.Event{Kind: model.EventKeyDown, Pos: pointer}
	switch msg.Type {
	case tea.KeyRunes:
		events := make([]model.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := base
			ev.Key = model.KeyRune
			ev.Rune = r
			events = append(events, ev)
		}
		return events
	case tea.KeySpace:
		base.Key = model.KeySpace
		base.Rune = ' '
	case tea.KeyBackspace, tea.KeyDelete:
		base.Key = model.KeyBackspace
	case tea.KeyEnter:
		base.Key = model.KeyEnter
	case tea.KeyEsc:
		base.Key = model.KeyEscape
	default:
		return nil
	}
	return []model.Event{base}
}
