// Package challenge defines the CAPTCHA challenge contract, the shared tile
// grid, the builtin variants and the registry that catalogues them.
package challenge

import "github.com/verte-zerg/captcharun/internal/model"

// Feedback tells the caller what a handled input event did, so it can pick
// a sound without knowing the concrete challenge.
type Feedback int

// Feedback values.
const (
	FeedbackNone Feedback = iota
	FeedbackSelect
	FeedbackDeselect
	FeedbackFlee
)

// Cue maps feedback to an audio cue. ok is false for FeedbackNone.
func (f Feedback) Cue() (model.Cue, bool) {
	switch f {
	case FeedbackSelect:
		return model.CueTileSelect, true
	case FeedbackDeselect:
		return model.CueTileDeselect, true
	case FeedbackFlee:
		return model.CueFlee, true
	default:
		return 0, false
	}
}

// Surface is the draw-only target a challenge paints itself onto.
type Surface interface {
	Fill(r model.Rect, ch rune, style model.Style)
	Text(x, y int, s string, style model.Style)
	Border(r model.Rect, style model.Style)
}

// Challenge is one randomized puzzle. A challenge owns its answer and the
// player's progress; callers only learn the outcome through IsSolved.
type Challenge interface {
	// Prompt is the instruction shown in the header.
	Prompt() string
	Difficulty() model.Difficulty
	// Render draws the challenge without mutating it.
	Render(s Surface)
	// HandleInput applies one input event to the challenge's own state.
	HandleInput(ev model.Event) Feedback
	// IsSolved compares the player's state to the answer. It has no side
	// effects.
	IsSolved() bool
	// Reset draws a new puzzle and clears the player's progress.
	Reset()
}
