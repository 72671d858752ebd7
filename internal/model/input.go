package model

// Point is a position in playfield cells.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned area in playfield cells.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies inside r. Empty rects contain nothing.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the middle cell of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// EventKind classifies an input event.
type EventKind int

// Event kinds.
const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventKeyDown
)

// Button is a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Key is a logical, non-printable key.
type Key int

// Logical keys. KeyRune means the event carries a printable Rune.
const (
	KeyNone Key = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEscape
	KeySpace
)

// Event is one input record already expressed in playfield coordinates.
type Event struct {
	Kind   EventKind
	Pos    Point
	Button Button
	Key    Key
	Rune   rune
}

// IsClick reports whether e is a primary pointer press.
func (e Event) IsClick() bool {
	return e.Kind == EventPointerDown && e.Button == ButtonLeft
}

// Cue is a symbolic audio cue fired by the game.
type Cue int

// Audio cues.
const (
	CueTileSelect Cue = iota
	CueTileDeselect
	CueVerify
	CuePass
	CueFail
	CueTimeout
	CueFlee
	CueMenuHover
	CueMenuStart
	CueLevelUp
)

// Cues lists every cue.
var Cues = []Cue{
	CueTileSelect,
	CueTileDeselect,
	CueVerify,
	CuePass,
	CueFail,
	CueTimeout,
	CueFlee,
	CueMenuHover,
	CueMenuStart,
	CueLevelUp,
}

func (c Cue) String() string {
	switch c {
	case CueTileSelect:
		return "tile-select"
	case CueTileDeselect:
		return "tile-deselect"
	case CueVerify:
		return "verify"
	case CuePass:
		return "pass"
	case CueFail:
		return "fail"
	case CueTimeout:
		return "timeout"
	case CueFlee:
		return "flee"
	case CueMenuHover:
		return "menu-hover"
	case CueMenuStart:
		return "menu-start"
	case CueLevelUp:
		return "level-up"
	default:
		return "unknown"
	}
}
