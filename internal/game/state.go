package game

// State is an orchestrator screen.
type State int

// Orchestrator states.
const (
	StateMenu State = iota
	StatePlaying
	StateFlash
	StateLevelUp
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateFlash:
		return "flash"
	case StateLevelUp:
		return "level-up"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
