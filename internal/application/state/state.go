package state

// Screen represents the current top-level screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenGame
	ScreenPause
	ScreenUpgrade
	ScreenGameOver
	ScreenNewGame
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "Loading"
	case ScreenGame:
		return "Game"
	case ScreenPause:
		return "Pause"
	case ScreenUpgrade:
		return "Upgrade"
	case ScreenGameOver:
		return "GameOver"
	case ScreenNewGame:
		return "NewGame"
	default:
		return "Unknown"
	}
}
