package config

// UIConfig is the root config for ui.json
type UIConfig struct {
	Display DisplayConfig `json:"display"`
	Timer   TimerSettings `json:"timer"`
	Debug   DebugConfig   `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
	Resizable    bool   `json:"resizable"`
}

// TimerSettings configures the run countdown, in seconds.
type TimerSettings struct {
	DurationSec float64 `json:"durationSec"`
	WarningSec  float64 `json:"warningSec"`
	CriticalSec float64 `json:"criticalSec"`
}

type DebugConfig struct {
	// Overlay enables the debug readout and center guide at startup.
	Overlay bool `json:"overlay"`
}
