package widget

import "image/color"

// ReferenceHeight is the window height the preset metrics are designed at.
const ReferenceHeight = 1080.0

// DPIScale returns the virtual DPI factor for a window height, clamped so
// tiny and huge windows stay usable.
func DPIScale(windowHeight float64) float64 {
	s := windowHeight / ReferenceHeight
	if s < 0.7 {
		return 0.7
	}
	if s > 2.0 {
		return 2.0
	}
	return s
}

func presetText(scale float64) TextStyle {
	return TextStyle{
		FontSize:   18 * scale,
		LineHeight: 20 * scale,
		Color:      color.RGBA{255, 255, 255, 255},
	}
}

// DefaultStyle is the slate style buttons start with before a preset is
// applied.
func DefaultStyle() Style {
	scale := DPIScale(ReferenceHeight)
	return Style{
		Background:   color.RGBA{55, 65, 81, 255},
		Hover:        color.RGBA{71, 85, 105, 255},
		Pressed:      color.RGBA{30, 41, 59, 255},
		Disabled:     color.RGBA{148, 163, 184, 255},
		Border:       color.RGBA{71, 85, 105, 255},
		BorderWidth:  1,
		CornerRadius: 8,
		PaddingX:     16,
		PaddingY:     8,
		Text: TextStyle{
			FontSize:   18 * scale,
			LineHeight: 20 * scale,
			Color:      color.RGBA{248, 250, 252, 255},
		},
	}
}

// PrimaryStyle is the affirmative mint-green preset.
func PrimaryStyle() Style {
	return preset(
		color.RGBA{30, 110, 30, 255},
		color.RGBA{25, 85, 25, 255},
		color.RGBA{20, 65, 20, 255},
		color.RGBA{110, 140, 110, 255},
	)
}

// AccentStyle is the neutral slate preset for secondary actions.
func AccentStyle() Style {
	return preset(
		color.RGBA{51, 65, 85, 255},
		color.RGBA{71, 85, 105, 255},
		color.RGBA{30, 41, 59, 255},
		color.RGBA{148, 163, 184, 255},
	)
}

// WarningStyle is the dark-orange preset for destructive-ish actions.
func WarningStyle() Style {
	return preset(
		color.RGBA{170, 100, 10, 255},
		color.RGBA{140, 80, 5, 255},
		color.RGBA{110, 60, 0, 255},
		color.RGBA{160, 140, 115, 255},
	)
}

// MutedWarningStyle is a desaturated variant of the warning preset, used
// where a warning tone should not dominate the panel.
func MutedWarningStyle() Style {
	return preset(
		color.RGBA{150, 110, 60, 255},
		color.RGBA{125, 90, 45, 255},
		color.RGBA{100, 72, 35, 255},
		color.RGBA{160, 145, 125, 255},
	)
}

// DangerStyle is the dark-red preset for quit/destroy actions.
func DangerStyle() Style {
	return preset(
		color.RGBA{110, 20, 10, 255},
		color.RGBA{90, 15, 5, 255},
		color.RGBA{70, 10, 0, 255},
		color.RGBA{80, 96, 119, 255},
	)
}

func preset(bg, hover, pressed, disabled color.RGBA) Style {
	scale := DPIScale(ReferenceHeight)
	return Style{
		Background:   bg,
		Hover:        hover,
		Pressed:      pressed,
		Disabled:     disabled,
		Border:       hover,
		BorderWidth:  1,
		CornerRadius: 8,
		PaddingX:     16,
		PaddingY:     10,
		Text:         presetText(scale),
	}
}
