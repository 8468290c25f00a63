package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/DetectiveFierce/pause-menu/internal/domain/widget"
)

// ThemeConfig is the root config for theme.yaml. Each entry overrides one
// named button style; styles absent from the file keep their built-in
// preset.
type ThemeConfig struct {
	Buttons map[string]ButtonTheme `yaml:"buttons"`
}

// ButtonTheme overrides a single button style. Zero-valued fields keep the
// preset's value, so a theme can recolor a button without restating its
// paddings.
type ButtonTheme struct {
	Background   string    `yaml:"background"`
	Hover        string    `yaml:"hover"`
	Pressed      string    `yaml:"pressed"`
	Disabled     string    `yaml:"disabled"`
	Border       string    `yaml:"border"`
	BorderWidth  *float64  `yaml:"borderWidth"`
	CornerRadius *float64  `yaml:"cornerRadius"`
	PaddingX     *float64  `yaml:"paddingX"`
	PaddingY     *float64  `yaml:"paddingY"`
	Text         TextTheme `yaml:"text"`
}

type TextTheme struct {
	Size       *float64 `yaml:"size"`
	LineHeight *float64 `yaml:"lineHeight"`
	Color      string   `yaml:"color"`
	Bold       *bool    `yaml:"bold"`
}

// presets maps theme entry names onto the built-in styles.
var presets = map[string]func() widget.Style{
	"default":       widget.DefaultStyle,
	"primary":       widget.PrimaryStyle,
	"accent":        widget.AccentStyle,
	"warning":       widget.WarningStyle,
	"muted_warning": widget.MutedWarningStyle,
	"danger":        widget.DangerStyle,
}

// Styles resolves the theme into concrete button styles, one per preset
// name, with file overrides applied on top. Unknown entry names are
// reported as errors so a typoed theme fails loudly instead of silently
// styling nothing.
func (t *ThemeConfig) Styles() (map[string]widget.Style, error) {
	styles := make(map[string]widget.Style, len(presets))
	for name, preset := range presets {
		styles[name] = preset()
	}

	for name, bt := range t.Buttons {
		base, ok := styles[name]
		if !ok {
			return nil, fmt.Errorf("theme: unknown button style %q", name)
		}
		applied, err := bt.apply(base)
		if err != nil {
			return nil, fmt.Errorf("theme: style %q: %w", name, err)
		}
		styles[name] = applied
	}
	return styles, nil
}

func (bt ButtonTheme) apply(s widget.Style) (widget.Style, error) {
	colorFields := []struct {
		hex string
		dst *color.RGBA
	}{
		{bt.Background, &s.Background},
		{bt.Hover, &s.Hover},
		{bt.Pressed, &s.Pressed},
		{bt.Disabled, &s.Disabled},
		{bt.Border, &s.Border},
		{bt.Text.Color, &s.Text.Color},
	}
	for _, f := range colorFields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return s, err
		}
		*f.dst = c
	}

	if bt.BorderWidth != nil {
		s.BorderWidth = *bt.BorderWidth
	}
	if bt.CornerRadius != nil {
		s.CornerRadius = *bt.CornerRadius
	}
	if bt.PaddingX != nil {
		s.PaddingX = *bt.PaddingX
	}
	if bt.PaddingY != nil {
		s.PaddingY = *bt.PaddingY
	}
	if bt.Text.Size != nil {
		s.Text.FontSize = *bt.Text.Size
	}
	if bt.Text.LineHeight != nil {
		s.Text.LineHeight = *bt.Text.LineHeight
	}
	if bt.Text.Bold != nil {
		s.Text.Bold = *bt.Text.Bold
	}
	return s, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into an RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 255,
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
