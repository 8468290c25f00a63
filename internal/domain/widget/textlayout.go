package widget

import "strings"

// TextMeasurer supplies horizontal string advances for text layout.
// The render layer adapts a real font face; tests use a fixed-advance fake.
type TextMeasurer interface {
	// Advance returns the width of s set at the given font size, in
	// logical pixels.
	Advance(s string, size float64) float64
}

// TextLayout is the result of laying a label into a button box.
type TextLayout struct {
	Lines  []string
	Width  float64 // widest line
	Height float64 // len(Lines) * line height

	// Overflow is set when the laid-out height exceeds the box height.
	// The layout is still returned in full: the caller decides whether to
	// grow the box or warn. Nothing is clipped here.
	Overflow bool
}

// LayoutLabel lays label into a box of boxW x boxH according to the spacing
// policy. Wrap and Tall reflow on word boundaries to fit boxW; Hbar keeps a
// single line and leaves fitting to the caller. Explicit newlines always
// break. A boxH of zero or below disables overflow detection.
func LayoutLabel(label string, m TextMeasurer, ts TextStyle, sp Spacing, boxW, boxH float64) TextLayout {
	var lines []string
	if sp.Mode == SpacingHbar {
		lines = strings.Split(label, "\n")
	} else {
		for _, para := range strings.Split(label, "\n") {
			lines = append(lines, wrapLine(para, m, ts.FontSize, boxW)...)
		}
	}

	var width float64
	for _, line := range lines {
		if w := m.Advance(line, ts.FontSize); w > width {
			width = w
		}
	}

	height := float64(len(lines)) * ts.LineHeight
	return TextLayout{
		Lines:    lines,
		Width:    width,
		Height:   height,
		Overflow: boxH > 0 && height > boxH,
	}
}

// wrapLine greedily packs words into lines no wider than maxW. A single
// word wider than maxW gets its own line rather than being split.
func wrapLine(s string, m TextMeasurer, size, maxW float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if maxW > 0 && m.Advance(candidate, size) > maxW {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// alignLineX returns the x coordinate of a line's left edge inside the
// content box [left, left+width], honoring padding for the edge alignments.
func alignLineX(a Align, left, width, padX, lineW float64) float64 {
	switch a {
	case AlignLeft:
		return left + padX
	case AlignRight:
		return left + width - padX - lineW
	default:
		return left + (width-lineW)/2
	}
}
