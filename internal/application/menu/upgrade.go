package menu

import (
	"fmt"
	"image/color"
	"log"

	"github.com/DetectiveFierce/pause-menu/internal/domain/draw"
	"github.com/DetectiveFierce/pause-menu/internal/domain/geom"
	"github.com/DetectiveFierce/pause-menu/internal/domain/input"
	"github.com/DetectiveFierce/pause-menu/internal/domain/widget"
)

// UpgradeChoice is one offered upgrade card.
type UpgradeChoice struct {
	Name        string
	Description string
	Level       int

	// Icon names the texture drawn on the card, clipped to a circle.
	Icon string
}

// UpgradeMenu presents three tall upgrade cards side by side. Picking one
// reports its index; the app layer applies the upgrade and closes the
// menu.
type UpgradeMenu struct {
	mgr     *widget.Manager
	choices []UpgradeChoice
	visible bool

	picked    int
	hasPicked bool
}

// NewUpgradeMenu builds the menu against the given window size. styles is
// the loaded theme; nil falls back to the compiled-in presets.
func NewUpgradeMenu(m widget.TextMeasurer, styles map[string]widget.Style, winW, winH float64) *UpgradeMenu {
	u := &UpgradeMenu{mgr: widget.NewManager(m, winW, winH), picked: -1}

	for i := 0; i < 3; i++ {
		b := widget.New(cardID(i), "").
			WithStyle(styleFor(styles, "accent")).
			WithSpacing(widget.Tall(0.5)).
			WithTextAlign(widget.AlignCenter)
		if err := u.mgr.Add(b); err != nil {
			log.Printf("upgrade menu: %v", err)
		}
	}

	u.Relayout(winW, winH)
	return u
}

func cardID(i int) string { return fmt.Sprintf("upgrade_%d", i) }

// Offer sets the three choices shown on the cards and resets any pending
// pick. Fewer than three choices disables the unused cards.
func (u *UpgradeMenu) Offer(choices []UpgradeChoice) {
	u.choices = choices
	u.hasPicked = false
	u.picked = -1

	for i := 0; i < 3; i++ {
		b := u.mgr.Get(cardID(i))
		if b == nil {
			continue
		}
		if i < len(choices) {
			c := choices[i]
			b.Enabled = true
			b.Label = fmt.Sprintf("%s\nLv %d\n%s", c.Name, c.Level+1, c.Description)
			b.Icon = c.Icon
		} else {
			b.Enabled = false
			b.Label = ""
			b.Icon = ""
		}
	}
}

// Relayout recomputes the card rectangles for a new window size.
func (u *UpgradeMenu) Relayout(winW, winH float64) {
	if !u.mgr.Layout(winW, winH) {
		return
	}

	scale := widget.DPIScale(winH)
	cardW := clamp(winW*0.18*scale, 140, 360)
	gap := clamp(winW*0.03*scale, 12, 64)

	total := 3*cardW + 2*gap
	startX := (winW - total) / 2

	for i := 0; i < 3; i++ {
		b := u.mgr.Get(cardID(i))
		if b == nil {
			continue
		}
		cx := startX + float64(i)*(cardW+gap) + cardW/2
		b.WithSpacing(widget.Tall(0.5)).
			WithPosition(widget.At(cx, winH/2, cardW, 0).WithAnchor(widget.AnchorCenter))
	}
}

// SetVisible shows or hides the menu, resetting interaction state on show.
func (u *UpgradeMenu) SetVisible(v bool) {
	if v && !u.visible {
		u.mgr.ResetStates()
		u.hasPicked = false
		u.picked = -1
	}
	u.visible = v
}

// Visible reports whether the menu is shown.
func (u *UpgradeMenu) Visible() bool { return u.visible }

// HandleInput routes one event to the cards.
func (u *UpgradeMenu) HandleInput(ev input.Event) {
	if !u.visible {
		return
	}
	action, ok := u.mgr.HandleInput(ev)
	if !ok {
		return
	}
	for i := 0; i < 3; i++ {
		if action.ButtonID == cardID(i) && i < len(u.choices) {
			u.picked = i
			u.hasPicked = true
		}
	}
}

// Picked returns the chosen card index and clears it. The second value is
// false until a card is clicked, and again after the pick is consumed.
func (u *UpgradeMenu) Picked() (int, bool) {
	if !u.hasPicked {
		return -1, false
	}
	i := u.picked
	u.hasPicked = false
	u.picked = -1
	return i, true
}

// AppendPrimitives writes the overlay and cards to dst.
func (u *UpgradeMenu) AppendPrimitives(dst *draw.List) {
	if !u.visible {
		return
	}

	winW, winH := u.mgr.WindowSize()
	dst.Append(draw.RoundedRect(geom.NewRect(0, 0, winW, winH), overlayColor, 0))

	title := "Choose an Upgrade"
	titleSize := clamp(winH*0.045, 22, 56)
	titleW := float64(len(title)) * titleSize * 0.6
	dst.Append(draw.Text(
		geom.NewRect((winW-titleW)/2, winH*0.1, titleW, titleSize*1.2),
		[]string{title}, color.RGBA{R: 241, G: 245, B: 249, A: 255}, titleSize, titleSize*1.2,
	))

	u.mgr.AppendPrimitives(dst)
}
