// Package view draws a top-down terminal picture of a running simulation:
// the colliders around the character, live ripples and a status line.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/materialfx/internal/sim"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Glyphs used for the map.
const (
	GlyphFloor     = '.'
	GlyphLiquid    = '~'
	GlyphPlatform  = '='
	GlyphTrigger   = ':'
	GlyphRipple    = 'o'
	GlyphFaint     = '°'
	GlyphCharacter = '@'
)

var (
	styleFloor     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLiquid    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePlatform  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrigger   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleRipple    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCharacter = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// faintAlpha is the alpha below which a ripple is drawn faded.
const faintAlpha = 0.4

// View renders a host onto a tcell screen, centred on the character.
// Columns follow +X; rows grow towards -Z so forward is up.
type View struct {
	screen        tcell.Screen
	cellsPerMeter float32
}

// New creates a view drawing cellsPerMeter columns per metre. Terminal
// cells are about twice as tall as wide, so rows use half that.
func New(screen tcell.Screen, cellsPerMeter float32) *View {
	if cellsPerMeter <= 0 {
		cellsPerMeter = 2
	}
	return &View{screen: screen, cellsPerMeter: cellsPerMeter}
}

// Draw renders one frame and shows it.
func (v *View) Draw(h *sim.Host) {
	v.screen.Clear()
	w, rows := v.screen.Size()
	if w <= 0 || rows <= 1 {
		return
	}
	mapRows := rows - 1
	center := h.World().Body().Position()
	colliders := h.World().Colliders()

	for row := 0; row < mapRows; row++ {
		for col := 0; col < w; col++ {
			p := v.toWorld(col, row, w, mapRows, center)
			if r, style, ok := ground(colliders, p); ok {
				v.screen.SetContent(col, row, r, nil, style)
			}
		}
	}

	for _, inst := range h.Effects().Active() {
		col, row, ok := v.toCell(inst.Position, w, mapRows, center)
		if !ok {
			continue
		}
		r := GlyphRipple
		if inst.Alpha() < faintAlpha {
			r = GlyphFaint
		}
		v.screen.SetContent(col, row, r, nil, styleRipple)
	}

	if col, row, ok := v.toCell(center, w, mapRows, center); ok {
		v.screen.SetContent(col, row, GlyphCharacter, nil, styleCharacter)
	}

	v.drawStatus(h, rows-1, w)
	v.screen.Show()
}

func (v *View) drawStatus(h *sim.Host, row, width int) {
	st := h.Controller().State()
	pos := h.World().Body().Position()
	line := fmt.Sprintf(" tick %d  %s  x %.1f z %.1f  air %.2f  effects %d ",
		h.Tick(), st.Phase, pos.X, pos.Z, st.AirTimer, h.Effects().Len())
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(line) {
			r = rune(line[col])
		}
		v.screen.SetContent(col, row, r, nil, styleStatus)
	}
}

func (v *View) toWorld(col, row, width, rows int, center math.Vec3) math.Vec3 {
	dx := (float32(col-width/2) + 0.5) / v.cellsPerMeter
	dz := (float32(rows/2-row) - 0.5) / (v.cellsPerMeter / 2)
	return math.Vec3{X: center.X + dx, Y: center.Y, Z: center.Z + dz}
}

func (v *View) toCell(p math.Vec3, width, rows int, center math.Vec3) (col, row int, ok bool) {
	col = width/2 + int(floor((p.X-center.X)*v.cellsPerMeter))
	row = rows/2 - int(floor((p.Z-center.Z)*v.cellsPerMeter/2)) - 1
	ok = col >= 0 && col < width && row >= 0 && row < rows
	return col, row, ok
}

// ground picks the glyph of the topmost collider under p.
func ground(colliders []sim.Collider, p math.Vec3) (rune, tcell.Style, bool) {
	best := -1
	for i, c := range colliders {
		if !c.Box.ContainsXZ(p) {
			continue
		}
		if best < 0 || rank(c.Kind) > rank(colliders[best].Kind) {
			best = i
		}
	}
	if best < 0 {
		return 0, tcell.StyleDefault, false
	}
	switch colliders[best].Kind {
	case sim.ColliderLiquid:
		return GlyphLiquid, styleLiquid, true
	case sim.ColliderPlatform:
		return GlyphPlatform, stylePlatform, true
	case sim.ColliderTrigger:
		return GlyphTrigger, styleTrigger, true
	default:
		return GlyphFloor, styleFloor, true
	}
}

func rank(k sim.ColliderKind) int {
	switch k {
	case sim.ColliderPlatform:
		return 3
	case sim.ColliderLiquid:
		return 2
	case sim.ColliderTrigger:
		return 1
	default:
		return 0
	}
}

func floor(f float32) float32 {
	i := float32(int(f))
	if f < i {
		return i - 1
	}
	return i
}
