// Package render draws the level onto a tcell screen. Pure presentation:
// it reads level state and never mutates it
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/game"
	"github.com/lunargale/shelfsort/vmath"
)

var (
	styleFrame    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLocked   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleClosed   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleExiting  = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleDisplay  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleGhost    = tcell.StyleDefault.Reverse(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleComplete = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// product glyph palette, picked by id hash
var productColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorOrange,
	tcell.ColorLime,
}

// Renderer draws one level per frame. The margin offsets the level grid
// away from the terminal edge so the HUD has a row of its own
type Renderer struct {
	screen        tcell.Screen
	width, height int
	marginX       int
	marginY       int
	status        string
}

func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, marginX: 1, marginY: 1}
	r.Resize()
	return r
}

// Resize re-reads the terminal dimensions
func (r *Renderer) Resize() {
	r.screen.Sync()
	r.width, r.height = r.screen.Size()
}

// SetStatus replaces the free-text tail of the HUD line
func (r *Renderer) SetStatus(s string) {
	r.status = s
}

// ToWorld converts a screen cell to level coordinates
func (r *Renderer) ToWorld(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: float64(x - r.marginX), Y: float64(y - r.marginY)}
}

func (r *Renderer) toScreen(v vmath.Vec2) (int, int) {
	return int(math.Round(v.X)) + r.marginX, int(math.Round(v.Y)) + r.marginY
}

// Draw renders one frame: shelf frames, occupants, the drag ghost and the
// HUD line
func (r *Renderer) Draw(lv *game.Level) {
	r.screen.Clear()
	now := lv.Now()

	for _, sa := range lv.Shelves() {
		r.drawShelf(sa, now)
	}
	r.drawGhost(lv)
	r.drawHUD(lv)

	r.screen.Show()
}

func (r *Renderer) drawShelf(sa game.ShelfActor, now time.Time) {
	base := sa.Base()
	x0, y0 := r.toScreen(sa.Position())
	slots := base.SlotCount()
	sw := int(constants.SlotWidth)
	sh := int(constants.SlotHeight)

	style := r.frameStyle(sa, now)

	// Horizontal borders with slot dividers
	for i := 0; i <= slots; i++ {
		x := x0 + i*sw
		r.set(x, y0, '┬', style)
		r.set(x, y0+sh-1, '┴', style)
		for y := y0 + 1; y < y0+sh-1; y++ {
			r.set(x, y, '│', style)
		}
	}
	r.set(x0, y0, '┌', style)
	r.set(x0+slots*sw, y0, '┐', style)
	r.set(x0, y0+sh-1, '└', style)
	r.set(x0+slots*sw, y0+sh-1, '┘', style)
	for i := 0; i < slots; i++ {
		for x := x0 + i*sw + 1; x < x0+(i+1)*sw; x++ {
			r.set(x, y0, '─', style)
			r.set(x, y0+sh-1, '─', style)
		}
	}

	ds, isDisplay := sa.(*game.DisplayShelf)
	for i := 0; i < slots; i++ {
		cx := x0 + i*sw + sw/2
		cy := y0 + sh/2
		p := base.ProductAt(i)
		switch {
		case p != nil:
			r.set(cx, cy, glyphFor(p.ID), productStyle(p))
		case isDisplay:
			if want := ds.AllowedAt(i); want != "" {
				r.set(cx, cy, glyphFor(want), styleHint)
			}
		}
	}

	if deep, ok := sa.(*game.DeepShelf); ok && deep.LayersRemaining() > 0 {
		r.set(x0+slots*sw, y0+sh/2, rune('0'+min(deep.LayersRemaining(), 9)), style)
	}
	if ls, ok := sa.(*game.LockingShelf); ok && ls.Locked() {
		r.set(x0+slots*sw/2, y0, '▒', styleLocked)
	}
}

func (r *Renderer) frameStyle(sa game.ShelfActor, now time.Time) tcell.Style {
	switch s := sa.(type) {
	case *game.LockingShelf:
		if s.InTransition(now) || s.Locked() {
			return styleLocked
		}
	case *game.ClosingShelf:
		if s.Closed() {
			return styleClosed
		}
	case *game.DisappearingShelf:
		if s.Exiting() {
			return styleExiting
		}
	case *game.DisplayShelf:
		return styleDisplay
	}
	return styleFrame
}

func (r *Renderer) drawGhost(lv *game.Level) {
	d := lv.Dragging()
	if d == nil {
		return
	}
	x, y := r.toScreen(d.Pos)
	r.set(x, y, glyphFor(d.Product.ID), styleGhost)
}

func (r *Renderer) drawHUD(lv *game.Level) {
	stats := lv.StatsSnapshot()
	line := fmt.Sprintf("%s  %s  matches %d  shelves %d",
		lv.Name(), clock(stats.Elapsed, lv.TimeLimit()), stats.TotalMatches, stats.CompletedShelfCount)
	if r.status != "" {
		line += "  " + r.status
	}
	if lv.Completed() {
		r.text(r.marginX, r.height-1, "LEVEL COMPLETE", styleComplete)
		r.text(r.marginX+15, r.height-1, line, styleHUD)
		return
	}
	r.text(r.marginX, r.height-1, line, styleHUD)
}

func clock(elapsed, limit time.Duration) string {
	if limit > 0 {
		left := limit - elapsed
		if left < 0 {
			left = 0
		}
		return fmt.Sprintf("%d:%02d", int(left.Minutes()), int(left.Seconds())%60)
	}
	return fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x++
	}
}

// glyphFor maps a product id to its display rune
func glyphFor(id string) rune {
	for _, ch := range id {
		return ch
	}
	return '?'
}

func productStyle(p *game.Product) tcell.Style {
	style := tcell.StyleDefault.Foreground(productColors[colorIndex(p.ID)]).Bold(true)
	if p.Locked {
		style = style.Underline(true)
	}
	if p.Disappearing() {
		style = style.Dim(true)
	}
	return style
}

func colorIndex(id string) int {
	h := 0
	for _, ch := range id {
		h = h*31 + int(ch)
	}
	if h < 0 {
		h = -h
	}
	return h % len(productColors)
}
