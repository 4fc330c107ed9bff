package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/vmath"
)

// Axis selects the layout direction of a container actor
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Carousel loops a group of shelves along one axis at constant speed.
// Each child's offset wraps modulo the group's total extent, so shelves
// leaving one end re-enter at the other. Pure layout; no placement rules
type Carousel struct {
	children []ShelfActor
	pos      vmath.Vec2
	axis     Axis
	speed    float64 // cells per second
	spacing  float64
	travel   float64
}

func NewCarousel(children []ShelfActor, axis Axis, speed, spacing float64) *Carousel {
	return &Carousel{children: children, axis: axis, speed: speed, spacing: spacing}
}

func (c *Carousel) Position() vmath.Vec2     { return c.pos }
func (c *Carousel) SetPosition(v vmath.Vec2) { c.pos = v }

// Disposed is always false: carousels live as long as the level
func (c *Carousel) Disposed() bool { return false }

// extent returns one child's length along the axis including spacing
func (c *Carousel) extent(child ShelfActor) float64 {
	b := child.Bounds()
	if c.axis == AxisY {
		return b.H + c.spacing
	}
	return b.W + c.spacing
}

// totalExtent is the full loop length
func (c *Carousel) totalExtent() float64 {
	total := 0.0
	for _, ch := range c.children {
		total += c.extent(ch)
	}
	return total
}

// Bounds covers the whole loop footprint
func (c *Carousel) Bounds() vmath.Rect {
	length := c.totalExtent()
	if c.axis == AxisY {
		return vmath.NewRect(c.pos.X, c.pos.Y, constants.SlotWidth, length)
	}
	return vmath.NewRect(c.pos.X, c.pos.Y, length, constants.SlotHeight)
}

// Layout places every child at its current looped offset
func (c *Carousel) Layout() {
	total := c.totalExtent()
	if total <= 0 {
		return
	}
	cursor := 0.0
	for _, ch := range c.children {
		offset := vmath.Mod(cursor+c.travel, total)
		if c.axis == AxisY {
			ch.SetPosition(vmath.Vec2{X: c.pos.X, Y: c.pos.Y + offset})
		} else {
			ch.SetPosition(vmath.Vec2{X: c.pos.X + offset, Y: c.pos.Y})
		}
		cursor += c.extent(ch)
	}
}

func (c *Carousel) Update(lv *Level, dt time.Duration) {
	c.travel += c.speed * dt.Seconds()
	c.Layout()
	for _, ch := range c.children {
		ch.Update(lv, dt)
	}
}
