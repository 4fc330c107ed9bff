package game

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/vmath"
)

// Anchor selects where a collapse group sits inside its grid footprint
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// collapseChild pairs a child actor with its easing state. from is the
// last settled baseline; a retarget restarts the move from wherever the
// child currently is
type collapseChild struct {
	actor  Actor
	from   vmath.Vec2
	target vmath.Vec2
	start  time.Time
	moving bool
}

// Collapse arranges shelves (or nested collapses) along one axis from a
// computed anchor and compacts them whenever a child disposes or shrinks.
// Targets are recomputed every tick from current child sizes; each child
// bounce-eases from its last settled position to its new target. The
// group disposes itself once its child list empties
type Collapse struct {
	children []*collapseChild
	pos      vmath.Vec2
	axis     Axis
	anchor   Anchor
	// footprint is the notional grid length the anchor rule positions
	// against, in cells
	footprint float64
	spacing   float64
	disposed  bool
}

func NewCollapse(children []Actor, axis Axis, anchor Anchor, footprint, spacing float64) *Collapse {
	c := &Collapse{axis: axis, anchor: anchor, footprint: footprint, spacing: spacing}
	for _, a := range children {
		c.children = append(c.children, &collapseChild{actor: a})
	}
	return c
}

func (c *Collapse) Position() vmath.Vec2     { return c.pos }
func (c *Collapse) SetPosition(v vmath.Vec2) { c.pos = v }
func (c *Collapse) Disposed() bool           { return c.disposed }

// ChildCount returns the number of live children
func (c *Collapse) ChildCount() int { return len(c.children) }

func (c *Collapse) axisLen(r vmath.Rect) float64 {
	if c.axis == AxisY {
		return r.H
	}
	return r.W
}

// Bounds covers the configured footprint
func (c *Collapse) Bounds() vmath.Rect {
	if c.axis == AxisY {
		return vmath.NewRect(c.pos.X, c.pos.Y, constants.SlotWidth, c.footprint)
	}
	return vmath.NewRect(c.pos.X, c.pos.Y, c.footprint, constants.SlotHeight)
}

// targets computes the current target position for every child from the
// anchor rule and the children's live sizes
func (c *Collapse) targets() []vmath.Vec2 {
	total := 0.0
	for i, ch := range c.children {
		total += c.axisLen(ch.actor.Bounds())
		if i > 0 {
			total += c.spacing
		}
	}

	start := 0.0
	switch c.anchor {
	case AnchorCenter:
		start = (c.footprint - total) / 2
	case AnchorEnd:
		start = c.footprint - total
	}

	out := make([]vmath.Vec2, len(c.children))
	cursor := start
	for i, ch := range c.children {
		if c.axis == AxisY {
			out[i] = vmath.Vec2{X: c.pos.X, Y: c.pos.Y + cursor}
		} else {
			out[i] = vmath.Vec2{X: c.pos.X + cursor, Y: c.pos.Y}
		}
		cursor += c.axisLen(ch.actor.Bounds()) + c.spacing
	}
	return out
}

// Layout snaps every child straight onto its target and resets baselines.
// Used at construction so the level starts settled
func (c *Collapse) Layout() {
	for i, target := range c.targets() {
		ch := c.children[i]
		ch.actor.SetPosition(target)
		ch.from = target
		ch.target = target
		ch.moving = false
	}
}

func (c *Collapse) Update(lv *Level, dt time.Duration) {
	// Drop disposed children first so remaining ones compact this tick
	live := c.children[:0]
	for _, ch := range c.children {
		if !ch.actor.Disposed() {
			live = append(live, ch)
		}
	}
	c.children = live

	if len(c.children) == 0 {
		c.disposed = true
		return
	}

	now := lv.Now()
	for i, target := range c.targets() {
		ch := c.children[i]
		if target.Dist(ch.target) > constants.CollapseSettleTolerance {
			// New target: restart the ease from wherever the child is now
			ch.from = ch.actor.Position()
			ch.target = target
			ch.start = now
			ch.moving = true
		}
		if ch.moving {
			t := vmath.Clamp(now.Sub(ch.start).Seconds()/constants.CollapseMoveDuration.Seconds(), 0, 1)
			eased := vmath.EaseOutBounce(t)
			pos := vmath.Vec2{
				X: vmath.Lerp(ch.from.X, ch.target.X, eased),
				Y: vmath.Lerp(ch.from.Y, ch.target.Y, eased),
			}
			ch.actor.SetPosition(pos)
			if pos.Dist(ch.target) <= constants.CollapseSettleTolerance {
				// Settled: snap and reset the baseline for the next move
				ch.actor.SetPosition(ch.target)
				ch.from = ch.target
				ch.moving = false
			}
		}
	}

	for _, ch := range c.children {
		ch.actor.Update(lv, dt)
	}
}
