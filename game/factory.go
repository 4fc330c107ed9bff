package game

import (
	"fmt"
	"time"

	"github.com/lunargale/shelfsort/content"
	"github.com/lunargale/shelfsort/engine"
	"github.com/lunargale/shelfsort/events"
	"github.com/lunargale/shelfsort/vmath"
)

// NewLevel constructs a level from validated definitions. Construction is
// all-or-nothing: any dangling id or malformed actor aborts with an error
// and no partial level is returned
func NewLevel(def *content.LevelDef, catalog *ProductCatalog, tp engine.TimeProvider) (*Level, error) {
	lv := &Level{
		name:         def.Name,
		gridCols:     def.Grid.Cols,
		gridRows:     def.Grid.Rows,
		timeLimit:    time.Duration(def.TimeLimit * float64(time.Second)),
		timeProvider: tp,
		queue:        events.NewEventQueue(),
		catalog:      catalog,
		stats:        NewStats(),
	}

	for i := range def.Actors {
		actor, err := lv.buildActor(&def.Actors[i])
		if err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
		actor.SetPosition(vmath.Vec2{X: def.Actors[i].X, Y: def.Actors[i].Y})
		if layouter, ok := actor.(interface{ Layout() }); ok {
			layouter.Layout()
		}
		lv.actors = append(lv.actors, actor)
		if sa, ok := actor.(ShelfActor); ok {
			lv.shelves = append(lv.shelves, sa)
		}
	}

	if err := lv.applyLocks(def.Locks); err != nil {
		return nil, err
	}
	return lv, nil
}

// buildActor constructs one actor tree node. Shelves nested in containers
// register themselves into the flat shelf list here; top-level shelves
// are registered by NewLevel
func (lv *Level) buildActor(ad *content.ActorDef) (Actor, error) {
	switch ad.Type {
	case "shelf", "closing", "display", "deep":
		return lv.buildShelf(ad)
	case "disappearing", "supply", "locking":
		return lv.buildWrapper(ad)
	case "collapse", "carousel":
		return lv.buildContainer(ad)
	default:
		return nil, fmt.Errorf("unknown actor type %q", ad.Type)
	}
}

func (lv *Level) buildShelf(ad *content.ActorDef) (ShelfActor, error) {
	if ad.SlotCount < 1 {
		return nil, fmt.Errorf("%s shelf needs at least one slot", ad.Type)
	}

	base := NewShelf(ad.SlotCount, ad.Match, ad.Reference, ad.Ignore)
	for i, id := range ad.Products {
		if id == "" {
			continue
		}
		p, err := lv.catalog.New(id)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if !base.AddProductAt(i, p) {
			return nil, fmt.Errorf("slot %d: could not place %q", i, id)
		}
	}

	switch ad.Type {
	case "shelf":
		return base, nil
	case "closing":
		return NewClosingShelf(base), nil
	case "display":
		if len(ad.Allowed) != ad.SlotCount {
			return nil, fmt.Errorf("display shelf needs %d allowed entries, got %d", ad.SlotCount, len(ad.Allowed))
		}
		for i, id := range ad.Allowed {
			if id != "" && !lv.catalog.Has(id) {
				return nil, fmt.Errorf("allowed slot %d: unknown product id %q", i, id)
			}
		}
		return NewDisplayShelf(base, ad.Allowed), nil
	case "deep":
		if len(ad.Layers) < 1 {
			return nil, fmt.Errorf("deep shelf needs at least one layer")
		}
		// Top layer becomes the live products
		if err := lv.fillLayer(base, ad.Layers[0]); err != nil {
			return nil, fmt.Errorf("layer 0: %w", err)
		}
		pending := make([][]*Product, 0, len(ad.Layers)-1)
		for li, layer := range ad.Layers[1:] {
			built := make([]*Product, ad.SlotCount)
			for i, id := range layer {
				if id == "" || i >= ad.SlotCount {
					continue
				}
				p, err := lv.catalog.New(id)
				if err != nil {
					return nil, fmt.Errorf("layer %d slot %d: %w", li+1, i, err)
				}
				built[i] = p
			}
			pending = append(pending, built)
		}
		return NewDeepShelf(base, pending), nil
	}
	return nil, fmt.Errorf("unknown shelf type %q", ad.Type)
}

func (lv *Level) fillLayer(base *Shelf, layer []string) error {
	for i, id := range layer {
		if id == "" || i >= base.SlotCount() {
			continue
		}
		p, err := lv.catalog.New(id)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		if !base.AddProductAt(i, p) {
			return fmt.Errorf("slot %d: could not place %q", i, id)
		}
	}
	return nil
}

func (lv *Level) buildWrapper(ad *content.ActorDef) (ShelfActor, error) {
	if ad.Inner == nil {
		return nil, fmt.Errorf("%s wrapper needs an inner shelf", ad.Type)
	}
	innerActor, err := lv.buildActor(ad.Inner)
	if err != nil {
		return nil, fmt.Errorf("inner: %w", err)
	}
	inner, ok := innerActor.(ShelfActor)
	if !ok {
		return nil, fmt.Errorf("%s wrapper cannot wrap %q", ad.Type, ad.Inner.Type)
	}

	switch ad.Type {
	case "disappearing":
		return NewDisappearingShelf(inner), nil
	case "supply":
		return NewSupplyShelf(inner), nil
	case "locking":
		if ad.Condition == nil {
			return nil, fmt.Errorf("locking shelf needs a condition")
		}
		cond, err := conditionFromDef(ad.Condition)
		if err != nil {
			return nil, err
		}
		ls := NewLockingShelf(inner, cond)
		lv.lockers = append(lv.lockers, ls)
		return ls, nil
	}
	return nil, fmt.Errorf("unknown wrapper type %q", ad.Type)
}

func (lv *Level) buildContainer(ad *content.ActorDef) (Actor, error) {
	axis := AxisX
	if ad.Axis == "y" {
		axis = AxisY
	}

	var children []Actor
	for i := range ad.Children {
		child, err := lv.buildActor(&ad.Children[i])
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		children = append(children, child)
		// Containers own their children's updates, but every nested shelf
		// still joins the level's flat placement list
		if sa, ok := child.(ShelfActor); ok {
			lv.shelves = append(lv.shelves, sa)
		}
	}

	switch ad.Type {
	case "carousel":
		shelves := make([]ShelfActor, 0, len(children))
		for i, ch := range children {
			sa, ok := ch.(ShelfActor)
			if !ok {
				return nil, fmt.Errorf("child %d: carousel children must be shelves", i)
			}
			shelves = append(shelves, sa)
		}
		return NewCarousel(shelves, axis, ad.Speed, ad.Spacing), nil
	case "collapse":
		anchor := AnchorStart
		switch ad.Anchor {
		case "center":
			anchor = AnchorCenter
		case "end":
			anchor = AnchorEnd
		case "", "start":
		default:
			return nil, fmt.Errorf("unknown anchor %q", ad.Anchor)
		}
		footprint := ad.Footprint
		if footprint <= 0 {
			// Default to the level grid's extent along the axis
			if axis == AxisY {
				footprint = float64(lv.gridRows)
			} else {
				footprint = float64(lv.gridCols)
			}
		}
		return NewCollapse(children, axis, anchor, footprint, ad.Spacing), nil
	}
	return nil, fmt.Errorf("unknown container type %q", ad.Type)
}

// conditionFromDef translates a validated condition definition into the
// evaluator's tagged union
func conditionFromDef(d *content.ConditionDef) (LockCondition, error) {
	c := LockCondition{
		Period:               time.Duration(d.Period * float64(time.Second)),
		FinalCountdownUnlock: time.Duration(d.FinalCountdownUnlock * float64(time.Second)),
		UnlockAfter:          time.Duration(d.UnlockAfter * float64(time.Second)),
		Count:                d.Count,
		ProductID:            d.Product,
		ShelfRef:             d.Shelf,
		Slot:                 d.Slot,
		Latch:                d.Latch,
		Inverted:             d.Inverted,
	}
	switch d.Kind {
	case "toggle-timer":
		c.Kind = ConditionToggleTimer
	case "countdown-timer":
		c.Kind = ConditionCountdownTimer
	case "match-products":
		c.Kind = ConditionMatchProducts
	case "complete-shelves":
		c.Kind = ConditionCompleteShelves
	case "complete-shelf":
		c.Kind = ConditionCompleteShelf
	case "place-product":
		c.Kind = ConditionPlaceProduct
	default:
		return c, fmt.Errorf("unknown condition kind %q", d.Kind)
	}
	return c, nil
}

// applyLocks marks the products named by the level's lock list. Each lock
// must land on an occupied slot of a referenced shelf; anything else is a
// definition error
func (lv *Level) applyLocks(locks []content.LockDef) error {
	for i, l := range locks {
		var target ShelfActor
		for _, sa := range lv.shelves {
			if sa.Reference() == l.Shelf {
				target = sa
				break
			}
		}
		if target == nil {
			return fmt.Errorf("lock %d: unknown shelf reference %q", i, l.Shelf)
		}
		p := target.Base().ProductAt(l.Slot)
		if p == nil {
			return fmt.Errorf("lock %d: no product at slot %d of shelf %q", i, l.Slot, l.Shelf)
		}
		p.Locked = true
	}
	return nil
}
