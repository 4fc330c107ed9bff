package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// shelfTypes are the actor types that resolve to a concrete shelf
var shelfTypes = map[string]bool{
	"shelf":   true,
	"closing": true,
	"display": true,
	"deep":    true,
}

// wrapperTypes wrap an inner shelf-like actor
var wrapperTypes = map[string]bool{
	"disappearing": true,
	"supply":       true,
	"locking":      true,
}

// containerTypes group child actors
var containerTypes = map[string]bool{
	"collapse": true,
	"carousel": true,
}

var conditionKinds = map[string]bool{
	"toggle-timer":     true,
	"countdown-timer":  true,
	"match-products":   true,
	"complete-shelves": true,
	"complete-shelf":   true,
	"place-product":    true,
}

// LoadProducts reads and validates a product definition file
func LoadProducts(path string) ([]ProductDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product file: %w", err)
	}
	var file struct {
		Products []ProductDef `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse product file %s: %w", path, err)
	}
	if err := ValidateProducts(file.Products); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file.Products, nil
}

// LoadLevel reads and validates a level definition file against the
// already-loaded product set
func LoadLevel(path string, products []ProductDef) (*LevelDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	var def LevelDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	if err := ValidateLevel(&def, products); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &def, nil
}

// ValidateProducts checks product definitions for internal consistency:
// non-empty unique ids and match lists that only name known products
func ValidateProducts(defs []ProductDef) error {
	ids := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("product %d: empty id", i)
		}
		if ids[d.ID] {
			return fmt.Errorf("product %d: duplicate id %q", i, d.ID)
		}
		ids[d.ID] = true
	}
	for _, d := range defs {
		for _, m := range d.Matches {
			if !ids[m] {
				return fmt.Errorf("product %q: matches unknown id %q", d.ID, m)
			}
		}
	}
	return nil
}

// shelfInfo records what validation learned about a referenced shelf
type shelfInfo struct {
	slots int
}

// ValidateLevel checks a level definition. All shelf references named by
// locks and conditions must resolve, every initial product id must exist,
// and type-specific shape rules must hold. Any failure aborts the load
func ValidateLevel(def *LevelDef, products []ProductDef) error {
	if def.Grid.Cols <= 0 || def.Grid.Rows <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", def.Grid.Cols, def.Grid.Rows)
	}

	ids := make(map[string]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}

	v := &levelValidator{productIDs: ids, refs: make(map[string]shelfInfo)}

	// First pass: structure and shapes, collecting shelf references
	for i := range def.Actors {
		if err := v.validateActor(&def.Actors[i]); err != nil {
			return fmt.Errorf("actor %d: %w", i, err)
		}
	}

	// Second pass: cross-references (conditions and locks name shelves that
	// may be defined later in the file)
	for i := range def.Actors {
		if err := v.validateConditionRefs(&def.Actors[i]); err != nil {
			return fmt.Errorf("actor %d: %w", i, err)
		}
	}
	for i, l := range def.Locks {
		info, ok := v.refs[l.Shelf]
		if !ok {
			return fmt.Errorf("lock %d: unknown shelf reference %q", i, l.Shelf)
		}
		if l.Slot < 0 || l.Slot >= info.slots {
			return fmt.Errorf("lock %d: slot %d out of range for shelf %q", i, l.Slot, l.Shelf)
		}
	}
	return nil
}

type levelValidator struct {
	productIDs map[string]bool
	refs       map[string]shelfInfo
}

func (v *levelValidator) validateActor(a *ActorDef) error {
	switch {
	case shelfTypes[a.Type]:
		return v.validateShelf(a)
	case wrapperTypes[a.Type]:
		return v.validateWrapper(a)
	case containerTypes[a.Type]:
		return v.validateContainer(a)
	case a.Type == "":
		return fmt.Errorf("missing actor type")
	default:
		return fmt.Errorf("unknown actor type %q", a.Type)
	}
}

func (v *levelValidator) validateShelf(a *ActorDef) error {
	if a.SlotCount < 1 {
		return fmt.Errorf("%s shelf needs at least one slot, got %d", a.Type, a.SlotCount)
	}
	if a.Type != "display" {
		if a.Match < 2 || a.Match > a.SlotCount {
			return fmt.Errorf("match count %d out of range for %d slots", a.Match, a.SlotCount)
		}
	}
	if a.Reference != "" {
		if _, dup := v.refs[a.Reference]; dup {
			return fmt.Errorf("duplicate shelf reference %q", a.Reference)
		}
		v.refs[a.Reference] = shelfInfo{slots: a.SlotCount}
	}
	if len(a.Products) > a.SlotCount {
		return fmt.Errorf("%d initial products for %d slots", len(a.Products), a.SlotCount)
	}
	for i, id := range a.Products {
		if id != "" && !v.productIDs[id] {
			return fmt.Errorf("slot %d: unknown product id %q", i, id)
		}
	}

	switch a.Type {
	case "display":
		if len(a.Allowed) != a.SlotCount {
			return fmt.Errorf("display shelf needs one allowed entry per slot, got %d for %d slots", len(a.Allowed), a.SlotCount)
		}
		for i, id := range a.Allowed {
			if id != "" && !v.productIDs[id] {
				return fmt.Errorf("allowed slot %d: unknown product id %q", i, id)
			}
		}
	case "deep":
		if len(a.Layers) < 1 {
			return fmt.Errorf("deep shelf needs at least one layer")
		}
		for li, layer := range a.Layers {
			if len(layer) > a.SlotCount {
				return fmt.Errorf("layer %d: %d products for %d slots", li, len(layer), a.SlotCount)
			}
			for i, id := range layer {
				if id != "" && !v.productIDs[id] {
					return fmt.Errorf("layer %d slot %d: unknown product id %q", li, i, id)
				}
			}
		}
		if len(a.Products) > 0 {
			return fmt.Errorf("deep shelf takes layers, not products")
		}
	}
	return nil
}

func (v *levelValidator) validateWrapper(a *ActorDef) error {
	if a.Inner == nil {
		return fmt.Errorf("%s wrapper needs an inner shelf", a.Type)
	}
	if !shelfTypes[a.Inner.Type] && !wrapperTypes[a.Inner.Type] {
		return fmt.Errorf("%s wrapper cannot wrap %q", a.Type, a.Inner.Type)
	}
	if a.Type == "locking" {
		if a.Condition == nil {
			return fmt.Errorf("locking shelf needs a condition")
		}
		if err := v.validateCondition(a.Condition); err != nil {
			return err
		}
	}
	return v.validateActor(a.Inner)
}

func (v *levelValidator) validateContainer(a *ActorDef) error {
	if len(a.Children) == 0 {
		return fmt.Errorf("%s needs at least one child", a.Type)
	}
	switch a.Axis {
	case "", "x", "y":
	default:
		return fmt.Errorf("unknown axis %q", a.Axis)
	}
	if a.Type == "collapse" {
		switch a.Anchor {
		case "", "start", "center", "end":
		default:
			return fmt.Errorf("unknown anchor %q", a.Anchor)
		}
	}
	if a.Type == "carousel" && a.Speed < 0 {
		return fmt.Errorf("carousel speed must not be negative")
	}
	for i := range a.Children {
		if a.Type == "carousel" && containerTypes[a.Children[i].Type] {
			return fmt.Errorf("carousel children must be shelves, child %d is %q", i, a.Children[i].Type)
		}
		if err := v.validateActor(&a.Children[i]); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func (v *levelValidator) validateCondition(c *ConditionDef) error {
	if !conditionKinds[c.Kind] {
		return fmt.Errorf("unknown condition kind %q", c.Kind)
	}
	switch c.Kind {
	case "toggle-timer":
		if c.Period <= 0 {
			return fmt.Errorf("toggle-timer needs a positive period")
		}
	case "countdown-timer":
		if c.UnlockAfter <= 0 {
			return fmt.Errorf("countdown-timer needs a positive unlock_after")
		}
	case "match-products":
		if c.Count < 1 {
			return fmt.Errorf("match-products needs a positive count")
		}
		if c.Product != "" && !v.productIDs[c.Product] {
			return fmt.Errorf("match-products names unknown product %q", c.Product)
		}
	case "complete-shelves":
		if c.Count < 1 {
			return fmt.Errorf("complete-shelves needs a positive count")
		}
	case "complete-shelf":
		if c.Shelf == "" {
			return fmt.Errorf("complete-shelf needs a shelf reference")
		}
	case "place-product":
		if c.Shelf == "" {
			return fmt.Errorf("place-product needs a shelf reference")
		}
		if c.Product != "" && !v.productIDs[c.Product] {
			return fmt.Errorf("place-product names unknown product %q", c.Product)
		}
	}
	return nil
}

// validateConditionRefs resolves shelf references named by conditions once
// every reference is known
func (v *levelValidator) validateConditionRefs(a *ActorDef) error {
	if a.Condition != nil {
		c := a.Condition
		if c.Shelf != "" {
			info, ok := v.refs[c.Shelf]
			if !ok {
				return fmt.Errorf("condition names unknown shelf reference %q", c.Shelf)
			}
			if c.Kind == "place-product" && (c.Slot < 0 || c.Slot >= info.slots) {
				return fmt.Errorf("condition slot %d out of range for shelf %q", c.Slot, c.Shelf)
			}
		}
	}
	if a.Inner != nil {
		if err := v.validateConditionRefs(a.Inner); err != nil {
			return err
		}
	}
	for i := range a.Children {
		if err := v.validateConditionRefs(&a.Children[i]); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}
