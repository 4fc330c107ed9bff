// Package content loads and validates level and product definitions.
// The rules engine only ever sees definitions that passed validation here;
// any malformed or dangling reference aborts the load (no partial level).
package content

// ProductDef defines one product kind. Matches lists the ids this product
// pairs with; authoring keeps the relation symmetric
type ProductDef struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Image   string   `yaml:"image"` // opaque asset handle, unused by the engine
	Matches []string `yaml:"matches"`
	Points  int      `yaml:"points"`
}

// GridDef is the level's notional grid footprint in cells
type GridDef struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// LockDef locks the product at one shelf slot at construction time
type LockDef struct {
	Shelf string `yaml:"shelf"` // shelf reference
	Slot  int    `yaml:"slot"`
}

// ConditionDef configures a locking shelf's unlock condition.
// Kind selects which of the other fields apply
type ConditionDef struct {
	Kind string `yaml:"kind"` // toggle-timer, countdown-timer, match-products, complete-shelves, complete-shelf, place-product

	// toggle-timer
	Period               float64 `yaml:"period"`                 // seconds per lock phase
	FinalCountdownUnlock float64 `yaml:"final_countdown_unlock"` // seconds before the time limit, 0 = off

	// countdown-timer
	UnlockAfter float64 `yaml:"unlock_after"` // seconds

	// match-products / complete-shelves
	Count int `yaml:"count"`

	// match-products restriction / place-product requirement
	Product string `yaml:"product"`

	// complete-shelf / place-product target
	Shelf string `yaml:"shelf"`
	Slot  int    `yaml:"slot"`

	// place-product
	Latch    bool `yaml:"latch"`
	Inverted bool `yaml:"inverted"`
}

// ActorDef defines one positioned actor. Type selects the concrete entity;
// only the fields for that type are consulted
type ActorDef struct {
	Type string  `yaml:"type"` // shelf, closing, display, deep, disappearing, supply, locking, collapse, carousel
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`

	// shelf-like types
	SlotCount int      `yaml:"slots"`
	Match     int      `yaml:"match"`
	Reference string   `yaml:"reference"`
	Ignore    bool     `yaml:"ignore"`
	Products  []string `yaml:"products"` // initial contents by slot, "" = empty

	// display
	Allowed []string `yaml:"allowed"` // required product per slot, "" = must stay empty

	// deep
	Layers [][]string `yaml:"layers"` // top layer first

	// wrapper types
	Inner *ActorDef `yaml:"inner"`

	// locking
	Condition *ConditionDef `yaml:"condition"`

	// containers
	Children []ActorDef `yaml:"children"`
	Axis     string     `yaml:"axis"`   // "x" (default) or "y"
	Anchor   string     `yaml:"anchor"` // start (default), center, end
	Spacing  float64    `yaml:"spacing"`

	// carousel
	Speed float64 `yaml:"speed"` // cells per second

	// collapse
	Footprint float64 `yaml:"footprint"` // grid footprint along the axis, cells
}

// LevelDef is a complete level definition
type LevelDef struct {
	Name      string     `yaml:"name"`
	Grid      GridDef    `yaml:"grid"`
	TimeLimit float64    `yaml:"time_limit"` // seconds, 0 = none
	Actors    []ActorDef `yaml:"actors"`
	Locks     []LockDef  `yaml:"locks"`
}
