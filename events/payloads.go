package events

// ProductMovedPayload describes one product changing (or failing to change)
// slot. ToShelf/ToSlot are unset for picks and rejected drops
type ProductMovedPayload struct {
	ProductID string
	FromShelf string // shelf reference, empty if the shelf is untracked
	FromSlot  int
	ToShelf   string
	ToSlot    int
}

// MatchFoundPayload describes one resolved match group
type MatchFoundPayload struct {
	ShelfRef   string
	ProductIDs []string
	Points     int
}

// ShelfPayload names a shelf by reference for completion/disposal events
type ShelfPayload struct {
	ShelfRef string
}

// LockChangedPayload carries the new lock state after an edge
type LockChangedPayload struct {
	ShelfRef string
	Locked   bool
}
