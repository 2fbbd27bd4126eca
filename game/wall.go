package game

import "fmt"

// Wall tracks per-column durability and strength. The wall is not a grid
// occupant: it never appears in cell content and only gates southward
// movement through its row while durability is positive.
//
// Durability is deliberately unclamped. ChangeDurability applies raw deltas
// and may drive it negative; the siege driver decides what that means.
type Wall struct {
	durability []int
	strength   []int
	noDamage   func(column int)
}

// NewWall builds a wall spanning the given number of columns, each segment
// starting with the same durability and strength.
func NewWall(columns, durability, strength int) *Wall {
	if columns <= 0 {
		panic(fmt.Sprintf("wall needs at least one column, got %d", columns))
	}
	w := &Wall{
		durability: make([]int, columns),
		strength:   make([]int, columns),
	}
	for x := range w.durability {
		w.durability[x] = durability
		w.strength[x] = strength
	}
	return w
}

func (w *Wall) column(x int) int {
	if x < 0 || x >= len(w.durability) {
		panic(fmt.Sprintf("wall column %d out of range [0,%d)", x, len(w.durability)))
	}
	return x
}

func (w *Wall) Durability(x int) int { return w.durability[w.column(x)] }

func (w *Wall) Strength(x int) int { return w.strength[w.column(x)] }

// ChangeDurability adds delta to the column's durability. Negative results
// are allowed.
func (w *Wall) ChangeDurability(x, delta int) {
	w.durability[w.column(x)] += delta
}

// OnNoDamage fires the feedback hook for an attack that failed to reduce
// durability. Pure notification, no state change.
func (w *Wall) OnNoDamage(x int) {
	x = w.column(x)
	if w.noDamage != nil {
		w.noDamage(x)
	}
}

// SetNoDamageHook installs the observer invoked by OnNoDamage.
func (w *Wall) SetNoDamageHook(fn func(column int)) {
	w.noDamage = fn
}
