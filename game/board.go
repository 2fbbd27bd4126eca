package game

import "fmt"

// Board composes the cell store and the wall ledger into the single
// authoritative battlefield state. All queries and mutations go through it.
type Board struct {
	*grid
	Wall *Wall

	bus      *Bus
	wallRow  int
	failHook func(*Unit)
}

// NewBoard builds an empty battlefield. The wall occupies wallRow; besieging
// units stand at wallRow+1, so at least one row must exist north of it.
func NewBoard(width, height, wallRow int, wall *Wall, bus *Bus) *Board {
	if wall == nil {
		panic("board needs a wall ledger")
	}
	if bus == nil {
		panic("board needs an event bus")
	}
	g := newGrid(width, height)
	if wallRow < 0 || wallRow >= height-1 {
		panic(fmt.Sprintf("wall row %d leaves no besieging row on a %d-row grid", wallRow, height))
	}
	return &Board{grid: g, Wall: wall, bus: bus, wallRow: wallRow}
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

// WallRow is the row the wall occupies. It blocks southward movement through
// itself while the column's durability is positive.
func (b *Board) WallRow() int { return b.wallRow }

// Events is the board's notification channel.
func (b *Board) Events() *Bus { return b.bus }

// OrderedUnits returns every attacker on the board, column-major: x
// ascending, then z ascending within the column. This is the only sequence
// in which per-unit turns may be resolved; a unit relocated by an earlier
// unit's push is not granted an extra action.
func (b *Board) OrderedUnits() []*Unit {
	var units []*Unit
	for x := 0; x < b.width; x++ {
		for z := 0; z < b.height; z++ {
			if c := b.cells[x*b.height+z]; c.Kind == AttackerContent {
				units = append(units, c.Occupant)
			}
		}
	}
	return units
}

// BesiegingUnits returns the attackers standing immediately north of the
// wall that have not yet fought this cycle. It drives combat, not movement.
func (b *Board) BesiegingUnits() []*Unit {
	var units []*Unit
	z := b.wallRow + 1
	for x := 0; x < b.width; x++ {
		c := b.cells[x*b.height+z]
		if c.Kind == AttackerContent && !c.Occupant.FoughtThisTurn {
			units = append(units, c.Occupant)
		}
	}
	return units
}

// FirstOpenRow scans a column from the southmost row northward and returns
// the first row whose cell is empty or defender-occupied, or -1 if the whole
// column is attacker-held.
func (b *Board) FirstOpenRow(x int) int {
	if !b.ValidColumn(x) {
		panic(fmt.Sprintf("column %d outside %d-column grid", x, b.width))
	}
	for z := 0; z < b.height; z++ {
		if k := b.cells[x*b.height+z].Kind; k == Empty || k == DefenderContent {
			return z
		}
	}
	return -1
}

// FirstEmptyRowWithin scans a column from row top southward down to row
// bottom and returns the first truly empty row, or -1. Unlike FirstOpenRow
// it does not treat defender cells as open.
func (b *Board) FirstEmptyRowWithin(x, top, bottom int) int {
	if !b.ValidCell(x, top) || !b.ValidCell(x, bottom) {
		panic(fmt.Sprintf("range (%d,%d..%d) outside %dx%d grid", x, top, bottom, b.width, b.height))
	}
	if top < bottom {
		panic(fmt.Sprintf("inverted scan range %d..%d", top, bottom))
	}
	for z := top; z >= bottom; z-- {
		if b.cells[x*b.height+z].Kind == Empty {
			return z
		}
	}
	return -1
}

// SpawnColumns reports the columns holding no attacker anywhere north of the
// wall. The spawn policy itself belongs to the caller.
func (b *Board) SpawnColumns() []int {
	var cols []int
	for x := 0; x < b.width; x++ {
		open := true
		for z := b.wallRow + 1; z < b.height; z++ {
			if b.cells[x*b.height+z].Kind == AttackerContent {
				open = false
				break
			}
		}
		if open {
			cols = append(cols, x)
		}
	}
	return cols
}

// AddUnit places u on an empty cell and registers it for column block and
// unblock signals for its lifetime on the board.
func (b *Board) AddUnit(u *Unit, x, z int, kind ContentKind) {
	if u == nil {
		panic("placing a nil unit")
	}
	if kind != AttackerContent && kind != DefenderContent {
		panic(fmt.Sprintf("unit content kind %d is not a unit", kind))
	}
	if b.ContentAt(x, z) != Empty {
		panic(fmt.Sprintf("cell (%d,%d) already occupied", x, z))
	}
	u.X, u.Z = x, z
	b.Place(u, x, z, kind)
	u.subID = b.bus.Subscribe(func(e Event) {
		switch ev := e.(type) {
		case ColumnBlocked:
			if ev.Column == u.X {
				u.Blocked = true
			}
		case ColumnUnblocked:
			if ev.Column == u.X {
				u.Blocked = false
			}
		}
	})
}

// RemoveUnit takes u off the board: the occupied cell is cleared before the
// subscription is released, so no handler ever sees a ghost occupant.
func (b *Board) RemoveUnit(u *Unit) {
	if b.OccupantAt(u.X, u.Z) != u {
		panic(fmt.Sprintf("unit at (%d,%d) does not match its cell", u.X, u.Z))
	}
	b.Clear(u.X, u.Z)
	b.bus.Unsubscribe(u.subID)
}

// MoveUnit relocates u one cell, clearing the source before writing the
// destination so cell content and unit position stay in agreement.
func (b *Board) MoveUnit(u *Unit, x, z int) {
	if b.OccupantAt(u.X, u.Z) != u {
		panic(fmt.Sprintf("unit at (%d,%d) does not match its cell", u.X, u.Z))
	}
	kind := b.ContentAt(u.X, u.Z)
	if !b.ValidCell(x, z) {
		panic(fmt.Sprintf("moving unit to invalid cell (%d,%d)", x, z))
	}
	b.Clear(u.X, u.Z)
	b.Place(u, x, z, kind)
	u.X, u.Z = x, z
}

// DamageUnit applies raw damage. Health is tested against zero without
// clamping, so transiently negative health is allowed. Defeat removes the
// unit from its cell first and then emits exactly one UnitDefeated.
func (b *Board) DamageUnit(u *Unit, amount int) {
	u.Health -= amount
	if u.Health <= 0 {
		b.RemoveUnit(u)
		b.bus.Publish(UnitDefeated{Unit: u})
	}
}

// FailToDamage fires the feedback hook for an attack that bounced off.
// Pure notification, no state change.
func (b *Board) FailToDamage(u *Unit) {
	if b.failHook != nil {
		b.failHook(u)
	}
}

// SetFailToDamageHook installs the observer invoked by FailToDamage.
func (b *Board) SetFailToDamageHook(fn func(*Unit)) {
	b.failHook = fn
}
