package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedUnitsIsColumnMajor(t *testing.T) {
	b := testBoard()

	// Deliberately added out of order.
	u52 := addAttacker(b, 5, 2, gruntStats())
	u21 := addAttacker(b, 2, 1, gruntStats())
	u24 := addAttacker(b, 2, 4, gruntStats())
	u03 := addAttacker(b, 0, 3, gruntStats())
	addDefender(b, 1, 2) // defenders never appear in turn order

	got := b.OrderedUnits()

	require.Equal(t, []*Unit{u03, u21, u24, u52}, got,
		"units should come back x ascending, then z ascending within a column")
}

func TestOrderedUnitsMatchesAttackerCount(t *testing.T) {
	b := testBoard()
	require.Empty(t, b.OrderedUnits(), "empty board should enumerate no units")

	for i := 0; i < 5; i++ {
		addAttacker(b, i, 3, gruntStats())
	}
	addDefender(b, 7, 2)

	require.Len(t, b.OrderedUnits(), 5, "length should equal the live attacker count")
}

func TestBesiegingUnits(t *testing.T) {
	b := testBoard() // wall row 0, besieging row 1

	ready := addAttacker(b, 1, 1, gruntStats())
	fought := addAttacker(b, 3, 1, gruntStats())
	fought.FoughtThisTurn = true
	addAttacker(b, 5, 2, gruntStats()) // one row too far north
	addDefender(b, 7, 1)

	got := b.BesiegingUnits()

	require.Equal(t, []*Unit{ready}, got,
		"only unfought attackers on the row north of the wall besiege")
}

func TestFirstOpenRow(t *testing.T) {
	b := testBoard()

	require.Equal(t, 0, b.FirstOpenRow(0), "an empty column opens at the southmost row")

	addDefender(b, 1, 0)
	require.Equal(t, 0, b.FirstOpenRow(1), "defender cells count as open (pushable)")

	addAttacker(b, 2, 0, gruntStats())
	addAttacker(b, 2, 1, gruntStats())
	require.Equal(t, 2, b.FirstOpenRow(2), "scan runs south to north past attackers")

	for z := 0; z < 6; z++ {
		addAttacker(b, 3, z, gruntStats())
	}
	require.Equal(t, -1, b.FirstOpenRow(3), "a fully attacker-held column has no open row")

	require.Panics(t, func() { b.FirstOpenRow(9) }, "invalid column is a programming error")
}

func TestFirstEmptyRowWithin(t *testing.T) {
	b := testBoard()

	require.Equal(t, 5, b.FirstEmptyRowWithin(0, 5, 1), "scan starts at the top row")

	addAttacker(b, 1, 5, gruntStats())
	addDefender(b, 1, 4)
	require.Equal(t, 3, b.FirstEmptyRowWithin(1, 5, 1),
		"defender cells are not empty for this scan, unlike FirstOpenRow")

	for z := 1; z <= 5; z++ {
		if b.ContentAt(2, z) == Empty {
			addAttacker(b, 2, z, gruntStats())
		}
	}
	require.Equal(t, -1, b.FirstEmptyRowWithin(2, 5, 1), "a full range reports -1")

	require.Panics(t, func() { b.FirstEmptyRowWithin(0, 1, 5) }, "inverted range is a programming error")
	require.Panics(t, func() { b.FirstEmptyRowWithin(0, 6, 1) }, "off-grid range is a programming error")
}

func TestSpawnColumns(t *testing.T) {
	b := testBoard()

	require.Len(t, b.SpawnColumns(), 9, "all columns open on an empty board")

	addAttacker(b, 4, 5, gruntStats())
	addDefender(b, 6, 3) // defenders do not close a spawn column

	got := b.SpawnColumns()
	require.Len(t, got, 8)
	require.NotContains(t, got, 4, "a column with an attacker north of the wall is closed")
	require.Contains(t, got, 6)
}

func TestAddUnitWiresColumnBlockSignals(t *testing.T) {
	b := testBoard()
	u := addAttacker(b, 3, 4, gruntStats())

	b.Events().Publish(ColumnBlocked{Column: 2})
	require.False(t, u.Blocked, "a signal for another column should not block the unit")

	b.Events().Publish(ColumnBlocked{Column: 3})
	require.True(t, u.Blocked)

	b.Events().Publish(ColumnUnblocked{Column: 3})
	require.False(t, u.Blocked, "the matching unblock signal clears the flag")
}

func TestRemoveUnitUnsubscribes(t *testing.T) {
	b := testBoard()
	u := addAttacker(b, 3, 4, gruntStats())

	b.RemoveUnit(u)
	require.Equal(t, Empty, b.ContentAt(3, 4), "removal clears the occupied cell first")

	b.Events().Publish(ColumnBlocked{Column: 3})
	require.False(t, u.Blocked, "a removed unit must not act on stale signals")
}

func TestAddUnitPanics(t *testing.T) {
	b := testBoard()
	addAttacker(b, 3, 4, gruntStats())

	require.Panics(t, func() { addAttacker(b, 3, 4, gruntStats()) }, "occupied destination")
	require.Panics(t, func() { b.AddUnit(nil, 0, 0, AttackerContent) }, "nil unit")
	require.Panics(t, func() { b.AddUnit(&Unit{}, 0, 0, Empty) }, "Empty is not a unit kind")
}

func TestMoveUnitKeepsCellAndPositionInSync(t *testing.T) {
	b := testBoard()
	u := addAttacker(b, 3, 4, gruntStats())

	b.MoveUnit(u, 3, 3)

	require.Equal(t, Empty, b.ContentAt(3, 4), "source cleared before destination written")
	require.Equal(t, AttackerContent, b.ContentAt(3, 3))
	require.Same(t, u, b.OccupantAt(3, 3))
	require.Equal(t, 3, u.Z)
}

func TestMoveUnitOutOfSyncPanics(t *testing.T) {
	b := testBoard()
	u := addAttacker(b, 3, 4, gruntStats())
	u.Z = 2 // desynced on purpose

	require.Panics(t, func() { b.MoveUnit(u, 3, 1) },
		"a cell/position mismatch is a consistency bug, not a legal state")
}

func TestDamageUnit(t *testing.T) {
	t.Run("survivable damage", func(t *testing.T) {
		b := testBoard()
		u := addAttacker(b, 3, 4, gruntStats())

		b.DamageUnit(u, 5)

		require.Equal(t, 7, u.Health)
		require.Same(t, u, b.OccupantAt(3, 4), "a surviving unit stays on the board")
	})

	t.Run("defeat removes the unit and notifies once", func(t *testing.T) {
		b := testBoard()
		u := addAttacker(b, 3, 4, gruntStats())

		var defeats []*Unit
		b.Events().Subscribe(func(e Event) {
			if ev, ok := e.(UnitDefeated); ok {
				defeats = append(defeats, ev.Unit)
			}
		})

		b.DamageUnit(u, 20)

		require.Equal(t, Empty, b.ContentAt(3, 4), "defeat clears the cell")
		require.Equal(t, []*Unit{u}, defeats, "exactly one defeat notification")
		require.Equal(t, -8, u.Health, "health is never clamped before the threshold test")
	})

	t.Run("exact zero is a defeat", func(t *testing.T) {
		b := testBoard()
		u := addAttacker(b, 3, 4, gruntStats())

		b.DamageUnit(u, u.Health)

		require.Equal(t, Empty, b.ContentAt(3, 4))
		require.Equal(t, 0, u.Health)
	})
}

func TestFailToDamageHook(t *testing.T) {
	b := testBoard()
	u := addAttacker(b, 3, 4, gruntStats())

	require.NotPanics(t, func() { b.FailToDamage(u) }, "no hook installed is fine")

	var got []*Unit
	b.SetFailToDamageHook(func(fu *Unit) { got = append(got, fu) })
	b.FailToDamage(u)

	require.Equal(t, []*Unit{u}, got)
	require.Equal(t, 12, u.Health, "pure feedback, no state change")
}

func TestNewBoardValidation(t *testing.T) {
	wall := NewWall(9, 10, 3)
	bus := NewBus()

	require.Panics(t, func() { NewBoard(9, 6, 0, nil, bus) }, "nil wall")
	require.Panics(t, func() { NewBoard(9, 6, 0, wall, nil) }, "nil bus")
	require.Panics(t, func() { NewBoard(9, 6, 5, wall, bus) }, "no room for a besieging row")
	require.Panics(t, func() { NewBoard(0, 6, 0, wall, bus) }, "degenerate grid")
}
