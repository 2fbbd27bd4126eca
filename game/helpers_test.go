package game

// Shared fixtures for the package tests: a standard 9x6 board with the wall
// on row 0 and ten durability per column.

func testBoard() *Board {
	wall := NewWall(9, 10, 3)
	return NewBoard(9, 6, 0, wall, NewBus())
}

func gruntStats() Stats {
	return Stats{Name: "grunt", Speed: 1, Health: 12, SiegeStrength: 2}
}

func runnerStats() Stats {
	return Stats{Name: "runner", Speed: 2, Health: 8, SiegeStrength: 1, Fast: true}
}

func guardStats() Stats {
	return Stats{Name: "guard", Speed: 1, Health: 15, Armor: 1}
}

func addAttacker(b *Board, x, z int, stats Stats) *Unit {
	u := &Unit{Stats: stats}
	b.AddUnit(u, x, z, AttackerContent)
	return u
}

func addDefender(b *Board, x, z int) *Unit {
	u := &Unit{Stats: guardStats()}
	b.AddUnit(u, x, z, DefenderContent)
	return u
}
