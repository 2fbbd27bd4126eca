package game

// Stats is the per-type stat block for a unit, supplied as plain data by the
// caller (typically from the config tables).
type Stats struct {
	Name          string
	Speed         int // base steps per turn
	Health        int
	Armor         int
	AttackMod     int
	SiegeStrength int // damage to the wall per besieging action
	Fast          bool
}

// Unit is a mutable battlefield entity. Its position is authoritative only
// while mirrored by the board's cell occupancy; the resolver keeps the two
// in sync within each step.
type Unit struct {
	Stats
	X, Z int

	// SpawnedThisTurn makes a unit sit out the turn it entered the board.
	SpawnedThisTurn bool
	// Blocked is set and cleared by column block/unblock signals.
	Blocked bool
	// FoughtThisTurn marks a besieger that already took its siege action
	// this cycle; the orchestrator resets it at the start of the next one.
	FoughtThisTurn bool

	subID int // event bus registration, released on removal
}
