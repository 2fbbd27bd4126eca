package game

// Coord addresses a grid cell.
type Coord struct {
	X, Z int
}

// RelocationKind tags what moved.
type RelocationKind int

const (
	// UnitStep is the acting unit moving one cell, laterally or south.
	UnitStep RelocationKind = iota
	// DefenderPush is a defender shoved out of the acting unit's path.
	DefenderPush
	// TankardPush is a tankard kicked one row south out of a vacated cell.
	TankardPush
)

// Relocation records one applied single-cell move for playback. The
// relocations from one unit's turn form a chain: each entry may only play
// after the previous one completes. Chains from different units are
// independent and may play concurrently.
type Relocation struct {
	Kind  RelocationKind
	Unit  *Unit // nil for tankard pushes
	From  Coord
	To    Coord
	Speed int // playback speed hint, the acting unit's base speed
}

// Sequencer accepts one unit's relocation chain per Submit. The rules engine
// never waits on playback.
type Sequencer interface {
	Submit(chain []Relocation)
}

// MomentumSource exposes the global additive speed bonus. It is read every
// speed calculation and externally mutated.
type MomentumSource interface {
	Momentum() int
}

// FixedMomentum is a constant MomentumSource, mostly for tests.
type FixedMomentum int

func (m FixedMomentum) Momentum() int { return int(m) }
