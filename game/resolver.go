package game

import "fmt"

// Resolver computes and applies one attacker's turn against the board. It
// keeps no state between units; the board and momentum source are passed in
// explicitly so turns are testable without a host runtime.
//
// Per unit the turn runs spawn guard, blocked check, lure check, forward
// block check, then the step-limited southward advance. Whatever stops the
// unit, a turn always resolves: an empty relocation chain is a completed
// turn, not a failure.
type Resolver struct {
	board    *Board
	momentum MomentumSource
}

// NewResolver wires a resolver to its board. A nil momentum source means no
// global speed bonus.
func NewResolver(board *Board, momentum MomentumSource) *Resolver {
	if board == nil {
		panic("resolver needs a board")
	}
	return &Resolver{board: board, momentum: momentum}
}

// PrepareToMove runs the pre-movement guards and reports whether the unit
// may act this turn. A freshly spawned unit burns its SpawnedThisTurn flag
// here and sits the turn out.
func (r *Resolver) PrepareToMove(u *Unit) bool {
	if u.SpawnedThisTurn {
		u.SpawnedThisTurn = false
		return false
	}
	return !u.Blocked
}

// TryMove resolves one unit's full movement turn and returns the applied
// relocations in order. Entries are chained: each may only play back after
// the previous one.
func (r *Resolver) TryMove(u *Unit) []Relocation {
	if r.board.OccupantAt(u.X, u.Z) != u {
		panic(fmt.Sprintf("unit at (%d,%d) out of sync with its cell", u.X, u.Z))
	}
	if !r.PrepareToMove(u) {
		return nil
	}

	// Lateral luring, west before east. The tie-break is fixed, not
	// incidental.
	if r.board.IsLure(u.X-1, u.Z) {
		if rel, ok := r.stepLateral(u, u.X-1); ok {
			return []Relocation{rel}
		}
	}
	if r.board.IsLure(u.X+1, u.Z) {
		if rel, ok := r.stepLateral(u, u.X+1); ok {
			return []Relocation{rel}
		}
	}

	// A block flag immediately south halts the advance outright. The only
	// escape is a single lateral step, west first; the unit may not vault
	// the blocked cell by moving further.
	if r.board.ValidRow(u.Z-1) && r.board.IsBlocked(u.X, u.Z-1) {
		r.board.Events().Publish(MovementBlocked{Unit: u})
		for _, x := range [2]int{u.X - 1, u.X + 1} {
			if rel, ok := r.stepLateral(u, x); ok {
				return []Relocation{rel}
			}
		}
		return nil
	}

	return r.advance(u)
}

// CurrentSpeed is the unit's base speed plus the global momentum bonus plus
// one point per cardinally adjacent fast attacker.
func (r *Resolver) CurrentSpeed(u *Unit) int {
	speed := u.Speed
	if r.momentum != nil {
		speed += r.momentum.Momentum()
	}
	neighbors := [4]Coord{
		{u.X, u.Z + 1},
		{u.X, u.Z - 1},
		{u.X - 1, u.Z},
		{u.X + 1, u.Z},
	}
	for _, n := range neighbors {
		if !r.board.ValidCell(n.X, n.Z) {
			continue
		}
		if r.board.ContentAt(n.X, n.Z) == AttackerContent && r.board.OccupantAt(n.X, n.Z).Fast {
			speed++
		}
	}
	return speed
}

// stepLateral tries a one-step sideways move. It succeeds only into an empty
// on-grid cell.
func (r *Resolver) stepLateral(u *Unit, x int) (Relocation, bool) {
	if !r.board.ValidCell(x, u.Z) || r.board.ContentAt(x, u.Z) != Empty {
		return Relocation{}, false
	}
	from := Coord{u.X, u.Z}
	r.board.MoveUnit(u, x, u.Z)
	return Relocation{Kind: UnitStep, Unit: u, From: from, To: Coord{u.X, u.Z}, Speed: u.Speed}, true
}

// advance consumes the speed budget one southward step at a time. Any stop
// condition forfeits the remaining steps; partial movement is valid and
// final.
func (r *Resolver) advance(u *Unit) []Relocation {
	var chain []Relocation
	for steps := r.CurrentSpeed(u); steps > 0; steps-- {
		next := u.Z - 1
		if next < 0 {
			break
		}
		// The wall row is only passable once its durability is gone; the
		// unit stops before entering it, never on top of it.
		if next == r.board.wallRow && r.board.Wall.Durability(u.X) > 0 {
			break
		}
		if r.board.IsBlocked(u.X, next) {
			break
		}
		switch r.board.ContentAt(u.X, next) {
		case AttackerContent:
			return chain
		case DefenderContent:
			// The defender lands two rows south of the attacker, which
			// must be an empty on-grid cell; otherwise the advance ends
			// here. The attacker follows into the vacated cell, adjacent
			// north of the defender.
			dest := u.Z - 2
			if dest < 0 || r.board.ContentAt(u.X, dest) != Empty {
				return chain
			}
			defender := r.board.OccupantAt(u.X, next)
			r.board.MoveUnit(defender, u.X, dest)
			chain = append(chain, Relocation{
				Kind:  DefenderPush,
				Unit:  defender,
				From:  Coord{u.X, next},
				To:    Coord{u.X, dest},
				Speed: u.Speed,
			})
			chain = append(chain, r.stepSouth(u)...)
		case Empty:
			chain = append(chain, r.stepSouth(u)...)
		}
	}
	return chain
}

// stepSouth advances u one row and kicks along any tankard left in the
// vacated cell: one row south, unless that cell already holds one or the
// grid runs out.
func (r *Resolver) stepSouth(u *Unit) []Relocation {
	from := Coord{u.X, u.Z}
	r.board.MoveUnit(u, u.X, u.Z-1)
	chain := []Relocation{{Kind: UnitStep, Unit: u, From: from, To: Coord{u.X, u.Z}, Speed: u.Speed}}

	tankardTo := from.Z - 1
	if r.board.HasTankard(from.X, from.Z) && tankardTo >= 0 && !r.board.HasTankard(from.X, tankardTo) {
		r.board.SetTankard(from.X, from.Z, false)
		r.board.SetTankard(from.X, tankardTo, true)
		chain = append(chain, Relocation{
			Kind:  TankardPush,
			From:  from,
			To:    Coord{from.X, tankardTo},
			Speed: u.Speed,
		})
	}
	return chain
}
