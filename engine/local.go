package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"rampart/config"
	"rampart/game"
)

// Local is the in-process turn orchestrator: per Step it runs one movement
// phase over the board's fixed unit order, then one siege phase over the
// besiegers. Phases never overlap, so the resolver is the sole writer during
// movement and the siege loop the sole writer during combat.
type Local struct {
	Board     *game.Board
	Resolver  *game.Resolver
	Sequencer game.Sequencer
	Stats     *config.UnitStatsConfig

	momentum int
	rng      *rand.Rand
	turn     int
	defeated int
}

// NewLocal wires an orchestrator to a board. The sequencer may be nil when
// nobody watches playback. The seed drives spawn-column picks only.
func NewLocal(board *game.Board, stats *config.UnitStatsConfig, seq game.Sequencer, seed uint64) *Local {
	if board == nil {
		panic("engine needs a board")
	}
	if stats == nil {
		panic("engine needs a unit stat table")
	}
	e := &Local{
		Board:     board,
		Stats:     stats,
		Sequencer: seq,
		rng:       rand.New(rand.NewSource(seed)),
	}
	e.Resolver = game.NewResolver(board, e)
	board.Events().Subscribe(func(ev game.Event) {
		switch ev := ev.(type) {
		case game.UnitDefeated:
			e.defeated++
			log.Info().Str("unit", ev.Unit.Name).Int("column", ev.Unit.X).Msg("attacker defeated")
		case game.MovementBlocked:
			log.Debug().Str("unit", ev.Unit.Name).Int("column", ev.Unit.X).Int("row", ev.Unit.Z).Msg("movement blocked")
		}
	})
	return e
}

// Momentum implements game.MomentumSource.
func (e *Local) Momentum() int { return e.momentum }

// SetMomentum adjusts the global speed bonus applied to every attacker.
func (e *Local) SetMomentum(m int) { e.momentum = m }

// Turn is the number of completed cycles.
func (e *Local) Turn() int { return e.turn }

// SpawnWave places one attacker per stat-table name, each in a column picked
// uniformly among those with no attacker north of the wall. A spawned unit
// sits out the cycle it entered.
func (e *Local) SpawnWave(names []string) error {
	for _, name := range names {
		stats, err := e.Stats.Stats(name)
		if err != nil {
			return err
		}
		cols := e.Board.SpawnColumns()
		if len(cols) == 0 {
			return fmt.Errorf("no open spawn columns for %q", name)
		}
		x := cols[e.rng.Intn(len(cols))]
		z := e.Board.FirstEmptyRowWithin(x, e.Board.Height()-1, e.Board.WallRow()+1)
		if z < 0 {
			return fmt.Errorf("column %d has no empty spawn row for %q", x, name)
		}
		u := &game.Unit{Stats: stats, SpawnedThisTurn: true}
		e.Board.AddUnit(u, x, z, game.AttackerContent)
		log.Debug().Str("unit", name).Int("column", x).Int("row", z).Msg("spawned attacker")
	}
	return nil
}

// Step runs one full movement-plus-siege cycle.
func (e *Local) Step() {
	e.turn++
	for _, u := range e.Board.OrderedUnits() {
		u.FoughtThisTurn = false
	}

	// Movement phase. Each unit acts exactly once, in board order; units
	// relocated by a push are not revisited this pass.
	for _, u := range e.Board.OrderedUnits() {
		chain := e.Resolver.TryMove(u)
		if len(chain) > 0 && e.Sequencer != nil {
			e.Sequencer.Submit(chain)
		}
	}

	// Siege phase. Each besieger batters its column's wall, then takes the
	// wall's retaliation.
	for _, u := range e.Board.BesiegingUnits() {
		x := u.X
		damage := u.SiegeStrength + u.AttackMod
		if damage > 0 {
			e.Board.Wall.ChangeDurability(x, -damage)
			log.Debug().Str("unit", u.Name).Int("column", x).Int("durability", e.Board.Wall.Durability(x)).Msg("wall damaged")
		} else {
			e.Board.Wall.OnNoDamage(x)
		}
		u.FoughtThisTurn = true

		retaliation := e.Board.Wall.Strength(x) - u.Armor
		if retaliation > 0 {
			e.Board.DamageUnit(u, retaliation)
		} else {
			e.Board.FailToDamage(u)
		}
	}
}

// Run steps until no attackers remain or maxTurns cycles have passed.
func (e *Local) Run(maxTurns int) Outcome {
	for e.turn < maxTurns && len(e.Board.OrderedUnits()) > 0 {
		e.Step()
	}
	breached := false
	for x := 0; x < e.Board.Width(); x++ {
		if e.Board.Wall.Durability(x) <= 0 {
			breached = true
			break
		}
	}
	out := Outcome{
		Turns:     e.turn,
		Breached:  breached,
		Survivors: len(e.Board.OrderedUnits()),
		Defeated:  e.defeated,
	}
	log.Info().Int("turns", out.Turns).Bool("breached", out.Breached).Int("survivors", out.Survivors).Int("defeated", out.Defeated).Msg("battle over")
	return out
}
