package engine

import "rampart/game"

// Engine drives a battle to completion.
type Engine interface {
	// Run steps the battle until no attackers remain or maxTurns is
	// reached.
	Run(maxTurns int) Outcome
}

// Outcome summarizes a finished battle.
type Outcome struct {
	Turns     int
	Breached  bool // any wall column at zero durability or below
	Survivors int  // attackers still on the board
	Defeated  int  // attackers removed by wall retaliation
}

// ChainLog is a Sequencer that records submitted relocation chains. The
// headless runner and the tests use it in place of an animation layer.
type ChainLog struct {
	Chains [][]game.Relocation
}

func (c *ChainLog) Submit(chain []game.Relocation) {
	c.Chains = append(c.Chains, chain)
}
