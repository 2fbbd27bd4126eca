package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rampart/config"
	"rampart/engine"
	"rampart/game"
	"rampart/meta"
)

// demoWave is the attacker mix spawned each wave of the demo battle.
var demoWave = []string{"grunt", "grunt", "brute", "runner"}

func main() {
	tui := flag.Bool("tui", false, "watch the battle in a terminal UI")
	seed := flag.Uint64("seed", 1, "spawn randomness seed")
	waves := flag.Int("waves", 3, "number of attacker waves")
	statsPath := flag.String("stats", "", "unit stat table YAML (built-in table if empty)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	stats := config.DefaultUnitStats()
	if *statsPath != "" {
		loaded, err := config.LoadUnitStats(*statsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("loading unit stats")
		}
		stats = loaded
	}

	eng := newDemoBattle(stats, *seed)
	if *tui {
		runTUI(eng, *waves)
		return
	}
	runHeadless(eng, *waves)
}

// newDemoBattle builds a battlefield with enough terrain and defenders to
// exercise the full rule set.
func newDemoBattle(stats *config.UnitStatsConfig, seed uint64) *engine.Local {
	bus := game.NewBus()
	wall := game.NewWall(meta.WIDTH, meta.WALL_DURABILITY, meta.WALL_STRENGTH)
	board := game.NewBoard(meta.WIDTH, meta.HEIGHT, meta.WALL_ROW, wall, bus)

	board.SetLure(2, 3, true)
	board.SetBlock(6, 2, true)
	board.SetTankard(4, 3, true)

	halberdier, err := stats.Stats("halberdier")
	if err != nil {
		log.Fatal().Err(err).Msg("stat table is missing the demo defender")
	}
	for _, x := range []int{1, 4, 7} {
		board.AddUnit(&game.Unit{Stats: halberdier}, x, 2, game.DefenderContent)
	}

	return engine.NewLocal(board, stats, &engine.ChainLog{}, seed)
}

func runHeadless(eng *engine.Local, waves int) {
	for i := 0; i < waves; i++ {
		if err := eng.SpawnWave(demoWave); err != nil {
			log.Fatal().Err(err).Msg("spawning wave")
		}
		log.Info().Int("wave", i+1).Msg("wave spawned")
		for t := 0; t < meta.WAVE_INTERVAL; t++ {
			eng.Step()
		}
	}
	eng.Run(meta.MAX_TURNS)
}
