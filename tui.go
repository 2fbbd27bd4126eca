package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"rampart/engine"
	"rampart/game"
	"rampart/meta"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	eng   *engine.Local
	waves int
	done  bool
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}
		if m.waves > 0 && m.eng.Turn()%meta.WAVE_INTERVAL == 0 {
			if err := m.eng.SpawnWave(demoWave); err == nil {
				m.waves--
			}
		}
		m.eng.Step()
		noAttackers := len(m.eng.Board.OrderedUnits()) == 0
		if m.eng.Turn() >= meta.MAX_TURNS || (m.waves == 0 && noAttackers) {
			m.done = true
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("turn %d  waves left %d\n\n", m.eng.Turn(), m.waves))
	sb.WriteString(renderBoard(m.eng.Board))
	if m.done {
		sb.WriteString("\nbattle over — press q to quit\n")
	} else {
		sb.WriteString("\npress q to quit\n")
	}
	return sb.String()
}

// renderBoard draws the grid north row first: a attacker, d defender,
// t tankard, # block, ~ lure, = intact wall.
func renderBoard(b *game.Board) string {
	var sb strings.Builder
	for z := b.Height() - 1; z >= 0; z-- {
		for x := 0; x < b.Width(); x++ {
			ch := "."
			switch b.ContentAt(x, z) {
			case game.AttackerContent:
				ch = "a"
			case game.DefenderContent:
				ch = "d"
			default:
				switch {
				case b.HasTankard(x, z):
					ch = "t"
				case b.IsBlocked(x, z):
					ch = "#"
				case b.IsLure(x, z):
					ch = "~"
				case z == b.WallRow() && b.Wall.Durability(x) > 0:
					ch = "="
				}
			}
			sb.WriteString(ch)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func runTUI(eng *engine.Local, waves int) {
	p := tea.NewProgram(model{eng: eng, waves: waves})
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal UI failed")
	}
}
