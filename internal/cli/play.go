package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubekit"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive TUI for turning the cube from the keyboard.

Keyboard shortcuts:
  l r u d f b   - clockwise quarter turn
  L R U D F B   - counter-clockwise quarter turn (prime)
  2             - arm a half turn for the next face key
  s             - scramble (25 random moves)
  z             - undo the last move
  x             - reset to solved
  q/Esc         - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	c, err := newCube()
	if err != nil {
		return err
	}

	m := &playModel{cube: c}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// playModel is the bubbletea model for the interactive session.
type playModel struct {
	cube     cubekit.Cube
	history  []cubekit.Move
	halfTurn bool // next face key applies a half turn
	quitting bool
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

// faceKeys maps a face key to its clockwise and prime moves.
var faceKeys = map[string][2]cubekit.Move{
	"l": {cubekit.L, cubekit.LPrime},
	"r": {cubekit.R, cubekit.RPrime},
	"u": {cubekit.U, cubekit.UPrime},
	"d": {cubekit.D, cubekit.DPrime},
	"f": {cubekit.F, cubekit.FPrime},
	"b": {cubekit.B, cubekit.BPrime},
}

// halfTurns maps a clockwise quarter turn to the matching half turn.
var halfTurns = map[cubekit.Move]cubekit.Move{
	cubekit.L: cubekit.L2, cubekit.R: cubekit.R2,
	cubekit.U: cubekit.U2, cubekit.D: cubekit.D2,
	cubekit.F: cubekit.F2, cubekit.B: cubekit.B2,
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s := key.String()
	switch s {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "2":
		m.halfTurn = !m.halfTurn
		return m, nil

	case "s":
		m.halfTurn = false
		moves := cubekit.Shuffle(m.cube, 25, nil)
		m.history = append(m.history, moves...)
		return m, nil

	case "z":
		m.halfTurn = false
		if n := len(m.history); n > 0 {
			m.cube.Invert(m.history[n-1])
			m.history = m.history[:n-1]
		}
		return m, nil

	case "x":
		m.halfTurn = false
		fresh, err := newCube()
		if err == nil {
			m.cube = fresh
			m.history = nil
		}
		return m, nil
	}

	if pair, found := faceKeys[s]; found {
		m.applyMove(pair[0])
		return m, nil
	}
	if lower := map[string]string{"L": "l", "R": "r", "U": "u", "D": "d", "F": "f", "B": "b"}[s]; lower != "" {
		m.applyMove(faceKeys[lower][1])
		return m, nil
	}

	return m, nil
}

func (m *playModel) applyMove(mv cubekit.Move) {
	if m.halfTurn {
		m.halfTurn = false
		if half, ok := halfTurns[mv]; ok {
			mv = half
		} else {
			// A prime with the half-turn modifier is still a half turn.
			mv = halfTurns[mv.Inverse()]
		}
	}
	m.cube.Move(mv)
	m.history = append(m.history, mv)
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	out := headerStyle.Render("cubekit play") + "\n\n"
	out += renderCube(m.cube) + "\n"
	out += fmt.Sprintf("State: %s   Moves: %d", solvedLabel(m.cube), len(m.history))
	if m.halfTurn {
		out += "   " + movesStyle.Render("[half turn armed]")
	}
	out += "\n"

	if n := len(m.history); n > 0 {
		tail := m.history
		if n > 16 {
			tail = m.history[n-16:]
		}
		out += movesStyle.Render(cubekit.FormatMoves(tail)) + "\n"
	}

	out += "\n" + dimStyle.Render("l r u d f b = turn, shift = prime, 2 = half, s = scramble, z = undo, x = reset, q = quit") + "\n"
	return out
}
