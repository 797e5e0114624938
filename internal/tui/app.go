// Package tui implements the interactive variable-table editor.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/kinsolve/internal/kinematics"
)

// Grid layout: rows 0-6 are the per-axis variables with an X and Y
// column; rows 7-9 are the single-column polar inputs.
const (
	gridRows = kinematics.NumRoles

	rowLaunchSpeed = gridRows
	rowLaunchAngle = gridRows + 1
	rowFinalSpeed  = gridRows + 2
	totalRows      = gridRows + 3
)

const (
	modeTable = iota
	modeGraph
)

// Model is the bubbletea model for the editor. All deduction lives in
// the engine; the model only maps keys to engine edits.
type Model struct {
	eng  *kinematics.Engine
	snap kinematics.Snapshot

	row, col int
	mode     int

	editing bool
	buf     string

	width, height int
}

// NewModel returns an editor over a fresh engine.
func NewModel() Model {
	eng := kinematics.New()
	return Model{eng: eng, snap: eng.Snapshot(), width: 80, height: 24}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeGraph {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.mode = modeTable
		return m, nil
	}
	if m.editing {
		return m.editKey(msg)
	}
	return m.navKey(msg)
}

func (m Model) navKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.row = (m.row - 1 + totalRows) % totalRows
	case "down", "j":
		m.row = (m.row + 1) % totalRows
	case "left", "h", "right", "l":
		if m.row < gridRows {
			m.col = 1 - m.col
		}
	case "enter":
		m.editing, m.buf = true, ""
	case "backspace", "delete", "x":
		m.clearCell()
	case "r":
		m.eng.Reset()
		m.snap = m.eng.Snapshot()
	case "g":
		m.mode = modeGraph
	default:
		if len(key) == 1 && isInputRune(key[0]) {
			m.editing, m.buf = true, key
		}
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.commit()
		m.editing, m.buf = false, ""
	case "esc", "escape":
		m.editing, m.buf = false, ""
	case "backspace":
		if len(m.buf) > 0 {
			m.buf = m.buf[:len(m.buf)-1]
		}
	default:
		if len(key) == 1 && isInputRune(key[0]) && len(m.buf) < 12 {
			m.buf += key
		}
	}
	return m, nil
}

// commit parses the edit buffer and enters it into the engine. An
// unparseable buffer leaves the cell untouched.
func (m *Model) commit() {
	val, ok := ParseLenient(m.buf)
	if !ok {
		return
	}
	switch m.row {
	case rowLaunchSpeed:
		m.eng.SetLaunchSpeed(val)
	case rowLaunchAngle:
		m.eng.SetLaunchAngle(val)
	case rowFinalSpeed:
		m.eng.SetFinalSpeed(val)
	default:
		m.eng.SetValue(m.axis(), kinematics.Role(m.row), val)
	}
	m.snap = m.eng.Snapshot()
}

func (m *Model) clearCell() {
	switch m.row {
	case rowLaunchSpeed:
		m.eng.ClearLaunchSpeed()
	case rowLaunchAngle:
		m.eng.ClearLaunchAngle()
	case rowFinalSpeed:
		m.eng.ClearFinalSpeed()
	default:
		m.eng.ClearValue(m.axis(), kinematics.Role(m.row))
	}
	m.snap = m.eng.Snapshot()
}

func (m *Model) axis() kinematics.Axis {
	if m.col == 0 {
		return kinematics.AxisX
	}
	return kinematics.AxisY
}

// Run starts the interactive editor.
func Run() error {
	_, err := tea.NewProgram(NewModel(), tea.WithAltScreen()).Run()
	return err
}
