package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/kinsolve/internal/kinematics"
	"github.com/san-kum/kinsolve/internal/viz"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	derivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	selStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("183"))
	editStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("220"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
)

var polarRows = []struct {
	label string
	unit  string
}{
	{"Vi", "m/s"},
	{"Ang", "deg"},
	{"Vf", "m/s"},
}

func (m Model) View() string {
	if m.mode == modeGraph {
		return m.viewGraph()
	}
	return m.viewTable()
}

func (m Model) viewTable() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("PROJECTILE MOTION") + "  " +
		subStyle.Render("kinematics deduction") + "\n\n")

	b.WriteString("        " + labelStyle.Render(fmt.Sprintf("%10s %10s", "X", "Y")) + "\n")
	for r := kinematics.Role(0); r < kinematics.NumRoles; r++ {
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-4s", r.String())),
			m.cell(m.snap.X[r], int(r), 0),
			m.cell(m.snap.Y[r], int(r), 1),
		))
	}

	b.WriteString("\n")
	polar := []kinematics.VarView{m.snap.LaunchSpeed, m.snap.LaunchAngle, m.snap.FinalSpeed}
	for i, rowDef := range polarRows {
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-4s", rowDef.label)),
			m.cell(polar[i], gridRows+i, m.col),
			subStyle.Render(rowDef.unit),
		))
	}

	b.WriteString("\n" + m.derivedLine())
	if eq := m.attributionLine(); eq != "" {
		b.WriteString("\n" + eq)
	}

	b.WriteString("\n\n  " +
		keyStyle.Render("hjkl") + helpStyle.Render(" move  ") +
		keyStyle.Render("enter") + helpStyle.Render(" edit  ") +
		keyStyle.Render("x") + helpStyle.Render(" clear  ") +
		keyStyle.Render("g") + helpStyle.Render(" graph  ") +
		keyStyle.Render("r") + helpStyle.Render(" reset  ") +
		keyStyle.Render("q") + helpStyle.Render(" quit") + "\n")
	return b.String()
}

// cell renders one value slot: bright for user entries, dim cyan for
// derived values, "?" for unknowns, with the cursor highlighted.
func (m Model) cell(v kinematics.VarView, row, col int) string {
	selected := row == m.row && (row >= gridRows || col == m.col)

	if selected && m.editing {
		return editStyle.Render(fmt.Sprintf("%10s", m.buf+"_"))
	}

	var text string
	var style lipgloss.Style
	switch {
	case !v.Known:
		text, style = "?", unknownStyle
	case v.UserSet:
		text, style = formatValue(v.Value), userStyle
	default:
		text, style = formatValue(v.Value), derivedStyle
	}
	if selected {
		style = selStyle
	}
	return style.Render(fmt.Sprintf("%10s", text))
}

func formatValue(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func (m Model) derivedLine() string {
	part := func(label string, d kinematics.DerivedView, unit string) string {
		if !d.Known {
			return subStyle.Render(label+": ") + unknownStyle.Render("?")
		}
		return subStyle.Render(label+": ") + derivedStyle.Render(formatValue(d.Value)+" "+unit)
	}
	return "  " + part("MaxH", m.snap.MaxHeight, "m") + "   " +
		part("ToF", m.snap.TimeOfFlight, "s") + "   " +
		part("Range", m.snap.Range, "m")
}

// attributionLine names the rule that produced the selected cell.
func (m Model) attributionLine() string {
	if m.row >= gridRows {
		return ""
	}
	var view kinematics.VarView
	if m.col == 0 {
		view = m.snap.X[m.row]
	} else {
		view = m.snap.Y[m.row]
	}
	if view.Rule == "" {
		return ""
	}
	return "  " + subStyle.Render("eq: ") + labelStyle.Render(view.Rule)
}

func (m Model) viewGraph() string {
	pts, ok := m.eng.SampleTrajectory(60)
	if !ok {
		return "\n  " + titleStyle.Render("TRAJECTORY") + "\n\n" +
			subStyle.Render("  not enough known values to plot (need v0x, v0y and t)") +
			"\n\n  " + helpStyle.Render("any key to return") + "\n"
	}

	w := m.width - 16
	if w < 20 {
		w = 20
	} else if w > 90 {
		w = 90
	}
	h := m.height - 10
	if h < 8 {
		h = 8
	} else if h > 28 {
		h = 28
	}

	return "\n  " + titleStyle.Render("TRAJECTORY") + "\n\n" +
		viz.Trajectory(pts, w, h) + "\n" +
		m.derivedLine() + "\n\n  " + helpStyle.Render("any key to return") + "\n"
}
