// Package ui holds the bubbletea view models for the interactive
// explorer front-end. The explorer is a render-surface collaborator:
// it drives the engine tick from a timer message, forwards key input
// as selection/speed events, and draws a top-down projection of the
// position registry plus the current camera pose.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ajayprakashk7/Solar-system-emulator/core"
	"github.com/Ajayprakashk7/Solar-system-emulator/registry"
	"github.com/Ajayprakashk7/Solar-system-emulator/timectrl"
)

// tickMsg drives one simulation tick.
type tickMsg time.Time

// target is one selectable row in the focus list.
type target struct {
	label    string
	bodyID   int
	moonName string // empty for top-level bodies
}

// ExplorerModel is the root bubbletea model.
type ExplorerModel struct {
	engine *core.Engine
	store  *registry.PositionRegistry
	speed  *timectrl.SpeedControl

	tick time.Duration

	width   int
	height  int
	targets []target
	focus   int
	pose    core.Pose
	status  string
}

// NewExplorer builds the root model around an engine and its registry.
func NewExplorer(engine *core.Engine, store *registry.PositionRegistry, speed *timectrl.SpeedControl, tick time.Duration) ExplorerModel {
	var targets []target
	for _, b := range engine.Bodies() {
		targets = append(targets, target{label: b.Name, bodyID: b.ID})
		for _, m := range b.Moons {
			targets = append(targets, target{label: "  " + m.Name, bodyID: b.ID, moonName: m.Name})
		}
	}
	return ExplorerModel{
		engine:  engine,
		store:   store,
		speed:   speed,
		tick:    tick,
		targets: targets,
	}
}

func (m ExplorerModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the tick loop.
func (m ExplorerModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles tick and key messages.
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.pose = m.engine.Tick(m.tick.Seconds())
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.focus < len(m.targets)-1 {
			m.focus++
		}
	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}

	case "enter":
		if m.focus >= 0 && m.focus < len(m.targets) {
			t := m.targets[m.focus]
			var err error
			if t.moonName == "" {
				err = m.engine.OnBodySelected(t.bodyID)
			} else {
				err = m.engine.OnMoonSelected(t.moonName, t.bodyID)
			}
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
		}

	case "esc":
		m.engine.OnDeselect()

	case "+", "=":
		m.engine.OnSetSpeed(m.speed.UserSpeed() + 0.25)
	case "-":
		v := m.speed.UserSpeed() - 0.25
		if v < 0 {
			v = 0
		}
		m.engine.OnSetSpeed(v)
	case "0":
		m.engine.OnSetSpeed(0)
	case "1":
		m.engine.OnSetSpeed(1)

	// Manual camera input; no-ops while the state machine has control.
	case "left":
		m.engine.Camera().Orbit(-0.1, 0)
	case "right":
		m.engine.Camera().Orbit(0.1, 0)
	case "pgup":
		m.engine.Camera().Dolly(0.9)
	case "pgdown":
		m.engine.Camera().Dolly(1.1)
	}
	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// View renders the map, the focus list, and the status bar.
func (m ExplorerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	listWidth := 18
	mapWidth := m.width - listWidth - 3
	mapHeight := m.height - 4
	if mapWidth < 20 || mapHeight < 10 {
		return "terminal too small"
	}

	mapView := m.renderMap(mapWidth, mapHeight)
	listView := m.renderList(mapHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " | ", listView)

	header := titleStyle.Render("solar system explorer")
	status := m.renderStatus()

	return header + "\n" + body + "\n" + status
}

// renderMap projects registry positions onto the terminal grid,
// top-down (x right, z down), centered on the origin.
func (m ExplorerModel) renderMap(w, h int) string {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Fit the widest orbit in view.
	maxR := 1.0
	for _, b := range m.engine.Bodies() {
		if b.OrbitRadius > maxR {
			maxR = b.OrbitRadius
		}
	}
	// Terminal cells are roughly twice as tall as wide.
	scaleX := float64(w-2) / (2 * maxR * 1.1)
	scaleY := float64(h-2) / (2 * maxR * 1.1) / 2

	plot := func(pos core.Vec3, ch rune) {
		col := w/2 + int(pos.X*scaleX)
		row := h/2 + int(pos.Z*scaleY*2)/2
		if row >= 0 && row < h && col >= 0 && col < w {
			grid[row][col] = ch
		}
	}

	focused := ""
	if m.focus >= 0 && m.focus < len(m.targets) {
		focused = strings.TrimSpace(m.targets[m.focus].label)
	}

	for _, b := range m.engine.Bodies() {
		pos, err := m.store.Get(b.Name)
		if err != nil {
			continue
		}
		ch := rune(b.Name[0])
		if b.IsStar {
			ch = '*'
		}
		if b.Name == focused {
			ch = '@'
		}
		plot(pos, ch)
	}

	lines := make([]string, h)
	for i := range grid {
		lines[i] = string(grid[i])
	}
	return bodyStyle.Render(strings.Join(lines, "\n"))
}

func (m ExplorerModel) renderList(h int) string {
	var sb strings.Builder
	for i, t := range m.targets {
		if i >= h {
			break
		}
		line := t.label
		if i == m.focus {
			sb.WriteString(focusStyle.Render("> " + line))
		} else if strings.HasPrefix(line, "  ") {
			sb.WriteString(statusStyle.Render("  " + line))
		} else {
			sb.WriteString(starStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m ExplorerModel) renderStatus() string {
	sel := m.engine.Selection().Current()
	selName := "none"
	switch sel.Kind {
	case core.SelectionPlanet:
		selName = sel.Body.Name
	case core.SelectionMoon:
		selName = sel.Moon.Name
	}

	line := fmt.Sprintf(
		" state=%s  sel=%s  speed=%.2f  cam=(%.1f, %.1f, %.1f)  [enter] focus  [esc] home  [+/-] speed  [q] quit",
		m.engine.Camera().State(),
		selName,
		m.speed.Current(),
		m.pose.Position.X, m.pose.Position.Y, m.pose.Position.Z,
	)
	if m.status != "" {
		return errStyle.Render(" " + m.status)
	}
	return statusStyle.Render(line)
}
