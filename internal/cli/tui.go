package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
)

const barWidth = 24

func newTUICmd(root *rootOptions) *cobra.Command {
	var running bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Show the cascade in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := root.scene()
			if err != nil {
				return err
			}
			net, err := cascade.Build(sc)
			if err != nil {
				return err
			}
			m := NewCascadeModel(sc.Title, cascade.NewController(net, sc.TickInterval()))
			if running {
				m.ctrl.Toggle()
			}
			loggerFromContext(cmd.Context()).Debug("starting terminal view", "tanks", len(net.Tanks()))
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&running, "running", false, "start with the timer running")
	return cmd
}

// tickMsg is the timer firing. gen ties it to the run it was scheduled
// for, so a stop/start pair does not leave two timers going.
type tickMsg struct {
	gen int
}

// CascadeModel is the bubbletea model for the terminal view.
type CascadeModel struct {
	title string
	ctrl  *cascade.Controller
	gen   int
}

func NewCascadeModel(title string, ctrl *cascade.Controller) CascadeModel {
	return CascadeModel{title: title, ctrl: ctrl}
}

func (m CascadeModel) Init() tea.Cmd {
	if m.ctrl.Running() {
		return m.schedule()
	}
	return nil
}

func (m CascadeModel) schedule() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m CascadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "enter":
			m.gen++
			if m.ctrl.Toggle() == cascade.Running {
				return m, m.schedule()
			}
		}
	case tickMsg:
		if msg.gen != m.gen || !m.ctrl.Running() {
			return m, nil
		}
		m.ctrl.Tick()
		return m, m.schedule()
	}
	return m, nil
}

func (m CascadeModel) View() string {
	net := m.ctrl.Network()
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(net.Tanks()))
	for _, t := range net.Tanks() {
		cards = append(cards, styleTank.Render(tankCard(t)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	for _, e := range net.Edges() {
		b.WriteString(pipeLine(net, e))
		b.WriteString("\n")
	}

	state := "stopped"
	if m.ctrl.Running() {
		state = "running"
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("%s %s · space start/stop · q quit", state, m.ctrl.Elapsed().Round(10*time.Millisecond))))
	return b.String()
}

func tankCard(t *cascade.Tank) string {
	filled := int(t.Level()*barWidth + 0.5)
	bar := styleLiquid.Render(strings.Repeat("█", filled)) + styleDim.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s\n%s\n%s", styleValue.Render(t.Name), bar,
		styleDim.Render(fmt.Sprintf("%6.2f / %.0f", t.Quantity(), t.Capacity())))
}

func pipeLine(net *cascade.Network, e cascade.Edge) string {
	p := net.Pipe(e.Pipe)
	flow := styleDim.Render(strings.Repeat("─", 8))
	if p.Flowing() {
		style := styleLiquid
		if p.Heated() {
			style = styleHeated
		}
		flow = style.Render(strings.Repeat("═", 8))
	}
	heater := ""
	if p.Heated() {
		heater = styleHeated.Render(" ◎")
	}
	return fmt.Sprintf("%s %s▶ %s%s", net.Tank(e.From).Name, flow, net.Tank(e.To).Name, heater)
}
