package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/pkg/chart"
)

// Tab styles
var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 2)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 2)
	tabHelpStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// chartTabs are the viewer's sections, in display order.
var chartTabs = []string{"Varga", "Nakshatras", "Panchanga", "Aspects"}

// ChartModel is the bubbletea model for the interactive chart viewer.
type ChartModel struct {
	Chart  *chart.Chart
	Tab    int
	Width  int
	Height int
}

// NewChartModel creates a chart viewer starting on the varga tab.
func NewChartModel(c *chart.Chart) ChartModel {
	return ChartModel{Chart: c}
}

func (m ChartModel) Init() tea.Cmd {
	return nil
}

func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "tab":
			m.Tab = (m.Tab + 1) % len(chartTabs)
		case "left", "h", "shift+tab":
			m.Tab = (m.Tab + len(chartTabs) - 1) % len(chartTabs)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m ChartModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Jyotish Chart"))
	b.WriteString("\n")
	b.WriteString(tabHelpStyle.Render("←/→ switch tab  q quit"))
	b.WriteString("\n\n")

	var tabs []string
	for i, name := range chartTabs {
		if i == m.Tab {
			tabs = append(tabs, tabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch m.Tab {
	case 0:
		b.WriteString(renderVargaTable(m.Chart.Varga))
	case 1:
		b.WriteString(renderNakshatraTable(m.Chart.Nakshatras))
	case 2:
		b.WriteString(renderPanchanga(m.Chart.Panchanga))
	case 3:
		b.WriteString(renderAspectTable(m.Chart.Aspects))
	}
	b.WriteString("\n")

	return b.String()
}

// tuiCommand creates the tui command: an interactive chart viewer.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [input.toml]",
		Short: "Browse a chart interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := chart.LoadInput(args[0])
			if err != nil {
				return err
			}
			result, err := chart.Compute(in)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewChartModel(result), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
