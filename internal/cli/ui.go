package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorBlue   = lipgloss.Color("75")  // Light blue - liquid
	colorOrange = lipgloss.Color("208") // Orange - heated liquid
	colorGreen  = lipgloss.Color("35")  // Green - tank outlines
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleLiquid = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeated = lipgloss.NewStyle().Foreground(colorOrange)
	styleTank   = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 1)
)
