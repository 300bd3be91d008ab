package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorError  = colorRed
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Team bubbles on the overview grid
	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Foreground(colorText).
			Align(lipgloss.Center).
			Padding(0, 1)

	bubbleFocusStyle = bubbleStyle.
				BorderForeground(colorFocus).
				Foreground(colorFocus).
				Bold(true)

	bubbleLogoStyle = lipgloss.NewStyle().Foreground(colorMauve)

	// Team detail chrome
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)

	pickNumStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	pickMetaStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext1)
	statValueStyle = lipgloss.NewStyle().Foreground(colorTeal).Bold(true)

	disabledStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	searchStyle = lipgloss.NewStyle().Foreground(colorYellow)
)
