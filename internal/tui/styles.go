package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#5B8DEF")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
	colorOK     = lipgloss.Color("#10B981")
	colorError  = lipgloss.Color("#EF4444")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	FocusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOK).
			Padding(0, 2).
			MarginTop(1)

	ErrorBoxStyle = ResultBoxStyle.
			BorderForeground(colorError)

	BedtimeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOK)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)
