package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvtrace/trace"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	snapshotStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	kindStyles = map[trace.Kind]lipgloss.Style{
		trace.KindStart:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		trace.KindDescend:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		trace.KindAccept:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		trace.KindReject:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		trace.KindAscend:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		trace.KindExpand:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		trace.KindContract: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		trace.KindUpdate:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		trace.KindTerminal: lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
	}
)

// styleForKind returns the style used to render steps of kind k.
func styleForKind(k trace.Kind) lipgloss.Style {
	if s, ok := kindStyles[k]; ok {
		return s
	}

	return dimStyle
}
