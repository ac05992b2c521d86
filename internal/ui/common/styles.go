// Package common provides shared styles for the terminal front ends.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/euchre/internal/game/card"
)

// Lipgloss styles shared by the line prompt and the TUI.
var (
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// CardStyle picks the face style for c's colour.
func CardStyle(c card.Card) lipgloss.Style {
	if c.Suit.IsRed() {
		return RedStyle
	}
	return BlackStyle
}

// RenderCard draws a card face like "A♠".
func RenderCard(c card.Card) string {
	return CardStyle(c).Render(c.Rank.String() + c.Suit.Symbol())
}
