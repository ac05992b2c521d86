// Package view renders a scoped game view for terminal players.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/euchre/internal/game"
	"github.com/palemoky/euchre/internal/game/action"
	"github.com/palemoky/euchre/internal/game/card"
	"github.com/palemoky/euchre/internal/ui/common"
)

// RenderState draws everything the acting seat may see.
func RenderState(s *game.ScopedState) string {
	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("Seat %d to act (%s)", s.CurrentActor, s.Phase))
	sb.WriteString(title)
	sb.WriteString("\n")

	top := lipgloss.JoinHorizontal(lipgloss.Top, renderTable(s), " ", renderTricks(s))
	sb.WriteString(top)
	sb.WriteString("\n")

	if len(s.Center) > 0 {
		sb.WriteString(renderCenter(s))
		sb.WriteString("\n")
	}

	sb.WriteString(renderHand(s.Hand))
	sb.WriteString("\n")
	sb.WriteString(RenderActions(s.LegalActions))
	return sb.String()
}

func renderTable(s *game.ScopedState) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Dealer: seat %d", s.Dealer))
	lines = append(lines, fmt.Sprintf("Flip:   %s (%s)", common.RenderCard(s.FlippedCard), s.FlippedChoice))

	trump := "undecided"
	if s.Trump != nil {
		trump = s.Trump.Symbol() + " " + s.Trump.String()
	}
	lines = append(lines, "Trump:  "+trump)
	if s.Caller != nil {
		lines = append(lines, fmt.Sprintf("Called: seat %d", *s.Caller))
	}
	if s.LedSuit != nil {
		lines = append(lines, "Led:    "+s.LedSuit.Symbol()+" "+s.LedSuit.String())
	}
	return common.BoxStyle.Render(strings.Join(lines, "\n"))
}

func renderTricks(s *game.ScopedState) string {
	var lines []string
	for seat, n := range s.Tricks {
		lines = append(lines, fmt.Sprintf("Seat %d: %d", seat, n))
	}
	return common.BoxStyle.Render("Tricks\n" + strings.Join(lines, "\n"))
}

func renderCenter(s *game.ScopedState) string {
	parts := make([]string, 0, len(s.Center))
	for i, c := range s.Center {
		seat := "?"
		if i < len(s.Order) {
			seat = fmt.Sprint(s.Order[i])
		}
		parts = append(parts, fmt.Sprintf("%s:%s", seat, common.RenderCard(c)))
	}
	return common.BoxStyle.Render("Center  " + strings.Join(parts, "  "))
}

func renderHand(hand []card.Card) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render("Hand: (empty)")
	}
	faces := make([]string, len(hand))
	for i, c := range hand {
		faces[i] = common.RenderCard(c)
	}
	return common.BoxStyle.Render("Hand  " + strings.Join(faces, " "))
}

// RenderActions lists the legal action names the player can type.
func RenderActions(acts []action.Action) string {
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return common.PromptStyle.Render("Actions: " + strings.Join(names, ", "))
}
