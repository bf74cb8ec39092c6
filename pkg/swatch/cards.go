package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/realh/colourconv/pkg/colour"
)

// Card is one notation of a colour.
type Card struct {
	Kind colour.FormatKind
	Text string
}

// Cards formats v once for each kind.
func Cards(v colour.Value, kinds []colour.FormatKind) []Card {
	cards := make([]Card, len(kinds))
	for i, k := range kinds {
		cards[i] = Card{k, colour.Format(v, k)}
	}
	return cards
}

// Plain lays cards out as "kind: text" lines.
func Plain(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.Kind.String())
		b.WriteString(": ")
		b.WriteString(c.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render draws a patch of v followed by the cards, each card labelled with
// its kind.
func Render(v colour.Value, cards []Card) string {
	bg := v.WithAlpha(1)
	patch := lipgloss.NewStyle().
		Background(lipgloss.Color(colour.Format(bg, colour.KindHex))).
		Foreground(lipgloss.Color(colour.Format(TextColour(bg), colour.KindHex))).
		Padding(1, 2).
		Render(colour.Format(v, colour.KindHex))

	width := 0
	for _, c := range cards {
		width = max(width, len(c.Kind.String()))
	}
	label := lipgloss.NewStyle().Bold(true).Width(width + 1)
	value := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	rows := make([]string, len(cards))
	for i, c := range cards {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render(strings.ToUpper(c.Kind.String())), value.Render(c.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		patch, lipgloss.JoinVertical(lipgloss.Left, rows...))
}
