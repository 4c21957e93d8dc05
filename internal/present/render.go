package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"anilookup/pkg/models"
)

// Output formats understood by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("14"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
)

// Render writes card to w in the given format.
func Render(w io.Writer, card models.Card, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		_, err := fmt.Fprintln(w, Text(card, 80))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(card)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(card)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Text renders card as a bordered terminal block no wider than width.
func Text(card models.Card, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	body := lipgloss.NewStyle().Width(inner).Render(card.Body)

	parts := []string{
		headingStyle.Render(card.Heading()),
		linkStyle.Render(card.URL),
		"",
		body,
	}
	if card.Thumbnail != "" {
		parts = append(parts, "", "thumbnail: "+card.Thumbnail)
	}
	parts = append(parts, "", footerStyle.Render(card.Footer))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
