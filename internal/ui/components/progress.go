package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// ProgressBar shows how far through a question sequence the learner is.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar for done out of total steps.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// View renders the bar as a filled/empty track sized to Width.
func (p ProgressBar) View() string {
	barWidth := p.Width
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	track := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("━", filled))
	track += lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", barWidth-filled))

	return track
}
