package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ifedorova/langdrill/internal/answer"
	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// MatchList pairs left items with right items. Enter on a left item starts a
// pick, enter on a right item completes it; backspace clears the pair under
// the cursor.
type MatchList struct {
	Left  []question.MatchItem
	Right []question.MatchItem

	pairs       map[string]string
	cursor      int
	pickingFrom string
	submitted   bool

	correct map[string]string
}

// NewMatchList creates a match list. correctPairs is consulted only after
// Submit, to color the reveal.
func NewMatchList(left, right []question.MatchItem, correctPairs []question.MatchPair) MatchList {
	correct := make(map[string]string, len(correctPairs))
	for _, p := range correctPairs {
		correct[p.LeftID] = p.RightID
	}
	return MatchList{
		Left:    left,
		Right:   right,
		pairs:   make(map[string]string),
		correct: correct,
	}
}

// Init returns nil.
func (m MatchList) Init() tea.Cmd {
	return nil
}

// Update handles navigation and pairing.
func (m MatchList) Update(msg tea.Msg) (MatchList, tea.Cmd) {
	if m.submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	limit := len(m.Left)
	if m.pickingFrom != "" {
		limit = len(m.Right)
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < limit-1 {
			m.cursor++
		}
	case "enter":
		if m.pickingFrom == "" {
			m.pickingFrom = m.Left[m.cursor].ID
			m.cursor = 0
		} else {
			m.pairs[m.pickingFrom] = m.Right[m.cursor].ID
			m.pickingFrom = ""
			m.cursor = 0
		}
	case "backspace":
		if m.pickingFrom != "" {
			m.pickingFrom = ""
			m.cursor = 0
		} else if m.cursor < len(m.Left) {
			delete(m.pairs, m.Left[m.cursor].ID)
		}
	}

	return m, nil
}

// Pairs returns the current left→right assignments.
func (m MatchList) Pairs() answer.MatchAnswers {
	out := make(answer.MatchAnswers, len(m.pairs))
	for k, v := range m.pairs {
		out[k] = v
	}
	return out
}

// Picking reports whether a left item is waiting for its right pick.
func (m MatchList) Picking() bool {
	return m.pickingFrom != ""
}

// Complete reports whether every left item has been paired.
func (m MatchList) Complete() bool {
	for _, item := range m.Left {
		if _, ok := m.pairs[item.ID]; !ok {
			return false
		}
	}
	return true
}

// Submit locks the list and enables the correctness reveal.
func (m *MatchList) Submit() {
	m.submitted = true
	m.pickingFrom = ""
}

// View renders the two columns with current pairings.
func (m MatchList) View() string {
	rightText := make(map[string]string, len(m.Right))
	for _, item := range m.Right {
		rightText[item.ID] = item.Text
	}

	var s string
	for i, item := range m.Left {
		prefix := "  "
		onLeft := m.pickingFrom == "" && !m.submitted
		if onLeft && i == m.cursor {
			prefix = "▸ "
		}

		line := prefix + item.Text
		if rightID, ok := m.pairs[item.ID]; ok {
			line += "  ·  " + rightText[rightID]
		} else {
			line += "  ·  ?"
		}

		switch {
		case m.submitted && m.pairs[item.ID] == m.correct[item.ID]:
			s += theme.Correct.Render(line) + "\n"
		case m.submitted:
			s += theme.Wrong.Render(line) + "\n"
		case item.ID == m.pickingFrom:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line) + "\n"
		case onLeft && i == m.cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	if m.pickingFrom != "" && !m.submitted {
		s += "\n" + theme.Hint.Render("Pick a match:") + "\n"
		for i, item := range m.Right {
			prefix := "  "
			if i == m.cursor {
				prefix = "▸ "
			}
			line := prefix + item.Text
			if i == m.cursor {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}
