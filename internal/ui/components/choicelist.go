package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// ChoiceList is a selector over question options. In single mode enter picks
// the option under the cursor; in multi mode space toggles and any number of
// options can be checked before submission.
type ChoiceList struct {
	Options   []question.Option
	Multi     bool
	Cursor    int
	Checked   map[string]bool
	Submitted bool

	correctIDs map[string]bool
}

// NewChoiceList creates a choice list. correctIDs is consulted only after
// Submit, to color the reveal.
func NewChoiceList(options []question.Option, multi bool, correctIDs []string) ChoiceList {
	correct := make(map[string]bool, len(correctIDs))
	for _, id := range correctIDs {
		correct[id] = true
	}
	return ChoiceList{
		Options:    options,
		Multi:      multi,
		Checked:    make(map[string]bool),
		correctIDs: correct,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.Multi {
			id := c.Options[c.Cursor].ID
			c.Checked[id] = !c.Checked[id]
		}
	}

	return c, nil
}

// Select marks the option under the cursor as the single choice.
func (c *ChoiceList) Select() {
	if c.Multi || c.Cursor >= len(c.Options) {
		return
	}
	c.Checked = map[string]bool{c.Options[c.Cursor].ID: true}
}

// SelectedIDs returns the ids of all checked options in option order.
func (c ChoiceList) SelectedIDs() []string {
	ids := make([]string, 0, len(c.Checked))
	for _, opt := range c.Options {
		if c.Checked[opt.ID] {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Submit locks the list and enables the correctness reveal.
func (c *ChoiceList) Submit() {
	c.Submitted = true
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var s string

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor && !c.Submitted {
			prefix = "▸ "
		}

		marker := ""
		if c.Multi {
			if c.Checked[opt.ID] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s", prefix, marker, opt.Text)

		if c.Submitted {
			switch {
			case c.correctIDs[opt.ID]:
				s += theme.Correct.Render(line) + "\n"
			case c.Checked[opt.ID]:
				s += theme.Wrong.Render(line) + "\n"
			default:
				s += theme.Hint.Render(line) + "\n"
			}
		} else {
			if i == c.Cursor || c.Checked[opt.ID] {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}
