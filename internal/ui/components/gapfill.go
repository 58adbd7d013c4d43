package components

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"

	"github.com/ifedorova/langdrill/internal/answer"
	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// GapFillInput renders one text input per gap. Tab and shift+tab move focus
// between the inputs.
type GapFillInput struct {
	positions []int
	inputs    []TextInput
	focused   int
	submitted bool
}

// NewGapFillInput creates inputs for the given gaps, ordered by position.
func NewGapFillInput(gaps []question.Gap) GapFillInput {
	positions := make([]int, len(gaps))
	for i, g := range gaps {
		positions[i] = g.Position
	}
	sort.Ints(positions)

	inputs := make([]TextInput, len(positions))
	for i := range positions {
		inputs[i] = NewTextInput("answer", 64)
		if i != 0 {
			inputs[i].Model.Blur()
		}
	}

	return GapFillInput{
		positions: positions,
		inputs:    inputs,
	}
}

// Init focuses the first input.
func (g GapFillInput) Init() tea.Cmd {
	if len(g.inputs) == 0 {
		return nil
	}
	return g.inputs[0].Init()
}

// Update handles focus cycling and forwards everything else to the focused input.
func (g GapFillInput) Update(msg tea.Msg) (GapFillInput, tea.Cmd) {
	if g.submitted || len(g.inputs) == 0 {
		return g, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return g.focus((g.focused + 1) % len(g.inputs))
		case "shift+tab", "up":
			return g.focus((g.focused - 1 + len(g.inputs)) % len(g.inputs))
		}
	}

	var cmd tea.Cmd
	g.inputs[g.focused], cmd = g.inputs[g.focused].Update(msg)
	return g, cmd
}

func (g GapFillInput) focus(i int) (GapFillInput, tea.Cmd) {
	g.inputs[g.focused].Model.Blur()
	g.focused = i
	return g, g.inputs[g.focused].Model.Focus()
}

// Answers returns the current values keyed by gap position.
func (g GapFillInput) Answers() answer.GapAnswers {
	out := make(answer.GapAnswers, len(g.inputs))
	for i, pos := range g.positions {
		out[pos] = g.inputs[i].Value()
	}
	return out
}

// Submit locks all inputs and marks each with its per-gap result.
func (g *GapFillInput) Submit(results map[int]bool) {
	g.submitted = true
	for i, pos := range g.positions {
		g.inputs[i].Model.Blur()
		g.inputs[i].Submit(results[pos])
	}
}

// View renders one labeled input line per gap.
func (g GapFillInput) View() string {
	var s string
	for i, pos := range g.positions {
		label := theme.Hint.Render(fmt.Sprintf("Gap %d:", pos+1))
		s += label + " " + g.inputs[i].View() + "\n"
	}
	return s
}
