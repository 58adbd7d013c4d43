package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// WordBank builds a sentence by picking words from a bank. Space appends the
// word under the cursor, backspace returns the most recent pick to the bank.
type WordBank struct {
	words     []string
	used      []bool
	picked    []int
	cursor    int
	submitted bool
	valid     bool
}

// NewWordBank creates a word bank over the given words.
func NewWordBank(words []string) WordBank {
	return WordBank{
		words: words,
		used:  make([]bool, len(words)),
	}
}

// Init returns nil.
func (w WordBank) Init() tea.Cmd {
	return nil
}

// Update handles navigation, picking and unpicking.
func (w WordBank) Update(msg tea.Msg) (WordBank, tea.Cmd) {
	if w.submitted {
		return w, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		w.cursor = w.prevFree(w.cursor)
	case "right", "l", "down", "j", "tab":
		w.cursor = w.nextFree(w.cursor)
	case "space", " ":
		if w.cursor >= 0 && w.cursor < len(w.words) && !w.used[w.cursor] {
			w.used[w.cursor] = true
			w.picked = append(w.picked, w.cursor)
			w.cursor = w.nextFree(w.cursor)
		}
	case "backspace":
		if len(w.picked) > 0 {
			last := w.picked[len(w.picked)-1]
			w.picked = w.picked[:len(w.picked)-1]
			w.used[last] = false
			w.cursor = last
		}
	}

	return w, nil
}

func (w WordBank) nextFree(from int) int {
	for i := from + 1; i < len(w.words); i++ {
		if !w.used[i] {
			return i
		}
	}
	for i := 0; i < len(w.words); i++ {
		if !w.used[i] {
			return i
		}
	}
	return from
}

func (w WordBank) prevFree(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !w.used[i] {
			return i
		}
	}
	for i := len(w.words) - 1; i >= 0; i-- {
		if !w.used[i] {
			return i
		}
	}
	return from
}

// Sentence returns the picked words joined with single spaces.
func (w WordBank) Sentence() string {
	parts := make([]string, len(w.picked))
	for i, idx := range w.picked {
		parts[i] = w.words[idx]
	}
	return strings.Join(parts, " ")
}

// Complete reports whether every word has been used.
func (w WordBank) Complete() bool {
	return len(w.picked) == len(w.words)
}

// Submit locks the bank and records the result for the reveal.
func (w *WordBank) Submit(valid bool) {
	w.submitted = true
	w.valid = valid
}

// View renders the built sentence above the remaining bank.
func (w WordBank) View() string {
	sentence := w.Sentence()
	if sentence == "" {
		sentence = "…"
	}

	var sentenceLine string
	switch {
	case w.submitted && w.valid:
		sentenceLine = theme.Correct.Render(sentence)
	case w.submitted:
		sentenceLine = theme.Wrong.Render(sentence)
	default:
		sentenceLine = theme.Body.Bold(true).Render(sentence)
	}

	s := sentenceLine + "\n\n"

	if w.submitted {
		return s
	}

	var bank []string
	for i, word := range w.words {
		if w.used[i] {
			continue
		}
		if i == w.cursor {
			bank = append(bank, theme.Selected.Render("["+word+"]"))
		} else {
			bank = append(bank, theme.Unselected.Render(" "+word+" "))
		}
	}
	s += strings.Join(bank, " ") + "\n"

	return s
}
