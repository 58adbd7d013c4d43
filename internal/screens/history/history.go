package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ifedorova/langdrill/internal/router"
	"github.com/ifedorova/langdrill/internal/screen"
	"github.com/ifedorova/langdrill/internal/store"
	"github.com/ifedorova/langdrill/internal/ui/layout"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen displays past sessions with expandable answer details.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	answers   map[string][]store.AnswerRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.sessions) {
				s.expanded[s.selected] = !s.expanded[s.selected]
				if s.expanded[s.selected] {
					return s, s.loadAnswers(s.sessions[s.selected].SessionID)
				}
			}
		}
	}

	return s, nil
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	if _, ok := s.answers[sessionID]; ok {
		return nil
	}
	return func() tea.Msg {
		answers, err := s.eventRepo.QueryAnswers(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\nCould not load history: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nLoading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo sessions yet. Start a drill!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		status := "unfinished"
		accuracy := ""
		if rec.Finished {
			status = formatDuration(rec.DurationSecs)
			if rec.QuestionsAnswered > 0 {
				accuracy = fmt.Sprintf("  %.0f%%",
					float64(rec.CorrectAnswers)/float64(rec.QuestionsAnswered)*100)
			}
		}

		line := fmt.Sprintf("%s%s   %d/%d correct   %s%s",
			prefix,
			rec.StartedAt.Format("2006-01-02 15:04"),
			rec.CorrectAnswers, rec.QuestionsAnswered,
			status, accuracy)

		if i == s.selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(rec.SessionID, width))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	if !ok {
		return theme.Hint.Render("      loading...") + "\n"
	}
	if len(answers) == 0 {
		return theme.Hint.Render("      no answers recorded") + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Wrong.Render("✗")
		}
		prompt := a.Prompt
		if len(prompt) > 48 {
			prompt = prompt[:45] + "..."
		}
		b.WriteString(fmt.Sprintf("      %s %-14s %s\n", mark, a.Variant, prompt))
	}
	return b.String()
}

func formatDuration(secs int) string {
	d := time.Duration(secs) * time.Second
	mins := int(d.Minutes())
	return fmt.Sprintf("%d:%02d", mins, secs%60)
}
