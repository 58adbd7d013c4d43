package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/router"
	"github.com/ifedorova/langdrill/internal/screen"
	"github.com/ifedorova/langdrill/internal/screens/drill"
	"github.com/ifedorova/langdrill/internal/screens/history"
	"github.com/ifedorova/langdrill/internal/store"
	"github.com/ifedorova/langdrill/internal/ui/components"
	"github.com/ifedorova/langdrill/internal/ui/layout"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	questions []question.Question
	eventRepo store.EventRepo
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. questions is the filtered catalog the next
// drill will run over; eventRepo may be nil when history is disabled.
func New(questions []question.Question, eventRepo store.EventRepo) *HomeScreen {
	s := &HomeScreen{
		questions: questions,
		eventRepo: eventRepo,
	}

	items := []components.MenuItem{
		{Label: "START DRILL", Disabled: len(questions) == 0, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(s.questions, s.eventRepo)}
			}
		}},
		{Label: "HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(s.eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	s.menu = components.NewMenu(items)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("L A N G D R I L L"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Practice your target language, one exercise at a time"))
	b.WriteString("\n\n")

	if len(s.questions) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d exercises loaded", len(s.questions))))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No exercises match the current filters"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}
