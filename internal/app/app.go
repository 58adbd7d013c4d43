package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/router"
	"github.com/ifedorova/langdrill/internal/screen"
	"github.com/ifedorova/langdrill/internal/screens/home"
	"github.com/ifedorova/langdrill/internal/store"
	"github.com/ifedorova/langdrill/internal/ui/layout"
)

// Options carries the wiring the TUI needs.
type Options struct {
	Questions []question.Question
	EventRepo store.EventRepo
	Logger    zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger zerolog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Questions, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PushScreenMsg:
		m.logger.Debug().Str("screen", msg.Screen.Title()).Msg("push screen")
	case router.ReplaceScreenMsg:
		m.logger.Debug().Str("screen", msg.Screen.Title()).Msg("replace screen")
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var correct, answered int
	if sp, ok := active.(screen.ScoreProvider); ok {
		correct, answered = sp.Score()
	}

	header := layout.RenderHeader(title, correct, answered, m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = khp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
			}
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
