package drill

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/router"
	"github.com/ifedorova/langdrill/internal/screen"
	"github.com/ifedorova/langdrill/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) QueryAnswers(_ context.Context, _ string) ([]store.AnswerRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) VariantStats(_ context.Context) ([]store.VariantStat, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func translateQuestion() question.Question {
	return question.Question{
		ID:              "q_translate",
		Variant:         question.VariantTranslate,
		Prompt:          "Translate into English",
		DifficultyLevel: 1,
		Hint:            "present simple",
		Translate: &question.Translation{
			SourceText:         "Я учу английский",
			CorrectTranslation: "I am learning English",
		},
	}
}

func choiceQuestion() question.Question {
	return question.Question{
		ID:              "q_choice",
		Variant:         question.VariantChoiceOne,
		Prompt:          "Pick the correct article",
		DifficultyLevel: 1,
		ChoiceOne: &question.ChoiceOne{
			Options: []question.Option{
				{ID: "opt_a", Text: "an apple"},
				{ID: "opt_b", Text: "a apple"},
			},
			CorrectOptionID: "opt_a",
		},
	}
}

// testDrillScreen builds a started screen over the given questions by
// running the init command inline.
func testDrillScreen(t *testing.T, qs ...question.Question) (*DrillScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	s := New(qs, repo)

	msg := s.Init()()
	init, ok := msg.(drillInitMsg)
	if !ok {
		t.Fatalf("Init msg = %T, want drillInitMsg", msg)
	}
	if init.Err != nil {
		t.Fatalf("init error: %v", init.Err)
	}
	scr, _ := s.Update(init)
	return scr.(*DrillScreen), repo
}

func TestDrillScreen_Title(t *testing.T) {
	s := New([]question.Question{translateQuestion()}, nil)
	if s.Title() != "Drill" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill")
	}
}

func TestDrillScreen_View_Loading(t *testing.T) {
	s := New([]question.Question{translateQuestion()}, nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view before init")
	}
}

func TestDrillScreen_View_Error(t *testing.T) {
	s := New(nil, nil)
	msg := s.Init()()
	init := msg.(drillInitMsg)
	if init.Err == nil {
		t.Fatal("expected init error for an empty question set")
	}
	scr, _ := s.Update(init)
	if scr.(*DrillScreen).View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestDrillScreen_StartEventPersisted(t *testing.T) {
	_, repo := testDrillScreen(t, translateQuestion())

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "start" {
		t.Errorf("action = %q, want %q", ev.Action, "start")
	}
	if ev.CatalogSize != 1 {
		t.Errorf("catalog size = %d, want 1", ev.CatalogSize)
	}
	if ev.SessionID == "" {
		t.Error("expected a session id on the start event")
	}
}

func TestDrillScreen_QuitConfirm(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion())

	// Press Esc to show quit dialog.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ds := scr.(*DrillScreen)
	if !ds.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	// Press N to dismiss.
	scr, _ = ds.Update(keyPress('n'))
	ds = scr.(*DrillScreen)
	if ds.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestDrillScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion())

	// Press Esc then Y.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(drillEndMsg); !ok {
		t.Error("expected quit confirmation to end the session")
	}
}

func TestDrillScreen_TypedAnswerSubmit(t *testing.T) {
	s, repo := testDrillScreen(t, translateQuestion())

	s.input.Model.SetValue("i am learning english")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)

	if !ds.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if !ds.lastCorrect {
		t.Error("expected a case-insensitive match to grade correct")
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.QuestionID != "q_translate" || !ev.Correct {
		t.Errorf("answer event = %+v, want correct q_translate", ev)
	}
}

func TestDrillScreen_EmptyAnswerBlocked(t *testing.T) {
	s, repo := testDrillScreen(t, translateQuestion())

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)

	if ds.showingFeedback {
		t.Error("expected empty submission to be rejected")
	}
	if len(repo.answerEvents) != 0 {
		t.Errorf("answer events = %d, want 0", len(repo.answerEvents))
	}
}

func TestDrillScreen_ChoiceSubmit(t *testing.T) {
	s, repo := testDrillScreen(t, choiceQuestion())

	// Cursor starts at the first option, which is correct.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)

	if !ds.showingFeedback {
		t.Error("expected feedback after choice submit")
	}
	if !ds.lastCorrect {
		t.Error("expected the highlighted correct option to grade correct")
	}
	if len(repo.answerEvents) != 1 || repo.answerEvents[0].Given != "opt_a" {
		t.Errorf("answer events = %+v, want one with given opt_a", repo.answerEvents)
	}
}

func TestDrillScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion(), choiceQuestion())

	s.input.Model.SetValue("I am learning English")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	// Any key dismisses feedback.
	scr, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after feedback dismiss")
	}
	scr, _ = scr.Update(cmd())
	ds := scr.(*DrillScreen)

	if ds.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if ds.engine.Index() != 1 {
		t.Errorf("index = %d, want 1 after advance", ds.engine.Index())
	}
	if ds.kind != widgetChoice {
		t.Errorf("active widget = %d, want choice widget", ds.kind)
	}
}

func TestDrillScreen_EndReplacesWithSummary(t *testing.T) {
	s, repo := testDrillScreen(t, translateQuestion())

	s.input.Model.SetValue("I am learning English")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(keyPress(' '))
	scr, cmd = scr.Update(cmd())

	if cmd == nil {
		t.Fatal("expected an end command after the last question")
	}
	scr, cmd = scr.Update(cmd())
	if cmd == nil {
		t.Fatal("expected a replace command at session end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the summary to replace the drill screen")
	}

	if len(repo.sessionEvents) != 2 {
		t.Fatalf("session events = %d, want start and end", len(repo.sessionEvents))
	}
	end := repo.sessionEvents[1]
	if end.Action != "end" || end.QuestionsAnswered != 1 || end.CorrectAnswers != 1 {
		t.Errorf("end event = %+v, want 1/1 answered", end)
	}
}

func TestDrillScreen_HintToggle(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion())

	hintKey := tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}

	var scr screen.Screen = s
	scr, _ = scr.Update(hintKey)
	ds := scr.(*DrillScreen)
	if !ds.showHint {
		t.Error("expected hint to be shown after ctrl+g")
	}
	scr, _ = ds.Update(hintKey)
	if scr.(*DrillScreen).showHint {
		t.Error("expected hint to toggle off")
	}
}

func TestDrillScreen_KeyHints(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestDrillScreen_Score(t *testing.T) {
	s, _ := testDrillScreen(t, translateQuestion())

	s.input.Model.SetValue("I am learning English")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	correct, answered := scr.(*DrillScreen).Score()
	if correct != 1 || answered != 1 {
		t.Errorf("score = %d/%d, want 1/1", correct, answered)
	}
}
