package drill

import (
	"context"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/ifedorova/langdrill/internal/answer"
	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/router"
	"github.com/ifedorova/langdrill/internal/screen"
	"github.com/ifedorova/langdrill/internal/screens/summary"
	sess "github.com/ifedorova/langdrill/internal/session"
	"github.com/ifedorova/langdrill/internal/store"
	"github.com/ifedorova/langdrill/internal/ui/components"
	"github.com/ifedorova/langdrill/internal/ui/layout"
)

// widgetKind selects which input component is active for the current question.
type widgetKind int

const (
	widgetText widgetKind = iota
	widgetChoice
	widgetGaps
	widgetMatch
	widgetBank
)

// DrillScreen implements screen.Screen for an active drill session.
type DrillScreen struct {
	questions []question.Question
	eventRepo store.EventRepo

	engine    *sess.Engine
	sessionID string

	startTime     time.Time
	questionStart time.Time

	kind    widgetKind
	input   components.TextInput
	choices components.ChoiceList
	gaps    components.GapFillInput
	matches components.MatchList
	bank    components.WordBank

	audioPlays int

	showingFeedback    bool
	showingQuitConfirm bool
	lastCorrect        bool
	showHint           bool
	errMsg             string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.ScoreProvider = (*DrillScreen)(nil)

// New creates a drill screen over the given question subset. eventRepo may
// be nil when history persistence is disabled.
func New(questions []question.Question, eventRepo store.EventRepo) *DrillScreen {
	return &DrillScreen{
		questions: questions,
		eventRepo: eventRepo,
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return s.initDrill()
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) Score() (correct, answered int) {
	if s.engine == nil {
		return 0, 0
	}
	score := s.engine.Score()
	return score.CorrectCount, score.Answered
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if q := s.current(); q != nil {
		switch q.Variant {
		case question.VariantSentencePuzzle:
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Pick word"})
		case question.VariantMatching:
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Pair"})
			hints[0] = layout.KeyHint{Key: "Enter*", Description: "Submit when done"}
		case question.VariantDictation:
			hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Play audio"})
		}
		if q.Hint != "" {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+G", Description: "Hint"})
		}
	}
	if s.engine != nil && s.engine.Index() > 0 {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+B", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	return hints
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillInitMsg:
		return s.handleInit(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case drillEndMsg:
		return s.handleDrillEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToWidget(msg)
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.engine == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestionView(width)
}

// initDrill builds the engine and persists the session start event.
func (s *DrillScreen) initDrill() tea.Cmd {
	return func() tea.Msg {
		engine, err := sess.NewEngine(s.questions)
		if err != nil {
			return drillInitMsg{Err: err}
		}

		sessionID := uuid.New().String()
		if s.eventRepo != nil {
			_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:   sessionID,
				Action:      "start",
				CatalogSize: engine.Len(),
			})
		}

		return drillInitMsg{Engine: engine, SessionID: sessionID}
	}
}

func (s *DrillScreen) handleInit(msg drillInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.engine = msg.Engine
	s.sessionID = msg.SessionID
	s.startTime = time.Now()
	return s, s.prepareWidgets()
}

func (s *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.showHint = false

	if err := s.engine.Advance(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.engine.Completed() {
		return s, func() tea.Msg { return drillEndMsg{} }
	}
	return s, s.prepareWidgets()
}

func (s *DrillScreen) handleDrillEnd() (screen.Screen, tea.Cmd) {
	elapsed := time.Since(s.startTime)
	score := s.engine.Score()

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:         s.sessionID,
			Action:            "end",
			QuestionsAnswered: score.Answered,
			CorrectAnswers:    score.CorrectCount,
			DurationSecs:      int(elapsed.Seconds()),
		})
	}

	sum := sess.BuildSummary(s.engine, elapsed)

	// Replace rather than push: there is no live session to return to.
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.engine == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return drillEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "ctrl+g":
		if q := s.current(); q != nil && q.Hint != "" {
			s.showHint = !s.showHint
		}
		return s, nil
	case "ctrl+p":
		if q := s.current(); q != nil && q.Variant == question.VariantDictation {
			s.audioPlays++
		}
		return s, nil
	case "ctrl+b":
		if err := s.engine.Retreat(); err == nil {
			return s, s.prepareWidgets()
		}
		return s, nil
	case "enter":
		// Matching consumes enter for pairing until all pairs are set.
		if s.kind == widgetMatch && (s.matches.Picking() || !s.matches.Complete()) {
			break
		}
		if s.kind == widgetChoice && !s.choices.Multi {
			s.choices.Select()
		}
		return s.submitAnswer()
	}

	return s.forwardToWidget(msg)
}

// forwardToWidget routes a message to the active input component.
func (s *DrillScreen) forwardToWidget(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.engine == nil || s.showingFeedback || s.showingQuitConfirm {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.kind {
	case widgetText:
		s.input, cmd = s.input.Update(msg)
	case widgetChoice:
		s.choices, cmd = s.choices.Update(msg)
	case widgetGaps:
		s.gaps, cmd = s.gaps.Update(msg)
	case widgetMatch:
		s.matches, cmd = s.matches.Update(msg)
	case widgetBank:
		s.bank, cmd = s.bank.Update(msg)
	}
	return s, cmd
}

// currentRaw encodes the widget state into the submission wire form.
func (s *DrillScreen) currentRaw() string {
	switch s.kind {
	case widgetText:
		return s.input.Value()
	case widgetChoice:
		ids := s.choices.SelectedIDs()
		if !s.choices.Multi {
			if len(ids) == 0 {
				return ""
			}
			return ids[0]
		}
		return answer.EncodeSelection(ids)
	case widgetGaps:
		return answer.EncodeGaps(s.gaps.Answers())
	case widgetMatch:
		return answer.EncodeMatches(s.matches.Pairs())
	case widgetBank:
		return s.bank.Sentence()
	}
	return ""
}

// submitAnswer grades the current widget state and shows feedback.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.current()
	if q == nil {
		return s, nil
	}

	raw := s.currentRaw()
	if !s.engine.CanSubmit(raw, s.audioPlays) {
		return s, nil
	}

	timeMs := int(time.Since(s.questionStart).Milliseconds())
	idx := s.engine.Index()

	correct, err := s.engine.Submit(raw, s.audioPlays)
	if err != nil {
		return s, nil
	}

	s.lastCorrect = correct
	s.revealWidget(q, raw, correct)

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:     s.sessionID,
			QuestionID:    q.ID,
			Variant:       string(q.Variant),
			Prompt:        q.Prompt,
			Expected:      expectedDisplay(q),
			Given:         raw,
			Correct:       correct,
			TimeMs:        timeMs,
			QuestionIndex: idx,
		})
	}

	s.showingFeedback = true
	return s, nil
}

// revealWidget marks the active component with the grading result.
func (s *DrillScreen) revealWidget(q *question.Question, raw string, correct bool) {
	switch s.kind {
	case widgetText:
		s.input.Submit(correct)
	case widgetChoice:
		s.choices.Submit()
	case widgetGaps:
		s.gaps.Submit(gapResults(q, raw))
	case widgetMatch:
		s.matches.Submit()
	case widgetBank:
		s.bank.Submit(correct)
	}
}

// gapResults grades each gap individually for the per-input reveal.
func gapResults(q *question.Question, raw string) map[int]bool {
	results := make(map[int]bool)
	if q.GapFill == nil {
		return results
	}
	given, err := answer.DecodeGaps(raw)
	if err != nil {
		given = answer.GapAnswers{}
	}
	for _, gap := range q.GapFill.Gaps {
		one := &question.Question{
			Variant: question.VariantGapFill,
			GapFill: &question.GapFill{Gaps: []question.Gap{gap}},
		}
		results[gap.Position] = answer.Validate(one, answer.EncodeGaps(answer.GapAnswers{
			gap.Position: given[gap.Position],
		}))
	}
	return results
}

// prepareWidgets builds the input component for the current question.
func (s *DrillScreen) prepareWidgets() tea.Cmd {
	q := s.current()
	if q == nil {
		return nil
	}

	s.questionStart = time.Now()
	s.audioPlays = 0
	s.showHint = false

	switch q.Variant {
	case question.VariantChoiceOne:
		s.kind = widgetChoice
		s.choices = components.NewChoiceList(q.ChoiceOne.Options, false,
			[]string{q.ChoiceOne.CorrectOptionID})
	case question.VariantChoiceMulti:
		s.kind = widgetChoice
		s.choices = components.NewChoiceList(q.ChoiceMulti.Options, true,
			q.ChoiceMulti.CorrectOptionIDs)
	case question.VariantTrueFalse:
		s.kind = widgetChoice
		s.choices = components.NewChoiceList([]question.Option{
			{ID: "true", Text: "True"},
			{ID: "false", Text: "False"},
		}, false, []string{strconv.FormatBool(q.TrueFalse.CorrectAnswer)})
	case question.VariantGapFill:
		s.kind = widgetGaps
		s.gaps = components.NewGapFillInput(q.GapFill.Gaps)
		return s.gaps.Init()
	case question.VariantMatching:
		s.kind = widgetMatch
		s.matches = components.NewMatchList(q.Matching.LeftItems,
			q.Matching.RightItems, q.Matching.CorrectMatches)
	case question.VariantSentencePuzzle:
		s.kind = widgetBank
		s.bank = components.NewWordBank(q.SentencePuzzle.Words)
	default:
		s.kind = widgetText
		s.input = components.NewTextInput("Type your answer...", 120)
		return s.input.Init()
	}

	return nil
}

func (s *DrillScreen) current() *question.Question {
	if s.engine == nil {
		return nil
	}
	return s.engine.Current()
}
