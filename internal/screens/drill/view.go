package drill

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/ui/components"
	"github.com/ifedorova/langdrill/internal/ui/theme"
)

// renderQuestionView renders the active question with its input widget.
func (s *DrillScreen) renderQuestionView(width int) string {
	q := s.current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + variantLabel(q.Variant))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d   Level %d",
			s.engine.Index()+1, s.engine.Len(), q.DifficultyLevel))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	bar := components.NewProgressBar(s.engine.Index(), s.engine.Len(), max(width-4, 4))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n")

	if ctx := questionContext(q); ctx != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(ctx))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if q.Variant == question.VariantDictation {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("♪ %s   (played %d times)", q.Dictation.AudioRef, s.audioPlays)))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderWidget(width))

	if s.showHint && q.Hint != "" {
		b.WriteString("\n")
		hint := theme.Hint.Width(min(width-8, 70)).Render("Hint: " + q.Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *DrillScreen) renderWidget(width int) string {
	switch s.kind {
	case widgetText:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
	case widgetChoice:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View())
	case widgetGaps:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.gaps.View())
	case widgetMatch:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.matches.View())
	case widgetBank:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.bank.View())
	}
	return ""
}

// renderFeedback renders the verdict overlay after a submission.
func (s *DrillScreen) renderFeedback(width int) string {
	q := s.current()

	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Expected: " + expectedDisplay(q)))
		}
	}

	b.WriteString("\n\n")

	if q != nil && !s.lastCorrect && q.Hint != "" {
		hint := theme.Hint.Width(min(width-8, 70)).Render("Hint: " + q.Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	if q != nil && q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Progress so far will be kept in the summary.  (y/n)"))
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Preparing session...")
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back"))
	return b.String()
}

// questionContext returns the secondary display line for the variant, the
// material the prompt refers to.
func questionContext(q *question.Question) string {
	switch q.Variant {
	case question.VariantLexicalFix:
		if q.LexicalFix != nil {
			return q.LexicalFix.Sentence
		}
	case question.VariantGrammarTransform:
		if q.GrammarTransform != nil {
			return q.GrammarTransform.SourceSentence + "  (" + q.GrammarTransform.Instruction + ")"
		}
	case question.VariantTranslate:
		if q.Translate != nil {
			return q.Translate.SourceText
		}
	case question.VariantReverseTranslate:
		if q.ReverseTranslate != nil {
			return q.ReverseTranslate.SourceText
		}
	case question.VariantGapFill:
		if q.GapFill != nil {
			return q.GapFill.Text
		}
	case question.VariantTrueFalse:
		if q.TrueFalse != nil {
			return q.TrueFalse.Statement
		}
	}
	return ""
}

// expectedDisplay renders the ground truth of a question for feedback and
// the history log.
func expectedDisplay(q *question.Question) string {
	switch q.Variant {
	case question.VariantLexicalFix:
		if q.LexicalFix != nil {
			return q.LexicalFix.CorrectWord
		}
	case question.VariantGrammarTransform:
		if q.GrammarTransform != nil {
			return q.GrammarTransform.CorrectAnswer
		}
	case question.VariantSentencePuzzle:
		if q.SentencePuzzle != nil {
			return q.SentencePuzzle.CorrectSentence
		}
	case question.VariantTranslate:
		if q.Translate != nil {
			return q.Translate.CorrectTranslation
		}
	case question.VariantReverseTranslate:
		if q.ReverseTranslate != nil {
			return q.ReverseTranslate.CorrectTranslation
		}
	case question.VariantGapFill:
		if q.GapFill != nil {
			parts := make([]string, 0, len(q.GapFill.Gaps))
			gaps := append([]question.Gap(nil), q.GapFill.Gaps...)
			sort.Slice(gaps, func(i, j int) bool { return gaps[i].Position < gaps[j].Position })
			for _, g := range gaps {
				parts = append(parts, fmt.Sprintf("%d: %s", g.Position+1, g.CorrectAnswer))
			}
			return strings.Join(parts, ", ")
		}
	case question.VariantChoiceOne:
		if q.ChoiceOne != nil {
			return optionText(q.ChoiceOne.Options, q.ChoiceOne.CorrectOptionID)
		}
	case question.VariantChoiceMulti:
		if q.ChoiceMulti != nil {
			parts := make([]string, 0, len(q.ChoiceMulti.CorrectOptionIDs))
			for _, id := range q.ChoiceMulti.CorrectOptionIDs {
				parts = append(parts, optionText(q.ChoiceMulti.Options, id))
			}
			return strings.Join(parts, ", ")
		}
	case question.VariantMatching:
		if q.Matching != nil {
			rightText := make(map[string]string, len(q.Matching.RightItems))
			for _, item := range q.Matching.RightItems {
				rightText[item.ID] = item.Text
			}
			leftText := make(map[string]string, len(q.Matching.LeftItems))
			for _, item := range q.Matching.LeftItems {
				leftText[item.ID] = item.Text
			}
			parts := make([]string, 0, len(q.Matching.CorrectMatches))
			for _, p := range q.Matching.CorrectMatches {
				parts = append(parts, leftText[p.LeftID]+" · "+rightText[p.RightID])
			}
			return strings.Join(parts, ", ")
		}
	case question.VariantTrueFalse:
		if q.TrueFalse != nil {
			return strconv.FormatBool(q.TrueFalse.CorrectAnswer)
		}
	case question.VariantDictation:
		if q.Dictation != nil {
			return q.Dictation.CorrectTranscription
		}
	}
	return ""
}

func optionText(options []question.Option, id string) string {
	for _, opt := range options {
		if opt.ID == id {
			return opt.Text
		}
	}
	return id
}

// variantLabel is the human label for the info line.
func variantLabel(v question.Variant) string {
	switch v {
	case question.VariantLexicalFix:
		return "Fix the word"
	case question.VariantGrammarTransform:
		return "Transform"
	case question.VariantSentencePuzzle:
		return "Sentence puzzle"
	case question.VariantTranslate:
		return "Translate"
	case question.VariantReverseTranslate:
		return "Translate back"
	case question.VariantGapFill:
		return "Fill the gaps"
	case question.VariantChoiceOne:
		return "Pick one"
	case question.VariantChoiceMulti:
		return "Pick all that apply"
	case question.VariantMatching:
		return "Match the pairs"
	case question.VariantTrueFalse:
		return "True or false"
	case question.VariantDictation:
		return "Dictation"
	}
	return string(v)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
