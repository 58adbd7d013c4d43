package answer

import (
	"strconv"
	"strings"

	"github.com/ifedorova/langdrill/internal/question"
)

// Validate grades a raw answer string against a question's ground truth.
// It is a pure function and never fails: malformed composite answers,
// missing payloads, and unknown variants all grade as incorrect.
//
// All comparisons over user-typed text trim surrounding whitespace and
// lower-case both sides first. Option and item ids are opaque tokens and
// are compared exactly.
func Validate(q *question.Question, raw string) bool {
	switch q.Variant {
	case question.VariantLexicalFix:
		if q.LexicalFix == nil {
			return false
		}
		return textEqual(raw, q.LexicalFix.CorrectWord)

	case question.VariantGrammarTransform:
		if q.GrammarTransform == nil {
			return false
		}
		return matchesAny(raw, q.GrammarTransform.CorrectAnswer, q.GrammarTransform.AlternativeAnswers)

	case question.VariantSentencePuzzle:
		if q.SentencePuzzle == nil {
			return false
		}
		return textEqual(raw, q.SentencePuzzle.CorrectSentence)

	case question.VariantTranslate:
		if q.Translate == nil {
			return false
		}
		return matchesAny(raw, q.Translate.CorrectTranslation, q.Translate.AlternativeTranslations)

	case question.VariantReverseTranslate:
		if q.ReverseTranslate == nil {
			return false
		}
		return matchesAny(raw, q.ReverseTranslate.CorrectTranslation, q.ReverseTranslate.AlternativeTranslations)

	case question.VariantGapFill:
		if q.GapFill == nil {
			return false
		}
		return validateGapFill(q.GapFill, raw)

	case question.VariantChoiceOne:
		if q.ChoiceOne == nil {
			return false
		}
		return raw == q.ChoiceOne.CorrectOptionID

	case question.VariantChoiceMulti:
		if q.ChoiceMulti == nil {
			return false
		}
		return validateChoiceMulti(q.ChoiceMulti, raw)

	case question.VariantMatching:
		if q.Matching == nil {
			return false
		}
		return validateMatching(q.Matching, raw)

	case question.VariantTrueFalse:
		if q.TrueFalse == nil {
			return false
		}
		return normalize(raw) == strconv.FormatBool(q.TrueFalse.CorrectAnswer)

	case question.VariantDictation:
		if q.Dictation == nil {
			return false
		}
		return textEqual(raw, q.Dictation.CorrectTranscription)
	}

	// Unrecognized variant tag.
	return false
}

// validateGapFill requires every declared gap to match its correct answer
// or one of its alternatives. A position missing from the learner's map
// counts as an empty answer.
func validateGapFill(gf *question.GapFill, raw string) bool {
	answers, err := DecodeGaps(raw)
	if err != nil {
		return false
	}
	for _, gap := range gf.Gaps {
		if !matchesAny(answers[gap.Position], gap.CorrectAnswer, gap.AlternativeAnswers) {
			return false
		}
	}
	return true
}

// validateChoiceMulti requires the selected set to equal the correct set,
// ignoring order and duplicates. The min/max selection bounds gate
// submission elsewhere; they play no part here.
func validateChoiceMulti(cm *question.ChoiceMulti, raw string) bool {
	sel, err := DecodeSelection(raw)
	if err != nil {
		return false
	}
	got := make(map[string]bool, len(sel))
	for _, id := range sel {
		got[id] = true
	}
	want := make(map[string]bool, len(cm.CorrectOptionIDs))
	for _, id := range cm.CorrectOptionIDs {
		want[id] = true
	}
	if len(got) != len(want) {
		return false
	}
	for id := range want {
		if !got[id] {
			return false
		}
	}
	return true
}

// validateMatching requires every pair in correct_matches to be present in
// the learner's mapping. Extra keys beyond the required pairs are ignored.
func validateMatching(m *question.Matching, raw string) bool {
	answers, err := DecodeMatches(raw)
	if err != nil {
		return false
	}
	for _, pair := range m.CorrectMatches {
		if answers[pair.LeftID] != pair.RightID {
			return false
		}
	}
	return true
}

// matchesAny reports whether raw equals the primary answer or any
// alternative, after normalization.
func matchesAny(raw, primary string, alternatives []string) bool {
	n := normalize(raw)
	if n == normalize(primary) {
		return true
	}
	for _, alt := range alternatives {
		if n == normalize(alt) {
			return true
		}
	}
	return false
}

func textEqual(a, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
