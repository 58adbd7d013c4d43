package answer

import (
	"strings"

	"github.com/ifedorova/langdrill/internal/question"
)

// CanSubmit is the per-variant completeness gate checked before an answer
// may be submitted. It judges whether the answer is complete, not whether
// it is correct. audioPlays is the external replay counter for dictation
// questions; it is ignored for every other variant.
func CanSubmit(q *question.Question, raw string, audioPlays int) bool {
	switch q.Variant {
	case question.VariantLexicalFix,
		question.VariantGrammarTransform,
		question.VariantSentencePuzzle,
		question.VariantTranslate,
		question.VariantReverseTranslate:
		return strings.TrimSpace(raw) != ""

	case question.VariantDictation:
		return audioPlays >= 1 && strings.TrimSpace(raw) != ""

	case question.VariantChoiceOne:
		return raw != ""

	case question.VariantTrueFalse:
		n := normalize(raw)
		return n == "true" || n == "false"

	case question.VariantChoiceMulti:
		if q.ChoiceMulti == nil {
			return false
		}
		sel, err := DecodeSelection(raw)
		if err != nil {
			return false
		}
		n := len(uniq(sel))
		if n == 0 {
			return false
		}
		if min := q.ChoiceMulti.MinSelections; min > 0 && n < min {
			return false
		}
		if max := q.ChoiceMulti.MaxSelections; max > 0 && n > max {
			return false
		}
		return true

	case question.VariantGapFill:
		if q.GapFill == nil {
			return false
		}
		answers, err := DecodeGaps(raw)
		if err != nil {
			return false
		}
		for _, gap := range q.GapFill.Gaps {
			if strings.TrimSpace(answers[gap.Position]) == "" {
				return false
			}
		}
		return true

	case question.VariantMatching:
		if q.Matching == nil {
			return false
		}
		answers, err := DecodeMatches(raw)
		if err != nil {
			return false
		}
		for _, item := range q.Matching.LeftItems {
			if answers[item.ID] == "" {
				return false
			}
		}
		return true
	}

	return false
}

func uniq(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
