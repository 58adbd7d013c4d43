package question

import (
	"fmt"
	"strings"
)

// CheckIntegrity verifies the authoring invariants of a single question:
// the payload matching the variant tag is present, and every identifier the
// ground truth references (option ids, gap positions, left/right ids) exists
// in the question's own lists. The evaluator tolerates violations at
// runtime; this check is for catalog loading and authoring tools.
func (q *Question) CheckIntegrity() error {
	if q.ID == "" {
		return fmt.Errorf("question has empty id")
	}
	if !q.Variant.Known() {
		return fmt.Errorf("question %s: unknown variant %q", q.ID, q.Variant)
	}
	if q.DifficultyLevel < 1 || q.DifficultyLevel > 10 {
		return fmt.Errorf("question %s: difficulty_level %d out of range 1-10", q.ID, q.DifficultyLevel)
	}

	switch q.Variant {
	case VariantLexicalFix:
		if q.LexicalFix == nil {
			return missingPayload(q)
		}
		if q.LexicalFix.CorrectWord == "" {
			return fmt.Errorf("question %s: empty correct_word", q.ID)
		}
	case VariantGrammarTransform:
		if q.GrammarTransform == nil {
			return missingPayload(q)
		}
		if q.GrammarTransform.CorrectAnswer == "" {
			return fmt.Errorf("question %s: empty correct_answer", q.ID)
		}
	case VariantSentencePuzzle:
		if q.SentencePuzzle == nil {
			return missingPayload(q)
		}
		if q.SentencePuzzle.CorrectSentence == "" {
			return fmt.Errorf("question %s: empty correct_sentence", q.ID)
		}
		if len(q.SentencePuzzle.Words) == 0 {
			return fmt.Errorf("question %s: empty word list", q.ID)
		}
	case VariantTranslate:
		if q.Translate == nil {
			return missingPayload(q)
		}
		if q.Translate.CorrectTranslation == "" {
			return fmt.Errorf("question %s: empty correct_translation", q.ID)
		}
	case VariantReverseTranslate:
		if q.ReverseTranslate == nil {
			return missingPayload(q)
		}
		if q.ReverseTranslate.CorrectTranslation == "" {
			return fmt.Errorf("question %s: empty correct_translation", q.ID)
		}
	case VariantGapFill:
		return q.checkGapFill()
	case VariantChoiceOne:
		return q.checkChoiceOne()
	case VariantChoiceMulti:
		return q.checkChoiceMulti()
	case VariantMatching:
		return q.checkMatching()
	case VariantTrueFalse:
		if q.TrueFalse == nil {
			return missingPayload(q)
		}
		if strings.TrimSpace(q.TrueFalse.Statement) == "" {
			return fmt.Errorf("question %s: empty statement", q.ID)
		}
	case VariantDictation:
		if q.Dictation == nil {
			return missingPayload(q)
		}
		if q.Dictation.CorrectTranscription == "" {
			return fmt.Errorf("question %s: empty correct_transcription", q.ID)
		}
	}
	return nil
}

func (q *Question) checkGapFill() error {
	gf := q.GapFill
	if gf == nil {
		return missingPayload(q)
	}
	if len(gf.Gaps) == 0 {
		return fmt.Errorf("question %s: gap_fill has no gaps", q.ID)
	}
	seen := make(map[int]bool, len(gf.Gaps))
	for _, g := range gf.Gaps {
		if g.Position < 0 {
			return fmt.Errorf("question %s: negative gap position %d", q.ID, g.Position)
		}
		if seen[g.Position] {
			return fmt.Errorf("question %s: duplicate gap position %d", q.ID, g.Position)
		}
		seen[g.Position] = true
		if g.CorrectAnswer == "" {
			return fmt.Errorf("question %s: gap %d has empty correct_answer", q.ID, g.Position)
		}
	}
	return nil
}

func (q *Question) checkChoiceOne() error {
	co := q.ChoiceOne
	if co == nil {
		return missingPayload(q)
	}
	if len(co.Options) < 2 {
		return fmt.Errorf("question %s: choice_one needs at least 2 options", q.ID)
	}
	if !hasOption(co.Options, co.CorrectOptionID) {
		return fmt.Errorf("question %s: correct_option_id %q not among options", q.ID, co.CorrectOptionID)
	}
	return nil
}

func (q *Question) checkChoiceMulti() error {
	cm := q.ChoiceMulti
	if cm == nil {
		return missingPayload(q)
	}
	if len(cm.Options) < 2 {
		return fmt.Errorf("question %s: choice_multi needs at least 2 options", q.ID)
	}
	if len(cm.CorrectOptionIDs) == 0 {
		return fmt.Errorf("question %s: choice_multi has no correct options", q.ID)
	}
	for _, id := range cm.CorrectOptionIDs {
		if !hasOption(cm.Options, id) {
			return fmt.Errorf("question %s: correct option %q not among options", q.ID, id)
		}
	}
	if cm.MinSelections < 0 || cm.MaxSelections < 0 {
		return fmt.Errorf("question %s: negative selection bound", q.ID)
	}
	if cm.MinSelections > 0 && cm.MaxSelections > 0 && cm.MinSelections > cm.MaxSelections {
		return fmt.Errorf("question %s: min_selections %d > max_selections %d", q.ID, cm.MinSelections, cm.MaxSelections)
	}
	return nil
}

func (q *Question) checkMatching() error {
	m := q.Matching
	if m == nil {
		return missingPayload(q)
	}
	if len(m.CorrectMatches) == 0 {
		return fmt.Errorf("question %s: matching has no correct_matches", q.ID)
	}
	seenLeft := make(map[string]bool, len(m.CorrectMatches))
	for _, p := range m.CorrectMatches {
		if !hasItem(m.LeftItems, p.LeftID) {
			return fmt.Errorf("question %s: left_id %q not among left_items", q.ID, p.LeftID)
		}
		if !hasItem(m.RightItems, p.RightID) {
			return fmt.Errorf("question %s: right_id %q not among right_items", q.ID, p.RightID)
		}
		if seenLeft[p.LeftID] {
			return fmt.Errorf("question %s: left_id %q mapped twice", q.ID, p.LeftID)
		}
		seenLeft[p.LeftID] = true
	}
	return nil
}

func missingPayload(q *Question) error {
	return fmt.Errorf("question %s: variant %s has no matching payload", q.ID, q.Variant)
}

func hasOption(opts []Option, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}

func hasItem(items []MatchItem, id string) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
