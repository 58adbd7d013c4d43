package question

import "time"

// Variant identifies one of the eleven closed exercise shapes.
type Variant string

const (
	VariantLexicalFix       Variant = "lexical_fix"
	VariantGrammarTransform Variant = "grammar_transformation"
	VariantSentencePuzzle   Variant = "sentence_puzzle"
	VariantTranslate        Variant = "translate"
	VariantReverseTranslate Variant = "reverse_translation"
	VariantGapFill          Variant = "gap_fill"
	VariantChoiceOne        Variant = "choice_one"
	VariantChoiceMulti      Variant = "choice_multi"
	VariantMatching         Variant = "matching"
	VariantTrueFalse        Variant = "true_false"
	VariantDictation        Variant = "dictation"
)

// AllVariants lists every supported variant in display order.
var AllVariants = []Variant{
	VariantLexicalFix,
	VariantGrammarTransform,
	VariantSentencePuzzle,
	VariantTranslate,
	VariantReverseTranslate,
	VariantGapFill,
	VariantChoiceOne,
	VariantChoiceMulti,
	VariantMatching,
	VariantTrueFalse,
	VariantDictation,
}

// Known returns true if v is one of the supported variants.
func (v Variant) Known() bool {
	for _, k := range AllVariants {
		if v == k {
			return true
		}
	}
	return false
}

// Question is a single catalog entry. Exactly one of the payload pointers
// is set, matching Variant. The payload carries the ground truth the
// validator grades against; everything else is display metadata.
type Question struct {
	ID              string    `json:"id"`
	Variant         Variant   `json:"variant"`
	Prompt          string    `json:"prompt"`
	DifficultyLevel int       `json:"difficulty_level"`
	Hint            string    `json:"hint,omitempty"`
	Explanation     string    `json:"explanation,omitempty"`
	VocabularyIDs   []string  `json:"vocabulary_item_ids,omitempty"`
	GrammarPoints   []string  `json:"grammar_points,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	LexicalFix       *LexicalFix       `json:"lexical_fix,omitempty"`
	GrammarTransform *GrammarTransform `json:"grammar_transformation,omitempty"`
	SentencePuzzle   *SentencePuzzle   `json:"sentence_puzzle,omitempty"`
	Translate        *Translation      `json:"translate,omitempty"`
	ReverseTranslate *Translation      `json:"reverse_translation,omitempty"`
	GapFill          *GapFill          `json:"gap_fill,omitempty"`
	ChoiceOne        *ChoiceOne        `json:"choice_one,omitempty"`
	ChoiceMulti      *ChoiceMulti      `json:"choice_multi,omitempty"`
	Matching         *Matching         `json:"matching,omitempty"`
	TrueFalse        *TrueFalse        `json:"true_false,omitempty"`
	Dictation        *Dictation        `json:"dictation,omitempty"`
}

// LexicalFix shows a sentence containing one wrong word; the learner types
// the replacement.
type LexicalFix struct {
	Sentence    string `json:"sentence"`
	WrongWord   string `json:"wrong_word"`
	CorrectWord string `json:"correct_word"`
}

// GrammarTransform asks the learner to rewrite a sentence following an
// instruction ("make it passive", "past tense", ...).
type GrammarTransform struct {
	SourceSentence     string   `json:"source_sentence"`
	Instruction        string   `json:"instruction"`
	CorrectAnswer      string   `json:"correct_answer"`
	AlternativeAnswers []string `json:"alternative_answers,omitempty"`
}

// SentencePuzzle presents shuffled words to reassemble into a sentence.
type SentencePuzzle struct {
	Words           []string `json:"words"`
	CorrectSentence string   `json:"correct_sentence"`
}

// Translation covers both directions; the variant tag says which way.
type Translation struct {
	SourceText              string   `json:"source_text"`
	CorrectTranslation      string   `json:"correct_translation"`
	AlternativeTranslations []string `json:"alternative_translations,omitempty"`
}

// Gap is one blank inside a gap-fill text.
type Gap struct {
	Position           int      `json:"position"`
	CorrectAnswer      string   `json:"correct_answer"`
	AlternativeAnswers []string `json:"alternative_answers,omitempty"`
}

// GapFill shows Text with blanks; Gaps are keyed by Position.
type GapFill struct {
	Text string `json:"text"`
	Gaps []Gap  `json:"gaps"`
}

// Option is a selectable answer in choice variants.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ChoiceOne has exactly one correct option.
type ChoiceOne struct {
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correct_option_id"`
}

// ChoiceMulti has a set of correct options. MinSelections and MaxSelections
// bound how many options may be selected at submit time; zero means the
// bound is not set. The bounds gate submission only, they are not part of
// the correctness predicate.
type ChoiceMulti struct {
	Options          []Option `json:"options"`
	CorrectOptionIDs []string `json:"correct_option_ids"`
	MinSelections    int      `json:"min_selections,omitempty"`
	MaxSelections    int      `json:"max_selections,omitempty"`
}

// MatchItem is one side of a matching exercise.
type MatchItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchPair maps a left item to its correct right item. The pairing is
// functional: each left id appears in at most one pair.
type MatchPair struct {
	LeftID  string `json:"left_id"`
	RightID string `json:"right_id"`
}

// Matching asks the learner to pair every left item with a right item.
type Matching struct {
	LeftItems      []MatchItem `json:"left_items"`
	RightItems     []MatchItem `json:"right_items"`
	CorrectMatches []MatchPair `json:"correct_matches"`
}

// TrueFalse presents a statement to judge.
type TrueFalse struct {
	Statement     string `json:"statement"`
	CorrectAnswer bool   `json:"correct_answer"`
}

// Dictation plays audio (handled outside this app) and grades the typed
// transcription. AudioRef is an opaque reference for the external player.
type Dictation struct {
	AudioRef             string `json:"audio_ref"`
	CorrectTranscription string `json:"correct_transcription"`
}
