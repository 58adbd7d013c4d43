package answer

import (
	"testing"

	"github.com/ifedorova/langdrill/internal/question"
)

func translateQuestion() *question.Question {
	return &question.Question{
		ID:      "q_tr",
		Variant: question.VariantTranslate,
		Translate: &question.Translation{
			SourceText:         "Я учу английский.",
			CorrectTranslation: "I am learning English.",
			AlternativeTranslations: []string{
				"I study English.",
			},
		},
	}
}

func TestValidateTextCaseAndWhitespaceInsensitive(t *testing.T) {
	q := translateQuestion()

	cases := []struct {
		raw  string
		want bool
	}{
		{"I am learning English.", true},
		{"  I Am Learning English. ", true},
		{"i am learning english.", true},
		{"I study English.", true},
		{"  i STUDY english.  ", true},
		{"I learn English.", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Validate(q, tc.raw); got != tc.want {
			t.Errorf("Validate(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestValidateLexicalFix(t *testing.T) {
	q := &question.Question{
		Variant: question.VariantLexicalFix,
		LexicalFix: &question.LexicalFix{
			Sentence:    "Every morning she go to school.",
			WrongWord:   "go",
			CorrectWord: "goes",
		},
	}

	if !Validate(q, "GOES ") {
		t.Error("normalized correct word should validate")
	}
	if Validate(q, "go") {
		t.Error("the wrong word itself must not validate")
	}
}

func TestValidateChoiceOneExactID(t *testing.T) {
	q := &question.Question{
		Variant: question.VariantChoiceOne,
		ChoiceOne: &question.ChoiceOne{
			Options: []question.Option{
				{ID: "opt_001", Text: "a university"},
				{ID: "opt_002", Text: "an university"},
			},
			CorrectOptionID: "opt_001",
		},
	}

	if !Validate(q, "opt_001") {
		t.Error("correct option id should validate")
	}
	if Validate(q, "opt_002") {
		t.Error("wrong option id should not validate")
	}
	// Option ids are compared exactly, not normalized.
	if Validate(q, "OPT_001") {
		t.Error("id comparison must be exact")
	}
}

func TestValidateChoiceMultiOrderInsensitive(t *testing.T) {
	q := &question.Question{
		Variant: question.VariantChoiceMulti,
		ChoiceMulti: &question.ChoiceMulti{
			Options: []question.Option{
				{ID: "opt_m01"}, {ID: "opt_m02"}, {ID: "opt_m03"},
				{ID: "opt_m04"}, {ID: "opt_m05"},
			},
			CorrectOptionIDs: []string{"opt_m01", "opt_m02", "opt_m04"},
		},
	}

	a := EncodeSelection(Selection{"opt_m04", "opt_m01", "opt_m02"})
	b := EncodeSelection(Selection{"opt_m01", "opt_m02", "opt_m04"})

	if !Validate(q, a) {
		t.Error("reordered selection should validate")
	}
	if !Validate(q, b) {
		t.Error("in-order selection should validate")
	}
	if Validate(q, EncodeSelection(Selection{"opt_m01", "opt_m02"})) {
		t.Error("subset should not validate")
	}
	if Validate(q, EncodeSelection(Selection{"opt_m01", "opt_m02", "opt_m04", "opt_m05"})) {
		t.Error("superset should not validate")
	}
}

func TestValidateGapFill(t *testing.T) {
	q := &question.Question{
		Variant: question.VariantGapFill,
		GapFill: &question.GapFill{
			Text: "She ___ to work and ___ a coffee.",
			Gaps: []question.Gap{
				{Position: 0, CorrectAnswer: "goes"},
				{Position: 1, CorrectAnswer: "buys", AlternativeAnswers: []string{"purchases"}},
			},
		},
	}

	if !Validate(q, EncodeGaps(GapAnswers{0: "goes", 1: "purchases"})) {
		t.Error("alternative answer for gap 1 should validate")
	}
	if !Validate(q, EncodeGaps(GapAnswers{0: " Goes ", 1: "BUYS"})) {
		t.Error("gap answers are normalized before comparison")
	}
	if Validate(q, EncodeGaps(GapAnswers{0: "go", 1: "buys"})) {
		t.Error("wrong gap 0 should fail the whole question")
	}
	if Validate(q, EncodeGaps(GapAnswers{0: "goes"})) {
		t.Error("missing gap should count as empty and fail")
	}
}

func TestValidateMatching(t *testing.T) {
	q := &question.Question{
		Variant: question.VariantMatching,
		Matching: &question.Matching{
			LeftItems: []question.MatchItem{
				{ID: "left_01"}, {ID: "left_02"}, {ID: "left_03"}, {ID: "left_04"},
			},
			RightItems: []question.MatchItem{
				{ID: "right_01"}, {ID: "right_02"}, {ID: "right_03"}, {ID: "right_04"},
			},
			CorrectMatches: []question.MatchPair{
				{LeftID: "left_01", RightID: "right_02"},
				{LeftID: "left_02", RightID: "right_01"},
				{LeftID: "left_03", RightID: "right_03"},
				{LeftID: "left_04", RightID: "right_04"},
			},
		},
	}

	full := MatchAnswers{
		"left_01": "right_02",
		"left_02": "right_01",
		"left_03": "right_03",
		"left_04": "right_04",
	}
	if !Validate(q, EncodeMatches(full)) {
		t.Error("complete correct mapping should validate")
	}

	missing := MatchAnswers{
		"left_01": "right_02",
		"left_02": "right_01",
		"left_03": "right_03",
	}
	if Validate(q, EncodeMatches(missing)) {
		t.Error("mapping missing left_04 should not validate")
	}

	extra := MatchAnswers{
		"left_01": "right_02",
		"left_02": "right_01",
		"left_03": "right_03",
		"left_04": "right_04",
		"left_99": "right_01",
	}
	if !Validate(q, EncodeMatches(extra)) {
		t.Error("extraneous key must be ignored")
	}
}

func TestValidateTrueFalse(t *testing.T) {
	q := &question.Question{
		Variant:   question.VariantTrueFalse,
		TrueFalse: &question.TrueFalse{Statement: "\"Children\" is a plural.", CorrectAnswer: true},
	}

	if !Validate(q, "true") {
		t.Error("\"true\" should validate")
	}
	if !Validate(q, " TRUE ") {
		t.Error("true/false answers are normalized")
	}
	if Validate(q, "false") {
		t.Error("\"false\" should not validate")
	}
	if Validate(q, "yes") {
		t.Error("non-boolean text should not validate")
	}
}

func TestValidateMalformedCompositeIsIncorrect(t *testing.T) {
	for _, v := range []question.Variant{
		question.VariantChoiceMulti,
		question.VariantGapFill,
		question.VariantMatching,
	} {
		q := &question.Question{
			Variant:     v,
			ChoiceMulti: &question.ChoiceMulti{CorrectOptionIDs: []string{"a"}},
			GapFill:     &question.GapFill{Gaps: []question.Gap{{Position: 0, CorrectAnswer: "x"}}},
			Matching: &question.Matching{
				CorrectMatches: []question.MatchPair{{LeftID: "l", RightID: "r"}},
			},
		}
		if Validate(q, "not json{") {
			t.Errorf("%s: malformed payload must be graded incorrect, not panic", v)
		}
	}
}

func TestValidateNilPayload(t *testing.T) {
	q := &question.Question{Variant: question.VariantTranslate}
	if Validate(q, "anything") {
		t.Error("missing payload must grade incorrect")
	}
}

func TestValidateUnknownVariant(t *testing.T) {
	q := &question.Question{Variant: "essay"}
	if Validate(q, "anything") {
		t.Error("unknown variant must grade incorrect")
	}
}
