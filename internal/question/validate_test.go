package question

import (
	"strings"
	"testing"
)

func validChoiceMulti() *Question {
	return &Question{
		ID:              "q1",
		Variant:         VariantChoiceMulti,
		Prompt:          "Pick the uncountable nouns.",
		DifficultyLevel: 3,
		ChoiceMulti: &ChoiceMulti{
			Options: []Option{
				{ID: "a", Text: "water"}, {ID: "b", Text: "apple"}, {ID: "c", Text: "advice"},
			},
			CorrectOptionIDs: []string{"a", "c"},
			MinSelections:    1,
			MaxSelections:    3,
		},
	}
}

func TestCheckIntegrityValid(t *testing.T) {
	if err := validChoiceMulti().CheckIntegrity(); err != nil {
		t.Fatalf("CheckIntegrity: %v", err)
	}
}

func TestCheckIntegrityEmptyID(t *testing.T) {
	q := validChoiceMulti()
	q.ID = ""
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestCheckIntegrityUnknownVariant(t *testing.T) {
	q := validChoiceMulti()
	q.Variant = "essay"
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestCheckIntegrityDifficultyRange(t *testing.T) {
	q := validChoiceMulti()
	q.DifficultyLevel = 11
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for difficulty out of range")
	}
}

func TestCheckIntegrityMissingPayload(t *testing.T) {
	q := validChoiceMulti()
	q.ChoiceMulti = nil
	err := q.CheckIntegrity()
	if err == nil || !strings.Contains(err.Error(), "no matching payload") {
		t.Fatalf("err = %v, want missing payload", err)
	}
}

func TestCheckIntegrityDanglingCorrectOption(t *testing.T) {
	q := validChoiceMulti()
	q.ChoiceMulti.CorrectOptionIDs = []string{"a", "nope"}
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for dangling correct option id")
	}
}

func TestCheckIntegrityInvertedBounds(t *testing.T) {
	q := validChoiceMulti()
	q.ChoiceMulti.MinSelections = 3
	q.ChoiceMulti.MaxSelections = 2
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestCheckIntegrityGapFill(t *testing.T) {
	q := &Question{
		ID: "q_gap", Variant: VariantGapFill, DifficultyLevel: 2,
		GapFill: &GapFill{
			Text: "She ___ and ___.",
			Gaps: []Gap{
				{Position: 0, CorrectAnswer: "goes"},
				{Position: 0, CorrectAnswer: "buys"},
			},
		},
	}
	err := q.CheckIntegrity()
	if err == nil || !strings.Contains(err.Error(), "duplicate gap position") {
		t.Fatalf("err = %v, want duplicate position", err)
	}

	q.GapFill.Gaps[1].Position = -1
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for negative position")
	}
}

func TestCheckIntegrityMatching(t *testing.T) {
	q := &Question{
		ID: "q_match", Variant: VariantMatching, DifficultyLevel: 2,
		Matching: &Matching{
			LeftItems:  []MatchItem{{ID: "l1", Text: "big"}},
			RightItems: []MatchItem{{ID: "r1", Text: "small"}},
			CorrectMatches: []MatchPair{
				{LeftID: "l1", RightID: "r1"},
				{LeftID: "l1", RightID: "r1"},
			},
		},
	}
	err := q.CheckIntegrity()
	if err == nil || !strings.Contains(err.Error(), "mapped twice") {
		t.Fatalf("err = %v, want double mapping", err)
	}

	q.Matching.CorrectMatches = []MatchPair{{LeftID: "l2", RightID: "r1"}}
	if err := q.CheckIntegrity(); err == nil {
		t.Fatal("expected error for unknown left id")
	}
}

func TestVariantKnown(t *testing.T) {
	for _, v := range AllVariants {
		if !v.Known() {
			t.Errorf("%s should be known", v)
		}
	}
	if Variant("essay").Known() {
		t.Error("essay should not be known")
	}
}
