package session

import (
	"errors"
	"testing"
	"time"

	"github.com/ifedorova/langdrill/internal/answer"
	"github.com/ifedorova/langdrill/internal/question"
)

func twoQuestionSet() []question.Question {
	return []question.Question{
		{
			ID:      "q_tf",
			Variant: question.VariantTrueFalse,
			TrueFalse: &question.TrueFalse{
				Statement:     "\"Children\" is the plural of \"child\".",
				CorrectAnswer: true,
			},
		},
		{
			ID:      "q_choice",
			Variant: question.VariantChoiceOne,
			ChoiceOne: &question.ChoiceOne{
				Options: []question.Option{
					{ID: "opt_001", Text: "a university"},
					{ID: "opt_002", Text: "an university"},
				},
				CorrectOptionID: "opt_001",
			},
		},
	}
}

func TestNewEngineEmptySet(t *testing.T) {
	_, err := NewEngine(nil)
	if !errors.Is(err, ErrEmptyQuestionSet) {
		t.Fatalf("err = %v, want ErrEmptyQuestionSet", err)
	}
}

func TestEndToEndTwoQuestionSession(t *testing.T) {
	e, err := NewEngine(twoQuestionSet())
	if err != nil {
		t.Fatal(err)
	}

	if e.Current().ID != "q_tf" {
		t.Fatalf("Current().ID = %q, want q_tf", e.Current().ID)
	}

	correct, err := e.Submit("true", 0)
	if err != nil || !correct {
		t.Fatalf("Submit(true) = %v, %v", correct, err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}

	correct, err = e.Submit("opt_001", 0)
	if err != nil || !correct {
		t.Fatalf("Submit(opt_001) = %v, %v", correct, err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}

	if !e.Completed() {
		t.Error("engine should be completed after advancing past the last index")
	}
	if e.Current() != nil {
		t.Error("Current() must be nil once completed")
	}

	score := e.Score()
	if score.Answered != 2 || score.CorrectCount != 2 {
		t.Errorf("score = %+v, want 2/2", score)
	}
	if score.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", score.Accuracy)
	}
}

func TestSubmitGateRejection(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())

	if e.CanSubmit("maybe", 0) {
		t.Error("non-boolean answer must not pass the gate")
	}
	_, err := e.Submit("maybe", 0)
	if !IsStateConflict(err) {
		t.Fatalf("err = %v, want state conflict", err)
	}
	if len(e.Records()) != 0 {
		t.Error("rejected submit must not append a record")
	}
}

func TestDoubleSubmitAppendsOneRecord(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())

	if _, err := e.Submit("true", 0); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Submit("false", 0); !IsStateConflict(err) {
		t.Fatalf("second submit err = %v, want state conflict", err)
	}
	if got := len(e.Records()); got != 1 {
		t.Errorf("records = %d, want exactly 1", got)
	}
}

func TestScoreEmptyLog(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())
	score := e.Score()
	if score.Accuracy != 0 {
		t.Errorf("accuracy on empty log = %v, want 0", score.Accuracy)
	}
}

func TestCompletedRejectsOperations(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet()[:1])
	if _, err := e.Submit("true", 0); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if !e.Completed() {
		t.Fatal("expected completed")
	}

	if _, err := e.Submit("true", 0); !IsStateConflict(err) {
		t.Error("Submit after completion must be rejected")
	}
	if err := e.Advance(); !IsStateConflict(err) {
		t.Error("Advance after completion must be rejected")
	}
	if err := e.Retreat(); !IsStateConflict(err) {
		t.Error("Retreat after completion must be rejected")
	}
}

func TestAdvanceRequiresSubmission(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())
	if err := e.Advance(); !IsStateConflict(err) {
		t.Fatalf("err = %v, want state conflict", err)
	}
}

func TestRetreatAtFirstQuestion(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())
	if err := e.Retreat(); !IsStateConflict(err) {
		t.Fatalf("err = %v, want state conflict", err)
	}
}

func TestRetreatAndResubmitAppends(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())

	if _, err := e.Submit("false", 0); err != nil {
		t.Fatal(err)
	}
	if err := e.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := e.Retreat(); err != nil {
		t.Fatal(err)
	}
	if e.Submitted() {
		t.Error("retreat must re-open submission")
	}

	if _, err := e.Submit("true", 0); err != nil {
		t.Fatal(err)
	}

	records := e.Records()
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (append-only log)", len(records))
	}
	if records[0].QuestionID != "q_tf" || records[1].QuestionID != "q_tf" {
		t.Error("both records should be for the revisited question")
	}
	if records[0].IsCorrect || !records[1].IsCorrect {
		t.Error("first record wrong, second correct")
	}

	// Accuracy counts both entries, duplicates included.
	score := e.Score()
	if score.Answered != 2 || score.CorrectCount != 1 {
		t.Errorf("score = %+v, want 1/2", score)
	}
}

func TestDictationGatePassesThroughEngine(t *testing.T) {
	qs := []question.Question{{
		ID:      "q_dict",
		Variant: question.VariantDictation,
		Dictation: &question.Dictation{
			AudioRef:             "audio/morning.mp3",
			CorrectTranscription: "Good morning, how are you?",
		},
	}}
	e, _ := NewEngine(qs)

	if e.CanSubmit("good morning, how are you?", 0) {
		t.Error("dictation must require a replay first")
	}
	if _, err := e.Submit("good morning, how are you?", 0); !IsStateConflict(err) {
		t.Fatalf("err = %v, want state conflict", err)
	}

	correct, err := e.Submit("  good morning, how are you?  ", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !correct {
		t.Error("normalized transcription should be correct")
	}
}

func TestBuildSummary(t *testing.T) {
	e, _ := NewEngine(twoQuestionSet())
	_, _ = e.Submit("true", 0)
	_ = e.Advance()
	_, _ = e.Submit("opt_002", 0)
	_ = e.Advance()

	sum := BuildSummary(e, 90*time.Second)
	if sum.TotalAnswered != 2 || sum.TotalCorrect != 1 {
		t.Errorf("summary totals = %d/%d, want 1/2", sum.TotalCorrect, sum.TotalAnswered)
	}
	if sum.Duration != 90*time.Second {
		t.Errorf("duration = %v", sum.Duration)
	}
	if len(sum.VariantResults) != 2 {
		t.Fatalf("variant results = %d, want 2", len(sum.VariantResults))
	}
	if sum.VariantResults[0].Variant != question.VariantTrueFalse {
		t.Error("variant results should be in first-occurrence order")
	}
	if sum.VariantResults[1].Correct != 0 || sum.VariantResults[1].Attempted != 1 {
		t.Errorf("choice_one result = %+v", sum.VariantResults[1])
	}
}

func TestSubmitMalformedCompositeGradesIncorrectOnlyIfGatePasses(t *testing.T) {
	qs := []question.Question{{
		ID:      "q_multi",
		Variant: question.VariantChoiceMulti,
		ChoiceMulti: &question.ChoiceMulti{
			Options:          []question.Option{{ID: "a"}, {ID: "b"}},
			CorrectOptionIDs: []string{"a"},
		},
	}}
	e, _ := NewEngine(qs)

	// Malformed transport never reaches the validator: the gate rejects it.
	if _, err := e.Submit("{{", 0); !IsStateConflict(err) {
		t.Fatalf("err = %v, want state conflict", err)
	}

	// A decodable but wrong selection is graded incorrect.
	correct, err := e.Submit(answer.EncodeSelection(answer.Selection{"b"}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if correct {
		t.Error("wrong selection must grade incorrect")
	}
}
