package session

import (
	"github.com/ifedorova/langdrill/internal/answer"
	"github.com/ifedorova/langdrill/internal/question"
)

// AnswerRecord is one entry in the session's append-only answer log.
// Records are created at submit time and never mutated or removed.
type AnswerRecord struct {
	QuestionID string
	RawAnswer  string
	IsCorrect  bool
}

// Score is derived from the answer log on demand, never stored.
type Score struct {
	Answered     int
	CorrectCount int
	Accuracy     float64 // CorrectCount / Answered, 0 when the log is empty
}

// Engine is the linear session state machine. It owns a fixed, ordered
// question subset supplied by the caller, the current position, the
// per-question submission gate, and the answer log.
//
// Lifecycle: Active(0, unsubmitted) at construction; Submit flips the
// submitted flag for the current index; Advance moves forward and, past
// the last index, transitions to Completed. Retreat moves backward and
// re-opens submission for the revisited question, so resubmitting there
// appends a new record rather than overwriting the old one.
//
// The engine is driven by a single control flow; it does no locking.
type Engine struct {
	questions []question.Question
	index     int
	submitted bool
	completed bool
	records   []AnswerRecord
}

// NewEngine creates an engine over qs. The slice is used as-is and must
// not be mutated by the caller afterwards.
func NewEngine(qs []question.Question) (*Engine, error) {
	if len(qs) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	return &Engine{questions: qs}, nil
}

// Current returns the question at the current position, or nil once the
// session is completed.
func (e *Engine) Current() *question.Question {
	if e.completed {
		return nil
	}
	return &e.questions[e.index]
}

// Index returns the current zero-based position.
func (e *Engine) Index() int { return e.index }

// Len returns the number of questions in the session.
func (e *Engine) Len() int { return len(e.questions) }

// Submitted reports whether the current question already has a verdict.
func (e *Engine) Submitted() bool { return e.submitted }

// Completed reports whether Advance has moved past the last question.
func (e *Engine) Completed() bool { return e.completed }

// CanSubmit runs the variant-specific completeness gate for the current
// question. audioPlays is the external replay counter (dictation only).
func (e *Engine) CanSubmit(raw string, audioPlays int) bool {
	if e.completed || e.submitted {
		return false
	}
	return answer.CanSubmit(&e.questions[e.index], raw, audioPlays)
}

// Submit grades raw against the current question, appends an AnswerRecord,
// and closes the current index for further submission. At most one record
// is appended per index per forward pass. Returns the verdict.
func (e *Engine) Submit(raw string, audioPlays int) (bool, error) {
	if e.completed {
		return false, conflict("submit", "session is completed")
	}
	if e.submitted {
		return false, conflict("submit", "current question already submitted")
	}
	q := &e.questions[e.index]
	if !answer.CanSubmit(q, raw, audioPlays) {
		return false, conflict("submit", "answer is incomplete")
	}

	correct := answer.Validate(q, raw)
	e.records = append(e.records, AnswerRecord{
		QuestionID: q.ID,
		RawAnswer:  raw,
		IsCorrect:  correct,
	})
	e.submitted = true
	return correct, nil
}

// Advance moves to the next question, or to the Completed state when the
// current index is the last. The caller must reset its pending answer
// buffer after a successful Advance.
func (e *Engine) Advance() error {
	if e.completed {
		return conflict("advance", "session is completed")
	}
	if !e.submitted {
		return conflict("advance", "current question not submitted")
	}
	if e.index == len(e.questions)-1 {
		e.completed = true
		return nil
	}
	e.index++
	e.submitted = false
	return nil
}

// Retreat moves back one question. Earlier records stay in the log;
// resubmitting the revisited question appends a new record.
func (e *Engine) Retreat() error {
	if e.completed {
		return conflict("retreat", "session is completed")
	}
	if e.index == 0 {
		return conflict("retreat", "already at the first question")
	}
	e.index--
	e.submitted = false
	return nil
}

// Records returns the append-only answer log. The returned slice must be
// treated as read-only.
func (e *Engine) Records() []AnswerRecord {
	return e.records
}

// Score derives the running score from the full answer log, duplicates
// from revisits included.
func (e *Engine) Score() Score {
	s := Score{Answered: len(e.records)}
	for _, r := range e.records {
		if r.IsCorrect {
			s.CorrectCount++
		}
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.CorrectCount) / float64(s.Answered)
	}
	return s
}
