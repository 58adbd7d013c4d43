package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData records a session lifecycle event (start or end).
type SessionEventData struct {
	SessionID         string
	Action            string // "start" or "end"
	CatalogSize       int    // questions in the session (on start)
	QuestionsAnswered int    // answer log length (on end)
	CorrectAnswers    int    // correct entries in the log (on end)
	DurationSecs      int    // wall clock duration (on end)
}

// AnswerEventData records one graded submission.
type AnswerEventData struct {
	SessionID     string
	QuestionID    string
	Variant       string
	Prompt        string
	Expected      string // display form of the ground truth
	Given         string // raw answer as submitted
	Correct       bool
	TimeMs        int
	QuestionIndex int // position in the session at submit time
}

// SessionSummaryRecord is a joined start/end view of one session, for the
// history screen and the stats command.
type SessionSummaryRecord struct {
	SessionID         string
	StartedAt         time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
	Finished          bool
}

// AnswerRecord is a stored answer event as read back from the log.
type AnswerRecord struct {
	Sequence   int64
	Timestamp  time.Time
	SessionID  string
	QuestionID string
	Variant    string
	Prompt     string
	Expected   string
	Given      string
	Correct    bool
	TimeMs     int
}

// VariantStat aggregates historical accuracy for one variant.
type VariantStat struct {
	Variant  string
	Attempts int
	Correct  int
}

// EventRepo provides append and query access to the history event log.
// Events are append-only; nothing updates or deletes them short of a
// full reset.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionSummaries returns finished and unfinished sessions,
	// newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// QueryAnswers returns answer events for one session in submit order.
	QueryAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// VariantStats aggregates attempts and correct counts per variant
	// over the whole log.
	VariantStats(ctx context.Context) ([]VariantStat, error)
}
