package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// migrate creates the event tables. The log is append-only, so there are
// no versioned migrations; new columns arrive with defaults.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS session_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			ts INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			action TEXT NOT NULL,
			catalog_size INTEGER NOT NULL DEFAULT 0,
			questions_answered INTEGER NOT NULL DEFAULT 0,
			correct_answers INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_events_session ON session_events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_session_events_action ON session_events(action)`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			ts INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			prompt TEXT NOT NULL,
			expected TEXT NOT NULL,
			given TEXT NOT NULL,
			correct INTEGER NOT NULL,
			time_ms INTEGER NOT NULL DEFAULT 0,
			question_index INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_answer_events_variant ON answer_events(variant)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// sequenceCounter assigns a single increasing sequence number to every
// event regardless of type. Per-table auto-increment ids can't order
// events across tables; the shared counter can (did the answer land
// before or after the session end?). The mutex serializes within the
// process; the RETURNING clause makes the increment atomic in the
// database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type sqlRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func newSQLRepo(db *sql.DB) (*sqlRepo, error) {
	seq, err := newSequenceCounter(db)
	if err != nil {
		return nil, err
	}
	return &sqlRepo{db: db, seq: seq}, nil
}

func (r *sqlRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
			(sequence, ts, session_id, action, catalog_size, questions_answered, correct_answers, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().Unix(), data.SessionID, data.Action,
		data.CatalogSize, data.QuestionsAnswered, data.CorrectAnswers, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

func (r *sqlRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, ts, session_id, question_id, variant, prompt, expected, given, correct, time_ms, question_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().Unix(), data.SessionID, data.QuestionID, data.Variant,
		data.Prompt, data.Expected, data.Given, boolToInt(data.Correct),
		data.TimeMs, data.QuestionIndex,
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *sqlRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.session_id, s.ts,
			COALESCE(e.questions_answered, 0),
			COALESCE(e.correct_answers, 0),
			COALESCE(e.duration_secs, 0),
			e.session_id IS NOT NULL
		FROM session_events s
		LEFT JOIN session_events e
			ON e.session_id = s.session_id AND e.action = 'end'
		WHERE s.action = 'start'
		ORDER BY s.sequence DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		var ts int64
		if err := rows.Scan(&rec.SessionID, &ts, &rec.QuestionsAnswered,
			&rec.CorrectAnswers, &rec.DurationSecs, &rec.Finished); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.StartedAt = time.Unix(ts, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sqlRepo) QueryAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, ts, session_id, question_id, variant, prompt, expected, given, correct, time_ms
		FROM answer_events
		WHERE session_id = ?
		ORDER BY sequence ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		var ts int64
		var correct int
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.QuestionID,
			&rec.Variant, &rec.Prompt, &rec.Expected, &rec.Given, &correct, &rec.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0)
		rec.Correct = correct != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sqlRepo) VariantStats(ctx context.Context) ([]VariantStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT variant, COUNT(*), SUM(correct)
		FROM answer_events
		GROUP BY variant
		ORDER BY variant`)
	if err != nil {
		return nil, fmt.Errorf("query variant stats: %w", err)
	}
	defer rows.Close()

	var out []VariantStat
	for rows.Next() {
		var st VariantStat
		if err := rows.Scan(&st.Variant, &st.Attempts, &st.Correct); err != nil {
			return nil, fmt.Errorf("scan variant stat: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
