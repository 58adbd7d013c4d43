package session

import (
	"time"

	"github.com/ifedorova/langdrill/internal/question"
)

// VariantResult tracks per-variant performance within a single session.
type VariantResult struct {
	Variant   question.Variant
	Attempted int
	Correct   int
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration       time.Duration
	TotalAnswered  int
	TotalCorrect   int
	Accuracy       float64
	VariantResults []VariantResult
}

// BuildSummary derives a Summary from the engine's answer log. Variant
// results appear in order of first occurrence in the log.
func BuildSummary(e *Engine, elapsed time.Duration) *Summary {
	byID := make(map[string]question.Variant, len(e.questions))
	for _, q := range e.questions {
		byID[q.ID] = q.Variant
	}

	var results []VariantResult
	idx := make(map[question.Variant]int)
	for _, rec := range e.records {
		v := byID[rec.QuestionID]
		i, ok := idx[v]
		if !ok {
			i = len(results)
			idx[v] = i
			results = append(results, VariantResult{Variant: v})
		}
		results[i].Attempted++
		if rec.IsCorrect {
			results[i].Correct++
		}
	}

	score := e.Score()
	return &Summary{
		Duration:       elapsed,
		TotalAnswered:  score.Answered,
		TotalCorrect:   score.CorrectCount,
		Accuracy:       score.Accuracy,
		VariantResults: results,
	}
}
