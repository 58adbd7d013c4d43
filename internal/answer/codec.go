package answer

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Composite answers travel through the single answer channel as JSON
// strings. The codec is the only place that parses that transport form;
// the validator and the UI widgets work with the structured types below.

// Selection is a multi-choice answer: the set of selected option ids.
type Selection []string

// GapAnswers maps gap position to the learner's text for that gap.
type GapAnswers map[int]string

// MatchAnswers maps a left item id to the chosen right item id.
type MatchAnswers map[string]string

// DecodeError reports a malformed composite-answer transport string.
// The validator treats it as an incorrect answer, never as a failure.
type DecodeError struct {
	Shape string // "selection", "gaps", or "matches"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s answer: %v", e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeSelection serializes a multi-choice selection. Ids are sorted so
// the transport form is deterministic regardless of selection order.
func EncodeSelection(sel Selection) string {
	ids := make([]string, len(sel))
	copy(ids, sel)
	sort.Strings(ids)
	return mustMarshal(ids)
}

// DecodeSelection parses a multi-choice selection.
func DecodeSelection(raw string) (Selection, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, &DecodeError{Shape: "selection", Err: err}
	}
	return ids, nil
}

// EncodeGaps serializes per-gap answers. JSON object keys are the decimal
// gap positions.
func EncodeGaps(gaps GapAnswers) string {
	m := make(map[string]string, len(gaps))
	for pos, v := range gaps {
		m[strconv.Itoa(pos)] = v
	}
	return mustMarshal(m)
}

// DecodeGaps parses per-gap answers. Non-numeric keys are a decode error.
func DecodeGaps(raw string) (GapAnswers, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, &DecodeError{Shape: "gaps", Err: err}
	}
	gaps := make(GapAnswers, len(m))
	for k, v := range m {
		pos, err := strconv.Atoi(k)
		if err != nil {
			return nil, &DecodeError{Shape: "gaps", Err: fmt.Errorf("position %q is not a number", k)}
		}
		gaps[pos] = v
	}
	return gaps, nil
}

// EncodeMatches serializes a left-to-right pairing.
func EncodeMatches(matches MatchAnswers) string {
	return mustMarshal(map[string]string(matches))
}

// DecodeMatches parses a left-to-right pairing.
func DecodeMatches(raw string) (MatchAnswers, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, &DecodeError{Shape: "matches", Err: err}
	}
	return m, nil
}

// mustMarshal is safe for the codec's input types: maps and slices of
// strings never fail to marshal.
func mustMarshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
