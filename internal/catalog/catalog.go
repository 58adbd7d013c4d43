package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ifedorova/langdrill/internal/question"
)

// compileOnce caches the compiled catalog schema for the process lifetime.
var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads and validates a catalog file, returning its ordered question
// sequence.
func Load(path string) ([]question.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	qs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return qs, nil
}

// Parse validates raw JSON against the catalog schema, decodes it, and
// runs per-question integrity checks.
func Parse(data []byte) ([]question.Question, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var qs []question.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	seen := make(map[string]bool, len(qs))
	for i := range qs {
		q := &qs[i]
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if err := q.CheckIntegrity(); err != nil {
			return nil, err
		}
	}
	return qs, nil
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip the Go map
		// to normalize ints and nested types.
		raw, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Filter narrows a catalog to the subset handed to the session engine.
// Zero values leave the corresponding dimension unfiltered.
type Filter struct {
	Variants []question.Variant
	MinLevel int
	MaxLevel int
	Limit    int
}

// Apply returns the questions passing the filter, preserving catalog order.
func (f Filter) Apply(qs []question.Question) []question.Question {
	var out []question.Question
	for _, q := range qs {
		if len(f.Variants) > 0 && !containsVariant(f.Variants, q.Variant) {
			continue
		}
		if f.MinLevel > 0 && q.DifficultyLevel < f.MinLevel {
			continue
		}
		if f.MaxLevel > 0 && q.DifficultyLevel > f.MaxLevel {
			continue
		}
		out = append(out, q)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

func containsVariant(vs []question.Variant, v question.Variant) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}
