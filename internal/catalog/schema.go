package catalog

// catalogSchema is the JSON Schema for a catalog file: an ordered array of
// question records. Structural checks live here; referential integrity
// (ids pointing into the question's own lists) is checked in Go after
// decoding, where the error messages can name the offending question.
var catalogSchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"$ref": "#/$defs/question"},
	"$defs": map[string]any{
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
				"variant": map[string]any{
					"type": "string",
					"enum": []any{
						"lexical_fix", "grammar_transformation", "sentence_puzzle",
						"translate", "reverse_translation", "gap_fill",
						"choice_one", "choice_multi", "matching",
						"true_false", "dictation",
					},
				},
				"prompt":           map[string]any{"type": "string"},
				"difficulty_level": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
				"hint":             map[string]any{"type": "string"},
				"explanation":      map[string]any{"type": "string"},
				"vocabulary_item_ids": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"},
				},
				"grammar_points": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"},
				},
				"created_at": map[string]any{"type": "string"},
				"updated_at": map[string]any{"type": "string"},

				"lexical_fix":            map[string]any{"$ref": "#/$defs/lexicalFix"},
				"grammar_transformation": map[string]any{"$ref": "#/$defs/grammarTransformation"},
				"sentence_puzzle":        map[string]any{"$ref": "#/$defs/sentencePuzzle"},
				"translate":              map[string]any{"$ref": "#/$defs/translation"},
				"reverse_translation":    map[string]any{"$ref": "#/$defs/translation"},
				"gap_fill":               map[string]any{"$ref": "#/$defs/gapFill"},
				"choice_one":             map[string]any{"$ref": "#/$defs/choiceOne"},
				"choice_multi":           map[string]any{"$ref": "#/$defs/choiceMulti"},
				"matching":               map[string]any{"$ref": "#/$defs/matching"},
				"true_false":             map[string]any{"$ref": "#/$defs/trueFalse"},
				"dictation":              map[string]any{"$ref": "#/$defs/dictation"},
			},
			"required": []any{"id", "variant", "prompt", "difficulty_level"},
		},
		"lexicalFix": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence":     map[string]any{"type": "string"},
				"wrong_word":   map[string]any{"type": "string"},
				"correct_word": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"sentence", "correct_word"},
		},
		"grammarTransformation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"source_sentence": map[string]any{"type": "string"},
				"instruction":     map[string]any{"type": "string"},
				"correct_answer":  map[string]any{"type": "string", "minLength": 1},
				"alternative_answers": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"source_sentence", "correct_answer"},
		},
		"sentencePuzzle": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1,
				},
				"correct_sentence": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"words", "correct_sentence"},
		},
		"translation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"source_text":         map[string]any{"type": "string"},
				"correct_translation": map[string]any{"type": "string", "minLength": 1},
				"alternative_translations": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"source_text", "correct_translation"},
		},
		"gapFill": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
				"gaps": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"position":       map[string]any{"type": "integer", "minimum": 0},
							"correct_answer": map[string]any{"type": "string", "minLength": 1},
							"alternative_answers": map[string]any{
								"type": "array", "items": map[string]any{"type": "string"},
							},
						},
						"required": []any{"position", "correct_answer"},
					},
				},
			},
			"required": []any{"text", "gaps"},
		},
		"option": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"text": map[string]any{"type": "string"},
			},
			"required": []any{"id", "text"},
		},
		"choiceOne": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"options": map[string]any{
					"type": "array", "items": map[string]any{"$ref": "#/$defs/option"}, "minItems": 2,
				},
				"correct_option_id": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"options", "correct_option_id"},
		},
		"choiceMulti": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"options": map[string]any{
					"type": "array", "items": map[string]any{"$ref": "#/$defs/option"}, "minItems": 2,
				},
				"correct_option_ids": map[string]any{
					"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1,
				},
				"min_selections": map[string]any{"type": "integer", "minimum": 0},
				"max_selections": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"options", "correct_option_ids"},
		},
		"matchItem": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"text": map[string]any{"type": "string"},
			},
			"required": []any{"id", "text"},
		},
		"matching": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"left_items": map[string]any{
					"type": "array", "items": map[string]any{"$ref": "#/$defs/matchItem"}, "minItems": 1,
				},
				"right_items": map[string]any{
					"type": "array", "items": map[string]any{"$ref": "#/$defs/matchItem"}, "minItems": 1,
				},
				"correct_matches": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"left_id":  map[string]any{"type": "string", "minLength": 1},
							"right_id": map[string]any{"type": "string", "minLength": 1},
						},
						"required": []any{"left_id", "right_id"},
					},
				},
			},
			"required": []any{"left_items", "right_items", "correct_matches"},
		},
		"trueFalse": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"statement":      map[string]any{"type": "string", "minLength": 1},
				"correct_answer": map[string]any{"type": "boolean"},
			},
			"required": []any{"statement", "correct_answer"},
		},
		"dictation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"audio_ref":             map[string]any{"type": "string"},
				"correct_transcription": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"correct_transcription"},
		},
	},
}
