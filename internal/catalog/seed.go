package catalog

import (
	"time"

	"github.com/ifedorova/langdrill/internal/question"
)

var seedTime = time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

// Demo returns the built-in demo catalog: one question per variant, so
// `langdrill play` works with no catalog file. The slice is freshly
// allocated on each call.
func Demo() []question.Question {
	return []question.Question{
		{
			ID: "q_lex_001", Variant: question.VariantLexicalFix,
			Prompt:          "One word in this sentence is wrong. Type the correct word.",
			DifficultyLevel: 2,
			Hint:            "Third person singular needs an ending.",
			Explanation:     "With he/she/it the verb takes -es: \"she goes\".",
			GrammarPoints:   []string{"present_simple"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			LexicalFix: &question.LexicalFix{
				Sentence:    "Every morning she go to school by bus.",
				WrongWord:   "go",
				CorrectWord: "goes",
			},
		},
		{
			ID: "q_gram_001", Variant: question.VariantGrammarTransform,
			Prompt:          "Rewrite the sentence in the passive voice.",
			DifficultyLevel: 5,
			Explanation:     "Passive: object + be + past participle.",
			GrammarPoints:   []string{"passive_voice"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			GrammarTransform: &question.GrammarTransform{
				SourceSentence: "They built this bridge in 1901.",
				Instruction:    "Use the passive voice.",
				CorrectAnswer:  "This bridge was built in 1901.",
				AlternativeAnswers: []string{
					"This bridge was built in 1901",
					"The bridge was built in 1901.",
				},
			},
		},
		{
			ID: "q_puz_001", Variant: question.VariantSentencePuzzle,
			Prompt:          "Put the words in the right order.",
			DifficultyLevel: 3,
			GrammarPoints:   []string{"word_order"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			SentencePuzzle: &question.SentencePuzzle{
				Words:           []string{"learning", "am", "English", "I"},
				CorrectSentence: "I am learning English",
			},
		},
		{
			ID: "q_tr_001", Variant: question.VariantTranslate,
			Prompt:          "Translate into English.",
			DifficultyLevel: 4,
			VocabularyIDs:   []string{"voc_library"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			Translate: &question.Translation{
				SourceText:         "La biblioteca está cerca de la estación.",
				CorrectTranslation: "The library is near the station.",
				AlternativeTranslations: []string{
					"The library is close to the station.",
				},
			},
		},
		{
			ID: "q_rtr_001", Variant: question.VariantReverseTranslate,
			Prompt:          "Translate into Spanish.",
			DifficultyLevel: 4,
			VocabularyIDs:   []string{"voc_window"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			ReverseTranslate: &question.Translation{
				SourceText:         "Please open the window.",
				CorrectTranslation: "Por favor abre la ventana.",
				AlternativeTranslations: []string{
					"Por favor, abre la ventana.",
					"Abre la ventana por favor.",
				},
			},
		},
		{
			ID: "q_gap_001", Variant: question.VariantGapFill,
			Prompt:          "Fill in each gap.",
			DifficultyLevel: 3,
			Hint:            "Both verbs are present simple.",
			GrammarPoints:   []string{"present_simple"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			GapFill: &question.GapFill{
				Text: "She ___ to work early and ___ coffee on the way.",
				Gaps: []question.Gap{
					{Position: 0, CorrectAnswer: "goes"},
					{Position: 1, CorrectAnswer: "buys", AlternativeAnswers: []string{"purchases"}},
				},
			},
		},
		{
			ID: "q_cho_001", Variant: question.VariantChoiceOne,
			Prompt:          "Choose the correct article.",
			DifficultyLevel: 1,
			Explanation:     "\"University\" starts with a consonant sound /j/.",
			GrammarPoints:   []string{"articles"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			ChoiceOne: &question.ChoiceOne{
				Options: []question.Option{
					{ID: "opt_001", Text: "a university"},
					{ID: "opt_002", Text: "an university"},
					{ID: "opt_003", Text: "the an university"},
				},
				CorrectOptionID: "opt_001",
			},
		},
		{
			ID: "q_mul_001", Variant: question.VariantChoiceMulti,
			Prompt:          "Select every uncountable noun.",
			DifficultyLevel: 4,
			GrammarPoints:   []string{"countability"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			ChoiceMulti: &question.ChoiceMulti{
				Options: []question.Option{
					{ID: "opt_m01", Text: "water"},
					{ID: "opt_m02", Text: "advice"},
					{ID: "opt_m03", Text: "apple"},
					{ID: "opt_m04", Text: "furniture"},
					{ID: "opt_m05", Text: "chair"},
				},
				CorrectOptionIDs: []string{"opt_m01", "opt_m02", "opt_m04"},
				MinSelections:    2,
				MaxSelections:    4,
			},
		},
		{
			ID: "q_mat_001", Variant: question.VariantMatching,
			Prompt:          "Match each word with its opposite.",
			DifficultyLevel: 2,
			VocabularyIDs:   []string{"voc_adjectives"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			Matching: &question.Matching{
				LeftItems: []question.MatchItem{
					{ID: "left_01", Text: "big"},
					{ID: "left_02", Text: "fast"},
					{ID: "left_03", Text: "hot"},
					{ID: "left_04", Text: "early"},
				},
				RightItems: []question.MatchItem{
					{ID: "right_01", Text: "slow"},
					{ID: "right_02", Text: "small"},
					{ID: "right_03", Text: "cold"},
					{ID: "right_04", Text: "late"},
				},
				CorrectMatches: []question.MatchPair{
					{LeftID: "left_01", RightID: "right_02"},
					{LeftID: "left_02", RightID: "right_01"},
					{LeftID: "left_03", RightID: "right_03"},
					{LeftID: "left_04", RightID: "right_04"},
				},
			},
		},
		{
			ID: "q_tf_001", Variant: question.VariantTrueFalse,
			Prompt:          "True or false?",
			DifficultyLevel: 2,
			Explanation:     "\"Children\" is already plural; \"childs\" is never correct.",
			GrammarPoints:   []string{"plurals"},
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			TrueFalse: &question.TrueFalse{
				Statement:     "The plural of \"child\" is \"children\".",
				CorrectAnswer: true,
			},
		},
		{
			ID: "q_dic_001", Variant: question.VariantDictation,
			Prompt:          "Listen and type what you hear.",
			DifficultyLevel: 6,
			CreatedAt:       seedTime, UpdatedAt: seedTime,
			Dictation: &question.Dictation{
				AudioRef:             "audio/dictation_001.mp3",
				CorrectTranscription: "The weather was lovely last weekend.",
			},
		},
	}
}
