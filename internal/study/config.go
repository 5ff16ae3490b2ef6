package study

import (
	"os"
	"strconv"
)

// Config holds the grading policy constants. The defaults are the
// shipped behavior; every threshold can be overridden via CSBOT_SCORE_*
// environment variables for tuning without a rebuild.
type Config struct {
	// KeywordThreshold is the minimum keyword-match ratio for a
	// free-text answer to count as correct.
	KeywordThreshold float64

	// SpecialKeywordThreshold replaces KeywordThreshold for topics
	// listed in SpecialTopics. Lower, because reference answers for
	// those topics tend to be long enumerations a learner rarely
	// reproduces in full.
	SpecialKeywordThreshold float64

	// SpecialTopics are the topics graded with SpecialKeywordThreshold.
	SpecialTopics []string

	// JaccardThreshold is the minimum Jaccard index of two
	// whitespace-tokenized word sets for the strings to be similar.
	JaccardThreshold float64

	// LongAnswerMinChars and LongAnswerMinTerms gate the leniency rule
	// for long explanatory answers: a submission longer than
	// LongAnswerMinChars containing at least LongAnswerMinTerms
	// recognized domain terms passes regardless of keyword ratio.
	LongAnswerMinChars int
	LongAnswerMinTerms int

	// IntermediateRatio and AdvancedRatio are the inclusive lower
	// bounds of the intermediate and advanced levels.
	IntermediateRatio float64
	AdvancedRatio     float64
}

// DefaultConfig returns the shipped grading policy.
func DefaultConfig() Config {
	return Config{
		KeywordThreshold:        0.5,
		SpecialKeywordThreshold: 0.25,
		SpecialTopics:           []string{"network"},
		JaccardThreshold:        0.3,
		LongAnswerMinChars:      100,
		LongAnswerMinTerms:      3,
		IntermediateRatio:       0.40,
		AdvancedRatio:           0.75,
	}
}

// ConfigFromEnv returns DefaultConfig with any CSBOT_SCORE_* overrides
// applied. Unset or malformed variables keep the default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	envFloat("CSBOT_SCORE_KEYWORD_THRESHOLD", &cfg.KeywordThreshold)
	envFloat("CSBOT_SCORE_SPECIAL_KEYWORD_THRESHOLD", &cfg.SpecialKeywordThreshold)
	envFloat("CSBOT_SCORE_JACCARD_THRESHOLD", &cfg.JaccardThreshold)
	envInt("CSBOT_SCORE_LONG_ANSWER_MIN_CHARS", &cfg.LongAnswerMinChars)
	envInt("CSBOT_SCORE_LONG_ANSWER_MIN_TERMS", &cfg.LongAnswerMinTerms)
	envFloat("CSBOT_SCORE_INTERMEDIATE_RATIO", &cfg.IntermediateRatio)
	envFloat("CSBOT_SCORE_ADVANCED_RATIO", &cfg.AdvancedRatio)
	return cfg
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
