package study

import (
	"strconv"
	"strings"
)

// Scorer grades submitted answers against their questions.
// All methods are safe for concurrent use.
type Scorer struct {
	cfg Config
}

// NewScorer returns a Scorer applying the given policy.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Check grades one submitted answer against q, dispatching on the
// question type.
func (s *Scorer) Check(q Question, submitted string) bool {
	switch q.Type {
	case TypeBoolean:
		return s.CheckBoolean(submitted, q.Answer)
	case TypeChoice:
		return s.CheckChoice(submitted, q)
	case TypeFree:
		return s.CheckFreeText(q.Topic, submitted, q.Answer)
	}
	return false
}

// CheckBoolean grades an O/X answer: exact case-insensitive match of
// the single token.
func (s *Scorer) CheckBoolean(submitted, correct string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(correct))
}

// CheckChoice grades a multiple-choice answer. Accepted forms:
// the option letter ("C"), a 1-based index ("3" for the third option),
// or text containment in either direction against the correct option's
// displayed text, so a learner who types the option's content instead
// of its letter still scores.
func (s *Scorer) CheckChoice(submitted string, q Question) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	if strings.EqualFold(submitted, strings.TrimSpace(q.Answer)) {
		return true
	}

	if idx, err := strconv.Atoi(submitted); err == nil {
		return idx >= 1 && idx <= len(q.Options) &&
			strings.EqualFold(OptionLetter(idx-1), strings.TrimSpace(q.Answer))
	}

	// A bare letter is an option selection. It already failed the exact
	// comparison above, so it is wrong no matter what the correct
	// option's text happens to contain.
	if LetterIndex(submitted) >= 0 {
		return false
	}

	correctIdx := LetterIndex(q.Answer)
	if correctIdx < 0 || correctIdx >= len(q.Options) {
		return false
	}
	optText := strings.ToLower(strings.TrimSpace(q.Options[correctIdx]))
	sub := strings.ToLower(submitted)
	if optText == "" {
		return false
	}
	return strings.Contains(optText, sub) || strings.Contains(sub, optText)
}

// CheckFreeText grades a free-text answer against the reference text.
// A submission is correct if the whole strings are similar, if the
// keyword-match ratio clears the topic's threshold, or if the
// long-answer leniency rule applies.
func (s *Scorer) CheckFreeText(topic, submitted, reference string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	if s.Similar(submitted, reference) {
		return true
	}

	refKeywords := ExtractKeywords(reference)
	if len(refKeywords) > 0 {
		subKeywords := ExtractKeywords(submitted)
		matched := 0
		for _, rk := range refKeywords {
			for _, sk := range subKeywords {
				if s.Similar(rk, sk) {
					matched++
					break
				}
			}
		}
		ratio := float64(matched) / float64(len(refKeywords))
		if ratio >= s.keywordThreshold(topic) {
			return true
		}
	}

	return len(submitted) > s.cfg.LongAnswerMinChars &&
		countDomainTerms(submitted) >= s.cfg.LongAnswerMinTerms
}

// Similar reports whether two free-text strings are close enough to be
// interchangeable for grading: case-insensitively equal, one contains
// the other, or the Jaccard index of their word sets clears the
// configured threshold.
func (s *Scorer) Similar(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return jaccard(a, b) >= s.cfg.JaccardThreshold
}

func (s *Scorer) keywordThreshold(topic string) float64 {
	for _, t := range s.cfg.SpecialTopics {
		if t == topic {
			return s.cfg.SpecialKeywordThreshold
		}
	}
	return s.cfg.KeywordThreshold
}

// GradeResult is the outcome of grading one question set.
type GradeResult struct {
	// Correct is the number of correctly answered questions.
	Correct int

	// Total is the number of questions graded.
	Total int

	// PerQuestion holds the verdict for each question in order.
	// Unanswered questions are false.
	PerQuestion []bool
}

// Grade scores every question against the submitted answers, keyed by
// zero-based question index. Missing answers count as incorrect.
func (s *Scorer) Grade(questions []Question, answers map[int]string) GradeResult {
	res := GradeResult{
		Total:       len(questions),
		PerQuestion: make([]bool, len(questions)),
	}
	for i, q := range questions {
		ans, ok := answers[i]
		if !ok {
			continue
		}
		if s.Check(q, ans) {
			res.PerQuestion[i] = true
			res.Correct++
		}
	}
	return res
}
