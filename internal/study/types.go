package study

import "strings"

// Level classifies a learner's proficiency in a topic.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ParseLevel maps a user-typed label to a Level. Matching is
// case-insensitive against the canonical labels only.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LevelBeginner):
		return LevelBeginner, true
	case string(LevelIntermediate):
		return LevelIntermediate, true
	case string(LevelAdvanced):
		return LevelAdvanced, true
	}
	return "", false
}

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	// TypeBoolean is a true/false question answered with "O" or "X".
	TypeBoolean QuestionType = "boolean"

	// TypeChoice is a multiple-choice question answered with an
	// option letter (A-D), a 1-based index, or the option's text.
	TypeChoice QuestionType = "choice"

	// TypeFree is a free-text question graded by keyword overlap
	// against a reference answer.
	TypeFree QuestionType = "free"
)

// Question is a single graded question in a level test or quiz.
type Question struct {
	// Type indicates how the question is answered and graded.
	Type QuestionType

	// Text is the question prompt displayed to the learner.
	Text string

	// Options is populated only when Type is TypeChoice. Ordered and
	// index-addressable: Options[0] is option A, Options[1] is B, etc.
	Options []string

	// Answer is the canonical correct answer.
	// Boolean: "O" or "X". Choice: the option letter ("A"-"D").
	// Free: the reference answer text.
	Answer string

	// Level optionally tags the difficulty the question probes.
	// Set on level-test questions, empty on quiz questions.
	Level Level

	// Topic is the subject the question belongs to. Grading policy
	// (special-topic thresholds) keys off this field.
	Topic string

	// Tag optionally names the sub-concept the question covers.
	Tag string
}

// OptionLetter returns the display letter for a zero-based option
// index ("A" for 0, "B" for 1, ...).
func OptionLetter(i int) string {
	if i < 0 || i >= 26 {
		return ""
	}
	return string(rune('A' + i))
}

// LetterIndex is the inverse of OptionLetter. Returns -1 for anything
// that is not a single ASCII letter.
func LetterIndex(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'Z' {
		return -1
	}
	return int(s[0] - 'A')
}

// InterviewQuestion pairs a mock-interview question with the model
// answer revealed after the learner responds.
type InterviewQuestion struct {
	Question    string
	ModelAnswer string
}

// Subtopic is one entry of a topic's study roadmap: a sub-concept
// worth studying next, with a one-line description. The first roadmap
// entry scopes the mock interview.
type Subtopic struct {
	Title       string
	Description string
}

// Topics is the closed set of studyable subjects. Topic selection
// matches against these keys exactly.
var Topics = []string{
	"network",
	"os",
	"database",
	"data-structures",
	"algorithms",
	"web",
}

// ValidTopic reports whether s names a supported topic.
func ValidTopic(s string) bool {
	for _, t := range Topics {
		if s == t {
			return true
		}
	}
	return false
}
