package session

import (
	"github.com/google/uuid"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Mode is the current stage of a user's guided study session.
type Mode string

const (
	ModeNone                Mode = "NONE"
	ModeSelectingTopic      Mode = "SELECTING_TOPIC"
	ModeSelectingLevelCheck Mode = "SELECTING_LEVEL_CHECK"
	ModeSelfAssessment      Mode = "SELF_ASSESSMENT"
	ModeLevelTest           Mode = "LEVEL_TEST"
	ModeLearningCompleted   Mode = "LEARNING_COMPLETED"
	ModeQuiz                Mode = "QUIZ"
	ModeAfterQuiz           Mode = "AFTER_QUIZ"
	ModeInterview           Mode = "INTERVIEW"
)

// Session is the complete conversation state for one user. It lives
// only in memory and is never persisted. A Session is not safe for
// concurrent use; the engine serializes all inputs for one user.
type Session struct {
	// ID uniquely identifies this session instance. A restart allocates
	// a new Session and therefore a new ID, which keeps log lines from
	// different study cycles of the same user distinguishable.
	ID string

	// UserID is the opaque chat-platform identity keying this session.
	UserID string

	// Mode governs which input-handling branch applies.
	Mode Mode

	// Topic is the selected subject, one of study.Topics.
	Topic string

	// Tags are the sub-concepts extracted from the topic explanation,
	// consumed by free-question routing.
	Tags []string

	// Subtopics is the study roadmap shown after the explanation. The
	// first entry scopes the mock interview.
	Subtopics []study.Subtopic

	// UserLevel is set by self-report or by grading the level test.
	UserLevel study.Level

	// TestQuestions holds the current level-test questions. Immutable
	// once generated until grading completes.
	TestQuestions []study.Question

	// QuizQuestions holds the current quiz questions.
	QuizQuestions []study.Question

	// InterviewQuestions plus InterviewIndex support stepping through
	// mock-interview questions one at a time.
	InterviewQuestions []study.InterviewQuestion
	InterviewIndex     int

	pending map[int]string
}

// New returns a fresh Session for userID in ModeNone.
func New(userID string) *Session {
	return &Session{
		ID:      uuid.NewString(),
		UserID:  userID,
		Mode:    ModeNone,
		pending: make(map[int]string),
	}
}

// SelectTopic records a new topic choice and clears every field derived
// from the previous topic so nothing leaks across topic cycles.
func (s *Session) SelectTopic(topic string) {
	s.Topic = topic
	s.Tags = nil
	s.Subtopics = nil
	s.UserLevel = ""
	s.TestQuestions = nil
	s.QuizQuestions = nil
	s.InterviewQuestions = nil
	s.InterviewIndex = 0
	s.ClearPending()
}

// SetPendingAnswer stores an answer for the zero-based question index.
// Button events and bulk text parsing both write through here; the most
// recent write for an index wins. Inputs for one user are serialized
// by the dispatcher, so a plain overwrite preserves arrival order.
func (s *Session) SetPendingAnswer(index int, answer string) {
	if s.pending == nil {
		s.pending = make(map[int]string)
	}
	s.pending[index] = answer
}

// PendingAnswers returns a copy of the accumulated answers keyed by
// question index.
func (s *Session) PendingAnswers() map[int]string {
	out := make(map[int]string, len(s.pending))
	for i, v := range s.pending {
		out[i] = v
	}
	return out
}

// PendingCount returns the number of answers accumulated so far.
func (s *Session) PendingCount() int {
	return len(s.pending)
}

// ClearPending discards all accumulated answers. Called after grading
// and on every topic or question-set reset.
func (s *Session) ClearPending() {
	s.pending = make(map[int]string)
}
