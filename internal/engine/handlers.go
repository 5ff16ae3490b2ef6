package engine

import (
	"context"

	"github.com/junyong1111/cs-slack-bot/internal/session"
	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// handlerFunc handles one text input for one mode. The engine has
// already dealt with the cross-state inputs (restart, free questions).
type handlerFunc func(e *Engine, ctx context.Context, s *session.Session, input string) []Message

// textHandlers is the transition table: one handler per mode. Invalid
// input for a mode re-prompts without mutating the session.
var textHandlers = map[session.Mode]handlerFunc{
	session.ModeNone:                handleNone,
	session.ModeSelectingTopic:      handleSelectingTopic,
	session.ModeSelectingLevelCheck: handleSelectingLevelCheck,
	session.ModeSelfAssessment:      handleSelfAssessment,
	session.ModeLevelTest:           handleLevelTest,
	session.ModeLearningCompleted:   handleLearningCompleted,
	session.ModeQuiz:                handleQuiz,
	session.ModeAfterQuiz:           handleAfterQuiz,
	session.ModeInterview:           handleInterview,
}

func handleNone(_ *Engine, _ context.Context, _ *session.Session, _ string) []Message {
	return []Message{text(`Send "start studying" to begin a study session.`)}
}

func handleSelectingTopic(e *Engine, _ context.Context, s *session.Session, input string) []Message {
	if !study.ValidTopic(input) {
		return []Message{invalidTopic()}
	}
	s.SelectTopic(input)
	s.Mode = session.ModeSelectingLevelCheck
	return []Message{levelCheckMenu(input)}
}

func handleSelectingLevelCheck(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	switch input {
	case "1", "self-assessment":
		s.Mode = session.ModeSelfAssessment
		return []Message{selfAssessmentMenu()}

	case "2", "test":
		questions, degraded := e.content.GenerateLevelTest(ctx, s.Topic)
		s.TestQuestions = questions
		s.ClearPending()
		s.Mode = session.ModeLevelTest

		msgs := []Message{testIntro(s.Topic)}
		if degraded {
			msgs = append(msgs, degradedNotice())
		}
		msgs = append(msgs, renderQuestions(questions)...)
		msgs = append(msgs, testSubmitHint())
		return msgs
	}
	return []Message{levelCheckMenu(s.Topic)}
}

func handleSelfAssessment(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	level, ok := study.ParseLevel(input)
	if !ok {
		return []Message{selfAssessmentMenu()}
	}
	s.UserLevel = level
	return e.completeLearning(ctx, s, []Message{levelSet(level)})
}

func handleLevelTest(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	if input == keywordSubmit {
		if s.PendingCount() == 0 {
			return []Message{submissionFormatError()}
		}
		return e.gradeLevelTest(ctx, s)
	}

	parsed, err := study.ParseBulkAnswers(input)
	if err != nil {
		return []Message{submissionFormatError()}
	}

	// Textual answers write through the same accumulation as buttons;
	// a bulk submission triggers grading immediately.
	for _, p := range parsed {
		if p.Index < len(s.TestQuestions) {
			s.SetPendingAnswer(p.Index, p.Answer)
		}
	}
	if s.PendingCount() == 0 {
		return []Message{submissionFormatError()}
	}
	return e.gradeLevelTest(ctx, s)
}

func (e *Engine) gradeLevelTest(ctx context.Context, s *session.Session) []Message {
	result := e.scorer.Grade(s.TestQuestions, s.PendingAnswers())
	level := e.scorer.EvaluateLevel(result.Correct, result.Total)
	s.UserLevel = level
	s.ClearPending()

	msgs := []Message{renderGradeResult("Level test", result, s.TestQuestions), levelSet(level)}
	return e.completeLearning(ctx, s, msgs)
}

// completeLearning requests the topic explanation and study roadmap,
// stores the extracted tags and subtopics, and lands the session in
// learning-completed mode. Shared by the self-assessment and
// level-test paths.
func (e *Engine) completeLearning(ctx context.Context, s *session.Session, msgs []Message) []Message {
	explanation, degraded := e.content.Explain(ctx, s.Topic, s.UserLevel)
	subtopics, subsDegraded := e.content.GenerateSubtopics(ctx, s.Topic)
	s.Tags = explanation.Tags
	s.Subtopics = subtopics
	s.Mode = session.ModeLearningCompleted

	msgs = append(msgs, chunked(explanation.Text, e.cfg.ChunkSize)...)
	if degraded || subsDegraded {
		msgs = append(msgs, degradedNotice())
	}
	msgs = append(msgs, tagList(explanation.Tags), roadmap(subtopics), learningMenu())
	return msgs
}

func handleLearningCompleted(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	switch input {
	case "1", "quiz":
		questions, degraded := e.content.GenerateQuiz(ctx, s.Topic, s.Tags)
		s.QuizQuestions = questions
		s.ClearPending()
		s.Mode = session.ModeQuiz

		msgs := []Message{quizIntro(s.Topic)}
		if degraded {
			msgs = append(msgs, degradedNotice())
		}
		msgs = append(msgs, renderQuestions(questions)...)
		msgs = append(msgs, quizSubmitHint())
		return msgs

	case "2", "question":
		return []Message{askInstructions()}

	case "3", "interview":
		return e.startInterview(ctx, s)
	}
	return []Message{learningMenu()}
}

func handleQuiz(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	if input == keywordCheckAnswers {
		result := e.scorer.Grade(s.QuizQuestions, s.PendingAnswers())
		s.ClearPending()
		s.Mode = session.ModeAfterQuiz
		return []Message{
			renderGradeResult("Quiz", result, s.QuizQuestions),
			afterQuizMenu(),
		}
	}

	// Bulk text answers accumulate like button clicks; grading waits
	// for the explicit keyword.
	if parsed, err := study.ParseBulkAnswers(input); err == nil {
		recorded := 0
		for _, p := range parsed {
			if p.Index < len(s.QuizQuestions) {
				s.SetPendingAnswer(p.Index, p.Answer)
				recorded++
			}
		}
		if recorded > 0 {
			return []Message{bulkRecorded(recorded, s.PendingCount(), len(s.QuizQuestions))}
		}
	}
	return []Message{quizSubmitHint()}
}

func handleAfterQuiz(e *Engine, ctx context.Context, s *session.Session, input string) []Message {
	switch input {
	case "1", "interview":
		return e.startInterview(ctx, s)

	case "2", "new topic":
		return e.restart(s)

	case "3", "question":
		return []Message{askInstructions()}
	}
	return []Message{afterQuizMenu()}
}

// handleInterview treats any input as the learner's spoken answer:
// reveal the model answer for the current question, then step forward.
// "next" skips to the following question without revealing anything.
func handleInterview(e *Engine, _ context.Context, s *session.Session, input string) []Message {
	total := len(s.InterviewQuestions)
	if total == 0 {
		return []Message{interviewDone()}
	}
	if s.InterviewIndex >= total {
		// Cursor ran past the end; clamp and report completion.
		s.InterviewIndex = total
		return []Message{interviewDone()}
	}

	if input == keywordNext {
		s.InterviewIndex++
		if s.InterviewIndex >= total {
			return []Message{interviewDone()}
		}
		return []Message{interviewQuestion(s.InterviewIndex, s.InterviewQuestions[s.InterviewIndex])}
	}

	current := s.InterviewQuestions[s.InterviewIndex]

	var msgs []Message
	if current.ModelAnswer != "" {
		msgs = append(msgs, modelAnswer(current.ModelAnswer))
	}

	s.InterviewIndex++
	if s.InterviewIndex >= total {
		msgs = append(msgs, interviewDone())
		return msgs
	}
	msgs = append(msgs, interviewQuestion(s.InterviewIndex, s.InterviewQuestions[s.InterviewIndex]))
	return msgs
}
