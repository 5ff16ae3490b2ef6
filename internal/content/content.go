// Package content generates study material through the LLM provider:
// topic explanations, level tests, quizzes, interview question sets,
// and free-question answers. Every operation degrades to a
// deterministic built-in fallback when the backend is unreachable or
// returns unusable output, so callers never see an error.
package content

import (
	"context"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Explanation is the result of explaining a topic: the text shown to
// the learner plus the sub-concept tags extracted for free-question
// routing.
type Explanation struct {
	Text string
	Tags []string
}

// Service is the content-generation contract the conversation engine
// depends on. The boolean result reports degraded mode: true means the
// built-in fallback was substituted because generation failed.
type Service interface {
	// Explain produces a learner-level explanation of topic and the
	// sub-concept tags it covers.
	Explain(ctx context.Context, topic string, level study.Level) (Explanation, bool)

	// GenerateLevelTest produces the fixed level-test mix for topic:
	// 2 boolean, 2 multiple-choice, 1 free-text question, in order.
	GenerateLevelTest(ctx context.Context, topic string) ([]study.Question, bool)

	// GenerateQuiz produces the fixed quiz mix for topic scoped to
	// tags: 1 boolean, 1 multiple-choice, 1 free-text question.
	GenerateQuiz(ctx context.Context, topic string, tags []string) ([]study.Question, bool)

	// GenerateSubtopics produces the study roadmap for topic: the
	// sub-concepts to go deeper on after the explanation.
	GenerateSubtopics(ctx context.Context, topic string) ([]study.Subtopic, bool)

	// GenerateInterview produces mock-interview questions with model
	// answers for the given subtopic, framed for the learner's level.
	GenerateInterview(ctx context.Context, topic, subtopic string, level study.Level) ([]study.InterviewQuestion, bool)

	// AnswerFreeQuestion answers an ad hoc learner question scoped to
	// one of the topic's tags.
	AnswerFreeQuestion(ctx context.Context, topic, tag, question string) (string, bool)
}
