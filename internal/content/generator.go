package content

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/junyong1111/cs-slack-bot/internal/llm"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Generator implements Service using the LLM provider. Generation
// failures are logged and replaced with canned fallbacks; no method
// ever returns an error to the caller.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{provider: provider, cfg: cfg, log: log}
}

var _ Service = (*Generator)(nil)

// generate runs one bounded provider call and unmarshals the response
// into out.
func (g *Generator) generate(ctx context.Context, purpose, prompt string, schema *llm.Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		Schema:      schema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Content, out)
}

func (g *Generator) Explain(ctx context.Context, topic string, level study.Level) (Explanation, bool) {
	var raw struct {
		Explanation string   `json:"explanation"`
		Tags        []string `json:"tags"`
	}
	err := g.generate(ctx, "explain", explainPrompt(topic, level), ExplanationSchema, &raw)
	if err != nil || strings.TrimSpace(raw.Explanation) == "" {
		g.log.Warn("explanation generation failed, using fallback", "topic", topic, "error", err)
		return fallbackExplanation(topic), true
	}

	exp := Explanation{Text: raw.Explanation, Tags: cleanTags(raw.Tags)}
	if len(exp.Tags) == 0 {
		exp.Tags = fallbackTagsFor(topic)
	}
	return exp, false
}

func (g *Generator) GenerateLevelTest(ctx context.Context, topic string) ([]study.Question, bool) {
	var raw questionListOutput
	if err := g.generate(ctx, "level-test", levelTestPrompt(topic), QuestionListSchema, &raw); err != nil {
		g.log.Warn("level-test generation failed, using fallback", "topic", topic, "error", err)
		return fallbackLevelTest(topic), true
	}

	questions, err := normalizeQuestions(topic, raw.Questions, 2, 2, 1)
	if err != nil {
		g.log.Warn("level-test response rejected, using fallback", "topic", topic, "error", err)
		return fallbackLevelTest(topic), true
	}
	return questions, false
}

func (g *Generator) GenerateQuiz(ctx context.Context, topic string, tags []string) ([]study.Question, bool) {
	var raw questionListOutput
	if err := g.generate(ctx, "quiz", quizPrompt(topic, tags), QuestionListSchema, &raw); err != nil {
		g.log.Warn("quiz generation failed, using fallback", "topic", topic, "error", err)
		return fallbackQuiz(topic), true
	}

	questions, err := normalizeQuestions(topic, raw.Questions, 1, 1, 1)
	if err != nil {
		g.log.Warn("quiz response rejected, using fallback", "topic", topic, "error", err)
		return fallbackQuiz(topic), true
	}
	return questions, false
}

func (g *Generator) GenerateInterview(ctx context.Context, topic, subtopic string, level study.Level) ([]study.InterviewQuestion, bool) {
	var raw interviewListOutput
	if err := g.generate(ctx, "interview", interviewPrompt(topic, subtopic, level), InterviewSchema, &raw); err != nil {
		g.log.Warn("interview generation failed, using fallback", "topic", topic, "subtopic", subtopic, "error", err)
		return fallbackInterview(topic, subtopic), true
	}

	questions, err := normalizeInterview(raw.Questions)
	if err != nil {
		g.log.Warn("interview response rejected, using fallback", "topic", topic, "subtopic", subtopic, "error", err)
		return fallbackInterview(topic, subtopic), true
	}
	return questions, false
}

func (g *Generator) AnswerFreeQuestion(ctx context.Context, topic, tag, question string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "free-question")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      freeQuestionPrompt(topic, tag, question),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		g.log.Warn("free-question answer failed, using fallback", "topic", topic, "tag", tag, "error", err)
		return fallbackFreeAnswer(topic, tag), true
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return fallbackFreeAnswer(topic, tag), true
	}
	return answer, false
}

func (g *Generator) GenerateSubtopics(ctx context.Context, topic string) ([]study.Subtopic, bool) {
	var raw struct {
		Subtopics []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"subtopics"`
	}
	err := g.generate(ctx, "subtopics", subtopicPrompt(topic), SubtopicListSchema, &raw)
	if err != nil {
		g.log.Warn("subtopic generation failed, using fallback", "topic", topic, "error", err)
		return fallbackSubtopics(topic), true
	}

	subs := make([]study.Subtopic, 0, len(raw.Subtopics))
	for _, s := range raw.Subtopics {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		subs = append(subs, study.Subtopic{Title: s.Title, Description: s.Description})
	}
	if len(subs) == 0 {
		g.log.Warn("subtopic response rejected, using fallback", "topic", topic)
		return fallbackSubtopics(topic), true
	}
	return subs, false
}

func cleanTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
