// Package engine is the per-user conversation state machine. It routes
// each inbound text message or button click to the handler for the
// session's current mode, requests generated content where a
// transition needs it, and produces the ordered outbound messages.
package engine

import (
	"context"
	"strings"

	"github.com/junyong1111/cs-slack-bot/internal/content"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
	"github.com/junyong1111/cs-slack-bot/internal/session"
	"github.com/junyong1111/cs-slack-bot/internal/store"
	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Fixed input vocabulary. Matching is case-sensitive: the menus tell
// the user exactly what to type.
const (
	keywordStart        = "start studying"
	keywordAsk          = "ask"
	keywordSubmit       = "submit"
	keywordCheckAnswers = "check answers"
	keywordNext         = "next"
)

// Engine drives one conversation step at a time. It is safe for
// concurrent use across users as long as inputs for one user are
// serialized, which Dispatcher guarantees.
type Engine struct {
	sessions *session.Store
	content  content.Service
	scorer   *study.Scorer
	events   store.EventRepo
	cfg      Config
	log      *logger.Logger
}

// New creates an Engine. events may be a store.NopEventRepo when no
// event log is wanted.
func New(sessions *session.Store, svc content.Service, scorer *study.Scorer, events store.EventRepo, cfg Config, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{
		sessions: sessions,
		content:  svc,
		scorer:   scorer,
		events:   events,
		cfg:      cfg,
		log:      log,
	}
}

// Handle processes one input for its user and returns the ordered
// outbound messages. It never returns an error: invalid input produces
// guidance, and content failures are degraded inside the content
// service.
func (e *Engine) Handle(ctx context.Context, in Input) []Message {
	s := e.sessions.GetOrCreate(in.User())
	msgs := e.route(ctx, s, in)
	e.log.Debug("handled input", "user", s.UserID, "session_id", s.ID, "mode", s.Mode)
	e.logEvent(ctx, s, in)
	return msgs
}

func (e *Engine) route(ctx context.Context, s *session.Session, in Input) []Message {
	switch in := in.(type) {
	case TextMessage:
		return e.routeText(ctx, s, strings.TrimSpace(in.Text))
	case ButtonAction:
		return e.routeButton(ctx, s, in)
	}
	return []Message{text("Sorry, I didn't understand that input.")}
}

func (e *Engine) routeText(ctx context.Context, s *session.Session, input string) []Message {
	// "start studying" restarts from anywhere with a fresh session.
	if input == keywordStart {
		return e.restart(s)
	}

	// Free questions work from any state and never change the mode.
	if question, ok := parseFreeQuestion(input); ok {
		return e.answerFreeQuestion(ctx, s, question)
	}

	handler, ok := textHandlers[s.Mode]
	if !ok {
		handler = handleNone
	}
	return handler(e, ctx, s, input)
}

func (e *Engine) routeButton(ctx context.Context, s *session.Session, in ButtonAction) []Message {
	act, ok := parseActionID(in.ActionID)
	if !ok {
		e.log.Warn("unrecognized action id", "action_id", in.ActionID, "user", s.UserID)
		return []Message{text("Sorry, that button isn't recognized.")}
	}

	switch act.kind {
	case actionRestart:
		return e.restart(s)

	case actionInstructions:
		return []Message{askInstructions()}

	case actionTopic:
		if s.Mode != session.ModeSelectingTopic {
			return []Message{modeGuidance(s.Mode)}
		}
		return handleSelectingTopic(e, ctx, s, act.value)

	case actionLevel:
		if s.Mode != session.ModeSelfAssessment {
			return []Message{modeGuidance(s.Mode)}
		}
		return handleSelfAssessment(e, ctx, s, act.value)

	case actionInterview:
		switch s.Mode {
		case session.ModeLearningCompleted, session.ModeAfterQuiz, session.ModeInterview:
			return e.startInterview(ctx, s)
		}
		return []Message{modeGuidance(s.Mode)}

	case actionAnswer:
		return e.recordButtonAnswer(s, act)
	}

	return []Message{modeGuidance(s.Mode)}
}

// restart replaces the whole session and opens topic selection.
func (e *Engine) restart(old *session.Session) []Message {
	s := e.sessions.Replace(old.UserID)
	s.Mode = session.ModeSelectingTopic
	return []Message{topicMenu()}
}

// recordButtonAnswer stores an individual answer click against the
// active question set. It never changes the mode.
func (e *Engine) recordButtonAnswer(s *session.Session, act action) []Message {
	var questions []study.Question
	switch s.Mode {
	case session.ModeLevelTest:
		questions = s.TestQuestions
	case session.ModeQuiz:
		questions = s.QuizQuestions
	default:
		return []Message{modeGuidance(s.Mode)}
	}

	if act.index >= len(questions) {
		return []Message{text("That question doesn't exist anymore. Answer the questions shown above.")}
	}

	s.SetPendingAnswer(act.index, act.value)
	return []Message{answerRecorded(act.index, act.value, s.PendingCount(), len(questions), s.Mode)}
}

// parseFreeQuestion matches the cross-state "ask <tag> <question>"
// pattern: the ask keyword plus at least two more tokens.
func parseFreeQuestion(input string) (freeQuestion, bool) {
	fields := strings.Fields(input)
	if len(fields) < 3 || fields[0] != keywordAsk {
		return freeQuestion{}, false
	}
	return freeQuestion{
		tag:      fields[1],
		question: strings.Join(fields[2:], " "),
	}, true
}

type freeQuestion struct {
	tag      string
	question string
}

// answerFreeQuestion resolves the tag against the session's extracted
// tags (or the built-in fallback list when none exist yet) and asks the
// content service. The session mode never changes.
func (e *Engine) answerFreeQuestion(ctx context.Context, s *session.Session, q freeQuestion) []Message {
	tags := s.Tags
	if len(tags) == 0 {
		tags = content.FallbackTags[s.Topic]
		if len(tags) == 0 {
			tags = content.FallbackTags["network"]
		}
	}

	// Case-insensitive exact match; unmatched tags fall back to the
	// first entry rather than failing.
	resolved := tags[0]
	for _, t := range tags {
		if strings.EqualFold(t, q.tag) {
			resolved = t
			break
		}
	}

	answer, degraded := e.content.AnswerFreeQuestion(ctx, s.Topic, resolved, q.question)
	msgs := chunked(answer, e.cfg.ChunkSize)
	if degraded {
		msgs = append(msgs, degradedNotice())
	}
	return msgs
}

// startInterview generates a question set scoped to the first roadmap
// subtopic (falling back to the first tag) and opens the stepping flow.
func (e *Engine) startInterview(ctx context.Context, s *session.Session) []Message {
	subtopic := ""
	switch {
	case len(s.Subtopics) > 0:
		subtopic = s.Subtopics[0].Title
	case len(s.Tags) > 0:
		subtopic = s.Tags[0]
	}

	questions, degraded := e.content.GenerateInterview(ctx, s.Topic, subtopic, s.UserLevel)
	if len(questions) == 0 {
		// The shipped generator always falls back to a non-empty set,
		// but the contract doesn't force other implementations to.
		return []Message{interviewDone()}
	}
	s.InterviewQuestions = questions
	s.InterviewIndex = 0
	s.Mode = session.ModeInterview

	msgs := []Message{interviewIntro(s.Topic, len(questions))}
	if degraded {
		msgs = append(msgs, degradedNotice())
	}
	msgs = append(msgs, interviewQuestion(0, questions[0]))
	return msgs
}

func (e *Engine) logEvent(ctx context.Context, s *session.Session, in Input) {
	data := store.ConversationEventData{
		UserID: s.UserID,
		Mode:   string(s.Mode),
	}
	switch in := in.(type) {
	case TextMessage:
		data.InputKind = "text"
		data.Detail = truncate(strings.TrimSpace(in.Text), 120)
	case ButtonAction:
		data.InputKind = "button"
		data.Detail = in.ActionID
	}
	if err := e.events.AppendConversation(ctx, data); err != nil {
		e.log.Warn("conversation event append failed", "error", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
