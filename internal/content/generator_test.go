package content

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/junyong1111/cs-slack-bot/internal/llm"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
	"github.com/junyong1111/cs-slack-bot/internal/study"
)

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewGenerator(mock, DefaultConfig(), logger.NewNop()), mock
}

func TestExplain(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`{
			"explanation": "TCP turns packets into a reliable byte stream.",
			"tags": ["TCP/IP", "Handshake", " ", "Flow-Control"]
		}`),
	})

	exp, degraded := g.Explain(context.Background(), "network", study.LevelBeginner)
	if degraded {
		t.Fatal("successful generation should not be degraded")
	}
	if exp.Text != "TCP turns packets into a reliable byte stream." {
		t.Errorf("Text = %q", exp.Text)
	}
	wantTags := []string{"TCP/IP", "Handshake", "Flow-Control"}
	if len(exp.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", exp.Tags, wantTags)
	}
	for i, w := range wantTags {
		if exp.Tags[i] != w {
			t.Errorf("Tags[%d] = %q, want %q", i, exp.Tags[i], w)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestExplainFallback(t *testing.T) {
	g, _ := newTestGenerator() // empty queue: provider unavailable

	exp, degraded := g.Explain(context.Background(), "database", "")
	if !degraded {
		t.Fatal("provider failure should report degraded mode")
	}
	if exp.Text == "" || len(exp.Tags) == 0 {
		t.Error("fallback explanation must carry text and tags")
	}
}

const validLevelTestJSON = `{"questions": [
	{"type": "boolean", "question": "TCP guarantees ordering.", "options": [], "answer": "o", "level": "beginner", "topic": "TCP"},
	{"type": "choice", "question": "Which layer routes packets?", "options": ["Physical", "Data link", "Network", "Transport"], "answer": "Network", "level": "intermediate", "topic": "OSI"},
	{"type": "boolean", "question": "UDP is connection-oriented.", "options": [], "answer": "X", "level": "beginner", "topic": "UDP"},
	{"type": "choice", "question": "Which protocol resolves names?", "options": ["ARP", "DNS", "DHCP", "ICMP"], "answer": "B", "level": "intermediate", "topic": "DNS"},
	{"type": "free", "question": "Explain the three-way handshake.", "options": [], "answer": "SYN, SYN-ACK, ACK exchange establishing sequence numbers.", "level": "advanced", "topic": "TCP"}
]}`

func TestGenerateLevelTest(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(validLevelTestJSON)})

	questions, degraded := g.GenerateLevelTest(context.Background(), "network")
	if degraded {
		t.Fatal("valid response should not be degraded")
	}
	if len(questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(questions))
	}

	// Canonical order: boolean, boolean, choice, choice, free.
	wantTypes := []study.QuestionType{
		study.TypeBoolean, study.TypeBoolean,
		study.TypeChoice, study.TypeChoice,
		study.TypeFree,
	}
	for i, w := range wantTypes {
		if questions[i].Type != w {
			t.Errorf("questions[%d].Type = %q, want %q", i, questions[i].Type, w)
		}
		if questions[i].Topic != "network" {
			t.Errorf("questions[%d].Topic = %q, want network", i, questions[i].Topic)
		}
	}

	if questions[0].Answer != "O" {
		t.Errorf("boolean answer = %q, want O (uppercased)", questions[0].Answer)
	}
	if questions[2].Answer != "C" {
		t.Errorf("choice answer = %q, want C (resolved from option text)", questions[2].Answer)
	}
	if questions[3].Answer != "B" {
		t.Errorf("choice answer = %q, want B", questions[3].Answer)
	}
	if questions[4].Level != study.LevelAdvanced {
		t.Errorf("free question level = %q, want advanced", questions[4].Level)
	}
}

func TestGenerateLevelTestFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"questions": [{"type": "boolean"`},
		{"wrong type mix", `{"questions": [
			{"type": "boolean", "question": "q", "options": [], "answer": "O", "level": "", "topic": ""}
		]}`},
		{"bad boolean answer", `{"questions": [
			{"type": "boolean", "question": "q1", "options": [], "answer": "yes", "level": "", "topic": ""},
			{"type": "boolean", "question": "q2", "options": [], "answer": "O", "level": "", "topic": ""},
			{"type": "choice", "question": "q3", "options": ["a","b","c","d"], "answer": "A", "level": "", "topic": ""},
			{"type": "choice", "question": "q4", "options": ["a","b","c","d"], "answer": "B", "level": "", "topic": ""},
			{"type": "free", "question": "q5", "options": [], "answer": "ref", "level": "", "topic": ""}
		]}`},
		{"choice answer matches no option", `{"questions": [
			{"type": "boolean", "question": "q1", "options": [], "answer": "O", "level": "", "topic": ""},
			{"type": "boolean", "question": "q2", "options": [], "answer": "X", "level": "", "topic": ""},
			{"type": "choice", "question": "q3", "options": ["a","b","c","d"], "answer": "nonsense", "level": "", "topic": ""},
			{"type": "choice", "question": "q4", "options": ["a","b","c","d"], "answer": "B", "level": "", "topic": ""},
			{"type": "free", "question": "q5", "options": [], "answer": "ref", "level": "", "topic": ""}
		]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(tc.content)})
			questions, degraded := g.GenerateLevelTest(context.Background(), "os")
			if !degraded {
				t.Fatal("rejected response should report degraded mode")
			}
			if len(questions) != 5 {
				t.Fatalf("fallback returned %d questions, want 5", len(questions))
			}
			for i, q := range questions {
				if q.Topic != "os" {
					t.Errorf("fallback questions[%d].Topic = %q, want os", i, q.Topic)
				}
			}
		})
	}
}

func TestGenerateQuiz(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`{"questions": [
		{"type": "choice", "question": "Avg hash lookup?", "options": ["O(1)", "O(log n)", "O(n)", "O(n log n)"], "answer": "A", "level": "", "topic": "hashing"},
		{"type": "boolean", "question": "Arrays are fixed size.", "options": [], "answer": "O", "level": "", "topic": "arrays"},
		{"type": "free", "question": "What is a collision?", "options": [], "answer": "Two keys hashing to the same bucket.", "level": "", "topic": "hashing"}
	]}`)})

	questions, degraded := g.GenerateQuiz(context.Background(), "data-structures", []string{"Hash-Tables"})
	if degraded {
		t.Fatal("valid response should not be degraded")
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if questions[0].Type != study.TypeBoolean || questions[1].Type != study.TypeChoice || questions[2].Type != study.TypeFree {
		t.Errorf("quiz order = %q/%q/%q, want boolean/choice/free",
			questions[0].Type, questions[1].Type, questions[2].Type)
	}
}

func TestGenerateInterview(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`{"questions": [
		{"basic": "What is a process?", "advanced": "", "followup": ["How do threads differ?"], "answer": "A running program with its own address space."},
		{"basic": "", "advanced": "Design a scheduler for mixed workloads.", "followup": [], "answer": "Discuss priority queues and fairness."}
	]}`)})

	questions, degraded := g.GenerateInterview(context.Background(), "os", "Processes", study.LevelIntermediate)
	if degraded {
		t.Fatal("valid response should not be degraded")
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3 (basic + followup + advanced)", len(questions))
	}
	if questions[0].Question != "What is a process?" {
		t.Errorf("questions[0] = %q", questions[0].Question)
	}
	if questions[1].Question != "How do threads differ?" {
		t.Errorf("followup should become its own entry, got %q", questions[1].Question)
	}
	if questions[1].ModelAnswer != questions[0].ModelAnswer {
		t.Error("followup should inherit the thread's model answer")
	}
	if questions[2].Question != "Design a scheduler for mixed workloads." {
		t.Errorf("questions[2] = %q", questions[2].Question)
	}
}

func TestGenerateInterviewFallback(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})

	questions, degraded := g.GenerateInterview(context.Background(), "web", "REST", study.LevelBeginner)
	if !degraded {
		t.Fatal("empty question list should report degraded mode")
	}
	if len(questions) == 0 {
		t.Fatal("fallback interview must not be empty")
	}
}

func TestGenerateSubtopics(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`{"subtopics": [
			{"title": "Routing", "description": "How paths are selected between networks."},
			{"title": "  ", "description": "blank title is dropped"},
			{"title": "DNS", "description": "Name resolution and caching."}
		]}`),
	})

	subs, degraded := g.GenerateSubtopics(context.Background(), "network")
	if degraded {
		t.Fatal("successful generation should not be degraded")
	}
	if len(subs) != 2 {
		t.Fatalf("got %d subtopics, want 2", len(subs))
	}
	if subs[0].Title != "Routing" || subs[1].Title != "DNS" {
		t.Errorf("titles = %q, %q", subs[0].Title, subs[1].Title)
	}
}

func TestGenerateSubtopicsFallback(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`{"subtopics": []}`)})

	subs, degraded := g.GenerateSubtopics(context.Background(), "os")
	if !degraded {
		t.Fatal("empty subtopic list should report degraded mode")
	}
	if len(subs) == 0 {
		t.Fatal("fallback subtopics must not be empty")
	}
	for _, s := range subs {
		if s.Title == "" || s.Description == "" {
			t.Errorf("fallback subtopic incomplete: %+v", s)
		}
	}
}

func TestAnswerFreeQuestion(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`"Layer 3 is the network layer; it routes packets between networks."`),
	})

	answer, degraded := g.AnswerFreeQuestion(context.Background(), "network", "OSI-7-Layers", "what is layer 3")
	if degraded {
		t.Fatal("successful answer should not be degraded")
	}
	if answer != "Layer 3 is the network layer; it routes packets between networks." {
		t.Errorf("answer = %q", answer)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("free questions are plain text, no schema expected")
	}
}

func TestAnswerFreeQuestionFallback(t *testing.T) {
	g, _ := newTestGenerator()

	answer, degraded := g.AnswerFreeQuestion(context.Background(), "network", "DNS", "how does caching work")
	if !degraded {
		t.Fatal("provider failure should report degraded mode")
	}
	if answer == "" {
		t.Fatal("fallback answer must not be empty")
	}
}

func TestFallbackQuizMix(t *testing.T) {
	for topic := range fallbackLevelTests {
		quiz := fallbackQuiz(topic)
		if len(quiz) != 3 {
			t.Fatalf("%s: fallback quiz has %d questions, want 3", topic, len(quiz))
		}
		if quiz[0].Type != study.TypeBoolean || quiz[1].Type != study.TypeChoice || quiz[2].Type != study.TypeFree {
			t.Errorf("%s: fallback quiz mix = %q/%q/%q", topic, quiz[0].Type, quiz[1].Type, quiz[2].Type)
		}
	}
}

func TestFallbackLevelTestsCoverAllTopics(t *testing.T) {
	for _, topic := range study.Topics {
		qs := fallbackLevelTest(topic)
		if len(qs) != 5 {
			t.Fatalf("%s: fallback test has %d questions, want 5", topic, len(qs))
		}
		for i, q := range qs {
			if q.Text == "" || q.Answer == "" {
				t.Errorf("%s: question %d incomplete", topic, i)
			}
			if q.Type == study.TypeChoice && len(q.Options) != 4 {
				t.Errorf("%s: question %d has %d options, want 4", topic, i, len(q.Options))
			}
		}
	}
}
