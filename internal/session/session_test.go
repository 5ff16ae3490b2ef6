package session

import (
	"sync"
	"testing"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

func TestSelectTopicClearsDerivedState(t *testing.T) {
	s := New("U1")
	s.Mode = ModeLearningCompleted
	s.Topic = "network"
	s.Tags = []string{"osi", "tcp"}
	s.Subtopics = []study.Subtopic{{Title: "OSI-7-Layers", Description: "layer model"}}
	s.UserLevel = study.LevelAdvanced
	s.TestQuestions = []study.Question{{Type: study.TypeBoolean, Answer: "O"}}
	s.QuizQuestions = []study.Question{{Type: study.TypeBoolean, Answer: "X"}}
	s.InterviewQuestions = []study.InterviewQuestion{{Question: "q", ModelAnswer: "a"}}
	s.InterviewIndex = 2
	s.SetPendingAnswer(0, "O")

	s.SelectTopic("database")

	if s.Topic != "database" {
		t.Errorf("Topic = %q, want %q", s.Topic, "database")
	}
	if s.Tags != nil || s.Subtopics != nil || s.UserLevel != "" {
		t.Error("tags, subtopics, and level should be cleared on topic switch")
	}
	if s.TestQuestions != nil || s.QuizQuestions != nil {
		t.Error("question collections should be cleared on topic switch")
	}
	if s.InterviewQuestions != nil || s.InterviewIndex != 0 {
		t.Error("interview state should be cleared on topic switch")
	}
	if s.PendingCount() != 0 {
		t.Error("pending answers should be cleared on topic switch")
	}
}

func TestPendingAnswersLastWriteWins(t *testing.T) {
	s := New("U1")
	s.SetPendingAnswer(0, "O")
	s.SetPendingAnswer(1, "A")
	s.SetPendingAnswer(0, "X")

	got := s.PendingAnswers()
	if got[0] != "X" {
		t.Errorf("answer[0] = %q, want %q (most recent write wins)", got[0], "X")
	}
	if got[1] != "A" {
		t.Errorf("answer[1] = %q, want %q", got[1], "A")
	}
	if s.PendingCount() != 2 {
		t.Errorf("PendingCount = %d, want 2", s.PendingCount())
	}
}

func TestPendingAnswersReturnsCopy(t *testing.T) {
	s := New("U1")
	s.SetPendingAnswer(0, "O")

	m := s.PendingAnswers()
	m[0] = "X"

	if got := s.PendingAnswers()[0]; got != "O" {
		t.Errorf("stored answer mutated through returned map: got %q", got)
	}
}

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore()

	if st.Get("U1") != nil {
		t.Error("Get on empty store should return nil")
	}

	s1 := st.GetOrCreate("U1")
	if s1 == nil || s1.Mode != ModeNone || s1.UserID != "U1" {
		t.Fatalf("GetOrCreate returned %+v, want fresh session in ModeNone", s1)
	}
	if st.GetOrCreate("U1") != s1 {
		t.Error("second GetOrCreate should return the same session")
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestStoreReplace(t *testing.T) {
	st := NewStore()
	s1 := st.GetOrCreate("U1")
	s1.Topic = "network"
	s1.Mode = ModeQuiz

	s2 := st.Replace("U1")
	if s2 == s1 {
		t.Fatal("Replace should install a new session, not reuse the old one")
	}
	if s2.Mode != ModeNone || s2.Topic != "" {
		t.Errorf("replaced session = %+v, want fresh state", s2)
	}
	if st.Get("U1") != s2 {
		t.Error("store should hand out the replacement session")
	}
	if s2.ID == "" || s2.ID == s1.ID {
		t.Errorf("replacement session ID = %q, want a fresh non-empty ID (old %q)", s2.ID, s1.ID)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	users := []string{"U1", "U2", "U3", "U4"}

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := users[i%len(users)]
			st.GetOrCreate(u)
			st.Get(u)
			st.Len()
		}(i)
	}
	wg.Wait()

	if st.Len() != len(users) {
		t.Errorf("Len = %d, want %d", st.Len(), len(users))
	}
}
