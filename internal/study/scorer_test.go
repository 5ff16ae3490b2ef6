package study

import "testing"

func TestCheckBoolean(t *testing.T) {
	s := NewScorer(DefaultConfig())

	tests := []struct {
		submitted string
		correct   string
		want      bool
	}{
		{"O", "O", true},
		{"o", "O", true},
		{" X ", "X", true},
		{"X", "O", false},
		{"", "O", false},
		{"OX", "O", false},
	}

	for _, tc := range tests {
		got := s.CheckBoolean(tc.submitted, tc.correct)
		if got != tc.want {
			t.Errorf("CheckBoolean(%q, %q) = %v, want %v", tc.submitted, tc.correct, got, tc.want)
		}
	}
}

func TestCheckChoice(t *testing.T) {
	s := NewScorer(DefaultConfig())
	q := Question{
		Type:    TypeChoice,
		Text:    "Which step establishes a TCP connection?",
		Options: []string{"DNS lookup", "ARP probe", "TCP handshake", "TLS renegotiation"},
		Answer:  "C",
	}

	tests := []struct {
		submitted string
		want      bool
	}{
		{"C", true},          // option letter
		{"c", true},          // case-insensitive letter
		{"3", true},          // 1-based index of C
		{"TCP handshake", true},
		{"TCP", true},        // contained in the correct option text
		{"the TCP handshake step", true}, // contains the correct option text
		{"A", false},
		{"a", false}, // wrong letter never matches via text containment
		{"t", false}, // single letter stays a letter even when the text contains it
		{"E", false}, // letter beyond the option range
		{"1", false},
		{"5", false}, // out of range
		{"DNS", false},
		{"", false},
	}

	for _, tc := range tests {
		got := s.CheckChoice(tc.submitted, q)
		if got != tc.want {
			t.Errorf("CheckChoice(%q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestCheckFreeText_ExactReferenceAlwaysCorrect(t *testing.T) {
	s := NewScorer(DefaultConfig())
	ref := "An index speeds up lookups by keeping a sorted structure over the column"
	if !s.CheckFreeText("database", ref, ref) {
		t.Error("submitting the exact reference answer should score correct")
	}
}

func TestCheckFreeText_Incorrect(t *testing.T) {
	s := NewScorer(DefaultConfig())
	ref := "An index speeds up lookups by keeping a sorted structure over the column"

	tests := []struct {
		name      string
		submitted string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no overlap", "bananas grow quickly during warm summers"},
	}

	for _, tc := range tests {
		if s.CheckFreeText("database", tc.submitted, ref) {
			t.Errorf("%s: CheckFreeText(%q) = true, want false", tc.name, tc.submitted)
		}
	}
}

func TestCheckFreeText_KeywordRatio(t *testing.T) {
	s := NewScorer(DefaultConfig())
	ref := "primary key uniquely identifies rows"

	// 3 of 5 reference keywords matched (primary, key, rows) -> 0.6 >= 0.5.
	if !s.CheckFreeText("database", "a primary key constraint always applies strictly to rows only", ref) {
		t.Error("keyword ratio above default threshold should score correct")
	}

	// 1 of 5 matched -> 0.2 < 0.5.
	if s.CheckFreeText("database", "the key is made of brass", ref) {
		t.Error("keyword ratio below default threshold should score incorrect")
	}
}

func TestCheckFreeText_SpecialTopicThreshold(t *testing.T) {
	s := NewScorer(DefaultConfig())
	ref := "physical datalink network transport session presentation application"

	// 2 of 7 reference keywords -> ~0.29, above 0.25 for network, below 0.5 otherwise.
	sub := "transport and network"
	if !s.CheckFreeText("network", sub, ref) {
		t.Error("network topic should grade with the lower special threshold")
	}
	if s.CheckFreeText("database", sub, ref) {
		t.Error("non-special topic should keep the default threshold")
	}
}

func TestCheckFreeText_LongAnswerLeniency(t *testing.T) {
	s := NewScorer(DefaultConfig())
	ref := "a stack of seven levels"

	sub := "When two hosts communicate, the transport layer on the sender " +
		"breaks the stream into segments, and each packet then receives a " +
		"header before the handshake completes on both sides."
	if len(sub) <= 100 {
		t.Fatalf("test answer must exceed 100 characters, got %d", len(sub))
	}
	if !s.CheckFreeText("network", sub, ref) {
		t.Error("long answer with domain terminology should score correct")
	}

	short := "transport layer packet"
	if s.CheckFreeText("database", short, ref) {
		t.Error("short answer should not trigger the leniency rule")
	}
}

func TestSimilar(t *testing.T) {
	s := NewScorer(DefaultConfig())

	tests := []struct {
		a, b string
		want bool
	}{
		{"TCP Handshake", "tcp handshake", true}, // case-insensitive equality
		{"handshake", "the tcp handshake", true}, // containment
		{"three way handshake protocol", "handshake protocol three way", true}, // full word overlap
		{"alpha beta gamma delta", "alpha omega sigma tau", false},             // jaccard 1/7 < 0.3
		{"", "anything", false},
		{"anything", "", false},
	}

	for _, tc := range tests {
		got := s.Similar(tc.a, tc.b)
		if got != tc.want {
			t.Errorf("Similar(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGrade(t *testing.T) {
	s := NewScorer(DefaultConfig())
	questions := []Question{
		{Type: TypeBoolean, Answer: "O"},
		{Type: TypeBoolean, Answer: "X"},
		{Type: TypeChoice, Options: []string{"a", "b", "c", "d"}, Answer: "B"},
	}
	answers := map[int]string{
		0: "O",
		2: "2",
	}

	res := s.Grade(questions, answers)
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Total)
	}
	if res.Correct != 2 {
		t.Errorf("Correct = %d, want 2", res.Correct)
	}
	want := []bool{true, false, true}
	for i, w := range want {
		if res.PerQuestion[i] != w {
			t.Errorf("PerQuestion[%d] = %v, want %v", i, res.PerQuestion[i], w)
		}
	}
}

func TestGradeWrongChoiceLetter(t *testing.T) {
	s := NewScorer(DefaultConfig())
	questions := []Question{
		{Type: TypeChoice, Options: []string{"Physical", "Session", "Transport", "Application"}, Answer: "C"},
	}

	// Clicking the wrong answer button submits its letter; that must
	// never score through the option-text containment rule.
	res := s.Grade(questions, map[int]string{0: "A"})
	if res.Correct != 0 {
		t.Errorf("Correct = %d, want 0 for a wrong option letter", res.Correct)
	}
}

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("The TCP/IP model has 4 layers, the OSI model has 7!")
	want := []string{"tcp", "ip", "model", "layers", "osi"}
	if len(got) != len(want) {
		t.Fatalf("ExtractKeywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
