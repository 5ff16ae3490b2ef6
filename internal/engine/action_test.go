package engine

import "testing"

func TestParseActionID(t *testing.T) {
	tests := []struct {
		id   string
		ok   bool
		want action
	}{
		{"boolean_answer_0_O", true, action{kind: actionAnswer, index: 0, value: "O"}},
		{"boolean_answer_4_X", true, action{kind: actionAnswer, index: 4, value: "X"}},
		{"choice_answer_2_C", true, action{kind: actionAnswer, index: 2, value: "C"}},
		{"topic_network", true, action{kind: actionTopic, value: "network"}},
		{"topic_data-structures", true, action{kind: actionTopic, value: "data-structures"}},
		{"level_beginner", true, action{kind: actionLevel, value: "beginner"}},
		{"start_interview", true, action{kind: actionInterview}},
		{"new_topic", true, action{kind: actionRestart}},
		{"ask_question", true, action{kind: actionInstructions}},

		{"boolean_answer_0_Y", false, action{}}, // not O/X
		{"choice_answer_1_E", false, action{}},  // past D
		{"choice_answer_x_A", false, action{}},  // non-numeric index
		{"boolean_answer_-1_O", false, action{}},
		{"topic_", false, action{}},
		{"level_", false, action{}},
		{"something_else", false, action{}},
		{"", false, action{}},
	}

	for _, tc := range tests {
		got, ok := parseActionID(tc.id)
		if ok != tc.ok {
			t.Errorf("parseActionID(%q) ok = %v, want %v", tc.id, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("parseActionID(%q) = %+v, want %+v", tc.id, got, tc.want)
		}
	}
}

func TestAnswerIDRoundTrip(t *testing.T) {
	id := booleanAnswerID(3, "X")
	act, ok := parseActionID(id)
	if !ok || act.index != 3 || act.value != "X" {
		t.Errorf("round trip %q = %+v, ok=%v", id, act, ok)
	}

	id = choiceAnswerID(0, "D")
	act, ok = parseActionID(id)
	if !ok || act.index != 0 || act.value != "D" {
		t.Errorf("round trip %q = %+v, ok=%v", id, act, ok)
	}
}
