package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Action IDs follow a fixed naming convention shared with the block
// renderer in the transport layer:
//
//	boolean_answer_<index>_<O|X>   answer a boolean question
//	choice_answer_<index>_<A-D>    answer a multiple-choice question
//	topic_<key>                    pick a topic
//	level_<key>                    self-report a level
//
// plus the fixed literals below.
const (
	actionStartInterview = "start_interview"
	actionNewTopic       = "new_topic"
	actionAskQuestion    = "ask_question"

	prefixBooleanAnswer = "boolean_answer_"
	prefixChoiceAnswer  = "choice_answer_"
	prefixTopic         = "topic_"
	prefixLevel         = "level_"
)

type actionKind int

const (
	actionUnknown actionKind = iota
	actionAnswer
	actionTopic
	actionLevel
	actionInterview
	actionRestart
	actionInstructions
)

// action is a decoded button command.
type action struct {
	kind actionKind

	// index is the zero-based question index for actionAnswer.
	index int

	// value is the answer token, topic key, or level key.
	value string
}

// parseActionID decodes a button action_id. The boolean for malformed
// IDs is false; the engine answers those with a guidance message
// instead of mutating state.
func parseActionID(id string) (action, bool) {
	switch id {
	case actionStartInterview:
		return action{kind: actionInterview}, true
	case actionNewTopic:
		return action{kind: actionRestart}, true
	case actionAskQuestion:
		return action{kind: actionInstructions}, true
	}

	switch {
	case strings.HasPrefix(id, prefixBooleanAnswer):
		return parseAnswerID(strings.TrimPrefix(id, prefixBooleanAnswer), isBooleanToken)
	case strings.HasPrefix(id, prefixChoiceAnswer):
		return parseAnswerID(strings.TrimPrefix(id, prefixChoiceAnswer), isChoiceToken)
	case strings.HasPrefix(id, prefixTopic):
		if key := strings.TrimPrefix(id, prefixTopic); key != "" {
			return action{kind: actionTopic, value: key}, true
		}
	case strings.HasPrefix(id, prefixLevel):
		if key := strings.TrimPrefix(id, prefixLevel); key != "" {
			return action{kind: actionLevel, value: key}, true
		}
	}
	return action{}, false
}

func parseAnswerID(rest string, validToken func(string) bool) (action, bool) {
	sep := strings.LastIndex(rest, "_")
	if sep <= 0 {
		return action{}, false
	}
	idx, err := strconv.Atoi(rest[:sep])
	if err != nil || idx < 0 {
		return action{}, false
	}
	token := rest[sep+1:]
	if !validToken(token) {
		return action{}, false
	}
	return action{kind: actionAnswer, index: idx, value: token}, true
}

func isBooleanToken(s string) bool {
	return s == "O" || s == "X"
}

func isChoiceToken(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'D'
}

// Answer button builders used by question rendering.

func booleanAnswerID(index int, token string) string {
	return fmt.Sprintf("%s%d_%s", prefixBooleanAnswer, index, token)
}

func choiceAnswerID(index int, letter string) string {
	return fmt.Sprintf("%s%d_%s", prefixChoiceAnswer, index, letter)
}
