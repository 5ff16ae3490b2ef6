package content

import (
	"fmt"
	"strings"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// questionOutput is one raw generated question before normalization.
type questionOutput struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Level    string   `json:"level"`
	Topic    string   `json:"topic"`
}

type questionListOutput struct {
	Questions []questionOutput `json:"questions"`
}

// normalizeQuestions validates a raw question list against the
// expected type mix and converts it to study questions in canonical
// order (boolean, then choice, then free). Any structural defect fails
// the whole list; the caller substitutes the fallback.
func normalizeQuestions(topic string, raw []questionOutput, wantBoolean, wantChoice, wantFree int) ([]study.Question, error) {
	var booleans, choices, frees []study.Question

	for i, r := range raw {
		q, err := normalizeQuestion(topic, r)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		switch q.Type {
		case study.TypeBoolean:
			booleans = append(booleans, q)
		case study.TypeChoice:
			choices = append(choices, q)
		case study.TypeFree:
			frees = append(frees, q)
		}
	}

	if len(booleans) != wantBoolean || len(choices) != wantChoice || len(frees) != wantFree {
		return nil, fmt.Errorf("type mix %d/%d/%d, want %d/%d/%d",
			len(booleans), len(choices), len(frees), wantBoolean, wantChoice, wantFree)
	}

	out := make([]study.Question, 0, len(raw))
	out = append(out, booleans...)
	out = append(out, choices...)
	out = append(out, frees...)
	return out, nil
}

func normalizeQuestion(topic string, r questionOutput) (study.Question, error) {
	q := study.Question{
		Text:  strings.TrimSpace(r.Question),
		Topic: topic,
		Tag:   strings.TrimSpace(r.Topic),
	}
	if q.Text == "" {
		return q, fmt.Errorf("empty question text")
	}
	if lvl, ok := study.ParseLevel(r.Level); ok {
		q.Level = lvl
	}

	answer := strings.TrimSpace(r.Answer)
	switch strings.ToLower(strings.TrimSpace(r.Type)) {
	case "boolean", "ox":
		q.Type = study.TypeBoolean
		answer = strings.ToUpper(answer)
		if answer != "O" && answer != "X" {
			return q, fmt.Errorf("boolean answer %q is not O or X", r.Answer)
		}
		q.Answer = answer

	case "choice", "multiple_choice":
		q.Type = study.TypeChoice
		if len(r.Options) < 2 {
			return q, fmt.Errorf("choice question has %d options", len(r.Options))
		}
		q.Options = r.Options
		letter, err := answerLetter(answer, r.Options)
		if err != nil {
			return q, err
		}
		q.Answer = letter

	case "free", "subjective":
		q.Type = study.TypeFree
		if answer == "" {
			return q, fmt.Errorf("free question has no reference answer")
		}
		q.Answer = answer

	default:
		return q, fmt.Errorf("unknown question type %q", r.Type)
	}

	return q, nil
}

// answerLetter resolves a generated choice answer to an option letter.
// Models return either the letter itself or the full option text.
func answerLetter(answer string, options []string) (string, error) {
	if idx := study.LetterIndex(answer); idx >= 0 && idx < len(options) {
		return study.OptionLetter(idx), nil
	}
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), answer) {
			return study.OptionLetter(i), nil
		}
	}
	return "", fmt.Errorf("choice answer %q matches no option", answer)
}

// interviewItemOutput is one raw interview item. Exactly one of Basic
// or Advanced is populated.
type interviewItemOutput struct {
	Basic    string   `json:"basic"`
	Advanced string   `json:"advanced"`
	Followup []string `json:"followup"`
	Answer   string   `json:"answer"`
}

type interviewListOutput struct {
	Questions []interviewItemOutput `json:"questions"`
}

// normalizeInterview flattens raw interview items into a linear
// question sequence: each basic or advanced question becomes one entry,
// and each follow-up becomes its own entry inheriting the thread's
// model answer.
func normalizeInterview(raw []interviewItemOutput) ([]study.InterviewQuestion, error) {
	var out []study.InterviewQuestion
	for _, item := range raw {
		question := strings.TrimSpace(item.Basic)
		if question == "" {
			question = strings.TrimSpace(item.Advanced)
		}
		if question == "" {
			continue
		}
		out = append(out, study.InterviewQuestion{
			Question:    question,
			ModelAnswer: strings.TrimSpace(item.Answer),
		})
		for _, f := range item.Followup {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, study.InterviewQuestion{
					Question:    f,
					ModelAnswer: strings.TrimSpace(item.Answer),
				})
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable interview questions")
	}
	return out, nil
}
