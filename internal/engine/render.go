package engine

import (
	"fmt"
	"strings"

	"github.com/junyong1111/cs-slack-bot/internal/session"
	"github.com/junyong1111/cs-slack-bot/internal/study"
)

// Message builders. All user-facing wording lives here so handlers
// stay about transitions.

func topicMenu() Message {
	var b strings.Builder
	b.WriteString("What would you like to study? Pick a topic or type its name:\n")
	buttons := make([]Button, 0, len(study.Topics))
	for _, t := range study.Topics {
		fmt.Fprintf(&b, "• %s\n", t)
		buttons = append(buttons, Button{
			ActionID: prefixTopic + t,
			Label:    t,
			Value:    t,
		})
	}
	return Message{Text: b.String(), Buttons: buttons}
}

func invalidTopic() Message {
	return text(fmt.Sprintf(
		"I don't know that topic. Type one of: %s.",
		strings.Join(study.Topics, ", ")))
}

func levelCheckMenu(topic string) Message {
	return text(fmt.Sprintf(
		"Topic set to %s. How should we gauge your level?\n"+
			"1. self-assessment — tell me your level yourself\n"+
			"2. test — take a short placement test\n"+
			"Reply with 1 or 2.", topic))
}

func selfAssessmentMenu() Message {
	return Message{
		Text: "How would you rate yourself on this topic? Reply with beginner, intermediate, or advanced.",
		Buttons: []Button{
			{ActionID: prefixLevel + "beginner", Label: "beginner", Value: "beginner"},
			{ActionID: prefixLevel + "intermediate", Label: "intermediate", Value: "intermediate"},
			{ActionID: prefixLevel + "advanced", Label: "advanced", Value: "advanced"},
		},
	}
}

func testIntro(topic string) Message {
	return text(fmt.Sprintf("Here is your %s placement test. Answer with the buttons, or send everything at once like \"1: O, 2: X, 3: C\".", topic))
}

func testSubmitHint() Message {
	return text(`When you're done, send your answers in one message ("1: O, 2: X, ...") or send "submit" to grade the button answers.`)
}

func quizIntro(topic string) Message {
	return text(fmt.Sprintf("Quiz time! Three questions on %s.", topic))
}

func quizSubmitHint() Message {
	return text(`Answer with the buttons or in one message ("1: O, 2: B, 3: ..."), then send "check answers" to grade.`)
}

// renderQuestions produces one message per question, numbered from 1,
// with answer buttons for the objective types.
func renderQuestions(questions []study.Question) []Message {
	msgs := make([]Message, 0, len(questions))
	for i, q := range questions {
		msgs = append(msgs, renderQuestion(i, q))
	}
	return msgs
}

func renderQuestion(index int, q study.Question) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Q%d. %s", index+1, q.Text)

	msg := Message{}
	switch q.Type {
	case study.TypeBoolean:
		msg.Buttons = []Button{
			{ActionID: booleanAnswerID(index, "O"), Label: "O", Value: "O"},
			{ActionID: booleanAnswerID(index, "X"), Label: "X", Value: "X"},
		}

	case study.TypeChoice:
		for j, opt := range q.Options {
			letter := study.OptionLetter(j)
			fmt.Fprintf(&b, "\n%s. %s", letter, opt)
			msg.Buttons = append(msg.Buttons, Button{
				ActionID: choiceAnswerID(index, letter),
				Label:    letter,
				Value:    letter,
			})
		}

	case study.TypeFree:
		b.WriteString("\n(Answer in your own words as part of the bulk submission.)")
	}

	msg.Text = b.String()
	return msg
}

func renderGradeResult(title string, result study.GradeResult, questions []study.Question) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "%s results: %d/%d correct.\n", title, result.Correct, result.Total)
	for i, correct := range result.PerQuestion {
		mark := "✗"
		if correct {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s Q%d", mark, i+1)
		if !correct && i < len(questions) {
			fmt.Fprintf(&b, " — correct answer: %s", displayAnswer(questions[i]))
		}
		b.WriteString("\n")
	}
	return text(strings.TrimRight(b.String(), "\n"))
}

// displayAnswer renders a question's correct answer for result output,
// expanding choice letters to the option text.
func displayAnswer(q study.Question) string {
	if q.Type == study.TypeChoice {
		if idx := study.LetterIndex(q.Answer); idx >= 0 && idx < len(q.Options) {
			return fmt.Sprintf("%s (%s)", q.Answer, q.Options[idx])
		}
	}
	return q.Answer
}

func levelSet(level study.Level) Message {
	return text(fmt.Sprintf("Your level is set to %s.", level))
}

func tagList(tags []string) Message {
	if len(tags) == 0 {
		return text("No key concepts were extracted for this topic yet.")
	}
	return text(fmt.Sprintf(
		"Key concepts for this topic: %s.\nAsk about any of them with \"ask <concept> <your question>\".",
		strings.Join(tags, ", ")))
}

func roadmap(subs []study.Subtopic) Message {
	if len(subs) == 0 {
		return text("No study roadmap is available for this topic yet.")
	}
	var b strings.Builder
	b.WriteString("Where to go deeper:\n")
	for i, sub := range subs {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, sub.Title, sub.Description)
	}
	b.WriteString("The interview option drills into the first of these.")
	return text(b.String())
}

func learningMenu() Message {
	return text("What's next?\n" +
		"1. quiz — test what you just learned\n" +
		"2. question — ask me about a concept\n" +
		"3. interview — practice interview questions\n" +
		"Reply with 1, 2, or 3.")
}

func afterQuizMenu() Message {
	return Message{
		Text: "Nice work. Where to from here?\n" +
			"1. interview — practice interview questions\n" +
			"2. new topic — start over with another topic\n" +
			"3. question — ask me about a concept\n" +
			"Reply with 1, 2, or 3.",
		Buttons: []Button{
			{ActionID: actionStartInterview, Label: "Start interview"},
			{ActionID: actionNewTopic, Label: "New topic"},
			{ActionID: actionAskQuestion, Label: "Ask a question"},
		},
	}
}

func askInstructions() Message {
	return text(`Ask me anything about the current topic with "ask <concept> <your question>", for example: ask TCP/IP what is a three-way handshake. This works at any point in the session.`)
}

func degradedNotice() Message {
	return text("(Content generation is temporarily degraded; I'm serving built-in material instead.)")
}

func answerRecorded(index int, value string, answered, total int, mode session.Mode) Message {
	submitWord := keywordSubmit
	if mode == session.ModeQuiz {
		submitWord = keywordCheckAnswers
	}
	return text(fmt.Sprintf("Recorded %s for Q%d (%d/%d answered). Send \"%s\" when you're done.",
		value, index+1, answered, total, submitWord))
}

func bulkRecorded(recorded, answered, total int) Message {
	return text(fmt.Sprintf("Recorded %d answers (%d/%d answered). Send \"check answers\" to grade.",
		recorded, answered, total))
}

func submissionFormatError() Message {
	return text(`I couldn't read any answers from that. Use the format "1: O, 2: X, 3: C" (one entry per question), or answer with the buttons.`)
}

func modeGuidance(mode session.Mode) Message {
	switch mode {
	case session.ModeNone:
		return text(`Send "start studying" to begin a study session.`)
	case session.ModeSelectingTopic:
		return topicMenu()
	case session.ModeSelectingLevelCheck:
		return levelCheckMenu("your topic")
	case session.ModeSelfAssessment:
		return selfAssessmentMenu()
	case session.ModeLevelTest:
		return testSubmitHint()
	case session.ModeLearningCompleted:
		return learningMenu()
	case session.ModeQuiz:
		return quizSubmitHint()
	case session.ModeAfterQuiz:
		return afterQuizMenu()
	case session.ModeInterview:
		return text(`Answer the question in your own words, or send "next" to move on.`)
	}
	return text(`Send "start studying" to begin.`)
}

func interviewIntro(topic string, total int) Message {
	return text(fmt.Sprintf(
		"Mock interview on %s: %d questions. Answer each one in your own words; I'll show the model answer and move on. Send \"next\" to skip a question.",
		topic, total))
}

func interviewQuestion(index int, q study.InterviewQuestion) Message {
	return text(fmt.Sprintf("Interview Q%d: %s", index+1, q.Question))
}

func modelAnswer(answer string) Message {
	return text("Model answer: " + answer)
}

func interviewDone() Message {
	return Message{
		Text: `That's the end of the interview — well done! Send "start studying" for a new topic, or hit the button to run another round.`,
		Buttons: []Button{
			{ActionID: actionStartInterview, Label: "Another round"},
			{ActionID: actionNewTopic, Label: "New topic"},
		},
	}
}
