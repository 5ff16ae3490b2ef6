package content

import (
	"fmt"
	"strings"

	"github.com/junyong1111/cs-slack-bot/internal/study"
)

const systemPrompt = `You are a computer-science study coach preparing learners for engineering interviews.

Rules:
- Explain in plain language a beginner can follow. Unpack jargon the first time it appears.
- Include concrete, real-world examples.
- Be accurate. If a simplification hides an important detail, say so briefly.
- When asked for JSON, output exactly the requested shape and nothing else.`

func explainPrompt(topic string, level study.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if level != "" {
		fmt.Fprintf(&b, "Learner level: %s\n", level)
	}
	b.WriteString(`
Explain this topic so a CS beginner can understand it:
- Cover the core concepts in simple language
- Unpack every technical term
- Include real examples
- Do not be too brief

Also extract the 5-7 key concept keywords a learner must know for this topic,
most fundamental first. Keywords only, no explanations in the tag list.`)
	return b.String()
}

func levelTestPrompt(topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	b.WriteString(`
Create a placement test to gauge the learner's level:
- 2 boolean (O/X) questions probing basic concepts
- 2 multiple-choice questions (4 options each) probing important concepts
- 1 free-text question probing deeper understanding

Vary the difficulty so the test discriminates well: mix beginner,
intermediate, and advanced concepts, and tag each question with the
level it probes and the sub-concept it covers. Output the questions in
exactly that order: boolean, boolean, choice, choice, free.`)
	return b.String()
}

func quizPrompt(topic string, tags []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if len(tags) > 0 {
		fmt.Fprintf(&b, "Key concepts: %s\n", strings.Join(tags, ", "))
	}
	b.WriteString(`
Create a 3-question quiz over this topic and its key concepts:
- 1 boolean (O/X) question
- 1 multiple-choice question with exactly 4 options
- 1 free-text question

Output the questions in exactly that order: boolean, choice, free.`)
	return b.String()
}

func subtopicPrompt(topic string) string {
	return fmt.Sprintf(`Topic: %s

Extract 5-7 sub-concepts a learner should study for this topic, in
CS-priority order. Each entry needs a short title and a one-line
description of what it covers.`, topic)
}

func interviewPrompt(topic, subtopic string, level study.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Sub-concept: %s\n", subtopic)
	fmt.Fprintf(&b, "Learner level: %s\n", level)
	b.WriteString(`
Generate engineering interview questions for this sub-concept:
1. Basic questions (2-3) checking core-concept understanding, each with
   1-2 follow-up questions that dig deeper
2. Advanced questions (1-2) checking applied problem solving

Every question needs a model answer summary. Fill exactly one of the
basic or advanced fields per item.`)
	return b.String()
}

func freeQuestionPrompt(topic, tag, question string) string {
	return fmt.Sprintf(`Topic: %s
Concept under discussion: %s
Learner question: %s

Answer the question thoroughly and accessibly:
- Unpack complex terms
- Include a real-world example where one exists
- Be accurate`, topic, tag, question)
}
