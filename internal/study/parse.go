package study

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnparseableSubmission is returned when a bulk answer submission
// yields no index/answer pairs at all.
var ErrUnparseableSubmission = errors.New("no index:answer pairs found in submission")

// ParsedAnswer is one entry of a bulk answer submission.
type ParsedAnswer struct {
	// Index is the zero-based question index.
	Index int

	// Answer is the submitted answer text, trimmed.
	Answer string
}

// ParseBulkAnswers parses a textual bulk submission like
// "1: O, 2: X, 3: C". Items are separated by commas, semicolons, or
// newlines; within each item the question number is separated from the
// answer by the first of ':', '.', ')' or '-'. The question number is
// 1-based in the input and returned zero-based; trailing non-digit
// characters after the number are ignored. Items that do not fit the
// grammar are skipped. If nothing parses, ErrUnparseableSubmission is
// returned.
func ParseBulkAnswers(text string) ([]ParsedAnswer, error) {
	items := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	var out []ParsedAnswer
	for _, item := range items {
		sep := strings.IndexAny(item, ":.)-")
		if sep < 0 {
			continue
		}
		idx, ok := leadingNumber(item[:sep])
		if !ok || idx < 1 {
			continue
		}
		answer := strings.TrimSpace(item[sep+1:])
		if answer == "" {
			continue
		}
		out = append(out, ParsedAnswer{Index: idx - 1, Answer: answer})
	}

	if len(out) == 0 {
		return nil, ErrUnparseableSubmission
	}
	return out, nil
}

// leadingNumber extracts the decimal number at the start of s, ignoring
// leading whitespace and anything after the digits (so "3번" parses
// as 3).
func leadingNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n := 0
	found := false
	for _, r := range s {
		if !unicode.IsDigit(r) {
			break
		}
		n = n*10 + int(r-'0')
		found = true
	}
	return n, found
}
