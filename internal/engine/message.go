package engine

import "strings"

// Button is one interactive element attached to a message.
type Button struct {
	// ActionID encodes the command, see action.go.
	ActionID string

	// Label is the text shown on the button.
	Label string

	// Value is an optional payload echoed back on click.
	Value string
}

// Message is one outbound chat message. The transport renders Buttons
// as interactive elements keyed by ActionID.
type Message struct {
	Text    string
	Buttons []Button
}

func text(s string) Message {
	return Message{Text: s}
}

// chunked splits long text into sequential messages of at most size
// characters, breaking at line or word boundaries where possible.
func chunked(s string, size int) []Message {
	var msgs []Message
	for _, part := range splitChunks(s, size) {
		msgs = append(msgs, Message{Text: part})
	}
	return msgs
}

// splitChunks cuts s into pieces of at most size runes, preferring to
// cut after the last newline, then the last space, inside the window.
func splitChunks(s string, size int) []string {
	if size <= 0 {
		return []string{s}
	}
	runes := []rune(s)
	var out []string
	for len(runes) > size {
		cut := size
		window := runes[:size]
		if i := lastIndexRune(window, '\n'); i > 0 {
			cut = i + 1
		} else if i := lastIndexRune(window, ' '); i > 0 {
			cut = i + 1
		}
		out = append(out, strings.TrimRight(string(runes[:cut]), " \n"))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}

func lastIndexRune(rs []rune, r rune) int {
	for i := len(rs) - 1; i >= 0; i-- {
		if rs[i] == r {
			return i
		}
	}
	return -1
}
