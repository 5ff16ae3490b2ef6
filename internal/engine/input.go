package engine

// Input is one inbound event from the chat transport, tagged with the
// user identity that produced it.
type Input interface {
	// User returns the opaque user identity.
	User() string

	// ChannelID returns the channel the input arrived on, so replies
	// go back to the same place.
	ChannelID() string
}

// TextMessage is a plain chat message.
type TextMessage struct {
	UserID  string
	Channel string
	Text    string
}

func (m TextMessage) User() string      { return m.UserID }
func (m TextMessage) ChannelID() string { return m.Channel }

// ButtonAction is an interactive button click. ActionID encodes the
// command; Value carries the button's payload where the transport
// provides one.
type ButtonAction struct {
	UserID   string
	Channel  string
	ActionID string
	Value    string
}

func (a ButtonAction) User() string      { return a.UserID }
func (a ButtonAction) ChannelID() string { return a.Channel }
