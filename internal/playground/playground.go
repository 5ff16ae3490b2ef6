// Package playground is a local terminal chat for exercising the
// conversation engine without Slack: type what a learner would type
// and see the bot's replies inline. Useful for trying prompts and
// grading behavior before deploying.
package playground

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/junyong1111/cs-slack-bot/internal/engine"
)

const (
	localUser    = "local-user"
	localChannel = "tui"
)

var (
	youStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type line struct {
	fromUser bool
	text     string
}

// Model is the root Bubble Tea model for the playground chat.
type Model struct {
	engine     *engine.Engine
	input      textinput.Model
	transcript []line
	width      int
	height     int
	waiting    bool
}

// New creates the playground model around an engine.
func New(e *engine.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = `Try "start studying"`
	ti.Focus()
	return Model{engine: e, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// botReplyMsg carries the engine's messages back into the update loop.
type botReplyMsg []engine.Message

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.transcript = append(m.transcript, line{fromUser: true, text: text})
			m.input.SetValue("")
			m.waiting = true
			return m, m.ask(text)
		}

	case botReplyMsg:
		m.waiting = false
		for _, reply := range msg {
			m.transcript = append(m.transcript, line{text: renderReply(reply)})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs one engine step off the update loop.
func (m Model) ask(text string) tea.Cmd {
	e := m.engine
	return func() tea.Msg {
		return botReplyMsg(e.Handle(context.Background(), engine.TextMessage{
			UserID:  localUser,
			Channel: localChannel,
			Text:    text,
		}))
	}
}

// renderReply flattens a message for terminal display; buttons become a
// hint line since the terminal has nothing to click.
func renderReply(msg engine.Message) string {
	if len(msg.Buttons) == 0 {
		return msg.Text
	}
	labels := make([]string, 0, len(msg.Buttons))
	for _, b := range msg.Buttons {
		labels = append(labels, b.Label)
	}
	return msg.Text + "\n" + hintStyle.Render("(options: "+strings.Join(labels, " | ")+" — type your choice)")
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder
	b.WriteString(hintStyle.Render("cs-study-bot playground — esc to quit") + "\n\n")

	visible := m.transcript
	if max := m.height - 6; max > 0 && len(visible) > max {
		visible = visible[len(visible)-max:]
	}
	for _, l := range visible {
		if l.fromUser {
			b.WriteString(youStyle.Render("you> ") + l.text + "\n")
		} else {
			b.WriteString(botStyle.Render("bot> ") + l.text + "\n")
		}
	}

	if m.waiting {
		b.WriteString(hintStyle.Render("bot is thinking...") + "\n")
	}
	b.WriteString("\n" + m.input.View())

	v.SetContent(b.String())
	return v
}

// Run starts the playground program and blocks until it exits.
func Run(e *engine.Engine) error {
	p := tea.NewProgram(New(e))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running playground:", err)
		return err
	}
	return nil
}
