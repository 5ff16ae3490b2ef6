package slackhttp

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/junyong1111/cs-slack-bot/internal/engine"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
)

// Sender posts engine messages to Slack as block kit messages.
type Sender struct {
	client *slack.Client
	log    *logger.Logger
}

// NewSender creates a Sender using the given bot token.
func NewSender(botToken string, log *logger.Logger) *Sender {
	if log == nil {
		log = logger.NewNop()
	}
	return &Sender{client: slack.New(botToken), log: log}
}

// Send implements engine.SendFunc. Failures are logged, never
// propagated: a lost reply must not wedge the user's worker.
func (s *Sender) Send(ctx context.Context, channel string, msg engine.Message) {
	_, _, err := s.client.PostMessageContext(ctx, channel,
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionBlocks(renderBlocks(msg)...),
	)
	if err != nil {
		s.log.Error("post message failed", "channel", channel, "error", err)
	}
}

// renderBlocks converts one engine message into Slack blocks: a text
// section plus one actions block when the message carries buttons.
func renderBlocks(msg engine.Message) []slack.Block {
	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.PlainTextType, msg.Text, false, false),
			nil, nil,
		),
	}

	if len(msg.Buttons) == 0 {
		return blocks
	}

	elements := make([]slack.BlockElement, 0, len(msg.Buttons))
	for _, b := range msg.Buttons {
		elements = append(elements, slack.NewButtonBlockElement(
			b.ActionID,
			b.Value,
			slack.NewTextBlockObject(slack.PlainTextType, b.Label, false, false),
		))
	}
	blocks = append(blocks, slack.NewActionBlock("", elements...))
	return blocks
}
