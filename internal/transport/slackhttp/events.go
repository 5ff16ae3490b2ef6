package slackhttp

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack/slackevents"

	"github.com/junyong1111/cs-slack-bot/internal/engine"
)

// handleEvents receives the Events API callbacks: the one-time URL
// verification handshake and message events.
func (s *Server) handleEvents(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	event, err := slackevents.ParseEvent(body, slackevents.OptionNoVerifyToken())
	if err != nil {
		s.log.Warn("unparseable event payload", "error", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		// Echo the challenge so Slack accepts the endpoint.
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.String(http.StatusOK, challenge.Challenge)

	case slackevents.CallbackEvent:
		s.enqueueCallback(event.InnerEvent)
		c.Status(http.StatusOK)

	default:
		c.Status(http.StatusOK)
	}
}

// enqueueCallback converts a message-style event into a TextMessage.
// Bot messages (including our own) are ignored to avoid feedback loops.
func (s *Server) enqueueCallback(inner slackevents.EventsAPIInnerEvent) {
	switch ev := inner.Data.(type) {
	case *slackevents.MessageEvent:
		if ev.BotID != "" || ev.SubType != "" {
			return
		}
		s.enqueue(engine.TextMessage{
			UserID:  ev.User,
			Channel: ev.Channel,
			Text:    ev.Text,
		})

	case *slackevents.AppMentionEvent:
		if ev.BotID != "" {
			return
		}
		s.enqueue(engine.TextMessage{
			UserID:  ev.User,
			Channel: ev.Channel,
			Text:    stripMention(ev.Text),
		})
	}
}

func (s *Server) enqueue(in engine.Input) {
	if !s.dispatcher.Enqueue(in) {
		s.log.Warn("input dropped", "user", in.User())
	}
}

// stripMention removes the leading "<@U...>" token a mention carries so
// the engine sees only the command text.
func stripMention(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "<@") {
		if end := strings.Index(text, ">"); end >= 0 {
			text = strings.TrimSpace(text[end+1:])
		}
	}
	return text
}
