package slackhttp

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"

	"github.com/junyong1111/cs-slack-bot/internal/engine"
)

// handleInteractions receives block_actions payloads from button
// clicks. Slack posts the payload as a form field.
func (s *Server) handleInteractions(c *gin.Context) {
	payload := c.PostForm("payload")
	if payload == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		s.log.Warn("unparseable interaction payload", "error", err)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions {
		c.Status(http.StatusOK)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		s.enqueue(engine.ButtonAction{
			UserID:   callback.User.ID,
			Channel:  callback.Channel.ID,
			ActionID: action.ActionID,
			Value:    action.Value,
		})
	}
	c.Status(http.StatusOK)
}
