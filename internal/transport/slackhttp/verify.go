package slackhttp

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
)

// verifySignature authenticates the request against the signing secret
// before any handler sees it. The body is restored for downstream
// handlers.
func (s *Server) verifySignature(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	verifier, err := slack.NewSecretsVerifier(c.Request.Header, s.cfg.SigningSecret)
	if err != nil {
		s.log.Warn("signature header missing or malformed", "error", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if _, err := verifier.Write(body); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := verifier.Ensure(); err != nil {
		s.log.Warn("signature mismatch", "error", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Next()
}
