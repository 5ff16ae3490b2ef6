package slackhttp

import (
	"fmt"
	"os"
)

// Config holds the Slack transport settings.
type Config struct {
	// BotToken is the xoxb- bot token used to post messages.
	BotToken string

	// SigningSecret verifies that inbound requests come from Slack.
	SigningSecret string

	// Addr is the listen address, e.g. ":8080".
	Addr string
}

// ConfigFromEnv reads the transport settings from the environment.
func ConfigFromEnv() Config {
	addr := os.Getenv("CSBOT_LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		BotToken:      os.Getenv("SLACK_BOT_TOKEN"),
		SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		Addr:          addr,
	}
}

// Validate checks that the settings required to serve are present.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is not set")
	}
	if c.SigningSecret == "" {
		return fmt.Errorf("SLACK_SIGNING_SECRET is not set")
	}
	return nil
}
