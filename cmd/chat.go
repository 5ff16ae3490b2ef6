package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junyong1111/cs-slack-bot/internal/playground"
	"github.com/junyong1111/cs-slack-bot/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot locally in the terminal",
	Long: "chat runs the full conversation engine against a terminal UI instead of\n" +
		"Slack. Without an LLM key it still works, serving the built-in fallback\n" +
		"content for every topic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		events := store.EventRepo(store.NopEventRepo{})
		dbPath, err := resolveDBPath(cmd)
		if err == nil {
			if st, serr := store.Open(dbPath); serr == nil {
				defer st.Close()
				events = st.EventRepo()
			} else {
				log.Warn("event store unavailable, events will be discarded", "error", serr)
			}
		}

		eng, err := buildEngine(cmd.Context(), events, log, true)
		if err != nil {
			return err
		}
		return playground.Run(eng)
	},
}
