package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/junyong1111/cs-slack-bot/internal/logger"
	"github.com/junyong1111/cs-slack-bot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "csbot",
	Short: "CS study bot for Slack",
	Long: "csbot runs a conversational computer-science study coach: topic selection,\n" +
		"level tests, quizzes, free Q&A, and mock interviews, driven by an LLM with\n" +
		"built-in offline fallbacks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is a developer convenience; absence is not an error.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite event log (overrides CSBOT_DB env var)")
	rootCmd.PersistentFlags().String("log", "dev", `Log mode: "dev" or "prod"`)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event-log path using --db (highest
// priority), then CSBOT_DB, then the default user config path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("CSBOT_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	mode, _ := cmd.Flags().GetString("log")
	return logger.New(mode)
}
