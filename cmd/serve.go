package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/junyong1111/cs-slack-bot/internal/content"
	"github.com/junyong1111/cs-slack-bot/internal/engine"
	"github.com/junyong1111/cs-slack-bot/internal/llm"
	"github.com/junyong1111/cs-slack-bot/internal/logger"
	"github.com/junyong1111/cs-slack-bot/internal/session"
	"github.com/junyong1111/cs-slack-bot/internal/store"
	"github.com/junyong1111/cs-slack-bot/internal/study"
	"github.com/junyong1111/cs-slack-bot/internal/transport/slackhttp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Slack webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	slackCfg := slackhttp.ConfigFromEnv()
	if err := slackCfg.Validate(); err != nil {
		return fmt.Errorf("slack config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open event store: %w", err)
	}
	defer st.Close()

	eng, err := buildEngine(ctx, st.EventRepo(), log, false)
	if err != nil {
		return err
	}

	sender := slackhttp.NewSender(slackCfg.BotToken, log)
	dispatcher := engine.NewDispatcher(eng, sender.Send, engine.DefaultConfig(), log)
	defer dispatcher.Close()

	server := slackhttp.NewServer(slackCfg, dispatcher, log)
	return server.Run(ctx)
}

// buildEngine assembles the conversation engine. With offlineOK, a
// missing LLM configuration degrades to built-in content instead of
// failing.
func buildEngine(ctx context.Context, events store.EventRepo, log *logger.Logger, offlineOK bool) (*engine.Engine, error) {
	provider, err := llm.NewProviderFromEnv(ctx, events, log)
	if err != nil {
		if !offlineOK {
			return nil, fmt.Errorf("LLM provider: %w", err)
		}
		log.Warn("no LLM provider configured, serving built-in content only", "error", err)
		provider = llm.NewMockProvider()
	}

	svc := content.NewGenerator(provider, content.DefaultConfig(), log)
	scorer := study.NewScorer(study.ConfigFromEnv())
	return engine.New(session.NewStore(), svc, scorer, events, engine.DefaultConfig(), log), nil
}
