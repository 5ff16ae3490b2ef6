package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/junyong1111/cs-slack-bot/internal/llm"
	"github.com/junyong1111/cs-slack-bot/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open event store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		convo, err := repo.ConversationStats(ctx)
		if err != nil {
			return fmt.Errorf("conversation stats: %w", err)
		}
		fmt.Println("Conversations")
		fmt.Printf("  inputs handled: %d\n", convo.TotalInputs)
		fmt.Printf("  unique users:   %d\n", convo.UniqueUsers)
		if !convo.Since.IsZero() {
			fmt.Printf("  since:          %s\n", convo.Since.Format("2006-01-02 15:04"))
		}
		for _, mode := range sortedKeys(convo.ByMode) {
			fmt.Printf("    %-22s %d\n", mode, convo.ByMode[mode])
		}

		stats, err := repo.LLMStats(ctx)
		if err != nil {
			return fmt.Errorf("llm stats: %w", err)
		}
		fmt.Println("\nLLM requests")
		fmt.Printf("  requests:       %d (%d failed)\n", stats.TotalRequests, stats.Failures)
		fmt.Printf("  tokens:         %d in / %d out\n", stats.InputTokens, stats.OutputTokens)
		fmt.Printf("  avg latency:    %.0f ms\n", stats.AvgLatencyMs)
		for _, purpose := range sortedKeys(stats.ByPurpose) {
			fmt.Printf("    %-22s %d\n", purpose, stats.ByPurpose[purpose])
		}

		model := llm.ConfigFromEnv().Model()
		if cost := llm.LookupCost(model); cost != nil {
			fmt.Printf("  est. cost:      $%.4f (%s pricing)\n",
				cost.Cost(stats.InputTokens, stats.OutputTokens), model)
		}
		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
