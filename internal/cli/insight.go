package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akshay543210/trade-paste-analytics/internal/insight"
	"github.com/akshay543210/trade-paste-analytics/internal/llm"
	"github.com/akshay543210/trade-paste-analytics/internal/logging"
)

// addInsightCommand adds the AI performance review command.
func addInsightCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "AI-generated performance review",
		Long: `Generate a narrative review of your trading performance.

Aggregated statistics are sent to the configured completion endpoint and the
returned review is rendered. Requires an OpenAI API key (credentials.toml or
the OPENAI_API_KEY environment variable).`,
		Example: `  tradejournal insight
  tradejournal insight --days 30
  tradejournal insight --pair EURUSD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}
			if app.LLM == nil {
				output.Error("No API key configured. Set OPENAI_API_KEY or edit credentials.toml.")
				return llm.ErrMissingAPIKey
			}

			filter, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			output.Info("Analyzing %d trades...", len(trades))

			start := time.Now()
			segments, err := insight.Generate(ctx, app.LLM, trades)
			logging.LogInsightRequest(app.Logger, app.Config.Insight.Model, len(trades), time.Since(start), err)
			if err != nil {
				switch {
				case errors.Is(err, insight.ErrNoTrades):
					output.Warning("No data provided: record some trades first.")
				case errors.Is(err, llm.ErrRateLimited):
					output.Error("Rate limited by the completion endpoint. Try again later.")
				case errors.Is(err, llm.ErrPaymentRequired):
					output.Error("Completion endpoint credits exhausted.")
				default:
					var upstream *llm.UpstreamError
					if errors.As(err, &upstream) {
						output.Error("Completion endpoint failed with status %d.", upstream.Status)
					} else {
						output.Error("Insight generation failed: %v", err)
					}
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(segments)
			}

			output.Println()
			renderSegments(output, segments)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().Int("limit", 0, "maximum number of trades to analyze (0 = all)")

	rootCmd.AddCommand(cmd)
}

// renderSegments prints the parsed narrative with simple styling.
func renderSegments(output *Output, segments []insight.Segment) {
	for _, seg := range segments {
		switch seg.Kind {
		case insight.Heading:
			output.Bold(seg.Text)
		case insight.Bullet:
			output.Printf("  • %s\n", seg.Text)
		default:
			output.Printf("%s\n", seg.Text)
		}
	}
}
