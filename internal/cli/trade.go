package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akshay543210/trade-paste-analytics/internal/logging"
	"github.com/akshay543210/trade-paste-analytics/internal/models"
	"github.com/akshay543210/trade-paste-analytics/internal/stats"
	"github.com/akshay543210/trade-paste-analytics/internal/store"
)

// addTradeCommands adds the trade record commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade record management",
		Long:  "Record, list, and delete journal trades.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <pair>",
		Short: "Record a trade",
		Long:  "Record a completed trade in the journal.",
		Example: `  tradejournal trade add EURUSD --session London --outcome WIN --risk 100 --reward 200
  tradejournal trade add GBPJPY --session Asia --outcome BREAKEVEN --setup "Breakout"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			session, _ := cmd.Flags().GetString("session")
			outcomeStr, _ := cmd.Flags().GetString("outcome")
			setup, _ := cmd.Flags().GetString("setup")
			notes, _ := cmd.Flags().GetString("notes")
			screenshot, _ := cmd.Flags().GetString("screenshot")
			when, _ := cmd.Flags().GetString("time")

			outcome, err := models.ParseOutcome(strings.ToUpper(outcomeStr))
			if err != nil {
				output.Error("%v", err)
				return err
			}

			tradeTime := time.Now()
			if when != "" {
				tradeTime, err = time.Parse("2006-01-02 15:04", when)
				if err != nil {
					output.Error("Invalid --time (expected \"2006-01-02 15:04\"): %v", err)
					return err
				}
			}

			trade := &models.TradeRecord{
				ID:            fmt.Sprintf("T%d", time.Now().UnixNano()),
				Pair:          strings.ToUpper(args[0]),
				Session:       session,
				TradeTime:     tradeTime,
				Setup:         setup,
				Outcome:       outcome,
				Notes:         notes,
				ScreenshotURL: screenshot,
			}
			if cmd.Flags().Changed("risk") {
				risk, _ := cmd.Flags().GetFloat64("risk")
				trade.Risk = &risk
			}
			if cmd.Flags().Changed("reward") {
				reward, _ := cmd.Flags().GetFloat64("reward")
				trade.Reward = &reward
			}

			if err := app.Store.SaveTrade(ctx, trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			logging.LogTradeSaved(app.Logger, trade.ID, trade.Pair, trade.Session, string(trade.Outcome))

			output.Success("✓ Trade %s recorded", trade.ID)
			if rr, ok := trade.RiskReward(); ok {
				output.Printf("  Risk-reward: %s\n", FormatRiskReward(rr))
			}
			return nil
		},
	}

	cmd.Flags().String("session", models.SessionLondon, "trading session (Asia, London, New York)")
	cmd.Flags().String("outcome", "", "trade outcome: WIN, LOSS, or BREAKEVEN (required)")
	cmd.Flags().String("setup", "", "strategy/setup label")
	cmd.Flags().Float64("risk", 0, "amount put at risk")
	cmd.Flags().Float64("reward", 0, "amount gained if the trade wins")
	cmd.Flags().String("notes", "", "free-form notes")
	cmd.Flags().String("screenshot", "", "screenshot URL")
	cmd.Flags().String("time", "", "trade time as \"2006-01-02 15:04\" (default: now)")
	cmd.MarkFlagRequired("outcome")

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		Example: `  tradejournal trade list
  tradejournal trade list --pair EURUSD --days 30
  tradejournal trade list --session London`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			filter, err := filterFromFlags(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			if filter.Limit == 0 {
				filter.Limit = 100
			}

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Time", "Pair", "Session", "Setup", "R:R", "Outcome", "P&L")
			for _, t := range trades {
				rr := "-"
				if ratio, ok := t.RiskReward(); ok {
					rr = FormatRiskReward(ratio)
				}
				table.AddRow(
					TruncateString(t.ID, 14),
					FormatDateTime(t.TradeTime),
					t.Pair,
					t.Session,
					TruncateString(t.SetupLabel(), 15),
					rr,
					formatOutcome(output, t.Outcome),
					output.FormatPnL(stats.TradePnL(&t)),
				)
			}
			table.Render()
			output.Printf("\n%d trades\n", len(trades))
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().Int("limit", 100, "maximum number of trades to list")

	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}
			output.Success("✓ Trade %s deleted", args[0])
			return nil
		},
	}
}

// addFilterFlags registers the shared trade query flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("pair", "", "filter by instrument pair")
	cmd.Flags().String("session", "", "filter by session")
	cmd.Flags().Int("days", 0, "only trades from the last N days")
}

// filterFromFlags builds a store filter from the shared flags.
func filterFromFlags(cmd *cobra.Command) (store.TradeFilter, error) {
	pair, _ := cmd.Flags().GetString("pair")
	session, _ := cmd.Flags().GetString("session")
	days, _ := cmd.Flags().GetInt("days")
	limit, _ := cmd.Flags().GetInt("limit")

	filter := store.TradeFilter{
		Pair:    strings.ToUpper(pair),
		Session: session,
		Limit:   limit,
	}
	if days > 0 {
		filter.StartDate = time.Now().AddDate(0, 0, -days)
	}
	return filter, nil
}

func formatOutcome(output *Output, outcome models.Outcome) string {
	switch outcome {
	case models.OutcomeWin:
		return output.Green("WIN")
	case models.OutcomeLoss:
		return output.Red("LOSS")
	default:
		return "BE"
	}
}
