package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akshay543210/trade-paste-analytics/internal/stats"
)

// addReportCommand adds the performance report command.
func addReportCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a performance report",
		Long: `Aggregate recorded trades into a performance report.

Includes overall win rate and P&L plus breakdowns by session, pair, setup,
hour of day, and risk-reward bucket.`,
		Example: `  tradejournal report --period weekly
  tradejournal report --period monthly --pair EURUSD
  tradejournal report --buckets b`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store not initialized")
			}

			period, _ := cmd.Flags().GetString("period")
			bucketFlag, _ := cmd.Flags().GetString("buckets")

			bucketSet := stats.BucketSetA
			if bucketFlag == "b" {
				bucketSet = stats.BucketSetB
			}

			now := time.Now()
			var periodLabel string
			var startDate time.Time
			switch period {
			case "daily":
				periodLabel = "Daily"
				startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			case "weekly":
				periodLabel = "Weekly"
				startDate = now.AddDate(0, 0, -7)
			case "monthly":
				periodLabel = "Monthly"
				startDate = now.AddDate(0, -1, 0)
			case "all":
				periodLabel = "All-Time"
			default:
				return fmt.Errorf("invalid period: %s (must be daily, weekly, monthly, or all)", period)
			}

			filter, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}
			// --days takes precedence over --period when given explicitly.
			if filter.StartDate.IsZero() {
				filter.StartDate = startDate
			}
			filter.EndDate = now

			trades, err := app.Store.GetTrades(ctx, filter)
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			summary := stats.Aggregate(trades)
			sessions := stats.RankByPnL(stats.BySession(trades))
			pairs := stats.RankByPnL(stats.ByPair(trades))
			setups := stats.TopByCount(stats.BySetup(trades), 10)
			hours := stats.ByHour(trades)
			buckets := stats.ByRiskReward(trades, bucketSet)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"period":     periodLabel,
					"summary":    summary,
					"sessions":   sessions,
					"pairs":      pairs,
					"setups":     setups,
					"hours":      hours,
					"riskReward": buckets,
				})
			}

			output.Bold("%s Performance Report", periodLabel)
			if !startDate.IsZero() {
				output.Printf("  %s to %s\n", FormatDate(startDate), FormatDate(now))
			}
			output.Println()

			if summary.TotalTrades == 0 {
				output.Info("No trades found for this period.")
				return nil
			}

			output.Bold("Summary")
			output.Printf("  Total Trades:  %d\n", summary.TotalTrades)
			output.Printf("  Wins:          %d\n", summary.Wins)
			output.Printf("  Losses:        %d\n", summary.Losses)
			output.Printf("  Breakevens:    %d\n", summary.Breakevens)
			output.Printf("  Win Rate:      %s\n", output.FormatWinRate(summary.WinRate))
			output.Printf("  Total P&L:     %s\n", output.FormatPnL(summary.TotalPnL))
			output.Println()

			renderGroups(output, "By Session", sessions, false)
			renderGroups(output, "By Pair", pairs, false)
			renderGroups(output, "Top Setups", setups, false)
			renderGroups(output, "By Hour", hours, true)
			renderGroups(output, "Risk-Reward Buckets", buckets, true)

			return nil
		},
	}

	cmd.Flags().String("period", "all", "report period (daily, weekly, monthly, all)")
	cmd.Flags().String("buckets", "a", "risk-reward bucket set (a or b)")
	addFilterFlags(cmd)
	cmd.Flags().Int("limit", 0, "maximum number of trades to aggregate (0 = all)")

	rootCmd.AddCommand(cmd)
}

// renderGroups prints one breakdown table. Zero-trade rows are skipped for
// fixed-universe groupings (hours, buckets) to keep the report readable.
func renderGroups(output *Output, title string, groups []stats.Group, skipEmpty bool) {
	var rows []stats.Group
	for _, g := range groups {
		if skipEmpty && g.TotalTrades == 0 {
			continue
		}
		rows = append(rows, g)
	}
	if len(rows) == 0 {
		return
	}

	output.Bold(title)
	table := NewTable(output, "", "Trades", "W/L/BE", "Win Rate", "P&L")
	for _, g := range rows {
		table.AddRow(
			g.Key,
			fmt.Sprintf("%d", g.TotalTrades),
			fmt.Sprintf("%d/%d/%d", g.Wins, g.Losses, g.Breakevens),
			output.FormatWinRate(g.WinRate),
			output.FormatPnL(g.TotalPnL),
		)
	}
	table.Render()
	output.Println()
}
