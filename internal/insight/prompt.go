// Package insight builds natural-language prompts from aggregated trade
// statistics and renders the model's narrative response back into structure.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
	"github.com/akshay543210/trade-paste-analytics/internal/stats"
)

// ErrNoTrades is returned when an insight is requested over zero trades.
// The refusal happens before any call to the completion endpoint.
var ErrNoTrades = errors.New("no data provided: record some trades before requesting insights")

// systemPrompt fixes the analyst role and scope for every insight request.
const systemPrompt = `You are an expert trading performance analyst. You review a trader's journal statistics and produce a concise, honest performance review.

Focus on:
- Which sessions and pairs the trader performs best and worst in
- Risk-reward ratio patterns and whether the trader is paid for the risk taken
- Which setups are working and which should be dropped
- Hourly patterns: times of day that help or hurt performance
- Concrete, actionable recommendations

Format the review in markdown with short headings and bullet points.`

// Report bundles the aggregates serialized into the user prompt.
type Report struct {
	Summary    stats.Summary
	Sessions   []stats.Group
	Pairs      []stats.Group
	Setups     []stats.Group
	Hours      []stats.Group
	RiskReward []stats.Group
}

// BuildReport aggregates trades into the shape the prompt serializes.
// Setups are cut to the ten most-traded; sessions, pairs, and hours are
// ranked by profitability.
func BuildReport(trades []models.TradeRecord) Report {
	return Report{
		Summary:    stats.Aggregate(trades),
		Sessions:   stats.RankByPnL(stats.BySession(trades)),
		Pairs:      stats.RankByPnL(stats.ByPair(trades)),
		Setups:     stats.TopByCount(stats.BySetup(trades), 10),
		Hours:      stats.RankByPnL(stats.ByHour(trades)),
		RiskReward: stats.ByRiskReward(trades, stats.BucketSetA),
	}
}

// Prompt is a system/user message pair ready for the completion endpoint.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt serializes a report as human-readable structured text paired
// with the fixed analyst instruction. No aggregation happens here.
func BuildPrompt(r Report) Prompt {
	var b strings.Builder

	b.WriteString("Here are my trading statistics. Please review my performance.\n\n")

	b.WriteString("Overall:\n")
	fmt.Fprintf(&b, "  Total trades: %d\n", r.Summary.TotalTrades)
	fmt.Fprintf(&b, "  Wins: %d  Losses: %d  Breakevens: %d\n",
		r.Summary.Wins, r.Summary.Losses, r.Summary.Breakevens)
	fmt.Fprintf(&b, "  Win rate: %.2f%%\n", r.Summary.WinRate)
	fmt.Fprintf(&b, "  Total P&L: %+.2f\n", r.Summary.TotalPnL)

	writeGroups(&b, "By session (ranked by P&L)", r.Sessions, false)
	writeGroups(&b, "By pair (ranked by P&L)", r.Pairs, false)
	writeGroups(&b, "By setup (top 10 by trade count)", r.Setups, false)
	writeGroups(&b, "By hour of day (ranked by P&L)", r.Hours, true)
	writeGroups(&b, "By risk-reward bucket", r.RiskReward, true)

	return Prompt{System: systemPrompt, User: b.String()}
}

// writeGroups serializes one breakdown. When skipEmpty is set, zero-trade
// entries (unused hours, empty buckets) are left out of the prompt.
func writeGroups(b *strings.Builder, title string, groups []stats.Group, skipEmpty bool) {
	if len(groups) == 0 {
		return
	}
	b.WriteString("\n" + title + ":\n")
	for _, g := range groups {
		if skipEmpty && g.TotalTrades == 0 {
			continue
		}
		fmt.Fprintf(b, "  %-12s %d trades, %d wins, %.1f%% win rate, P&L %+.2f\n",
			g.Key, g.TotalTrades, g.Wins, g.WinRate, g.TotalPnL)
	}
}

// Completer is the capability needed from the text-generation client.
type Completer interface {
	CompleteWithSystem(ctx context.Context, system, user string) (string, error)
}

// Generate runs the full insight pipeline: aggregate, prompt, complete, parse.
// It refuses with ErrNoTrades before touching the network when the trade list
// is empty. The completion is attempted exactly once; failures surface as-is.
func Generate(ctx context.Context, llm Completer, trades []models.TradeRecord) ([]Segment, error) {
	if len(trades) == 0 {
		return nil, ErrNoTrades
	}
	prompt := BuildPrompt(BuildReport(trades))
	text, err := llm.CompleteWithSystem(ctx, prompt.System, prompt.User)
	if err != nil {
		return nil, err
	}
	return ParseResponse(text), nil
}
