// Package models defines the trade journal's core data types.
package models

import (
	"fmt"
	"time"
)

// Outcome is the result of a completed trade.
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLoss      Outcome = "LOSS"
	OutcomeBreakEven Outcome = "BREAKEVEN"
)

// ParseOutcome converts a stored or user-supplied outcome label.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeWin, OutcomeLoss, OutcomeBreakEven:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("invalid outcome: %q (must be WIN, LOSS, or BREAKEVEN)", s)
}

// SetupUnknown is the label used when a trade has no setup recorded.
const SetupUnknown = "Unknown"

// Sessions recognized by the journal.
const (
	SessionAsia    = "Asia"
	SessionLondon  = "London"
	SessionNewYork = "New York"
)

// KnownSessions lists the recognized trading sessions in chronological order.
var KnownSessions = []string{SessionAsia, SessionLondon, SessionNewYork}

// TradeRecord represents one logged trade.
// Risk and Reward are pointers because absence is meaningful: a win with no
// recorded reward still counts as a win but contributes nothing to P&L.
type TradeRecord struct {
	ID            string
	Pair          string
	Session       string
	TradeTime     time.Time
	Setup         string // "" means unknown
	Risk          *float64
	Reward        *float64
	Outcome       Outcome
	Notes         string
	ScreenshotURL string
}

// RiskReward returns the reward/risk ratio for the trade.
// The ratio is undefined (ok == false) when risk is absent or zero; a zero
// risk must never produce an infinite ratio.
func (t *TradeRecord) RiskReward() (ratio float64, ok bool) {
	if t.Risk == nil || t.Reward == nil || *t.Risk <= 0 {
		return 0, false
	}
	return *t.Reward / *t.Risk, true
}

// SetupLabel returns the setup name, substituting SetupUnknown for blanks.
func (t *TradeRecord) SetupLabel() string {
	if t.Setup == "" {
		return SetupUnknown
	}
	return t.Setup
}

// Validate checks a record at the ingestion boundary. Malformed records fail
// fast here rather than propagating NaN or undefined values into aggregates.
func (t *TradeRecord) Validate() error {
	if t.Pair == "" {
		return fmt.Errorf("trade %s: pair is required", t.ID)
	}
	if t.Session == "" {
		return fmt.Errorf("trade %s: session is required", t.ID)
	}
	if t.TradeTime.IsZero() {
		return fmt.Errorf("trade %s: trade time is required", t.ID)
	}
	if _, err := ParseOutcome(string(t.Outcome)); err != nil {
		return fmt.Errorf("trade %s: %w", t.ID, err)
	}
	if t.Risk != nil && *t.Risk < 0 {
		return fmt.Errorf("trade %s: risk must be non-negative", t.ID)
	}
	if t.Reward != nil && *t.Reward < 0 {
		return fmt.Errorf("trade %s: reward must be non-negative", t.ID)
	}
	return nil
}

// Float64Ptr is a convenience helper for building records.
func Float64Ptr(v float64) *float64 { return &v }
