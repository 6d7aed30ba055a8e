// Package store provides trade record persistence.
package store

import (
	"context"
	"time"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// TradeStore is the persistence capability consumed by the journal. Results
// from GetTrades need not be pre-sorted; aggregation is order-independent.
type TradeStore interface {
	SaveTrade(ctx context.Context, trade *models.TradeRecord) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.TradeRecord, error)
	DeleteTrade(ctx context.Context, id string) error
	Close() error
}

// TradeFilter narrows a trade query. Date bounds are inclusive; zero values
// leave the corresponding dimension unfiltered.
type TradeFilter struct {
	Pair      string
	Session   string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
