package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// SQLiteStore implements TradeStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a SQLite-backed trade store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		pair TEXT NOT NULL,
		session TEXT NOT NULL,
		trade_time DATETIME NOT NULL,
		setup TEXT,
		risk REAL,
		reward REAL,
		outcome TEXT NOT NULL,
		notes TEXT,
		screenshot_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(trade_time);
	CREATE INDEX IF NOT EXISTS idx_trades_pair ON trades(pair);
	CREATE INDEX IF NOT EXISTS idx_trades_session ON trades(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTrade validates and persists a trade record.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.TradeRecord) error {
	if err := trade.Validate(); err != nil {
		return fmt.Errorf("invalid trade: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (id, pair, session, trade_time, setup, risk, reward, outcome, notes, screenshot_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, trade.Pair, trade.Session, trade.TradeTime, trade.Setup,
		trade.Risk, trade.Reward, string(trade.Outcome), trade.Notes, trade.ScreenshotURL)
	if err != nil {
		return fmt.Errorf("failed to save trade: %w", err)
	}
	return nil
}

// GetTrades retrieves trades matching the filter, most recent first.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.TradeRecord, error) {
	query := "SELECT id, pair, session, trade_time, setup, risk, reward, outcome, notes, screenshot_url FROM trades WHERE 1=1"
	args := []interface{}{}

	if filter.Pair != "" {
		query += " AND pair = ?"
		args = append(args, filter.Pair)
	}
	if filter.Session != "" {
		query += " AND session = ?"
		args = append(args, filter.Session)
	}
	if !filter.StartDate.IsZero() {
		query += " AND trade_time >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND trade_time <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY trade_time DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.TradeRecord
	for rows.Next() {
		var t models.TradeRecord
		var setup, notes, screenshot sql.NullString
		var risk, reward sql.NullFloat64
		var outcome string

		if err := rows.Scan(&t.ID, &t.Pair, &t.Session, &t.TradeTime, &setup,
			&risk, &reward, &outcome, &notes, &screenshot); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}

		t.Setup = setup.String
		t.Notes = notes.String
		t.ScreenshotURL = screenshot.String
		if risk.Valid {
			t.Risk = &risk.Float64
		}
		if reward.Valid {
			t.Reward = &reward.Float64
		}
		t.Outcome, err = models.ParseOutcome(outcome)
		if err != nil {
			return nil, fmt.Errorf("stored trade %s: %w", t.ID, err)
		}
		trades = append(trades, t)
	}

	return trades, rows.Err()
}

// DeleteTrade removes a trade by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trades WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade not found: %s", id)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
