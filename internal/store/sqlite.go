package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore is the document store backing profiles, per-user history and
// the global feedback collection. It assigns record ids and timestamps
// server-side; clients only append and read.
type SQLiteStore struct {
	db   *sql.DB
	feed *historyFeed
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, feed: newHistoryFeed()}
	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	s.feed.closeAll()
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id TEXT PRIMARY KEY,
        username TEXT NOT NULL DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS history (
        id TEXT PRIMARY KEY, -- UUID
        user_id TEXT NOT NULL,
        question TEXT NOT NULL,
        answer TEXT NOT NULL,
        timestamp DATETIME,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );
    CREATE INDEX IF NOT EXISTS idx_history_user ON history (user_id);

    CREATE TABLE IF NOT EXISTS feedback (
        id TEXT PRIMARY KEY, -- UUID
        user_id TEXT NOT NULL,
        username TEXT NOT NULL DEFAULT '',
        feedback TEXT NOT NULL,
        source_url TEXT NOT NULL DEFAULT '',
        timestamp DATETIME
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// Profile methods

// GetProfile returns the profile document for userID, or nil when none has
// been written yet.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, created_at FROM users WHERE id = ?", userID).
		Scan(&p.UserID, &p.Username, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	return &p, nil
}

// SetProfile upserts the single profile document keyed by userID.
func (s *SQLiteStore) SetProfile(ctx context.Context, userID, username string) (*Profile, error) {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (id, username) VALUES (?, ?)
        ON CONFLICT(id) DO UPDATE SET username = excluded.username`,
		userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return s.GetProfile(ctx, userID)
}

// History methods

// AddHistory appends a record to the user's history collection, assigning
// id and timestamp, and publishes a fresh snapshot to subscribers.
func (s *SQLiteStore) AddHistory(ctx context.Context, userID string, rec HistoryRecord) (*HistoryRecord, error) {
	rec.ID = uuid.NewString()
	rec.UserID = userID
	rec.Timestamp = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO history (id, user_id, question, answer, timestamp) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.UserID, rec.Question, rec.Answer, rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert history record: %w", err)
	}

	if snapshot, err := s.ListHistory(ctx, userID); err == nil {
		s.feed.publish(userID, snapshot)
	}
	return &rec, nil
}

// ListHistory returns the full history set for a user in insertion order.
// Presentation ordering (newest first, missing timestamps last) is the
// caller's responsibility.
func (s *SQLiteStore) ListHistory(ctx context.Context, userID string) ([]HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, question, answer, timestamp FROM history WHERE user_id = ?", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var rec HistoryRecord
		var ts sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Question, &rec.Answer, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if ts.Valid {
			rec.Timestamp = ts.Time
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SubscribeHistory returns a channel of history-set snapshots for userID:
// one snapshot immediately, then one after every append. Pending snapshots
// are coalesced, so a slow reader only ever sees the latest set. The
// subscriber is registered before the initial set is read, so an append
// racing the subscription is never lost. The returned cancel func releases
// the subscription and closes the channel.
func (s *SQLiteStore) SubscribeHistory(ctx context.Context, userID string) (<-chan []HistoryRecord, func(), error) {
	ch, cancel := s.feed.subscribe(userID)
	initial, err := s.ListHistory(ctx, userID)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	s.feed.publishTo(ch, initial)
	return ch, cancel, nil
}

// Feedback methods

// AddFeedback appends to the global feedback collection, assigning id and
// timestamp. There is deliberately no read path.
func (s *SQLiteStore) AddFeedback(ctx context.Context, rec FeedbackRecord) (*FeedbackRecord, error) {
	rec.ID = uuid.NewString()
	rec.Timestamp = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO feedback (id, user_id, username, feedback, source_url, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID, rec.UserID, rec.Username, rec.Text, rec.SourceURL, rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback record: %w", err)
	}
	return &rec, nil
}
