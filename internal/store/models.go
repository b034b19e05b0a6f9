package store

import "time"

type Profile struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryRecord is one persisted question/answer pair, scoped to a user.
// ID and Timestamp are assigned by the store at write time; records are
// append-only and never mutated afterwards.
type HistoryRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackRecord is a free-text submission in the global feedback
// collection. Write-only from the client's perspective.
type FeedbackRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"feedback"`
	SourceURL string    `json:"source_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
