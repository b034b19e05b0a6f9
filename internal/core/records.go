package core

import (
	"fmt"
	"strings"

	"charaksamhita.org/qa-service/internal/store"
)

// NewHistoryRecord builds a history record for a completed question/answer
// round-trip. ID and timestamp are assigned by the store at write time, not
// here. The answer is kept raw and unformatted, byte for byte.
func NewHistoryRecord(question, answer string) (store.HistoryRecord, error) {
	if strings.TrimSpace(question) == "" {
		return store.HistoryRecord{}, fmt.Errorf("%w: empty question", ErrInvalidInput)
	}
	return store.HistoryRecord{
		Question: question,
		Answer:   answer,
	}, nil
}

// NewFeedbackRecord builds a feedback record for explicit user submission.
// Username and sourceURL are optional; text and userID are not. ID and
// timestamp are assigned by the store.
func NewFeedbackRecord(text, userID, username, sourceURL string) (store.FeedbackRecord, error) {
	if strings.TrimSpace(text) == "" {
		return store.FeedbackRecord{}, fmt.Errorf("%w: empty feedback text", ErrInvalidInput)
	}
	if userID == "" {
		return store.FeedbackRecord{}, fmt.Errorf("%w: missing user id", ErrInvalidInput)
	}
	return store.FeedbackRecord{
		Text:      strings.TrimSpace(text),
		UserID:    userID,
		Username:  username,
		SourceURL: sourceURL,
	}, nil
}
