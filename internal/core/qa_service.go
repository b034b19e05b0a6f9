package core

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"charaksamhita.org/qa-service/internal/store"
)

// QAService runs the question/answer round-trip: validate, build the
// prompt, call the model, persist the exchange. It also owns feedback
// submission and history presentation.
type QAService struct {
	dbStore    *store.SQLiteStore
	generator  AnswerGenerator
	logger     *zap.Logger
	llmTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewQAService(db *store.SQLiteStore, gen AnswerGenerator, logger *zap.Logger, llmTimeout time.Duration) *QAService {
	return &QAService{
		dbStore:    db,
		generator:  gen,
		logger:     logger,
		llmTimeout: llmTimeout,
		inflight:   make(map[string]struct{}),
	}
}

// AskResult is the outcome of one round-trip. Saved is false when the
// answer arrived but the history write failed; the answer itself is never
// rolled back.
type AskResult struct {
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	Formatted FormattedAnswer `json:"formatted"`
	Saved     bool            `json:"saved"`
}

// Ask proxies one question for one user. At most one inference call may be
// in flight per user; a second Ask while the first is pending returns
// ErrBusy. Failures are never retried here; every retry is a fresh call.
func (s *QAService) Ask(ctx context.Context, userID, question string) (*AskResult, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil, ErrInvalidInput
	}

	if !s.acquire(userID) {
		return nil, ErrBusy
	}
	defer s.release(userID)

	prompt, err := BuildPrompt(q)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	answer, err := s.generator.GenerateAnswer(llmCtx, prompt)
	if err != nil {
		s.logger.Warn("inference call failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, ErrServiceUnavailable
	}

	result := &AskResult{
		Question:  q,
		Answer:    answer,
		Formatted: FormatAnswer(answer),
	}

	rec, err := NewHistoryRecord(q, answer)
	if err != nil {
		return result, err
	}
	if _, err := s.dbStore.AddHistory(ctx, userID, rec); err != nil {
		s.logger.Error("failed to save history record",
			zap.String("user_id", userID),
			zap.Error(err))
		return result, ErrPersistenceFailure
	}
	result.Saved = true
	return result, nil
}

// History returns the user's full history set in presentation order:
// newest first, records lacking a timestamp last.
func (s *QAService) History(ctx context.Context, userID string) ([]store.HistoryRecord, error) {
	records, err := s.dbStore.ListHistory(ctx, userID)
	if err != nil {
		return nil, ErrPersistenceFailure
	}
	SortHistory(records)
	return records, nil
}

// SubmitFeedback validates and appends one feedback record.
func (s *QAService) SubmitFeedback(ctx context.Context, text, userID, username, sourceURL string) error {
	rec, err := NewFeedbackRecord(text, userID, username, sourceURL)
	if err != nil {
		return err
	}
	if _, err := s.dbStore.AddFeedback(ctx, rec); err != nil {
		s.logger.Error("failed to save feedback",
			zap.String("user_id", userID),
			zap.Error(err))
		return ErrPersistenceFailure
	}
	return nil
}

// SortHistory orders records by timestamp descending; zero timestamps sort
// as oldest. The full set is re-sorted on every read rather than trusting
// store-side ordering.
func SortHistory(records []store.HistoryRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].Timestamp, records[j].Timestamp
		if ti.IsZero() {
			return false
		}
		if tj.IsZero() {
			return true
		}
		return ti.After(tj)
	})
}

func (s *QAService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *QAService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}
