package core

import (
	"errors"
	"testing"
)

func TestNewHistoryRecordPreservesContent(t *testing.T) {
	question := "What is Agni?"
	answer := "Agni is the **digestive fire**.\nCitation: Chikitsa Sthana 15:3-4"

	rec, err := NewHistoryRecord(question, answer)
	if err != nil {
		t.Fatalf("new history record: %v", err)
	}
	if rec.Question != question {
		t.Fatalf("question changed: %q", rec.Question)
	}
	if rec.Answer != answer {
		t.Fatalf("answer changed: %q", rec.Answer)
	}
	if rec.ID != "" || !rec.Timestamp.IsZero() {
		t.Fatalf("id and timestamp belong to the store, got id=%q ts=%v", rec.ID, rec.Timestamp)
	}
}

func TestNewHistoryRecordRejectsEmptyQuestion(t *testing.T) {
	if _, err := NewHistoryRecord("  ", "answer"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNewFeedbackRecordValidation(t *testing.T) {
	if _, err := NewFeedbackRecord("   ", "user-1", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty text: expected ErrInvalidInput, got %v", err)
	}
	if _, err := NewFeedbackRecord("great app", "", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing user id: expected ErrInvalidInput, got %v", err)
	}
}

func TestNewFeedbackRecordTrimsText(t *testing.T) {
	rec, err := NewFeedbackRecord("  more verses please  ", "user-1", "Asha", "https://example.org/qa")
	if err != nil {
		t.Fatalf("new feedback record: %v", err)
	}
	if rec.Text != "more verses please" {
		t.Fatalf("text not trimmed: %q", rec.Text)
	}
	if rec.UserID != "user-1" || rec.Username != "Asha" || rec.SourceURL != "https://example.org/qa" {
		t.Fatalf("unexpected record: %#v", rec)
	}
}
