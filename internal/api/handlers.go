package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"charaksamhita.org/qa-service/internal/auth"
	"charaksamhita.org/qa-service/internal/core"
	"charaksamhita.org/qa-service/internal/store"
)

type ctxKey int

const userIDKey ctxKey = 0

type APIHandler struct {
	qaService *core.QAService
	dbStore   *store.SQLiteStore
	logger    *zap.Logger
}

func NewAPIHandler(qa *core.QAService, db *store.SQLiteStore, logger *zap.Logger) *APIHandler {
	return &APIHandler{qaService: qa, dbStore: db, logger: logger}
}

func (h *APIHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := auth.ValidateSessionToken(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// SessionHandler establishes a pseudonymous identity: a fresh opaque user
// id wrapped in a signed token. No credentials are involved.
func (h *APIHandler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	userID := uuid.NewString()
	token, err := auth.GenerateSessionToken(userID)
	if err != nil {
		h.logger.Error("failed to generate session token", zap.Error(err))
		http.Error(w, "Failed to establish session", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, SessionResponse{Token: token, UserID: userID})
}

func (h *APIHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	profile, err := h.dbStore.GetProfile(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get profile", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to get profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	writeJSON(w, profile)
}

type PutProfileRequest struct {
	Username string `json:"username"`
}

func (h *APIHandler) PutProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	var req PutProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		http.Error(w, "Username cannot be empty", http.StatusBadRequest)
		return
	}

	profile, err := h.dbStore.SetProfile(r.Context(), userID, strings.TrimSpace(req.Username))
	if err != nil {
		h.logger.Error("failed to save profile", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, profile)
}

type AskRequest struct {
	Question string `json:"question"`
}

func (h *APIHandler) AskHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.qaService.Ask(r.Context(), userID, req.Question)
	switch {
	case err == nil:
		writeJSON(w, result)
	case errors.Is(err, core.ErrInvalidInput):
		http.Error(w, "Question cannot be empty", http.StatusBadRequest)
	case errors.Is(err, core.ErrBusy):
		http.Error(w, "A question is already pending, please wait", http.StatusTooManyRequests)
	case errors.Is(err, core.ErrServiceUnavailable):
		http.Error(w, "Failed to get a response. Please try again.", http.StatusBadGateway)
	case errors.Is(err, core.ErrPersistenceFailure):
		// The answer arrived but saving it failed; return both facts
		// rather than discarding the answer.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		writeJSON(w, result)
	default:
		h.logger.Error("ask failed", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to process question", http.StatusInternalServerError)
	}
}

func (h *APIHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	records, err := h.qaService.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list history", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to list history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []store.HistoryRecord{}
	}
	writeJSON(w, records)
}

// HistoryStreamHandler streams history-set snapshots as server-sent
// events: one event on connect, then one whenever the set changes. The
// stream runs until the client disconnects.
func (h *APIHandler) HistoryStreamHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	snapshots, cancel, err := h.dbStore.SubscribeHistory(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to subscribe to history", zap.String("user_id", userID), zap.Error(err))
		http.Error(w, "Failed to subscribe to history", http.StatusInternalServerError)
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	enc := json.NewEncoder(w)
	for {
		select {
		case <-r.Context().Done():
			return
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			core.SortHistory(snapshot)
			if snapshot == nil {
				snapshot = []store.HistoryRecord{}
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if err := enc.Encode(snapshot); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

type FeedbackRequest struct {
	Feedback  string `json:"feedback"`
	SourceURL string `json:"source_url,omitempty"`
}

func (h *APIHandler) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Username is attached when the user has set one; feedback is
	// accepted either way.
	username := ""
	if profile, err := h.dbStore.GetProfile(r.Context(), userID); err == nil && profile != nil {
		username = profile.Username
	}

	err := h.qaService.SubmitFeedback(r.Context(), req.Feedback, userID, username, req.SourceURL)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, core.ErrInvalidInput):
		http.Error(w, "Feedback text cannot be empty", http.StatusBadRequest)
	default:
		http.Error(w, "Could not submit feedback. Please try again.", http.StatusBadGateway)
	}
}

func (h *APIHandler) WisdomHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, core.VerseOfTheDay())
}

func (h *APIHandler) TopicsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, core.SuggestedTopics)
}

func writeJSON(w http.ResponseWriter, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	json.NewEncoder(w).Encode(v)
}
