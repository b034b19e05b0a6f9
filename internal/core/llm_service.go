package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultAnswerModelName = "gemini-2.0-flash"

	// fallbackAnswer is returned verbatim whenever the model responds with
	// an empty or unexpectedly shaped payload. Shape mismatches never
	// surface as errors; transport failures do.
	fallbackAnswer = "I apologize, I couldn't retrieve an answer. Please try rephrasing your question."
)

// AnswerGenerator produces a raw answer for a fully built prompt.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// LLMService is the Gemini-backed AnswerGenerator.
type LLMService struct {
	client *genai.Client
	model  string
}

func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &LLMService{client: client, model: defaultAnswerModelName}, nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// GenerateAnswer sends a single-turn generateContent request. The caller's
// context carries the per-call timeout; expiry and transport errors are
// returned as-is for the caller to classify as transient.
func (s *LLMService) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	model := s.client.GenerativeModel(s.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generateContent failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return fallbackAnswer, nil
	}

	var answer strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			answer.WriteString(string(txt))
		}
	}
	if answer.Len() == 0 {
		return fallbackAnswer, nil
	}
	return answer.String(), nil
}
