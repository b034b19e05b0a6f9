package core

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPromptRejectsEmptyQuestion(t *testing.T) {
	for _, q := range []string{"", "   ", "\n\t "} {
		if _, err := BuildPrompt(q); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("question %q: expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestBuildPromptEmbedsQuestionVerbatim(t *testing.T) {
	prompt, err := BuildPrompt("What is Agni?")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "What is Agni?") {
		t.Fatalf("prompt does not contain the question: %q", prompt)
	}
	if !strings.Contains(prompt, "Charak Samhita") {
		t.Fatal("prompt lost the domain restriction clause")
	}
	if !strings.Contains(prompt, CitationMarker) {
		t.Fatal("prompt lost the citation instruction")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	a, err := BuildPrompt("What is Tridosha?")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	b, err := BuildPrompt("What is Tridosha?")
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if a != b {
		t.Fatal("same question produced different prompts")
	}
}
