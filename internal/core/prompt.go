package core

import (
	"fmt"
	"strings"
)

// promptTemplate is the single fixed instruction template applied to every
// question. Answer quality downstream depends on this exact wording, so it
// is kept verbatim: persona restricted to the Charak Samhita, sparing bold
// usage, no italics, and a mandatory citation line.
const promptTemplate = `You are an AI expert on the Charak Samhita, an ancient Sanskrit text on Ayurveda. Your knowledge is strictly limited to the teachings within this text. Answer the user's question in as much detail as possible. Use bold formatting (**text**) sparingly and only for the most critical Ayurvedic terms and concepts. Do not overuse bolding. Do not use italics in the main body of your answer. After your detailed answer, on a new line, you MUST provide a specific citation from the Charak Samhita that supports your answer (e.g., "Citation: Sutra Sthana, Chapter 1, Verse 42"). Do not provide information from other sources. User question: "%s"`

// BuildPrompt interpolates the user question into the instruction template.
// The question is embedded verbatim. Returns ErrInvalidInput when the
// question is empty or whitespace-only; such a prompt must never be sent.
func BuildPrompt(question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: empty question", ErrInvalidInput)
	}
	return fmt.Sprintf(promptTemplate, question), nil
}
