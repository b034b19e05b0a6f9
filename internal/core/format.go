package core

import (
	"regexp"
	"strings"
)

// CitationMarker splits an answer into its body and source-reference
// segments. Everything from the first occurrence to the end of the string
// belongs to the citation.
const CitationMarker = "Citation:"

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Span is a run of body text, rendered with emphasis when Bold is set.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// FormattedAnswer is the renderable form of a raw model answer. Citation is
// empty when the marker was not found. Concatenating the span texts in
// order reconstructs the body with only the matched ** markers removed.
type FormattedAnswer struct {
	BodySpans []Span `json:"body_spans"`
	Citation  string `json:"citation,omitempty"`
}

// FormatAnswer parses a raw answer into bold/plain spans plus an optional
// trailing citation block. It is a total function: any string, including
// the empty string and malformed markup, yields a result without error.
//
// The citation split happens before bold parsing, so a marker inside a
// **...** pair truncates that span at the citation boundary. An unmatched
// ** with no closing pair stays literal plain text.
func FormatAnswer(raw string) FormattedAnswer {
	var fa FormattedAnswer

	body := raw
	if i := strings.Index(raw, CitationMarker); i >= 0 {
		body = raw[:i]
		fa.Citation = strings.TrimSpace(raw[i:])
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return fa
	}

	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(body, -1) {
		if gap := body[last:m[0]]; gap != "" {
			fa.BodySpans = append(fa.BodySpans, Span{Text: gap})
		}
		fa.BodySpans = append(fa.BodySpans, Span{Text: body[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if tail := body[last:]; tail != "" {
		fa.BodySpans = append(fa.BodySpans, Span{Text: tail})
	}
	return fa
}
