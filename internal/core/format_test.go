package core

import (
	"strings"
	"testing"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestFormatAnswerPlainAndBold(t *testing.T) {
	fa := FormatAnswer("plain **bold** plain")

	want := []Span{
		{Text: "plain ", Bold: false},
		{Text: "bold", Bold: true},
		{Text: " plain", Bold: false},
	}
	if len(fa.BodySpans) != len(want) {
		t.Fatalf("expected %d spans, got %d: %#v", len(want), len(fa.BodySpans), fa.BodySpans)
	}
	for i, s := range want {
		if fa.BodySpans[i] != s {
			t.Fatalf("span %d: expected %#v, got %#v", i, s, fa.BodySpans[i])
		}
	}
	if fa.Citation != "" {
		t.Fatalf("expected no citation, got %q", fa.Citation)
	}
}

func TestFormatAnswerAdjacentBoldSpans(t *testing.T) {
	fa := FormatAnswer("**a****b**")

	if len(fa.BodySpans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %#v", len(fa.BodySpans), fa.BodySpans)
	}
	if fa.BodySpans[0] != (Span{Text: "a", Bold: true}) {
		t.Fatalf("unexpected first span: %#v", fa.BodySpans[0])
	}
	if fa.BodySpans[1] != (Span{Text: "b", Bold: true}) {
		t.Fatalf("unexpected second span: %#v", fa.BodySpans[1])
	}
}

func TestFormatAnswerEmptyInput(t *testing.T) {
	fa := FormatAnswer("")
	if len(fa.BodySpans) != 0 {
		t.Fatalf("expected no spans, got %#v", fa.BodySpans)
	}
	if fa.Citation != "" {
		t.Fatalf("expected no citation, got %q", fa.Citation)
	}
}

func TestFormatAnswerCitationOnly(t *testing.T) {
	fa := FormatAnswer("Citation: Sutra 1:1")
	if len(fa.BodySpans) != 0 {
		t.Fatalf("expected empty body, got %#v", fa.BodySpans)
	}
	if fa.Citation != "Citation: Sutra 1:1" {
		t.Fatalf("unexpected citation: %q", fa.Citation)
	}
}

func TestFormatAnswerCitationSplit(t *testing.T) {
	raw := "Agni is the digestive fire.  \nCitation: Sutra Sthana, Chapter 1, Verse 42  "
	fa := FormatAnswer(raw)

	if fa.Citation != "Citation: Sutra Sthana, Chapter 1, Verse 42" {
		t.Fatalf("unexpected citation: %q", fa.Citation)
	}
	if got := joinSpans(fa.BodySpans); got != "Agni is the digestive fire." {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestFormatAnswerMarkerInsideBoldSpan(t *testing.T) {
	// The citation search runs before bold parsing, so the span is
	// truncated at the marker and its opening ** stays literal.
	fa := FormatAnswer("see **the Citation: Sutra 1:1** here")

	if fa.Citation != "Citation: Sutra 1:1** here" {
		t.Fatalf("unexpected citation: %q", fa.Citation)
	}
	if got := joinSpans(fa.BodySpans); got != "see **the" {
		t.Fatalf("unexpected body: %q", got)
	}
	for _, s := range fa.BodySpans {
		if s.Bold {
			t.Fatalf("truncated span must not be bold: %#v", fa.BodySpans)
		}
	}
}

func TestFormatAnswerUnmatchedBoldMarker(t *testing.T) {
	fa := FormatAnswer("this ** never closes")

	if len(fa.BodySpans) != 1 {
		t.Fatalf("expected one literal span, got %#v", fa.BodySpans)
	}
	if fa.BodySpans[0] != (Span{Text: "this ** never closes", Bold: false}) {
		t.Fatalf("unexpected span: %#v", fa.BodySpans[0])
	}
}

func TestFormatAnswerBodyReconstruction(t *testing.T) {
	inputs := []string{
		"  surrounded by space  ",
		"no markup at all",
		"**lead** middle **tail**",
		"multi\nline\nanswer",
	}
	for _, in := range inputs {
		fa := FormatAnswer(in)
		if fa.Citation != "" {
			t.Fatalf("input %q: unexpected citation %q", in, fa.Citation)
		}
		want := strings.TrimSpace(strings.ReplaceAll(in, "**", ""))
		if got := joinSpans(fa.BodySpans); got != want {
			t.Fatalf("input %q: body %q, want %q", in, got, want)
		}
		for _, s := range fa.BodySpans {
			if s.Text == "" && !s.Bold {
				t.Fatalf("input %q: empty plain span present: %#v", in, fa.BodySpans)
			}
		}
	}
}
