package parser

import (
	"strings"
	"testing"
)

func TestTextFromContentStream_Operators(t *testing.T) {
	t.Parallel()

	stream := strings.Join([]string{
		"BT",
		"/F1 12 Tf",
		"(Revenue: 5,000) Tj",
		"0 -14 Td",
		"(Cost of sales: 3,000) Tj",
		"T*",
		"[(Tax) ( 50)] TJ",
		"ET",
	}, "\n")

	got := textFromContentStream([]byte(stream))
	want := "Revenue: 5,000\nCost of sales: 3,000\nTax 50"
	if got != want {
		t.Fatalf("content stream text mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestTextFromContentStream_HorizontalTd(t *testing.T) {
	t.Parallel()

	stream := strings.Join([]string{
		"(Revenue) Tj",
		"5 0 Td",
		"(per share) Tj",
	}, "\n")

	got := textFromContentStream([]byte(stream))
	if got != "Revenue per share" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextFromContentStream_QuoteOperator(t *testing.T) {
	t.Parallel()

	stream := strings.Join([]string{
		"(first) Tj",
		"(second) '",
	}, "\n")

	got := textFromContentStream([]byte(stream))
	if got != "first\nsecond" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTdMovesLine(t *testing.T) {
	t.Parallel()

	if !tdMovesLine([]byte("0 -14 Td")) {
		t.Fatalf("0 -14 Td should move line")
	}
	if tdMovesLine([]byte("5 0 Td")) {
		t.Fatalf("5 0 Td should stay on line")
	}
	if tdMovesLine([]byte("12.5 0.0 TD")) {
		t.Fatalf("12.5 0.0 TD should stay on line")
	}
	if !tdMovesLine([]byte("Td")) {
		t.Fatalf("bare Td should move line")
	}
	if !tdMovesLine([]byte("a b Td")) {
		t.Fatalf("unparsable Td should move line")
	}
}

func TestDecodePDFString(t *testing.T) {
	t.Parallel()

	if got := decodePDFString([]byte(`plain`)); got != "plain" {
		t.Fatalf("plain want=plain got=%q", got)
	}
	if got := decodePDFString([]byte(`a\(b`)); got != "a(b" {
		t.Fatalf("escaped paren got=%q", got)
	}
	if got := decodePDFString([]byte(`back\\slash`)); got != `back\slash` {
		t.Fatalf("escaped backslash got=%q", got)
	}
	if got := decodePDFString([]byte(`\101BC`)); got != "ABC" {
		t.Fatalf("octal escape got=%q", got)
	}
	if got := decodePDFString([]byte(`a\tb`)); got != "a\tb" {
		t.Fatalf("tab escape got=%q", got)
	}
	if got := decodePDFString([]byte(`\x`)); got != "x" {
		t.Fatalf("unknown escape got=%q", got)
	}
}

func TestCleanStreamText(t *testing.T) {
	t.Parallel()

	if got := cleanStreamText("a\tb\n\x00c"); got != "a b\nc" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := cleanStreamText("  padded  "); got != "padded" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractPDFText_InvalidDocument(t *testing.T) {
	t.Parallel()

	if _, err := ExtractPDFText([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error")
	}
}
