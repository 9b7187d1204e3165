package parser

import (
	"math"
	"testing"
)

func TestParseAmount_PlainAndSeparators(t *testing.T) {
	t.Parallel()

	if got := ParseAmount("1234"); got != 1234 {
		t.Fatalf("1234 want=1234 got=%v", got)
	}
	if got := ParseAmount("1,234.50"); got != 1234.5 {
		t.Fatalf("1,234.50 want=1234.5 got=%v", got)
	}
	if got := ParseAmount("1 234"); got != 1234 {
		t.Fatalf("1 234 want=1234 got=%v", got)
	}
	if got := ParseAmount("1 234"); got != 1234 {
		t.Fatalf("nbsp separator want=1234 got=%v", got)
	}
	if got := ParseAmount("  42  "); got != 42 {
		t.Fatalf("padded 42 want=42 got=%v", got)
	}
}

func TestParseAmount_Negative(t *testing.T) {
	t.Parallel()

	if got := ParseAmount("(1,234.50)"); got != -1234.5 {
		t.Fatalf("(1,234.50) want=-1234.5 got=%v", got)
	}
	if got := ParseAmount("-12.5"); got != -12.5 {
		t.Fatalf("-12.5 want=-12.5 got=%v", got)
	}
	// 成对括号才表示负数，单边括号仅被剥除
	if got := ParseAmount("(123"); got != 123 {
		t.Fatalf("(123 want=123 got=%v", got)
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	t.Parallel()

	if got := ParseAmount("abc"); !math.IsNaN(got) {
		t.Fatalf("abc want=NaN got=%v", got)
	}
	if got := ParseAmount(""); !math.IsNaN(got) {
		t.Fatalf("empty want=NaN got=%v", got)
	}
	if got := ParseAmount("12.3.4"); !math.IsNaN(got) {
		t.Fatalf("12.3.4 want=NaN got=%v", got)
	}
	if got := ParseAmount("1.2e3"); !math.IsNaN(got) {
		t.Fatalf("1.2e3 want=NaN got=%v", got)
	}
	if got := ParseAmount("12%"); !math.IsNaN(got) {
		t.Fatalf("12%% want=NaN got=%v", got)
	}
}
