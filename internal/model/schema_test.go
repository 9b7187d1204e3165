package model

import "testing"

func TestCanonicalItems_FixedTable(t *testing.T) {
	t.Parallel()

	if len(CanonicalItems) != 36 {
		t.Fatalf("unexpected item count: %d", len(CanonicalItems))
	}

	seen := make(map[string]struct{}, len(CanonicalItems))
	for _, item := range CanonicalItems {
		if _, dup := seen[item]; dup {
			t.Fatalf("duplicate item: %q", item)
		}
		seen[item] = struct{}{}

		if !IsCanonical(item) {
			t.Fatalf("item not canonical: %q", item)
		}
	}

	// 首尾位置固定
	if CanonicalItems[0] != "Revenue | Product" {
		t.Fatalf("unexpected first item: %q", CanonicalItems[0])
	}
	if CanonicalItems[35] != "Net Income (derived)" {
		t.Fatalf("unexpected last item: %q", CanonicalItems[35])
	}
}

func TestIsCanonical_RejectsFreeText(t *testing.T) {
	t.Parallel()

	if IsCanonical("Revenue") {
		t.Fatalf("bare Revenue should not be canonical")
	}
	if IsCanonical("") {
		t.Fatalf("empty should not be canonical")
	}
	if IsCanonical("Marketing expenses") {
		t.Fatalf("free text should not be canonical")
	}
}

func TestIsRevenueItem(t *testing.T) {
	t.Parallel()

	if !IsRevenueItem("Revenue | Product") {
		t.Fatalf("Revenue | Product should be revenue")
	}
	if !IsRevenueItem("Revenue | Other Operating Revenue") {
		t.Fatalf("Revenue | Other Operating Revenue should be revenue")
	}
	if IsRevenueItem("COGS | Materials") {
		t.Fatalf("COGS | Materials should not be revenue")
	}
	if IsRevenueItem("Net Income (derived)") {
		t.Fatalf("Net Income (derived) should not be revenue")
	}
}
