package inventory_test

import (
	"testing"

	"alchemia/internal/inventory"
)

func TestMarkDuplicatesDeepestWins(t *testing.T) {
	entries := []inventory.Entry{
		{Path: "/ws/a/file.md", SHA256: "abcdef1234567890", Depth: 1},
		{Path: "/ws/a/b/c/file.md", SHA256: "abcdef1234567890", Depth: 3},
		{Path: "/ws/other.md", SHA256: "fedcba098765....", Depth: 0},
	}

	count := inventory.MarkDuplicates(entries)
	if count != 1 {
		t.Fatalf("expected 1 duplicate, got %d", count)
	}

	if entries[1].Duplicate {
		t.Fatal("deepest copy should be primary")
	}
	if !entries[0].Duplicate {
		t.Fatal("shallow copy should be flagged duplicate")
	}
	if entries[0].DuplicateOf != "/ws/a/b/c/file.md" {
		t.Fatalf("unexpected duplicate_of: %q", entries[0].DuplicateOf)
	}
	if entries[0].DuplicateGroup != "abcdef123456" {
		t.Fatalf("unexpected duplicate group: %q", entries[0].DuplicateGroup)
	}
	if entries[2].Duplicate || entries[2].DuplicateGroup != "" {
		t.Fatal("singleton should stay unflagged")
	}
}

func TestMarkDuplicatesEqualDepthShortestPathWins(t *testing.T) {
	entries := []inventory.Entry{
		{Path: "/ws/longer-name/file.md", SHA256: "1111222233334444", Depth: 1},
		{Path: "/ws/short/file.md", SHA256: "1111222233334444", Depth: 1},
	}
	if count := inventory.MarkDuplicates(entries); count != 1 {
		t.Fatalf("expected 1 duplicate, got %d", count)
	}
	if entries[1].Duplicate {
		t.Fatal("shortest path should be primary at equal depth")
	}
	if !entries[0].Duplicate {
		t.Fatal("longer path should be duplicate")
	}
}

func TestMarkDuplicatesIgnoresUnreadable(t *testing.T) {
	entries := []inventory.Entry{
		{Path: "/ws/a", SHA256: inventory.FingerprintUnreadable},
		{Path: "/ws/b", SHA256: inventory.FingerprintUnreadable},
	}
	if count := inventory.MarkDuplicates(entries); count != 0 {
		t.Fatalf("unreadable files must not group: got %d", count)
	}
	if entries[0].Duplicate || entries[1].Duplicate {
		t.Fatal("unreadable files must stay unflagged")
	}
}
