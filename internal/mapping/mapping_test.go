package mapping_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"alchemia/internal/absorb"
	"alchemia/internal/inventory"
	"alchemia/internal/mapping"
)

func sampleOutcomes() ([]absorb.Outcome, absorb.Stats) {
	outcomes := []absorb.Outcome{
		{
			Entry: inventory.Entry{Path: "/w/Workspace/life/a.md", SHA256: "aaaa1111"},
			Result: absorb.Result{
				Rule: 1, RuleName: "direct_repo_match", Confidence: 1.0,
				TargetOrgan: "ORGAN-I", TargetRepo: "life", Status: absorb.StatusClassified,
			},
		},
		{
			Entry: inventory.Entry{Path: "/w/Workspace/dup/b.md", SHA256: "dddd2222"},
			Result: absorb.Result{Rule: 7, RuleName: "unresolved", NeedsReview: true, Status: absorb.StatusPendingReview},
		},
		{
			Entry: inventory.Entry{Path: "/w/Workspace/dup/copy/b.md", SHA256: "dddd2222", Duplicate: true},
			Result: absorb.Result{Rule: 7, RuleName: "unresolved", NeedsReview: true, Status: absorb.StatusPendingReview},
		},
		{
			Entry: inventory.Entry{Path: "/w/Workspace/broken/c.md", SHA256: inventory.FingerprintUnreadable},
			Result: absorb.Result{Rule: 7, RuleName: "unresolved", NeedsReview: true, Status: absorb.StatusPendingReview},
		},
	}
	stats := absorb.Stats{Total: 4, ByRule: map[int]int{1: 1, 7: 3}, Classified: 1, PendingReview: 3}
	return outcomes, stats
}

func TestNewKeysFingerprintOrPath(t *testing.T) {
	outcomes, stats := sampleOutcomes()
	doc := mapping.New("run-1", "/tmp/snapshot.json", outcomes, stats)

	if len(doc.Records) != 4 {
		t.Fatalf("no outcome may be dropped: got %d records", len(doc.Records))
	}
	if doc.Records[0].Key != "aaaa1111" {
		t.Fatalf("unique fingerprint must key the record, got %q", doc.Records[0].Key)
	}
	if doc.Records[1].Key != "/w/Workspace/dup/b.md" || doc.Records[2].Key != "/w/Workspace/dup/copy/b.md" {
		t.Fatalf("shared fingerprint must fall back to path: %q, %q", doc.Records[1].Key, doc.Records[2].Key)
	}
	if doc.Records[3].Key != "/w/Workspace/broken/c.md" {
		t.Fatalf("unreadable fingerprint must fall back to path, got %q", doc.Records[3].Key)
	}
	if doc.Stage != "absorb" || doc.SchemaVersion != inventory.SchemaVersion {
		t.Fatalf("unexpected header: stage=%q schema=%q", doc.Stage, doc.SchemaVersion)
	}
}

func TestNewPreservesInputOrder(t *testing.T) {
	outcomes, stats := sampleOutcomes()
	doc := mapping.New("run-1", "/tmp/snapshot.json", outcomes, stats)
	for i := range outcomes {
		if doc.Records[i].Entry.Path != outcomes[i].Entry.Path {
			t.Fatalf("order broken at %d: %q", i, doc.Records[i].Entry.Path)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	outcomes, stats := sampleOutcomes()
	doc := mapping.New("run-1", "/tmp/snapshot.json", outcomes, stats)
	path := filepath.Join(t.TempDir(), "nested", "mapping.json")

	count, err := mapping.Write(path, doc)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 records written, got %d", count)
	}

	loaded, err := mapping.Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if loaded.RunID != "run-1" || len(loaded.Records) != 4 {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
	if loaded.Stats.Classified != 1 || loaded.Stats.ByRule[7] != 3 {
		t.Fatalf("stats lost in round trip: %+v", loaded.Stats)
	}
}

func TestWriteIsCanonicalAcrossReruns(t *testing.T) {
	outcomes, stats := sampleOutcomes()
	generated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := mapping.New("run-x", "/tmp/snapshot.json", outcomes, stats)
	first.GeneratedAt = generated
	second := mapping.New("run-x", "/tmp/snapshot.json", outcomes, stats)
	second.GeneratedAt = generated

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")
	if _, err := mapping.Write(pathA, first); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if _, err := mapping.Write(pathB, second); err != nil {
		t.Fatalf("write b: %v", err)
	}

	dataA, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatalf("read a: %v", err)
	}
	dataB, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatalf("read b: %v", err)
	}
	if !bytes.Equal(dataA, dataB) {
		t.Fatal("identical runs must serialize byte-identically")
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	outcomes, stats := sampleOutcomes()
	doc := mapping.New("run-1", "/tmp/snapshot.json", outcomes, stats)
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.json")

	if _, err := mapping.Write(path, doc); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := mapping.Write(path, doc); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	listing, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, item := range listing {
		if strings.Contains(item.Name(), ".tmp-") {
			t.Fatalf("temp file left behind: %s", item.Name())
		}
	}
	if len(listing) != 1 {
		t.Fatalf("expected only the mapping file, got %d items", len(listing))
	}
}

func TestReadRejectsUnknownSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	if err := os.WriteFile(path, []byte(`{"schema_version":"9.9","stage":"absorb"}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := mapping.Read(path); err == nil {
		t.Fatal("expected schema version error")
	}
}
