package absorb_test

import (
	"context"
	"fmt"
	"testing"

	"alchemia/internal/absorb"
	"alchemia/internal/inventory"
)

func runnerEntries(n int) []inventory.Entry {
	entries := make([]inventory.Entry, 0, n)
	for i := 0; i < n; i++ {
		// Alternate between a rule-1 match and an unresolvable entry.
		if i%2 == 0 {
			entries = append(entries, inventory.Entry{
				Path:      fmt.Sprintf("/w/Workspace/life/doc-%04d.bin", i),
				ParentDir: "life",
				Extension: ".bin",
			})
		} else {
			entries = append(entries, inventory.Entry{
				Path:      fmt.Sprintf("/w/Workspace/nowhere-%04d/doc.bin", i),
				ParentDir: fmt.Sprintf("nowhere-%04d", i),
				Extension: ".bin",
			})
		}
	}
	return entries
}

func TestRunPreservesInputOrder(t *testing.T) {
	cc := testContext(t)
	entries := runnerEntries(200)

	outcomes, stats, err := absorb.Run(context.Background(), entries, cc, absorb.Options{Workers: 8}, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != len(entries) {
		t.Fatalf("expected %d outcomes, got %d", len(entries), len(outcomes))
	}
	for i := range outcomes {
		if outcomes[i].Entry.Path != entries[i].Path {
			t.Fatalf("order broken at %d: got %q want %q", i, outcomes[i].Entry.Path, entries[i].Path)
		}
	}
	if stats.Total != 200 || stats.Classified != 100 || stats.PendingReview != 100 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.ByRule[1] != 100 || stats.ByRule[7] != 100 {
		t.Fatalf("unexpected rule tallies: %+v", stats.ByRule)
	}
}

func TestRunRecordsInvalidEntriesWithoutAborting(t *testing.T) {
	cc := testContext(t)
	entries := []inventory.Entry{
		{Path: "/w/Workspace/life/a.md", ParentDir: "life", Extension: ".md"},
		{Path: ""},
		{Path: "/w/Workspace/life/b.md", ParentDir: "life", Extension: ".md"},
	}

	outcomes, stats, err := absorb.Run(context.Background(), entries, cc, absorb.Options{Workers: 2}, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("no entry may be dropped: got %d outcomes", len(outcomes))
	}
	if outcomes[1].Err == "" {
		t.Fatal("invalid entry must carry an error marker")
	}
	if outcomes[0].Result.Rule != 1 || outcomes[2].Result.Rule != 1 {
		t.Fatalf("valid entries must still classify: %+v", outcomes)
	}
	if stats.InvalidEntries != 1 || stats.Classified != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRunSingleWorkerMatchesParallel(t *testing.T) {
	cc := testContext(t)
	entries := runnerEntries(60)

	serial, _, err := absorb.Run(context.Background(), entries, cc, absorb.Options{Workers: 1}, nil)
	if err != nil {
		t.Fatalf("serial Run returned error: %v", err)
	}
	parallel, _, err := absorb.Run(context.Background(), entries, cc, absorb.Options{Workers: 16}, nil)
	if err != nil {
		t.Fatalf("parallel Run returned error: %v", err)
	}
	for i := range serial {
		if serial[i].Result != parallel[i].Result {
			t.Fatalf("worker count changed result at %d: %+v vs %+v", i, serial[i].Result, parallel[i].Result)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cc := testContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := absorb.Run(ctx, runnerEntries(50), cc, absorb.Options{}, nil)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestRuleNames(t *testing.T) {
	want := map[int]string{
		1: "direct_repo_match",
		2: "name_variant_match",
		3: "staging_dir_match",
		4: "special_container",
		5: "manifest_category",
		6: "content_keyword",
		7: "unresolved",
		9: "unknown",
	}
	for rule, name := range want {
		if got := absorb.RuleName(rule); got != name {
			t.Fatalf("RuleName(%d) = %q, want %q", rule, got, name)
		}
	}
}
