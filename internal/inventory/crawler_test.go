package inventory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"alchemia/internal/inventory"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func crawl(t *testing.T, dirs ...string) []inventory.Entry {
	t.Helper()
	entries, err := inventory.NewCrawler(nil).Crawl(context.Background(), dirs)
	if err != nil {
		t.Fatalf("Crawl returned error: %v", err)
	}
	return entries
}

func byFilename(entries []inventory.Entry) map[string]inventory.Entry {
	out := make(map[string]inventory.Entry, len(entries))
	for _, e := range entries {
		out[e.Filename] = e
	}
	return out
}

func TestCrawlCollectsMetadata(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "life", "notes.md"), "hello\n")
	writeFile(t, filepath.Join(root, "life", "deep", "src", "main.py"), "print()\n")

	entries := crawl(t, root)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	index := byFilename(entries)
	notes, ok := index["notes.md"]
	if !ok {
		t.Fatal("notes.md missing from inventory")
	}
	if notes.Extension != ".md" {
		t.Fatalf("unexpected extension: %q", notes.Extension)
	}
	if notes.ParentDir != "life" {
		t.Fatalf("unexpected parent dir: %q", notes.ParentDir)
	}
	if notes.Depth != 1 {
		t.Fatalf("unexpected depth: %d", notes.Depth)
	}
	if notes.SizeBytes != 6 {
		t.Fatalf("unexpected size: %d", notes.SizeBytes)
	}
	if notes.SHA256 == "" || notes.SHA256 == inventory.FingerprintUnreadable {
		t.Fatalf("expected real fingerprint, got %q", notes.SHA256)
	}
	if notes.RelativePath != filepath.Join("life", "notes.md") {
		t.Fatalf("unexpected relative path: %q", notes.RelativePath)
	}

	main := index["main.py"]
	if main.Depth != 3 {
		t.Fatalf("unexpected depth for nested file: %d", main.Depth)
	}
}

func TestCrawlSkipsNoiseDirsAndFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep", "a.md"), "a")
	writeFile(t, filepath.Join(root, ".git", "config"), "x")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), "x")
	writeFile(t, filepath.Join(root, ".hidden", "b.md"), "x")
	writeFile(t, filepath.Join(root, "keep", ".DS_Store"), "x")
	writeFile(t, filepath.Join(root, "google-cloud-sdk", "bin", "gcloud"), "x")
	// The toplevel skip applies only directly under the root.
	writeFile(t, filepath.Join(root, "keep", "google-cloud-sdk", "c.md"), "c")

	entries := crawl(t, root)
	index := byFilename(entries)
	if _, ok := index["a.md"]; !ok {
		t.Fatal("a.md should be crawled")
	}
	if _, ok := index["c.md"]; !ok {
		t.Fatal("nested google-cloud-sdk dir should not be pruned")
	}
	for _, name := range []string{"config", "index.js", "b.md", ".DS_Store", "gcloud"} {
		if _, ok := index[name]; ok {
			t.Fatalf("%s should have been skipped", name)
		}
	}
}

func TestCrawlSkipsSymlinksAndMissingRoots(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "real.md"), "content")
	if err := os.Symlink(filepath.Join(root, "real.md"), filepath.Join(root, "link.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries := crawl(t, root, filepath.Join(root, "does-not-exist"))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Filename != "real.md" {
		t.Fatalf("unexpected entry: %q", entries[0].Filename)
	}
}
