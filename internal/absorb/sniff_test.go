package absorb

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadFirstLinesCapsLineCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many.txt")
	var builder strings.Builder
	for i := 0; i < 100; i++ {
		builder.WriteString("Line\n")
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	content, ok := readFirstLines(context.Background(), path, 50, 1<<20)
	if !ok {
		t.Fatal("expected readable content")
	}
	if got := strings.Count(content, "\n"); got != 50 {
		t.Fatalf("expected 50 lines, got %d", got)
	}
	if strings.Contains(content, "Line") {
		t.Fatal("content must be lowercased")
	}
	if !strings.Contains(content, "line") {
		t.Fatal("content missing expected text")
	}
}

func TestReadFirstLinesCapsBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)+"\ntail\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	content, ok := readFirstLines(context.Background(), path, 50, 1024)
	if !ok {
		t.Fatal("expected readable content")
	}
	if len(content) > 1024 {
		t.Fatalf("byte cap exceeded: %d", len(content))
	}
	if strings.Contains(content, "tail") {
		t.Fatal("content past the byte cap must not be read")
	}
}

func TestReadFirstLinesUnreadable(t *testing.T) {
	_, ok := readFirstLines(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), 50, 1024)
	if ok {
		t.Fatal("missing file must report unreadable")
	}
}

func TestReadFirstLinesEmptyFileReportsNoContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, ok := readFirstLines(context.Background(), path, 50, 1024); ok {
		t.Fatal("empty content must not count as a successful scan")
	}
}

func TestReadFirstLinesHonorsContextCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slow.txt")
	if err := os.WriteFile(path, []byte("content\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, ok := readFirstLines(ctx, path, 50, 1024)
	if ok {
		t.Fatal("cancelled context must report unreadable")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancellation took too long: %v", elapsed)
	}
}
