package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"alchemia/internal/fileutil"
)

// SchemaVersion pins the snapshot and mapping document format revision.
const SchemaVersion = "1.0"

// Snapshot is the persisted output of the intake stage and the input to the
// absorb stage. Regenerated whole on every run; never mutated in place.
type Snapshot struct {
	SchemaVersion string    `json:"schema_version"`
	Stage         string    `json:"stage"`
	GeneratedAt   time.Time `json:"generated_at"`
	RunID         string    `json:"run_id"`
	SourceDirs    []string  `json:"source_dirs"`
	TotalFiles    int       `json:"total_files"`
	Entries       []Entry   `json:"entries"`
}

// NewSnapshot assembles a snapshot document around crawled entries.
func NewSnapshot(runID string, sourceDirs []string, entries []Entry) *Snapshot {
	return &Snapshot{
		SchemaVersion: SchemaVersion,
		Stage:         "intake",
		GeneratedAt:   time.Now().UTC(),
		RunID:         runID,
		SourceDirs:    append([]string(nil), sourceDirs...),
		TotalFiles:    len(entries),
		Entries:       entries,
	}
}

// WriteSnapshot persists the snapshot atomically (temp file + rename).
func WriteSnapshot(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := fileutil.WriteAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot loads a snapshot document.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot schema version %q", snap.SchemaVersion)
	}
	return &snap, nil
}
