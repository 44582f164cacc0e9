// Package mapping builds and persists the classification mapping document,
// the contract consumed by the downstream deployment planner.
package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gowebpki/jcs"

	"alchemia/internal/absorb"
	"alchemia/internal/fileutil"
	"alchemia/internal/inventory"
)

// ErrWrite marks a failure to persist the mapping document. The atomic writer
// guarantees no partial file is left behind when it is returned.
var ErrWrite = errors.New("mapping write failed")

// Record is one classified entry in the mapping document. Key is the entry's
// content fingerprint when it is available and unique within the run, the
// absolute path otherwise (duplicate groups share a fingerprint).
type Record struct {
	Key            string          `json:"key"`
	Entry          inventory.Entry `json:"entry"`
	Classification absorb.Result   `json:"classification"`
	Error          string          `json:"error,omitempty"`
}

// Document is the persisted output of the absorb stage. Records keep the
// inventory's input order.
type Document struct {
	SchemaVersion string       `json:"schema_version"`
	Stage         string       `json:"stage"`
	GeneratedAt   time.Time    `json:"generated_at"`
	RunID         string       `json:"run_id"`
	Snapshot      string       `json:"snapshot"`
	Stats         absorb.Stats `json:"stats"`
	Records       []Record     `json:"records"`
}

// New assembles a mapping document from a classification pass. snapshotPath
// records which inventory snapshot the outcomes were derived from.
func New(runID, snapshotPath string, outcomes []absorb.Outcome, stats absorb.Stats) *Document {
	fingerprints := make(map[string]int, len(outcomes))
	for i := range outcomes {
		if sha := outcomes[i].Entry.SHA256; usableFingerprint(sha) {
			fingerprints[sha]++
		}
	}

	records := make([]Record, 0, len(outcomes))
	for i := range outcomes {
		entry := outcomes[i].Entry
		key := entry.Path
		if usableFingerprint(entry.SHA256) && fingerprints[entry.SHA256] == 1 {
			key = entry.SHA256
		}
		records = append(records, Record{
			Key:            key,
			Entry:          entry,
			Classification: outcomes[i].Result,
			Error:          outcomes[i].Err,
		})
	}

	return &Document{
		SchemaVersion: inventory.SchemaVersion,
		Stage:         "absorb",
		GeneratedAt:   time.Now().UTC(),
		RunID:         runID,
		Snapshot:      snapshotPath,
		Stats:         stats,
		Records:       records,
	}
}

func usableFingerprint(sha string) bool {
	return sha != "" && sha != inventory.FingerprintUnreadable
}

// Write persists the document atomically in RFC 8785 canonical JSON, so two
// runs over the same inventory differ only in the generated_at and run_id
// header fields. Returns the number of records written.
func Write(path string, doc *Document) (int, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: encode document: %v", ErrWrite, err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return 0, fmt.Errorf("%w: canonicalize document: %v", ErrWrite, err)
	}
	if err := fileutil.WriteAtomic(path, canonical, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return len(doc.Records), nil
}

// Read loads a mapping document, for the report command.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode mapping: %w", err)
	}
	if doc.SchemaVersion != inventory.SchemaVersion {
		return nil, fmt.Errorf("unsupported mapping schema version %q", doc.SchemaVersion)
	}
	return &doc, nil
}
