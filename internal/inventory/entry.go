package inventory

import "time"

// FingerprintUnreadable is recorded when a file's content hash could not be
// computed. Unreadable files stay in the inventory; they are simply excluded
// from duplicate grouping.
const FingerprintUnreadable = "ERROR_UNREADABLE"

// ManifestInfo carries the fields cross-referenced from the external
// MANIFEST_INDEX_TABLE.csv.
type ManifestInfo struct {
	ID           string `json:"manifest_id"`
	Category     string `json:"manifest_category"`
	Tags         string `json:"manifest_tags"`
	Type         string `json:"manifest_type"`
	Status       string `json:"manifest_status"`
	PrimaryUse   string `json:"manifest_primary_use"`
	Phase        string `json:"manifest_phase"`
	Dependencies string `json:"manifest_dependencies"`
}

// Entry is one crawled file. Created once by the crawler (plus the enrichment
// passes that run before the snapshot is written) and immutable afterwards;
// the classifier never mutates entries.
type Entry struct {
	Path         string    `json:"path"`
	RelativePath string    `json:"relative_path"`
	SourceDir    string    `json:"source_dir"`
	Filename     string    `json:"filename"`
	Extension    string    `json:"extension"`
	MIMEType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
	SHA256       string    `json:"sha256"`
	ParentDir    string    `json:"parent_dir"`
	Depth        int       `json:"depth"`

	Manifest *ManifestInfo  `json:"manifest,omitempty"`
	Sidecar  map[string]any `json:"sidecar,omitempty"`

	Duplicate      bool   `json:"duplicate"`
	DuplicateGroup string `json:"duplicate_group,omitempty"`
	DuplicateOf    string `json:"duplicate_of,omitempty"`
}

// ManifestCategory returns the manifest category, or "" when the entry has no
// manifest cross-reference.
func (e *Entry) ManifestCategory() string {
	if e.Manifest == nil {
		return ""
	}
	return e.Manifest.Category
}
