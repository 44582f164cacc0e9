package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadManifest parses MANIFEST_INDEX_TABLE.csv and returns records keyed by
// lowercased Title. The CSV's first row is a header; columns are matched by
// name so column order does not matter.
func LoadManifest(path string) (map[string]ManifestInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(rows) == 0 {
		return map[string]ManifestInfo{}, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	manifest := make(map[string]ManifestInfo)
	for _, row := range rows[1:] {
		title := field(row, "Title")
		if title == "" {
			continue
		}
		manifest[strings.ToLower(title)] = ManifestInfo{
			ID:           field(row, "ID"),
			Category:     field(row, "Category"),
			Tags:         field(row, "Primary_Tags"),
			Type:         field(row, "Type"),
			Status:       field(row, "Status"),
			PrimaryUse:   field(row, "Primary_Use"),
			Phase:        field(row, "Phase"),
			Dependencies: field(row, "Key_Dependencies"),
		}
	}
	return manifest, nil
}

// EnrichFromManifest cross-references entries against a loaded manifest.
// Filenames are matched exactly first, then by stem without extension.
// Returns the number of entries matched.
func EnrichFromManifest(entries []Entry, manifest map[string]ManifestInfo) int {
	matched := 0
	for i := range entries {
		fname := strings.ToLower(entries[i].Filename)
		stem := strings.TrimSuffix(fname, strings.ToLower(filepath.Ext(fname)))

		info, ok := manifest[fname]
		if !ok {
			info, ok = manifest[stem]
		}
		if ok {
			copied := info
			entries[i].Manifest = &copied
			matched++
		}
	}
	return matched
}
