package inventory

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const sidecarSuffix = ".meta.json"

// EnrichFromSidecars merges `<name>.meta.json` sidecar metadata into the
// entries they describe. Sidecars themselves stay in the inventory but are
// never enriched. Returns the number of entries that gained sidecar data;
// unparsable sidecars are ignored.
func EnrichFromSidecars(entries []Entry) int {
	type key struct{ dir, name string }

	sidecars := make(map[key]string)
	for i := range entries {
		name := entries[i].Filename
		if !isSidecar(name) {
			continue
		}
		sidecars[key{
			dir:  filepath.Dir(entries[i].Path),
			name: name[:len(name)-len(sidecarSuffix)],
		}] = entries[i].Path
	}

	enriched := 0
	for i := range entries {
		if isSidecar(entries[i].Filename) {
			continue
		}
		sidecarPath, ok := sidecars[key{dir: filepath.Dir(entries[i].Path), name: entries[i].Filename}]
		if !ok {
			continue
		}
		data, err := os.ReadFile(sidecarPath)
		if err != nil {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			continue
		}
		entries[i].Sidecar = payload
		enriched++
	}
	return enriched
}

func isSidecar(name string) bool {
	return len(name) > len(sidecarSuffix) && name[len(name)-len(sidecarSuffix):] == sidecarSuffix
}
