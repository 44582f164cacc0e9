// Package registry loads the canonical repository registry and builds the
// immutable lookup index the classification chain depends on.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"alchemia/internal/organ"
)

// ErrRegistryUnavailable marks a registry source that is missing, unreadable,
// or malformed. Classification cannot proceed without the canonical target
// list, so callers treat this as fatal for the whole run.
var ErrRegistryUnavailable = errors.New("registry unavailable")

// RepoRecord describes one canonical repository.
type RepoRecord struct {
	Name        string      `json:"name"`
	Org         string      `json:"org"`
	Organ       organ.Organ `json:"organ"`
	Archived    bool        `json:"archived"`
	Description string      `json:"description,omitempty"`
}

// Index holds the registry lookup structures. Built once per run and
// read-only thereafter, so concurrent rule evaluation needs no locking.
type Index struct {
	repos  []RepoRecord
	byName map[string]RepoRecord
	byOrg  map[string][]RepoRecord
}

type document struct {
	Organs map[string]struct {
		Repositories []struct {
			Name        string `json:"name"`
			Org         string `json:"org"`
			Status      string `json:"status"`
			Description string `json:"description"`
		} `json:"repositories"`
	} `json:"organs"`
}

// Load reads and indexes a registry document. Any failure wraps
// ErrRegistryUnavailable.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrRegistryUnavailable, path, err)
	}
	return Parse(data)
}

// Parse indexes a raw registry document.
func Parse(data []byte) (*Index, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrRegistryUnavailable, err)
	}

	idx := &Index{
		byName: make(map[string]RepoRecord),
		byOrg:  make(map[string][]RepoRecord),
	}

	organKeys := make([]string, 0, len(doc.Organs))
	for key := range doc.Organs {
		organKeys = append(organKeys, key)
	}
	sort.Strings(organKeys)

	for _, organKey := range organKeys {
		parsedOrgan, err := organ.Parse(organKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
		}
		for _, repo := range doc.Organs[organKey].Repositories {
			record := RepoRecord{
				Name:        repo.Name,
				Org:         repo.Org,
				Organ:       parsedOrgan,
				Archived:    repo.Status == "ARCHIVED",
				Description: repo.Description,
			}
			idx.repos = append(idx.repos, record)
			idx.byName[record.Name] = record
			idx.byOrg[record.Org] = append(idx.byOrg[record.Org], record)
		}
	}

	return idx, nil
}

// LookupByName returns the repo record whose canonical name exactly matches
// name. Matching is case-sensitive.
func (idx *Index) LookupByName(name string) (RepoRecord, bool) {
	record, ok := idx.byName[name]
	return record, ok
}

// AllRepos returns every indexed repo in document order, archived included.
func (idx *Index) AllRepos() []RepoRecord {
	return append([]RepoRecord(nil), idx.repos...)
}

// AllActiveRepos returns every non-archived repo in document order.
func (idx *Index) AllActiveRepos() []RepoRecord {
	out := make([]RepoRecord, 0, len(idx.repos))
	for _, record := range idx.repos {
		if record.Archived {
			continue
		}
		out = append(out, record)
	}
	return out
}

// ReposForOrg returns every repo belonging to the given organization.
func (idx *Index) ReposForOrg(org string) []RepoRecord {
	return append([]RepoRecord(nil), idx.byOrg[org]...)
}

// Len returns the total number of indexed repos, archived included.
func (idx *Index) Len() int { return len(idx.repos) }

// ArchivedCount returns the number of archived repos in the registry.
func (idx *Index) ArchivedCount() int {
	count := 0
	for _, record := range idx.repos {
		if record.Archived {
			count++
		}
	}
	return count
}
