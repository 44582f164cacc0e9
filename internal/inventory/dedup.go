package inventory

import "sort"

// MarkDuplicates flags duplicate files sharing a content fingerprint. The
// most-specific copy wins primary status: deepest directory nesting first,
// shortest path as the tie-break. Returns the number of entries flagged as
// duplicates. Entries with unreadable fingerprints never join a group.
func MarkDuplicates(entries []Entry) int {
	byHash := make(map[string][]int)
	for i := range entries {
		sha := entries[i].SHA256
		if sha == "" || sha == FingerprintUnreadable {
			continue
		}
		byHash[sha] = append(byHash[sha], i)
	}

	dupCount := 0
	for sha, group := range byHash {
		if len(group) < 2 {
			continue
		}

		sort.Slice(group, func(a, b int) bool {
			ea, eb := &entries[group[a]], &entries[group[b]]
			if ea.Depth != eb.Depth {
				return ea.Depth > eb.Depth
			}
			return len(ea.Path) < len(eb.Path)
		})

		groupID := sha[:12]
		primary := &entries[group[0]]
		primary.Duplicate = false
		primary.DuplicateGroup = groupID

		for _, idx := range group[1:] {
			dup := &entries[idx]
			dup.Duplicate = true
			dup.DuplicateGroup = groupID
			dup.DuplicateOf = primary.Path
			dupCount++
		}
	}

	return dupCount
}
