package ids

import "strings"

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
// Keys of the returned map are lowercased.
func UniquePrefixLengths(ids []string) map[string]int {
	uniqueIDs := normalizeUnique(ids)

	lengths := make(map[string]int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		lengths[id] = uniquePrefixLength(id, uniqueIDs)
	}

	return lengths
}

// MatchPrefix finds the ID that starts with prefix, case-insensitively.
// An exact match always wins over longer IDs sharing the prefix.
func MatchPrefix(ids []string, prefix string) (match string, found bool, ambiguous bool) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", false, false
	}

	for _, id := range ids {
		if strings.ToLower(id) == prefix {
			return id, true, false
		}
	}

	for _, id := range ids {
		if !strings.HasPrefix(strings.ToLower(id), prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match = id
		found = true
	}
	return match, found, false
}

func normalizeUnique(ids []string) []string {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		uniqueIDs = append(uniqueIDs, idLower)
	}
	return uniqueIDs
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
