package chat

import (
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// MergeContexts appends each extra item whose id is absent from base, then
// truncates to limit. Relative order of base is preserved; extras keep
// their own order after it. An empty extra list returns base untouched.
func MergeContexts(base, extra []models.ContextItem, limit int) []models.ContextItem {
	if len(extra) == 0 {
		return base
	}

	seen := make(map[string]struct{}, len(base))
	merged := make([]models.ContextItem, 0, len(base)+len(extra))
	for _, item := range base {
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}

	for _, item := range extra {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// PromoteToFront places the snippet at index 0, removing any earlier copy
// with the same id, then truncates to limit. Used when page intent is
// affirmed so the page snippet always survives truncation.
func PromoteToFront(contexts []models.ContextItem, snippet models.ContextItem, limit int) []models.ContextItem {
	promoted := make([]models.ContextItem, 0, len(contexts)+1)
	promoted = append(promoted, snippet)
	for _, item := range contexts {
		if item.ID == snippet.ID {
			continue
		}
		promoted = append(promoted, item)
	}

	if limit > 0 && len(promoted) > limit {
		promoted = promoted[:limit]
	}
	return promoted
}
