package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

func item(id string) models.ContextItem {
	return models.ContextItem{ID: id, Title: "title " + id, Content: "content " + id}
}

func ids(contexts []models.ContextItem) []string {
	out := make([]string, 0, len(contexts))
	for _, c := range contexts {
		out = append(out, c.ID)
	}
	return out
}

func TestMergeContexts(t *testing.T) {
	base := []models.ContextItem{item("a"), item("b")}
	extra := []models.ContextItem{item("b"), item("c"), item("d")}

	merged := MergeContexts(base, extra, 3)

	assert.Equal(t, []string{"a", "b", "c"}, ids(merged))
}

func TestMergeContexts_NoDuplicateIDs(t *testing.T) {
	base := []models.ContextItem{item("a"), item("b"), item("a")}
	extra := []models.ContextItem{item("a"), item("c")}

	merged := MergeContexts(base, extra, 10)

	seen := map[string]int{}
	for _, c := range merged {
		seen[c.ID]++
	}
	// base duplicates pass through untouched, extras never add another copy
	assert.Equal(t, 1, seen["c"])
	assert.Len(t, merged, 4)
}

func TestMergeContexts_EmptyExtraReturnsBase(t *testing.T) {
	base := []models.ContextItem{item("a"), item("b"), item("c")}
	merged := MergeContexts(base, nil, 2)
	assert.Equal(t, []string{"a", "b", "c"}, ids(merged))
}

func TestMergeContexts_PreservesBaseOrder(t *testing.T) {
	base := []models.ContextItem{item("z"), item("m"), item("a")}
	extra := []models.ContextItem{item("k")}

	merged := MergeContexts(base, extra, 10)
	assert.Equal(t, []string{"z", "m", "a", "k"}, ids(merged))
}

func TestPromoteToFront(t *testing.T) {
	contexts := []models.ContextItem{item("a"), item("page-x"), item("b")}

	promoted := PromoteToFront(contexts, item("page-x"), 3)

	assert.Equal(t, []string{"page-x", "a", "b"}, ids(promoted))
}

func TestPromoteToFront_SurvivesTruncation(t *testing.T) {
	contexts := []models.ContextItem{item("a"), item("b"), item("c")}

	promoted := PromoteToFront(contexts, item("page-x"), 2)

	assert.Equal(t, []string{"page-x", "a"}, ids(promoted))
}
