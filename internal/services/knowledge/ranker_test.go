package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	return NewIndex(DefaultCorpus(), arbor.NewLogger())
}

func TestTopContexts_Deterministic(t *testing.T) {
	idx := testIndex(t)

	first := idx.TopContexts("placements and hiring partners", 4)
	second := idx.TopContexts("placements and hiring partners", 4)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "identical corpus and query must yield identical ordering")
	assert.LessOrEqual(t, len(first), 4)
}

func TestTopContexts_RanksTagMatches(t *testing.T) {
	idx := testIndex(t)

	contexts := idx.TopContexts("placements", 4)

	require.NotEmpty(t, contexts)
	assert.Equal(t, "placements", contexts[0].ID, "tag plus content match should rank the placements snippet first")
}

func TestTopContexts_EmptyQueryFallsBackToDefinitionOrder(t *testing.T) {
	idx := testIndex(t)

	contexts := idx.TopContexts("", 3)

	require.Len(t, contexts, 3)
	assert.Equal(t, "gradus-overview", contexts[0].ID)
	assert.Equal(t, "value-proposition", contexts[1].ID)
	assert.Equal(t, "flagship-programs", contexts[2].ID)
}

func TestTopContexts_NoMatchesFallsBack(t *testing.T) {
	idx := testIndex(t)

	contexts := idx.TopContexts("zxqv quantum warp drive", 4)

	require.Len(t, contexts, 4)
	assert.Equal(t, "gradus-overview", contexts[0].ID)
}

func TestTopContexts_StopwordOnlyQueryFallsBack(t *testing.T) {
	idx := testIndex(t)

	contexts := idx.TopContexts("the and of this", 2)

	require.Len(t, contexts, 2)
	assert.Equal(t, "gradus-overview", contexts[0].ID)
}

func TestTopContexts_LimitBoundsOutput(t *testing.T) {
	idx := testIndex(t)

	contexts := idx.TopContexts("gradus programs placements mentors", 1)
	assert.Len(t, contexts, 1)

	// Zero limit falls back to the default
	contexts = idx.TopContexts("gradus", 0)
	assert.LessOrEqual(t, len(contexts), DefaultContextLimit)
	assert.NotEmpty(t, contexts)
}
