package knowledge

import (
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// DefaultContextLimit is the number of corpus snippets returned when the
// caller does not specify a limit
const DefaultContextLimit = 4

// Index holds the token-counted knowledge corpus. It is built exactly once
// at startup and is read-only afterwards, so it needs no locking for
// concurrent request handling.
type Index struct {
	snippets []models.KnowledgeSnippet
	logger   arbor.ILogger
}

// NewIndex builds the snippet index from corpus definitions. Token counts
// cover title, content, and joined tags, matching the corpus authors'
// expectation that tag words are searchable text.
func NewIndex(entries []CorpusEntry, logger arbor.ILogger) *Index {
	snippets := make([]models.KnowledgeSnippet, 0, len(entries))
	for _, entry := range entries {
		combined := strings.Join([]string{entry.Title, entry.Content, strings.Join(entry.Tags, " ")}, " ")
		counts := make(map[string]int)
		for _, token := range Tokenize(combined) {
			counts[token]++
		}
		snippets = append(snippets, models.KnowledgeSnippet{
			ID:          entry.ID,
			Title:       entry.Title,
			Tags:        entry.Tags,
			Content:     entry.Content,
			TokenCounts: counts,
		})
	}

	logger.Debug().
		Int("snippets", len(snippets)).
		Msg("Knowledge index built")

	return &Index{snippets: snippets, logger: logger}
}

// Size returns the number of indexed snippets
func (idx *Index) Size() int {
	return len(idx.snippets)
}

// TopContexts returns up to limit snippets ranked by lexical score against
// the query. Queries with no usable tokens, and queries matching nothing,
// fall back to the first snippets in definition order so the prompt is
// never assembled without grounding.
func (idx *Index) TopContexts(query string, limit int) []models.ContextItem {
	if limit <= 0 {
		limit = DefaultContextLimit
	}

	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return idx.head(limit)
	}

	type scored struct {
		snippet models.KnowledgeSnippet
		score   int
	}

	var ranked []scored
	for _, snippet := range idx.snippets {
		if s := Score(queryTokens, snippet.TokenCounts, snippet.Tags); s > 0 {
			ranked = append(ranked, scored{snippet: snippet, score: s})
		}
	}

	if len(ranked) == 0 {
		return idx.head(limit)
	}

	// Stable sort keeps definition order for equal scores
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	contexts := make([]models.ContextItem, 0, len(ranked))
	for _, entry := range ranked {
		contexts = append(contexts, toContext(entry.snippet))
	}
	return contexts
}

func (idx *Index) head(limit int) []models.ContextItem {
	if limit > len(idx.snippets) {
		limit = len(idx.snippets)
	}
	contexts := make([]models.ContextItem, 0, limit)
	for _, snippet := range idx.snippets[:limit] {
		contexts = append(contexts, toContext(snippet))
	}
	return contexts
}

func toContext(snippet models.KnowledgeSnippet) models.ContextItem {
	return models.ContextItem{
		ID:      snippet.ID,
		Title:   snippet.Title,
		Content: snippet.Content,
		Tags:    snippet.Tags,
	}
}
