package blogs

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/common"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/knowledge"
)

// DefaultContextLimit is used when the caller does not bound the result
const DefaultContextLimit = 3

const summaryLimit = 360

// blogKeywords signal that the user is asking about articles rather than
// the static knowledge base
var blogKeywords = []string{
	"blog", "blogs", "article", "articles", "news", "insight", "insights",
	"post", "posts", "update", "updates", "ai", "artificial intelligence",
	"technology", "tech", "data science",
}

// HasBlogIntent reports whether a message should trigger blog retrieval
func HasBlogIntent(message string) bool {
	if message == "" {
		return false
	}
	lower := strings.ToLower(message)
	for _, keyword := range blogKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Builder ranks recent blog posts against a query and turns the best
// matches into grounding contexts
type Builder struct {
	store  interfaces.ContentStore
	config *common.BlogsConfig
	logger arbor.ILogger
}

// NewBuilder creates a blog context builder
func NewBuilder(store interfaces.ContentStore, config *common.BlogsConfig, logger arbor.ILogger) *Builder {
	return &Builder{
		store:  store,
		config: config,
		logger: logger,
	}
}

type candidate struct {
	context models.ContextItem
	score   float64
	recency int
}

// BuildContexts fetches a recency-ordered candidate pool, scores each post
// by token overlap with the query plus a recency boost, and returns up to
// limit contexts. Content-store failures are logged and yield an empty
// result; the chat pipeline continues without blog grounding.
func (b *Builder) BuildContexts(query string, limit int) []models.ContextItem {
	if limit <= 0 {
		limit = DefaultContextLimit
	}

	queryTokens := knowledge.Tokenize(query)

	fetchLimit := limit * 3
	if fetchLimit < b.config.MinPoolSize {
		fetchLimit = b.config.MinPoolSize
	}

	posts, err := b.store.ListRecent(fetchLimit)
	if err != nil {
		b.logger.Warn().Err(err).Msg("Failed to load blog contexts")
		return nil
	}

	var scored []candidate
	for index, post := range posts {
		if c, ok := b.scorePost(post, queryTokens, fetchLimit-index); ok {
			scored = append(scored, c)
		}
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score == scored[j].score {
			return scored[i].recency > scored[j].recency
		}
		return scored[i].score > scored[j].score
	})

	selected := scored
	if len(queryTokens) > 0 {
		var relevant []candidate
		for _, c := range scored {
			if c.score > b.config.MinScore {
				relevant = append(relevant, c)
			}
		}
		// An over-aggressive cutoff must not empty the result; fall back
		// to the unfiltered ranking instead.
		if len(relevant) > 0 {
			selected = relevant
		}
	}

	if len(selected) > limit {
		selected = selected[:limit]
	}

	contexts := make([]models.ContextItem, 0, len(selected))
	for _, c := range selected {
		contexts = append(contexts, c.context)
	}

	b.logger.Debug().
		Int("pool", len(posts)).
		Int("selected", len(contexts)).
		Msg("Blog contexts built")

	return contexts
}

// scorePost derives a summary and overlap score for one candidate.
// Posts whose summaries are empty are discarded.
func (b *Builder) scorePost(post *models.BlogPost, queryTokens []string, recencyBoost int) (candidate, bool) {
	summarySource := post.Excerpt
	if summarySource == "" {
		body := post.ContentMarkdown
		if body == "" {
			body = post.Content
		}
		summarySource = plainText(body)
	}
	summary := truncate(summarySource, summaryLimit)
	if summary == "" {
		return candidate{}, false
	}

	var permalink string
	if post.Slug != "" {
		permalink = fmt.Sprintf("%s/blogs/%s", b.config.PublicBaseURL, post.Slug)
	}

	tagSet := map[string]struct{}{"blog": {}}
	if post.Category != "" {
		tagSet[strings.ToLower(post.Category)] = struct{}{}
	}
	for _, tag := range post.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tagSet[strings.ToLower(trimmed)] = struct{}{}
		}
	}
	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	summaryTokens := make(map[string]struct{})
	for _, token := range knowledge.Tokenize(summary) {
		summaryTokens[token] = struct{}{}
	}
	for tag := range tagSet {
		for _, token := range knowledge.Tokenize(tag) {
			summaryTokens[token] = struct{}{}
		}
	}

	score := 0.0
	for _, token := range queryTokens {
		if _, ok := summaryTokens[token]; ok {
			score += 6
			continue
		}
		for existing := range summaryTokens {
			if strings.Contains(existing, token) || strings.Contains(token, existing) {
				score += 2
				break
			}
		}
	}
	score += float64(recencyBoost) * b.config.RecencyWeight

	id := post.Slug
	if id == "" {
		id = post.ID
	}

	context := models.ContextItem{
		ID:      "blog-" + id,
		Title:   "Blog insight: " + post.Title,
		Content: formatBlogContent(post, summary, permalink),
		Source:  permalink,
		Tags:    tags,
	}

	return candidate{context: context, score: score, recency: recencyBoost}, true
}

func formatBlogContent(post *models.BlogPost, summary, permalink string) string {
	var sb strings.Builder
	sb.WriteString(formatPublished(post.PublishedAt))
	if post.Category != "" {
		sb.WriteString(" · " + post.Category)
	}
	sb.WriteString(" — " + summary)
	if permalink != "" {
		sb.WriteString(" (Read more: " + permalink + ")")
	}
	return sb.String()
}

func formatPublished(published time.Time) string {
	if published.IsZero() {
		return "Recently published"
	}
	return published.Format("02 Jan 2006")
}
