package app

import (
	"time"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// seedBlogStore populates an empty store with starter posts so the chat
// pipeline has blog candidates before the admin surface is used.
func seedBlogStore(store interfaces.ContentStore, logger arbor.ILogger) error {
	count, err := store.CountPosts()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug().Int("count", count).Msg("Blog store already populated, skipping seed")
		return nil
	}

	now := time.Now()
	posts := []*models.BlogPost{
		{
			Slug:        "ai-in-capital-markets",
			Title:       "How AI is reshaping capital markets careers",
			Category:    "Technology",
			Excerpt:     "From algorithmic screening to research copilots, artificial intelligence is changing what entry-level analysts do. Here is how Gradus learners prepare for it.",
			Tags:        []string{"ai", "careers", "markets"},
			PublishedAt: now.AddDate(0, 0, -3),
		},
		{
			Slug:        "placement-drive-highlights",
			Title:       "Placement drive highlights",
			Category:    "Placements",
			Excerpt:     "A recap of the latest nationwide hiring drive: partner companies, offered roles, and the packages our learners secured.",
			Tags:        []string{"placements", "hiring"},
			PublishedAt: now.AddDate(0, 0, -10),
		},
		{
			Slug:        "financial-literacy-first-steps",
			Title:       "Financial literacy: first steps before GradusFinlit",
			Category:    "Finance",
			Excerpt:     "Five habits that make the GradusFinlit curriculum click faster, from reading balance sheets to following market news with intent.",
			Tags:        []string{"finance", "finlit", "learning"},
			PublishedAt: now.AddDate(0, 0, -21),
		},
	}

	for _, post := range posts {
		if err := store.SavePost(post); err != nil {
			return err
		}
	}

	logger.Info().Int("count", len(posts)).Msg("Blog store seeded with starter posts")
	return nil
}
