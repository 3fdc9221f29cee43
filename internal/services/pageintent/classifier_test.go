package pageintent

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

func pricingPage() *models.PageDescriptor {
	return &models.PageDescriptor{
		Title:    "Pricing",
		Headings: models.StringList{"Plans", "Enterprise options"},
		Content:  "Compare plans and pick the one that fits your team.",
		Path:     "/pricing",
		URL:      "https://gradusindia.in/pricing",
	}
}

func TestAsksAboutPage_ExplicitPhrases(t *testing.T) {
	page := pricingPage()

	for _, message := range []string{
		"tell me about this page",
		"what is this page",
		"what's on this page?",
		"summarize the current screen",
		"explain this section to me",
	} {
		assert.True(t, AsksAboutPage(message, page), "message %q should affirm page intent", message)
	}
}

func TestAsksAboutPage_ShortTemplatedPhrases(t *testing.T) {
	page := pricingPage()

	assert.True(t, AsksAboutPage("this one", page))
	assert.True(t, AsksAboutPage("now this", page))
	assert.True(t, AsksAboutPage("and about this?", page))
}

func TestAsksAboutPage_FuzzyPageWords(t *testing.T) {
	page := pricingPage()

	// One edit away from the page vocabulary
	assert.True(t, AsksAboutPage("describe this pag", page))
	assert.True(t, AsksAboutPage("what does this scren show", page))
}

func TestAsksAboutPage_BareDeictic(t *testing.T) {
	page := pricingPage()

	assert.True(t, AsksAboutPage("this", page), "a lone deictic with a valid page should affirm")
	assert.True(t, AsksAboutPage("tell me about this please", page))
}

func TestAsksAboutPage_PageTitleMention(t *testing.T) {
	page := pricingPage()

	assert.True(t, AsksAboutPage("how does pricing work for teams", page))
	assert.True(t, AsksAboutPage("are enterprise options available", page))
}

func TestAsksAboutPage_Negative(t *testing.T) {
	assert.False(t, AsksAboutPage("what's your favorite color", &models.PageDescriptor{}))
	assert.False(t, AsksAboutPage("", pricingPage()))
	assert.False(t, AsksAboutPage("tell me about gradus placements", &models.PageDescriptor{}))
}

func TestBuildSnippet(t *testing.T) {
	snippet := BuildSnippet(pricingPage())

	require.NotNil(t, snippet)
	assert.Equal(t, "page-pricing", snippet.ID)
	assert.Equal(t, "Pricing", snippet.Title)
	assert.Contains(t, snippet.Content, "Pricing Plans Enterprise options Compare plans")
	assert.Equal(t, "https://gradusindia.in/pricing", snippet.Source)
	assert.Equal(t, []string{"page"}, snippet.Tags)
}

func TestBuildSnippet_EmptyDescriptor(t *testing.T) {
	assert.Nil(t, BuildSnippet(&models.PageDescriptor{}))
	assert.Nil(t, BuildSnippet(&models.PageDescriptor{Title: "   "}))
}

func TestBuildSnippet_TruncatesLongContent(t *testing.T) {
	long := make([]byte, 6000)
	for i := range long {
		long[i] = 'a'
		if i%10 == 9 {
			long[i] = ' '
		}
	}
	snippet := BuildSnippet(&models.PageDescriptor{Title: "Long", Content: string(long)})

	require.NotNil(t, snippet)
	assert.LessOrEqual(t, len(snippet.Content), 2400)
}

func TestAsksAboutPage_ShortMessageLimitCountsRunes(t *testing.T) {
	page := pricingPage()

	// Hindi phrasing around a templated short phrase: well under the
	// short-message limit in characters, over it in bytes
	message := "कृपया मुझे अभी इसके बारे में पूरी जानकारी विस्तार से समझाएं now this"
	normalized := normalize(message)
	require.Greater(t, len(normalized), shortMessageLimit)
	require.LessOrEqual(t, utf8.RuneCountInString(normalized), shortMessageLimit)

	assert.True(t, AsksAboutPage(message, page))
}

func TestBuildSnippet_TruncatesMultiByteOnRuneBoundary(t *testing.T) {
	snippet := BuildSnippet(&models.PageDescriptor{
		Title:   "प्रवेश",
		Content: strings.Repeat("प्रवेश प्रक्रिया और पात्रता विवरण ", 200),
	})

	require.NotNil(t, snippet)
	assert.True(t, utf8.ValidString(snippet.Content), "truncation must not split a rune")
	assert.LessOrEqual(t, utf8.RuneCountInString(snippet.Content), 2400)
}

func TestBuildSnippet_DerivesIDFromURL(t *testing.T) {
	snippet := BuildSnippet(&models.PageDescriptor{
		Title: "Courses",
		URL:   "https://gradusindia.in/our-courses?ref=nav",
	})

	require.NotNil(t, snippet)
	assert.Equal(t, "page-our-courses", snippet.ID)
}
