package blogs

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short summary", 360); got != "short summary" {
		t.Errorf("truncate should leave short values alone, got %q", got)
	}
	if got := truncate("  spaced   out  ", 360); got != "spaced out" {
		t.Errorf("truncate should collapse whitespace, got %q", got)
	}

	long := strings.Repeat("word ", 100)
	got := truncate(long, 360)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("cut values must carry the ellipsis marker, got %q", got)
	}
	if utf8.RuneCountInString(got) > 363 {
		t.Errorf("truncate exceeded its limit: %d runes", utf8.RuneCountInString(got))
	}
}

func TestTruncateMultiByteKeepsRuneBudget(t *testing.T) {
	long := "a" + strings.Repeat("ह", 400)
	got := truncate(long, 360)

	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	if utf8.RuneCountInString(got) != 363 {
		t.Errorf("expected 360 content runes plus the ellipsis, got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("cut values must carry the ellipsis marker, got %q", got)
	}
}
