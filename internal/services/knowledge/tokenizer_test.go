package knowledge

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "Whitespace only",
			input:    "   \t\n  ",
			expected: nil,
		},
		{
			name:     "Lowercases and splits",
			input:    "Gradus Placements",
			expected: []string{"gradus", "placements"},
		},
		{
			name:     "Strips punctuation",
			input:    "mentors, placements! (courses)",
			expected: []string{"mentors", "placements", "courses"},
		},
		{
			name:     "Drops stopwords",
			input:    "what is the placement package for this program",
			expected: []string{"what", "placement", "package", "program"},
		},
		{
			name:     "Keeps digits",
			input:    "packages from 6 LPA to 14 LPA",
			expected: []string{"packages", "6", "lpa", "14", "lpa"},
		},
		{
			name:     "Unicode letters survive",
			input:    "Café Gradus",
			expected: []string{"café", "gradus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScore(t *testing.T) {
	counts := map[string]int{"placement": 3, "mentor": 1}
	tags := []string{"placements", "mentor"}

	tests := []struct {
		name     string
		query    []string
		expected int
	}{
		{name: "No overlap", query: []string{"pricing"}, expected: 0},
		{name: "Count match", query: []string{"placement"}, expected: 3},
		{name: "Count plus tag", query: []string{"mentor"}, expected: 3},
		{name: "Tag only", query: []string{"placements"}, expected: 2},
		{name: "Repeated query token counts twice", query: []string{"mentor", "mentor"}, expected: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, counts, tags); got != tt.expected {
				t.Errorf("Score(%v) = %d, want %d", tt.query, got, tt.expected)
			}
		})
	}
}
