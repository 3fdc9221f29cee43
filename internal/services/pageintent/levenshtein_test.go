package pageintent

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"page", "page", 0},
		{"page", "", 4},
		{"", "tab", 3},
		{"page", "pgae", 2},
		{"screen", "scren", 1},
		{"section", "sektion", 1},
		{"kitten", "sitting", 3},
		{"view", "vew", 1},
		{"one", "on", 1},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.expected {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"page", "pages"},
		{"screen", "scren"},
		{"panel", "pane"},
		{"tab", "table"},
	}

	for _, pair := range pairs {
		ab := Distance(pair[0], pair[1])
		ba := Distance(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestDistance_ZeroOnlyForEqual(t *testing.T) {
	if Distance("panel", "panel") != 0 {
		t.Error("equal strings must have distance 0")
	}
	if Distance("panel", "panels") == 0 {
		t.Error("different strings must have non-zero distance")
	}
}
