package models

import (
	"encoding/json"
	"strings"
)

// PageDescriptor describes the UI screen the user is currently viewing.
// It is caller-supplied and untrusted; every field is optional and
// unusable values degrade to "no page snippet", never an error.
type PageDescriptor struct {
	Title    string     `json:"title,omitempty"`
	Headings StringList `json:"headings,omitempty"`
	Content  string     `json:"content,omitempty"`
	Path     string     `json:"path,omitempty"`
	URL      string     `json:"url,omitempty"`
}

// IsEmpty reports whether the descriptor carries no usable text at all.
func (p *PageDescriptor) IsEmpty() bool {
	if p == nil {
		return true
	}
	return strings.TrimSpace(p.Title) == "" &&
		len(p.Headings) == 0 &&
		strings.TrimSpace(p.Content) == "" &&
		strings.TrimSpace(p.Path) == "" &&
		strings.TrimSpace(p.URL) == ""
}

// StringList accepts either a JSON array of strings or a single string.
// Browser clients send headings joined with " | ", older clients send an
// array; both decode to a flat list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	*l = nil
	for _, part := range strings.Split(single, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			*l = append(*l, trimmed)
		}
	}
	return nil
}
