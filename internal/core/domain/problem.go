package domain

import "strings"

// Difficulty is the difficulty label of a catalog problem.
// Values are stored exactly as supplied by the catalog.
type Difficulty string

// Known difficulty labels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsKnown returns true for Easy, Medium or Hard, compared case-insensitively.
func (d Difficulty) IsKnown() bool {
	switch strings.ToLower(string(d)) {
	case "easy", "medium", "hard":
		return true
	default:
		return false
	}
}

// String returns the label as stored.
func (d Difficulty) String() string {
	return string(d)
}

// Problem is a single catalog entry. It is treated as immutable input:
// searches read it and copy it into results, never modify it.
type Problem struct {
	// Title is the problem title. Expected to be non-empty.
	Title string `json:"title" yaml:"title"`

	// Description is the problem statement, possibly empty.
	Description string `json:"description" yaml:"description"`

	// URL links to the problem page.
	URL string `json:"url" yaml:"url"`

	// Difficulty is Easy, Medium or Hard.
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Topics is the ordered list of topic tags.
	Topics []string `json:"topics" yaml:"topics"`

	// IsPremium marks subscriber-only problems.
	IsPremium bool `json:"isPremium" yaml:"isPremium"`

	// IsSQL marks database problems.
	IsSQL bool `json:"is_sql" yaml:"is_sql"`
}

// HasDescription reports whether the description has non-whitespace content.
func (p *Problem) HasDescription() bool {
	return strings.TrimSpace(p.Description) != ""
}

// Clone returns a copy that shares no mutable state with p.
func (p Problem) Clone() Problem {
	if p.Topics != nil {
		topics := make([]string, len(p.Topics))
		copy(topics, p.Topics)
		p.Topics = topics
	}
	return p
}

// TopTopics returns at most n topics, preserving order.
func (p *Problem) TopTopics(n int) []string {
	if n < 0 || len(p.Topics) <= n {
		return p.Topics
	}
	return p.Topics[:n]
}
