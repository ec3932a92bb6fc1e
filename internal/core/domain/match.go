package domain

import "math"

// MatchType categorises a match by its combined score.
type MatchType string

// Match types.
const (
	// MatchTypeExact is used when the combined score is above the exact cut-off.
	MatchTypeExact MatchType = "exact"

	// MatchTypeSimilar is used for every other accepted candidate.
	MatchTypeSimilar MatchType = "similar"
)

// String returns the string representation.
func (t MatchType) String() string {
	return string(t)
}

// MatchResult is a catalog problem scored against a query text.
// The embedded Problem is a copy; the catalog entry is never modified.
type MatchResult struct {
	Problem

	// TitleMatch is the similarity between the query and the title, in [0,1].
	TitleMatch float64 `json:"titleMatch"`

	// DescMatch is the similarity between the query and the description, in [0,1].
	DescMatch float64 `json:"descMatch"`

	// CombinedScore is the weighted sum of the description and title scores.
	// It is not normalised and can exceed 1.
	CombinedScore float64 `json:"combinedScore"`

	// MatchType is exact or similar, derived from CombinedScore.
	MatchType MatchType `json:"matchType"`

	// Confidence mirrors CombinedScore for display.
	Confidence float64 `json:"confidence"`
}

// Percent converts a score to a whole percentage for display, rounding half up.
func Percent(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}

// MatchOptions configures a single search.
type MatchOptions struct {
	// Threshold overrides the configured similarity threshold when non-nil.
	Threshold *float64
}

// MatchReport is the outcome of one search as seen by presenters.
type MatchReport struct {
	// ID identifies the search in logs and API responses.
	ID string `json:"id"`

	// Threshold is the threshold the search ran with.
	Threshold float64 `json:"threshold"`

	// CatalogSize is the number of problems scanned.
	CatalogSize int `json:"catalogSize"`

	// Matches holds the ranked, deduplicated results in presentation order.
	Matches []MatchResult `json:"matches"`
}
