package matcher

import (
	"sort"

	"github.com/custodia-labs/leetlens/internal/core/domain"
)

// Scoring and ranking constants.
const (
	// DescriptionWeight scales the description score in the combined score.
	DescriptionWeight = 1.5

	// TitleWeight scales the title score in the combined score.
	TitleWeight = 0.8

	// ExactCutoff is the combined score above which a match is exact.
	ExactCutoff = 0.8

	// RedundantCutoff is the title similarity above which a lower-ranked
	// match is considered a duplicate of an accepted one.
	RedundantCutoff = 0.8

	// MaxUnique caps how many deduplicated matches are held before truncation.
	MaxUnique = 30

	// MaxResults is the maximum number of matches returned.
	MaxResults = 20
)

// Score computes the title, description and combined scores of one problem
// against a query. A blank description contributes 0.
func Score(query string, p *domain.Problem) domain.MatchResult {
	return score(Normalize(query), p)
}

func score(normQuery string, p *domain.Problem) domain.MatchResult {
	titleMatch := similarityNormalized(normQuery, Normalize(p.Title))

	var descMatch float64
	if p.HasDescription() {
		descMatch = similarityNormalized(normQuery, Normalize(p.Description))
	}

	combined := descMatch*DescriptionWeight + titleMatch*TitleWeight

	matchType := domain.MatchTypeSimilar
	if combined > ExactCutoff {
		matchType = domain.MatchTypeExact
	}

	return domain.MatchResult{
		Problem:       p.Clone(),
		TitleMatch:    titleMatch,
		DescMatch:     descMatch,
		CombinedScore: combined,
		MatchType:     matchType,
		Confidence:    combined,
	}
}

// accepted reports whether any of the three scores reaches the threshold.
func accepted(r *domain.MatchResult, threshold float64) bool {
	return r.CombinedScore >= threshold ||
		r.TitleMatch >= threshold ||
		r.DescMatch >= threshold
}

// Candidates scores every catalog entry and keeps those that pass the
// threshold, in catalog order. The catalog is not modified.
// Text that normalizes to nothing has no candidates, even at threshold 0.
func Candidates(pageText string, catalog []domain.Problem, threshold float64) []domain.MatchResult {
	normQuery := Normalize(pageText)
	candidates := make([]domain.MatchResult, 0)
	if normQuery == "" {
		return candidates
	}
	for i := range catalog {
		r := score(normQuery, &catalog[i])
		if accepted(&r, threshold) {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// Rank sorts candidates by combined score, highest first, and drops any
// whose normalised title is a near-duplicate of a higher-ranked one.
// Ties keep their input order. At most MaxUnique matches are kept.
// The candidates slice itself is left untouched.
func Rank(candidates []domain.MatchResult) []domain.MatchResult {
	candidates = append([]domain.MatchResult(nil), candidates...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CombinedScore > candidates[j].CombinedScore
	})

	unique := make([]domain.MatchResult, 0, min(len(candidates), MaxUnique))
	seen := make([]string, 0, MaxUnique)
	for i := range candidates {
		if len(unique) >= MaxUnique {
			break
		}
		title := Normalize(candidates[i].Title)
		if isRedundant(title, seen) {
			continue
		}
		unique = append(unique, candidates[i])
		seen = append(seen, title)
	}
	return unique
}

func isRedundant(title string, seen []string) bool {
	for _, s := range seen {
		if similarityNormalized(title, s) > RedundantCutoff {
			return true
		}
	}
	return false
}

// FindMatches scores pageText against the catalog and returns the ranked,
// deduplicated matches, at most MaxResults of them. An empty catalog or
// empty page text yields an empty, non-nil slice.
func FindMatches(pageText string, catalog []domain.Problem, threshold float64) []domain.MatchResult {
	ranked := Rank(Candidates(pageText, catalog, threshold))
	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}
