package matcher

import "strings"

// ContainmentScore is returned when one normalised text contains the other.
// It is a fixed shortcut, not a proportional score.
const ContainmentScore = 0.8

// Similarity returns a score in [0,1] for two free-text strings.
//
// Both inputs are normalised. An empty side scores 0. If either side
// contains the other the score is ContainmentScore; otherwise it is the
// Jaccard index of the two word sets.
func Similarity(a, b string) float64 {
	return similarityNormalized(Normalize(a), Normalize(b))
}

func similarityNormalized(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return ContainmentScore
	}
	return jaccard(tokenSet(a), tokenSet(b))
}

// jaccard computes |A∩B| / |A∪B|, defined as 0 when both sets are empty.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
