package match

// MinSuggestionScore is the similarity below which Closest reports nothing.
const MinSuggestionScore = 0.5

// Closest returns the candidate most similar to name after normalization.
// Ties keep the earliest candidate so results follow declaration order.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, candidate := range candidates {
		score := NormalizedLevenshteinScore(name, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < MinSuggestionScore {
		return "", false
	}

	return best, true
}
