package engine

import "github.com/formertriton/animal-guesser/internal/models"

const (
	minConfidence = 0.1
	maxConfidence = 0.95

	// candidatePenalty lowers confidence for each candidate beyond the
	// first still in play when the guess is made.
	candidatePenalty = 0.1
)

// MakeGuess scores the candidates that remain consistent with the
// answers and returns the best one together with a confidence in
// [0.1, 0.95]. A contradictory answer set leaves no candidates and
// yields (nil, 0). A single surviving candidate short-circuits to a flat
// 0.95 regardless of how it was reached.
func MakeGuess(animals []*models.Animal, answers *models.AnswerSet) (*models.Animal, float64) {
	candidates := Filter(animals, answers)
	if len(candidates) == 0 {
		return nil, 0
	}
	if len(candidates) == 1 {
		return candidates[0], maxConfidence
	}

	var best *models.Animal
	bestScore := 0.0
	for _, animal := range candidates {
		score := matchScore(animal, answers)
		if score > bestScore {
			bestScore = score
			best = animal
		}
	}
	// Every score can be 0, e.g. when no question was answered at all.
	// Fall back to the first candidate in stored order.
	if best == nil {
		best = candidates[0]
	}

	confidence := bestScore * (1 - float64(len(candidates)-1)*candidatePenalty)
	return best, clampConfidence(confidence)
}

// matchScore is the fraction of answered features on which the animal
// agrees with the answer. Agreement is strict on both sides of the
// threshold, so a boundary value of 0.5 matches neither a yes nor a no.
func matchScore(animal *models.Animal, answers *models.AnswerSet) float64 {
	total := answers.Len()
	if total == 0 {
		return 0
	}

	matched := 0
	for _, feature := range answers.Features() {
		answer, _ := answers.Get(feature)
		value := animal.Features.Value(feature)
		if (answer == 1 && value > 0.5) || (answer == 0 && value < 0.5) {
			matched++
		}
	}
	return float64(matched) / float64(total)
}

func clampConfidence(v float64) float64 {
	if v < minConfidence {
		return minConfidence
	}
	if v > maxConfidence {
		return maxConfidence
	}
	return v
}
