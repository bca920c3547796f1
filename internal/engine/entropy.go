package engine

import (
	"math"

	"github.com/formertriton/animal-guesser/internal/models"
)

// Entropy measures how evenly a feature splits the candidate set into
// yes and no, in bits. It is 0 when the set has at most one candidate or
// when every candidate falls on the same side of the threshold, and at
// most 1 (an even split).
func Entropy(candidates []*models.Animal, feature string) float64 {
	if len(candidates) <= 1 {
		return 0
	}

	yes := 0
	for _, animal := range candidates {
		if models.Truthy(animal.Features.Value(feature)) {
			yes++
		}
	}
	if yes == 0 || yes == len(candidates) {
		return 0
	}

	p := float64(yes) / float64(len(candidates))
	q := 1 - p
	return -(p*math.Log2(p) + q*math.Log2(q))
}

// BestQuestion picks the unasked question with the highest weighted
// information gain over the current candidates. Comparison is strict, so
// the earliest question in bank order wins ties. Returns nil when every
// question was asked or no remaining question splits the candidates at
// all; the caller then proceeds straight to guessing.
func BestQuestion(questions []models.Question, candidates []*models.Animal, asked []string) *models.Question {
	askedSet := make(map[string]struct{}, len(asked))
	for _, feature := range asked {
		askedSet[feature] = struct{}{}
	}

	var best *models.Question
	maxGain := 0.0
	for i := range questions {
		question := &questions[i]
		if _, ok := askedSet[question.Feature]; ok {
			continue
		}
		gain := Entropy(candidates, question.Feature) * question.Weight
		if gain > maxGain {
			maxGain = gain
			best = question
		}
	}
	return best
}
