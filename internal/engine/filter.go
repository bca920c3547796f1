package engine

import "github.com/formertriton/animal-guesser/internal/models"

// Filter returns the animals consistent with every answer given so far.
// A yes answer excludes animals whose feature value is below 0.5, a no
// answer excludes values above 0.5; a value of exactly 0.5 survives both
// directions. Pure function of its inputs.
func Filter(animals []*models.Animal, answers *models.AnswerSet) []*models.Animal {
	candidates := make([]*models.Animal, 0, len(animals))
	for _, animal := range animals {
		if consistent(animal, answers) {
			candidates = append(candidates, animal)
		}
	}
	return candidates
}

func consistent(animal *models.Animal, answers *models.AnswerSet) bool {
	for _, feature := range answers.Features() {
		answer, _ := answers.Get(feature)
		value := animal.Features.Value(feature)
		if answer == 1 && value < 0.5 {
			return false
		}
		if answer == 0 && value > 0.5 {
			return false
		}
	}
	return true
}
