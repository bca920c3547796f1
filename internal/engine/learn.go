package engine

import (
	"strings"

	"github.com/formertriton/animal-guesser/internal/models"
)

// keywordRule associates one feature with the description keywords that
// imply it. Rules are data-driven and evaluated in table order; extending
// the table needs no code changes.
type keywordRule struct {
	feature  string
	keywords []string
}

var keywordRules = []keywordRule{
	{"large", []string{"large", "big", "huge", "massive", "giant"}},
	{"small", []string{"small", "tiny", "little", "miniature"}},
	{"aquatic", []string{"water", "ocean", "sea", "swimming", "aquatic"}},
	{"flies", []string{"fly", "flying", "wings", "air", "flight"}},
	{"domestic", []string{"pet", "domestic", "house", "tame"}},
	{"wild", []string{"wild", "jungle", "forest", "safari"}},
	{"carnivore", []string{"meat", "carnivore", "predator", "hunter"}},
	{"herbivore", []string{"plants", "grass", "herbivore", "vegetarian"}},
	{"fur", []string{"fur", "furry", "hairy"}},
	{"feathers", []string{"feather", "feathered"}},
	{"scales", []string{"scale", "scaled", "scaly"}},
}

// Learn merges a finished game's answers into the named animal, creating
// it when unknown (lookup is case-insensitive; animals are never
// removed). Each answered feature is overwritten with the literal 0/1
// answer, and a non-empty description additionally sets keyword-matched
// features. Returns the possibly extended animal list and the animal
// that was updated.
func Learn(animals []*models.Animal, name string, answers *models.AnswerSet, description string) ([]*models.Animal, *models.Animal) {
	var target *models.Animal
	for _, animal := range animals {
		if animal.NameEquals(name) {
			target = animal
			break
		}
	}
	if target == nil {
		target = models.NewAnimal(name)
		animals = append(animals, target)
	}

	for _, feature := range answers.Features() {
		answer, _ := answers.Get(feature)
		target.SetFeature(feature, float64(answer))
	}

	if description != "" {
		ApplyDescription(target, description)
	}

	return animals, target
}

// ApplyDescription scans a free-text description against the keyword
// table (case-insensitive substring match) and sets each matched feature
// to 1. One hit per rule suffices; features without a match are left
// untouched.
func ApplyDescription(animal *models.Animal, description string) {
	desc := strings.ToLower(description)
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(desc, keyword) {
				animal.SetFeature(rule.feature, 1)
				break
			}
		}
	}
}
