package store

import "github.com/formertriton/animal-guesser/internal/models"

// SeedAnimals returns the built-in starter database used when no
// snapshot exists yet or its animals field is absent.
func SeedAnimals() []*models.Animal {
	return []*models.Animal{
		{Name: "Dog", Features: models.FeatureMap{"mammal": 1, "domestic": 1, "four_legs": 1, "barks": 1, "carnivore": 0.5}},
		{Name: "Cat", Features: models.FeatureMap{"mammal": 1, "domestic": 1, "four_legs": 1, "purrs": 1, "carnivore": 1}},
		{Name: "Elephant", Features: models.FeatureMap{"mammal": 1, "large": 1, "four_legs": 1, "trunk": 1, "herbivore": 1}},
		{Name: "Lion", Features: models.FeatureMap{"mammal": 1, "carnivore": 1, "four_legs": 1, "wild": 1, "roars": 1}},
		{Name: "Fish", Features: models.FeatureMap{"aquatic": 1, "fins": 1, "gills": 1, "scales": 1, "cold_blooded": 1}},
		{Name: "Bird", Features: models.FeatureMap{"flies": 1, "feathers": 1, "beak": 1, "lays_eggs": 1, "warm_blooded": 1}},
		{Name: "Snake", Features: models.FeatureMap{"reptile": 1, "no_legs": 1, "cold_blooded": 1, "carnivore": 1, "long": 1}},
		{Name: "Rabbit", Features: models.FeatureMap{"mammal": 1, "herbivore": 1, "four_legs": 1, "hops": 1, "long_ears": 1}},
		{Name: "Bear", Features: models.FeatureMap{"mammal": 1, "large": 1, "four_legs": 1, "omnivore": 1, "wild": 1}},
		{Name: "Whale", Features: models.FeatureMap{"mammal": 1, "aquatic": 1, "large": 1, "intelligent": 1, "warm_blooded": 1}},
	}
}

// SeedQuestions returns the built-in question bank. Order matters: the
// selector breaks weighted-gain ties in favor of earlier questions.
func SeedQuestions() []models.Question {
	return []models.Question{
		{Text: "Is it a mammal?", Feature: "mammal", Weight: 0.8},
		{Text: "Does it live on land?", Feature: "terrestrial", Weight: 0.7},
		{Text: "Is it larger than a house cat?", Feature: "large", Weight: 0.6},
		{Text: "Is it a carnivore (meat-eater)?", Feature: "carnivore", Weight: 0.7},
		{Text: "Does it have four legs?", Feature: "four_legs", Weight: 0.8},
		{Text: "Is it a domestic animal?", Feature: "domestic", Weight: 0.6},
		{Text: "Can it fly?", Feature: "flies", Weight: 0.9},
		{Text: "Does it live in water?", Feature: "aquatic", Weight: 0.8},
		{Text: "Is it a predator?", Feature: "predator", Weight: 0.6},
		{Text: "Does it have fur?", Feature: "fur", Weight: 0.7},
	}
}
