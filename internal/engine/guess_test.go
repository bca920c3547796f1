package engine

import (
	"math"
	"testing"

	"github.com/formertriton/animal-guesser/internal/models"
	"github.com/formertriton/animal-guesser/internal/store"
)

func TestMakeGuess_NoCandidates(t *testing.T) {
	t.Parallel()

	guess, confidence := MakeGuess(store.SeedAnimals(), answerSet("mammal", 1, "reptile", 1))
	if guess != nil {
		t.Fatalf("guess = %q, want nil", guess.Name)
	}
	if confidence != 0 {
		t.Fatalf("confidence = %v, want 0", confidence)
	}
}

func TestMakeGuess_SingleCandidateShortcut(t *testing.T) {
	t.Parallel()

	guess, confidence := MakeGuess(store.SeedAnimals(), answerSet("mammal", 1, "aquatic", 1))
	if guess == nil || guess.Name != "Whale" {
		t.Fatalf("guess = %+v, want Whale", guess)
	}
	if confidence != 0.95 {
		t.Fatalf("confidence = %v, want exactly 0.95", confidence)
	}
}

func TestMakeGuess_EmptyAnswersReturnsFirstAnimal(t *testing.T) {
	t.Parallel()

	animals := store.SeedAnimals()
	guess, confidence := MakeGuess(animals, models.NewAnswerSet())
	if guess == nil || guess.Name != animals[0].Name {
		t.Fatalf("guess = %+v, want the first animal %q", guess, animals[0].Name)
	}
	if confidence != 0.1 {
		t.Fatalf("confidence = %v, want the 0.1 floor", confidence)
	}
}

func TestMakeGuess_BestMatchWins(t *testing.T) {
	t.Parallel()

	// Both survive the filter (0.5 is permissive) but Exact agrees with
	// both answers while Fuzzy strictly agrees with neither.
	animals := []*models.Animal{
		{Name: "Fuzzy", Features: models.FeatureMap{"a": 0.5, "b": 0.5}},
		{Name: "Exact", Features: models.FeatureMap{"a": 1, "b": 0}},
	}

	guess, confidence := MakeGuess(animals, answerSet("a", 1, "b", 0))
	if guess == nil || guess.Name != "Exact" {
		t.Fatalf("guess = %+v, want Exact", guess)
	}
	// score 1.0 scaled by one extra candidate: 1 * (1 - 0.1)
	if math.Abs(confidence-0.9) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.9", confidence)
	}
}

func TestMakeGuess_FirstSeenWinsScoreTies(t *testing.T) {
	t.Parallel()

	animals := []*models.Animal{
		{Name: "First", Features: models.FeatureMap{"a": 1}},
		{Name: "Second", Features: models.FeatureMap{"a": 1}},
	}

	guess, _ := MakeGuess(animals, answerSet("a", 1))
	if guess == nil || guess.Name != "First" {
		t.Fatalf("guess = %+v, want First on a tie", guess)
	}
}

func TestMakeGuess_ConfidenceClampedToFloor(t *testing.T) {
	t.Parallel()

	// Eleven candidates: raw confidence 1*(1-10*0.1) = 0, clamped to 0.1.
	var animals []*models.Animal
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		animals = append(animals, &models.Animal{Name: name, Features: models.FeatureMap{"a": 1}})
	}

	_, confidence := MakeGuess(animals, answerSet("a", 1))
	if confidence != 0.1 {
		t.Fatalf("confidence = %v, want the 0.1 floor", confidence)
	}
}

func TestMakeGuess_ConfidenceNeverExceedsCeiling(t *testing.T) {
	t.Parallel()

	animals := []*models.Animal{
		{Name: "A", Features: models.FeatureMap{"a": 1, "b": 0.5}},
		{Name: "B", Features: models.FeatureMap{"a": 0.5, "b": 0.5}},
	}

	_, confidence := MakeGuess(animals, answerSet("a", 1))
	if confidence < 0.1 || confidence > 0.95 {
		t.Fatalf("confidence = %v, want within [0.1, 0.95]", confidence)
	}
}
