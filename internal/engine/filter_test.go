package engine

import (
	"testing"

	"github.com/formertriton/animal-guesser/internal/models"
	"github.com/formertriton/animal-guesser/internal/store"
)

func answerSet(pairs ...any) *models.AnswerSet {
	s := models.NewAnswerSet()
	for i := 0; i < len(pairs); i += 2 {
		s.Set(pairs[i].(string), pairs[i+1].(int))
	}
	return s
}

func names(animals []*models.Animal) []string {
	out := make([]string, 0, len(animals))
	for _, a := range animals {
		out = append(out, a.Name)
	}
	return out
}

func TestFilter_NoAnswersKeepsAll(t *testing.T) {
	t.Parallel()

	animals := store.SeedAnimals()
	got := Filter(animals, models.NewAnswerSet())
	if len(got) != len(animals) {
		t.Fatalf("len = %d, want %d", len(got), len(animals))
	}
}

func TestFilter_WhaleScenario(t *testing.T) {
	t.Parallel()

	animals := store.SeedAnimals()
	got := Filter(animals, answerSet("mammal", 1, "aquatic", 1))
	if len(got) != 1 {
		t.Fatalf("candidates = %v, want exactly Whale", names(got))
	}
	if got[0].Name != "Whale" {
		t.Fatalf("candidate = %q, want Whale", got[0].Name)
	}
}

func TestFilter_MonotonicUnderMoreAnswers(t *testing.T) {
	t.Parallel()

	animals := store.SeedAnimals()
	answers := models.NewAnswerSet()
	prev := len(animals)

	for _, step := range []struct {
		feature string
		answer  int
	}{
		{"mammal", 1},
		{"four_legs", 1},
		{"domestic", 1},
		{"barks", 0},
	} {
		answers.Set(step.feature, step.answer)
		got := Filter(animals, answers)
		if len(got) > prev {
			t.Fatalf("after %s=%d: %d candidates, previously %d; filtering must never grow the set",
				step.feature, step.answer, len(got), prev)
		}
		prev = len(got)
	}
}

func TestFilter_MissingFeatureCountsAsNo(t *testing.T) {
	t.Parallel()

	animals := []*models.Animal{
		{Name: "Finned", Features: models.FeatureMap{"fins": 1}},
		{Name: "Plain", Features: models.FeatureMap{}},
	}

	got := Filter(animals, answerSet("fins", 1))
	if len(got) != 1 || got[0].Name != "Finned" {
		t.Fatalf("yes-answer candidates = %v, want [Finned]", names(got))
	}

	got = Filter(animals, answerSet("fins", 0))
	if len(got) != 1 || got[0].Name != "Plain" {
		t.Fatalf("no-answer candidates = %v, want [Plain]", names(got))
	}
}

func TestFilter_BoundaryValueSurvivesBothAnswers(t *testing.T) {
	t.Parallel()

	animals := []*models.Animal{
		{Name: "Dog", Features: models.FeatureMap{"carnivore": 0.5}},
	}

	if got := Filter(animals, answerSet("carnivore", 1)); len(got) != 1 {
		t.Fatalf("yes answer excluded boundary value 0.5")
	}
	if got := Filter(animals, answerSet("carnivore", 0)); len(got) != 1 {
		t.Fatalf("no answer excluded boundary value 0.5")
	}
}

func TestFilter_ContradictoryAnswersEmpty(t *testing.T) {
	t.Parallel()

	animals := store.SeedAnimals()
	got := Filter(animals, answerSet("mammal", 1, "reptile", 1))
	if len(got) != 0 {
		t.Fatalf("candidates = %v, want none", names(got))
	}
}
