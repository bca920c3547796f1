package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formertriton/animal-guesser/internal/config"
	"github.com/formertriton/animal-guesser/internal/store"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataPath, err := resolveDataPath(cfg)
	if err != nil {
		return err
	}
	data := store.Load(dataPath)

	fmt.Println()
	fmt.Println(titleStyle.Render("📊 Learning Statistics"))
	fmt.Printf("Total games played: %d\n", data.Stats.Played)
	fmt.Printf("Correct guesses: %d\n", data.Stats.Correct)
	if data.Stats.Played > 0 {
		fmt.Printf("Success rate: %.1f%%\n", data.Stats.SuccessRate()*100)
	}
	fmt.Printf("Animals in database: %d\n", len(data.Animals))
	fmt.Printf("Games recorded: %d\n", len(data.GameHistory))

	fmt.Println("\nAnimals I know:")
	printAnimals(data)

	if recent := recentLearned(data, 5); len(recent) > 0 {
		fmt.Println("\nRecently learned:")
		for _, rec := range recent {
			fmt.Printf("- %s (%s)\n", rec.Animal, mutedStyle.Render(rec.Date))
		}
	}

	return nil
}

func printAnimals(data *store.Data) {
	for i, animal := range data.Animals {
		fmt.Printf("%2d. %s %s\n", i+1, animal.Name,
			mutedStyle.Render(fmt.Sprintf("(%d features)", len(animal.Features))))
	}
}

// recentLearned returns up to n history entries for learned animals,
// newest first.
func recentLearned(data *store.Data, n int) []recentEntry {
	var out []recentEntry
	for i := len(data.GameHistory) - 1; i >= 0 && len(out) < n; i-- {
		rec := data.GameHistory[i]
		if rec.Success {
			continue
		}
		out = append(out, recentEntry{Animal: rec.Animal, Date: rec.Date})
	}
	return out
}

type recentEntry struct {
	Animal string
	Date   string
}
