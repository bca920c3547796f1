package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formertriton/animal-guesser/internal/config"
	"github.com/formertriton/animal-guesser/internal/game"
	"github.com/formertriton/animal-guesser/internal/store"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one guessing game",
		RunE:  runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataPath, err := resolveDataPath(cfg)
	if err != nil {
		return err
	}
	data := store.Load(dataPath)

	printBanner(data)

	session := game.NewSession(data, game.Options{
		MaxQuestions:  cfg.Game.MaxQuestions,
		MinCandidates: cfg.Game.MinCandidates,
	}, os.Stdin, os.Stdout)

	if _, err := session.Play(); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	if err := store.Save(dataPath, data); err != nil {
		return err
	}
	return nil
}

// resolveDataPath prefers the configured snapshot location over the
// default one.
func resolveDataPath(cfg *config.Config) (string, error) {
	if cfg.Data.File != "" {
		return cfg.Data.File, nil
	}
	return store.DefaultPath()
}

func printBanner(data *store.Data) {
	fmt.Println()
	fmt.Println(titleStyle.Render("🦁 Welcome to Animal Guesser!"))
	fmt.Printf("Animals I know: %d\n", len(data.Animals))
	fmt.Printf("Games played: %d\n", data.Stats.Played)
	if data.Stats.Played > 0 {
		fmt.Printf("Success rate: %.1f%%\n", data.Stats.SuccessRate()*100)
	}
	fmt.Println("\nThink of any animal and I'll try to guess it!")
	fmt.Println("Answer with 'yes', 'y', 'no', or 'n'")
	fmt.Println()
}
