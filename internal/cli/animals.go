package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/formertriton/animal-guesser/internal/config"
	"github.com/formertriton/animal-guesser/internal/store"
)

func newAnimalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "animals",
		Short: "List the animals in the database",
		RunE:  runAnimals,
	}
}

func runAnimals(cmd *cobra.Command, args []string) error {
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
	fmt.Println(titleStyle.Render("🦁 Known Animals"))
	printAnimals(data)
	return nil
}
