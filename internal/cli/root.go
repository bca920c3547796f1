package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animal-guesser",
		Short: "Twenty-questions style animal guessing game that learns from its mistakes",
		RunE:  runMenu,
	}

	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newAnimalsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runMenu is the default interactive loop when no subcommand is given:
// play, view statistics, or quit, re-prompting on anything else.
func runMenu(cmd *cobra.Command, args []string) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println(titleStyle.Render("🦁 Animal Guesser"))
		fmt.Println("1. Play Game")
		fmt.Println("2. View Statistics")
		fmt.Println("3. Exit")
		fmt.Print("\nChoose an option (1-3): ")

		if !scanner.Scan() {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			if err := runPlay(cmd, args); err != nil {
				return err
			}
		case "2":
			if err := runStats(cmd, args); err != nil {
				return err
			}
		case "3":
			fmt.Println("\nThanks for playing! 🦁")
			return nil
		default:
			fmt.Println(warnStyle.Render("Invalid choice. Please enter 1, 2, or 3."))
		}
	}
}
