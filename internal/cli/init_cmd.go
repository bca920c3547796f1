package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formertriton/animal-guesser/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate the config file interactively",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "animal-guesser")
	configPath := filepath.Join(configDir, "config.yaml")

	scanner := bufio.NewScanner(os.Stdin)

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("⚠️  Config file already exists: %s\n", configPath)
		fmt.Print("Overwrite? (y/N) ")
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted")
				return nil
			}
		}
	}

	fmt.Println("📝 Setting up animal-guesser")

	fmt.Println("--- Data ---")
	dataFile := prompt(scanner, "Snapshot file (empty for default)", "")

	fmt.Println("\n--- Game ---")
	maxQ := prompt(scanner, "Max questions per game", fmt.Sprintf("%d", config.DefaultMaxQuestions))
	minC := prompt(scanner, "Stop asking at this many candidates", fmt.Sprintf("%d", config.DefaultMinCandidates))

	content := fmt.Sprintf(`data:
  file: %q

game:
  max_questions: %s
  min_candidates: %s
`, dataFile, maxQ, minC)

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("\n✅ Config written: %s\n", configPath)
	return nil
}

func prompt(scanner *bufio.Scanner, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !scanner.Scan() {
		return fallback
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return fallback
	}
	return text
}
