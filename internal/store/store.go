package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/formertriton/animal-guesser/internal/models"
)

// Data is the whole persisted snapshot. Its file layout (animals,
// questions, game_history, stats) is an external contract; a field
// absent from the file falls back to the built-in default at load time.
type Data struct {
	Animals     []*models.Animal    `json:"animals"`
	Questions   []models.Question   `json:"questions"`
	GameHistory []models.GameRecord `json:"game_history"`
	Stats       models.Stats        `json:"stats"`
}

// DefaultPath returns the snapshot location under the user config dir.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "animal-guesser", "animal_data.json"), nil
}

// Load reads the snapshot at path (or the default path when empty). Any
// problem with the file — missing, unreadable, corrupt — degrades to the
// built-in defaults instead of failing; a corrupt file is kept aside as
// a timestamped backup first so nothing is silently lost on the next
// save.
func Load(path string) *Data {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return defaults()
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return defaults()
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		backupPath := fmt.Sprintf("%s.bak.%s", path, time.Now().Format("20060102-150405"))
		_ = os.WriteFile(backupPath, raw, 0600)
		return defaults()
	}

	// Per-field fallback: a nil slice means the key was absent.
	if d.Animals == nil {
		d.Animals = SeedAnimals()
	}
	if d.Questions == nil {
		d.Questions = SeedQuestions()
	}
	return &d
}

func defaults() *Data {
	return &Data{
		Animals:   SeedAnimals(),
		Questions: SeedQuestions(),
	}
}

// Save writes the whole snapshot atomically (temp file + rename),
// creating the parent directory when needed.
func Save(path string, d *Data) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write temp data: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to persist data: %w", err)
	}

	return nil
}
