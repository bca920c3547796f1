package models

// GameRecord is one append-only history entry, written when the game
// fails to guess and learns instead. Records exist for later analysis
// only; the guessing algorithm never reads them.
type GameRecord struct {
	ID          string         `json:"id,omitempty"`
	Date        string         `json:"date"`
	Animal      string         `json:"animal"`
	Answers     map[string]int `json:"answers"`
	Description string         `json:"description"`
	Success     bool           `json:"success"`
}

// Stats tracks lifetime game counters. Both values only ever increase.
type Stats struct {
	Played  int `json:"played"`
	Correct int `json:"correct"`
}

// SuccessRate returns correct/played, or 0 before any game was played.
func (s Stats) SuccessRate() float64 {
	if s.Played <= 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Played)
}
