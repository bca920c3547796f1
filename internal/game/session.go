package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formertriton/animal-guesser/internal/engine"
	"github.com/formertriton/animal-guesser/internal/models"
	"github.com/formertriton/animal-guesser/internal/store"
)

// Session drives one game over a loaded snapshot. All state lives on the
// struct; nothing is global. Input and output are injectable so the full
// loop can be exercised in tests.
type Session struct {
	data          *store.Data
	maxQuestions  int
	minCandidates int
	in            *bufio.Scanner
	out           io.Writer
}

// Options tunes the session loop. Zero values fall back to the classic
// limits (10 questions, stop at 2 candidates).
type Options struct {
	MaxQuestions  int
	MinCandidates int
}

// Outcome summarizes one finished game.
type Outcome struct {
	Guess      *models.Animal
	Confidence float64
	Correct    bool
	// Learned holds the animal name taught by the user after a wrong or
	// missing guess.
	Learned string
}

// NewSession creates a session over the given snapshot.
func NewSession(data *store.Data, opts Options, in io.Reader, out io.Writer) *Session {
	maxQ := opts.MaxQuestions
	if maxQ <= 0 {
		maxQ = 10
	}
	minC := opts.MinCandidates
	if minC <= 0 {
		minC = 2
	}
	return &Session{
		data:          data,
		maxQuestions:  maxQ,
		minCandidates: minC,
		in:            bufio.NewScanner(in),
		out:           out,
	}
}

// Play runs one full game: the question loop, the guess, and on a wrong
// or missing guess the learning flow. The snapshot is mutated in memory
// only; persisting it is the caller's job.
func (s *Session) Play() (*Outcome, error) {
	answers := models.NewAnswerSet()
	var asked []string

	for num := 1; num <= s.maxQuestions; num++ {
		candidates := engine.Filter(s.data.Animals, answers)
		if len(candidates) <= s.minCandidates || num >= s.maxQuestions {
			break
		}

		question := engine.BestQuestion(s.data.Questions, candidates, asked)
		if question == nil {
			// No remaining question can split the candidates; guess
			// with what we have.
			break
		}

		fmt.Fprintf(s.out, "Question %d: %s\n", num, question.Text)
		answer, err := s.askYesNo("Your answer: ")
		if err != nil {
			return nil, err
		}
		answers.Set(question.Feature, answer)
		asked = append(asked, question.Feature)
	}

	guess, confidence := engine.MakeGuess(s.data.Animals, answers)
	outcome := &Outcome{Guess: guess, Confidence: confidence}

	if guess != nil {
		fmt.Fprintf(s.out, "\n🤔 I'm %.0f%% confident...\n", confidence*100)
		fmt.Fprintf(s.out, "Is your animal a %s?\n", guess.Name)
		correct, err := s.askYesNo("Am I correct? (yes/no): ")
		if err != nil {
			return nil, err
		}
		if correct == 1 {
			s.data.Stats.Played++
			s.data.Stats.Correct++
			outcome.Correct = true
			fmt.Fprintln(s.out, "\n🎉 Yay! I guessed it correctly!")
			return outcome, nil
		}
	}

	fmt.Fprintln(s.out, "\n🧠 I didn't guess correctly. Help me learn!")
	name, err := s.promptLine("What animal were you thinking of? ")
	if err != nil {
		return nil, err
	}
	description, err := s.promptLine("Can you describe it briefly? (optional): ")
	if err != nil {
		return nil, err
	}

	s.data.Stats.Played++
	s.data.Animals, _ = engine.Learn(s.data.Animals, name, answers, description)
	s.data.GameHistory = append(s.data.GameHistory, models.GameRecord{
		ID:          uuid.New().String(),
		Date:        time.Now().Format(time.RFC3339),
		Animal:      name,
		Answers:     answers.Snapshot(),
		Description: description,
		Success:     false,
	})
	outcome.Learned = name

	fmt.Fprintf(s.out, "\n🧠 Learned about %s! This will help me in future games.\n", name)
	return outcome, nil
}

// askYesNo prompts until the user answers yes/y or no/n
// (case-insensitive) and returns 1 or 0.
func (s *Session) askYesNo(prompt string) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return 1, nil
		case "no", "n":
			return 0, nil
		}
		fmt.Fprintln(s.out, "Please answer 'yes' or 'no'")
	}
}

func (s *Session) promptLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.readLine()
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
