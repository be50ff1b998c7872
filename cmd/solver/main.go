// cmd/solver/main.go
//
// Interactive terminal assistant. Picks the next guess for you; you type
// the G/Y/B result the game shows. Two modes:
//   - wordle: a single puzzle, six attempts.
//   - hurdle: four sequential puzzles, each answer opening the next.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const hurdlePuzzles = 4

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dict, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "> "})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer rl.Close()

	mode, err := askMode(rl)
	if err != nil {
		return
	}

	switch mode {
	case "wordle":
		s, err := session.New(dict, 0)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start session")
		}
		_, _ = runPuzzle(rl, s, 1)
	case "hurdle":
		runHurdle(rl, dict)
	}
}

// askMode prompts until the user picks wordle or hurdle.
func askMode(rl *readline.Instance) (string, error) {
	rl.SetPrompt("Choose game mode (wordle/hurdle): ")
	for {
		line, err := readLine(rl)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(line) {
		case "wordle", "hurdle":
			return strings.ToLower(line), nil
		default:
			fmt.Println("Please type 'wordle' or 'hurdle'.")
		}
	}
}

// runPuzzle drives one puzzle to a terminal state.
// Returns the answer when solved, false when quit/failed.
func runPuzzle(rl *readline.Instance, s *session.Session, puzzleNum int) (string, bool) {
	fmt.Printf("\nPuzzle #%d — starting with %d possible words\n", puzzleNum, s.Remaining())

	for s.State() == session.StateSolving {
		guess, err := s.Suggest()
		if errors.Is(err, solver.ErrNoCandidates) {
			fmt.Println("No possible words remaining. Check your inputs.")
			return "", false
		}
		if err != nil {
			log.Error().Err(err).Msg("suggest failed")
			return "", false
		}

		fmt.Printf("\nAttempt %d: try %q (%d possibilities left)\n", s.Attempts()+1, strings.ToUpper(guess), s.Remaining())
		rl.SetPrompt("Result (G/Y/B per position, q to quit): ")
		line, err := readLine(rl)
		if err != nil {
			return "", false
		}
		if strings.EqualFold(line, "q") {
			return "", false
		}

		rep, err := s.ApplyFeedback(guess, line)
		if errors.Is(err, solver.ErrInvalidFeedback) {
			fmt.Printf("Invalid result. Enter %d characters, G/Y/B only.\n", s.WordLen())
			continue
		}
		if err != nil {
			log.Error().Err(err).Msg("apply feedback")
			return "", false
		}

		switch rep.State {
		case session.StateSolved:
			fmt.Printf("Solved in %d attempts! Answer: %s\n", rep.Attempts, strings.ToUpper(guess))
			return guess, true
		case session.StateExhausted:
			fmt.Printf("Out of attempts after %d guesses.\n", rep.Attempts)
			return "", false
		}
		if rep.Remaining > 0 && rep.Remaining <= 10 {
			fmt.Printf("Remaining words: %s\n", strings.Join(s.Candidates(), ", "))
		}
	}
	return "", false
}

// runHurdle plays a chain of puzzles, threading each answer into the
// next puzzle's opening guess.
func runHurdle(rl *readline.Instance, dict []string) {
	chain := session.NewChain(dict, hurdlePuzzles)
	fmt.Printf("Hurdle: %d sequential puzzles\n", chain.Total())

	for !chain.Done() {
		s, err := chain.Next()
		if err != nil {
			log.Error().Err(err).Msg("start puzzle")
			return
		}
		answer, ok := runPuzzle(rl, s, chain.Puzzle())
		if !ok {
			fmt.Printf("Hurdle failed at puzzle #%d.\n", chain.Puzzle())
			return
		}
		chain.Advance(answer)
		if !chain.Done() {
			fmt.Printf("Next puzzle opens with: %s\n", strings.ToUpper(answer))
		}
	}
	fmt.Println("Hurdle complete — all puzzles solved!")
}

// readLine reads one trimmed line, treating interrupts and EOF as quit.
func readLine(rl *readline.Instance) (string, error) {
	for {
		line, err := rl.Readline()
		switch {
		case err == nil:
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			return "", err
		default:
			log.Error().Err(err).Msg("readline")
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line, nil
	}
}
